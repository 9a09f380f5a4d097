package ident

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/librepcb/pkgeditor/internal/xerrors"
)

var circuitIdentifierPattern = regexp.MustCompile(`^[a-zA-Z0-9_+\-./!?]{1,32}$`)

// CircuitIdentifier is a non-empty name, at most 32 characters, matching
// the library's circuit-identifier predicate (alphanumeric plus a small
// set of punctuation). Used for package pad names and similar.
type CircuitIdentifier struct{ v string }

// NewCircuitIdentifier validates name against the circuit-identifier
// predicate.
func NewCircuitIdentifier(name string) (CircuitIdentifier, error) {
	if !circuitIdentifierPattern.MatchString(name) {
		return CircuitIdentifier{}, xerrors.NewInvalidValue("CircuitIdentifier", name)
	}
	return CircuitIdentifier{v: name}, nil
}

// MustCircuitIdentifier panics on an invalid value; reserved for literals
// and test fixtures known to be valid.
func MustCircuitIdentifier(name string) CircuitIdentifier {
	v, err := NewCircuitIdentifier(name)
	if err != nil {
		panic(err)
	}
	return v
}

func (c CircuitIdentifier) String() string { return c.v }

// Equal reports whether two identifiers are the same name.
func (c CircuitIdentifier) Equal(other CircuitIdentifier) bool { return c.v == other.v }

var attributeKeyCaser = cases.Upper(language.Und)

var attributeKeyPattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// AttributeKey is a non-empty uppercase identifier naming an Attribute.
// Input is case-folded to upper case with golang.org/x/text/cases before
// validation, so callers may type "voltage" and get "VOLTAGE".
type AttributeKey struct{ v string }

// NewAttributeKey upper-cases and validates key.
func NewAttributeKey(key string) (AttributeKey, error) {
	upper := attributeKeyCaser.String(key)
	if !attributeKeyPattern.MatchString(upper) {
		return AttributeKey{}, xerrors.NewInvalidValue("AttributeKey", key)
	}
	return AttributeKey{v: upper}, nil
}

// MustAttributeKey panics on an invalid value; reserved for literals and
// test fixtures known to be valid.
func MustAttributeKey(key string) AttributeKey {
	v, err := NewAttributeKey(key)
	if err != nil {
		panic(err)
	}
	return v
}

func (a AttributeKey) String() string { return a.v }

// Equal reports whether two attribute keys name the same attribute.
func (a AttributeKey) Equal(other AttributeKey) bool { return a.v == other.v }
