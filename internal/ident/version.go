package ident

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/librepcb/pkgeditor/internal/xerrors"
)

// Version is a dotted numeric tuple (e.g. "0.1.5") used to gate which
// child tags a serializer emits for a given file-format generation.
type Version struct {
	parts []int
}

// NewVersion parses a dotted numeric version string.
func NewVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, xerrors.NewInvalidValue("Version", s)
	}
	fields := strings.Split(s, ".")
	parts := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return Version{}, xerrors.NewInvalidValue("Version", s)
		}
		parts[i] = n
	}
	return Version{parts: parts}, nil
}

// MustVersion panics on an invalid value; reserved for literals and test
// fixtures known to be valid.
func MustVersion(s string) Version {
	v, err := NewVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Compare returns -1, 0, or 1 as v is less than, equal to, or greater
// than other, comparing component-wise and treating a missing trailing
// component as zero.
func (v Version) Compare(other Version) int {
	n := len(v.parts)
	if len(other.parts) > n {
		n = len(other.parts)
	}
	for i := 0; i < n; i++ {
		a, b := 0, 0
		if i < len(v.parts) {
			a = v.parts[i]
		}
		if i < len(other.parts) {
			b = other.parts[i]
		}
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

// AtLeast reports whether v >= other.
func (v Version) AtLeast(other Version) bool { return v.Compare(other) >= 0 }

func (v Version) String() string {
	fields := make([]string, len(v.parts))
	for i, p := range v.parts {
		fields[i] = strconv.Itoa(p)
	}
	return strings.Join(fields, ".")
}

// FormatGate02 is a convenience for the well-known format-gate version used
// by Hole's slot length/rotation child tags.
var FormatGate02 = MustVersion("0.2")

func init() {
	// Sanity-check the well-known gate at init time rather than hiding a
	// malformed literal behind Must*.
	if FormatGate02.String() != "0.2" {
		panic(fmt.Sprintf("ident: unexpected format gate %s", FormatGate02))
	}
}
