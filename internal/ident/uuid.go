package ident

import (
	"github.com/google/uuid"

	"github.com/librepcb/pkgeditor/internal/xerrors"
)

// UUID is the 128-bit identifier every primitive carries. It wraps
// google/uuid and only accepts the canonical 36-character form, matching
// the on-disk s-expression representation.
type UUID struct {
	v uuid.UUID
	// set distinguishes the zero UUID from an unset one; the zero value
	// of UUID is intentionally invalid so forgetting to initialize one
	// is never silently mistaken for a valid random identifier.
	set bool
}

// NewUUID generates a fresh random (v4) UUID.
func NewUUID() UUID {
	return UUID{v: uuid.New(), set: true}
}

// ParseUUID parses the canonical 36-character form.
func ParseUUID(s string) (UUID, error) {
	if len(s) != 36 {
		return UUID{}, xerrors.NewInvalidValue("UUID", s)
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, xerrors.NewInvalidValue("UUID", s)
	}
	return UUID{v: parsed, set: true}, nil
}

// MustParseUUID panics on an invalid value; reserved for literals and
// test fixtures known to be valid.
func MustParseUUID(s string) UUID {
	v, err := ParseUUID(s)
	if err != nil {
		panic(err)
	}
	return v
}

// IsValid reports whether the UUID was actually constructed via NewUUID
// or ParseUUID, as opposed to being a Go zero value.
func (u UUID) IsValid() bool { return u.set }

// String returns the canonical 36-character form.
func (u UUID) String() string { return u.v.String() }

// Equal reports whether u and other identify the same object.
func (u UUID) Equal(other UUID) bool { return u.v == other.v && u.set == other.set }

// Compare provides a total order over UUIDs, used by List.SortedByUUID.
func (u UUID) Compare(other UUID) int {
	for i := range u.v {
		if u.v[i] != other.v[i] {
			if u.v[i] < other.v[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
