package units

import (
	"fmt"

	"github.com/librepcb/pkgeditor/internal/xerrors"
)

// Length is a signed length in integer nanometres. Arithmetic on Length is
// exact and closed over the type.
type Length int64

// NewLength returns nm as a Length. Length has no validity predicate
// beyond fitting in int64, so this never fails; it exists for symmetry
// with UnsignedLength/PositiveLength and so call sites read uniformly.
func NewLength(nm int64) Length {
	return Length(nm)
}

// Add returns l+other.
func (l Length) Add(other Length) Length { return l + other }

// Sub returns l-other.
func (l Length) Sub(other Length) Length { return l - other }

// Neg returns -l.
func (l Length) Neg() Length { return -l }

// MulRatio scales l by r, rounding to the nearest nanometre with halves
// rounded away from zero.
func (l Length) MulRatio(r Ratio) Length {
	return Length((int64(l)*int64(r) + sign(int64(l)*int64(r))*ratioDen/2) / ratioDen)
}

// DivInt divides l by n, rounding toward zero. Panics if n is zero.
func (l Length) DivInt(n int64) Length {
	if n == 0 {
		panic("units: division by zero")
	}
	return Length(int64(l) / n)
}

func sign(v int64) int64 {
	if v < 0 {
		return -1
	}
	return 1
}

// Nanometres returns the raw nanometre value.
func (l Length) Nanometres() int64 { return int64(l) }

// Millimetres returns the length as millimetres (for s-expression output
// and UI display).
func (l Length) Millimetres() float64 { return float64(l) / 1e6 }

func (l Length) String() string {
	return fmt.Sprintf("%.6fmm", l.Millimetres())
}

// UnsignedLength is a Length constrained to value >= 0.
type UnsignedLength struct{ v Length }

// NewUnsignedLength validates nm >= 0.
func NewUnsignedLength(nm Length) (UnsignedLength, error) {
	if nm < 0 {
		return UnsignedLength{}, xerrors.NewInvalidValue("UnsignedLength", nm)
	}
	return UnsignedLength{v: nm}, nil
}

// MustUnsignedLength panics on an invalid value; reserved for literals and
// test fixtures known to be valid.
func MustUnsignedLength(nm Length) UnsignedLength {
	v, err := NewUnsignedLength(nm)
	if err != nil {
		panic(err)
	}
	return v
}

// Length returns the underlying Length.
func (u UnsignedLength) Length() Length { return u.v }

func (u UnsignedLength) String() string { return u.v.String() }

// PositiveLength is a Length constrained to value > 0.
type PositiveLength struct{ v Length }

// NewPositiveLength validates nm > 0.
func NewPositiveLength(nm Length) (PositiveLength, error) {
	if nm <= 0 {
		return PositiveLength{}, xerrors.NewInvalidValue("PositiveLength", nm)
	}
	return PositiveLength{v: nm}, nil
}

// MustPositiveLength panics on an invalid value; reserved for literals and
// test fixtures known to be valid.
func MustPositiveLength(nm Length) PositiveLength {
	v, err := NewPositiveLength(nm)
	if err != nil {
		panic(err)
	}
	return v
}

// Length returns the underlying Length.
func (p PositiveLength) Length() Length { return p.v }

func (p PositiveLength) String() string { return p.v.String() }
