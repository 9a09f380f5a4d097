package units

import (
	"fmt"

	"github.com/librepcb/pkgeditor/internal/xerrors"
)

// ratioDen is one part-per-million's denominator: 1_000_000 ppm == 100%.
const ratioDen = 1_000_000

// Ratio is a signed ratio in integer parts-per-million.
type Ratio int64

// NewRatio returns ppm as a Ratio. Like Length, Ratio itself has no
// validity predicate; UnsignedLimitedRatio adds one.
func NewRatio(ppm int64) Ratio { return Ratio(ppm) }

// RatioFromPercent constructs a Ratio from a percentage value.
func RatioFromPercent(percent float64) Ratio {
	scaled := percent * ratioDen / 100
	if scaled < 0 {
		return Ratio(scaled - 0.5)
	}
	return Ratio(scaled + 0.5)
}

// Percent returns the ratio as a percentage.
func (r Ratio) Percent() float64 { return float64(r) * 100 / ratioDen }

func (r Ratio) String() string { return fmt.Sprintf("%.4f%%", r.Percent()) }

// UnsignedLimitedRatio is a Ratio constrained to [0, 1_000_000] ppm
// (0%..100%).
type UnsignedLimitedRatio struct{ v Ratio }

// NewUnsignedLimitedRatio validates 0 <= ppm <= 1_000_000.
func NewUnsignedLimitedRatio(r Ratio) (UnsignedLimitedRatio, error) {
	if r < 0 || r > ratioDen {
		return UnsignedLimitedRatio{}, xerrors.NewInvalidValue("UnsignedLimitedRatio", r)
	}
	return UnsignedLimitedRatio{v: r}, nil
}

// MustUnsignedLimitedRatio panics on an invalid value; reserved for
// literals and test fixtures known to be valid.
func MustUnsignedLimitedRatio(r Ratio) UnsignedLimitedRatio {
	v, err := NewUnsignedLimitedRatio(r)
	if err != nil {
		panic(err)
	}
	return v
}

// Ratio returns the underlying Ratio.
func (u UnsignedLimitedRatio) Ratio() Ratio { return u.v }

func (u UnsignedLimitedRatio) String() string { return u.v.String() }
