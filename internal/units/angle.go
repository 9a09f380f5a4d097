package units

import "fmt"

// microDegreesPerTurn is 360 degrees expressed in micro-degrees.
const microDegreesPerTurn = 360_000_000

// Angle is a signed angle in integer micro-degrees.
type Angle int64

// NewAngle returns microDegrees as an Angle, unnormalized.
func NewAngle(microDegrees int64) Angle { return Angle(microDegrees) }

// AngleFromDegrees constructs an Angle from a float degree value.
func AngleFromDegrees(degrees float64) Angle {
	scaled := degrees * 1_000_000
	if scaled < 0 {
		return Angle(int64(scaled - 0.5))
	}
	return Angle(int64(scaled + 0.5))
}

// Degrees returns the angle as a float degree value.
func (a Angle) Degrees() float64 { return float64(a) / 1_000_000 }

// Add returns a+other, unnormalized.
func (a Angle) Add(other Angle) Angle { return a + other }

// Sub returns a-other, unnormalized.
func (a Angle) Sub(other Angle) Angle { return a - other }

// Neg returns -a, unnormalized.
func (a Angle) Neg() Angle { return -a }

// NormalizeUnsigned reduces a into [0, 360) degrees.
func (a Angle) NormalizeUnsigned() Angle {
	m := int64(a) % microDegreesPerTurn
	if m < 0 {
		m += microDegreesPerTurn
	}
	return Angle(m)
}

// NormalizeSigned reduces a into [-180, 180) degrees.
func (a Angle) NormalizeSigned() Angle {
	unsigned := a.NormalizeUnsigned()
	if unsigned >= microDegreesPerTurn/2 {
		return unsigned - microDegreesPerTurn
	}
	return unsigned
}

func (a Angle) String() string { return fmt.Sprintf("%.6f°", a.Degrees()) }
