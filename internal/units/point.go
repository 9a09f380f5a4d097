package units

import "math"

// Orientation selects the axis a mirror operation reflects across.
type Orientation uint8

const (
	// Horizontal mirrors across a vertical axis, negating X.
	Horizontal Orientation = iota
	// Vertical mirrors across a horizontal axis, negating Y.
	Vertical
)

// Point is a position in the (X, Y) plane, both components exact
// nanometre lengths.
type Point struct {
	X, Y Length
}

// NewPoint constructs a Point.
func NewPoint(x, y Length) Point { return Point{X: x, Y: y} }

// Origin is the (0, 0) point.
var Origin = Point{}

// IsOrigin reports whether both components are zero.
func (p Point) IsOrigin() bool { return p.X == 0 && p.Y == 0 }

// Translated returns p shifted by dx, dy.
func (p Point) Translated(dx, dy Length) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rotated returns p rotated by angle around center.
func (p Point) Rotated(angle Angle, center Point) Point {
	if angle == 0 {
		return p
	}
	dx := float64(p.X - center.X)
	dy := float64(p.Y - center.Y)
	rad := angle.Degrees() * math.Pi / 180
	sin, cos := math.Sincos(rad)
	nx := dx*cos - dy*sin
	ny := dx*sin + dy*cos
	return Point{
		X: center.X + Length(math.Round(nx)),
		Y: center.Y + Length(math.Round(ny)),
	}
}

// Mirrored returns p reflected across center along orientation.
func (p Point) Mirrored(orientation Orientation, center Point) Point {
	switch orientation {
	case Horizontal:
		return Point{X: center.X - (p.X - center.X), Y: p.Y}
	default:
		return Point{X: p.X, Y: center.Y - (p.Y - center.Y)}
	}
}

// MappedToGrid snaps both components to the nearest multiple of
// interval. An interval of zero disables snapping and returns p
// unchanged.
func (p Point) MappedToGrid(interval PositiveLength) Point {
	step := interval.Length().Nanometres()
	if step == 0 {
		return p
	}
	return Point{X: snap(p.X, step), Y: snap(p.Y, step)}
}

func snap(v Length, step int64) Length {
	nm := v.Nanometres()
	q := nm / step
	r := nm % step
	if r != 0 {
		// Round to nearest, ties away from zero.
		if (r < 0 && -r*2 >= step) || (r > 0 && r*2 >= step) {
			if nm < 0 {
				q--
			} else {
				q++
			}
		}
	}
	return Length(q * step)
}
