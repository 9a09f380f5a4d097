package geo

import (
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/signal"
	"github.com/librepcb/pkgeditor/internal/units"
)

// CircleEventKind enumerates the fields a Circle can change.
type CircleEventKind uint8

const (
	CircleUUIDChanged CircleEventKind = iota
	CircleLayerChanged
	CircleLineWidthChanged
	CircleFilledChanged
	CircleGrabAreaChanged
	CircleCenterChanged
	CircleDiameterChanged
)

// CircleEvent is emitted after a field of a Circle changes.
type CircleEvent struct {
	Kind   CircleEventKind
	Source *Circle
}

// Circle is a filled or outlined circular primitive.
type Circle struct {
	uuid      ident.UUID
	layer     units.GraphicsLayerName
	lineWidth units.UnsignedLength
	filled    bool
	grabArea  bool
	center    units.Point
	diameter  units.PositiveLength

	Changed signal.Signal[CircleEvent]
}

// NewCircle constructs a Circle.
func NewCircle(layer units.GraphicsLayerName, lineWidth units.UnsignedLength, filled, grabArea bool, center units.Point, diameter units.PositiveLength) *Circle {
	return &Circle{
		uuid:      ident.NewUUID(),
		layer:     layer,
		lineWidth: lineWidth,
		filled:    filled,
		grabArea:  grabArea,
		center:    center,
		diameter:  diameter,
	}
}

func (c *Circle) UUID() ident.UUID                   { return c.uuid }
func (c *Circle) Layer() units.GraphicsLayerName     { return c.layer }
func (c *Circle) LineWidth() units.UnsignedLength    { return c.lineWidth }
func (c *Circle) IsFilled() bool                     { return c.filled }
func (c *Circle) HasGrabArea() bool                  { return c.grabArea }
func (c *Circle) Center() units.Point                { return c.center }
func (c *Circle) Diameter() units.PositiveLength     { return c.diameter }

func (c *Circle) SetLayer(layer units.GraphicsLayerName) bool {
	if c.layer == layer {
		return false
	}
	c.layer = layer
	c.Changed.Emit(CircleEvent{Kind: CircleLayerChanged, Source: c})
	return true
}

func (c *Circle) SetLineWidth(w units.UnsignedLength) bool {
	if c.lineWidth == w {
		return false
	}
	c.lineWidth = w
	c.Changed.Emit(CircleEvent{Kind: CircleLineWidthChanged, Source: c})
	return true
}

func (c *Circle) SetFilled(filled bool) bool {
	if c.filled == filled {
		return false
	}
	c.filled = filled
	c.Changed.Emit(CircleEvent{Kind: CircleFilledChanged, Source: c})
	return true
}

func (c *Circle) SetGrabArea(grabArea bool) bool {
	if c.grabArea == grabArea {
		return false
	}
	c.grabArea = grabArea
	c.Changed.Emit(CircleEvent{Kind: CircleGrabAreaChanged, Source: c})
	return true
}

func (c *Circle) SetCenter(center units.Point) bool {
	if c.center == center {
		return false
	}
	c.center = center
	c.Changed.Emit(CircleEvent{Kind: CircleCenterChanged, Source: c})
	return true
}

// SetDiameter changes the circle's diameter. diameter is a
// units.PositiveLength, so a zero or negative diameter cannot reach this
// setter at all: the constraint is enforced one layer down, at
// construction of the PositiveLength itself.
func (c *Circle) SetDiameter(diameter units.PositiveLength) bool {
	if c.diameter == diameter {
		return false
	}
	c.diameter = diameter
	c.Changed.Emit(CircleEvent{Kind: CircleDiameterChanged, Source: c})
	return true
}

// Translate moves the circle's center by delta.
func (c *Circle) Translate(dx, dy units.Length) bool {
	return c.SetCenter(c.center.Translated(dx, dy))
}

// Rotate rotates the circle's center around pivot. A circle's own
// geometry is rotation-invariant, only its center moves.
func (c *Circle) Rotate(angle units.Angle, pivot units.Point) bool {
	return c.SetCenter(c.center.Rotated(angle, pivot))
}

// MirrorGeometry reflects the circle's center across pivot.
func (c *Circle) MirrorGeometry(orientation units.Orientation, pivot units.Point) bool {
	return c.SetCenter(c.center.Mirrored(orientation, pivot))
}

// MirrorLayer flips the circle to the opposite board side.
func (c *Circle) MirrorLayer() bool {
	return c.SetLayer(units.GetMirroredLayerName(c.layer))
}

// SnapToGrid snaps the circle's center to interval.
func (c *Circle) SnapToGrid(interval units.PositiveLength) bool {
	return c.SetCenter(c.center.MappedToGrid(interval))
}

// Clone returns a deep copy with a fresh (non-shared) Changed signal.
func (c *Circle) Clone() *Circle {
	clone := *c
	clone.Changed = signal.Signal[CircleEvent]{}
	return &clone
}

// Equal reports field-wise equality, excluding the Changed signal.
func (c *Circle) Equal(other *Circle) bool {
	if other == nil {
		return false
	}
	return c.uuid.Equal(other.uuid) && c.layer == other.layer &&
		c.lineWidth == other.lineWidth && c.filled == other.filled &&
		c.grabArea == other.grabArea && c.center == other.center &&
		c.diameter == other.diameter
}

// Assign reassigns every field of c from other. The UUID is reassigned
// (and its change event fired) before any other field.
func (c *Circle) Assign(other *Circle) {
	if c.uuid != other.uuid {
		c.uuid = other.uuid
		c.Changed.Emit(CircleEvent{Kind: CircleUUIDChanged, Source: c})
	}
	c.SetLayer(other.layer)
	c.SetLineWidth(other.lineWidth)
	c.SetFilled(other.filled)
	c.SetGrabArea(other.grabArea)
	c.SetCenter(other.center)
	c.SetDiameter(other.diameter)
}
