package geo

import (
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/signal"
	"github.com/librepcb/pkgeditor/internal/units"
)

// HoleEventKind enumerates the fields a Hole can change.
type HoleEventKind uint8

const (
	HoleUUIDChanged HoleEventKind = iota
	HolePositionChanged
	HoleDiameterChanged
	HoleSlotLengthChanged
	HoleRotationChanged
	HoleStopMaskConfigChanged
)

// HoleEvent is emitted after a field of a Hole changes.
type HoleEvent struct {
	Kind   HoleEventKind
	Source *Hole
}

// Hole is a plated or non-plated drill, optionally slotted.
type Hole struct {
	uuid       ident.UUID
	position   units.Point
	diameter   units.PositiveLength
	slotLength units.UnsignedLength
	rotation   units.Angle
	stopMask   StopMaskConfig

	Changed signal.Signal[HoleEvent]
}

// NewHole constructs a Hole.
func NewHole(position units.Point, diameter units.PositiveLength, slotLength units.UnsignedLength, rotation units.Angle, stopMask StopMaskConfig) *Hole {
	return &Hole{
		uuid: ident.NewUUID(), position: position, diameter: diameter,
		slotLength: slotLength, rotation: rotation, stopMask: stopMask,
	}
}

func (h *Hole) UUID() ident.UUID                 { return h.uuid }
func (h *Hole) Position() units.Point            { return h.position }
func (h *Hole) Diameter() units.PositiveLength   { return h.diameter }
func (h *Hole) SlotLength() units.UnsignedLength { return h.slotLength }
func (h *Hole) Rotation() units.Angle            { return h.rotation }
func (h *Hole) StopMask() StopMaskConfig         { return h.stopMask }

// IsSlot reports whether the hole has a nonzero slot length.
func (h *Hole) IsSlot() bool { return h.slotLength.Length() > 0 }

func (h *Hole) SetPosition(p units.Point) bool {
	if h.position == p {
		return false
	}
	h.position = p
	h.Changed.Emit(HoleEvent{Kind: HolePositionChanged, Source: h})
	return true
}

func (h *Hole) SetDiameter(d units.PositiveLength) bool {
	if h.diameter == d {
		return false
	}
	h.diameter = d
	h.Changed.Emit(HoleEvent{Kind: HoleDiameterChanged, Source: h})
	return true
}

func (h *Hole) SetSlotLength(l units.UnsignedLength) bool {
	if h.slotLength == l {
		return false
	}
	h.slotLength = l
	h.Changed.Emit(HoleEvent{Kind: HoleSlotLengthChanged, Source: h})
	return true
}

func (h *Hole) SetRotation(a units.Angle) bool {
	if h.rotation == a {
		return false
	}
	h.rotation = a
	h.Changed.Emit(HoleEvent{Kind: HoleRotationChanged, Source: h})
	return true
}

func (h *Hole) SetStopMask(cfg StopMaskConfig) bool {
	if h.stopMask == cfg {
		return false
	}
	h.stopMask = cfg
	h.Changed.Emit(HoleEvent{Kind: HoleStopMaskConfigChanged, Source: h})
	return true
}

// Translate shifts the hole's position by delta.
func (h *Hole) Translate(dx, dy units.Length) bool {
	return h.SetPosition(h.position.Translated(dx, dy))
}

// Rotate rotates the hole's position around pivot and adds angle to its
// own rotation (slot orientation).
func (h *Hole) Rotate(angle units.Angle, pivot units.Point) bool {
	moved := h.SetPosition(h.position.Rotated(angle, pivot))
	rotated := h.SetRotation(h.rotation.Add(angle).NormalizeUnsigned())
	return moved || rotated
}

// MirrorGeometry reflects the hole's position across pivot and negates
// its rotation.
func (h *Hole) MirrorGeometry(orientation units.Orientation, pivot units.Point) bool {
	moved := h.SetPosition(h.position.Mirrored(orientation, pivot))
	rotated := h.SetRotation(h.rotation.Neg().NormalizeUnsigned())
	return moved || rotated
}

// SnapToGrid snaps the hole's position to interval.
func (h *Hole) SnapToGrid(interval units.PositiveLength) bool {
	return h.SetPosition(h.position.MappedToGrid(interval))
}

// Clone returns a deep copy with a fresh (non-shared) Changed signal.
func (h *Hole) Clone() *Hole {
	clone := *h
	clone.Changed = signal.Signal[HoleEvent]{}
	return &clone
}

// Equal reports field-wise equality, excluding the Changed signal.
func (h *Hole) Equal(other *Hole) bool {
	if other == nil {
		return false
	}
	return h.uuid.Equal(other.uuid) && h.position == other.position &&
		h.diameter == other.diameter && h.slotLength == other.slotLength &&
		h.rotation == other.rotation && h.stopMask == other.stopMask
}

// Assign reassigns every field of h from other, one setter call at a
// time rather than a struct copy, so each change fires its own event.
func (h *Hole) Assign(other *Hole) {
	if h.uuid != other.uuid {
		h.uuid = other.uuid
		h.Changed.Emit(HoleEvent{Kind: HoleUUIDChanged, Source: h})
	}
	h.SetPosition(other.position)
	h.SetDiameter(other.diameter)
	h.SetSlotLength(other.slotLength)
	h.SetRotation(other.rotation)
	h.SetStopMask(other.stopMask)
}
