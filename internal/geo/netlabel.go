package geo

import (
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/signal"
	"github.com/librepcb/pkgeditor/internal/units"
)

// NetLabelEventKind enumerates the fields a NetLabel can change.
type NetLabelEventKind uint8

const (
	NetLabelUUIDChanged NetLabelEventKind = iota
	NetLabelPositionChanged
	NetLabelRotationChanged
	NetLabelMirroredChanged
)

// NetLabelEvent is emitted after a field of a NetLabel changes.
type NetLabelEvent struct {
	Kind   NetLabelEventKind
	Source *NetLabel
}

// NetLabel is a placed net-name annotation, tagged with the net signal it
// names by its circuit-identifier name rather than by holding a pointer
// to it.
type NetLabel struct {
	uuid     ident.UUID
	netName  ident.CircuitIdentifier
	position units.Point
	rotation units.Angle
	mirrored bool

	Changed signal.Signal[NetLabelEvent]
}

// NewNetLabel constructs a NetLabel.
func NewNetLabel(netName ident.CircuitIdentifier, position units.Point, rotation units.Angle, mirrored bool) *NetLabel {
	return &NetLabel{
		uuid: ident.NewUUID(), netName: netName, position: position,
		rotation: rotation, mirrored: mirrored,
	}
}

func (n *NetLabel) UUID() ident.UUID                     { return n.uuid }
func (n *NetLabel) NetName() ident.CircuitIdentifier     { return n.netName }
func (n *NetLabel) Position() units.Point                { return n.position }
func (n *NetLabel) Rotation() units.Angle                { return n.rotation }
func (n *NetLabel) IsMirrored() bool                     { return n.mirrored }

// SetNetName retags which net the label names. It does not fire a
// Changed event of its own field kind because renaming the underlying
// net is driven by the net signal's own event, not by the label.
func (n *NetLabel) SetNetName(name ident.CircuitIdentifier) {
	n.netName = name
}

func (n *NetLabel) SetPosition(p units.Point) bool {
	if n.position == p {
		return false
	}
	n.position = p
	n.Changed.Emit(NetLabelEvent{Kind: NetLabelPositionChanged, Source: n})
	return true
}

func (n *NetLabel) SetRotation(a units.Angle) bool {
	if n.rotation == a {
		return false
	}
	n.rotation = a
	n.Changed.Emit(NetLabelEvent{Kind: NetLabelRotationChanged, Source: n})
	return true
}

func (n *NetLabel) SetMirrored(m bool) bool {
	if n.mirrored == m {
		return false
	}
	n.mirrored = m
	n.Changed.Emit(NetLabelEvent{Kind: NetLabelMirroredChanged, Source: n})
	return true
}

// Translate shifts the label's position by delta.
func (n *NetLabel) Translate(dx, dy units.Length) bool {
	return n.SetPosition(n.position.Translated(dx, dy))
}

// Rotate rotates the label's position around pivot and adds angle to its
// own rotation.
func (n *NetLabel) Rotate(angle units.Angle, pivot units.Point) bool {
	moved := n.SetPosition(n.position.Rotated(angle, pivot))
	rotated := n.SetRotation(n.rotation.Add(angle).NormalizeUnsigned())
	return moved || rotated
}

// MirrorGeometry reflects the label's position across pivot and toggles
// Mirrored.
func (n *NetLabel) MirrorGeometry(orientation units.Orientation, pivot units.Point) bool {
	moved := n.SetPosition(n.position.Mirrored(orientation, pivot))
	flipped := n.SetMirrored(!n.mirrored)
	return moved || flipped
}

// SnapToGrid snaps the label's position to interval.
func (n *NetLabel) SnapToGrid(interval units.PositiveLength) bool {
	return n.SetPosition(n.position.MappedToGrid(interval))
}

// Clone returns a deep copy with a fresh (non-shared) Changed signal.
func (n *NetLabel) Clone() *NetLabel {
	clone := *n
	clone.Changed = signal.Signal[NetLabelEvent]{}
	return &clone
}

// Equal reports field-wise equality, excluding the Changed signal.
func (n *NetLabel) Equal(other *NetLabel) bool {
	if other == nil {
		return false
	}
	return n.uuid.Equal(other.uuid) && n.netName.Equal(other.netName) &&
		n.position == other.position && n.rotation == other.rotation &&
		n.mirrored == other.mirrored
}

// Assign reassigns every field of n from other, UUID first.
func (n *NetLabel) Assign(other *NetLabel) {
	if n.uuid != other.uuid {
		n.uuid = other.uuid
		n.Changed.Emit(NetLabelEvent{Kind: NetLabelUUIDChanged, Source: n})
	}
	n.SetNetName(other.netName)
	n.SetPosition(other.position)
	n.SetRotation(other.rotation)
	n.SetMirrored(other.mirrored)
}
