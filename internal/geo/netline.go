package geo

import (
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/signal"
	"github.com/librepcb/pkgeditor/internal/units"
)

// NetLineAnchorKind distinguishes what end of a NetLine is attached to.
type NetLineAnchorKind uint8

const (
	NetLineAnchorPin NetLineAnchorKind = iota
	NetLineAnchorJunction
)

// NetLineAnchor identifies one endpoint of a NetLine: either a pin/pad
// reference (by UUID) or a free-floating junction point.
type NetLineAnchor struct {
	Kind NetLineAnchorKind
	// Pin is the referenced pin/pad UUID, set when Kind == NetLineAnchorPin.
	Pin ident.UUID
	// Position is the junction's own point, set when Kind == NetLineAnchorJunction.
	Position units.Point
}

// NetLineEventKind enumerates the fields a NetLine can change.
type NetLineEventKind uint8

const (
	NetLineUUIDChanged NetLineEventKind = iota
	NetLineWidthChanged
	NetLineStartChanged
	NetLineEndChanged
)

// NetLineEvent is emitted after a field of a NetLine changes.
type NetLineEvent struct {
	Kind   NetLineEventKind
	Source *NetLine
}

// NetLine is a single schematic wire segment between two anchors.
type NetLine struct {
	uuid  ident.UUID
	width units.UnsignedLength
	start NetLineAnchor
	end   NetLineAnchor

	Changed signal.Signal[NetLineEvent]
}

// NewNetLine constructs a NetLine.
func NewNetLine(width units.UnsignedLength, start, end NetLineAnchor) *NetLine {
	return &NetLine{uuid: ident.NewUUID(), width: width, start: start, end: end}
}

func (l *NetLine) UUID() ident.UUID              { return l.uuid }
func (l *NetLine) Width() units.UnsignedLength   { return l.width }
func (l *NetLine) Start() NetLineAnchor          { return l.start }
func (l *NetLine) End() NetLineAnchor            { return l.end }

func (l *NetLine) SetWidth(w units.UnsignedLength) bool {
	if l.width == w {
		return false
	}
	l.width = w
	l.Changed.Emit(NetLineEvent{Kind: NetLineWidthChanged, Source: l})
	return true
}

func (l *NetLine) SetStart(a NetLineAnchor) bool {
	if l.start == a {
		return false
	}
	l.start = a
	l.Changed.Emit(NetLineEvent{Kind: NetLineStartChanged, Source: l})
	return true
}

func (l *NetLine) SetEnd(a NetLineAnchor) bool {
	if l.end == a {
		return false
	}
	l.end = a
	l.Changed.Emit(NetLineEvent{Kind: NetLineEndChanged, Source: l})
	return true
}

// Translate shifts any junction-kind anchors by delta. Pin-anchored ends
// follow the pin they reference and are left untouched here.
func (l *NetLine) Translate(dx, dy units.Length) bool {
	moved := false
	if l.start.Kind == NetLineAnchorJunction {
		next := l.start
		next.Position = next.Position.Translated(dx, dy)
		moved = l.SetStart(next) || moved
	}
	if l.end.Kind == NetLineAnchorJunction {
		next := l.end
		next.Position = next.Position.Translated(dx, dy)
		moved = l.SetEnd(next) || moved
	}
	return moved
}

// Clone returns a deep copy with a fresh (non-shared) Changed signal.
func (l *NetLine) Clone() *NetLine {
	clone := *l
	clone.Changed = signal.Signal[NetLineEvent]{}
	return &clone
}

// Equal reports field-wise equality, excluding the Changed signal.
func (l *NetLine) Equal(other *NetLine) bool {
	if other == nil {
		return false
	}
	return l.uuid.Equal(other.uuid) && l.width == other.width &&
		l.start == other.start && l.end == other.end
}

// Assign reassigns every field of l from other, UUID first.
func (l *NetLine) Assign(other *NetLine) {
	if l.uuid != other.uuid {
		l.uuid = other.uuid
		l.Changed.Emit(NetLineEvent{Kind: NetLineUUIDChanged, Source: l})
	}
	l.SetWidth(other.width)
	l.SetStart(other.start)
	l.SetEnd(other.end)
}
