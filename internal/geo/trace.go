package geo

import (
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/signal"
	"github.com/librepcb/pkgeditor/internal/units"
)

// TraceAnchorKind distinguishes what end of a Trace is attached to.
type TraceAnchorKind uint8

const (
	TraceAnchorPad TraceAnchorKind = iota
	TraceAnchorVia
	TraceAnchorJunction
)

// TraceAnchor identifies one endpoint of a board copper Trace.
type TraceAnchor struct {
	Kind TraceAnchorKind
	// Pad is the referenced footprint-pad UUID, set when Kind == TraceAnchorPad.
	Pad ident.UUID
	// Via is the referenced via UUID, set when Kind == TraceAnchorVia.
	Via ident.UUID
	// Position is the junction's own point, set when Kind == TraceAnchorJunction.
	Position units.Point
}

// TraceEventKind enumerates the fields a Trace can change.
type TraceEventKind uint8

const (
	TraceUUIDChanged TraceEventKind = iota
	TraceLayerChanged
	TraceWidthChanged
	TraceStartChanged
	TraceEndChanged
)

// TraceEvent is emitted after a field of a Trace changes.
type TraceEvent struct {
	Kind   TraceEventKind
	Source *Trace
}

// Trace is a single copper-layer board routing segment.
type Trace struct {
	uuid  ident.UUID
	layer units.GraphicsLayerName
	width units.PositiveLength
	start TraceAnchor
	end   TraceAnchor

	Changed signal.Signal[TraceEvent]
}

// NewTrace constructs a Trace.
func NewTrace(layer units.GraphicsLayerName, width units.PositiveLength, start, end TraceAnchor) *Trace {
	return &Trace{uuid: ident.NewUUID(), layer: layer, width: width, start: start, end: end}
}

func (t *Trace) UUID() ident.UUID                 { return t.uuid }
func (t *Trace) Layer() units.GraphicsLayerName   { return t.layer }
func (t *Trace) Width() units.PositiveLength      { return t.width }
func (t *Trace) Start() TraceAnchor               { return t.start }
func (t *Trace) End() TraceAnchor                 { return t.end }

func (t *Trace) SetLayer(layer units.GraphicsLayerName) bool {
	if t.layer == layer {
		return false
	}
	t.layer = layer
	t.Changed.Emit(TraceEvent{Kind: TraceLayerChanged, Source: t})
	return true
}

func (t *Trace) SetWidth(w units.PositiveLength) bool {
	if t.width == w {
		return false
	}
	t.width = w
	t.Changed.Emit(TraceEvent{Kind: TraceWidthChanged, Source: t})
	return true
}

func (t *Trace) SetStart(a TraceAnchor) bool {
	if t.start == a {
		return false
	}
	t.start = a
	t.Changed.Emit(TraceEvent{Kind: TraceStartChanged, Source: t})
	return true
}

func (t *Trace) SetEnd(a TraceAnchor) bool {
	if t.end == a {
		return false
	}
	t.end = a
	t.Changed.Emit(TraceEvent{Kind: TraceEndChanged, Source: t})
	return true
}

// MirrorLayer flips the trace to the opposite board side.
func (t *Trace) MirrorLayer() bool {
	return t.SetLayer(units.GetMirroredLayerName(t.layer))
}

// Translate shifts any junction-kind anchors by delta. Pad- and
// via-anchored ends follow the pad/via they reference.
func (t *Trace) Translate(dx, dy units.Length) bool {
	moved := false
	if t.start.Kind == TraceAnchorJunction {
		next := t.start
		next.Position = next.Position.Translated(dx, dy)
		moved = t.SetStart(next) || moved
	}
	if t.end.Kind == TraceAnchorJunction {
		next := t.end
		next.Position = next.Position.Translated(dx, dy)
		moved = t.SetEnd(next) || moved
	}
	return moved
}

// Clone returns a deep copy with a fresh (non-shared) Changed signal.
func (t *Trace) Clone() *Trace {
	clone := *t
	clone.Changed = signal.Signal[TraceEvent]{}
	return &clone
}

// Equal reports field-wise equality, excluding the Changed signal.
func (t *Trace) Equal(other *Trace) bool {
	if other == nil {
		return false
	}
	return t.uuid.Equal(other.uuid) && t.layer == other.layer &&
		t.width == other.width && t.start == other.start && t.end == other.end
}

// Assign reassigns every field of t from other, UUID first.
func (t *Trace) Assign(other *Trace) {
	if t.uuid != other.uuid {
		t.uuid = other.uuid
		t.Changed.Emit(TraceEvent{Kind: TraceUUIDChanged, Source: t})
	}
	t.SetLayer(other.layer)
	t.SetWidth(other.width)
	t.SetStart(other.start)
	t.SetEnd(other.end)
}
