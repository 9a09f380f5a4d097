package geo

import (
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/signal"
	"github.com/librepcb/pkgeditor/internal/units"
)

// Vertex is one point of a polygon's path. Angle is the arc bulge angle
// of the edge leaving this vertex (toward the next vertex, or back to the
// first vertex if this is the path's last entry and the polygon is
// closed); a zero angle is a straight edge. Disabling the field for the
// path's final, non-wrapping vertex is a UI concern, not encoded here.
type Vertex struct {
	Position units.Point
	Angle    units.Angle
}

// PolygonEventKind enumerates the fields a Polygon can change.
type PolygonEventKind uint8

const (
	PolygonUUIDChanged PolygonEventKind = iota
	PolygonLayerChanged
	PolygonLineWidthChanged
	PolygonFilledChanged
	PolygonGrabAreaChanged
	PolygonPathChanged
)

// PolygonEvent is emitted after a field of a Polygon changes.
type PolygonEvent struct {
	Kind   PolygonEventKind
	Source *Polygon
}

// Polygon is an open (line) or closed (filled outline) path primitive.
// When closed, the final vertex's Angle denotes the arc between the last
// and first vertex only.
type Polygon struct {
	uuid      ident.UUID
	layer     units.GraphicsLayerName
	lineWidth units.UnsignedLength
	filled    bool
	grabArea  bool
	path      []Vertex

	Changed signal.Signal[PolygonEvent]
}

// NewPolygon constructs a Polygon. path is copied.
func NewPolygon(layer units.GraphicsLayerName, lineWidth units.UnsignedLength, filled, grabArea bool, path []Vertex) *Polygon {
	return &Polygon{
		uuid:      ident.NewUUID(),
		layer:     layer,
		lineWidth: lineWidth,
		filled:    filled,
		grabArea:  grabArea,
		path:      append([]Vertex(nil), path...),
	}
}

func (p *Polygon) UUID() ident.UUID                { return p.uuid }
func (p *Polygon) Layer() units.GraphicsLayerName  { return p.layer }
func (p *Polygon) LineWidth() units.UnsignedLength { return p.lineWidth }
func (p *Polygon) IsFilled() bool                  { return p.filled }
func (p *Polygon) HasGrabArea() bool               { return p.grabArea }

// Path returns a copy of the vertex list.
func (p *Polygon) Path() []Vertex { return append([]Vertex(nil), p.path...) }

// IsClosed reports whether the first and last vertex coincide.
func (p *Polygon) IsClosed() bool {
	if len(p.path) < 2 {
		return false
	}
	return p.path[0].Position == p.path[len(p.path)-1].Position
}

func (p *Polygon) SetLayer(layer units.GraphicsLayerName) bool {
	if p.layer == layer {
		return false
	}
	p.layer = layer
	p.Changed.Emit(PolygonEvent{Kind: PolygonLayerChanged, Source: p})
	return true
}

func (p *Polygon) SetLineWidth(w units.UnsignedLength) bool {
	if p.lineWidth == w {
		return false
	}
	p.lineWidth = w
	p.Changed.Emit(PolygonEvent{Kind: PolygonLineWidthChanged, Source: p})
	return true
}

func (p *Polygon) SetFilled(filled bool) bool {
	if p.filled == filled {
		return false
	}
	p.filled = filled
	p.Changed.Emit(PolygonEvent{Kind: PolygonFilledChanged, Source: p})
	return true
}

func (p *Polygon) SetGrabArea(grabArea bool) bool {
	if p.grabArea == grabArea {
		return false
	}
	p.grabArea = grabArea
	p.Changed.Emit(PolygonEvent{Kind: PolygonGrabAreaChanged, Source: p})
	return true
}

// SetPath replaces the vertex path wholesale.
func (p *Polygon) SetPath(path []Vertex) bool {
	if pathEqual(p.path, path) {
		return false
	}
	p.path = append([]Vertex(nil), path...)
	p.Changed.Emit(PolygonEvent{Kind: PolygonPathChanged, Source: p})
	return true
}

// AppendVertex adds v to the end of the path.
func (p *Polygon) AppendVertex(v Vertex) bool {
	next := append(append([]Vertex(nil), p.path...), v)
	return p.SetPath(next)
}

func pathEqual(a, b []Vertex) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Translate shifts every vertex by delta.
func (p *Polygon) Translate(dx, dy units.Length) bool {
	next := make([]Vertex, len(p.path))
	for i, v := range p.path {
		next[i] = Vertex{Position: v.Position.Translated(dx, dy), Angle: v.Angle}
	}
	return p.SetPath(next)
}

// Rotate rotates every vertex around pivot.
func (p *Polygon) Rotate(angle units.Angle, pivot units.Point) bool {
	next := make([]Vertex, len(p.path))
	for i, v := range p.path {
		next[i] = Vertex{Position: v.Position.Rotated(angle, pivot), Angle: v.Angle}
	}
	return p.SetPath(next)
}

// MirrorGeometry reflects every vertex across pivot and negates each
// vertex's arc angle (mirroring reverses winding direction).
func (p *Polygon) MirrorGeometry(orientation units.Orientation, pivot units.Point) bool {
	next := make([]Vertex, len(p.path))
	for i, v := range p.path {
		next[i] = Vertex{Position: v.Position.Mirrored(orientation, pivot), Angle: v.Angle.Neg()}
	}
	return p.SetPath(next)
}

// MirrorLayer flips the polygon to the opposite board side.
func (p *Polygon) MirrorLayer() bool {
	return p.SetLayer(units.GetMirroredLayerName(p.layer))
}

// SnapToGrid snaps every vertex to interval.
func (p *Polygon) SnapToGrid(interval units.PositiveLength) bool {
	next := make([]Vertex, len(p.path))
	for i, v := range p.path {
		next[i] = Vertex{Position: v.Position.MappedToGrid(interval), Angle: v.Angle}
	}
	return p.SetPath(next)
}

// Clone returns a deep copy with a fresh (non-shared) Changed signal.
func (p *Polygon) Clone() *Polygon {
	clone := &Polygon{
		uuid: p.uuid, layer: p.layer, lineWidth: p.lineWidth,
		filled: p.filled, grabArea: p.grabArea,
		path: append([]Vertex(nil), p.path...),
	}
	return clone
}

// Equal reports field-wise equality, excluding the Changed signal.
func (p *Polygon) Equal(other *Polygon) bool {
	if other == nil {
		return false
	}
	return p.uuid.Equal(other.uuid) && p.layer == other.layer &&
		p.lineWidth == other.lineWidth && p.filled == other.filled &&
		p.grabArea == other.grabArea && pathEqual(p.path, other.path)
}

// Assign reassigns every field of p from other, firing PolygonUUIDChanged
// before the per-field events, the same order Circle.Assign uses.
func (p *Polygon) Assign(other *Polygon) {
	if p.uuid != other.uuid {
		p.uuid = other.uuid
		p.Changed.Emit(PolygonEvent{Kind: PolygonUUIDChanged, Source: p})
	}
	p.SetLayer(other.layer)
	p.SetLineWidth(other.lineWidth)
	p.SetFilled(other.filled)
	p.SetGrabArea(other.grabArea)
	p.SetPath(other.path)
}
