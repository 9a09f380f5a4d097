package editorfsm

import (
	"github.com/librepcb/pkgeditor/internal/editcmd"
	"github.com/librepcb/pkgeditor/internal/geo"
	"github.com/librepcb/pkgeditor/internal/units"
)

// pathKind distinguishes DrawPolygon from DrawZone: both build a
// multi-vertex outline one click at a time and close it the same way,
// differing only in which footprint list and primitive type they
// produce.
type pathKind uint8

const (
	pathKindPolygon pathKind = iota
	pathKindZone
)

// closeTolerance is how close a click must land to the first vertex to
// close the outline instead of appending a new point, matching
// scenario S6 ("clicking near the starting vertex closes the polygon").
const closeTolerance = units.Length(200_000) // 0.2mm

// pathState implements DrawPolygon and DrawZone: each left click appends
// a vertex; a click within closeTolerance of the first vertex (or the
// Accept command) closes the outline and commits it as one insert.
type pathState struct {
	Base
	m    *Machine
	kind pathKind

	points []units.Point

	livePolygon *geo.Polygon
	liveZone    *geo.Zone
}

func newPathState(m *Machine, kind pathKind) *pathState {
	return &pathState{m: m, kind: kind}
}

func (s *pathState) Name() string {
	if s.kind == pathKindZone {
		return "DrawZone"
	}
	return "DrawPolygon"
}

func (s *pathState) Entry() bool {
	s.m.ctx.SetStatus("Click to place the first vertex.")
	return true
}

func (s *pathState) Exit() bool {
	s.cancel()
	return true
}

func (s *pathState) cancel() {
	fp := s.m.ctx.Footprint
	if fp == nil {
		s.points = nil
		return
	}
	if s.livePolygon != nil {
		fp.Polygons.Remove(s.livePolygon.UUID())
		s.livePolygon = nil
	}
	if s.liveZone != nil {
		fp.Zones.Remove(s.liveZone.UUID())
		s.liveZone = nil
	}
	if s.m.ctx.Undo.InTransaction() {
		_ = s.m.ctx.Undo.AbortCmdGroup()
	}
	s.points = nil
}

func near(a, b units.Point, tol units.Length) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= tol && dy <= tol
}

func (s *pathState) description() string {
	if s.kind == pathKindZone {
		return "Add zone"
	}
	return "Add polygon"
}

func (s *pathState) ProcessGraphicsSceneLeftMouseButtonPressed(e PointerEvent) bool {
	pos := s.m.ctx.Grid.Snap(e.ScenePos)
	if len(s.points) >= 2 && near(pos, s.points[0], closeTolerance) {
		s.close()
		return true
	}
	if len(s.points) == 0 {
		_ = s.m.ctx.Undo.BeginCmdGroup(s.description())
	}
	s.points = append(s.points, pos)
	s.rebuildLive()
	if len(s.points) == 1 {
		s.m.ctx.SetStatus("Click to place the next vertex, or click the first vertex to close the outline.")
	}
	return true
}

func (s *pathState) rebuildLive() {
	fp := s.m.ctx.Footprint
	switch s.kind {
	case pathKindZone:
		if s.liveZone == nil {
			s.liveZone = geo.NewZone([]geo.ZoneLayer{geo.ZoneLayerTop}, []geo.ZoneRule{geo.ZoneRuleNoCopper}, s.points)
			_ = fp.Zones.Append(s.liveZone)
			return
		}
		s.liveZone.SetOutline(s.points)
	default:
		if s.livePolygon == nil {
			vertices := make([]geo.Vertex, len(s.points))
			for i, p := range s.points {
				vertices[i] = geo.Vertex{Position: p}
			}
			s.livePolygon = geo.NewPolygon(s.m.Memory.Layer, s.m.Memory.LineWidth, s.m.Memory.Filled, s.m.Memory.GrabArea, vertices)
			_ = fp.Polygons.Append(s.livePolygon)
			return
		}
		vertices := make([]geo.Vertex, len(s.points))
		for i, p := range s.points {
			vertices[i] = geo.Vertex{Position: p}
		}
		s.livePolygon.SetPath(vertices)
	}
}

func (s *pathState) ProcessGraphicsSceneMouseMoved(e PointerEvent) bool {
	if len(s.points) == 0 {
		return false
	}
	preview := append(append([]units.Point(nil), s.points...), s.m.ctx.Grid.Snap(e.ScenePos))
	switch s.kind {
	case pathKindZone:
		if s.liveZone != nil {
			s.liveZone.SetOutline(preview)
		}
	default:
		if s.livePolygon != nil {
			vertices := make([]geo.Vertex, len(preview))
			for i, p := range preview {
				vertices[i] = geo.Vertex{Position: p}
			}
			s.livePolygon.SetPath(vertices)
		}
	}
	return true
}

// close finalizes the outline at its current vertices (the closing click
// itself contributes no new vertex, matching a triangle drawn from three
// clicks ending with exactly three vertices) and commits the primitive,
// along with every live-draw mutation made since the first click, as one
// reversible transaction.
func (s *pathState) close() {
	if len(s.points) < 3 {
		return
	}
	fp := s.m.ctx.Footprint
	switch s.kind {
	case pathKindZone:
		if s.liveZone == nil {
			return
		}
		s.liveZone.SetOutline(s.points)
		el := s.liveZone
		s.liveZone = nil
		fp.Zones.Remove(el.UUID())
		cmd := editcmd.NewCmdListElementInsert(fp.Zones, fp.Zones.Len(), el, "Add zone")
		_ = s.m.ctx.Undo.AppendToCmdGroup(cmd)
	default:
		if s.livePolygon == nil {
			return
		}
		vertices := make([]geo.Vertex, len(s.points))
		for i, p := range s.points {
			vertices[i] = geo.Vertex{Position: p}
		}
		s.livePolygon.SetPath(vertices)
		el := s.livePolygon
		s.livePolygon = nil
		fp.Polygons.Remove(el.UUID())
		cmd := editcmd.NewCmdListElementInsert(fp.Polygons, fp.Polygons.Len(), el, "Add polygon")
		_ = s.m.ctx.Undo.AppendToCmdGroup(cmd)
	}
	_ = s.m.ctx.Undo.CommitCmdGroup()
	s.points = nil
	s.m.ctx.SetStatus("Click to place the first vertex.")
}

func (s *pathState) ProcessAcceptCommand() bool {
	if len(s.points) < 3 {
		return false
	}
	s.close()
	return true
}

func (s *pathState) ProcessAbortCommand() bool {
	if len(s.points) == 0 {
		return false
	}
	s.cancel()
	s.m.ctx.SetStatus("Click to place the first vertex.")
	return true
}

func (s *pathState) AvailableFeatures() FeatureSet {
	return NewFeatureSet(FeatureAbort)
}
