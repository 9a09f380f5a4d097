package editorfsm

import (
	"github.com/librepcb/pkgeditor/internal/editcmd"
	"github.com/librepcb/pkgeditor/internal/geo"
	"github.com/librepcb/pkgeditor/internal/units"
)

// twoPointKind distinguishes the four drawing tools that place a
// primitive by dragging from a first click to a second: all four share
// identical click/move/release mechanics and differ only in what they
// build from the two corner points.
type twoPointKind uint8

const (
	kindLine twoPointKind = iota
	kindRect
	kindCircle
	kindArc
)

// twoPointState implements DrawLine, DrawRect, DrawCircle and DrawArc:
// click to place the first point, move to preview, click again to
// commit; releasing the button does not commit. Scenario S1 and
// S2 (draw line, draw circle with snap-to-grid) exercise this state.
type twoPointState struct {
	Base
	m    *Machine
	kind twoPointKind

	started bool
	start   units.Point

	// live holds the primitive being built, already inserted into its
	// footprint list so it paints immediately; nil until the first click.
	liveCircle  *geo.Circle
	livePolygon *geo.Polygon // used for line/rect/arc (open 2-4 vertex path)
}

func newTwoPointState(m *Machine, kind twoPointKind) *twoPointState {
	return &twoPointState{m: m, kind: kind}
}

func (s *twoPointState) Name() string {
	switch s.kind {
	case kindRect:
		return "DrawRect"
	case kindCircle:
		return "DrawCircle"
	case kindArc:
		return "DrawArc"
	default:
		return "DrawLine"
	}
}

func (s *twoPointState) Entry() bool {
	s.m.ctx.SetStatus("Click to place the first point.")
	return true
}

func (s *twoPointState) Exit() bool {
	s.cancelLive()
	return true
}

func (s *twoPointState) cancelLive() {
	fp := s.m.ctx.Footprint
	if fp == nil {
		return
	}
	if s.liveCircle != nil {
		fp.Circles.Remove(s.liveCircle.UUID())
		s.liveCircle = nil
	}
	if s.livePolygon != nil {
		fp.Polygons.Remove(s.livePolygon.UUID())
		s.livePolygon = nil
	}
	if s.m.ctx.Undo.InTransaction() {
		_ = s.m.ctx.Undo.AbortCmdGroup()
	}
	s.started = false
}

func (s *twoPointState) description() string {
	switch s.kind {
	case kindRect:
		return "Add rectangle"
	case kindArc:
		return "Add arc"
	case kindCircle:
		return "Add circle"
	default:
		return "Add line"
	}
}

func (s *twoPointState) ProcessGraphicsSceneLeftMouseButtonPressed(e PointerEvent) bool {
	pos := s.m.ctx.Grid.Snap(e.ScenePos)
	if !s.started {
		s.start = pos
		s.started = true
		_ = s.m.ctx.Undo.BeginCmdGroup(s.description())
		fp := s.m.ctx.Footprint
		switch s.kind {
		case kindCircle:
			diameter := units.MustPositiveLength(units.NewLength(1))
			s.liveCircle = geo.NewCircle(s.m.Memory.Layer, s.m.Memory.LineWidth, s.m.Memory.Filled, s.m.Memory.GrabArea, pos, diameter)
			_ = fp.Circles.Append(s.liveCircle)
		default:
			path := []geo.Vertex{{Position: pos}, {Position: pos}}
			s.livePolygon = geo.NewPolygon(s.m.Memory.Layer, s.m.Memory.LineWidth, s.kind == kindRect && s.m.Memory.Filled, s.m.Memory.GrabArea, path)
			_ = fp.Polygons.Append(s.livePolygon)
		}
		s.m.ctx.SetStatus("Click to place the second point.")
		return true
	}
	s.commit(pos)
	return true
}

// updateLive recomputes the previewed primitive's geometry from the
// start point and the current pointer position, without touching the
// undo stack: per the "immediate" live-edit pattern, every intermediate
// shape the user sees while dragging is a direct mutation, made
// reversible by commit as a single editcmd.NewCmdListElementInsert.
func (s *twoPointState) updateLive(pos units.Point) {
	switch s.kind {
	case kindCircle:
		if s.liveCircle == nil {
			return
		}
		dx := pos.X - s.start.X
		dy := pos.Y - s.start.Y
		r := dx
		if dy > r {
			r = dy
		}
		if r < 0 {
			r = -r
		}
		diameter, err := units.NewPositiveLength(r * 2)
		if err != nil {
			return
		}
		s.liveCircle.SetCenter(s.start)
		s.liveCircle.SetDiameter(diameter)
	case kindRect:
		if s.livePolygon == nil {
			return
		}
		s.livePolygon.SetPath([]geo.Vertex{
			{Position: s.start},
			{Position: units.NewPoint(pos.X, s.start.Y)},
			{Position: pos},
			{Position: units.NewPoint(s.start.X, pos.Y)},
			{Position: s.start},
		})
	case kindArc:
		if s.livePolygon == nil {
			return
		}
		s.livePolygon.SetPath([]geo.Vertex{
			{Position: s.start, Angle: units.AngleFromDegrees(90)},
			{Position: pos},
		})
	default: // kindLine
		if s.livePolygon == nil {
			return
		}
		s.livePolygon.SetPath([]geo.Vertex{{Position: s.start}, {Position: pos}})
	}
}

func (s *twoPointState) ProcessGraphicsSceneMouseMoved(e PointerEvent) bool {
	if !s.started {
		return false
	}
	s.updateLive(s.m.ctx.Grid.Snap(e.ScenePos))
	return true
}

// commit wraps the already-live-mutated primitive into a reversible
// insert command and returns to placing a fresh first point, so the
// tool stays active for repeated placements until the user aborts.
func (s *twoPointState) commit(pos units.Point) {
	s.updateLive(pos)
	fp := s.m.ctx.Footprint
	switch s.kind {
	case kindCircle:
		if s.liveCircle == nil {
			return
		}
		el := s.liveCircle
		s.liveCircle = nil
		cmd := editcmd.NewCmdListElementInsert(fp.Circles, fp.Circles.Len(), el, "Add circle")
		fp.Circles.Remove(el.UUID())
		_ = s.m.ctx.Undo.AppendToCmdGroup(cmd)
	default:
		if s.livePolygon == nil {
			return
		}
		el := s.livePolygon
		s.livePolygon = nil
		cmd := editcmd.NewCmdListElementInsert(fp.Polygons, fp.Polygons.Len(), el, s.description())
		fp.Polygons.Remove(el.UUID())
		_ = s.m.ctx.Undo.AppendToCmdGroup(cmd)
	}
	_ = s.m.ctx.Undo.CommitCmdGroup()
	s.started = false
	s.m.ctx.SetStatus("Click to place the first point.")
}

func (s *twoPointState) ProcessAbortCommand() bool {
	if !s.started {
		return false
	}
	s.cancelLive()
	s.m.ctx.SetStatus("Click to place the first point.")
	return true
}

func (s *twoPointState) ProcessAcceptCommand() bool {
	if !s.started {
		return false
	}
	s.commit(s.start)
	return true
}

func (s *twoPointState) AvailableFeatures() FeatureSet {
	return NewFeatureSet(FeatureAbort)
}
