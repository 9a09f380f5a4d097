package editorfsm

import (
	"fmt"
	"math"

	"github.com/librepcb/pkgeditor/internal/units"
)

// Measure is a read-only ruler: two clicks report the distance between
// them in the status bar without creating any primitive or touching the
// undo stack.
type Measure struct {
	Base
	m *Machine

	hasStart bool
	start    units.Point
}

func (*Measure) Name() string { return "Measure" }

func (s *Measure) Entry() bool {
	s.hasStart = false
	s.m.ctx.SetStatus("Click the first point to measure from.")
	return true
}

func (s *Measure) ProcessGraphicsSceneLeftMouseButtonPressed(e PointerEvent) bool {
	pos := s.m.ctx.Grid.Snap(e.ScenePos)
	if !s.hasStart {
		s.start = pos
		s.hasStart = true
		s.m.ctx.SetStatus("Click the second point.")
		return true
	}
	s.report(pos)
	s.hasStart = false
	return true
}

func (s *Measure) ProcessGraphicsSceneMouseMoved(e PointerEvent) bool {
	if !s.hasStart {
		return false
	}
	s.report(s.m.ctx.Grid.Snap(e.ScenePos))
	return true
}

func (s *Measure) report(pos units.Point) {
	dx := float64((pos.X - s.start.X).Nanometres())
	dy := float64((pos.Y - s.start.Y).Nanometres())
	dist := math.Hypot(dx, dy) / 1e6
	s.m.ctx.SetStatus(fmt.Sprintf("Distance: %.3f mm (dx=%.3f mm, dy=%.3f mm)", dist, dx/1e6, dy/1e6))
}

func (s *Measure) ProcessAbortCommand() bool {
	if !s.hasStart {
		return false
	}
	s.hasStart = false
	s.m.ctx.SetStatus("Click the first point to measure from.")
	return true
}

func (s *Measure) AvailableFeatures() FeatureSet {
	return NewFeatureSet(FeatureAbort)
}
