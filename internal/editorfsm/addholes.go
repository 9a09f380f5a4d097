package editorfsm

import (
	"github.com/librepcb/pkgeditor/internal/editcmd"
	"github.com/librepcb/pkgeditor/internal/geo"
	"github.com/librepcb/pkgeditor/internal/units"
)

// AddHoles places a non-plated drill hole per click, using the last
// diameter remembered in Memory.
type AddHoles struct {
	Base
	m *Machine
}

func (*AddHoles) Name() string { return "AddHoles" }

func (s *AddHoles) Entry() bool {
	s.m.ctx.SetStatus("Click to place a hole.")
	return true
}

func (s *AddHoles) ProcessGraphicsSceneLeftMouseButtonPressed(e PointerEvent) bool {
	pos := s.m.ctx.Grid.Snap(e.ScenePos)
	fp := s.m.ctx.Footprint
	hole := geo.NewHole(pos, s.m.Memory.HoleDiameter, units.UnsignedLength{}, 0, geo.StopMaskConfig{Mode: geo.StopMaskAuto})
	cmd := editcmd.NewCmdListElementInsert(fp.Holes, fp.Holes.Len(), hole, "Add hole")
	_ = s.m.ctx.Undo.ExecCmd(cmd)
	return true
}

func (s *AddHoles) ProcessAbortCommand() bool { return false }

func (s *AddHoles) AvailableFeatures() FeatureSet {
	return NewFeatureSet(FeatureAbort)
}
