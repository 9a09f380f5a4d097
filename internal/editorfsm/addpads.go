package editorfsm

import (
	"github.com/librepcb/pkgeditor/internal/editcmd"
	"github.com/librepcb/pkgeditor/internal/geo"
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/units"
)

// AddPadsFunction selects which PadFunction newly placed pads get; it is
// a thin re-export so callers outside internal/geo don't need to import
// that package just to pick a function for StartAddPads.
type AddPadsFunction = geo.PadFunction

// AddPads places a THT or SMT pad per click, using the shape/size/radius
// last remembered in Memory. A right-click rotates the in-progress
// preview by 90 degrees instead of returning to Select, the one tool
// that overrides the usual right-click-to-Select rule.
type AddPads struct {
	Base
	m        *Machine
	tht      bool
	function AddPadsFunction

	rotation units.Angle
}

func newAddPads(m *Machine, tht bool, fn AddPadsFunction) *AddPads {
	return &AddPads{m: m, tht: tht, function: fn}
}

func (s *AddPads) Name() string {
	if s.tht {
		return "AddPadsTht"
	}
	return "AddPadsSmt"
}

func (s *AddPads) Entry() bool {
	s.rotation = 0
	s.m.ctx.SetStatus("Click to place a pad. Right-click rotates it 90°.")
	return true
}

func (s *AddPads) ProcessGraphicsSceneLeftMouseButtonPressed(e PointerEvent) bool {
	pos := s.m.ctx.Grid.Snap(e.ScenePos)
	fp := s.m.ctx.Footprint
	shape := s.m.Memory.PadShape
	radius := s.m.Memory.PadRadius
	if shape == geo.PadShapeRoundedRect && radius.Ratio() == 0 {
		radius = units.MustUnsignedLimitedRatio(units.RatioFromPercent(25))
	}
	pad := geo.NewFootprintPad(
		ident.UUID{}, pos, s.rotation, shape,
		s.m.Memory.PadWidth, s.m.Memory.PadHeight, radius,
		s.function, geo.PadSideTop,
		geo.StopMaskConfig{Mode: geo.StopMaskAuto}, geo.SolderPasteConfig{Mode: geo.StopMaskAuto},
		units.UnsignedLength{},
	)
	if s.tht {
		hole := geo.NewHole(pos, s.m.Memory.HoleDiameter, units.UnsignedLength{}, 0, geo.StopMaskConfig{Mode: geo.StopMaskAuto})
		pad.SetHoles([]*geo.Hole{hole})
	}
	cmd := editcmd.NewCmdListElementInsert(fp.Pads, fp.Pads.Len(), pad, "Add pad")
	_ = s.m.ctx.Undo.ExecCmd(cmd)
	return true
}

// ProcessGraphicsSceneRightMouseButtonReleased rotates the pending pad
// orientation instead of leaving the tool, consuming the event so
// Machine's default right-click-to-Select rule never fires.
func (s *AddPads) ProcessGraphicsSceneRightMouseButtonReleased(e PointerEvent) bool {
	s.rotation = s.rotation.Add(units.AngleFromDegrees(90)).NormalizeUnsigned()
	s.m.ctx.SetStatus("Pad rotation: " + s.rotation.String())
	return true
}

func (s *AddPads) ProcessAbortCommand() bool { return false }

func (s *AddPads) AvailableFeatures() FeatureSet {
	return NewFeatureSet(FeatureAbort)
}
