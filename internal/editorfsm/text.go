package editorfsm

import (
	"github.com/librepcb/pkgeditor/internal/editcmd"
	"github.com/librepcb/pkgeditor/internal/geo"
)

// textKind distinguishes DrawText (free-form legend text the user types
// into a dialog after placing it), AddNames and AddValues (placeholder
// tokens the library renderer substitutes per-component at use time).
type textKind uint8

const (
	textKindFree textKind = iota
	textKindNames
	textKindValues
)

// textState implements DrawText, AddNames and AddValues: a single click
// places a StrokeText with the tool's placeholder (or, for DrawText, an
// editable default) at that position, committed immediately as one
// insert.
type textState struct {
	Base
	m           *Machine
	kind        textKind
	placeholder string
}

func newTextState(m *Machine, kind textKind, placeholder string) *textState {
	return &textState{m: m, kind: kind, placeholder: placeholder}
}

func (s *textState) Name() string {
	switch s.kind {
	case textKindNames:
		return "AddNames"
	case textKindValues:
		return "AddValues"
	default:
		return "DrawText"
	}
}

func (s *textState) Entry() bool {
	s.m.ctx.SetStatus("Click to place the text.")
	return true
}

func (s *textState) ProcessGraphicsSceneLeftMouseButtonPressed(e PointerEvent) bool {
	pos := s.m.ctx.Grid.Snap(e.ScenePos)
	fp := s.m.ctx.Footprint
	text := geo.NewStrokeText(
		s.m.Memory.Layer, s.placeholder, pos, 0,
		s.m.Memory.TextHeight, s.m.Memory.TextStrokeWidth,
		geo.AutoSpacing, geo.AutoSpacing,
		geo.Alignment{H: geo.HCenter, V: geo.VCenter},
		false, true,
	)
	cmd := editcmd.NewCmdListElementInsert(fp.StrokeTexts, fp.StrokeTexts.Len(), text, "Add text")
	_ = s.m.ctx.Undo.ExecCmd(cmd)
	if s.kind == textKindFree && s.m.ctx.Properties != nil {
		s.m.ctx.Properties.EditProperties(text.UUID())
	}
	return true
}

func (s *textState) ProcessAbortCommand() bool { return false }

func (s *textState) AvailableFeatures() FeatureSet {
	return NewFeatureSet(FeatureAbort)
}
