package editorfsm

import (
	"strconv"

	"github.com/librepcb/pkgeditor/internal/editcmd"
	"github.com/librepcb/pkgeditor/internal/ident"
)

// ReNumberPads lets the user click footprint pads in sequence to
// reassign them to the package's PackagePad list in that click order
// (the Nth pad clicked gets the Nth PackagePad's UUID), all collected
// into one undo transaction so a single undo restores every pad's
// previous mapping at once.
type ReNumberPads struct {
	Base
	m *Machine

	order    []ident.UUID // package pad UUIDs in assignment order
	next     int
	assigned map[ident.UUID]bool
}

func (*ReNumberPads) Name() string { return "ReNumberPads" }

func (s *ReNumberPads) Entry() bool {
	if s.m.ctx.Package == nil {
		return false
	}
	s.order = s.m.ctx.Package.PackagePads.UUIDs()
	s.next = 0
	s.assigned = map[ident.UUID]bool{}
	if err := s.m.ctx.Undo.BeginCmdGroup("Renumber pads"); err != nil {
		return false
	}
	s.m.ctx.SetStatus("Click pads in order to renumber them.")
	return true
}

func (s *ReNumberPads) Exit() bool {
	if s.m.ctx.Undo.InTransaction() {
		_ = s.m.ctx.Undo.CommitCmdGroup()
	}
	return true
}

func (s *ReNumberPads) ProcessGraphicsSceneLeftMouseButtonPressed(e PointerEvent) bool {
	if s.next >= len(s.order) {
		s.m.ctx.SetStatus("Every package pad has been assigned.")
		return true
	}
	fp := s.m.ctx.Footprint
	pos := e.ScenePos
	for _, pad := range fp.Pads.All() {
		if s.assigned[pad.UUID()] {
			continue
		}
		if !near(pos, pad.Position(), closeTolerance) {
			continue
		}
		before := pad.Clone()
		pad.SetPackagePadUUID(s.order[s.next])
		cmd := editcmd.NewCmdCommitLiveEdit(pad, before, "Renumber pad "+strconv.Itoa(s.next+1))
		_ = s.m.ctx.Undo.AppendToCmdGroup(cmd)
		s.assigned[pad.UUID()] = true
		s.next++
		if s.next < len(s.order) {
			s.m.ctx.SetStatus("Click the next pad, or leave the tool to finish.")
		} else {
			s.m.ctx.SetStatus("Every package pad has been assigned.")
		}
		return true
	}
	return false
}

func (s *ReNumberPads) ProcessAbortCommand() bool {
	if s.m.ctx.Undo.InTransaction() {
		_ = s.m.ctx.Undo.AbortCmdGroup()
	}
	return false
}

func (s *ReNumberPads) AvailableFeatures() FeatureSet {
	return NewFeatureSet(FeatureAbort)
}
