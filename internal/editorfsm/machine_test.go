package editorfsm

import (
	"testing"

	"github.com/librepcb/pkgeditor/internal/editorctx"
	"github.com/librepcb/pkgeditor/internal/geo"
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/library"
	"github.com/librepcb/pkgeditor/internal/undo"
	"github.com/librepcb/pkgeditor/internal/units"
)

// fakeSelection is a minimal editorctx.SelectionInterface backed by a map,
// standing in for the real selection model owned by the excluded UI layer.
type fakeSelection struct {
	ids map[ident.UUID]bool
}

func newFakeSelection() *fakeSelection { return &fakeSelection{ids: map[ident.UUID]bool{}} }

func (s *fakeSelection) UUIDs() []ident.UUID {
	var out []ident.UUID
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}
func (s *fakeSelection) Contains(id ident.UUID) bool { return s.ids[id] }
func (s *fakeSelection) Clear()                      { s.ids = map[ident.UUID]bool{} }
func (s *fakeSelection) SetAll(ids []ident.UUID) {
	s.ids = map[ident.UUID]bool{}
	for _, id := range ids {
		s.ids[id] = true
	}
}
func (s *fakeSelection) Count() int { return len(s.ids) }
func (s *fakeSelection) Add(id ident.UUID) { s.ids[id] = true }
func (s *fakeSelection) Toggle(id ident.UUID) {
	if s.ids[id] {
		delete(s.ids, id)
	} else {
		s.ids[id] = true
	}
}
func (s *fakeSelection) Remove(id ident.UUID) { delete(s.ids, id) }

func newTestContext(t *testing.T, withFootprint bool) *editorctx.Context {
	t.Helper()
	var fp *library.Footprint
	if withFootprint {
		name, err := ident.NewCircuitIdentifier("default")
		if err != nil {
			t.Fatalf("NewCircuitIdentifier: %v", err)
		}
		fp = library.NewFootprint(name)
	}
	ctx := editorctx.New(fp, undo.NewStack())
	ctx.Selection = newFakeSelection()
	return ctx
}

func TestMachineStartsInIdleWithoutFootprint(t *testing.T) {
	ctx := newTestContext(t, false)
	m := New(ctx, nil)
	m.Start()
	if m.StateName() != "Idle" {
		t.Fatalf("StateName() = %q, want Idle", m.StateName())
	}
}

func TestMachineStartsInSelectWithFootprint(t *testing.T) {
	ctx := newTestContext(t, true)
	m := New(ctx, nil)
	m.Start()
	if m.StateName() != "Select" {
		t.Fatalf("StateName() = %q, want Select", m.StateName())
	}
}

func TestMachineStartToolRequiresFootprintExceptSelect(t *testing.T) {
	ctx := newTestContext(t, false)
	m := New(ctx, nil)
	m.Start()

	if m.StartDrawCircle() {
		t.Fatal("StartDrawCircle should fail with no footprint bound")
	}
	if m.StateName() != "Idle" {
		t.Fatalf("StateName() = %q, want Idle (unchanged)", m.StateName())
	}
	if !m.StartSelect() {
		t.Fatal("StartSelect should always be allowed")
	}
}

func TestMachineStartDrawCircleTransitions(t *testing.T) {
	ctx := newTestContext(t, true)
	m := New(ctx, nil)
	m.Start()

	if !m.StartDrawCircle() {
		t.Fatal("StartDrawCircle should succeed with a footprint bound")
	}
	if m.StateName() != "DrawCircle" {
		t.Fatalf("StateName() = %q, want DrawCircle", m.StateName())
	}
}

func TestMachineRightClickReturnsToSelectFromTool(t *testing.T) {
	ctx := newTestContext(t, true)
	m := New(ctx, nil)
	m.Start()
	m.StartDrawCircle()

	if !m.ProcessGraphicsSceneRightMouseButtonReleased(PointerEvent{}) {
		t.Fatal("right click should be handled")
	}
	if m.StateName() != "Select" {
		t.Fatalf("StateName() = %q, want Select after right-click abort", m.StateName())
	}
}

func TestMachineRightClickFromSelectIsNoOpWithoutPrevious(t *testing.T) {
	ctx := newTestContext(t, true)
	m := New(ctx, nil)
	m.Start()

	if !m.ProcessGraphicsSceneRightMouseButtonReleased(PointerEvent{}) {
		t.Fatal("right click should report handled even with nothing to return to")
	}
	if m.StateName() != "Select" {
		t.Fatalf("StateName() = %q, want Select (unchanged)", m.StateName())
	}
}

func TestMachineAbortStreakResetsOnActivity(t *testing.T) {
	ctx := newTestContext(t, true)
	m := New(ctx, nil)
	m.Start()

	m.ProcessAbortCommand()
	m.ProcessAbortCommand()
	if m.AbortStreak() != 2 {
		t.Fatalf("AbortStreak() = %d, want 2", m.AbortStreak())
	}
	m.ProcessSelectAll()
	if m.AbortStreak() != 0 {
		t.Fatalf("AbortStreak() = %d, want 0 after non-abort activity", m.AbortStreak())
	}
}

func TestMachineProcessChangeCurrentFootprintToNilFallsBackToSelect(t *testing.T) {
	ctx := newTestContext(t, true)
	m := New(ctx, nil)
	m.Start()

	if !m.ProcessChangeCurrentFootprint(nil, nil) {
		t.Fatal("ProcessChangeCurrentFootprint should succeed")
	}
	if m.StateName() != "Select" {
		t.Fatalf("StateName() = %q, want Select", m.StateName())
	}
}

func TestMachineProcessChangeCurrentFootprintRestoresTool(t *testing.T) {
	ctx := newTestContext(t, true)
	m := New(ctx, nil)
	m.Start()
	m.StartDrawCircle()

	name, _ := ident.NewCircuitIdentifier("other")
	other := library.NewFootprint(name)
	if !m.ProcessChangeCurrentFootprint(other, "scene-item") {
		t.Fatal("ProcessChangeCurrentFootprint should succeed")
	}
	if m.StateName() != "DrawCircle" {
		t.Fatalf("StateName() = %q, want DrawCircle restored", m.StateName())
	}
	if m.Context().GraphicsItem != "scene-item" {
		t.Fatalf("GraphicsItem = %v, want scene-item", m.Context().GraphicsItem)
	}
}

func TestSelectAvailableFeaturesGrowsWithSelection(t *testing.T) {
	ctx := newTestContext(t, true)
	m := New(ctx, nil)
	m.Start()

	base := m.AvailableFeatures()
	if base.Has(FeatureRemove) {
		t.Fatal("FeatureRemove should not be available with nothing selected")
	}

	c := newTestCircle()
	_ = ctx.Footprint.Circles.Append(c)
	ctx.Selection.Add(c.UUID())

	withSel := m.AvailableFeatures()
	if !withSel.Has(FeatureRemove) || !withSel.Has(FeatureRotate) {
		t.Fatal("FeatureRemove/FeatureRotate should be available once something is selected")
	}
}

func TestSelectClickSelectsItemAndDragMovesIt(t *testing.T) {
	ctx := newTestContext(t, true)
	m := New(ctx, nil)
	m.Start()

	c := newTestCircle()
	_ = ctx.Footprint.Circles.Append(c)

	pos := c.Center()
	if !m.ProcessGraphicsSceneLeftMouseButtonPressed(PointerEvent{ScenePos: pos}) {
		t.Fatal("press on an item should be handled")
	}
	if !ctx.Selection.Contains(c.UUID()) {
		t.Fatal("clicking an item should select it")
	}

	moved := units.NewPoint(pos.X+units.NewLength(500000), pos.Y)
	m.ProcessGraphicsSceneMouseMoved(PointerEvent{ScenePos: moved})
	m.ProcessGraphicsSceneLeftMouseButtonReleased(PointerEvent{ScenePos: moved})

	if c.Center() == pos {
		t.Fatal("dragging a selected item should move it")
	}
	if ctx.Undo.CanUndo() == false {
		t.Fatal("a completed drag should push an undoable command")
	}
}

func TestSelectClickOnEmptySpaceClearsSelection(t *testing.T) {
	ctx := newTestContext(t, true)
	m := New(ctx, nil)
	m.Start()

	c := newTestCircle()
	_ = ctx.Footprint.Circles.Append(c)
	ctx.Selection.Add(c.UUID())

	far := units.NewPoint(units.NewLength(50_000_000), units.NewLength(50_000_000))
	m.ProcessGraphicsSceneLeftMouseButtonPressed(PointerEvent{ScenePos: far})
	if ctx.HasSelection() {
		t.Fatal("clicking empty space should clear the selection")
	}
}

func TestSelectRemoveDeletesSelectedItems(t *testing.T) {
	ctx := newTestContext(t, true)
	m := New(ctx, nil)
	m.Start()

	c := newTestCircle()
	_ = ctx.Footprint.Circles.Append(c)
	ctx.Selection.Add(c.UUID())

	if !m.ProcessRemove() {
		t.Fatal("ProcessRemove should report handled")
	}
	if ctx.Footprint.Circles.Contains(c.UUID()) {
		t.Fatal("selected circle should have been removed")
	}
	if !ctx.Undo.CanUndo() {
		t.Fatal("remove should be undoable")
	}

	if err := ctx.Undo.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if !ctx.Footprint.Circles.Contains(c.UUID()) {
		t.Fatal("undo should restore the removed circle")
	}
}

func TestSelectAbortCommandClearsSelectionAndReportsUnhandled(t *testing.T) {
	ctx := newTestContext(t, true)
	m := New(ctx, nil)
	m.Start()

	c := newTestCircle()
	_ = ctx.Footprint.Circles.Append(c)
	ctx.Selection.Add(c.UUID())

	// Select itself returns false (unhandled) from ProcessAbortCommand so
	// Machine's fallback path runs; Machine always reports true overall.
	if !m.ProcessAbortCommand() {
		t.Fatal("Machine.ProcessAbortCommand should always report handled")
	}
	if ctx.HasSelection() {
		t.Fatal("abort should clear the selection")
	}
}

func newTestCircle() *geo.Circle {
	return geo.NewCircle(units.LayerTopCopper, units.MustUnsignedLength(units.NewLength(200000)),
		false, true, units.NewPoint(units.NewLength(1_000_000), units.NewLength(1_000_000)),
		units.MustPositiveLength(units.NewLength(500000)))
}
