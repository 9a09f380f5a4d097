package editorctx

import (
	"errors"
	"testing"

	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/library"
	"github.com/librepcb/pkgeditor/internal/undo"
	"github.com/librepcb/pkgeditor/internal/units"
)

func newTestFootprint(t *testing.T) *library.Footprint {
	t.Helper()
	name, err := ident.NewCircuitIdentifier("default")
	if err != nil {
		t.Fatalf("NewCircuitIdentifier: %v", err)
	}
	return library.NewFootprint(name)
}

func TestNewContextDefaultsGridEnabled(t *testing.T) {
	ctx := New(newTestFootprint(t), undo.NewStack())
	if !ctx.Grid.Enabled {
		t.Fatal("New should default the grid to enabled")
	}
}

func TestContextValidateRequiresFootprintAndStack(t *testing.T) {
	ctx := &Context{}
	if !errors.Is(ctx.Validate(), ErrMissingFootprint) {
		t.Fatal("expected ErrMissingFootprint")
	}

	ctx.Footprint = newTestFootprint(t)
	if !errors.Is(ctx.Validate(), ErrMissingUndoStack) {
		t.Fatal("expected ErrMissingUndoStack")
	}

	ctx.Undo = undo.NewStack()
	if err := ctx.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestContextValidateForEditRejectsReadOnly(t *testing.T) {
	ctx := New(newTestFootprint(t), undo.NewStack())
	ctx.ReadOnly = true
	if !errors.Is(ctx.ValidateForEdit(), ErrReadOnly) {
		t.Fatal("expected ErrReadOnly")
	}
	ctx.ReadOnly = false
	if err := ctx.ValidateForEdit(); err != nil {
		t.Fatalf("ValidateForEdit: %v", err)
	}
}

func TestContextHasSelectionAndClear(t *testing.T) {
	ctx := New(newTestFootprint(t), undo.NewStack())
	if ctx.HasSelection() {
		t.Fatal("no Selection configured yet, HasSelection should be false")
	}

	ctx.Selection = NewSelection()
	if ctx.HasSelection() {
		t.Fatal("empty selection should report false")
	}
	id := ident.NewUUID()
	ctx.Selection.Add(id)
	if !ctx.HasSelection() {
		t.Fatal("selection with one entry should report true")
	}
	ctx.ClearSelection()
	if ctx.HasSelection() {
		t.Fatal("ClearSelection should empty the selection")
	}
}

type statusRecorder struct{ last string }

func (r *statusRecorder) SetStatus(text string) { r.last = text }

func TestContextSetStatusForwardsWhenConfigured(t *testing.T) {
	ctx := New(newTestFootprint(t), undo.NewStack())
	ctx.SetStatus("should not panic") // no sink configured

	rec := &statusRecorder{}
	ctx.Status = rec
	ctx.SetStatus("hello")
	if rec.last != "hello" {
		t.Fatalf("last = %q, want hello", rec.last)
	}
}

func TestGridSettingsSnap(t *testing.T) {
	grid := GridSettings{Interval: units.MustPositiveLength(units.NewLength(1_000_000)), Enabled: true}
	snapped := grid.Snap(units.NewPoint(units.NewLength(1_400_000), 0))
	if snapped != units.NewPoint(units.NewLength(1_000_000), 0) {
		t.Fatalf("Snap() = %v, want (1000000, 0)", snapped)
	}

	grid.Enabled = false
	p := units.NewPoint(units.NewLength(1_400_000), 0)
	if grid.Snap(p) != p {
		t.Fatal("Snap should be a no-op when disabled")
	}
}

func TestSelectionAddToggleRemove(t *testing.T) {
	s := NewSelection()
	a, b := ident.NewUUID(), ident.NewUUID()

	s.Add(a)
	s.Add(a)
	if s.Count() != 1 {
		t.Fatalf("Count() = %d, want 1 (duplicate add)", s.Count())
	}

	s.Toggle(b)
	if !s.Contains(b) || s.Count() != 2 {
		t.Fatal("Toggle should add an absent id")
	}
	s.Toggle(b)
	if s.Contains(b) || s.Count() != 1 {
		t.Fatal("Toggle should remove a present id")
	}

	s.Remove(a)
	if s.Contains(a) || s.Count() != 0 {
		t.Fatal("Remove should delete the id")
	}
}

func TestSelectionSetAllReplacesWholesale(t *testing.T) {
	s := NewSelection()
	a, b, c := ident.NewUUID(), ident.NewUUID(), ident.NewUUID()
	s.Add(a)

	s.SetAll([]ident.UUID{b, c})
	if s.Contains(a) {
		t.Fatal("SetAll should clear prior entries")
	}
	if !s.Contains(b) || !s.Contains(c) || s.Count() != 2 {
		t.Fatal("SetAll should contain exactly the given ids")
	}
}
