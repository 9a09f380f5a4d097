package dragcmd

import (
	"testing"

	"github.com/librepcb/pkgeditor/internal/geo"
	"github.com/librepcb/pkgeditor/internal/units"
)

func newDragCircle() *geo.Circle {
	return geo.NewCircle(units.LayerTopCopper, units.MustUnsignedLength(units.NewLength(200000)),
		false, true, units.NewPoint(0, 0), units.MustPositiveLength(units.NewLength(1000000)))
}

func TestCmdDragSetDeltaToStartPosIsIncremental(t *testing.T) {
	c := newDragCircle()
	cmd := NewCmdDragSelectedFootprintItems([]Item{c}, units.Origin, false, units.PositiveLength{})

	cmd.SetDeltaToStartPos(units.NewPoint(units.NewLength(100), units.NewLength(0)))
	cmd.SetDeltaToStartPos(units.NewPoint(units.NewLength(300), units.NewLength(0)))

	if c.Center() != units.NewPoint(units.NewLength(300), 0) {
		t.Fatalf("Center() = %v, want (300, 0) after composing deltas", c.Center())
	}
}

func TestCmdDragSetDeltaToStartPosSnapsToGrid(t *testing.T) {
	c := newDragCircle()
	grid := units.MustPositiveLength(units.NewLength(1_000_000))
	cmd := NewCmdDragSelectedFootprintItems([]Item{c}, units.Origin, true, grid)

	cmd.SetDeltaToStartPos(units.NewPoint(units.NewLength(1_400_000), 0))
	if c.Center() != units.NewPoint(units.NewLength(1_000_000), 0) {
		t.Fatalf("Center() = %v, want snapped to grid", c.Center())
	}
}

func TestCmdDragExecuteIsNoop(t *testing.T) {
	c := newDragCircle()
	cmd := NewCmdDragSelectedFootprintItems([]Item{c}, units.Origin, false, units.PositiveLength{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.Center() != units.Origin {
		t.Fatal("Execute should not itself move anything")
	}
}

func TestCmdDragTranslateUndoRedo(t *testing.T) {
	c := newDragCircle()
	cmd := NewCmdDragSelectedFootprintItems([]Item{c}, units.Origin, false, units.PositiveLength{})

	cmd.Translate(units.NewPoint(units.NewLength(500000), units.NewLength(-200000)))
	moved := c.Center()
	if moved.IsOrigin() {
		t.Fatal("Translate should have moved the circle")
	}

	if err := cmd.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if !c.Center().IsOrigin() {
		t.Fatalf("Center() after Undo = %v, want origin", c.Center())
	}

	if err := cmd.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if c.Center() != moved {
		t.Fatalf("Center() after Redo = %v, want %v", c.Center(), moved)
	}
}

func TestCmdDragMirrorGeometryTogglesAndUndoes(t *testing.T) {
	c := newDragCircle()
	c.SetCenter(units.NewPoint(units.NewLength(1000000), units.NewLength(500000)))
	original := c.Center()

	cmd := NewCmdDragSelectedFootprintItems([]Item{c}, units.Origin, false, units.PositiveLength{})
	cmd.MirrorGeometry(units.Horizontal)
	if c.Center() == original {
		t.Fatal("MirrorGeometry should change the center")
	}
	if cmd.IsNoOp() {
		t.Fatal("a mirrored drag should not be a no-op")
	}

	if err := cmd.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if c.Center() != original {
		t.Fatalf("Center() after Undo = %v, want %v", c.Center(), original)
	}
}

func TestCmdDragMirrorLayerSkipsItemsWithoutIt(t *testing.T) {
	h := geo.NewHole(units.Origin, units.MustPositiveLength(units.NewLength(500000)),
		units.UnsignedLength{}, 0, geo.StopMaskConfig{Mode: geo.StopMaskAuto})
	cmd := NewCmdDragSelectedFootprintItems([]Item{h}, units.Origin, false, units.PositiveLength{})

	// Hole has no MirrorLayer; this must not panic.
	cmd.MirrorLayer()
	if err := cmd.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
}

func TestCmdDragIsNoOpWhenNothingApplied(t *testing.T) {
	c := newDragCircle()
	cmd := NewCmdDragSelectedFootprintItems([]Item{c}, units.Origin, false, units.PositiveLength{})
	if !cmd.IsNoOp() {
		t.Fatal("a freshly constructed drag command should be a no-op")
	}
}

func TestCmdDragDescription(t *testing.T) {
	cmd := NewCmdDragSelectedFootprintItems(nil, units.Origin, false, units.PositiveLength{})
	if cmd.Description() != "Move selected footprint items" {
		t.Errorf("Description() = %q", cmd.Description())
	}
}
