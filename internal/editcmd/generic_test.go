package editcmd

import (
	"testing"

	"github.com/librepcb/pkgeditor/internal/geo"
	"github.com/librepcb/pkgeditor/internal/units"
)

func newTestCircle() *geo.Circle {
	return geo.NewCircle(units.LayerTopCopper, units.MustUnsignedLength(units.NewLength(200000)),
		false, true, units.NewPoint(0, 0), units.MustPositiveLength(units.NewLength(1000000)))
}

func TestCmdEditElementExecuteUndoRedo(t *testing.T) {
	c := newTestCircle()
	newLayer := units.LayerBotCopper

	cmd := NewCmdEditElement(c, "Change layer", func(c *geo.Circle) {
		c.SetLayer(newLayer)
	})
	if c.Layer() != units.LayerTopCopper {
		t.Fatalf("constructing the command should leave the target unchanged, got %v", c.Layer())
	}

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.Layer() != newLayer {
		t.Fatalf("Layer() after Execute = %v, want %v", c.Layer(), newLayer)
	}

	if err := cmd.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if c.Layer() != units.LayerTopCopper {
		t.Fatalf("Layer() after Undo = %v, want top_copper", c.Layer())
	}

	if err := cmd.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if c.Layer() != newLayer {
		t.Fatalf("Layer() after Redo = %v, want %v", c.Layer(), newLayer)
	}
}

func TestCmdEditElementIsNoOp(t *testing.T) {
	c := newTestCircle()
	cmd := NewCmdEditElement(c, "no change", func(c *geo.Circle) {
		c.SetLayer(units.LayerTopCopper)
	})
	if !cmd.IsNoOp() {
		t.Error("expected IsNoOp() when mutate leaves the element unchanged")
	}
}

func TestCmdEditElementDescription(t *testing.T) {
	c := newTestCircle()
	cmd := NewCmdEditElement(c, "Change diameter", func(c *geo.Circle) {
		c.SetDiameter(units.MustPositiveLength(units.NewLength(2000000)))
	})
	if cmd.Description() != "Change diameter" {
		t.Errorf("Description() = %q", cmd.Description())
	}
}

func TestNewCmdCommitLiveEdit(t *testing.T) {
	c := newTestCircle()
	before := c.Clone()
	c.SetCenter(units.NewPoint(units.NewLength(500000), units.NewLength(500000)))

	cmd := NewCmdCommitLiveEdit(c, before, "Drag circle")
	if cmd.IsNoOp() {
		t.Fatal("a live edit that moved the circle should not be a no-op")
	}

	if err := cmd.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if c.Center() != units.Origin {
		t.Fatalf("Center() after Undo = %v, want origin", c.Center())
	}
	if err := cmd.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if c.Center() != units.NewPoint(units.NewLength(500000), units.NewLength(500000)) {
		t.Fatalf("Center() after Redo = %v", c.Center())
	}
}
