package editcmd

import (
	"testing"

	"github.com/librepcb/pkgeditor/internal/units"
)

func TestCmdTranslateExecuteUndo(t *testing.T) {
	c := newTestCircle()
	dx, dy := units.NewLength(100000), units.NewLength(-50000)
	cmd := NewCmdTranslate(c, dx, dy, "Move circle")

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := units.NewPoint(dx, dy)
	if c.Center() != want {
		t.Fatalf("Center() after Execute = %v, want %v", c.Center(), want)
	}

	if err := cmd.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if c.Center() != units.Origin {
		t.Fatalf("Center() after Undo = %v, want origin", c.Center())
	}
}

func TestCmdRotateExecuteUndo(t *testing.T) {
	c := newTestCircle()
	c.SetCenter(units.NewPoint(units.NewLength(1000000), 0))
	angle := units.AngleFromDegrees(90)
	cmd := NewCmdRotate(c, angle, units.Origin, "Rotate circle")

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	rotated := c.Center()

	if err := cmd.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	back := c.Center()
	if rotated == back {
		t.Fatal("rotate should have moved the center away from its rotated position on undo")
	}
	if diff := back.X - 1000000; diff > 5 || diff < -5 {
		t.Errorf("Center().X after Undo = %d, want approx 1000000", back.X)
	}
}

func TestCmdMirrorGeometryIsSelfInverse(t *testing.T) {
	c := newTestCircle()
	c.SetCenter(units.NewPoint(units.NewLength(1000000), units.NewLength(500000)))
	original := c.Center()

	cmd := NewCmdMirrorGeometry(c, units.Horizontal, units.Origin, "Mirror circle")
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.Center() == original {
		t.Fatal("mirroring should change the center")
	}
	if err := cmd.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if c.Center() != original {
		t.Fatalf("Center() after Undo = %v, want %v (mirror is self-inverse)", c.Center(), original)
	}
}

func TestNewCmdSnapToGridIsATranslate(t *testing.T) {
	c := newTestCircle()
	dx, dy := units.NewLength(10), units.NewLength(20)
	cmd := NewCmdSnapToGrid(c, dx, dy, "Snap to grid")
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.Center() != units.NewPoint(dx, dy) {
		t.Fatalf("Center() = %v, want (%d, %d)", c.Center(), dx, dy)
	}
}
