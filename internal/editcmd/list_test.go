package editcmd

import (
	"testing"

	"github.com/librepcb/pkgeditor/internal/geo"
	"github.com/librepcb/pkgeditor/internal/objlist"
)

func newTestList(t *testing.T, n int) (*objlist.List[*geo.Circle], []*geo.Circle) {
	t.Helper()
	list := objlist.New[*geo.Circle]()
	var circles []*geo.Circle
	for i := 0; i < n; i++ {
		c := newTestCircle()
		if err := list.Append(c); err != nil {
			t.Fatalf("Append: %v", err)
		}
		circles = append(circles, c)
	}
	return list, circles
}

func TestCmdListElementInsertExecuteUndoRedo(t *testing.T) {
	list, _ := newTestList(t, 0)
	el := newTestCircle()
	cmd := NewCmdListElementInsert[*geo.Circle](list, 0, el, "Add circle")

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if list.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", list.Len())
	}

	if err := cmd.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if list.Len() != 0 {
		t.Fatalf("Len() after Undo = %d, want 0", list.Len())
	}

	if err := cmd.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if list.Len() != 1 || !list.Contains(el.UUID()) {
		t.Fatal("Redo should reinsert the same element")
	}
}

func TestCmdListElementRemoveExecuteUndoRestoresIndex(t *testing.T) {
	list, circles := newTestList(t, 3)
	target := circles[1]

	cmd, err := NewCmdListElementRemove[*geo.Circle](list, target.UUID(), "Remove circle")
	if err != nil {
		t.Fatalf("NewCmdListElementRemove: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if list.Contains(target.UUID()) {
		t.Fatal("element should be removed after Execute")
	}

	if err := cmd.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if list.IndexOf(target.UUID()) != 1 {
		t.Fatalf("IndexOf after Undo = %d, want 1 (original position)", list.IndexOf(target.UUID()))
	}
}

func TestNewCmdListElementRemoveUnknownUUIDErrors(t *testing.T) {
	list, _ := newTestList(t, 1)
	if _, err := NewCmdListElementRemove[*geo.Circle](list, newTestCircle().UUID(), "x"); err == nil {
		t.Fatal("expected error constructing remove command for unknown UUID")
	}
}

func TestCmdListElementsSwapIsSelfInverse(t *testing.T) {
	list, circles := newTestList(t, 3)
	cmd := NewCmdListElementsSwap[*geo.Circle](list, 0, 2, "Reorder")

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	got := list.All()
	if got[0] != circles[2] || got[2] != circles[0] {
		t.Fatalf("order after swap = %v", got)
	}

	if err := cmd.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	got = list.All()
	if got[0] != circles[0] || got[2] != circles[2] {
		t.Fatalf("order after undo = %v, want original", got)
	}
}
