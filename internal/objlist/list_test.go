package objlist

import (
	"testing"

	"github.com/librepcb/pkgeditor/internal/ident"
)

type fakeElement struct {
	id   ident.UUID
	name string
}

func (f *fakeElement) UUID() ident.UUID { return f.id }
func (f *fakeElement) Name() string     { return f.name }

func newFake(name string) *fakeElement {
	return &fakeElement{id: ident.NewUUID(), name: name}
}

func TestListAppendAndAt(t *testing.T) {
	l := New[*fakeElement]()
	a := newFake("a")
	b := newFake("b")
	if err := l.Append(a); err != nil {
		t.Fatalf("Append a: %v", err)
	}
	if err := l.Append(b); err != nil {
		t.Fatalf("Append b: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	got, err := l.At(0)
	if err != nil || got != a {
		t.Fatalf("At(0) = %v, %v, want %v", got, err, a)
	}
}

func TestListAtOutOfRange(t *testing.T) {
	l := New[*fakeElement]()
	if _, err := l.At(0); err == nil {
		t.Fatal("expected error for empty list")
	}
}

func TestListInsertRejectsDuplicateUUID(t *testing.T) {
	l := New[*fakeElement]()
	a := newFake("a")
	if err := l.Append(a); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := l.Insert(0, a); err == nil {
		t.Fatal("expected error inserting duplicate UUID")
	}
}

func TestListInsertAtIndexShiftsLaterElements(t *testing.T) {
	l := New[*fakeElement]()
	a, b, c := newFake("a"), newFake("b"), newFake("c")
	_ = l.Append(a)
	_ = l.Append(c)
	if err := l.Insert(1, b); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	got := l.All()
	if got[0] != a || got[1] != b || got[2] != c {
		t.Fatalf("order = %v, want [a b c]", got)
	}
}

func TestListRemoveByUUID(t *testing.T) {
	l := New[*fakeElement]()
	a, b := newFake("a"), newFake("b")
	_ = l.Append(a)
	_ = l.Append(b)
	removed, err := l.Remove(a.UUID())
	if err != nil || removed != a {
		t.Fatalf("Remove = %v, %v", removed, err)
	}
	if l.Contains(a.UUID()) {
		t.Fatal("a should no longer be present")
	}
	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
}

func TestListRemoveUnknownUUIDErrors(t *testing.T) {
	l := New[*fakeElement]()
	if _, err := l.Remove(ident.NewUUID()); err == nil {
		t.Fatal("expected error removing unknown UUID")
	}
}

func TestListTakeOkFlag(t *testing.T) {
	l := New[*fakeElement]()
	a := newFake("a")
	_ = l.Append(a)
	if _, ok := l.Take(ident.NewUUID()); ok {
		t.Fatal("Take of unknown UUID should report ok=false")
	}
	got, ok := l.Take(a.UUID())
	if !ok || got != a {
		t.Fatalf("Take(a) = %v, %v", got, ok)
	}
	if l.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", l.Len())
	}
}

func TestListSwap(t *testing.T) {
	l := New[*fakeElement]()
	a, b := newFake("a"), newFake("b")
	_ = l.Append(a)
	_ = l.Append(b)
	if err := l.Swap(0, 1); err != nil {
		t.Fatalf("Swap: %v", err)
	}
	got := l.All()
	if got[0] != b || got[1] != a {
		t.Fatalf("order after swap = %v, want [b a]", got)
	}
}

func TestListChangedEmitsOnMutation(t *testing.T) {
	l := New[*fakeElement]()
	var kinds []EventKind
	l.Changed.Subscribe(func(e Event[*fakeElement]) { kinds = append(kinds, e.Kind) })

	a := newFake("a")
	_ = l.Append(a)
	_ = l.NotifyEdited(0)
	_, _ = l.Remove(a.UUID())

	want := []EventKind{ElementAdded, ElementEdited, ElementRemoved}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestListUUIDSetAndUUIDs(t *testing.T) {
	l := New[*fakeElement]()
	a, b := newFake("a"), newFake("b")
	_ = l.Append(a)
	_ = l.Append(b)

	set := l.UUIDSet()
	if !set[a.UUID()] || !set[b.UUID()] || len(set) != 2 {
		t.Fatalf("UUIDSet() = %v", set)
	}
	ids := l.UUIDs()
	if len(ids) != 2 || ids[0] != a.UUID() || ids[1] != b.UUID() {
		t.Fatalf("UUIDs() = %v", ids)
	}
}

func TestListSortedByUUIDAndByName(t *testing.T) {
	l := New[*fakeElement]()
	zed := newFake("zed")
	alpha := newFake("alpha")
	_ = l.Append(zed)
	_ = l.Append(alpha)

	byName := SortedByName(l)
	if byName[0].Name() != "alpha" || byName[1].Name() != "zed" {
		t.Fatalf("SortedByName = %v", byName)
	}

	byUUID := l.SortedByUUID()
	if len(byUUID) != 2 {
		t.Fatalf("SortedByUUID len = %d, want 2", len(byUUID))
	}
	if byUUID[0].UUID().Compare(byUUID[1].UUID()) > 0 {
		t.Fatal("SortedByUUID not in ascending order")
	}
}
