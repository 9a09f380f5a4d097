package objlist

import (
	"sort"

	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/signal"
	"github.com/librepcb/pkgeditor/internal/xerrors"
)

// Element is anything a List can hold: every primitive entity in
// internal/geo satisfies this by exposing its identity UUID.
type Element interface {
	UUID() ident.UUID
}

// Named is an Element that additionally carries a display name, letting
// a List be sorted or looked up by name rather than only by UUID.
type Named interface {
	Element
	Name() string
}

// EventKind enumerates the ways a List's contents can change.
type EventKind uint8

const (
	ElementAdded EventKind = iota
	ElementRemoved
	ElementEdited
)

// Event is emitted whenever a List's contents change. Index is the
// element's position at the time of the event; for ElementEdited it is
// the position of the element whose content (not identity) changed.
type Event[T Element] struct {
	Kind    EventKind
	Index   int
	Element T
}

// List is an ordered, UUID-unique collection of elements, used for every
// primitive collection a package or footprint owns (circles, holes,
// pads, and so on). Index order is the library's authoritative
// save/render order; UUID identity is what undo commands and foreign-key
// references (like FootprintPad.PackagePadUUID) key off of.
type List[T Element] struct {
	items   []T
	Changed signal.Signal[Event[T]]
}

// New constructs an empty List.
func New[T Element]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return len(l.items) }

// At returns the element at index i.
func (l *List[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(l.items) {
		return zero, xerrors.NewOutOfRange(i)
	}
	return l.items[i], nil
}

// All returns a copy of the underlying slice in index order.
func (l *List[T]) All() []T { return append([]T(nil), l.items...) }

// IndexOf returns the index of the element with the given UUID, or -1.
func (l *List[T]) IndexOf(id ident.UUID) int {
	for i, it := range l.items {
		if it.UUID().Equal(id) {
			return i
		}
	}
	return -1
}

// Contains reports whether an element with the given UUID exists.
func (l *List[T]) Contains(id ident.UUID) bool { return l.IndexOf(id) >= 0 }

// Get returns the element with the given UUID.
func (l *List[T]) Get(id ident.UUID) (T, error) {
	var zero T
	i := l.IndexOf(id)
	if i < 0 {
		return zero, xerrors.NewKeyNotFound("objlist.Element", id.String())
	}
	return l.items[i], nil
}

// Insert places el at index i, shifting later elements up. i ==
// l.Len() appends. Returns an error if el's UUID is already present.
func (l *List[T]) Insert(i int, el T) error {
	if l.Contains(el.UUID()) {
		return xerrors.NewInvalidValue("uuid", el.UUID().String())
	}
	if i < 0 || i > len(l.items) {
		return xerrors.NewOutOfRange(i)
	}
	l.items = append(l.items, el)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = el
	l.Changed.Emit(Event[T]{Kind: ElementAdded, Index: i, Element: el})
	return nil
}

// Append adds el to the end of the list.
func (l *List[T]) Append(el T) error { return l.Insert(len(l.items), el) }

// RemoveAt removes and returns the element at index i.
func (l *List[T]) RemoveAt(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(l.items) {
		return zero, xerrors.NewOutOfRange(i)
	}
	el := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.Changed.Emit(Event[T]{Kind: ElementRemoved, Index: i, Element: el})
	return el, nil
}

// Remove removes the element with the given UUID.
func (l *List[T]) Remove(id ident.UUID) (T, error) {
	var zero T
	i := l.IndexOf(id)
	if i < 0 {
		return zero, xerrors.NewKeyNotFound("objlist.Element", id.String())
	}
	return l.RemoveAt(i)
}

// Take removes and returns the element with the given UUID without
// reporting an error if absent; ok is false when nothing was removed.
// Useful for move-between-lists operations where "not here" is routine.
func (l *List[T]) Take(id ident.UUID) (el T, ok bool) {
	i := l.IndexOf(id)
	if i < 0 {
		return el, false
	}
	el, _ = l.RemoveAt(i)
	return el, true
}

// Swap exchanges the elements at indices i and j in place, emitting two
// ElementRemoved/ElementAdded event pairs so observers see the same
// shape of event they'd see from a remove-then-reinsert, without the
// list ever containing only one of the two items.
func (l *List[T]) Swap(i, j int) error {
	if i < 0 || i >= len(l.items) || j < 0 || j >= len(l.items) {
		return xerrors.NewOutOfRange(i)
	}
	if i == j {
		return nil
	}
	a, b := l.items[i], l.items[j]
	l.Changed.Emit(Event[T]{Kind: ElementRemoved, Index: i, Element: a})
	l.Changed.Emit(Event[T]{Kind: ElementRemoved, Index: j, Element: b})
	l.items[i], l.items[j] = b, a
	l.Changed.Emit(Event[T]{Kind: ElementAdded, Index: i, Element: b})
	l.Changed.Emit(Event[T]{Kind: ElementAdded, Index: j, Element: a})
	return nil
}

// NotifyEdited reports that the content (not position or identity) of
// the element at index i changed, letting observers that only care
// about membership distinguish edits from structural changes.
func (l *List[T]) NotifyEdited(i int) error {
	if i < 0 || i >= len(l.items) {
		return xerrors.NewOutOfRange(i)
	}
	l.Changed.Emit(Event[T]{Kind: ElementEdited, Index: i, Element: l.items[i]})
	return nil
}

// UUIDs returns the UUIDs of every element in index order.
func (l *List[T]) UUIDs() []ident.UUID {
	out := make([]ident.UUID, len(l.items))
	for i, it := range l.items {
		out[i] = it.UUID()
	}
	return out
}

// UUIDSet returns the UUIDs of every element as a set for fast
// membership checks (e.g. validating a device pad-signal map against its
// package's pad list).
func (l *List[T]) UUIDSet() map[ident.UUID]bool {
	out := make(map[ident.UUID]bool, len(l.items))
	for _, it := range l.items {
		out[it.UUID()] = true
	}
	return out
}

// SortedByUUID returns a copy of the elements ordered by UUID, for
// deterministic serialization independent of edit history.
func (l *List[T]) SortedByUUID() []T {
	out := l.All()
	sort.Slice(out, func(i, j int) bool {
		return out[i].UUID().Compare(out[j].UUID()) < 0
	})
	return out
}

// SortedByName returns a copy of the elements ordered by name, for
// library browsers and pad-mapping tables. T must implement Named; this
// is enforced by the caller choosing a List[T] with a Named T.
func SortedByName[T Named](l *List[T]) []T {
	out := l.All()
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name() < out[j].Name()
	})
	return out
}
