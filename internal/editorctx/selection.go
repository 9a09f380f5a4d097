package editorctx

import "github.com/librepcb/pkgeditor/internal/ident"

// Selection is the default SelectionInterface implementation: an
// insertion-ordered set of UUIDs, used by tests and by the orchestrator
// unless the UI layer supplies a scene-graph-backed one of its own.
type Selection struct {
	order []ident.UUID
	set   map[ident.UUID]bool
}

// NewSelection constructs an empty Selection.
func NewSelection() *Selection {
	return &Selection{set: map[ident.UUID]bool{}}
}

func (s *Selection) UUIDs() []ident.UUID { return append([]ident.UUID(nil), s.order...) }

func (s *Selection) Contains(id ident.UUID) bool { return s.set[id] }

func (s *Selection) Count() int { return len(s.order) }

func (s *Selection) Clear() {
	s.order = nil
	s.set = map[ident.UUID]bool{}
}

// SetAll replaces the selection wholesale.
func (s *Selection) SetAll(ids []ident.UUID) {
	s.Clear()
	for _, id := range ids {
		s.Add(id)
	}
}

// Add inserts id if not already present.
func (s *Selection) Add(id ident.UUID) {
	if s.set[id] {
		return
	}
	s.set[id] = true
	s.order = append(s.order, id)
}

// Toggle adds id if absent, removes it if present.
func (s *Selection) Toggle(id ident.UUID) {
	if s.set[id] {
		s.Remove(id)
		return
	}
	s.Add(id)
}

// Remove deletes id from the selection if present.
func (s *Selection) Remove(id ident.UUID) {
	if !s.set[id] {
		return
	}
	delete(s.set, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

var _ SelectionInterface = (*Selection)(nil)
