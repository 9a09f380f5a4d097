package editcmd

import (
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/objlist"
)

// CmdListElementInsert reversibly inserts an element into an
// objlist.List at a fixed index.
type CmdListElementInsert[T objlist.Element] struct {
	list        *objlist.List[T]
	index       int
	element     T
	description string
}

// NewCmdListElementInsert constructs an insert command. index ==
// list.Len() at construction time appends.
func NewCmdListElementInsert[T objlist.Element](list *objlist.List[T], index int, element T, description string) *CmdListElementInsert[T] {
	return &CmdListElementInsert[T]{list: list, index: index, element: element, description: description}
}

func (c *CmdListElementInsert[T]) Execute() error {
	return c.list.Insert(c.index, c.element)
}

func (c *CmdListElementInsert[T]) Undo() error {
	_, err := c.list.Remove(c.element.UUID())
	return err
}

func (c *CmdListElementInsert[T]) Redo() error { return c.Execute() }

func (c *CmdListElementInsert[T]) Description() string { return c.description }

// CmdListElementRemove reversibly removes an element from an
// objlist.List, remembering its index so undo reinserts it in the same
// position rather than at the end.
type CmdListElementRemove[T objlist.Element] struct {
	list        *objlist.List[T]
	id          ident.UUID
	index       int
	element     T
	description string
}

// NewCmdListElementRemove constructs a remove command for the element
// currently identified by id in list.
func NewCmdListElementRemove[T objlist.Element](list *objlist.List[T], id ident.UUID, description string) (*CmdListElementRemove[T], error) {
	el, err := list.Get(id)
	if err != nil {
		return nil, err
	}
	return &CmdListElementRemove[T]{
		list: list, id: id, index: list.IndexOf(id), element: el, description: description,
	}, nil
}

func (c *CmdListElementRemove[T]) Execute() error {
	_, err := c.list.Remove(c.id)
	return err
}

func (c *CmdListElementRemove[T]) Undo() error {
	return c.list.Insert(c.index, c.element)
}

func (c *CmdListElementRemove[T]) Redo() error { return c.Execute() }

func (c *CmdListElementRemove[T]) Description() string { return c.description }

// CmdListElementsSwap reversibly exchanges the elements at two indices
// of an objlist.List (e.g. reordering footprint pad rows). Swapping
// twice at the same pair of indices is its own inverse.
type CmdListElementsSwap[T objlist.Element] struct {
	list        *objlist.List[T]
	i, j        int
	description string
}

// NewCmdListElementsSwap constructs a swap command.
func NewCmdListElementsSwap[T objlist.Element](list *objlist.List[T], i, j int, description string) *CmdListElementsSwap[T] {
	return &CmdListElementsSwap[T]{list: list, i: i, j: j, description: description}
}

func (c *CmdListElementsSwap[T]) apply() error { return c.list.Swap(c.i, c.j) }

func (c *CmdListElementsSwap[T]) Execute() error { return c.apply() }
func (c *CmdListElementsSwap[T]) Undo() error    { return c.apply() }
func (c *CmdListElementsSwap[T]) Redo() error    { return c.apply() }

func (c *CmdListElementsSwap[T]) Description() string { return c.description }
