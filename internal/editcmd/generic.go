package editcmd

// snapshotable is the shape every internal/geo primitive exposes: a deep
// Clone for snapshotting, an Assign that reassigns every field (and
// fires the matching change events) from another instance, and an Equal
// used to detect a no-op edit so the undo stack can discard it.
type snapshotable[T any] interface {
	*T
	Assign(*T)
	Clone() *T
	Equal(*T) bool
}

// CmdEditElement is a reversible edit of a single internal/geo element's
// fields. NewCmdEditElement takes a mutate func that applies the setters;
// it snapshots both the before and after state and leaves the element in
// the before state until the command is executed through an undo.Stack.
type CmdEditElement[T any, PT snapshotable[T]] struct {
	target      PT
	old, new    PT
	description string
}

// NewCmdEditElement snapshots target's current state as "old", applies
// mutate and snapshots the result as "new", then restores target to old
// until Execute is called.
//
// Typical use:
//
//	cmd := editcmd.NewCmdEditElement(circle, "Change circle layer", func(c *geo.Circle) {
//		c.SetLayer(newLayer)
//	})
//	stack.ExecCmd(cmd)
func NewCmdEditElement[T any, PT snapshotable[T]](target PT, description string, mutate func(PT)) *CmdEditElement[T, PT] {
	old := target.Clone()
	mutate(target)
	newState := target.Clone()
	target.Assign(old)
	return &CmdEditElement[T, PT]{target: target, old: old, new: newState, description: description}
}

func (c *CmdEditElement[T, PT]) Execute() error {
	c.target.Assign(c.new)
	return nil
}

func (c *CmdEditElement[T, PT]) Undo() error {
	c.target.Assign(c.old)
	return nil
}

func (c *CmdEditElement[T, PT]) Redo() error { return c.Execute() }

func (c *CmdEditElement[T, PT]) Description() string { return c.description }

// IsNoOp reports whether old and new are field-wise equal, letting
// undo.Stack.ExecCmd discard a command that ended up changing nothing.
func (c *CmdEditElement[T, PT]) IsNoOp() bool { return c.old.Equal(c.new) }

// NewCmdCommitLiveEdit builds a CmdEditElement from a drag/draw
// interaction that has already applied its changes directly to target
// (an "immediate" edit, used so the user gets live feedback during a
// mouse-move before any command reaches the undo stack). before is the
// snapshot taken right as the interaction started; target's current
// state becomes the "new" snapshot as-is, with no further mutation or
// rollback.
func NewCmdCommitLiveEdit[T any, PT snapshotable[T]](target PT, before PT, description string) *CmdEditElement[T, PT] {
	return &CmdEditElement[T, PT]{target: target, old: before, new: target.Clone(), description: description}
}
