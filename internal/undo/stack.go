package undo

import (
	"github.com/librepcb/pkgeditor/internal/signal"
	"github.com/librepcb/pkgeditor/internal/xerrors"
)

// StackEventKind enumerates the ways a Stack's state can change.
type StackEventKind uint8

const (
	StackCanUndoChanged StackEventKind = iota
	StackCanRedoChanged
	StackCleanChanged
)

// StackEvent is emitted whenever a Stack's undo/redo availability or
// clean-mark changes, driving the editor's undo menu and title-bar
// asterisk.
type StackEvent struct {
	Kind  StackEventKind
	Stack *Stack
}

// Stack is a linear undo/redo history with a clean mark: the index into
// the command list that corresponds to "no unsaved changes" (normally
// set right after a save). Unlike a classic two-stack undo/redo, History
// here is a single slice with a cursor, so the clean mark survives
// across any number of undo/redo round-trips as long as the index it
// names isn't itself undone past.
type Stack struct {
	commands []Command
	index    int // number of commands currently applied, 0..len(commands)
	cleanAt  int // index value considered clean, or -1 if never clean

	// Transaction state. nil when not in a transaction.
	tx *transaction

	Changed signal.Signal[StackEvent]
}

type transaction struct {
	name     string
	commands []Command
}

// NewStack constructs an empty, clean Stack.
func NewStack() *Stack {
	return &Stack{cleanAt: 0}
}

// CanUndo reports whether Undo would succeed. It is false while a
// transaction is open: a group's commands aren't on the history yet, so
// there is nothing coherent for Undo to reverse until it is committed or
// aborted.
func (s *Stack) CanUndo() bool { return s.tx == nil && s.index > 0 }

// CanRedo reports whether Redo would succeed.
func (s *Stack) CanRedo() bool { return s.index < len(s.commands) }

// IsClean reports whether the stack is at its clean mark.
func (s *Stack) IsClean() bool { return s.index == s.cleanAt }

// SetClean marks the current index as the clean point (typically called
// right after a successful save).
func (s *Stack) SetClean() {
	wasClean := s.IsClean()
	s.cleanAt = s.index
	if !wasClean {
		s.Changed.Emit(StackEvent{Kind: StackCleanChanged, Stack: s})
	}
}

// noOpAware is implemented by commands (editcmd.CmdEditElement and
// dragcmd.CmdDragSelectedFootprintItems) that can detect their own
// before/after state ended up identical, so the stack can discard them
// instead of cluttering the undo menu with entries that do nothing.
type noOpAware interface {
	IsNoOp() bool
}

func isNoOp(cmd Command) bool {
	n, ok := cmd.(noOpAware)
	return ok && n.IsNoOp()
}

// ExecCmd runs cmd immediately and pushes it onto the history, discarding
// any redo entries beyond the current index. It rejects calls made while
// a transaction is open: a caller inside a BeginCmdGroup/CommitCmdGroup
// span must use AppendToCmdGroup explicitly rather than have ExecCmd
// silently reroute into the group. A command that reports IsNoOp() is
// executed (for side effects already applied live) but never retained.
func (s *Stack) ExecCmd(cmd Command) error {
	if s.tx != nil {
		return xerrors.ErrActiveTransaction
	}
	if err := cmd.Execute(); err != nil {
		return err
	}
	if isNoOp(cmd) {
		return nil
	}
	s.push(cmd)
	return nil
}

func (s *Stack) push(cmd Command) {
	couldUndo := s.CanUndo()
	couldRedo := s.CanRedo()
	wasClean := s.IsClean()

	s.commands = append(s.commands[:s.index], cmd)
	s.index++
	if s.cleanAt > len(s.commands) {
		s.cleanAt = -1
	}

	if s.CanUndo() != couldUndo {
		s.Changed.Emit(StackEvent{Kind: StackCanUndoChanged, Stack: s})
	}
	if s.CanRedo() != couldRedo {
		s.Changed.Emit(StackEvent{Kind: StackCanRedoChanged, Stack: s})
	}
	if s.IsClean() != wasClean {
		s.Changed.Emit(StackEvent{Kind: StackCleanChanged, Stack: s})
	}
}

// BeginCmdGroup opens a transaction. Commands passed to AppendToCmdGroup
// until the matching CommitCmdGroup or AbortCmdGroup are collected into a
// Group rather than pushed individually; ExecCmd is rejected meanwhile. Transactions do not nest: starting one
// while another is open is a logic error, since every caller in this
// codebase either commits or aborts before returning.
func (s *Stack) BeginCmdGroup(name string) error {
	if s.tx != nil {
		return xerrors.ErrActiveTransaction
	}
	s.tx = &transaction{name: name}
	return nil
}

// AppendToCmdGroup executes cmd and appends it to the open transaction
// without requiring it to flow through ExecCmd.
func (s *Stack) AppendToCmdGroup(cmd Command) error {
	return s.appendToTransaction(cmd)
}

func (s *Stack) appendToTransaction(cmd Command) error {
	if s.tx == nil {
		return xerrors.NewLogicError("undo.Stack: no active transaction")
	}
	if err := cmd.Execute(); err != nil {
		return err
	}
	if isNoOp(cmd) {
		return nil
	}
	s.tx.commands = append(s.tx.commands, cmd)
	return nil
}

// InTransaction reports whether a transaction is currently open.
func (s *Stack) InTransaction() bool { return s.tx != nil }

// CommitCmdGroup closes the open transaction. If it collected zero
// commands, nothing is pushed and the stack is left unchanged (a no-op
// commit never appears in the undo menu). One command is pushed
// directly, unwrapped, rather than as a degenerate single-entry group.
func (s *Stack) CommitCmdGroup() error {
	if s.tx == nil {
		return xerrors.NewLogicError("undo.Stack: no active transaction")
	}
	tx := s.tx
	s.tx = nil

	switch len(tx.commands) {
	case 0:
		return nil
	case 1:
		s.push(tx.commands[0])
	default:
		s.push(NewGroup(tx.name, tx.commands))
	}
	return nil
}

// AbortCmdGroup undoes every command executed since BeginCmdGroup, in
// reverse order, and discards the transaction without touching history.
func (s *Stack) AbortCmdGroup() error {
	if s.tx == nil {
		return xerrors.NewLogicError("undo.Stack: no active transaction")
	}
	tx := s.tx
	s.tx = nil

	for i := len(tx.commands) - 1; i >= 0; i-- {
		if err := tx.commands[i].Undo(); err != nil {
			return err
		}
	}
	return nil
}

// Undo reverses the most recently applied command. It is a no-op while
// a transaction is open, rather than an error, since a global undo
// shortcut firing mid-group is expected to do nothing until the group
// resolves.
func (s *Stack) Undo() error {
	if s.tx != nil {
		return nil
	}
	if !s.CanUndo() {
		return xerrors.NewLogicError("undo.Stack: nothing to undo")
	}
	couldRedo := s.CanRedo()
	wasClean := s.IsClean()

	cmd := s.commands[s.index-1]
	if err := cmd.Undo(); err != nil {
		return err
	}
	s.index--

	if !s.CanUndo() {
		s.Changed.Emit(StackEvent{Kind: StackCanUndoChanged, Stack: s})
	}
	if s.CanRedo() != couldRedo {
		s.Changed.Emit(StackEvent{Kind: StackCanRedoChanged, Stack: s})
	}
	if s.IsClean() != wasClean {
		s.Changed.Emit(StackEvent{Kind: StackCleanChanged, Stack: s})
	}
	return nil
}

// Redo re-applies the most recently undone command. Unlike Undo, it
// returns ErrActiveTransaction while a transaction is open.
func (s *Stack) Redo() error {
	if s.tx != nil {
		return xerrors.ErrActiveTransaction
	}
	if !s.CanRedo() {
		return xerrors.NewLogicError("undo.Stack: nothing to redo")
	}
	couldUndo := s.CanUndo()
	wasClean := s.IsClean()

	cmd := s.commands[s.index]
	if err := cmd.Redo(); err != nil {
		return err
	}
	s.index++

	if !s.CanRedo() {
		s.Changed.Emit(StackEvent{Kind: StackCanRedoChanged, Stack: s})
	}
	if s.CanUndo() != couldUndo {
		s.Changed.Emit(StackEvent{Kind: StackCanUndoChanged, Stack: s})
	}
	if s.IsClean() != wasClean {
		s.Changed.Emit(StackEvent{Kind: StackCleanChanged, Stack: s})
	}
	return nil
}

// Clear discards the entire history without undoing anything, leaving
// the document state as-is. Used when closing a tab without saving.
func (s *Stack) Clear() {
	s.commands = nil
	s.index = 0
	s.cleanAt = -1
}

// UndoText returns the description of the command Undo would reverse,
// or "" if CanUndo is false.
func (s *Stack) UndoText() string {
	if !s.CanUndo() {
		return ""
	}
	return s.commands[s.index-1].Description()
}

// RedoText returns the description of the command Redo would re-apply,
// or "" if CanRedo is false.
func (s *Stack) RedoText() string {
	if !s.CanRedo() {
		return ""
	}
	return s.commands[s.index].Description()
}
