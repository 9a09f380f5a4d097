package undo

import (
	"errors"
	"testing"

	"github.com/librepcb/pkgeditor/internal/xerrors"
)

type fakeCmd struct {
	desc           string
	value          *int
	delta          int
	executeErr     error
	undoErr        error
	executed       bool
	noOp           bool
	executionCount int
}

func (c *fakeCmd) Execute() error {
	c.executionCount++
	if c.executeErr != nil {
		return c.executeErr
	}
	*c.value += c.delta
	c.executed = true
	return nil
}

func (c *fakeCmd) Undo() error {
	if c.undoErr != nil {
		return c.undoErr
	}
	*c.value -= c.delta
	return nil
}

func (c *fakeCmd) Redo() error { return c.Execute() }

func (c *fakeCmd) Description() string { return c.desc }

func (c *fakeCmd) IsNoOp() bool { return c.noOp }

func TestStackExecCmdAndUndoRedo(t *testing.T) {
	s := NewStack()
	v := 0
	cmd := &fakeCmd{desc: "add 5", value: &v, delta: 5}

	if err := s.ExecCmd(cmd); err != nil {
		t.Fatalf("ExecCmd: %v", err)
	}
	if v != 5 {
		t.Fatalf("v = %d, want 5", v)
	}
	if !s.CanUndo() || s.CanRedo() {
		t.Fatalf("CanUndo/CanRedo = %v/%v, want true/false", s.CanUndo(), s.CanRedo())
	}

	if err := s.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if v != 0 {
		t.Fatalf("v after undo = %d, want 0", v)
	}
	if s.CanUndo() || !s.CanRedo() {
		t.Fatalf("CanUndo/CanRedo after undo = %v/%v, want false/true", s.CanUndo(), s.CanRedo())
	}

	if err := s.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if v != 5 {
		t.Fatalf("v after redo = %d, want 5", v)
	}
}

func TestStackUndoRedoEmptyErrors(t *testing.T) {
	s := NewStack()
	if err := s.Undo(); err == nil {
		t.Fatal("expected error undoing empty stack")
	}
	if err := s.Redo(); err == nil {
		t.Fatal("expected error redoing empty stack")
	}
}

func TestStackExecCmdDiscardsRedoEntries(t *testing.T) {
	s := NewStack()
	v := 0
	first := &fakeCmd{desc: "first", value: &v, delta: 1}
	second := &fakeCmd{desc: "second", value: &v, delta: 2}
	third := &fakeCmd{desc: "third", value: &v, delta: 4}

	_ = s.ExecCmd(first)
	_ = s.ExecCmd(second)
	_ = s.Undo()
	_ = s.ExecCmd(third)

	if s.CanRedo() {
		t.Fatal("redo entry from second should have been discarded")
	}
	if v != 1+4 {
		t.Fatalf("v = %d, want %d", v, 1+4)
	}
}

func TestStackCleanMark(t *testing.T) {
	s := NewStack()
	if !s.IsClean() {
		t.Fatal("fresh stack should be clean")
	}
	v := 0
	_ = s.ExecCmd(&fakeCmd{desc: "x", value: &v, delta: 1})
	if s.IsClean() {
		t.Fatal("stack should be dirty after a command")
	}
	s.SetClean()
	if !s.IsClean() {
		t.Fatal("stack should be clean after SetClean")
	}
	_ = s.Undo()
	if s.IsClean() {
		t.Fatal("undoing past the clean mark should be dirty")
	}
}

func TestStackExecCmdSkipsNoOpCommands(t *testing.T) {
	s := NewStack()
	v := 0
	cmd := &fakeCmd{desc: "noop", value: &v, delta: 0, noOp: true}
	if err := s.ExecCmd(cmd); err != nil {
		t.Fatalf("ExecCmd: %v", err)
	}
	if s.CanUndo() {
		t.Fatal("a no-op command should not be retained on the stack")
	}
}

func TestStackExecCmdPropagatesExecuteError(t *testing.T) {
	s := NewStack()
	v := 0
	wantErr := errors.New("boom")
	cmd := &fakeCmd{desc: "fails", value: &v, delta: 1, executeErr: wantErr}
	if err := s.ExecCmd(cmd); !errors.Is(err, wantErr) {
		t.Fatalf("ExecCmd error = %v, want %v", err, wantErr)
	}
	if s.CanUndo() {
		t.Fatal("a failed command should not be pushed")
	}
}

func TestStackTransactionCommit(t *testing.T) {
	s := NewStack()
	v := 0
	if err := s.BeginCmdGroup("move"); err != nil {
		t.Fatalf("BeginCmdGroup: %v", err)
	}
	_ = s.AppendToCmdGroup(&fakeCmd{desc: "a", value: &v, delta: 1})
	_ = s.AppendToCmdGroup(&fakeCmd{desc: "b", value: &v, delta: 2})
	if err := s.CommitCmdGroup(); err != nil {
		t.Fatalf("CommitCmdGroup: %v", err)
	}
	if v != 3 {
		t.Fatalf("v = %d, want 3", v)
	}
	if s.UndoText() != "move" {
		t.Fatalf("UndoText() = %q, want move", s.UndoText())
	}
	if err := s.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if v != 0 {
		t.Fatalf("v after undoing group = %d, want 0", v)
	}
}

func TestStackTransactionSingleCommandUnwrapped(t *testing.T) {
	s := NewStack()
	v := 0
	_ = s.BeginCmdGroup("single")
	_ = s.AppendToCmdGroup(&fakeCmd{desc: "only", value: &v, delta: 9})
	_ = s.CommitCmdGroup()
	if s.UndoText() != "only" {
		t.Fatalf("UndoText() = %q, want only (single-command group unwrapped)", s.UndoText())
	}
}

func TestStackExecCmdRejectsWhileTransactionOpen(t *testing.T) {
	s := NewStack()
	v := 0
	if err := s.BeginCmdGroup("move"); err != nil {
		t.Fatalf("BeginCmdGroup: %v", err)
	}
	if err := s.ExecCmd(&fakeCmd{desc: "a", value: &v, delta: 1}); !errors.Is(err, xerrors.ErrActiveTransaction) {
		t.Fatalf("ExecCmd error = %v, want ErrActiveTransaction", err)
	}
	if v != 0 {
		t.Fatalf("v = %d, want 0 (command must not have run)", v)
	}
}

func TestStackCanUndoAndUndoAreNoOpWhileTransactionOpen(t *testing.T) {
	s := NewStack()
	v := 0
	_ = s.ExecCmd(&fakeCmd{desc: "a", value: &v, delta: 1})

	_ = s.BeginCmdGroup("move")
	if s.CanUndo() {
		t.Fatal("CanUndo should report false while a transaction is open")
	}
	if err := s.Undo(); err != nil {
		t.Fatalf("Undo should be a no-op (nil error), got %v", err)
	}
	if v != 1 {
		t.Fatalf("v = %d, want 1 (Undo must not have touched history mid-transaction)", v)
	}
	_ = s.AbortCmdGroup()

	if !s.CanUndo() {
		t.Fatal("CanUndo should report true again once the transaction closes")
	}
}

func TestStackTransactionEmptyCommitIsNoop(t *testing.T) {
	s := NewStack()
	_ = s.BeginCmdGroup("empty")
	if err := s.CommitCmdGroup(); err != nil {
		t.Fatalf("CommitCmdGroup: %v", err)
	}
	if s.CanUndo() {
		t.Fatal("an empty transaction should push nothing")
	}
}

func TestStackTransactionAbortUndoesExecutedCommands(t *testing.T) {
	s := NewStack()
	v := 0
	_ = s.BeginCmdGroup("abort me")
	_ = s.AppendToCmdGroup(&fakeCmd{desc: "a", value: &v, delta: 10})
	_ = s.AppendToCmdGroup(&fakeCmd{desc: "b", value: &v, delta: 20})
	if err := s.AbortCmdGroup(); err != nil {
		t.Fatalf("AbortCmdGroup: %v", err)
	}
	if v != 0 {
		t.Fatalf("v after abort = %d, want 0", v)
	}
	if s.CanUndo() {
		t.Fatal("an aborted transaction should not appear in history")
	}
}

func TestStackBeginCmdGroupRejectsNesting(t *testing.T) {
	s := NewStack()
	if err := s.BeginCmdGroup("outer"); err != nil {
		t.Fatalf("BeginCmdGroup: %v", err)
	}
	if err := s.BeginCmdGroup("inner"); err == nil {
		t.Fatal("expected error starting a nested transaction")
	}
}

func TestStackAppendToCmdGroupWithoutBeginErrors(t *testing.T) {
	s := NewStack()
	v := 0
	if err := s.AppendToCmdGroup(&fakeCmd{desc: "x", value: &v, delta: 1}); err == nil {
		t.Fatal("expected error appending without an open transaction")
	}
}

func TestStackClearResetsHistory(t *testing.T) {
	s := NewStack()
	v := 0
	_ = s.ExecCmd(&fakeCmd{desc: "a", value: &v, delta: 1})
	s.SetClean()
	s.Clear()
	if s.CanUndo() || s.CanRedo() {
		t.Fatal("Clear should drop all history")
	}
	if s.IsClean() {
		t.Fatal("Clear should leave the stack permanently dirty (cleanAt = -1)")
	}
}

func TestGroupExecuteUndoRedo(t *testing.T) {
	v := 0
	a := &fakeCmd{desc: "a", value: &v, delta: 1}
	b := &fakeCmd{desc: "b", value: &v, delta: 2}
	g := NewGroup("both", []Command{a, b})

	if err := g.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if v != 3 {
		t.Fatalf("v = %d, want 3", v)
	}
	if err := g.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if v != 0 {
		t.Fatalf("v after undo = %d, want 0", v)
	}
	if err := g.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if v != 3 {
		t.Fatalf("v after redo = %d, want 3", v)
	}
}

func TestGroupExecuteRollsBackOnPartialFailure(t *testing.T) {
	v := 0
	wantErr := errors.New("boom")
	a := &fakeCmd{desc: "a", value: &v, delta: 1}
	b := &fakeCmd{desc: "b", value: &v, delta: 2, executeErr: wantErr}
	g := NewGroup("partial", []Command{a, b})

	if err := g.Execute(); err == nil {
		t.Fatal("expected error from group execute")
	}
	if v != 0 {
		t.Fatalf("v = %d, want 0 (first command rolled back)", v)
	}
}

func TestGroupEmpty(t *testing.T) {
	g := NewGroup("none", nil)
	if !g.Empty() {
		t.Fatal("Empty() = false for a group with no commands")
	}
}
