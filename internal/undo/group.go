package undo

import "fmt"

// Group bundles several Commands into a single undo unit: Execute runs
// them in order, Undo reverses them in the opposite order, Redo re-runs
// them in order.
type Group struct {
	name     string
	commands []Command
}

// NewGroup constructs a Group. Commands have usually already executed by
// the time they're wrapped (see Stack.CommitCmdGroup); Execute is
// still provided so a Group can also be built and executed fresh.
func NewGroup(name string, commands []Command) *Group {
	return &Group{name: name, commands: append([]Command(nil), commands...)}
}

// Empty reports whether the group holds no commands.
func (g *Group) Empty() bool { return len(g.commands) == 0 }

func (g *Group) Execute() error {
	for i, cmd := range g.commands {
		if err := cmd.Execute(); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = g.commands[j].Undo()
			}
			return fmt.Errorf("group %q: command %d: %w", g.name, i, err)
		}
	}
	return nil
}

func (g *Group) Undo() error {
	for i := len(g.commands) - 1; i >= 0; i-- {
		if err := g.commands[i].Undo(); err != nil {
			return fmt.Errorf("group %q: undo command %d: %w", g.name, i, err)
		}
	}
	return nil
}

func (g *Group) Redo() error {
	for i, cmd := range g.commands {
		if err := cmd.Redo(); err != nil {
			return fmt.Errorf("group %q: redo command %d: %w", g.name, i, err)
		}
	}
	return nil
}

func (g *Group) Description() string { return g.name }
