package undo

// Command is a reversible edit action. Execute performs the action the
// first time; Redo re-performs it after an Undo. Most commands implement
// Redo identically to Execute (it simply re-applies the same snapshot),
// but the two are kept distinct because a handful of commands (notably
// dragcmd's footprint drag) must not re-run their constructor-time setup
// on redo.
type Command interface {
	Execute() error
	Undo() error
	Redo() error

	// Description is a short human-readable label for undo/redo menu
	// entries and log lines.
	Description() string
}
