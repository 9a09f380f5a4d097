// Package editorfsm implements the package/footprint editor's
// hierarchical, one-state-active finite state machine: it turns pointer
// and keyboard events into internal/editcmd and internal/dragcmd
// commands pushed through the internal/editorctx.Context's undo stack.
//
// Exactly one State is active at a time. Machine owns the transition
// rules (entry/exit veto, the "right click returns to the remembered
// drawing tool" rule, the three-consecutive-abort drain C10 relies on)
// and forwards every event to the active State's handler. States that
// don't care about a particular event embed Base, which no-ops it.
package editorfsm
