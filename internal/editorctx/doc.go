// Package editorctx provides the shared execution context that every
// editor tool and state in internal/editorfsm operates through: the
// current selection, the undo stack, grid and layer settings, and the
// library package/footprint being edited.
package editorctx
