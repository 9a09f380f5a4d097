// Package editcmd implements undo.Command wrappers around the setters of
// internal/geo's primitive entities and internal/objlist's List, giving
// every point-and-click edit in the tool a matching undo/redo step.
//
// Each per-primitive command follows the same shape: snapshot the
// element's old state, apply the mutation, snapshot the new state, then
// revert to old so the command starts "pending" until the undo stack
// calls Execute. Undo and Redo simply re-assign the matching snapshot.
package editcmd
