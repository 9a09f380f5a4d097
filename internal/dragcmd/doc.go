// Package dragcmd implements the interactive footprint-drag command: a
// single undo.Command that moves every selected primitive together,
// replayable as one undo/redo step regardless of how many mouse-move
// events updated its target position while the drag was in progress.
package dragcmd
