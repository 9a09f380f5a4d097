// Package undo implements the editor's linear undo/redo engine: a single
// Stack of reversible Commands, command-group transactions (one open at a
// time; they do not nest) that either commit as one compound Command or
// roll back cleanly, and a clean/dirty mark used
// to drive "unsaved changes" prompts.
package undo
