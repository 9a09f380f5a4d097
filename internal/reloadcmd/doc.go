// Package reloadcmd implements the package-reload undo command: reading
// the on-disk state of a library package back into the live, in-memory
// Package a Tab is editing, while keeping every prior edit reversible.
package reloadcmd
