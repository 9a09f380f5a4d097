// Package orchestrator implements the editor tab (C10): the object that
// owns one package's undo stack and editor context for the lifetime of
// an editing session, enforces the footprint/graphics-item pairing
// invariant, recomputes the interface-broken flag after every undo-stack
// change, and marshals file-watcher notifications onto the single
// editing goroutine.
package orchestrator
