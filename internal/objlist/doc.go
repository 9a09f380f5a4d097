// Package objlist provides a generic ordered collection for library
// primitives, keyed by UUID identity and reporting insertions, removals,
// and content edits through a single event signal.
package objlist
