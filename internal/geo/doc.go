// Package geo implements the value-like primitive entities of the
// library editor: attributes, circles, polygons, holes, stroke texts,
// zones, net labels, net lines, traces, footprint pads, package pads, and
// the device/component mapping items. Each entity exposes an immutable
// UUID, mutable fields behind setters that report whether anything
// changed, and a closed set of per-field change events delivered through
// a signal.Signal subscriber list (see internal/signal).
//
// Setters never fail: validation of constrained scalar arguments already
// happened in the internal/units or internal/ident constructor, so by the
// time a setter receives a units.PositiveLength or ident.UUID it is known
// good. The only failures a setter-like operation can report here are
// domain invariants that cut across fields (for example Attribute's
// unit-must-belong-to-type rule), which surface as xerrors.UserError.
package geo
