// Package units implements the strongly-typed scalars the geometry and
// editor packages build on: signed/unsigned/positive lengths in exact
// integer nanometres, angles in integer micro-degrees, and ratios in
// integer parts-per-million. Every constrained constructor validates at
// the value-domain boundary and returns xerrors.InvalidValue on failure;
// once constructed, a value is guaranteed to satisfy its invariant for its
// entire lifetime.
package units
