// Package ident implements the identity and naming scalars shared across
// the editor core: UUIDs (backed by google/uuid), dotted version tuples,
// circuit identifiers, and attribute keys. Like the units package, every
// constrained constructor validates eagerly and returns
// xerrors.InvalidValue on failure.
package ident
