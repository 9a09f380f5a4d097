// Package library models the on-disk shape of a package library element:
// a Package (the pad/footprint/model directory) containing one or more
// Footprint variants and references to 3D Models, plus the shared
// metadata (UUID, name, description, keywords) every library element
// carries.
package library
