package library

import (
	"github.com/librepcb/pkgeditor/internal/ident"
)

// Metadata is the common header every library element (Package,
// Footprint, Model) carries: identity, names, and descriptive text.
type Metadata struct {
	UUID        ident.UUID
	Name        ident.CircuitIdentifier
	Description string
	Keywords    []string
	Author      string
	Version     ident.Version
	Deprecated  bool
}

// NewMetadata constructs a fresh Metadata with a random UUID.
func NewMetadata(name ident.CircuitIdentifier, version ident.Version) Metadata {
	return Metadata{UUID: ident.NewUUID(), Name: name, Version: version}
}
