package library

import "github.com/librepcb/pkgeditor/internal/ident"

// Model references a 3D step/wrl model file attached to a package,
// identified by UUID rather than by the path alone so footprints can
// keep referencing it across file renames.
type Model struct {
	UUID ident.UUID
	Name string
}

// NewModel constructs a Model reference.
func NewModel(name string) *Model {
	return &Model{UUID: ident.NewUUID(), Name: name}
}
