package library

import (
	"github.com/librepcb/pkgeditor/internal/geo"
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/objlist"
	"github.com/librepcb/pkgeditor/internal/signal"
)

// PackageEventKind enumerates the ways a Package's own metadata can
// change. Content changes to PackagePads, Footprints, or Models are
// reported by their own list's Changed signal.
type PackageEventKind uint8

const (
	PackageMetadataChanged PackageEventKind = iota
)

// PackageEvent is emitted after a Package's metadata changes.
type PackageEvent struct {
	Kind   PackageEventKind
	Source *Package
}

// Package is a library package element: the shared pad list every
// footprint variant maps onto, the set of footprint variants
// themselves, and the 3D models they may reference.
type Package struct {
	Metadata Metadata

	PackagePads *objlist.List[*geo.PackagePad]
	Footprints  []*Footprint
	Models      []*Model
	Attributes  *objlist.List[*geo.Attribute]

	Changed signal.Signal[PackageEvent]
}

// NewPackage constructs an empty Package.
func NewPackage(name ident.CircuitIdentifier, version ident.Version) *Package {
	return &Package{
		Metadata:    NewMetadata(name, version),
		PackagePads: objlist.New[*geo.PackagePad](),
		Attributes:  objlist.New[*geo.Attribute](),
	}
}

// NotifyMetadataChanged fires PackageMetadataChanged after the caller
// has mutated p.Metadata in place (Metadata has no setters of its own;
// it's a plain value edited wholesale by editcmd.CmdEditElement-style
// commands operating on the Package itself).
func (p *Package) NotifyMetadataChanged() {
	p.Changed.Emit(PackageEvent{Kind: PackageMetadataChanged, Source: p})
}

// Clone returns a deep copy of the package, used by reloadcmd to capture
// a pre-reload snapshot (metadata, pads, models, footprints) to restore
// on undo.
func (p *Package) Clone() *Package {
	clone := &Package{
		Metadata:    p.Metadata,
		PackagePads: objlist.New[*geo.PackagePad](),
		Attributes:  objlist.New[*geo.Attribute](),
	}
	for _, pad := range p.PackagePads.All() {
		_ = clone.PackagePads.Append(pad.Clone())
	}
	for _, attr := range p.Attributes.All() {
		_ = clone.Attributes.Append(attr.Clone())
	}
	for _, fp := range p.Footprints {
		clone.Footprints = append(clone.Footprints, fp.Clone())
	}
	for _, m := range p.Models {
		clone.Models = append(clone.Models, &Model{UUID: m.UUID, Name: m.Name})
	}
	return clone
}

// Assign replaces p's metadata, pads, footprints, models, and attributes
// with other's. PackagePads/Attributes keep their own *objlist.List
// identity (their contents are replaced wholesale instead, so anything
// already holding a reference to one of those lists keeps working);
// Footprints/Models are plain slices and are swapped outright. After an
// Assign driven by a package reload, the caller (orchestrator.Tab) is
// responsible for re-pointing any open editor context at the
// UUID-matching new Footprint, per the "FSM never sees a foreign
// footprint without its graphics item" guarantee.
func (p *Package) Assign(other *Package) {
	p.Metadata = other.Metadata
	replaceList(p.PackagePads, other.PackagePads.All())
	replaceList(p.Attributes, other.Attributes.All())
	p.Footprints = other.Footprints
	p.Models = other.Models
	p.NotifyMetadataChanged()
}

// replaceList empties list and refills it with items, reusing list's own
// identity rather than swapping in a fresh *objlist.List.
func replaceList[T objlist.Element](list *objlist.List[T], items []T) {
	for _, id := range list.UUIDs() {
		_, _ = list.Remove(id)
	}
	for _, it := range items {
		_ = list.Append(it)
	}
}

// FootprintByUUID returns the footprint variant with the given UUID.
func (p *Package) FootprintByUUID(id ident.UUID) (*Footprint, bool) {
	for _, fp := range p.Footprints {
		if fp.UUID().Equal(id) {
			return fp, true
		}
	}
	return nil, false
}

// ModelByUUID returns the model with the given UUID.
func (p *Package) ModelByUUID(id ident.UUID) (*Model, bool) {
	for _, m := range p.Models {
		if m.UUID.Equal(id) {
			return m, true
		}
	}
	return nil, false
}

// PadUUIDSet returns the set of every PackagePad's UUID, used to check
// each footprint's interface against the package after a reload.
func (p *Package) PadUUIDSet() map[ident.UUID]bool {
	return p.PackagePads.UUIDSet()
}

// AnyFootprintInterfaceBroken reports whether any footprint variant's
// pad mapping no longer matches PackagePads.
func (p *Package) AnyFootprintInterfaceBroken() bool {
	pads := p.PadUUIDSet()
	for _, fp := range p.Footprints {
		if fp.IsInterfaceBrokenAgainst(pads) {
			return true
		}
	}
	return false
}
