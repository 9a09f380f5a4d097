package library

import (
	"github.com/librepcb/pkgeditor/internal/geo"
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/objlist"
	"github.com/librepcb/pkgeditor/internal/signal"
)

// FootprintEventKind enumerates the ways a Footprint's own (non-list)
// state can change. Content changes to its primitive lists are reported
// by each list's own Changed signal instead.
type FootprintEventKind uint8

const (
	FootprintNameChanged FootprintEventKind = iota
	FootprintModelUUIDsChanged
)

// FootprintEvent is emitted after a field of a Footprint changes.
type FootprintEvent struct {
	Kind   FootprintEventKind
	Source *Footprint
}

// Footprint is one concrete package footprint variant: a name (e.g.
// "1.0mm pitch") plus every geometric primitive placed on it, grouped by
// kind in an objlist.List so each kind gets independent add/remove/edit
// notifications.
type Footprint struct {
	uuid ident.UUID
	name ident.CircuitIdentifier

	Circles     *objlist.List[*geo.Circle]
	Polygons    *objlist.List[*geo.Polygon]
	Holes       *objlist.List[*geo.Hole]
	StrokeTexts *objlist.List[*geo.StrokeText]
	Pads        *objlist.List[*geo.FootprintPad]
	Zones       *objlist.List[*geo.Zone]

	// Models3D lists which of the owning Package's Models apply to this
	// footprint variant specifically (a THT and an SMT variant of the
	// same package may reference different step files).
	models3D []ident.UUID

	Changed signal.Signal[FootprintEvent]
}

// NewFootprint constructs an empty Footprint with the given name.
func NewFootprint(name ident.CircuitIdentifier) *Footprint {
	return &Footprint{
		uuid:        ident.NewUUID(),
		name:        name,
		Circles:     objlist.New[*geo.Circle](),
		Polygons:    objlist.New[*geo.Polygon](),
		Holes:       objlist.New[*geo.Hole](),
		StrokeTexts: objlist.New[*geo.StrokeText](),
		Pads:        objlist.New[*geo.FootprintPad](),
		Zones:       objlist.New[*geo.Zone](),
	}
}

func (f *Footprint) UUID() ident.UUID              { return f.uuid }
func (f *Footprint) Name() ident.CircuitIdentifier { return f.name }

func (f *Footprint) SetName(name ident.CircuitIdentifier) bool {
	if f.name.Equal(name) {
		return false
	}
	f.name = name
	f.Changed.Emit(FootprintEvent{Kind: FootprintNameChanged, Source: f})
	return true
}

// Models3D returns the UUIDs of the Package.Models this footprint uses.
func (f *Footprint) Models3D() []ident.UUID { return append([]ident.UUID(nil), f.models3D...) }

// SetModels3D replaces the set of referenced 3D models.
func (f *Footprint) SetModels3D(ids []ident.UUID) bool {
	f.models3D = append([]ident.UUID(nil), ids...)
	f.Changed.Emit(FootprintEvent{Kind: FootprintModelUUIDsChanged, Source: f})
	return true
}

// Clone returns a deep copy of the footprint, including independent
// copies of every primitive in every list, used by reloadcmd to capture
// a pre-reload snapshot to restore on undo.
func (f *Footprint) Clone() *Footprint {
	clone := NewFootprint(f.name)
	clone.uuid = f.uuid
	for _, c := range f.Circles.All() {
		_ = clone.Circles.Append(c.Clone())
	}
	for _, p := range f.Polygons.All() {
		_ = clone.Polygons.Append(p.Clone())
	}
	for _, h := range f.Holes.All() {
		_ = clone.Holes.Append(h.Clone())
	}
	for _, t := range f.StrokeTexts.All() {
		_ = clone.StrokeTexts.Append(t.Clone())
	}
	for _, p := range f.Pads.All() {
		_ = clone.Pads.Append(p.Clone())
	}
	for _, z := range f.Zones.All() {
		_ = clone.Zones.Append(z.Clone())
	}
	clone.models3D = append([]ident.UUID(nil), f.models3D...)
	return clone
}

// IsInterfaceBrokenAgainst reports whether this footprint's pad UUID set
// differs from padUUIDs, the set of UUIDs a Package's PackagePad list
// currently has. A broken interface means some FootprintPad references
// a PackagePad that no longer exists (or the reverse: a PackagePad with
// no FootprintPad placed for it), which is exactly the check
// orchestrator.Tab runs after every package reload.
func (f *Footprint) IsInterfaceBrokenAgainst(padUUIDs map[ident.UUID]bool) bool {
	seen := make(map[ident.UUID]bool, f.Pads.Len())
	for _, pad := range f.Pads.All() {
		if !pad.IsMapped() {
			continue
		}
		if !padUUIDs[pad.PackagePadUUID()] {
			return true
		}
		seen[pad.PackagePadUUID()] = true
	}
	for id := range padUUIDs {
		if !seen[id] {
			return true
		}
	}
	return false
}
