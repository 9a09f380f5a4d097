package geo

import (
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/signal"
)

// PackagePadEventKind enumerates the fields a PackagePad can change.
type PackagePadEventKind uint8

const (
	PackagePadUUIDChanged PackagePadEventKind = iota
	PackagePadNameChanged
)

// PackagePadEvent is emitted after a field of a PackagePad changes.
type PackagePadEvent struct {
	Kind   PackagePadEventKind
	Source *PackagePad
}

// PackagePad is one named pad slot of a package, independent of any
// particular footprint's physical pad geometry. A FootprintPad maps onto
// a PackagePad by UUID, and a DevicePadSignalMapItem maps a PackagePad
// onto a component signal.
type PackagePad struct {
	uuid ident.UUID
	name ident.CircuitIdentifier

	Changed signal.Signal[PackagePadEvent]
}

// NewPackagePad constructs a PackagePad.
func NewPackagePad(name ident.CircuitIdentifier) *PackagePad {
	return &PackagePad{uuid: ident.NewUUID(), name: name}
}

func (p *PackagePad) UUID() ident.UUID              { return p.uuid }
func (p *PackagePad) Name() ident.CircuitIdentifier { return p.name }

func (p *PackagePad) SetName(name ident.CircuitIdentifier) bool {
	if p.name.Equal(name) {
		return false
	}
	p.name = name
	p.Changed.Emit(PackagePadEvent{Kind: PackagePadNameChanged, Source: p})
	return true
}

// Clone returns a deep copy with a fresh (non-shared) Changed signal.
func (p *PackagePad) Clone() *PackagePad {
	clone := *p
	clone.Changed = signal.Signal[PackagePadEvent]{}
	return &clone
}

// Equal reports field-wise equality, excluding the Changed signal.
func (p *PackagePad) Equal(other *PackagePad) bool {
	if other == nil {
		return false
	}
	return p.uuid.Equal(other.uuid) && p.name.Equal(other.name)
}

// Assign reassigns every field of p from other, UUID first.
func (p *PackagePad) Assign(other *PackagePad) {
	if p.uuid != other.uuid {
		p.uuid = other.uuid
		p.Changed.Emit(PackagePadEvent{Kind: PackagePadUUIDChanged, Source: p})
	}
	p.SetName(other.name)
}
