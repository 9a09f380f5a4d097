package geo

import (
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/signal"
	"github.com/librepcb/pkgeditor/internal/units"
)

// ComponentSymbolVariantItemEventKind enumerates the fields a
// ComponentSymbolVariantItem can change.
type ComponentSymbolVariantItemEventKind uint8

const (
	VariantItemUUIDChanged ComponentSymbolVariantItemEventKind = iota
	VariantItemSymbolUUIDChanged
	VariantItemSuffixChanged
	VariantItemSymbolPositionChanged
	VariantItemSymbolRotationChanged
)

// ComponentSymbolVariantItemEvent is emitted after a field of a
// ComponentSymbolVariantItem changes.
type ComponentSymbolVariantItemEvent struct {
	Kind   ComponentSymbolVariantItemEventKind
	Source *ComponentSymbolVariantItem
}

// ComponentSymbolVariantItem places one symbol instance (by UUID
// reference) at a position/rotation within a multi-gate component's
// symbol variant, with an optional designator suffix (e.g. "A"/"B" for a
// dual-gate part).
type ComponentSymbolVariantItem struct {
	uuid           ident.UUID
	symbolUUID     ident.UUID
	suffix         string
	symbolPosition units.Point
	symbolRotation units.Angle

	Changed signal.Signal[ComponentSymbolVariantItemEvent]
}

// NewComponentSymbolVariantItem constructs a ComponentSymbolVariantItem.
func NewComponentSymbolVariantItem(symbolUUID ident.UUID, suffix string, position units.Point, rotation units.Angle) *ComponentSymbolVariantItem {
	return &ComponentSymbolVariantItem{
		uuid: ident.NewUUID(), symbolUUID: symbolUUID, suffix: suffix,
		symbolPosition: position, symbolRotation: rotation,
	}
}

func (v *ComponentSymbolVariantItem) UUID() ident.UUID           { return v.uuid }
func (v *ComponentSymbolVariantItem) SymbolUUID() ident.UUID     { return v.symbolUUID }
func (v *ComponentSymbolVariantItem) Suffix() string             { return v.suffix }
func (v *ComponentSymbolVariantItem) SymbolPosition() units.Point { return v.symbolPosition }
func (v *ComponentSymbolVariantItem) SymbolRotation() units.Angle { return v.symbolRotation }

func (v *ComponentSymbolVariantItem) SetSymbolUUID(u ident.UUID) bool {
	if v.symbolUUID == u {
		return false
	}
	v.symbolUUID = u
	v.Changed.Emit(ComponentSymbolVariantItemEvent{Kind: VariantItemSymbolUUIDChanged, Source: v})
	return true
}

func (v *ComponentSymbolVariantItem) SetSuffix(suffix string) bool {
	if v.suffix == suffix {
		return false
	}
	v.suffix = suffix
	v.Changed.Emit(ComponentSymbolVariantItemEvent{Kind: VariantItemSuffixChanged, Source: v})
	return true
}

func (v *ComponentSymbolVariantItem) SetSymbolPosition(p units.Point) bool {
	if v.symbolPosition == p {
		return false
	}
	v.symbolPosition = p
	v.Changed.Emit(ComponentSymbolVariantItemEvent{Kind: VariantItemSymbolPositionChanged, Source: v})
	return true
}

func (v *ComponentSymbolVariantItem) SetSymbolRotation(a units.Angle) bool {
	if v.symbolRotation == a {
		return false
	}
	v.symbolRotation = a
	v.Changed.Emit(ComponentSymbolVariantItemEvent{Kind: VariantItemSymbolRotationChanged, Source: v})
	return true
}

// Clone returns a deep copy with a fresh (non-shared) Changed signal.
func (v *ComponentSymbolVariantItem) Clone() *ComponentSymbolVariantItem {
	clone := *v
	clone.Changed = signal.Signal[ComponentSymbolVariantItemEvent]{}
	return &clone
}

// Equal reports field-wise equality, excluding the Changed signal.
func (v *ComponentSymbolVariantItem) Equal(other *ComponentSymbolVariantItem) bool {
	if other == nil {
		return false
	}
	return v.uuid.Equal(other.uuid) && v.symbolUUID.Equal(other.symbolUUID) &&
		v.suffix == other.suffix && v.symbolPosition == other.symbolPosition &&
		v.symbolRotation == other.symbolRotation
}

// Assign reassigns every field of v from other, UUID first.
func (v *ComponentSymbolVariantItem) Assign(other *ComponentSymbolVariantItem) {
	if v.uuid != other.uuid {
		v.uuid = other.uuid
		v.Changed.Emit(ComponentSymbolVariantItemEvent{Kind: VariantItemUUIDChanged, Source: v})
	}
	v.SetSymbolUUID(other.symbolUUID)
	v.SetSuffix(other.suffix)
	v.SetSymbolPosition(other.symbolPosition)
	v.SetSymbolRotation(other.symbolRotation)
}

// DevicePadSignalMapItemEventKind enumerates the fields a
// DevicePadSignalMapItem can change.
type DevicePadSignalMapItemEventKind uint8

const (
	MapItemPackagePadUUIDChanged DevicePadSignalMapItemEventKind = iota
	MapItemComponentSignalUUIDChanged
)

// DevicePadSignalMapItemEvent is emitted after a field of a
// DevicePadSignalMapItem changes.
type DevicePadSignalMapItemEvent struct {
	Kind   DevicePadSignalMapItemEventKind
	Source *DevicePadSignalMapItem
}

// DevicePadSignalMapItem maps one PackagePad onto one ComponentSignal (or
// onto no signal at all, leaving the pad unconnected) for a device that
// pairs a component with a package.
type DevicePadSignalMapItem struct {
	packagePadUUID     ident.UUID
	componentSignalUUID ident.UUID // invalid UUID means "not connected"

	Changed signal.Signal[DevicePadSignalMapItemEvent]
}

// NewDevicePadSignalMapItem constructs a DevicePadSignalMapItem.
func NewDevicePadSignalMapItem(packagePadUUID, componentSignalUUID ident.UUID) *DevicePadSignalMapItem {
	return &DevicePadSignalMapItem{packagePadUUID: packagePadUUID, componentSignalUUID: componentSignalUUID}
}

func (m *DevicePadSignalMapItem) PackagePadUUID() ident.UUID      { return m.packagePadUUID }
func (m *DevicePadSignalMapItem) ComponentSignalUUID() ident.UUID { return m.componentSignalUUID }
func (m *DevicePadSignalMapItem) IsConnected() bool               { return m.componentSignalUUID.IsValid() }

func (m *DevicePadSignalMapItem) SetComponentSignalUUID(u ident.UUID) bool {
	if m.componentSignalUUID == u {
		return false
	}
	m.componentSignalUUID = u
	m.Changed.Emit(DevicePadSignalMapItemEvent{Kind: MapItemComponentSignalUUIDChanged, Source: m})
	return true
}

// Clone returns a deep copy with a fresh (non-shared) Changed signal.
func (m *DevicePadSignalMapItem) Clone() *DevicePadSignalMapItem {
	clone := *m
	clone.Changed = signal.Signal[DevicePadSignalMapItemEvent]{}
	return &clone
}

// Equal reports field-wise equality, excluding the Changed signal.
func (m *DevicePadSignalMapItem) Equal(other *DevicePadSignalMapItem) bool {
	if other == nil {
		return false
	}
	return m.packagePadUUID.Equal(other.packagePadUUID) &&
		m.componentSignalUUID.Equal(other.componentSignalUUID)
}

// Assign reassigns every field of m from other. PackagePadUUID is the
// list identity key for this item (see objlist) and is never reassigned
// in place; callers that need to repoint it remove and reinsert instead.
func (m *DevicePadSignalMapItem) Assign(other *DevicePadSignalMapItem) {
	m.SetComponentSignalUUID(other.componentSignalUUID)
}
