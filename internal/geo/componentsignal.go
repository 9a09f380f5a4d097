package geo

import (
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/signal"
)

// SignalRole classifies a component signal's electrical behavior for net
// consistency checks (e.g. flagging two outputs tied together).
type SignalRole uint8

const (
	SignalRolePassive SignalRole = iota
	SignalRoleInput
	SignalRoleOutput
	SignalRoleInputOutput
	SignalRolePower
	SignalRoleOpenCollector
	SignalRoleOpenEmitter
	SignalRoleNotConnected
)

// ComponentSignalEventKind enumerates the fields a ComponentSignal can
// change.
type ComponentSignalEventKind uint8

const (
	ComponentSignalUUIDChanged ComponentSignalEventKind = iota
	ComponentSignalNameChanged
	ComponentSignalRoleChanged
	ComponentSignalForcedNetNameChanged
	ComponentSignalIsRequiredChanged
	ComponentSignalIsNegatedChanged
	ComponentSignalIsClockChanged
)

// ComponentSignalEvent is emitted after a field of a ComponentSignal
// changes.
type ComponentSignalEvent struct {
	Kind   ComponentSignalEventKind
	Source *ComponentSignal
}

// ComponentSignal is one named electrical signal of a component, mapped
// onto physical package pads via DevicePadSignalMapItem.
type ComponentSignal struct {
	uuid           ident.UUID
	name           ident.CircuitIdentifier
	role           SignalRole
	forcedNetName  string // empty means not forced
	isRequired     bool
	isNegated      bool
	isClock        bool

	Changed signal.Signal[ComponentSignalEvent]
}

// NewComponentSignal constructs a ComponentSignal.
func NewComponentSignal(name ident.CircuitIdentifier, role SignalRole, forcedNetName string, isRequired, isNegated, isClock bool) *ComponentSignal {
	return &ComponentSignal{
		uuid: ident.NewUUID(), name: name, role: role, forcedNetName: forcedNetName,
		isRequired: isRequired, isNegated: isNegated, isClock: isClock,
	}
}

func (s *ComponentSignal) UUID() ident.UUID              { return s.uuid }
func (s *ComponentSignal) Name() ident.CircuitIdentifier { return s.name }
func (s *ComponentSignal) Role() SignalRole              { return s.role }
func (s *ComponentSignal) ForcedNetName() string         { return s.forcedNetName }
func (s *ComponentSignal) IsForcedNet() bool             { return s.forcedNetName != "" }
func (s *ComponentSignal) IsRequired() bool              { return s.isRequired }
func (s *ComponentSignal) IsNegated() bool               { return s.isNegated }
func (s *ComponentSignal) IsClock() bool                 { return s.isClock }

func (s *ComponentSignal) SetName(name ident.CircuitIdentifier) bool {
	if s.name.Equal(name) {
		return false
	}
	s.name = name
	s.Changed.Emit(ComponentSignalEvent{Kind: ComponentSignalNameChanged, Source: s})
	return true
}

func (s *ComponentSignal) SetRole(role SignalRole) bool {
	if s.role == role {
		return false
	}
	s.role = role
	s.Changed.Emit(ComponentSignalEvent{Kind: ComponentSignalRoleChanged, Source: s})
	return true
}

func (s *ComponentSignal) SetForcedNetName(name string) bool {
	if s.forcedNetName == name {
		return false
	}
	s.forcedNetName = name
	s.Changed.Emit(ComponentSignalEvent{Kind: ComponentSignalForcedNetNameChanged, Source: s})
	return true
}

func (s *ComponentSignal) SetRequired(v bool) bool {
	if s.isRequired == v {
		return false
	}
	s.isRequired = v
	s.Changed.Emit(ComponentSignalEvent{Kind: ComponentSignalIsRequiredChanged, Source: s})
	return true
}

func (s *ComponentSignal) SetNegated(v bool) bool {
	if s.isNegated == v {
		return false
	}
	s.isNegated = v
	s.Changed.Emit(ComponentSignalEvent{Kind: ComponentSignalIsNegatedChanged, Source: s})
	return true
}

func (s *ComponentSignal) SetClock(v bool) bool {
	if s.isClock == v {
		return false
	}
	s.isClock = v
	s.Changed.Emit(ComponentSignalEvent{Kind: ComponentSignalIsClockChanged, Source: s})
	return true
}

// Clone returns a deep copy with a fresh (non-shared) Changed signal.
func (s *ComponentSignal) Clone() *ComponentSignal {
	clone := *s
	clone.Changed = signal.Signal[ComponentSignalEvent]{}
	return &clone
}

// Equal reports field-wise equality, excluding the Changed signal.
func (s *ComponentSignal) Equal(other *ComponentSignal) bool {
	if other == nil {
		return false
	}
	return s.uuid.Equal(other.uuid) && s.name.Equal(other.name) && s.role == other.role &&
		s.forcedNetName == other.forcedNetName && s.isRequired == other.isRequired &&
		s.isNegated == other.isNegated && s.isClock == other.isClock
}

// Assign reassigns every field of s from other, UUID first.
func (s *ComponentSignal) Assign(other *ComponentSignal) {
	if s.uuid != other.uuid {
		s.uuid = other.uuid
		s.Changed.Emit(ComponentSignalEvent{Kind: ComponentSignalUUIDChanged, Source: s})
	}
	s.SetName(other.name)
	s.SetRole(other.role)
	s.SetForcedNetName(other.forcedNetName)
	s.SetRequired(other.isRequired)
	s.SetNegated(other.isNegated)
	s.SetClock(other.isClock)
}
