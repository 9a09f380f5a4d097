package geo

import (
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/signal"
	"github.com/librepcb/pkgeditor/internal/xerrors"
)

// AttributeUnit is one of the display units an AttributeType makes
// available (e.g. "V", "mV" for a voltage attribute).
type AttributeUnit struct {
	Name string
}

// AttributeType names the value domain an Attribute's value is validated
// against, along with the units available for it.
type AttributeType struct {
	Name  string
	Units []AttributeUnit
	// Validate reports whether value is acceptable for this type.
	// A nil Validate accepts any value.
	Validate func(value string) bool
}

// HasUnit reports whether u is one of t's available units.
func (t AttributeType) HasUnit(u AttributeUnit) bool {
	for _, candidate := range t.Units {
		if candidate.Name == u.Name {
			return true
		}
	}
	return false
}

func nonEmpty(s string) bool { return s != "" }

// Well-known attribute types.
var (
	AttributeTypeString = AttributeType{Name: "string"}
	AttributeTypeBoolean = AttributeType{
		Name:     "boolean",
		Validate: func(v string) bool { return v == "true" || v == "false" },
	}
	AttributeTypeResistance = AttributeType{
		Name:     "resistance",
		Units:    []AttributeUnit{{Name: "Ω"}, {Name: "kΩ"}, {Name: "MΩ"}},
		Validate: nonEmpty,
	}
	AttributeTypeVoltage = AttributeType{
		Name:     "voltage",
		Units:    []AttributeUnit{{Name: "V"}, {Name: "mV"}, {Name: "kV"}},
		Validate: nonEmpty,
	}
	AttributeTypeCapacitance = AttributeType{
		Name:     "capacitance",
		Units:    []AttributeUnit{{Name: "F"}, {Name: "uF"}, {Name: "nF"}, {Name: "pF"}},
		Validate: nonEmpty,
	}
)

// AttributeEventKind enumerates the fields an Attribute can change.
type AttributeEventKind uint8

const (
	AttributeUUIDChanged AttributeEventKind = iota
	AttributeKeyChanged
	AttributeTypeChanged
	AttributeValueChanged
	AttributeUnitChanged
)

// AttributeEvent is emitted after a field of an Attribute changes.
type AttributeEvent struct {
	Kind   AttributeEventKind
	Source *Attribute
}

// Attribute is a named, typed, unit-qualified value attached to a
// package, component, or device.
type Attribute struct {
	uuid  ident.UUID
	key   ident.AttributeKey
	typ   AttributeType
	value string
	unit  *AttributeUnit

	Changed signal.Signal[AttributeEvent]
}

// NewAttribute constructs an Attribute. value and unit must already
// satisfy typ's invariants; use SetValue/SetUnit to change them safely
// after construction.
func NewAttribute(key ident.AttributeKey, typ AttributeType, value string, unit *AttributeUnit) (*Attribute, error) {
	a := &Attribute{uuid: ident.NewUUID(), key: key, typ: typ}
	if err := a.validate(typ, value, unit); err != nil {
		return nil, err
	}
	a.value = value
	a.unit = unit
	return a, nil
}

func (a *Attribute) validate(typ AttributeType, value string, unit *AttributeUnit) error {
	if unit != nil && !typ.HasUnit(*unit) {
		return xerrors.NewUserError("unit is not available for attribute type " + typ.Name)
	}
	if typ.Validate != nil && !typ.Validate(value) {
		return xerrors.NewUserError("value is not valid for attribute type " + typ.Name)
	}
	return nil
}

// UUID returns the attribute's identity.
func (a *Attribute) UUID() ident.UUID { return a.uuid }

// Key returns the attribute's key.
func (a *Attribute) Key() ident.AttributeKey { return a.key }

// Name implements objlist.Named.
func (a *Attribute) Name() string { return a.key.String() }

// Type returns the attribute's type.
func (a *Attribute) Type() AttributeType { return a.typ }

// Value returns the attribute's raw string value.
func (a *Attribute) Value() string { return a.value }

// Unit returns the attribute's unit, or nil if none is set.
func (a *Attribute) Unit() *AttributeUnit { return a.unit }

// SetKey changes the attribute's key.
func (a *Attribute) SetKey(key ident.AttributeKey) bool {
	if a.key.Equal(key) {
		return false
	}
	a.key = key
	a.Changed.Emit(AttributeEvent{Kind: AttributeKeyChanged, Source: a})
	return true
}

// SetType changes the attribute's type. Returns a UserError if the
// current value/unit do not validate under the new type.
func (a *Attribute) SetType(typ AttributeType) (bool, error) {
	if a.typ.Name == typ.Name {
		return false, nil
	}
	if err := a.validate(typ, a.value, a.unit); err != nil {
		return false, err
	}
	a.typ = typ
	a.Changed.Emit(AttributeEvent{Kind: AttributeTypeChanged, Source: a})
	return true, nil
}

// SetValue changes the attribute's value. Returns a UserError if value
// does not validate under the current type.
func (a *Attribute) SetValue(value string) (bool, error) {
	if a.value == value {
		return false, nil
	}
	if err := a.validate(a.typ, value, a.unit); err != nil {
		return false, err
	}
	a.value = value
	a.Changed.Emit(AttributeEvent{Kind: AttributeValueChanged, Source: a})
	return true, nil
}

// SetUnit changes the attribute's unit. Returns a UserError if unit is
// not among the current type's available units.
func (a *Attribute) SetUnit(unit *AttributeUnit) (bool, error) {
	if unitEqual(a.unit, unit) {
		return false, nil
	}
	if err := a.validate(a.typ, a.value, unit); err != nil {
		return false, err
	}
	a.unit = unit
	a.Changed.Emit(AttributeEvent{Kind: AttributeUnitChanged, Source: a})
	return true, nil
}

func unitEqual(a, b *AttributeUnit) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Name == b.Name
}

// Clone returns a deep copy with a fresh (non-shared) Changed signal;
// subscribers are not copied.
func (a *Attribute) Clone() *Attribute {
	clone := &Attribute{uuid: a.uuid, key: a.key, typ: a.typ, value: a.value}
	if a.unit != nil {
		u := *a.unit
		clone.unit = &u
	}
	return clone
}

// Equal reports field-wise equality, excluding the Changed signal.
func (a *Attribute) Equal(other *Attribute) bool {
	if other == nil {
		return false
	}
	return a.uuid.Equal(other.uuid) &&
		a.key.Equal(other.key) &&
		a.typ.Name == other.typ.Name &&
		a.value == other.value &&
		unitEqual(a.unit, other.unit)
}

// Assign reassigns every field of a from other, firing AttributeUUIDChanged
// first and then the per-field events, mirroring Circle/Polygon's
// assignment-operator order.
func (a *Attribute) Assign(other *Attribute) {
	if a.uuid != other.uuid {
		a.uuid = other.uuid
		a.Changed.Emit(AttributeEvent{Kind: AttributeUUIDChanged, Source: a})
	}
	a.SetKey(other.key)
	_, _ = a.SetType(other.typ)
	_, _ = a.SetValue(other.value)
	_, _ = a.SetUnit(other.unit)
}
