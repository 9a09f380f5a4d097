package geo

import (
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/signal"
	"github.com/librepcb/pkgeditor/internal/units"
)

// ZoneLayer is one board layer a Zone's rules apply to.
type ZoneLayer uint8

const (
	ZoneLayerTop ZoneLayer = iota
	ZoneLayerInner
	ZoneLayerBottom
)

// ZoneRule is one restriction a Zone enforces over its outline.
type ZoneRule uint8

const (
	ZoneRuleNoCopper ZoneRule = iota
	ZoneRuleNoPlanes
	ZoneRuleNoExposure
	ZoneRuleNoDevices
)

// ZoneEventKind enumerates the fields a Zone can change.
type ZoneEventKind uint8

const (
	ZoneUUIDChanged ZoneEventKind = iota
	ZoneLayersChanged
	ZoneRulesChanged
	ZoneOutlineChanged
)

// ZoneEvent is emitted after a field of a Zone changes.
type ZoneEvent struct {
	Kind   ZoneEventKind
	Source *Zone
}

// Zone is a keep-out/keep-in area expressed as an outline path plus a set
// of layers and rules it applies to. The outline may be open while the
// user is still drawing it.
type Zone struct {
	uuid    ident.UUID
	layers  map[ZoneLayer]bool
	rules   map[ZoneRule]bool
	outline []units.Point

	Changed signal.Signal[ZoneEvent]
}

// NewZone constructs a Zone. layers and rules are copied.
func NewZone(layers []ZoneLayer, rules []ZoneRule, outline []units.Point) *Zone {
	z := &Zone{
		uuid:    ident.NewUUID(),
		layers:  make(map[ZoneLayer]bool, len(layers)),
		rules:   make(map[ZoneRule]bool, len(rules)),
		outline: append([]units.Point(nil), outline...),
	}
	for _, l := range layers {
		z.layers[l] = true
	}
	for _, r := range rules {
		z.rules[r] = true
	}
	return z
}

func (z *Zone) UUID() ident.UUID { return z.uuid }

// Layers returns the set of layers the zone applies to.
func (z *Zone) Layers() []ZoneLayer {
	out := make([]ZoneLayer, 0, len(z.layers))
	for l := range z.layers {
		out = append(out, l)
	}
	return out
}

// HasLayer reports whether l is one of the zone's layers.
func (z *Zone) HasLayer(l ZoneLayer) bool { return z.layers[l] }

// Rules returns the set of rules the zone enforces.
func (z *Zone) Rules() []ZoneRule {
	out := make([]ZoneRule, 0, len(z.rules))
	for r := range z.rules {
		out = append(out, r)
	}
	return out
}

// HasRule reports whether r is one of the zone's rules.
func (z *Zone) HasRule(r ZoneRule) bool { return z.rules[r] }

// Outline returns a copy of the outline path.
func (z *Zone) Outline() []units.Point { return append([]units.Point(nil), z.outline...) }

// IsClosed reports whether the outline's first and last points coincide.
func (z *Zone) IsClosed() bool {
	if len(z.outline) < 3 {
		return false
	}
	return z.outline[0] == z.outline[len(z.outline)-1]
}

func layerSetEqual(a, b map[ZoneLayer]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func ruleSetEqual(a, b map[ZoneRule]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

// SetLayers replaces the zone's layer set.
func (z *Zone) SetLayers(layers []ZoneLayer) bool {
	next := make(map[ZoneLayer]bool, len(layers))
	for _, l := range layers {
		next[l] = true
	}
	if layerSetEqual(z.layers, next) {
		return false
	}
	z.layers = next
	z.Changed.Emit(ZoneEvent{Kind: ZoneLayersChanged, Source: z})
	return true
}

// SetRules replaces the zone's rule set.
func (z *Zone) SetRules(rules []ZoneRule) bool {
	next := make(map[ZoneRule]bool, len(rules))
	for _, r := range rules {
		next[r] = true
	}
	if ruleSetEqual(z.rules, next) {
		return false
	}
	z.rules = next
	z.Changed.Emit(ZoneEvent{Kind: ZoneRulesChanged, Source: z})
	return true
}

// SetOutline replaces the outline path wholesale.
func (z *Zone) SetOutline(outline []units.Point) bool {
	next := append([]units.Point(nil), outline...)
	if pointsEqual(z.outline, next) {
		return false
	}
	z.outline = next
	z.Changed.Emit(ZoneEvent{Kind: ZoneOutlineChanged, Source: z})
	return true
}

func pointsEqual(a, b []units.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// AppendOutlinePoint adds p to the end of the outline while drawing.
func (z *Zone) AppendOutlinePoint(p units.Point) bool {
	return z.SetOutline(append(z.Outline(), p))
}

// Translate shifts every outline point by delta.
func (z *Zone) Translate(dx, dy units.Length) bool {
	next := make([]units.Point, len(z.outline))
	for i, p := range z.outline {
		next[i] = p.Translated(dx, dy)
	}
	return z.SetOutline(next)
}

// Rotate rotates every outline point around pivot.
func (z *Zone) Rotate(angle units.Angle, pivot units.Point) bool {
	next := make([]units.Point, len(z.outline))
	for i, p := range z.outline {
		next[i] = p.Rotated(angle, pivot)
	}
	return z.SetOutline(next)
}

// MirrorGeometry reflects every outline point across pivot.
func (z *Zone) MirrorGeometry(orientation units.Orientation, pivot units.Point) bool {
	next := make([]units.Point, len(z.outline))
	for i, p := range z.outline {
		next[i] = p.Mirrored(orientation, pivot)
	}
	return z.SetOutline(next)
}

// SnapToGrid snaps every outline point to interval.
func (z *Zone) SnapToGrid(interval units.PositiveLength) bool {
	next := make([]units.Point, len(z.outline))
	for i, p := range z.outline {
		next[i] = p.MappedToGrid(interval)
	}
	return z.SetOutline(next)
}

// MirrorLayer swaps ZoneLayerTop and ZoneLayerBottom membership,
// leaving ZoneLayerInner untouched (inner layers have no board side).
func (z *Zone) MirrorLayer() bool {
	next := make([]ZoneLayer, 0, len(z.layers))
	for l := range z.layers {
		switch l {
		case ZoneLayerTop:
			next = append(next, ZoneLayerBottom)
		case ZoneLayerBottom:
			next = append(next, ZoneLayerTop)
		default:
			next = append(next, l)
		}
	}
	return z.SetLayers(next)
}

// Clone returns a deep copy with a fresh (non-shared) Changed signal.
func (z *Zone) Clone() *Zone {
	clone := &Zone{
		uuid:    z.uuid,
		layers:  make(map[ZoneLayer]bool, len(z.layers)),
		rules:   make(map[ZoneRule]bool, len(z.rules)),
		outline: append([]units.Point(nil), z.outline...),
	}
	for k, v := range z.layers {
		clone.layers[k] = v
	}
	for k, v := range z.rules {
		clone.rules[k] = v
	}
	return clone
}

// Equal reports field-wise equality, excluding the Changed signal.
func (z *Zone) Equal(other *Zone) bool {
	if other == nil {
		return false
	}
	return z.uuid.Equal(other.uuid) && layerSetEqual(z.layers, other.layers) &&
		ruleSetEqual(z.rules, other.rules) && pointsEqual(z.outline, other.outline)
}

// Assign reassigns every field of z from other, UUID first.
func (z *Zone) Assign(other *Zone) {
	if z.uuid != other.uuid {
		z.uuid = other.uuid
		z.Changed.Emit(ZoneEvent{Kind: ZoneUUIDChanged, Source: z})
	}
	z.SetLayers(other.Layers())
	z.SetRules(other.Rules())
	z.SetOutline(other.outline)
}
