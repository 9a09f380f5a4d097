package geo

import (
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/signal"
	"github.com/librepcb/pkgeditor/internal/units"
)

// PadShape is the outline shape of a footprint pad's copper area.
type PadShape uint8

const (
	PadShapeRoundedRect PadShape = iota
	PadShapeRoundedOctagon
	PadShapeCustom
)

// PadFunction classifies the electrical/mechanical role a pad plays,
// which in turn drives its default stop-mask and solder-paste behavior.
type PadFunction uint8

const (
	PadFunctionStandardPad PadFunction = iota
	PadFunctionThermalPad
	PadFunctionBgaPad
	PadFunctionEdgeConnectorPad
	PadFunctionTestPad
	PadFunctionLocalFiducial
	PadFunctionGlobalFiducial
)

// PadSide is the board side a SMT pad's copper sits on. THT pads (any
// pad with at least one drill) ignore this field at render time since
// they pierce both sides, but it still participates in MirrorLayer.
type PadSide uint8

const (
	PadSideTop PadSide = iota
	PadSideBottom
)

// FootprintPadEventKind enumerates the fields a FootprintPad can change.
type FootprintPadEventKind uint8

const (
	FootprintPadUUIDChanged FootprintPadEventKind = iota
	FootprintPadPackagePadUUIDChanged
	FootprintPadPositionChanged
	FootprintPadRotationChanged
	FootprintPadShapeChanged
	FootprintPadWidthChanged
	FootprintPadHeightChanged
	FootprintPadRadiusChanged
	FootprintPadFunctionChanged
	FootprintPadComponentSideChanged
	FootprintPadStopMaskChanged
	FootprintPadSolderPasteChanged
	FootprintPadCopperClearanceChanged
	FootprintPadHolesChanged
)

// FootprintPadEvent is emitted after a field of a FootprintPad changes.
type FootprintPadEvent struct {
	Kind   FootprintPadEventKind
	Source *FootprintPad
}

// FootprintPad is one copper pad of a footprint, optionally referencing a
// PackagePad by UUID (an unreferenced pad UUID means the footprint hasn't
// yet been mapped onto the package's pad list).
type FootprintPad struct {
	uuid           ident.UUID
	packagePadUUID ident.UUID // zero value (invalid) means unmapped
	position       units.Point
	rotation       units.Angle
	shape          PadShape
	width          units.PositiveLength
	height         units.PositiveLength
	radius         units.UnsignedLimitedRatio
	function       PadFunction
	side           PadSide
	stopMask       StopMaskConfig
	solderPaste    SolderPasteConfig
	copperClearance units.UnsignedLength
	holes          []*Hole

	Changed signal.Signal[FootprintPadEvent]
}

// NewFootprintPad constructs a FootprintPad.
func NewFootprintPad(packagePadUUID ident.UUID, position units.Point, rotation units.Angle, shape PadShape, width, height units.PositiveLength, radius units.UnsignedLimitedRatio, function PadFunction, side PadSide, stopMask StopMaskConfig, solderPaste SolderPasteConfig, copperClearance units.UnsignedLength) *FootprintPad {
	return &FootprintPad{
		uuid: ident.NewUUID(), packagePadUUID: packagePadUUID, position: position,
		rotation: rotation, shape: shape, width: width, height: height,
		radius: radius, function: function, side: side, stopMask: stopMask,
		solderPaste: solderPaste, copperClearance: copperClearance,
	}
}

func (p *FootprintPad) UUID() ident.UUID                       { return p.uuid }
func (p *FootprintPad) PackagePadUUID() ident.UUID              { return p.packagePadUUID }
func (p *FootprintPad) IsMapped() bool                          { return p.packagePadUUID.IsValid() }
func (p *FootprintPad) Position() units.Point                   { return p.position }
func (p *FootprintPad) Rotation() units.Angle                   { return p.rotation }
func (p *FootprintPad) Shape() PadShape                         { return p.shape }
func (p *FootprintPad) Width() units.PositiveLength             { return p.width }
func (p *FootprintPad) Height() units.PositiveLength            { return p.height }
func (p *FootprintPad) Radius() units.UnsignedLimitedRatio      { return p.radius }
func (p *FootprintPad) Function() PadFunction                   { return p.function }
func (p *FootprintPad) ComponentSide() PadSide                  { return p.side }
func (p *FootprintPad) StopMask() StopMaskConfig                { return p.stopMask }
func (p *FootprintPad) SolderPaste() SolderPasteConfig          { return p.solderPaste }
func (p *FootprintPad) CopperClearance() units.UnsignedLength   { return p.copperClearance }

// Holes returns the pad's through-hole drills (THT pads may carry more
// than one, e.g. multi-drill press-fit pads); SMT pads have none.
func (p *FootprintPad) Holes() []*Hole { return append([]*Hole(nil), p.holes...) }

// IsTht reports whether the pad has at least one drill.
func (p *FootprintPad) IsTht() bool { return len(p.holes) > 0 }

// GetRecommendedRadius returns the corner radius fraction recommended for
// the pad's current shape: zero for sharp rectangles and octagons, and a
// library-wide default for rounded-rect pads absent an explicit override.
func (p *FootprintPad) GetRecommendedRadius() units.UnsignedLimitedRatio {
	switch p.shape {
	case PadShapeRoundedRect:
		return units.MustUnsignedLimitedRatio(units.RatioFromPercent(25))
	default:
		return units.MustUnsignedLimitedRatio(0)
	}
}

func (p *FootprintPad) SetPackagePadUUID(u ident.UUID) bool {
	if p.packagePadUUID == u {
		return false
	}
	p.packagePadUUID = u
	p.Changed.Emit(FootprintPadEvent{Kind: FootprintPadPackagePadUUIDChanged, Source: p})
	return true
}

func (p *FootprintPad) SetPosition(pos units.Point) bool {
	if p.position == pos {
		return false
	}
	p.position = pos
	p.Changed.Emit(FootprintPadEvent{Kind: FootprintPadPositionChanged, Source: p})
	return true
}

func (p *FootprintPad) SetRotation(a units.Angle) bool {
	if p.rotation == a {
		return false
	}
	p.rotation = a
	p.Changed.Emit(FootprintPadEvent{Kind: FootprintPadRotationChanged, Source: p})
	return true
}

func (p *FootprintPad) SetShape(shape PadShape) bool {
	if p.shape == shape {
		return false
	}
	p.shape = shape
	p.Changed.Emit(FootprintPadEvent{Kind: FootprintPadShapeChanged, Source: p})
	return true
}

func (p *FootprintPad) SetWidth(w units.PositiveLength) bool {
	if p.width == w {
		return false
	}
	p.width = w
	p.Changed.Emit(FootprintPadEvent{Kind: FootprintPadWidthChanged, Source: p})
	return true
}

func (p *FootprintPad) SetHeight(h units.PositiveLength) bool {
	if p.height == h {
		return false
	}
	p.height = h
	p.Changed.Emit(FootprintPadEvent{Kind: FootprintPadHeightChanged, Source: p})
	return true
}

func (p *FootprintPad) SetRadius(r units.UnsignedLimitedRatio) bool {
	if p.radius == r {
		return false
	}
	p.radius = r
	p.Changed.Emit(FootprintPadEvent{Kind: FootprintPadRadiusChanged, Source: p})
	return true
}

func (p *FootprintPad) SetFunction(fn PadFunction) bool {
	if p.function == fn {
		return false
	}
	p.function = fn
	p.Changed.Emit(FootprintPadEvent{Kind: FootprintPadFunctionChanged, Source: p})
	return true
}

func (p *FootprintPad) SetComponentSide(side PadSide) bool {
	if p.side == side {
		return false
	}
	p.side = side
	p.Changed.Emit(FootprintPadEvent{Kind: FootprintPadComponentSideChanged, Source: p})
	return true
}

func (p *FootprintPad) SetStopMask(cfg StopMaskConfig) bool {
	if p.stopMask == cfg {
		return false
	}
	p.stopMask = cfg
	p.Changed.Emit(FootprintPadEvent{Kind: FootprintPadStopMaskChanged, Source: p})
	return true
}

func (p *FootprintPad) SetSolderPaste(cfg SolderPasteConfig) bool {
	if p.solderPaste == cfg {
		return false
	}
	p.solderPaste = cfg
	p.Changed.Emit(FootprintPadEvent{Kind: FootprintPadSolderPasteChanged, Source: p})
	return true
}

func (p *FootprintPad) SetCopperClearance(c units.UnsignedLength) bool {
	if p.copperClearance == c {
		return false
	}
	p.copperClearance = c
	p.Changed.Emit(FootprintPadEvent{Kind: FootprintPadCopperClearanceChanged, Source: p})
	return true
}

// SetHoles replaces the pad's drill list wholesale, turning it from SMT
// into THT or vice versa.
func (p *FootprintPad) SetHoles(holes []*Hole) bool {
	p.holes = append([]*Hole(nil), holes...)
	p.Changed.Emit(FootprintPadEvent{Kind: FootprintPadHolesChanged, Source: p})
	return true
}

// Translate shifts the pad's position and every drill hole by delta.
func (p *FootprintPad) Translate(dx, dy units.Length) bool {
	moved := p.SetPosition(p.position.Translated(dx, dy))
	for _, h := range p.holes {
		moved = h.Translate(dx, dy) || moved
	}
	return moved
}

// Rotate rotates the pad's position around pivot, adds angle to its own
// rotation, and rotates every drill hole the same way.
func (p *FootprintPad) Rotate(angle units.Angle, pivot units.Point) bool {
	moved := p.SetPosition(p.position.Rotated(angle, pivot))
	rotated := p.SetRotation(p.rotation.Add(angle).NormalizeUnsigned())
	for _, h := range p.holes {
		rotated = h.Rotate(angle, pivot) || rotated
	}
	return moved || rotated
}

// MirrorGeometry reflects the pad's position across pivot, negates its
// rotation, and mirrors every drill hole.
func (p *FootprintPad) MirrorGeometry(orientation units.Orientation, pivot units.Point) bool {
	moved := p.SetPosition(p.position.Mirrored(orientation, pivot))
	rotated := p.SetRotation(p.rotation.Neg().NormalizeUnsigned())
	for _, h := range p.holes {
		rotated = h.MirrorGeometry(orientation, pivot) || rotated
	}
	return moved || rotated
}

// SnapToGrid snaps the pad's position to interval.
func (p *FootprintPad) SnapToGrid(interval units.PositiveLength) bool {
	return p.SetPosition(p.position.MappedToGrid(interval))
}

// MirrorLayer flips the pad to the opposite board side. THT pads (any
// pad with a drill) still carry a nominal side for mirroring purposes,
// even though they render on both.
func (p *FootprintPad) MirrorLayer() bool {
	if p.side == PadSideTop {
		return p.SetComponentSide(PadSideBottom)
	}
	return p.SetComponentSide(PadSideTop)
}

// Clone returns a deep copy, including independent copies of every
// drill hole, with a fresh (non-shared) Changed signal.
func (p *FootprintPad) Clone() *FootprintPad {
	clone := *p
	clone.Changed = signal.Signal[FootprintPadEvent]{}
	clone.holes = make([]*Hole, len(p.holes))
	for i, h := range p.holes {
		clone.holes[i] = h.Clone()
	}
	return &clone
}

func holesEqual(a, b []*Hole) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Equal reports field-wise equality, excluding the Changed signal.
func (p *FootprintPad) Equal(other *FootprintPad) bool {
	if other == nil {
		return false
	}
	return p.uuid.Equal(other.uuid) && p.packagePadUUID == other.packagePadUUID &&
		p.position == other.position && p.rotation == other.rotation &&
		p.shape == other.shape && p.width == other.width && p.height == other.height &&
		p.radius == other.radius && p.function == other.function && p.side == other.side &&
		p.stopMask == other.stopMask && p.solderPaste == other.solderPaste &&
		p.copperClearance == other.copperClearance && holesEqual(p.holes, other.holes)
}

// Assign reassigns every field of p from other, UUID first.
func (p *FootprintPad) Assign(other *FootprintPad) {
	if p.uuid != other.uuid {
		p.uuid = other.uuid
		p.Changed.Emit(FootprintPadEvent{Kind: FootprintPadUUIDChanged, Source: p})
	}
	p.SetPackagePadUUID(other.packagePadUUID)
	p.SetPosition(other.position)
	p.SetRotation(other.rotation)
	p.SetShape(other.shape)
	p.SetWidth(other.width)
	p.SetHeight(other.height)
	p.SetRadius(other.radius)
	p.SetFunction(other.function)
	p.SetComponentSide(other.side)
	p.SetStopMask(other.stopMask)
	p.SetSolderPaste(other.solderPaste)
	p.SetCopperClearance(other.copperClearance)
	clonedHoles := make([]*Hole, len(other.holes))
	for i, h := range other.holes {
		clonedHoles[i] = h.Clone()
	}
	p.SetHoles(clonedHoles)
}
