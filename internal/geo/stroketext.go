package geo

import (
	"github.com/rivo/uniseg"

	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/signal"
	"github.com/librepcb/pkgeditor/internal/units"
)

// HAlign is the horizontal component of a text alignment.
type HAlign uint8

const (
	HLeft HAlign = iota
	HCenter
	HRight
)

// VAlign is the vertical component of a text alignment.
type VAlign uint8

const (
	VTop VAlign = iota
	VCenter
	VBottom
)

// Alignment is a (horizontal, vertical) text anchor pair.
type Alignment struct {
	H HAlign
	V VAlign
}

// Spacing is a letter- or line-spacing setting: either "auto" (the
// sentinel the s-expression format writes as the bare token `auto`) or an
// explicit ratio of the nominal spacing.
type Spacing struct {
	Auto  bool
	Ratio units.Ratio
}

// AutoSpacing is the "automatic" spacing sentinel.
var AutoSpacing = Spacing{Auto: true}

// StrokeTextEventKind enumerates the fields a StrokeText can change.
type StrokeTextEventKind uint8

const (
	StrokeTextUUIDChanged StrokeTextEventKind = iota
	StrokeTextLayerChanged
	StrokeTextTextChanged
	StrokeTextPositionChanged
	StrokeTextRotationChanged
	StrokeTextHeightChanged
	StrokeTextStrokeWidthChanged
	StrokeTextLetterSpacingChanged
	StrokeTextLineSpacingChanged
	StrokeTextAlignmentChanged
	StrokeTextMirroredChanged
	StrokeTextAutoRotateChanged
)

// StrokeTextEvent is emitted after a field of a StrokeText changes.
type StrokeTextEvent struct {
	Kind   StrokeTextEventKind
	Source *StrokeText
}

// StrokeText is vector-stroked text rendered from a small built-in font,
// used for names, values, and free-form legend text.
type StrokeText struct {
	uuid          ident.UUID
	layer         units.GraphicsLayerName
	text          string
	position      units.Point
	rotation      units.Angle
	height        units.PositiveLength
	strokeWidth   units.UnsignedLength
	letterSpacing Spacing
	lineSpacing   Spacing
	alignment     Alignment
	mirrored      bool
	autoRotate    bool

	// cachedWidth holds the grapheme-aware width estimate used for the
	// text's grab-area bounding box; invalidated on any text/height/
	// strokeWidth/letterSpacing edit.
	cachedWidth     units.Length
	cachedWidthDone bool

	Changed signal.Signal[StrokeTextEvent]
}

// NewStrokeText constructs a StrokeText.
func NewStrokeText(layer units.GraphicsLayerName, text string, position units.Point, rotation units.Angle, height units.PositiveLength, strokeWidth units.UnsignedLength, letterSpacing, lineSpacing Spacing, alignment Alignment, mirrored, autoRotate bool) *StrokeText {
	return &StrokeText{
		uuid: ident.NewUUID(), layer: layer, text: text, position: position,
		rotation: rotation, height: height, strokeWidth: strokeWidth,
		letterSpacing: letterSpacing, lineSpacing: lineSpacing,
		alignment: alignment, mirrored: mirrored, autoRotate: autoRotate,
	}
}

func (t *StrokeText) UUID() ident.UUID                  { return t.uuid }
func (t *StrokeText) Layer() units.GraphicsLayerName    { return t.layer }
func (t *StrokeText) Text() string                      { return t.text }
func (t *StrokeText) Position() units.Point             { return t.position }
func (t *StrokeText) Rotation() units.Angle             { return t.rotation }
func (t *StrokeText) Height() units.PositiveLength      { return t.height }
func (t *StrokeText) StrokeWidth() units.UnsignedLength { return t.strokeWidth }
func (t *StrokeText) LetterSpacing() Spacing            { return t.letterSpacing }
func (t *StrokeText) LineSpacing() Spacing              { return t.lineSpacing }
func (t *StrokeText) Alignment() Alignment              { return t.alignment }
func (t *StrokeText) IsMirrored() bool                  { return t.mirrored }
func (t *StrokeText) AutoRotate() bool                  { return t.autoRotate }

func (t *StrokeText) invalidateCache() { t.cachedWidthDone = false }

// GrabAreaWidth returns the cached rendered-path bounding width used for
// the text's grab area and selection hit-testing, estimating the glyph
// count with grapheme clusters (via uniseg) rather than raw bytes so
// multi-byte legend text doesn't under-report its footprint.
func (t *StrokeText) GrabAreaWidth() units.Length {
	if !t.cachedWidthDone {
		graphemes := uniseg.GraphemeClusterCount(t.text)
		nominal := t.height.Length().Nanometres() * 6 / 10
		spacing := nominal / 5
		if !t.letterSpacing.Auto {
			spacing = nominal * int64(t.letterSpacing.Ratio) / 1_000_000
		}
		total := int64(0)
		if graphemes > 0 {
			total = int64(graphemes)*nominal + int64(graphemes-1)*spacing
		}
		t.cachedWidth = units.NewLength(total)
		t.cachedWidthDone = true
	}
	return t.cachedWidth
}

func (t *StrokeText) SetLayer(layer units.GraphicsLayerName) bool {
	if t.layer == layer {
		return false
	}
	t.layer = layer
	t.Changed.Emit(StrokeTextEvent{Kind: StrokeTextLayerChanged, Source: t})
	return true
}

func (t *StrokeText) SetText(text string) bool {
	if t.text == text {
		return false
	}
	t.text = text
	t.invalidateCache()
	t.Changed.Emit(StrokeTextEvent{Kind: StrokeTextTextChanged, Source: t})
	return true
}

func (t *StrokeText) SetPosition(p units.Point) bool {
	if t.position == p {
		return false
	}
	t.position = p
	t.Changed.Emit(StrokeTextEvent{Kind: StrokeTextPositionChanged, Source: t})
	return true
}

func (t *StrokeText) SetRotation(a units.Angle) bool {
	if t.rotation == a {
		return false
	}
	t.rotation = a
	t.Changed.Emit(StrokeTextEvent{Kind: StrokeTextRotationChanged, Source: t})
	return true
}

func (t *StrokeText) SetHeight(h units.PositiveLength) bool {
	if t.height == h {
		return false
	}
	t.height = h
	t.invalidateCache()
	t.Changed.Emit(StrokeTextEvent{Kind: StrokeTextHeightChanged, Source: t})
	return true
}

func (t *StrokeText) SetStrokeWidth(w units.UnsignedLength) bool {
	if t.strokeWidth == w {
		return false
	}
	t.strokeWidth = w
	t.invalidateCache()
	t.Changed.Emit(StrokeTextEvent{Kind: StrokeTextStrokeWidthChanged, Source: t})
	return true
}

func (t *StrokeText) SetLetterSpacing(s Spacing) bool {
	if t.letterSpacing == s {
		return false
	}
	t.letterSpacing = s
	t.invalidateCache()
	t.Changed.Emit(StrokeTextEvent{Kind: StrokeTextLetterSpacingChanged, Source: t})
	return true
}

func (t *StrokeText) SetLineSpacing(s Spacing) bool {
	if t.lineSpacing == s {
		return false
	}
	t.lineSpacing = s
	t.Changed.Emit(StrokeTextEvent{Kind: StrokeTextLineSpacingChanged, Source: t})
	return true
}

func (t *StrokeText) SetAlignment(a Alignment) bool {
	if t.alignment == a {
		return false
	}
	t.alignment = a
	t.Changed.Emit(StrokeTextEvent{Kind: StrokeTextAlignmentChanged, Source: t})
	return true
}

func (t *StrokeText) SetMirrored(m bool) bool {
	if t.mirrored == m {
		return false
	}
	t.mirrored = m
	t.Changed.Emit(StrokeTextEvent{Kind: StrokeTextMirroredChanged, Source: t})
	return true
}

func (t *StrokeText) SetAutoRotate(a bool) bool {
	if t.autoRotate == a {
		return false
	}
	t.autoRotate = a
	t.Changed.Emit(StrokeTextEvent{Kind: StrokeTextAutoRotateChanged, Source: t})
	return true
}

// Translate shifts the text's position by delta.
func (t *StrokeText) Translate(dx, dy units.Length) bool {
	return t.SetPosition(t.position.Translated(dx, dy))
}

// Rotate rotates the text's position around pivot and adds angle to its
// own rotation.
func (t *StrokeText) Rotate(angle units.Angle, pivot units.Point) bool {
	moved := t.SetPosition(t.position.Rotated(angle, pivot))
	rotated := t.SetRotation(t.rotation.Add(angle).NormalizeUnsigned())
	return moved || rotated
}

// MirrorGeometry reflects the text's position across pivot, negates its
// rotation, and toggles Mirrored.
func (t *StrokeText) MirrorGeometry(orientation units.Orientation, pivot units.Point) bool {
	moved := t.SetPosition(t.position.Mirrored(orientation, pivot))
	rotated := t.SetRotation(t.rotation.Neg().NormalizeUnsigned())
	flipped := t.SetMirrored(!t.mirrored)
	return moved || rotated || flipped
}

// MirrorLayer flips the text to the opposite board side.
func (t *StrokeText) MirrorLayer() bool {
	return t.SetLayer(units.GetMirroredLayerName(t.layer))
}

// SnapToGrid snaps the text's position to interval.
func (t *StrokeText) SnapToGrid(interval units.PositiveLength) bool {
	return t.SetPosition(t.position.MappedToGrid(interval))
}

// Clone returns a deep copy with a fresh (non-shared) Changed signal and
// an invalidated width cache.
func (t *StrokeText) Clone() *StrokeText {
	clone := *t
	clone.Changed = signal.Signal[StrokeTextEvent]{}
	clone.cachedWidthDone = false
	return &clone
}

// Equal reports field-wise equality, excluding the Changed signal and the
// derived width cache.
func (t *StrokeText) Equal(other *StrokeText) bool {
	if other == nil {
		return false
	}
	return t.uuid.Equal(other.uuid) && t.layer == other.layer && t.text == other.text &&
		t.position == other.position && t.rotation == other.rotation &&
		t.height == other.height && t.strokeWidth == other.strokeWidth &&
		t.letterSpacing == other.letterSpacing && t.lineSpacing == other.lineSpacing &&
		t.alignment == other.alignment && t.mirrored == other.mirrored &&
		t.autoRotate == other.autoRotate
}

// Assign reassigns every field of t from other, UUID first.
func (t *StrokeText) Assign(other *StrokeText) {
	if t.uuid != other.uuid {
		t.uuid = other.uuid
		t.Changed.Emit(StrokeTextEvent{Kind: StrokeTextUUIDChanged, Source: t})
	}
	t.SetLayer(other.layer)
	t.SetText(other.text)
	t.SetPosition(other.position)
	t.SetRotation(other.rotation)
	t.SetHeight(other.height)
	t.SetStrokeWidth(other.strokeWidth)
	t.SetLetterSpacing(other.letterSpacing)
	t.SetLineSpacing(other.lineSpacing)
	t.SetAlignment(other.alignment)
	t.SetMirrored(other.mirrored)
	t.SetAutoRotate(other.autoRotate)
}
