package editorfsm

import (
	"github.com/librepcb/pkgeditor/internal/geo"
	"github.com/librepcb/pkgeditor/internal/units"
)

// clipboard holds a snapshot of cut/copied primitives, cloned out of
// their footprint so later edits to the originals (or an undo past the
// copy) never leak into a subsequent paste. It lives on Machine rather
// than Select, since a Select value is rebuilt fresh every time the
// machine transitions back into it.
type clipboard struct {
	circles     []*geo.Circle
	polygons    []*geo.Polygon
	holes       []*geo.Hole
	strokeTexts []*geo.StrokeText
	pads        []*geo.FootprintPad
	zones       []*geo.Zone
}

func (c *clipboard) empty() bool {
	return c == nil || (len(c.circles) == 0 && len(c.polygons) == 0 && len(c.holes) == 0 &&
		len(c.strokeTexts) == 0 && len(c.pads) == 0 && len(c.zones) == 0)
}

// pasteOffset nudges pasted geometry away from its source so a paste
// lands visibly next to the items it was copied from rather than
// exactly on top of them.
const pasteOffset = units.Length(1_000_000) // 1mm

// pastedSet is the result of reconstructing a clipboard's contents as
// fresh primitives, ready to insert into a footprint's lists.
type pastedSet struct {
	circles     []*geo.Circle
	polygons    []*geo.Polygon
	holes       []*geo.Hole
	strokeTexts []*geo.StrokeText
	pads        []*geo.FootprintPad
	zones       []*geo.Zone
}

// paste reconstructs every clipboard entry as a brand-new primitive (a
// fresh UUID, offset by pasteOffset) using its public constructor, since
// Clone preserves identity and this package cannot reach into
// internal/geo's unexported uuid field to mint a new one directly.
func (c *clipboard) paste() pastedSet {
	var out pastedSet
	for _, src := range c.circles {
		el := geo.NewCircle(src.Layer(), src.LineWidth(), src.IsFilled(), src.HasGrabArea(), src.Center(), src.Diameter())
		el.Translate(pasteOffset, pasteOffset)
		out.circles = append(out.circles, el)
	}
	for _, src := range c.polygons {
		el := geo.NewPolygon(src.Layer(), src.LineWidth(), src.IsFilled(), src.HasGrabArea(), src.Path())
		el.Translate(pasteOffset, pasteOffset)
		out.polygons = append(out.polygons, el)
	}
	for _, src := range c.holes {
		el := geo.NewHole(src.Position(), src.Diameter(), src.SlotLength(), src.Rotation(), src.StopMask())
		el.Translate(pasteOffset, pasteOffset)
		out.holes = append(out.holes, el)
	}
	for _, src := range c.strokeTexts {
		el := geo.NewStrokeText(src.Layer(), src.Text(), src.Position(), src.Rotation(), src.Height(), src.StrokeWidth(),
			src.LetterSpacing(), src.LineSpacing(), src.Alignment(), src.IsMirrored(), src.AutoRotate())
		el.Translate(pasteOffset, pasteOffset)
		out.strokeTexts = append(out.strokeTexts, el)
	}
	for _, src := range c.pads {
		el := geo.NewFootprintPad(src.PackagePadUUID(), src.Position(), src.Rotation(), src.Shape(), src.Width(), src.Height(),
			src.Radius(), src.Function(), src.ComponentSide(), src.StopMask(), src.SolderPaste(), src.CopperClearance())
		el.Translate(pasteOffset, pasteOffset)
		out.pads = append(out.pads, el)
	}
	for _, src := range c.zones {
		el := geo.NewZone(src.Layers(), src.Rules(), src.Outline())
		el.Translate(pasteOffset, pasteOffset)
		out.zones = append(out.zones, el)
	}
	return out
}
