package dragcmd

import "github.com/librepcb/pkgeditor/internal/units"

// Item is any selected footprint primitive the drag command can
// transform: every internal/geo entity used inside a Footprint
// (Circle, Polygon, Hole, StrokeText, FootprintPad, Zone) satisfies
// this.
type Item interface {
	Translate(dx, dy units.Length) bool
	Rotate(angle units.Angle, pivot units.Point) bool
	MirrorGeometry(orientation units.Orientation, pivot units.Point) bool
}

// layerMirrorable is implemented by items that carry a single board-side
// identity (Circle, Polygon, StrokeText, FootprintPad, Zone); Hole has
// none and is simply skipped by MirrorLayer.
type layerMirrorable interface {
	MirrorLayer() bool
}

// CmdDragSelectedFootprintItems is the composite edit command for a
// live drag: it captures the selected subset of footprint items once,
// applies translate/rotate/mirror live as the user drags (immediate
// feedback, well before anything reaches the undo stack), and replays
// the accumulated transform as a single reversible step.
type CmdDragSelectedFootprintItems struct {
	items []Item

	// centerPos is the pivot every Rotate/MirrorGeometry call uses: the
	// grid-snapped average position of the selection at construction
	// time, computed by the caller (pads: pad position; polygons: mean
	// of all vertices; rest: their own position).
	centerPos units.Point

	totalDelta       units.Point
	totalRot         units.Angle
	mirroredGeometry bool
	mirroredLayer    bool
	// lastOrientation is the axis the most recent MirrorGeometry call
	// used; Undo/Redo replay it since mirroring is self-inverse
	// regardless of axis but the call still needs one.
	lastOrientation units.Orientation

	snapToGrid   bool
	gridInterval units.PositiveLength
}

// NewCmdDragSelectedFootprintItems constructs a drag command over items,
// pivoting rotation and geometry-mirror around centerPos. Nothing is
// moved yet.
func NewCmdDragSelectedFootprintItems(items []Item, centerPos units.Point, snapToGrid bool, gridInterval units.PositiveLength) *CmdDragSelectedFootprintItems {
	return &CmdDragSelectedFootprintItems{
		items: append([]Item(nil), items...), centerPos: centerPos,
		snapToGrid: snapToGrid, gridInterval: gridInterval,
	}
}

// SetDeltaToStartPos recomputes the incremental translate needed to
// reach the absolute delta from the starting position, and applies the
// difference live. Called on every pointer-move event during a drag.
func (c *CmdDragSelectedFootprintItems) SetDeltaToStartPos(delta units.Point) {
	if c.snapToGrid {
		delta = delta.MappedToGrid(c.gridInterval)
	}
	if delta == c.totalDelta {
		return
	}
	stepX := delta.X.Sub(c.totalDelta.X)
	stepY := delta.Y.Sub(c.totalDelta.Y)
	for _, item := range c.items {
		item.Translate(stepX, stepY)
	}
	c.totalDelta = delta
}

// Translate applies an incremental move (e.g. one arrow-key nudge) to
// every item immediately, composing with any prior pending transform.
func (c *CmdDragSelectedFootprintItems) Translate(delta units.Point) {
	for _, item := range c.items {
		item.Translate(delta.X, delta.Y)
	}
	c.totalDelta = c.totalDelta.Translated(delta.X, delta.Y)
}

// Rotate rotates every item around centerPos by angle immediately,
// composing with any prior pending rotation.
func (c *CmdDragSelectedFootprintItems) Rotate(angle units.Angle) {
	for _, item := range c.items {
		item.Rotate(angle, c.centerPos)
	}
	c.totalRot = c.totalRot.Add(angle).NormalizeUnsigned()
}

// MirrorGeometry reflects every item across centerPos immediately, and
// toggles the accumulated mirroredGeometry flag (mirroring twice is the
// identity).
func (c *CmdDragSelectedFootprintItems) MirrorGeometry(orientation units.Orientation) {
	for _, item := range c.items {
		item.MirrorGeometry(orientation, c.centerPos)
	}
	c.mirroredGeometry = !c.mirroredGeometry
	c.lastOrientation = orientation
}

// MirrorLayer flips every item's board side immediately (skipping items
// with no single-layer identity, e.g. Hole) and toggles the accumulated
// mirroredLayer flag.
func (c *CmdDragSelectedFootprintItems) MirrorLayer() {
	for _, item := range c.items {
		if lm, ok := item.(layerMirrorable); ok {
			lm.MirrorLayer()
		}
	}
	c.mirroredLayer = !c.mirroredLayer
}

// Execute is a no-op: by the time a drag command reaches the undo
// stack's ExecCmd, every live call above has already applied its effect
// directly to the selected items, so they are already at their final
// state. Only Undo and Redo replay anything.
func (c *CmdDragSelectedFootprintItems) Execute() error { return nil }

// Undo reverses the accumulated transform, in the opposite order it was
// most naturally built up (layer mirror, geometry mirror, rotate,
// translate), each step being its own inverse or the exact negation of
// what Redo applies.
func (c *CmdDragSelectedFootprintItems) Undo() error {
	if c.mirroredLayer {
		for _, item := range c.items {
			if lm, ok := item.(layerMirrorable); ok {
				lm.MirrorLayer()
			}
		}
	}
	if c.mirroredGeometry {
		for _, item := range c.items {
			item.MirrorGeometry(c.lastOrientation, c.centerPos)
		}
	}
	if c.totalRot != 0 {
		for _, item := range c.items {
			item.Rotate(c.totalRot.Neg(), c.centerPos)
		}
	}
	if !c.totalDelta.IsOrigin() {
		for _, item := range c.items {
			item.Translate(-c.totalDelta.X, -c.totalDelta.Y)
		}
	}
	return nil
}

// Redo re-applies the accumulated transform in forward order.
func (c *CmdDragSelectedFootprintItems) Redo() error {
	if !c.totalDelta.IsOrigin() {
		for _, item := range c.items {
			item.Translate(c.totalDelta.X, c.totalDelta.Y)
		}
	}
	if c.totalRot != 0 {
		for _, item := range c.items {
			item.Rotate(c.totalRot, c.centerPos)
		}
	}
	if c.mirroredGeometry {
		for _, item := range c.items {
			item.MirrorGeometry(c.lastOrientation, c.centerPos)
		}
	}
	if c.mirroredLayer {
		for _, item := range c.items {
			if lm, ok := item.(layerMirrorable); ok {
				lm.MirrorLayer()
			}
		}
	}
	return nil
}

func (c *CmdDragSelectedFootprintItems) Description() string {
	return "Move selected footprint items"
}

// IsNoOp reports whether the drag ended up changing nothing: if every
// accumulator is null, the stack should discard the whole group instead
// of pushing it.
func (c *CmdDragSelectedFootprintItems) IsNoOp() bool {
	return c.totalDelta.IsOrigin() && c.totalRot == 0 && !c.mirroredGeometry && !c.mirroredLayer
}
