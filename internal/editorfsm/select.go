package editorfsm

import (
	"github.com/librepcb/pkgeditor/internal/dragcmd"
	"github.com/librepcb/pkgeditor/internal/editcmd"
	"github.com/librepcb/pkgeditor/internal/geo"
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/undo"
	"github.com/librepcb/pkgeditor/internal/units"
)

// vertexTarget identifies one polygon or zone vertex currently being
// dragged by Select's per-vertex-edit sub-state.
type vertexTarget struct {
	polygon *geo.Polygon // non-nil XOR zone non-nil
	zone    *geo.Zone
	index   int

	// beforePolygon/beforeZone snapshot the outline as it stood before
	// the drag began, so the release handler can commit the whole drag
	// as a single reversible editcmd.CmdCommitLiveEdit, the same way
	// beginDrag/s.dragging does for whole-item drags.
	beforePolygon *geo.Polygon
	beforeZone    *geo.Zone
}

// Select is the default, always-available tool: rectangle/click
// selection, double-click to open properties, the geometric transform
// commands (rotate/mirror/flip/moveAlign/snapToGrid/remove), paste, and
// a per-vertex outline-editing sub-state entered when the initial press
// lands within tolerance of a polygon or zone vertex.
type Select struct {
	Base
	m *Machine

	dragStart  units.Point
	dragging   *dragcmd.CmdDragSelectedFootprintItems
	draggingVertex *vertexTarget

	// vertexHitTolerance is how close (in nanometres) a press must land
	// to an existing vertex to grab it instead of starting a selection
	// rectangle or a whole-selection drag.
	vertexHitTolerance units.Length
}

func (*Select) Name() string { return "Select" }

func (s *Select) AvailableFeatures() FeatureSet {
	f := NewFeatureSet(FeatureSelectAll, FeatureCut, FeatureCopy, FeaturePaste, FeatureAbort)
	if s.m.ctx.HasSelection() {
		for _, feat := range []Feature{FeatureRotate, FeatureMirror, FeatureFlip, FeatureMoveAlign, FeatureSnapToGrid, FeatureRemove, FeatureEditProperties} {
			f[feat] = true
		}
	}
	return f
}

func (s *Select) Entry() bool {
	if s.vertexHitTolerance == 0 {
		s.vertexHitTolerance = units.NewLength(200_000) // 0.2mm, matching the library's pick radius
	}
	s.m.ctx.SetStatus("Click an item to select it, or drag a rectangle to select multiple items.")
	return true
}

func (s *Select) Exit() bool {
	s.draggingVertex = nil
	s.dragging = nil
	return true
}

// hitTestVertex looks for a polygon/zone vertex within tolerance of pos,
// across the current footprint's outline-bearing lists.
func (s *Select) hitTestVertex(pos units.Point) *vertexTarget {
	fp := s.m.ctx.Footprint
	if fp == nil {
		return nil
	}
	near := func(a, b units.Point) bool {
		dx := a.X - b.X
		dy := a.Y - b.Y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		return dx <= s.vertexHitTolerance && dy <= s.vertexHitTolerance
	}
	for _, poly := range fp.Polygons.All() {
		for i, v := range poly.Path() {
			if near(v.Position, pos) {
				return &vertexTarget{polygon: poly, index: i}
			}
		}
	}
	for _, z := range fp.Zones.All() {
		for i, p := range z.Outline() {
			if near(p, pos) {
				return &vertexTarget{zone: z, index: i}
			}
		}
	}
	return nil
}

func (s *Select) hitTestItem(pos units.Point) (ident.UUID, bool) {
	fp := s.m.ctx.Footprint
	if fp == nil {
		return ident.UUID{}, false
	}
	tol := s.vertexHitTolerance
	within := func(p units.Point) bool {
		dx := p.X - pos.X
		dy := p.Y - pos.Y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		return dx <= tol && dy <= tol
	}
	for _, c := range fp.Circles.All() {
		if within(c.Center()) {
			return c.UUID(), true
		}
	}
	for _, h := range fp.Holes.All() {
		if within(h.Position()) {
			return h.UUID(), true
		}
	}
	for _, t := range fp.StrokeTexts.All() {
		if within(t.Position()) {
			return t.UUID(), true
		}
	}
	for _, p := range fp.Pads.All() {
		if within(p.Position()) {
			return p.UUID(), true
		}
	}
	return ident.UUID{}, false
}

func (s *Select) ProcessGraphicsSceneLeftMouseButtonPressed(e PointerEvent) bool {
	s.dragStart = e.ScenePos
	if vt := s.hitTestVertex(e.ScenePos); vt != nil {
		if vt.polygon != nil {
			vt.beforePolygon = vt.polygon.Clone()
		} else {
			vt.beforeZone = vt.zone.Clone()
		}
		s.draggingVertex = vt
		return true
	}
	if id, ok := s.hitTestItem(e.ScenePos); ok {
		switch {
		case e.Modifiers.Has(ModControl):
			s.m.ctx.Selection.Toggle(id)
		case !s.m.ctx.Selection.Contains(id):
			if !e.Modifiers.Has(ModShift) {
				s.m.ctx.ClearSelection()
			}
			s.m.ctx.Selection.Add(id)
		}
		s.beginDrag()
		return true
	}
	if !e.Modifiers.Has(ModShift) && !e.Modifiers.Has(ModControl) {
		s.m.ctx.ClearSelection()
	}
	return true
}

func (s *Select) beginDrag() {
	items, center := s.collectSelectedItems()
	if len(items) == 0 {
		return
	}
	s.dragging = dragcmd.NewCmdDragSelectedFootprintItems(items, center, s.m.ctx.Grid.Enabled, s.m.ctx.Grid.Interval)
}

// collectSelectedItems gathers every selected primitive as a
// dragcmd.Item and computes the selection's grid-snapped centroid
// (pads/other items: their own position; polygons: mean of vertices).
func (s *Select) collectSelectedItems() ([]dragcmd.Item, units.Point) {
	fp := s.m.ctx.Footprint
	if fp == nil {
		return nil, units.Origin
	}
	var items []dragcmd.Item
	var sumX, sumY units.Length
	var n int64
	add := func(p units.Point) {
		sumX += p.X
		sumY += p.Y
		n++
	}
	sel := s.m.ctx.Selection
	for _, c := range fp.Circles.All() {
		if sel.Contains(c.UUID()) {
			items = append(items, c)
			add(c.Center())
		}
	}
	for _, p := range fp.Polygons.All() {
		if sel.Contains(p.UUID()) {
			items = append(items, p)
			for _, v := range p.Path() {
				add(v.Position)
			}
		}
	}
	for _, h := range fp.Holes.All() {
		if sel.Contains(h.UUID()) {
			items = append(items, h)
			add(h.Position())
		}
	}
	for _, t := range fp.StrokeTexts.All() {
		if sel.Contains(t.UUID()) {
			items = append(items, t)
			add(t.Position())
		}
	}
	for _, p := range fp.Pads.All() {
		if sel.Contains(p.UUID()) {
			items = append(items, p)
			add(p.Position())
		}
	}
	for _, z := range fp.Zones.All() {
		if sel.Contains(z.UUID()) {
			items = append(items, z)
			for _, v := range z.Outline() {
				add(v)
			}
		}
	}
	if n == 0 {
		return items, units.Origin
	}
	center := units.NewPoint(sumX.DivInt(n), sumY.DivInt(n))
	return items, s.m.ctx.Grid.Snap(center)
}

func (s *Select) ProcessGraphicsSceneMouseMoved(e PointerEvent) bool {
	if s.draggingVertex != nil {
		pos := s.m.ctx.Grid.Snap(e.ScenePos)
		s.applyVertexPosition(pos)
		return true
	}
	if s.dragging != nil {
		delta := units.NewPoint(e.ScenePos.X-s.dragStart.X, e.ScenePos.Y-s.dragStart.Y)
		s.dragging.SetDeltaToStartPos(delta)
		return true
	}
	return false
}

func (s *Select) applyVertexPosition(pos units.Point) {
	vt := s.draggingVertex
	if vt.polygon != nil {
		path := vt.polygon.Path()
		if vt.index < len(path) {
			path[vt.index].Position = pos
			vt.polygon.SetPath(path)
		}
		return
	}
	outline := vt.zone.Outline()
	if vt.index < len(outline) {
		outline[vt.index] = pos
		vt.zone.SetOutline(outline)
	}
}

func (s *Select) ProcessGraphicsSceneLeftMouseButtonReleased(e PointerEvent) bool {
	if s.draggingVertex != nil {
		vt := s.draggingVertex
		s.draggingVertex = nil
		if vt.polygon != nil {
			cmd := editcmd.NewCmdCommitLiveEdit(vt.polygon, vt.beforePolygon, "Move polygon vertex")
			if !cmd.IsNoOp() {
				_ = s.m.ctx.Undo.ExecCmd(cmd)
			}
		} else {
			cmd := editcmd.NewCmdCommitLiveEdit(vt.zone, vt.beforeZone, "Move zone vertex")
			if !cmd.IsNoOp() {
				_ = s.m.ctx.Undo.ExecCmd(cmd)
			}
		}
		return true
	}
	if s.dragging != nil {
		cmd := s.dragging
		s.dragging = nil
		if cmd.IsNoOp() {
			return true
		}
		_ = s.m.ctx.Undo.ExecCmd(cmd)
		return true
	}
	return false
}

func (s *Select) ProcessGraphicsSceneLeftMouseButtonDoubleClicked(e PointerEvent) bool {
	if id, ok := s.hitTestItem(e.ScenePos); ok && s.m.ctx.Properties != nil {
		s.m.ctx.Properties.EditProperties(id)
		return true
	}
	return false
}

func (s *Select) ProcessSelectAll() bool {
	fp := s.m.ctx.Footprint
	if fp == nil {
		return false
	}
	var ids []ident.UUID
	ids = append(ids, fp.Circles.UUIDs()...)
	ids = append(ids, fp.Polygons.UUIDs()...)
	ids = append(ids, fp.Holes.UUIDs()...)
	ids = append(ids, fp.StrokeTexts.UUIDs()...)
	ids = append(ids, fp.Pads.UUIDs()...)
	ids = append(ids, fp.Zones.UUIDs()...)
	s.m.ctx.Selection.SetAll(ids)
	return true
}

// ProcessEditProperties opens the properties dialog for the first
// selected item, mirroring what a double-click on that item would do.
func (s *Select) ProcessEditProperties() bool {
	if !s.m.ctx.HasSelection() || s.m.ctx.Properties == nil {
		return false
	}
	ids := s.m.ctx.Selection.UUIDs()
	if len(ids) == 0 {
		return false
	}
	s.m.ctx.Properties.EditProperties(ids[0])
	return true
}

// ProcessMoveAlign opens the same properties dialog, which carries the
// numeric position/rotation fields precise placement needs; there is no
// separate "align" primitive in this editor.
func (s *Select) ProcessMoveAlign() bool {
	return s.ProcessEditProperties()
}

func (s *Select) ProcessRemove() bool {
	if !s.m.ctx.HasSelection() {
		return false
	}
	fp := s.m.ctx.Footprint
	if err := s.m.ctx.Undo.BeginCmdGroup("Remove footprint items"); err != nil {
		return false
	}
	removed := false
	for _, id := range s.m.ctx.Selection.UUIDs() {
		switch {
		case fp.Circles.Contains(id):
			if cmd, err := editcmd.NewCmdListElementRemove(fp.Circles, id, "Remove circle"); err == nil {
				removed = s.appendToGroup(cmd) || removed
			}
		case fp.Polygons.Contains(id):
			if cmd, err := editcmd.NewCmdListElementRemove(fp.Polygons, id, "Remove polygon"); err == nil {
				removed = s.appendToGroup(cmd) || removed
			}
		case fp.Holes.Contains(id):
			if cmd, err := editcmd.NewCmdListElementRemove(fp.Holes, id, "Remove hole"); err == nil {
				removed = s.appendToGroup(cmd) || removed
			}
		case fp.StrokeTexts.Contains(id):
			if cmd, err := editcmd.NewCmdListElementRemove(fp.StrokeTexts, id, "Remove text"); err == nil {
				removed = s.appendToGroup(cmd) || removed
			}
		case fp.Pads.Contains(id):
			if cmd, err := editcmd.NewCmdListElementRemove(fp.Pads, id, "Remove pad"); err == nil {
				removed = s.appendToGroup(cmd) || removed
			}
		case fp.Zones.Contains(id):
			if cmd, err := editcmd.NewCmdListElementRemove(fp.Zones, id, "Remove zone"); err == nil {
				removed = s.appendToGroup(cmd) || removed
			}
		}
	}
	if removed {
		_ = s.m.ctx.Undo.CommitCmdGroup()
	} else {
		_ = s.m.ctx.Undo.AbortCmdGroup()
	}
	s.m.ctx.ClearSelection()
	return true
}

// appendToGroup appends cmd to the open transaction, reporting whether
// it was accepted.
func (s *Select) appendToGroup(cmd undo.Command) bool {
	return s.m.ctx.Undo.AppendToCmdGroup(cmd) == nil
}

func (s *Select) transform(apply func(*dragcmd.CmdDragSelectedFootprintItems)) bool {
	if !s.m.ctx.HasSelection() {
		return false
	}
	items, center := s.collectSelectedItems()
	if len(items) == 0 {
		return false
	}
	cmd := dragcmd.NewCmdDragSelectedFootprintItems(items, center, false, s.m.ctx.Grid.Interval)
	apply(cmd)
	if cmd.IsNoOp() {
		return true
	}
	_ = s.m.ctx.Undo.ExecCmd(cmd)
	return true
}

func (s *Select) ProcessRotate(angle units.Angle) bool {
	return s.transform(func(c *dragcmd.CmdDragSelectedFootprintItems) { c.Rotate(angle) })
}

func (s *Select) ProcessMirror(orientation units.Orientation) bool {
	return s.transform(func(c *dragcmd.CmdDragSelectedFootprintItems) { c.MirrorGeometry(orientation) })
}

// ProcessFlip mirrors both geometry and layer, used for "flip to the
// other board side" as opposed to a same-side geometric mirror.
func (s *Select) ProcessFlip(orientation units.Orientation) bool {
	return s.transform(func(c *dragcmd.CmdDragSelectedFootprintItems) {
		c.MirrorGeometry(orientation)
		c.MirrorLayer()
	})
}

// ProcessSnapToGrid moves the selection's centroid to the nearest grid
// point, a plain translate by the snap residual. A selection already on
// grid produces a zero delta, which IsNoOp then discards.
func (s *Select) ProcessSnapToGrid() bool {
	if !s.m.ctx.HasSelection() {
		return false
	}
	items, center := s.collectSelectedItems()
	if len(items) == 0 {
		return false
	}
	snapped := center.MappedToGrid(s.m.ctx.Grid.Interval)
	cmd := dragcmd.NewCmdDragSelectedFootprintItems(items, center, false, s.m.ctx.Grid.Interval)
	cmd.Translate(units.NewPoint(snapped.X.Sub(center.X), snapped.Y.Sub(center.Y)))
	if cmd.IsNoOp() {
		return true
	}
	_ = s.m.ctx.Undo.ExecCmd(cmd)
	return true
}

func (s *Select) ProcessMove(delta units.Point) bool {
	return s.transform(func(c *dragcmd.CmdDragSelectedFootprintItems) { c.Translate(delta) })
}

// copySelectionToClipboard snapshots every selected primitive into the
// machine's clipboard, replacing whatever it held before.
func (s *Select) copySelectionToClipboard() {
	fp := s.m.ctx.Footprint
	if fp == nil {
		return
	}
	sel := s.m.ctx.Selection
	var clip clipboard
	for _, c := range fp.Circles.All() {
		if sel.Contains(c.UUID()) {
			clip.circles = append(clip.circles, c.Clone())
		}
	}
	for _, p := range fp.Polygons.All() {
		if sel.Contains(p.UUID()) {
			clip.polygons = append(clip.polygons, p.Clone())
		}
	}
	for _, h := range fp.Holes.All() {
		if sel.Contains(h.UUID()) {
			clip.holes = append(clip.holes, h.Clone())
		}
	}
	for _, t := range fp.StrokeTexts.All() {
		if sel.Contains(t.UUID()) {
			clip.strokeTexts = append(clip.strokeTexts, t.Clone())
		}
	}
	for _, p := range fp.Pads.All() {
		if sel.Contains(p.UUID()) {
			clip.pads = append(clip.pads, p.Clone())
		}
	}
	for _, z := range fp.Zones.All() {
		if sel.Contains(z.UUID()) {
			clip.zones = append(clip.zones, z.Clone())
		}
	}
	s.m.clip = clip
}

// ProcessCut copies the selection to the clipboard, then removes it the
// same way ProcessRemove does.
func (s *Select) ProcessCut() bool {
	if !s.m.ctx.HasSelection() {
		return false
	}
	s.copySelectionToClipboard()
	return s.ProcessRemove()
}

func (s *Select) ProcessCopy() bool {
	if !s.m.ctx.HasSelection() {
		return false
	}
	s.copySelectionToClipboard()
	return true
}

// ProcessPaste inserts fresh copies of the clipboard's contents into the
// current footprint as a single reversible transaction and selects the
// newly inserted items.
func (s *Select) ProcessPaste() bool {
	fp := s.m.ctx.Footprint
	if fp == nil || s.m.clip.empty() {
		return false
	}
	pasted := s.m.clip.paste()
	if err := s.m.ctx.Undo.BeginCmdGroup("Paste footprint items"); err != nil {
		return false
	}
	var ids []ident.UUID
	inserted := false
	for _, el := range pasted.circles {
		cmd := editcmd.NewCmdListElementInsert(fp.Circles, fp.Circles.Len(), el, "Paste circle")
		if s.appendToGroup(cmd) {
			ids = append(ids, el.UUID())
			inserted = true
		}
	}
	for _, el := range pasted.polygons {
		cmd := editcmd.NewCmdListElementInsert(fp.Polygons, fp.Polygons.Len(), el, "Paste polygon")
		if s.appendToGroup(cmd) {
			ids = append(ids, el.UUID())
			inserted = true
		}
	}
	for _, el := range pasted.holes {
		cmd := editcmd.NewCmdListElementInsert(fp.Holes, fp.Holes.Len(), el, "Paste hole")
		if s.appendToGroup(cmd) {
			ids = append(ids, el.UUID())
			inserted = true
		}
	}
	for _, el := range pasted.strokeTexts {
		cmd := editcmd.NewCmdListElementInsert(fp.StrokeTexts, fp.StrokeTexts.Len(), el, "Paste text")
		if s.appendToGroup(cmd) {
			ids = append(ids, el.UUID())
			inserted = true
		}
	}
	for _, el := range pasted.pads {
		cmd := editcmd.NewCmdListElementInsert(fp.Pads, fp.Pads.Len(), el, "Paste pad")
		if s.appendToGroup(cmd) {
			ids = append(ids, el.UUID())
			inserted = true
		}
	}
	for _, el := range pasted.zones {
		cmd := editcmd.NewCmdListElementInsert(fp.Zones, fp.Zones.Len(), el, "Paste zone")
		if s.appendToGroup(cmd) {
			ids = append(ids, el.UUID())
			inserted = true
		}
	}
	if inserted {
		_ = s.m.ctx.Undo.CommitCmdGroup()
		s.m.ctx.Selection.SetAll(ids)
	} else {
		_ = s.m.ctx.Undo.AbortCmdGroup()
	}
	return inserted
}

func (s *Select) ProcessAbortCommand() bool {
	if s.draggingVertex != nil {
		s.draggingVertex = nil
		return true
	}
	if s.dragging != nil {
		s.dragging = nil
		return true
	}
	s.m.ctx.ClearSelection()
	return false
}
