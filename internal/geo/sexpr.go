package geo

import (
	"sort"

	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/sexpr"
	"github.com/librepcb/pkgeditor/internal/units"
	"github.com/librepcb/pkgeditor/internal/xerrors"
)

// This file implements the ToSExpr/FromSExpr pair required on every
// primitive entity, following the tag table's child order exactly
// so canonical output is stable across a load/save round trip.

func lengthAtom(l units.Length) sexpr.Atom  { return sexpr.FloatAtom(l.Millimetres()) }
func angleAtom(a units.Angle) sexpr.Atom    { return sexpr.FloatAtom(a.Degrees()) }
func layerAtom(l units.GraphicsLayerName) sexpr.Atom { return sexpr.Atom(l.String()) }

func parseLength(a sexpr.Atom) (units.Length, error) {
	f, err := a.Float()
	if err != nil {
		return 0, xerrors.NewInvalidValue("length", string(a))
	}
	return units.NewLength(int64(f*1e6 + 0.5*sign(f))), nil
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}

func parseAngle(a sexpr.Atom) (units.Angle, error) {
	f, err := a.Float()
	if err != nil {
		return 0, xerrors.NewInvalidValue("angle", string(a))
	}
	return units.AngleFromDegrees(f), nil
}

func positionNode(p units.Point) *sexpr.Node {
	return sexpr.New("position", lengthAtom(p.X), lengthAtom(p.Y))
}

func parsePosition(n *sexpr.Node) (units.Point, error) {
	if n == nil || len(n.Values) < 2 {
		return units.Point{}, xerrors.NewInvalidValue("position", n)
	}
	x, err := parseLength(n.Value(0))
	if err != nil {
		return units.Point{}, err
	}
	y, err := parseLength(n.Value(1))
	if err != nil {
		return units.Point{}, err
	}
	return units.NewPoint(x, y), nil
}

func stopMaskNode(tag string, cfg StopMaskConfig) *sexpr.Node {
	switch cfg.Mode {
	case StopMaskAuto:
		return sexpr.New(tag, "auto")
	case StopMaskOff:
		return sexpr.New(tag, "off")
	default:
		return sexpr.New(tag, "manual", lengthAtom(units.NewLength(cfg.Clearance)))
	}
}

func parseStopMask(n *sexpr.Node) (StopMaskConfig, error) {
	if n == nil || len(n.Values) == 0 {
		return StopMaskConfig{}, xerrors.NewInvalidValue("stop_mask", n)
	}
	switch n.Value(0) {
	case "auto":
		return StopMaskConfig{Mode: StopMaskAuto}, nil
	case "off":
		return StopMaskConfig{Mode: StopMaskOff}, nil
	case "manual":
		l, err := parseLength(n.Value(1))
		if err != nil {
			return StopMaskConfig{}, err
		}
		return StopMaskConfig{Mode: StopMaskManual, Clearance: l.Nanometres()}, nil
	default:
		return StopMaskConfig{}, xerrors.NewInvalidValue("stop_mask", n.Value(0))
	}
}

func solderPasteNode(cfg SolderPasteConfig) *sexpr.Node {
	return stopMaskNode("solder_paste", StopMaskConfig(cfg))
}

func parseSolderPaste(n *sexpr.Node) (SolderPasteConfig, error) {
	cfg, err := parseStopMask(n)
	return SolderPasteConfig(cfg), err
}

// ToSExpr renders c per the canonical circle tag table:
// uuid, layer, width, fill, grab_area, diameter, position.
func (c *Circle) ToSExpr() *sexpr.Node {
	n := sexpr.New("circle", sexpr.Atom(c.uuid.String()))
	n.Add(sexpr.New("layer", layerAtom(c.layer)))
	n.Add(sexpr.New("width", lengthAtom(c.lineWidth.Length())))
	n.Add(sexpr.New("fill", sexpr.BoolAtom(c.filled)))
	n.Add(sexpr.New("grab_area", sexpr.BoolAtom(c.grabArea)))
	n.Add(sexpr.New("diameter", lengthAtom(c.diameter.Length())))
	n.Add(positionNode(c.center))
	return n
}

// FromSExpr populates c from n, overwriting every field.
func (c *Circle) FromSExpr(n *sexpr.Node) error {
	uuid, err := ident.ParseUUID(string(n.Value(0)))
	if err != nil {
		return err
	}
	layer, err := units.NewGraphicsLayerName(string(n.ChildValue("layer")))
	if err != nil {
		return err
	}
	width, err := parseLength(n.ChildValue("width"))
	if err != nil {
		return err
	}
	diameter, err := parseLength(n.ChildValue("diameter"))
	if err != nil {
		return err
	}
	pos, err := parsePosition(n.Child("position"))
	if err != nil {
		return err
	}
	c.uuid = uuid
	c.layer = layer
	c.lineWidth = units.MustUnsignedLength(width)
	c.filled = n.ChildValue("fill").Bool()
	c.grabArea = n.ChildValue("grab_area").Bool()
	c.diameter = units.MustPositiveLength(diameter)
	c.center = pos
	return nil
}

// ToSExpr renders p per the canonical polygon tag table:
// uuid, layer, width, fill, grab_area, vertex list.
func (p *Polygon) ToSExpr() *sexpr.Node {
	n := sexpr.New("polygon", sexpr.Atom(p.uuid.String()))
	n.Add(sexpr.New("layer", layerAtom(p.layer)))
	n.Add(sexpr.New("width", lengthAtom(p.lineWidth.Length())))
	n.Add(sexpr.New("fill", sexpr.BoolAtom(p.filled)))
	n.Add(sexpr.New("grab_area", sexpr.BoolAtom(p.grabArea)))
	for _, v := range p.path {
		vn := sexpr.New("vertex")
		vn.Add(positionNode(v.Position))
		vn.Add(sexpr.New("angle", angleAtom(v.Angle)))
		n.Add(vn)
	}
	return n
}

// FromSExpr populates p from n, overwriting every field.
func (p *Polygon) FromSExpr(n *sexpr.Node) error {
	uuid, err := ident.ParseUUID(string(n.Value(0)))
	if err != nil {
		return err
	}
	layer, err := units.NewGraphicsLayerName(string(n.ChildValue("layer")))
	if err != nil {
		return err
	}
	width, err := parseLength(n.ChildValue("width"))
	if err != nil {
		return err
	}
	var path []Vertex
	for _, vn := range n.ChildrenWithTag("vertex") {
		pos, err := parsePosition(vn.Child("position"))
		if err != nil {
			return err
		}
		angle, err := parseAngle(vn.ChildValue("angle"))
		if err != nil {
			return err
		}
		path = append(path, Vertex{Position: pos, Angle: angle})
	}
	p.uuid = uuid
	p.layer = layer
	p.lineWidth = units.MustUnsignedLength(width)
	p.filled = n.ChildValue("fill").Bool()
	p.grabArea = n.ChildValue("grab_area").Bool()
	p.path = path
	return nil
}

// ToSExpr renders h per the canonical hole tag table: uuid, diameter,
// length, rotation, position. length/rotation are version-gated: a
// format below 0.2 omits them (slots didn't exist yet).
func (h *Hole) ToSExpr(version ident.Version) *sexpr.Node {
	n := sexpr.New("hole", sexpr.Atom(h.uuid.String()))
	n.Add(sexpr.New("diameter", lengthAtom(h.diameter.Length())))
	if version.AtLeast(ident.FormatGate02) {
		n.Add(sexpr.New("length", lengthAtom(h.slotLength.Length())))
		n.Add(sexpr.New("rotation", angleAtom(h.rotation)))
	}
	n.Add(positionNode(h.position))
	return n
}

// FromSExpr populates h from n. length/rotation default to zero when the
// document predates format 0.2 and omits them.
func (h *Hole) FromSExpr(n *sexpr.Node) error {
	uuid, err := ident.ParseUUID(string(n.Value(0)))
	if err != nil {
		return err
	}
	diameter, err := parseLength(n.ChildValue("diameter"))
	if err != nil {
		return err
	}
	var slotLength units.Length
	if lc := n.Child("length"); lc != nil {
		if slotLength, err = parseLength(lc.Value(0)); err != nil {
			return err
		}
	}
	var rotation units.Angle
	if rc := n.Child("rotation"); rc != nil {
		if rotation, err = parseAngle(rc.Value(0)); err != nil {
			return err
		}
	}
	pos, err := parsePosition(n.Child("position"))
	if err != nil {
		return err
	}
	h.uuid = uuid
	h.diameter = units.MustPositiveLength(diameter)
	h.slotLength = units.MustUnsignedLength(slotLength)
	h.rotation = rotation
	h.position = pos
	return nil
}

// ToSExpr renders t per the canonical stroke_text tag table.
func (t *StrokeText) ToSExpr() *sexpr.Node {
	n := sexpr.New("stroke_text", sexpr.Atom(t.uuid.String()))
	n.Add(sexpr.New("layer", layerAtom(t.layer)))
	n.Add(sexpr.New("height", lengthAtom(t.height.Length())))
	n.Add(sexpr.New("stroke_width", lengthAtom(t.strokeWidth.Length())))
	n.Add(spacingNode("letter_spacing", t.letterSpacing))
	n.Add(spacingNode("line_spacing", t.lineSpacing))
	n.Add(sexpr.New("align", alignAtom(t.alignment.H), alignAtomV(t.alignment.V)))
	n.Add(positionNode(t.position))
	n.Add(sexpr.New("rotation", angleAtom(t.rotation)))
	n.Add(sexpr.New("auto_rotate", sexpr.BoolAtom(t.autoRotate)))
	n.Add(sexpr.New("mirror", sexpr.BoolAtom(t.mirrored)))
	n.Add(sexpr.New("value", sexpr.Atom(t.text)))
	return n
}

func spacingNode(tag string, s Spacing) *sexpr.Node {
	if s.Auto {
		return sexpr.New(tag, "auto")
	}
	return sexpr.New(tag, sexpr.FloatAtom(s.Ratio.Percent()))
}

func parseSpacing(n *sexpr.Node) (Spacing, error) {
	if n == nil || len(n.Values) == 0 {
		return Spacing{}, xerrors.NewInvalidValue("spacing", n)
	}
	if n.Value(0) == "auto" {
		return AutoSpacing, nil
	}
	f, err := n.Value(0).Float()
	if err != nil {
		return Spacing{}, xerrors.NewInvalidValue("spacing", string(n.Value(0)))
	}
	return Spacing{Ratio: units.RatioFromPercent(f)}, nil
}

func alignAtom(h HAlign) sexpr.Atom {
	switch h {
	case HLeft:
		return "left"
	case HRight:
		return "right"
	default:
		return "center"
	}
}

func alignAtomV(v VAlign) sexpr.Atom {
	switch v {
	case VTop:
		return "top"
	case VBottom:
		return "bottom"
	default:
		return "center"
	}
}

func parseAlign(n *sexpr.Node) (Alignment, error) {
	if n == nil || len(n.Values) < 2 {
		return Alignment{}, xerrors.NewInvalidValue("align", n)
	}
	var a Alignment
	switch n.Value(0) {
	case "left":
		a.H = HLeft
	case "right":
		a.H = HRight
	default:
		a.H = HCenter
	}
	switch n.Value(1) {
	case "top":
		a.V = VTop
	case "bottom":
		a.V = VBottom
	default:
		a.V = VCenter
	}
	return a, nil
}

// FromSExpr populates t from n, overwriting every field.
func (t *StrokeText) FromSExpr(n *sexpr.Node) error {
	uuid, err := ident.ParseUUID(string(n.Value(0)))
	if err != nil {
		return err
	}
	layer, err := units.NewGraphicsLayerName(string(n.ChildValue("layer")))
	if err != nil {
		return err
	}
	height, err := parseLength(n.ChildValue("height"))
	if err != nil {
		return err
	}
	strokeWidth, err := parseLength(n.ChildValue("stroke_width"))
	if err != nil {
		return err
	}
	letterSpacing, err := parseSpacing(n.Child("letter_spacing"))
	if err != nil {
		return err
	}
	lineSpacing, err := parseSpacing(n.Child("line_spacing"))
	if err != nil {
		return err
	}
	align, err := parseAlign(n.Child("align"))
	if err != nil {
		return err
	}
	pos, err := parsePosition(n.Child("position"))
	if err != nil {
		return err
	}
	rotation, err := parseAngle(n.ChildValue("rotation"))
	if err != nil {
		return err
	}
	t.uuid = uuid
	t.layer = layer
	t.height = units.MustPositiveLength(height)
	t.strokeWidth = units.MustUnsignedLength(strokeWidth)
	t.letterSpacing = letterSpacing
	t.lineSpacing = lineSpacing
	t.alignment = align
	t.position = pos
	t.rotation = rotation
	t.autoRotate = n.ChildValue("auto_rotate").Bool()
	t.mirrored = n.ChildValue("mirror").Bool()
	t.text = string(n.ChildValue("value"))
	t.invalidateCache()
	return nil
}

var zoneLayerNames = map[ZoneLayer]sexpr.Atom{
	ZoneLayerTop: "top", ZoneLayerInner: "inner", ZoneLayerBottom: "bottom",
}
var zoneLayerValues = map[sexpr.Atom]ZoneLayer{
	"top": ZoneLayerTop, "inner": ZoneLayerInner, "bottom": ZoneLayerBottom,
}
var zoneRuleNames = map[ZoneRule]sexpr.Atom{
	ZoneRuleNoCopper: "no_copper", ZoneRuleNoPlanes: "no_planes",
	ZoneRuleNoExposure: "no_exposure", ZoneRuleNoDevices: "no_devices",
}
var zoneRuleValues = map[sexpr.Atom]ZoneRule{
	"no_copper": ZoneRuleNoCopper, "no_planes": ZoneRuleNoPlanes,
	"no_exposure": ZoneRuleNoExposure, "no_devices": ZoneRuleNoDevices,
}

// ToSExpr renders z per the canonical zone tag table: uuid, layers, rules,
// outline path.
func (z *Zone) ToSExpr() *sexpr.Node {
	n := sexpr.New("zone", sexpr.Atom(z.uuid.String()))
	layers := sexpr.New("layers")
	ls := z.Layers()
	sort.Slice(ls, func(i, j int) bool { return ls[i] < ls[j] })
	for _, l := range ls {
		layers.AddValue(zoneLayerNames[l])
	}
	n.Add(layers)
	rules := sexpr.New("rules")
	rs := z.Rules()
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	for _, r := range rs {
		rules.AddValue(zoneRuleNames[r])
	}
	n.Add(rules)
	outline := sexpr.New("outline")
	for _, p := range z.outline {
		outline.Add(positionNode(p))
	}
	n.Add(outline)
	return n
}

// FromSExpr populates z from n, overwriting every field.
func (z *Zone) FromSExpr(n *sexpr.Node) error {
	uuid, err := ident.ParseUUID(string(n.Value(0)))
	if err != nil {
		return err
	}
	layers := map[ZoneLayer]bool{}
	if lc := n.Child("layers"); lc != nil {
		for _, v := range lc.Values {
			layers[zoneLayerValues[v]] = true
		}
	}
	rules := map[ZoneRule]bool{}
	if rc := n.Child("rules"); rc != nil {
		for _, v := range rc.Values {
			rules[zoneRuleValues[v]] = true
		}
	}
	var outline []units.Point
	if oc := n.Child("outline"); oc != nil {
		for _, pn := range oc.ChildrenWithTag("position") {
			p, err := parsePosition(pn)
			if err != nil {
				return err
			}
			outline = append(outline, p)
		}
	}
	z.uuid = uuid
	z.layers = layers
	z.rules = rules
	z.outline = outline
	return nil
}

// ToSExpr renders l per the canonical label tag table: uuid, position,
// rotation, mirror.
func (l *NetLabel) ToSExpr() *sexpr.Node {
	n := sexpr.New("label", sexpr.Atom(l.uuid.String()))
	n.Add(positionNode(l.position))
	n.Add(sexpr.New("rotation", angleAtom(l.rotation)))
	n.Add(sexpr.New("mirror", sexpr.BoolAtom(l.mirrored)))
	return n
}

// FromSExpr populates l from n, overwriting every field except the net
// name, which the owning list's key supplies separately.
func (l *NetLabel) FromSExpr(n *sexpr.Node) error {
	uuid, err := ident.ParseUUID(string(n.Value(0)))
	if err != nil {
		return err
	}
	pos, err := parsePosition(n.Child("position"))
	if err != nil {
		return err
	}
	rotation, err := parseAngle(n.ChildValue("rotation"))
	if err != nil {
		return err
	}
	l.uuid = uuid
	l.position = pos
	l.rotation = rotation
	l.mirrored = n.ChildValue("mirror").Bool()
	return nil
}

func traceAnchorNode(tag string, a TraceAnchor) *sexpr.Node {
	switch a.Kind {
	case TraceAnchorPad:
		return sexpr.New(tag, "pad", sexpr.Atom(a.Pad.String()))
	case TraceAnchorVia:
		return sexpr.New(tag, "via", sexpr.Atom(a.Via.String()))
	default:
		n := sexpr.New(tag, "junction")
		n.Add(positionNode(a.Position))
		return n
	}
}

func parseTraceAnchor(n *sexpr.Node) (TraceAnchor, error) {
	if n == nil || len(n.Values) == 0 {
		return TraceAnchor{}, xerrors.NewInvalidValue("trace anchor", n)
	}
	switch n.Value(0) {
	case "pad":
		u, err := ident.ParseUUID(string(n.Value(1)))
		if err != nil {
			return TraceAnchor{}, err
		}
		return TraceAnchor{Kind: TraceAnchorPad, Pad: u}, nil
	case "via":
		u, err := ident.ParseUUID(string(n.Value(1)))
		if err != nil {
			return TraceAnchor{}, err
		}
		return TraceAnchor{Kind: TraceAnchorVia, Via: u}, nil
	case "junction":
		p, err := parsePosition(n.Child("position"))
		if err != nil {
			return TraceAnchor{}, err
		}
		return TraceAnchor{Kind: TraceAnchorJunction, Position: p}, nil
	default:
		return TraceAnchor{}, xerrors.NewInvalidValue("trace anchor kind", string(n.Value(0)))
	}
}

// ToSExpr renders t per the canonical trace tag table: uuid, layer, width,
// from, to.
func (t *Trace) ToSExpr() *sexpr.Node {
	n := sexpr.New("trace", sexpr.Atom(t.uuid.String()))
	n.Add(sexpr.New("layer", layerAtom(t.layer)))
	n.Add(sexpr.New("width", lengthAtom(t.width.Length())))
	n.Add(traceAnchorNode("from", t.start))
	n.Add(traceAnchorNode("to", t.end))
	return n
}

// FromSExpr populates t from n, overwriting every field.
func (t *Trace) FromSExpr(n *sexpr.Node) error {
	uuid, err := ident.ParseUUID(string(n.Value(0)))
	if err != nil {
		return err
	}
	layer, err := units.NewGraphicsLayerName(string(n.ChildValue("layer")))
	if err != nil {
		return err
	}
	width, err := parseLength(n.ChildValue("width"))
	if err != nil {
		return err
	}
	start, err := parseTraceAnchor(n.Child("from"))
	if err != nil {
		return err
	}
	end, err := parseTraceAnchor(n.Child("to"))
	if err != nil {
		return err
	}
	t.uuid = uuid
	t.layer = layer
	t.width = units.MustPositiveLength(width)
	t.start = start
	t.end = end
	return nil
}

// ToSExpr renders a per the canonical attribute tag table: value token,
// type, unit, value.
func (a *Attribute) ToSExpr() *sexpr.Node {
	n := sexpr.New("attribute", sexpr.Atom(a.key.String()))
	n.Add(sexpr.New("type", sexpr.Atom(a.typ.Name)))
	if a.unit != nil {
		n.Add(sexpr.New("unit", sexpr.Atom(a.unit.Name)))
	}
	n.Add(sexpr.New("value", sexpr.Atom(a.value)))
	return n
}

// FromSExpr populates a from n, overwriting every field. The attribute
// type is resolved from the type name against knownAttributeTypes; an
// unrecognized type name falls back to AttributeTypeString so a future
// format extension doesn't hard-fail a load.
func (a *Attribute) FromSExpr(n *sexpr.Node) error {
	key, err := ident.NewAttributeKey(string(n.Value(0)))
	if err != nil {
		return err
	}
	typ := AttributeTypeString
	switch n.ChildValue("type") {
	case AttributeTypeBoolean.Name:
		typ = AttributeTypeBoolean
	case AttributeTypeResistance.Name:
		typ = AttributeTypeResistance
	case AttributeTypeVoltage.Name:
		typ = AttributeTypeVoltage
	case AttributeTypeCapacitance.Name:
		typ = AttributeTypeCapacitance
	}
	var unit *AttributeUnit
	if uc := n.Child("unit"); uc != nil {
		unit = &AttributeUnit{Name: string(uc.Value(0))}
	}
	a.uuid = ident.NewUUID()
	a.key = key
	a.typ = typ
	a.unit = unit
	a.value = string(n.ChildValue("value"))
	return nil
}

// ToSExpr renders p per the canonical pad tag table (PackagePad row): uuid,
// name token.
func (p *PackagePad) ToSExpr() *sexpr.Node {
	return sexpr.New("pad", sexpr.Atom(p.uuid.String()), sexpr.Atom(p.name.String()))
}

// FromSExpr populates p from n, overwriting every field.
func (p *PackagePad) FromSExpr(n *sexpr.Node) error {
	uuid, err := ident.ParseUUID(string(n.Value(0)))
	if err != nil {
		return err
	}
	name, err := ident.NewCircuitIdentifier(string(n.Value(1)))
	if err != nil {
		return err
	}
	p.uuid = uuid
	p.name = name
	return nil
}

var padShapeNames = map[PadShape]sexpr.Atom{
	PadShapeRoundedRect: "roundrect", PadShapeRoundedOctagon: "octagon", PadShapeCustom: "custom",
}
var padShapeValues = map[sexpr.Atom]PadShape{
	"roundrect": PadShapeRoundedRect, "octagon": PadShapeRoundedOctagon, "custom": PadShapeCustom,
}
var padFunctionNames = map[PadFunction]sexpr.Atom{
	PadFunctionStandardPad: "standard", PadFunctionThermalPad: "thermal",
	PadFunctionBgaPad: "bga", PadFunctionEdgeConnectorPad: "edge_connector",
	PadFunctionTestPad: "test", PadFunctionLocalFiducial: "local_fiducial",
	PadFunctionGlobalFiducial: "global_fiducial",
}
var padFunctionValues = map[sexpr.Atom]PadFunction{
	"standard": PadFunctionStandardPad, "thermal": PadFunctionThermalPad,
	"bga": PadFunctionBgaPad, "edge_connector": PadFunctionEdgeConnectorPad,
	"test": PadFunctionTestPad, "local_fiducial": PadFunctionLocalFiducial,
	"global_fiducial": PadFunctionGlobalFiducial,
}

// ToSExpr renders p per the canonical pad tag table (FootprintPad row):
// package-pad-ref, side, shape, radius, position, rotation, size,
// function, clearance, stop-mask, solder-paste, holes.
func (p *FootprintPad) ToSExpr(version ident.Version) *sexpr.Node {
	n := sexpr.New("pad", sexpr.Atom(p.uuid.String()))
	n.Add(sexpr.New("package_pad", sexpr.Atom(p.packagePadUUID.String())))
	n.Add(sexpr.New("side", sideAtom(p.side)))
	n.Add(sexpr.New("shape", padShapeNames[p.shape]))
	n.Add(sexpr.New("radius", sexpr.FloatAtom(p.radius.Ratio().Percent())))
	n.Add(positionNode(p.position))
	n.Add(sexpr.New("rotation", angleAtom(p.rotation)))
	n.Add(sexpr.New("size", lengthAtom(p.width.Length()), lengthAtom(p.height.Length())))
	n.Add(sexpr.New("function", padFunctionNames[p.function]))
	n.Add(sexpr.New("clearance", lengthAtom(p.copperClearance.Length())))
	n.Add(stopMaskNode("stop_mask", p.stopMask))
	n.Add(solderPasteNode(p.solderPaste))
	holes := sexpr.New("holes")
	for _, h := range p.holes {
		holes.Add(h.ToSExpr(version))
	}
	n.Add(holes)
	return n
}

func sideAtom(s PadSide) sexpr.Atom {
	if s == PadSideBottom {
		return "bottom"
	}
	return "top"
}

// FromSExpr populates p from n, overwriting every field.
func (p *FootprintPad) FromSExpr(n *sexpr.Node) error {
	uuid, err := ident.ParseUUID(string(n.Value(0)))
	if err != nil {
		return err
	}
	packagePadUUID, err := ident.ParseUUID(string(n.ChildValue("package_pad")))
	if err != nil {
		return err
	}
	pos, err := parsePosition(n.Child("position"))
	if err != nil {
		return err
	}
	rotation, err := parseAngle(n.ChildValue("rotation"))
	if err != nil {
		return err
	}
	sizeNode := n.Child("size")
	if sizeNode == nil || len(sizeNode.Values) < 2 {
		return xerrors.NewInvalidValue("pad size", sizeNode)
	}
	width, err := parseLength(sizeNode.Value(0))
	if err != nil {
		return err
	}
	height, err := parseLength(sizeNode.Value(1))
	if err != nil {
		return err
	}
	radiusFloat, err := n.ChildValue("radius").Float()
	if err != nil {
		return xerrors.NewInvalidValue("pad radius", string(n.ChildValue("radius")))
	}
	clearance, err := parseLength(n.ChildValue("clearance"))
	if err != nil {
		return err
	}
	stopMask, err := parseStopMask(n.Child("stop_mask"))
	if err != nil {
		return err
	}
	solderPaste, err := parseSolderPaste(n.Child("solder_paste"))
	if err != nil {
		return err
	}
	var holes []*Hole
	if hc := n.Child("holes"); hc != nil {
		for _, hn := range hc.ChildrenWithTag("hole") {
			h := &Hole{}
			if err := h.FromSExpr(hn); err != nil {
				return err
			}
			holes = append(holes, h)
		}
	}

	p.uuid = uuid
	p.packagePadUUID = packagePadUUID
	p.position = pos
	p.rotation = rotation
	p.shape = padShapeValues[n.ChildValue("shape")]
	p.width = units.MustPositiveLength(width)
	p.height = units.MustPositiveLength(height)
	p.radius = units.MustUnsignedLimitedRatio(units.RatioFromPercent(radiusFloat))
	p.function = padFunctionValues[n.ChildValue("function")]
	if n.ChildValue("side") == "bottom" {
		p.side = PadSideBottom
	} else {
		p.side = PadSideTop
	}
	p.copperClearance = units.MustUnsignedLength(clearance)
	p.stopMask = stopMask
	p.solderPaste = solderPaste
	p.holes = holes
	return nil
}
