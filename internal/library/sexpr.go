package library

import (
	"github.com/librepcb/pkgeditor/internal/geo"
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/sexpr"
	"github.com/librepcb/pkgeditor/internal/xerrors"
)

// ToSExpr renders the package's library.lp root document: metadata,
// then every package pad, attribute, model, and footprint variant.
func (p *Package) ToSExpr() *sexpr.Node {
	n := sexpr.New("package", sexpr.Atom(p.Metadata.UUID.String()))
	n.Add(metadataNode(p.Metadata))
	for _, pad := range p.PackagePads.All() {
		n.Add(pad.ToSExpr())
	}
	for _, attr := range p.Attributes.All() {
		n.Add(attr.ToSExpr())
	}
	for _, m := range p.Models {
		n.Add(sexpr.New("3d_model", sexpr.Atom(m.UUID.String()), sexpr.Atom(m.Name)))
	}
	for _, fp := range p.Footprints {
		n.Add(fp.ToSExpr(p.Metadata.Version))
	}
	return n
}

// FromSExpr populates p from n, overwriting every field.
func (p *Package) FromSExpr(n *sexpr.Node) error {
	uuid, err := ident.ParseUUID(string(n.Value(0)))
	if err != nil {
		return err
	}
	meta, err := parseMetadata(n.Child("metadata"), uuid)
	if err != nil {
		return err
	}

	pads := p.PackagePads
	for _, id := range pads.UUIDs() {
		_, _ = pads.Remove(id)
	}
	for _, pn := range n.ChildrenWithTag("pad") {
		pad := &geo.PackagePad{}
		if err := pad.FromSExpr(pn); err != nil {
			return err
		}
		if err := pads.Append(pad); err != nil {
			return err
		}
	}

	attrs := p.Attributes
	for _, id := range attrs.UUIDs() {
		_, _ = attrs.Remove(id)
	}
	for _, an := range n.ChildrenWithTag("attribute") {
		attr := &geo.Attribute{}
		if err := attr.FromSExpr(an); err != nil {
			return err
		}
		if err := attrs.Append(attr); err != nil {
			return err
		}
	}

	var models []*Model
	for _, mn := range n.ChildrenWithTag("3d_model") {
		id, err := ident.ParseUUID(string(mn.Value(0)))
		if err != nil {
			return err
		}
		models = append(models, &Model{UUID: id, Name: string(mn.Value(1))})
	}

	var footprints []*Footprint
	for _, fn := range n.ChildrenWithTag("footprint") {
		fp := NewFootprint(ident.CircuitIdentifier{})
		if err := fp.FromSExpr(fn, meta.Version); err != nil {
			return err
		}
		footprints = append(footprints, fp)
	}

	p.Metadata = meta
	p.Models = models
	p.Footprints = footprints
	p.NotifyMetadataChanged()
	return nil
}

func metadataNode(m Metadata) *sexpr.Node {
	n := sexpr.New("metadata")
	n.Add(sexpr.New("name", sexpr.Atom(m.Name.String())))
	n.Add(sexpr.New("description", sexpr.Atom(m.Description)))
	n.Add(sexpr.New("author", sexpr.Atom(m.Author)))
	n.Add(sexpr.New("version", sexpr.Atom(m.Version.String())))
	n.Add(sexpr.New("deprecated", sexpr.BoolAtom(m.Deprecated)))
	kw := sexpr.New("keywords")
	for _, k := range m.Keywords {
		kw.AddValue(sexpr.Atom(k))
	}
	n.Add(kw)
	return n
}

func parseMetadata(n *sexpr.Node, uuid ident.UUID) (Metadata, error) {
	if n == nil {
		return Metadata{}, xerrors.NewInvalidValue("metadata", n)
	}
	name, err := ident.NewCircuitIdentifier(string(n.ChildValue("name")))
	if err != nil {
		return Metadata{}, err
	}
	version, err := ident.NewVersion(string(n.ChildValue("version")))
	if err != nil {
		return Metadata{}, err
	}
	var keywords []string
	if kw := n.Child("keywords"); kw != nil {
		for _, v := range kw.Values {
			keywords = append(keywords, string(v))
		}
	}
	return Metadata{
		UUID:        uuid,
		Name:        name,
		Description: string(n.ChildValue("description")),
		Keywords:    keywords,
		Author:      string(n.ChildValue("author")),
		Version:     version,
		Deprecated:  n.ChildValue("deprecated").Bool(),
	}, nil
}

// ToSExpr renders f as a footprint variant child of a package document:
// uuid, name, then every primitive grouped by kind.
func (f *Footprint) ToSExpr(version ident.Version) *sexpr.Node {
	n := sexpr.New("footprint", sexpr.Atom(f.uuid.String()))
	n.Add(sexpr.New("name", sexpr.Atom(f.name.String())))
	for _, id := range f.models3D {
		n.Add(sexpr.New("3d_model_ref", sexpr.Atom(id.String())))
	}
	for _, c := range f.Pads.All() {
		n.Add(c.ToSExpr(version))
	}
	for _, c := range f.Circles.All() {
		n.Add(c.ToSExpr())
	}
	for _, c := range f.Polygons.All() {
		n.Add(c.ToSExpr())
	}
	for _, c := range f.Holes.All() {
		n.Add(c.ToSExpr(version))
	}
	for _, c := range f.StrokeTexts.All() {
		n.Add(c.ToSExpr())
	}
	for _, c := range f.Zones.All() {
		n.Add(c.ToSExpr())
	}
	return n
}

// FromSExpr populates f from n, overwriting every field. version mirrors
// ToSExpr's parameter but is not used: hole children are decoded
// whenever they are present, whatever the document's format.
func (f *Footprint) FromSExpr(n *sexpr.Node, version ident.Version) error {
	uuid, err := ident.ParseUUID(string(n.Value(0)))
	if err != nil {
		return err
	}
	name, err := ident.NewCircuitIdentifier(string(n.ChildValue("name")))
	if err != nil {
		return err
	}
	var models3D []ident.UUID
	for _, rn := range n.ChildrenWithTag("3d_model_ref") {
		id, err := ident.ParseUUID(string(rn.Value(0)))
		if err != nil {
			return err
		}
		models3D = append(models3D, id)
	}

	fresh := NewFootprint(name)
	fresh.uuid = uuid
	fresh.models3D = models3D
	for _, pn := range n.ChildrenWithTag("pad") {
		pad := &geo.FootprintPad{}
		if err := pad.FromSExpr(pn); err != nil {
			return err
		}
		if err := fresh.Pads.Append(pad); err != nil {
			return err
		}
	}
	for _, cn := range n.ChildrenWithTag("circle") {
		c := &geo.Circle{}
		if err := c.FromSExpr(cn); err != nil {
			return err
		}
		if err := fresh.Circles.Append(c); err != nil {
			return err
		}
	}
	for _, pn := range n.ChildrenWithTag("polygon") {
		poly := &geo.Polygon{}
		if err := poly.FromSExpr(pn); err != nil {
			return err
		}
		if err := fresh.Polygons.Append(poly); err != nil {
			return err
		}
	}
	for _, hn := range n.ChildrenWithTag("hole") {
		h := &geo.Hole{}
		if err := h.FromSExpr(hn); err != nil {
			return err
		}
		if err := fresh.Holes.Append(h); err != nil {
			return err
		}
	}
	for _, tn := range n.ChildrenWithTag("stroke_text") {
		t := &geo.StrokeText{}
		if err := t.FromSExpr(tn); err != nil {
			return err
		}
		if err := fresh.StrokeTexts.Append(t); err != nil {
			return err
		}
	}
	for _, zn := range n.ChildrenWithTag("zone") {
		z := &geo.Zone{}
		if err := z.FromSExpr(zn); err != nil {
			return err
		}
		if err := fresh.Zones.Append(z); err != nil {
			return err
		}
	}

	f.uuid = fresh.uuid
	f.name = fresh.name
	f.models3D = fresh.models3D
	f.Circles = fresh.Circles
	f.Polygons = fresh.Polygons
	f.Holes = fresh.Holes
	f.StrokeTexts = fresh.StrokeTexts
	f.Pads = fresh.Pads
	f.Zones = fresh.Zones
	return nil
}
