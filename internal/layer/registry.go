package layer

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/librepcb/pkgeditor/internal/units"
	"github.com/librepcb/pkgeditor/internal/xerrors"
)

// Style describes how a layer renders: its color and whether its fill
// is drawn at reduced opacity (used for courtyard/assembly helper
// layers that shouldn't obscure copper).
type Style struct {
	Color       colorful.Color
	FillAlpha   float64
	Visible     bool
}

// Provider is the read side of the registry that internal/editorctx and
// the UI consume: look up a layer's current render style, and enumerate
// every known layer in a stable order.
type Provider interface {
	Style(name units.GraphicsLayerName) (Style, error)
	Names() []units.GraphicsLayerName
}

// Registry is the mutable, in-memory Provider implementation: a fixed
// set of well-known layers seeded with library-standard colors, with
// per-layer visibility toggled by the UI's layer panel.
type Registry struct {
	order   []units.GraphicsLayerName
	styles  map[units.GraphicsLayerName]Style
}

// NewDefaultRegistry builds a Registry seeded with the standard
// top/bottom layer set and a conventional color scheme (copper in
// traditional orange/yellow tones, documentation layers in neutral
// grays, legend in white).
func NewDefaultRegistry() *Registry {
	r := &Registry{}
	add := func(name units.GraphicsLayerName, hex string, alpha float64) {
		c, err := colorful.Hex(hex)
		if err != nil {
			// Every hex literal below is a compile-time constant; a
			// parse failure here means one was mistyped.
			panic(err)
		}
		r.order = append(r.order, name)
		if r.styles == nil {
			r.styles = make(map[units.GraphicsLayerName]Style)
		}
		r.styles[name] = Style{Color: c, FillAlpha: alpha, Visible: true}
	}

	add(units.LayerTopCopper, "#c89137", 1.0)
	add(units.LayerBotCopper, "#a07730", 1.0)
	add(units.LayerTopLegend, "#ffffff", 1.0)
	add(units.LayerBotLegend, "#ffffff", 1.0)
	add(units.LayerTopDocument, "#7f7f7f", 0.5)
	add(units.LayerBotDocument, "#7f7f7f", 0.5)

	return r
}

// Style returns the current render style for name.
func (r *Registry) Style(name units.GraphicsLayerName) (Style, error) {
	s, ok := r.styles[name]
	if !ok {
		return Style{}, xerrors.NewKeyNotFound("layer", name.String())
	}
	return s, nil
}

// Names returns every registered layer in display order.
func (r *Registry) Names() []units.GraphicsLayerName {
	return append([]units.GraphicsLayerName(nil), r.order...)
}

// SetColor changes a layer's color.
func (r *Registry) SetColor(name units.GraphicsLayerName, c colorful.Color) error {
	s, err := r.Style(name)
	if err != nil {
		return err
	}
	s.Color = c
	r.styles[name] = s
	return nil
}

// SetVisible toggles a layer's visibility.
func (r *Registry) SetVisible(name units.GraphicsLayerName, visible bool) error {
	s, err := r.Style(name)
	if err != nil {
		return err
	}
	s.Visible = visible
	r.styles[name] = s
	return nil
}

var _ Provider = (*Registry)(nil)
