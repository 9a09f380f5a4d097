package units

import (
	"regexp"

	"github.com/librepcb/pkgeditor/internal/xerrors"
)

var layerNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,39}$`)

// GraphicsLayerName identifies a drawing surface (e.g. "top_copper",
// "top_names"). Layer identity is by name; two layers are the same layer
// iff their names are equal.
type GraphicsLayerName struct{ v string }

// NewGraphicsLayerName validates name against ^[a-z][a-z0-9_]{0,39}$.
func NewGraphicsLayerName(name string) (GraphicsLayerName, error) {
	if !layerNamePattern.MatchString(name) {
		return GraphicsLayerName{}, xerrors.NewInvalidValue("GraphicsLayerName", name)
	}
	return GraphicsLayerName{v: name}, nil
}

// MustGraphicsLayerName panics on an invalid value; reserved for literals
// and test fixtures known to be valid.
func MustGraphicsLayerName(name string) GraphicsLayerName {
	v, err := NewGraphicsLayerName(name)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the layer name.
func (n GraphicsLayerName) String() string { return n.v }

// Well-known layer names used by the drawing states and test fixtures.
var (
	LayerTopNames    = MustGraphicsLayerName("top_names")
	LayerBotNames    = MustGraphicsLayerName("bot_names")
	LayerTopValues   = MustGraphicsLayerName("top_values")
	LayerBotValues   = MustGraphicsLayerName("bot_values")
	LayerTopLegend   = MustGraphicsLayerName("top_legend")
	LayerBotLegend   = MustGraphicsLayerName("bot_legend")
	LayerTopCopper   = MustGraphicsLayerName("top_copper")
	LayerBotCopper   = MustGraphicsLayerName("bot_copper")
	LayerTopDocument = MustGraphicsLayerName("top_documentation")
	LayerBotDocument = MustGraphicsLayerName("bot_documentation")
)

// getMirroredLayerName implements the layer system's top<->bottom mirror
// policy used when flipping a layer to the other board side. Layers
// without a top/bottom counterpart mirror to themselves.
func getMirroredLayerName(name GraphicsLayerName) GraphicsLayerName {
	pairs := map[string]string{
		"top_names":         "bot_names",
		"bot_names":         "top_names",
		"top_values":        "bot_values",
		"bot_values":        "top_values",
		"top_legend":        "bot_legend",
		"bot_legend":        "top_legend",
		"top_copper":        "bot_copper",
		"bot_copper":        "top_copper",
		"top_documentation": "bot_documentation",
		"bot_documentation": "top_documentation",
	}
	if mirrored, ok := pairs[name.v]; ok {
		return GraphicsLayerName{v: mirrored}
	}
	return name
}

// GetMirroredLayerName is the exported form of the layer mirror policy,
// used by edit commands performing mirrorLayer().
func GetMirroredLayerName(name GraphicsLayerName) GraphicsLayerName {
	return getMirroredLayerName(name)
}
