// Package layer provides the editor's graphics-layer registry: the
// fixed list of known layers (from internal/units.GraphicsLayerName)
// plus the color each one renders with, used by the UI to paint
// primitives and by internal/editorctx to pick a sensible default layer
// per tool.
package layer
