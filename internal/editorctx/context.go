package editorctx

import (
	"errors"

	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/layer"
	"github.com/librepcb/pkgeditor/internal/library"
	"github.com/librepcb/pkgeditor/internal/undo"
	"github.com/librepcb/pkgeditor/internal/units"
)

// Errors returned by Validate/ValidateForEdit.
var (
	ErrMissingFootprint = errors.New("editorctx: no footprint set")
	ErrMissingUndoStack = errors.New("editorctx: no undo stack set")
	ErrReadOnly         = errors.New("editorctx: footprint is read-only")
)

// SelectionInterface abstracts the set of currently selected primitive
// UUIDs, decoupling editorfsm states from objlist's concrete generics.
type SelectionInterface interface {
	UUIDs() []ident.UUID
	Contains(id ident.UUID) bool
	Clear()
	SetAll(ids []ident.UUID)
	Count() int
	Add(id ident.UUID)
	Toggle(id ident.UUID)
	Remove(id ident.UUID)
}

// StatusSink receives the ephemeral status-bar text a tool emits while
// it's active (ruler readouts, "click to place the second point", a
// UserError message surfaced instead of a modal dialog).
type StatusSink interface {
	SetStatus(text string)
}

// ToolbarSink lets a drawing state push its current parameters (layer,
// line width, filled, grab area, ...) onto the command toolbar's live
// controls, and receive them back when the user edits a control
// in-place mid-draw.
type ToolbarSink interface {
	SetToolbarValue(key, value string)
}

// PropertiesEditor opens the per-primitive modal properties dialog; it
// is a callback into the excluded UI layer, invoked by Select's
// double-click handler. The bool result matches the dialog's own
// accept/cancel outcome.
type PropertiesEditor interface {
	EditProperties(id ident.UUID) bool
}

// GridSettings holds the interactive grid the tools snap to.
type GridSettings struct {
	Interval units.PositiveLength
	Enabled  bool
}

// Snap rounds p to the grid if enabled, otherwise returns p unchanged.
func (g GridSettings) Snap(p units.Point) units.Point {
	if !g.Enabled {
		return p
	}
	return p.MappedToGrid(g.Interval)
}

// Context aggregates every subsystem a tool state needs: the footprint
// being edited, the undo stack it pushes commands onto, the current
// selection, and the ambient drawing settings (layer, grid, line width)
// new primitives are created with.
type Context struct {
	// Package is the owning library package, carrying the shared
	// PackagePad list that ReNumberPads and AddPads map footprint pads
	// onto; Footprint is one of Package.Footprints.
	Package   *library.Package
	Footprint *library.Footprint
	// GraphicsItem is the opaque scene-graph handle for Footprint, owned
	// by the excluded UI layer; the FSM never dereferences it, only
	// carries it so ProcessChangeCurrentFootprint can hand it back.
	GraphicsItem any
	Undo         *undo.Stack
	Selection    SelectionInterface

	Layers layer.Provider
	Status StatusSink
	Toolbar ToolbarSink
	Properties PropertiesEditor

	Grid GridSettings
	// Unit is the length unit status text and toolbar fields display in;
	// it never affects the underlying nanometre-exact geometry.
	Unit units.LengthUnit

	// CurrentLayer is the layer newly drawn primitives are placed on.
	CurrentLayer units.GraphicsLayerName
	// CurrentLineWidth is the stroke width newly drawn primitives use.
	CurrentLineWidth units.UnsignedLength
	// ReadOnly disables every mutating tool, used while a package reload
	// (reloadcmd.CmdPackageReload) is in flight.
	ReadOnly bool
}

// New constructs a Context bound to the given footprint and undo stack.
func New(footprint *library.Footprint, stack *undo.Stack) *Context {
	return &Context{
		Footprint: footprint,
		Undo:      stack,
		Grid:      GridSettings{Interval: units.MustPositiveLength(units.NewLength(1270000)), Enabled: true},
	}
}

// Validate checks that the context has the components every tool needs.
func (c *Context) Validate() error {
	if c.Footprint == nil {
		return ErrMissingFootprint
	}
	if c.Undo == nil {
		return ErrMissingUndoStack
	}
	return nil
}

// ValidateForEdit additionally checks that editing is currently allowed.
func (c *Context) ValidateForEdit() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ReadOnly {
		return ErrReadOnly
	}
	return nil
}

// HasSelection reports whether any primitive is currently selected.
func (c *Context) HasSelection() bool {
	return c.Selection != nil && c.Selection.Count() > 0
}

// ClearSelection empties the selection, if one is set.
func (c *Context) ClearSelection() {
	if c.Selection != nil {
		c.Selection.Clear()
	}
}

// SetStatus forwards to Status if one is configured; tools call this
// unconditionally rather than nil-checking Status themselves.
func (c *Context) SetStatus(text string) {
	if c.Status != nil {
		c.Status.SetStatus(text)
	}
}

// SetToolbarValue forwards to Toolbar if one is configured.
func (c *Context) SetToolbarValue(key, value string) {
	if c.Toolbar != nil {
		c.Toolbar.SetToolbarValue(key, value)
	}
}
