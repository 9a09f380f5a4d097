package editcmd

import "github.com/librepcb/pkgeditor/internal/units"

// translatable is the shape every movable internal/geo primitive
// exposes. Not every primitive implements every method (Circle has no
// MirrorLayer-relevant winding, Hole has no layer at all); callers use
// whichever of the helper constructors below matches what they need to
// undo, so the interface only needs to name what that helper actually
// calls.
type translatable interface {
	Translate(dx, dy units.Length) bool
}

// CmdTranslate is a reversible translation of any primitive exposing a
// Translate(dx, dy) bool method (every internal/geo entity does).
type CmdTranslate struct {
	target      translatable
	dx, dy      units.Length
	description string
}

// NewCmdTranslate constructs a translate command. Construction does not
// move target; Execute and Redo apply the translation and Undo reverses
// it.
func NewCmdTranslate(target translatable, dx, dy units.Length, description string) *CmdTranslate {
	return &CmdTranslate{target: target, dx: dx, dy: dy, description: description}
}

func (c *CmdTranslate) Execute() error {
	c.target.Translate(c.dx, c.dy)
	return nil
}

func (c *CmdTranslate) Undo() error {
	c.target.Translate(-c.dx, -c.dy)
	return nil
}

func (c *CmdTranslate) Redo() error { return c.Execute() }

func (c *CmdTranslate) Description() string { return c.description }

type rotatable interface {
	Rotate(angle units.Angle, pivot units.Point) bool
}

// CmdRotate is a reversible rotation of any primitive exposing a
// Rotate(angle, pivot) bool method.
type CmdRotate struct {
	target      rotatable
	angle       units.Angle
	pivot       units.Point
	description string
}

// NewCmdRotate constructs a rotate command around a fixed pivot.
func NewCmdRotate(target rotatable, angle units.Angle, pivot units.Point, description string) *CmdRotate {
	return &CmdRotate{target: target, angle: angle, pivot: pivot, description: description}
}

func (c *CmdRotate) Execute() error {
	c.target.Rotate(c.angle, c.pivot)
	return nil
}

func (c *CmdRotate) Undo() error {
	c.target.Rotate(c.angle.Neg(), c.pivot)
	return nil
}

func (c *CmdRotate) Redo() error { return c.Execute() }

func (c *CmdRotate) Description() string { return c.description }

type mirrorable interface {
	MirrorGeometry(orientation units.Orientation, pivot units.Point) bool
}

// CmdMirrorGeometry is a reversible mirror of any primitive exposing a
// MirrorGeometry(orientation, pivot) bool method. Mirroring twice around
// the same pivot and orientation is its own inverse.
type CmdMirrorGeometry struct {
	target      mirrorable
	orientation units.Orientation
	pivot       units.Point
	description string
}

// NewCmdMirrorGeometry constructs a mirror command.
func NewCmdMirrorGeometry(target mirrorable, orientation units.Orientation, pivot units.Point, description string) *CmdMirrorGeometry {
	return &CmdMirrorGeometry{target: target, orientation: orientation, pivot: pivot, description: description}
}

func (c *CmdMirrorGeometry) apply() error {
	c.target.MirrorGeometry(c.orientation, c.pivot)
	return nil
}

func (c *CmdMirrorGeometry) Execute() error { return c.apply() }
func (c *CmdMirrorGeometry) Undo() error    { return c.apply() }
func (c *CmdMirrorGeometry) Redo() error    { return c.apply() }

func (c *CmdMirrorGeometry) Description() string { return c.description }

// NewCmdSnapToGrid builds a grid-snap command as a plain translate by
// the caller-computed delta between the primitive's pre- and post-snap
// position. Snapping itself is lossy (the pre-snap position generally
// isn't recoverable from the snapped one), so the command captures the
// move as an exact, trivially-invertible delta rather than re-deriving
// it from SnapToGrid on undo.
func NewCmdSnapToGrid(target translatable, dx, dy units.Length, description string) *CmdTranslate {
	return NewCmdTranslate(target, dx, dy, description)
}
