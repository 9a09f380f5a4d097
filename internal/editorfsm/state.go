package editorfsm

import "github.com/librepcb/pkgeditor/internal/units"

// State is the contract every editor tool implements. Every handler
// returns whether it consumed the event/command; Machine uses that to
// decide whether to fall back to default behaviour (e.g. right-click
// returning to Select).
//
// Concrete states embed Base and override only the handlers they care
// about; Base no-ops the rest, standing in for an abstract base class
// with virtual methods in an interface-satisfying way idiomatic to Go.
type State interface {
	Name() string

	// Entry/Exit return false to veto the transition.
	Entry() bool
	Exit() bool

	ProcessKeyPressed(KeyEvent) bool
	ProcessKeyReleased(KeyEvent) bool
	ProcessGraphicsSceneMouseMoved(PointerEvent) bool
	ProcessGraphicsSceneLeftMouseButtonPressed(PointerEvent) bool
	ProcessGraphicsSceneLeftMouseButtonReleased(PointerEvent) bool
	ProcessGraphicsSceneLeftMouseButtonDoubleClicked(PointerEvent) bool
	ProcessGraphicsSceneRightMouseButtonReleased(PointerEvent) bool

	ProcessSelectAll() bool
	ProcessCut() bool
	ProcessCopy() bool
	ProcessPaste() bool
	ProcessRotate(angle units.Angle) bool
	ProcessMirror(orientation units.Orientation) bool
	ProcessFlip(orientation units.Orientation) bool
	ProcessMoveAlign() bool
	ProcessSnapToGrid() bool
	ProcessRemove() bool
	ProcessEditProperties() bool
	ProcessMove(delta units.Point) bool
	ProcessAcceptCommand() bool
	ProcessAbortCommand() bool

	AvailableFeatures() FeatureSet
}

// Base implements every State method as a no-op returning false (or, for
// Entry/Exit, true — "no objection to the transition"). Embed it in a
// concrete state and override only what that state actually handles.
type Base struct{}

func (Base) Entry() bool { return true }
func (Base) Exit() bool  { return true }

func (Base) ProcessKeyPressed(KeyEvent) bool                                          { return false }
func (Base) ProcessKeyReleased(KeyEvent) bool                                         { return false }
func (Base) ProcessGraphicsSceneMouseMoved(PointerEvent) bool                         { return false }
func (Base) ProcessGraphicsSceneLeftMouseButtonPressed(PointerEvent) bool             { return false }
func (Base) ProcessGraphicsSceneLeftMouseButtonReleased(PointerEvent) bool            { return false }
func (Base) ProcessGraphicsSceneLeftMouseButtonDoubleClicked(PointerEvent) bool       { return false }
func (Base) ProcessGraphicsSceneRightMouseButtonReleased(PointerEvent) bool           { return false }

func (Base) ProcessSelectAll() bool        { return false }
func (Base) ProcessCut() bool              { return false }
func (Base) ProcessCopy() bool             { return false }
func (Base) ProcessPaste() bool            { return false }
func (Base) ProcessRotate(units.Angle) bool       { return false }
func (Base) ProcessMirror(units.Orientation) bool { return false }
func (Base) ProcessFlip(units.Orientation) bool   { return false }
func (Base) ProcessMoveAlign() bool        { return false }
func (Base) ProcessSnapToGrid() bool       { return false }
func (Base) ProcessRemove() bool           { return false }
func (Base) ProcessEditProperties() bool   { return false }
func (Base) ProcessMove(units.Point) bool  { return false }
func (Base) ProcessAcceptCommand() bool    { return false }
func (Base) ProcessAbortCommand() bool     { return false }

func (Base) AvailableFeatures() FeatureSet { return nil }
