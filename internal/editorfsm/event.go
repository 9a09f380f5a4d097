package editorfsm

import "github.com/librepcb/pkgeditor/internal/units"

// Modifiers is a bitset of held modifier keys, carried on every pointer
// and key event so a state can tell e.g. a plain click from a
// shift-click (toggle grid snap) or a ctrl-click (add to selection).
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
)

// Has reports whether m includes mod.
func (m Modifiers) Has(mod Modifiers) bool { return m&mod != 0 }

// MouseButton identifies which pointer button an event concerns.
type MouseButton uint8

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// PointerEvent is the FSM's value-type stand-in for the UI toolkit's
// native mouse event: a scene position already translated into library
// (nanometre) coordinates, plus button and modifier state.
type PointerEvent struct {
	ScenePos  units.Point
	Button    MouseButton
	Modifiers Modifiers
}

// Key identifies a keyboard key relevant to the editor core. Text entry
// itself is not modeled here (that's the excluded text-field widget's
// job); only the keys that states interpret as commands are named.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeyShift
	KeyBackspace
	KeyTab
)

// KeyEvent is the FSM's value-type stand-in for a native key event.
type KeyEvent struct {
	Key       Key
	Modifiers Modifiers
}
