package editorfsm

import (
	"github.com/librepcb/pkgeditor/internal/editorctx"
	"github.com/librepcb/pkgeditor/internal/library"
	"github.com/librepcb/pkgeditor/internal/units"
)

// Machine drives exactly one active State, translating UI events into
// that state's handlers and enforcing the transition rules: only Select
// may be entered with no current footprint; a right-click the active
// state doesn't consume returns to the remembered non-Select tool (or,
// from a non-Select tool, to Select); ProcessAbortCommand that the
// active state declines falls back to Select.
type Machine struct {
	ctx    *editorctx.Context
	Memory *Memory

	current  State
	previous State // remembered non-Select tool, for right-click-to-return

	// abortStreak counts consecutive ProcessAbortCommand calls with no
	// intervening state-mutating call, so orchestrator.Tab's
	// drain-before-close guarantee (three consecutive aborts) can watch
	// it via AbortStreak.
	abortStreak int

	// clip is the cut/copy/paste clipboard, shared across every Select
	// instance this machine ever constructs.
	clip clipboard
}

// New constructs a Machine starting in Idle. Call Start to enter Select
// (or Idle, if ctx has no footprint yet).
func New(ctx *editorctx.Context, mem *Memory) *Machine {
	if mem == nil {
		mem = DefaultMemory()
	}
	return &Machine{ctx: ctx, Memory: mem, current: &Idle{}}
}

// Context returns the bound editor context.
func (m *Machine) Context() *editorctx.Context { return m.ctx }

// Current returns the currently active state.
func (m *Machine) Current() State { return m.current }

// StateName returns the active state's name, for the read-only view
// orchestrator.Tab exposes to the UI.
func (m *Machine) StateName() string { return m.current.Name() }

// AbortStreak returns the number of consecutive ProcessAbortCommand
// calls since the last non-abort transition or command.
func (m *Machine) AbortStreak() int { return m.abortStreak }

// AvailableFeatures returns the active state's feature set.
func (m *Machine) AvailableFeatures() FeatureSet { return m.current.AvailableFeatures() }

// Start enters Select if a footprint is already bound, else Idle.
func (m *Machine) Start() {
	if m.ctx.Footprint != nil {
		m.transitionTo(&Select{m: m})
	} else {
		m.transitionTo(&Idle{})
	}
}

// transitionTo runs exit() on the current state, entry() on next, and
// installs next as current. If exit() vetoes (returns false), the
// current state is left unchanged; if entry() vetoes, the old state has
// already exited and the Machine falls back to Idle.
func (m *Machine) transitionTo(next State) bool {
	if !m.current.Exit() {
		return false
	}
	if !next.Entry() {
		// The old state already exited; there is no well-defined state
		// to fall back to other than Idle, matching the "invariant
		// breach from below is fatal" policy for anything stranger.
		m.current = &Idle{}
		return false
	}
	switch m.current.(type) {
	case *Select, *Idle:
	default:
		m.previous = m.current
	}
	m.current = next
	m.abortStreak = 0
	return true
}

// ProcessChangeCurrentFootprint switches the footprint under edit,
// falling back to Select if newFpt is nil, else restoring whichever
// state was active before.
func (m *Machine) ProcessChangeCurrentFootprint(newFpt *library.Footprint, newGraphicsItem any) bool {
	restore := m.current
	if !m.current.Exit() {
		return false
	}
	m.ctx.Footprint = newFpt
	m.ctx.GraphicsItem = newGraphicsItem
	if _, idle := restore.(*Idle); idle || newFpt == nil {
		restore = &Select{m: m}
	}
	if !restore.Entry() {
		restore = &Select{m: m}
		restore.Entry()
	}
	m.current = restore
	return true
}

// startTool is the shared body of every ProcessStart<Tool> method: only
// Select may run with no footprint bound.
func (m *Machine) startTool(next State) bool {
	if _, ok := next.(*Select); !ok && m.ctx.Footprint == nil {
		return false
	}
	return m.transitionTo(next)
}

func (m *Machine) StartSelect() bool        { return m.startTool(&Select{m: m}) }
func (m *Machine) StartDrawLine() bool      { return m.startTool(newTwoPointState(m, kindLine)) }
func (m *Machine) StartDrawRect() bool      { return m.startTool(newTwoPointState(m, kindRect)) }
func (m *Machine) StartDrawCircle() bool    { return m.startTool(newTwoPointState(m, kindCircle)) }
func (m *Machine) StartDrawArc() bool       { return m.startTool(newTwoPointState(m, kindArc)) }
func (m *Machine) StartDrawPolygon() bool   { return m.startTool(newPathState(m, pathKindPolygon)) }
func (m *Machine) StartDrawZone() bool      { return m.startTool(newPathState(m, pathKindZone)) }
func (m *Machine) StartDrawText() bool      { return m.startTool(newTextState(m, textKindFree, "")) }
func (m *Machine) StartAddNames() bool      { return m.startTool(newTextState(m, textKindNames, "{{NAME}}")) }
func (m *Machine) StartAddValues() bool     { return m.startTool(newTextState(m, textKindValues, "{{VALUE}}")) }
func (m *Machine) StartAddHoles() bool      { return m.startTool(&AddHoles{m: m}) }
func (m *Machine) StartMeasure() bool       { return m.startTool(&Measure{m: m}) }
func (m *Machine) StartReNumberPads() bool  { return m.startTool(&ReNumberPads{m: m}) }

// StartAddPads enters the pad-placement tool for the given mount style
// and function.
func (m *Machine) StartAddPads(tht bool, fn AddPadsFunction) bool {
	return m.startTool(newAddPads(m, tht, fn))
}

// --- Event dispatch: every method below forwards to the active state,
// resetting abortStreak on anything other than ProcessAbortCommand. ---

func (m *Machine) ProcessKeyPressed(e KeyEvent) bool {
	m.noteActivity()
	return m.current.ProcessKeyPressed(e)
}

func (m *Machine) ProcessKeyReleased(e KeyEvent) bool {
	m.noteActivity()
	return m.current.ProcessKeyReleased(e)
}

func (m *Machine) ProcessGraphicsSceneMouseMoved(e PointerEvent) bool {
	return m.current.ProcessGraphicsSceneMouseMoved(e)
}

func (m *Machine) ProcessGraphicsSceneLeftMouseButtonPressed(e PointerEvent) bool {
	m.noteActivity()
	return m.current.ProcessGraphicsSceneLeftMouseButtonPressed(e)
}

func (m *Machine) ProcessGraphicsSceneLeftMouseButtonReleased(e PointerEvent) bool {
	return m.current.ProcessGraphicsSceneLeftMouseButtonReleased(e)
}

func (m *Machine) ProcessGraphicsSceneLeftMouseButtonDoubleClicked(e PointerEvent) bool {
	m.noteActivity()
	return m.current.ProcessGraphicsSceneLeftMouseButtonDoubleClicked(e)
}

// ProcessGraphicsSceneRightMouseButtonReleased implements the
// right-click rule: if the active state doesn't consume it, a tool
// aborts its pending command and the Machine switches to Select; in
// Select, the Machine switches to the remembered previous non-Select
// tool, or stays in Select if there is none.
func (m *Machine) ProcessGraphicsSceneRightMouseButtonReleased(e PointerEvent) bool {
	if m.current.ProcessGraphicsSceneRightMouseButtonReleased(e) {
		m.noteActivity()
		return true
	}
	if _, ok := m.current.(*Select); ok {
		if m.previous != nil {
			m.transitionTo(m.previous)
		}
		return true
	}
	m.current.ProcessAbortCommand()
	m.transitionTo(&Select{m: m})
	return true
}

func (m *Machine) ProcessSelectAll() bool { m.noteActivity(); return m.current.ProcessSelectAll() }
func (m *Machine) ProcessCut() bool       { m.noteActivity(); return m.current.ProcessCut() }
func (m *Machine) ProcessCopy() bool      { m.noteActivity(); return m.current.ProcessCopy() }
func (m *Machine) ProcessPaste() bool     { m.noteActivity(); return m.current.ProcessPaste() }

func (m *Machine) ProcessRotate(angle units.Angle) bool {
	m.noteActivity()
	return m.current.ProcessRotate(angle)
}

func (m *Machine) ProcessMirror(o units.Orientation) bool {
	m.noteActivity()
	return m.current.ProcessMirror(o)
}

func (m *Machine) ProcessFlip(o units.Orientation) bool {
	m.noteActivity()
	return m.current.ProcessFlip(o)
}

func (m *Machine) ProcessMoveAlign() bool    { m.noteActivity(); return m.current.ProcessMoveAlign() }
func (m *Machine) ProcessSnapToGrid() bool   { m.noteActivity(); return m.current.ProcessSnapToGrid() }
func (m *Machine) ProcessRemove() bool       { m.noteActivity(); return m.current.ProcessRemove() }

func (m *Machine) ProcessEditProperties() bool {
	m.noteActivity()
	return m.current.ProcessEditProperties()
}

func (m *Machine) ProcessMove(delta units.Point) bool {
	m.noteActivity()
	return m.current.ProcessMove(delta)
}

func (m *Machine) ProcessAcceptCommand() bool {
	m.noteActivity()
	return m.current.ProcessAcceptCommand()
}

// ProcessAbortCommand falls back to Select if the active state declines
// to handle it. Either way abortStreak advances, letting
// orchestrator.Tab's "drain with three consecutive aborts" guarantee
// observe convergence.
func (m *Machine) ProcessAbortCommand() bool {
	m.abortStreak++
	if m.current.ProcessAbortCommand() {
		return true
	}
	if _, ok := m.current.(*Select); !ok {
		streak := m.abortStreak
		m.transitionTo(&Select{m: m})
		m.abortStreak = streak
	}
	return true
}

func (m *Machine) noteActivity() { m.abortStreak = 0 }
