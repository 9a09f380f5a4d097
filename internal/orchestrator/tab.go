package orchestrator

import (
	"context"

	"github.com/librepcb/pkgeditor/internal/editorctx"
	"github.com/librepcb/pkgeditor/internal/editorfsm"
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/library"
	"github.com/librepcb/pkgeditor/internal/logging"
	"github.com/librepcb/pkgeditor/internal/reloadcmd"
	"github.com/librepcb/pkgeditor/internal/signal"
	"github.com/librepcb/pkgeditor/internal/undo"
	"github.com/librepcb/pkgeditor/internal/watch"
	"github.com/librepcb/pkgeditor/internal/xerrors"
)

// Tab owns one package's editing session end to end: the undo stack, the
// editor context every editorfsm.State reads and mutates through, and
// the state machine itself. It is the only thing outside editorfsm that
// is allowed to call Machine.ProcessChangeCurrentFootprint, so the
// "never a foreign footprint without its graphics item" guarantee has
// exactly one call site to audit.
type Tab struct {
	ctx     *editorctx.Context
	Machine *editorfsm.Machine

	baselinePadUUIDs map[ident.UUID]bool
	interfaceBroken  bool

	// ReloadAvailable is derived state set by Run when the watched
	// directory changes; it never feeds back into the editing core on
	// its own — reloading is always a deliberate, user-triggered step.
	ReloadAvailable bool

	InterfaceBrokenChanged signal.Signal[bool]
	ReloadAvailableChanged signal.Signal[bool]
}

// NewTab constructs a Tab bound to pkg, editing footprint (one of
// pkg.Footprints), with graphicsItem as its opaque scene-graph handle.
// mem may be nil to use editorfsm.DefaultMemory.
func NewTab(pkg *library.Package, footprint *library.Footprint, graphicsItem any, mem *editorfsm.Memory) *Tab {
	ctx := editorctx.New(footprint, undo.NewStack())
	ctx.Package = pkg
	ctx.GraphicsItem = graphicsItem

	t := &Tab{ctx: ctx, Machine: editorfsm.New(ctx, mem)}
	t.resetBaseline()
	t.Machine.Start()
	ctx.Undo.Changed.Subscribe(func(undo.StackEvent) { t.recomputeInterfaceBroken() })
	return t
}

// Context returns the editor context, so the UI layer can wire in its
// Selection/StatusSink/ToolbarSink/PropertiesEditor collaborators before
// driving the Tab.
func (t *Tab) Context() *editorctx.Context { return t.ctx }

// Package returns the package this tab is editing.
func (t *Tab) Package() *library.Package { return t.ctx.Package }

// ChangeFootprint switches the tab's active footprint. It is a thin
// wrapper over Machine.ProcessChangeCurrentFootprint kept here, not on
// Machine directly, so every caller goes through the one place that
// could plausibly desynchronize footprint and graphics item.
func (t *Tab) ChangeFootprint(fp *library.Footprint, graphicsItem any) bool {
	return t.Machine.ProcessChangeCurrentFootprint(fp, graphicsItem)
}

// InterfaceBroken reports whether any footprint's pad mapping has
// drifted from the baseline recorded when the tab was opened, meaning dependent components (symbols, devices) built
// against the old interface will no longer match.
func (t *Tab) InterfaceBroken() bool { return t.interfaceBroken }

func (t *Tab) resetBaseline() {
	if t.ctx.Package != nil {
		t.baselinePadUUIDs = t.ctx.Package.PadUUIDSet()
	} else {
		t.baselinePadUUIDs = map[ident.UUID]bool{}
	}
	t.recomputeInterfaceBroken()
}

func (t *Tab) recomputeInterfaceBroken() {
	broken := false
	if t.ctx.Package != nil {
		for _, fp := range t.ctx.Package.Footprints {
			if fp.IsInterfaceBrokenAgainst(t.baselinePadUUIDs) {
				broken = true
				break
			}
		}
	}
	if broken == t.interfaceBroken {
		return
	}
	t.interfaceBroken = broken
	t.InterfaceBrokenChanged.Emit(broken)
}

// Reload executes a reloadcmd.CmdPackageReload against this tab's
// package through the undo stack (so it remains undoable). The stack
// change recomputes the interface-broken flag against the baseline
// recorded when the tab was opened, so a reload that drops or replaces a
// package pad sets the flag.
func (t *Tab) Reload(dir string, loader reloadcmd.Loader, files reloadcmd.Capturer, discardPendingFileOps func()) error {
	if t.ctx.Package == nil {
		return xerrors.NewLogicError("orchestrator: Reload called with no package bound")
	}
	cmd, err := reloadcmd.NewCmdPackageReload(t.ctx.Package, dir, loader, files, discardPendingFileOps)
	if err != nil {
		return err
	}
	t.ctx.ReadOnly = true
	defer func() { t.ctx.ReadOnly = false }()
	if err := t.ctx.Undo.ExecCmd(cmd); err != nil {
		return err
	}
	t.setReloadAvailable(false)
	return nil
}

func (t *Tab) setReloadAvailable(available bool) {
	if available == t.ReloadAvailable {
		return
	}
	t.ReloadAvailable = available
	t.ReloadAvailableChanged.Emit(available)
}

// Close drains any in-progress interactive sub-state before the package
// is destroyed by sending three consecutive abort commands, enough to
// unwind any nested live-edit sub-state the active tool may be holding.
func (t *Tab) Close() {
	for i := 0; i < 3; i++ {
		t.Machine.ProcessAbortCommand()
	}
}

// Run is the single consumer of w's event and error channels, marshaling
// every file-system notification onto the goroutine that owns the undo
// stack: it only ever flips ReloadAvailable, never mutates a primitive
// directly, so the decision to actually reload stays with whatever
// called Run. Run returns when ctx is cancelled or w's channels close.
// A panic from deeper in the editing core is logged and re-raised
// rather than swallowed.
func (t *Tab) Run(ctx context.Context, w watch.Watcher, onError func(error)) {
	logger := logging.FromContext(ctx)
	defer func() {
		if r := recover(); r != nil {
			logger.Error("orchestrator: tab panicked", "panic", r)
			panic(r)
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-w.Events():
			if !ok {
				return
			}
			t.setReloadAvailable(true)
		case err, ok := <-w.Errors():
			if !ok {
				return
			}
			logger.Warn("orchestrator: watch error", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}
}
