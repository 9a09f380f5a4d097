package orchestrator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/librepcb/pkgeditor/internal/geo"
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/library"
	"github.com/librepcb/pkgeditor/internal/reloadcmd"
	"github.com/librepcb/pkgeditor/internal/units"
	"github.com/librepcb/pkgeditor/internal/watch"
)

// fakeWatcher is a watch.Watcher double driven entirely by test code, so
// Run's channel-draining loop can be exercised without a real
// filesystem or fsnotify.
type fakeWatcher struct {
	events chan watch.Event
	errors chan error
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{
		events: make(chan watch.Event, 4),
		errors: make(chan error, 4),
	}
}

func (f *fakeWatcher) Watch(string) error           { return nil }
func (f *fakeWatcher) WatchRecursive(string) error  { return nil }
func (f *fakeWatcher) Unwatch(string) error         { return nil }
func (f *fakeWatcher) Events() <-chan watch.Event   { return f.events }
func (f *fakeWatcher) Errors() <-chan error         { return f.errors }
func (f *fakeWatcher) Close() error                 { close(f.events); close(f.errors); return nil }
func (f *fakeWatcher) Stats() watch.Stats           { return watch.Stats{} }
func (f *fakeWatcher) IsWatching(string) bool       { return false }

var _ watch.Watcher = (*fakeWatcher)(nil)

func newTestPackageAndFootprint(name string) (*library.Package, *library.Footprint) {
	id := ident.MustCircuitIdentifier(name)
	v := ident.MustVersion("0.1")
	pkg := library.NewPackage(id, v)
	pad := geo.NewPackagePad(ident.MustCircuitIdentifier("1"))
	padUUID := pad.UUID()
	_ = pkg.PackagePads.Append(pad)

	fp := library.NewFootprint(ident.MustCircuitIdentifier("default"))
	fpPad := geo.NewFootprintPad(
		padUUID, units.Point{}, 0, geo.PadShapeRoundedRect,
		units.MustPositiveLength(units.NewLength(1000000)),
		units.MustPositiveLength(units.NewLength(1000000)),
		units.UnsignedLimitedRatio{},
		geo.PadFunctionStandardPad, geo.PadSideTop,
		geo.StopMaskConfig{Mode: geo.StopMaskAuto}, geo.SolderPasteConfig{Mode: geo.StopMaskAuto},
		units.UnsignedLength{},
	)
	_ = fp.Pads.Append(fpPad)
	pkg.Footprints = append(pkg.Footprints, fp)
	return pkg, fp
}

func TestNewTab_StartsClean(t *testing.T) {
	pkg, fp := newTestPackageAndFootprint("R1")
	tab := NewTab(pkg, fp, nil, nil)
	if tab.InterfaceBroken() {
		t.Error("a freshly opened tab should not report a broken interface")
	}
}

func TestTab_ReloadBreakingInterfaceSetsFlag(t *testing.T) {
	pkg, fp := newTestPackageAndFootprint("R1")
	tab := NewTab(pkg, fp, nil, nil)

	var broken []bool
	tab.InterfaceBrokenChanged.Subscribe(func(b bool) { broken = append(broken, b) })

	// The reloaded package drops the original pad and adds a different
	// one, so the footprint's existing pad mapping no longer resolves.
	reloaded, _ := newTestPackageAndFootprint("R1")
	loader := reloadcmd.LoaderFunc(func(dir string) (*library.Package, error) { return reloaded, nil })
	capturer := &nopCapturer{}

	if err := tab.Reload("/pkg/r1", loader, capturer, nil); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if !tab.InterfaceBroken() {
		t.Fatal("reload that replaces the package pad should mark the interface broken")
	}
	if len(broken) == 0 || !broken[len(broken)-1] {
		t.Fatalf("InterfaceBrokenChanged did not fire true, got %v", broken)
	}
}

type nopCapturer struct{}

func (nopCapturer) Capture(dir string) (reloadcmd.FileSystemSnapshot, error) {
	return reloadcmd.FileSystemSnapshot{}, nil
}
func (nopCapturer) Restore(dir string, snapshot reloadcmd.FileSystemSnapshot) error { return nil }

func TestTab_CloseAbortsExactlyThreeTimes(t *testing.T) {
	pkg, fp := newTestPackageAndFootprint("R1")
	tab := NewTab(pkg, fp, nil, nil)

	// Close must not panic or hang even with nothing active to abort; it
	// unconditionally calls ProcessAbortCommand three times regardless of
	// what each call returns.
	tab.Close()
}

func TestTab_RunDrainsEvents(t *testing.T) {
	pkg, fp := newTestPackageAndFootprint("R1")
	tab := NewTab(pkg, fp, nil, nil)
	w := newFakeWatcher()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		tab.Run(ctx, w, nil)
		close(done)
	}()

	var available []bool
	var mu sync.Mutex
	tab.ReloadAvailableChanged.Subscribe(func(b bool) {
		mu.Lock()
		available = append(available, b)
		mu.Unlock()
	})

	w.events <- watch.Event{Path: "/pkg/r1/package.lp", Op: watch.OpWrite}

	deadline := time.After(2 * time.Second)
	for {
		mu.Lock()
		got := len(available)
		mu.Unlock()
		if got > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for ReloadAvailableChanged to fire")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	if !tab.ReloadAvailable {
		t.Error("ReloadAvailable should be true after an event")
	}

	cancel()
	<-done
}

func TestTab_RunReportsErrors(t *testing.T) {
	pkg, fp := newTestPackageAndFootprint("R1")
	tab := NewTab(pkg, fp, nil, nil)
	w := newFakeWatcher()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		tab.Run(ctx, w, func(err error) { errCh <- err })
		close(done)
	}()

	sentinel := errors.New("watch failure")
	w.errors <- sentinel

	select {
	case got := <-errCh:
		if !errors.Is(got, sentinel) {
			t.Errorf("onError got %v, want %v", got, sentinel)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for onError callback")
	}

	cancel()
	<-done
}
