package reloadcmd

import (
	"testing"

	"github.com/librepcb/pkgeditor/internal/geo"
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/library"
)

// memCapturer is an in-memory Capturer double, so tests never touch a
// real filesystem.
type memCapturer struct {
	files map[string]FileSystemSnapshot
}

func newMemCapturer(dir string, snapshot FileSystemSnapshot) *memCapturer {
	return &memCapturer{files: map[string]FileSystemSnapshot{dir: snapshot}}
}

func (m *memCapturer) Capture(dir string) (FileSystemSnapshot, error) {
	out := FileSystemSnapshot{}
	for k, v := range m.files[dir] {
		out[k] = v
	}
	return out, nil
}

func (m *memCapturer) Restore(dir string, snapshot FileSystemSnapshot) error {
	out := FileSystemSnapshot{}
	for k, v := range snapshot {
		out[k] = v
	}
	m.files[dir] = out
	return nil
}

func newTestPackage(t *testing.T, name string) *library.Package {
	t.Helper()
	id := ident.MustCircuitIdentifier(name)
	v := ident.MustVersion("0.1")
	pkg := library.NewPackage(id, v)
	_ = pkg.PackagePads.Append(geo.NewPackagePad(ident.MustCircuitIdentifier("1")))
	fp := library.NewFootprint(ident.MustCircuitIdentifier("default"))
	pkg.Footprints = append(pkg.Footprints, fp)
	return pkg
}

func TestCmdPackageReload_ExecuteCopiesReloadedState(t *testing.T) {
	pkg := newTestPackage(t, "R1")
	dir := "/pkg/r1"
	capturer := newMemCapturer(dir, FileSystemSnapshot{"package.lp": []byte("old")})

	reloaded := newTestPackage(t, "R1")
	_ = reloaded.PackagePads.Append(geo.NewPackagePad(ident.MustCircuitIdentifier("2")))
	loader := LoaderFunc(func(d string) (*library.Package, error) {
		if d != dir {
			t.Fatalf("loader called with %q, want %q", d, dir)
		}
		return reloaded, nil
	})

	cmd, err := NewCmdPackageReload(pkg, dir, loader, capturer, nil)
	if err != nil {
		t.Fatalf("NewCmdPackageReload: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if pkg.PackagePads.Len() != 2 {
		t.Fatalf("after reload PackagePads.Len() = %d, want 2", pkg.PackagePads.Len())
	}
}

func TestCmdPackageReload_UndoRestoresFilesAndState(t *testing.T) {
	pkg := newTestPackage(t, "R1")
	dir := "/pkg/r1"
	capturer := newMemCapturer(dir, FileSystemSnapshot{"package.lp": []byte("old")})

	reloaded := newTestPackage(t, "R1")
	_ = reloaded.PackagePads.Append(geo.NewPackagePad(ident.MustCircuitIdentifier("2")))
	loader := LoaderFunc(func(d string) (*library.Package, error) {
		return reloaded, nil
	})

	discarded := false
	cmd, err := NewCmdPackageReload(pkg, dir, loader, capturer, func() { discarded = true })
	if err != nil {
		t.Fatalf("NewCmdPackageReload: %v", err)
	}
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !discarded {
		t.Error("Execute did not call discardPendingFileOps")
	}
	// Simulate the reload having also rewritten the file on disk.
	capturer.files[dir] = FileSystemSnapshot{"package.lp": []byte("new")}

	if err := cmd.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if pkg.PackagePads.Len() != 1 {
		t.Fatalf("after undo PackagePads.Len() = %d, want 1", pkg.PackagePads.Len())
	}
	if got := string(capturer.files[dir]["package.lp"]); got != "old" {
		t.Fatalf("after undo file contents = %q, want %q", got, "old")
	}
}

func TestCmdPackageReload_RedoReappliesWithoutReloading(t *testing.T) {
	pkg := newTestPackage(t, "R1")
	dir := "/pkg/r1"
	capturer := newMemCapturer(dir, FileSystemSnapshot{"package.lp": []byte("old")})

	reloaded := newTestPackage(t, "R1")
	_ = reloaded.PackagePads.Append(geo.NewPackagePad(ident.MustCircuitIdentifier("2")))
	calls := 0
	loader := LoaderFunc(func(d string) (*library.Package, error) {
		calls++
		return reloaded, nil
	})

	cmd, err := NewCmdPackageReload(pkg, dir, loader, capturer, nil)
	if err != nil {
		t.Fatalf("NewCmdPackageReload: %v", err)
	}
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if err := cmd.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if err := cmd.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if calls != 1 {
		t.Errorf("loader called %d times, want 1 (Redo must not re-read disk)", calls)
	}
	if pkg.PackagePads.Len() != 2 {
		t.Fatalf("after redo PackagePads.Len() = %d, want 2", pkg.PackagePads.Len())
	}
}
