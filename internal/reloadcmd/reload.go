package reloadcmd

import (
	"fmt"

	"github.com/librepcb/pkgeditor/internal/library"
)

// Loader validates and reads a library package's on-disk state into a
// fresh *library.Package, without mutating anything live. The real
// s-expression/directory-tree reader lives outside this core (explicitly
// excluded: the library scanner/database); a caller wires in its own
// implementation here.
type Loader interface {
	Load(dir string) (*library.Package, error)
}

// LoaderFunc adapts a plain function to a Loader.
type LoaderFunc func(dir string) (*library.Package, error)

func (f LoaderFunc) Load(dir string) (*library.Package, error) { return f(dir) }

// CmdPackageReload is the undo command backing "reload from disk": it
// discards whatever is in memory and re-reads the package directory,
// while still letting the user undo back to exactly the state before
// the reload.
//
// Construction captures the pre-reload snapshot (metadata, pads, models,
// footprints, and the raw file-system contents of dir); Execute performs
// the actual reload; Undo restores both the captured object state and
// the captured files (a reload can itself rewrite files on disk, e.g.
// normalizing their on-disk format, so the file snapshot is what Undo
// restores, not just the in-memory fields).
type CmdPackageReload struct {
	pkg *library.Package
	dir string

	loader                Loader
	files                 Capturer
	discardPendingFileOps func()

	before      *library.Package
	beforeFiles FileSystemSnapshot
	after       *library.Package
	afterFiles  FileSystemSnapshot

	executed bool
}

// NewCmdPackageReload captures the pre-reload snapshot and returns a
// command ready to Execute. discardPendingFileOps, if non-nil, is called
// once Execute begins, giving the caller a hook to cancel any
// in-flight save/export that would otherwise race the reload.
func NewCmdPackageReload(pkg *library.Package, dir string, loader Loader, files Capturer, discardPendingFileOps func()) (*CmdPackageReload, error) {
	beforeFiles, err := files.Capture(dir)
	if err != nil {
		return nil, fmt.Errorf("reloadcmd: capturing file snapshot of %s: %w", dir, err)
	}
	return &CmdPackageReload{
		pkg:                   pkg,
		dir:                   dir,
		loader:                loader,
		files:                 files,
		discardPendingFileOps: discardPendingFileOps,
		before:                pkg.Clone(),
		beforeFiles:           beforeFiles,
	}, nil
}

// Execute opens a read-only snapshot of the on-disk package to validate
// it, discards pending in-memory file operations, then copies every
// field from the reloaded instance into the live package.
func (c *CmdPackageReload) Execute() error {
	if c.discardPendingFileOps != nil {
		c.discardPendingFileOps()
	}
	loaded, err := c.loader.Load(c.dir)
	if err != nil {
		return fmt.Errorf("reloadcmd: reloading %s: %w", c.dir, err)
	}
	afterFiles, err := c.files.Capture(c.dir)
	if err != nil {
		return fmt.Errorf("reloadcmd: capturing reloaded file snapshot of %s: %w", c.dir, err)
	}
	c.after = loaded
	c.afterFiles = afterFiles
	c.pkg.Assign(loaded)
	c.executed = true
	return nil
}

// Undo restores both the file-system snapshot and every captured list
// from before the reload.
func (c *CmdPackageReload) Undo() error {
	if err := c.files.Restore(c.dir, c.beforeFiles); err != nil {
		return fmt.Errorf("reloadcmd: restoring file snapshot of %s: %w", c.dir, err)
	}
	c.pkg.Assign(c.before)
	return nil
}

// Redo re-applies the captured post-reload state without loading the
// package again: it writes the captured post-reload file snapshot back to
// disk and assigns the captured package, so a redo after a later on-disk
// change still reproduces exactly what Execute produced the first time.
func (c *CmdPackageReload) Redo() error {
	if !c.executed || c.after == nil {
		return c.Execute()
	}
	if err := c.files.Restore(c.dir, c.afterFiles); err != nil {
		return fmt.Errorf("reloadcmd: restoring reloaded file snapshot of %s: %w", c.dir, err)
	}
	c.pkg.Assign(c.after)
	return nil
}

func (c *CmdPackageReload) Description() string {
	return "Reload package \"" + c.dir + "\" from disk"
}
