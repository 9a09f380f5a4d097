package reloadcmd

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSystemSnapshot is a point-in-time copy of every regular file under
// a package directory, keyed by path relative to the directory root.
type FileSystemSnapshot map[string][]byte

// Capturer captures and restores a package directory's on-disk contents,
// abstracting the real filesystem so tests can substitute an in-memory
// one instead of touching disk.
type Capturer interface {
	Capture(dir string) (FileSystemSnapshot, error)
	Restore(dir string, snapshot FileSystemSnapshot) error
}

// DirCapturer implements Capturer against the real filesystem.
type DirCapturer struct{}

// Capture walks dir and reads every regular file into the snapshot.
func (DirCapturer) Capture(dir string) (FileSystemSnapshot, error) {
	snapshot := FileSystemSnapshot{}
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		snapshot[rel] = data
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reloadcmd: walking %s: %w", dir, err)
	}
	return snapshot, nil
}

// Restore overwrites every file in snapshot back under dir, then removes
// any regular file currently under dir that the snapshot doesn't
// mention, restoring the directory to exactly the snapshotted state.
func (DirCapturer) Restore(dir string, snapshot FileSystemSnapshot) error {
	for rel, data := range snapshot {
		full := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return fmt.Errorf("reloadcmd: creating %s: %w", filepath.Dir(full), err)
		}
		if err := os.WriteFile(full, data, 0o644); err != nil {
			return fmt.Errorf("reloadcmd: writing %s: %w", full, err)
		}
	}
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if _, ok := snapshot[rel]; !ok {
			return os.Remove(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("reloadcmd: pruning %s: %w", dir, err)
	}
	return nil
}
