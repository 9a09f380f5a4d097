package reloadcmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirCapturer_CaptureRestoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "package.lp"), []byte("v1"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var c DirCapturer
	snapshot, err := c.Capture(dir)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if string(snapshot["package.lp"]) != "v1" {
		t.Fatalf("snapshot[package.lp] = %q, want %q", snapshot["package.lp"], "v1")
	}

	if err := os.WriteFile(filepath.Join(dir, "package.lp"), []byte("v2"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "extra.txt"), []byte("new file"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := c.Restore(dir, snapshot); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "package.lp"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "v1" {
		t.Fatalf("package.lp after restore = %q, want %q", got, "v1")
	}
	if _, err := os.Stat(filepath.Join(dir, "extra.txt")); !os.IsNotExist(err) {
		t.Fatalf("extra.txt should have been pruned by Restore, stat err = %v", err)
	}
}
