package config

import (
	"io/fs"
	"testing"
)

type memFS struct {
	files map[string][]byte
}

func newMemFS() *memFS { return &memFS{files: map[string][]byte{}} }

func (m *memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *memFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	m.files[path] = append([]byte(nil), data...)
	return nil
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	fsys := newMemFS()
	settings, err := Load(fsys, "settings.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if settings.GridIntervalNm != want.GridIntervalNm || settings.LengthUnit != want.LengthUnit {
		t.Errorf("settings = %+v, want %+v", settings, want)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	fsys := newMemFS()
	settings := Default()
	settings.GridIntervalNm = 500_000
	settings.LengthUnit = "in"
	settings.ToolDefaults["circle"] = ToolDefaults{Layer: "top_copper", LineWidth: 200000, Filled: true}

	if err := Save(fsys, "settings.toml", settings); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(fsys, "settings.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.GridIntervalNm != 500_000 || got.LengthUnit != "in" {
		t.Errorf("round-tripped settings = %+v", got)
	}
	td, ok := got.ToolDefaults["circle"]
	if !ok || td.Layer != "top_copper" || td.LineWidth != 200000 || !td.Filled {
		t.Errorf("round-tripped tool defaults = %+v, ok=%v", td, ok)
	}
}

func TestLoadInvalidTOMLErrors(t *testing.T) {
	fsys := newMemFS()
	fsys.files["broken.toml"] = []byte("not = [valid toml")
	if _, err := Load(fsys, "broken.toml"); err == nil {
		t.Fatal("expected error parsing invalid TOML")
	}
}

func TestLoadNilToolDefaultsIsInitialized(t *testing.T) {
	fsys := newMemFS()
	fsys.files["bare.toml"] = []byte(`grid_interval_nm = 100`)
	got, err := Load(fsys, "bare.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.ToolDefaults == nil {
		t.Fatal("ToolDefaults should never be nil after Load")
	}
}
