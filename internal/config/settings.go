package config

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ToolDefaults carries the last-used drawing parameters for one tool,
// so re-entering e.g. the circle tool after restarting the editor
// resumes with the same line width and layer.
type ToolDefaults struct {
	Layer     string `toml:"layer"`
	LineWidth int64  `toml:"line_width_nm"`
	Filled    bool   `toml:"filled"`
	GrabArea  bool   `toml:"grab_area"`
}

// Settings is the editor's persisted configuration.
type Settings struct {
	GridIntervalNm int64                   `toml:"grid_interval_nm"`
	GridEnabled    bool                    `toml:"grid_enabled"`
	LengthUnit     string                  `toml:"length_unit"`
	ToolDefaults   map[string]ToolDefaults `toml:"tool_defaults"`
}

// Default returns the editor's out-of-the-box settings: a 1.27mm (50
// mil) grid, millimeters as the display unit, and no remembered tool
// parameters.
func Default() Settings {
	return Settings{
		GridIntervalNm: 1_270_000,
		GridEnabled:    true,
		LengthUnit:     "mm",
		ToolDefaults:   map[string]ToolDefaults{},
	}
}

// FileSystem abstracts the file operations Load/Save need, so tests can
// substitute an in-memory filesystem instead of touching disk.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error
}

// OSFS implements FileSystem against the real filesystem.
type OSFS struct{}

func (OSFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }
func (OSFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// Load reads settings from path using fsys. A missing file is not an
// error: it returns Default() so a fresh workspace starts usable.
func Load(fsys FileSystem, path string) (Settings, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	settings := Default()
	if err := toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if settings.ToolDefaults == nil {
		settings.ToolDefaults = map[string]ToolDefaults{}
	}
	return settings, nil
}

// Save writes settings to path using fsys, as TOML.
func Save(fsys FileSystem, path string, settings Settings) error {
	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("config: encoding settings: %w", err)
	}
	if err := fsys.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}
