// Package config loads and saves the package editor's persistent
// settings: grid interval, preferred length unit, and the last-used
// parameters for each drawing tool, stored as TOML next to the library
// workspace.
package config
