// Package watch detects on-disk changes to a package library directory
// and reports them as values on a channel, crossing from the watcher's
// own goroutine onto the single editing goroutine without ever mutating
// a primitive itself.
package watch

import (
	"errors"
	"time"
)

// Common errors returned by Watcher operations.
var (
	ErrWatcherClosed   = errors.New("watch: watcher is closed")
	ErrAlreadyWatching = errors.New("watch: path is already being watched")
	ErrNotWatching     = errors.New("watch: path is not being watched")
	ErrPathNotExist    = errors.New("watch: path does not exist")
)

// Op is the kind of file system operation an Event reports.
type Op uint32

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
	OpChmod
)

func (op Op) String() string {
	switch op {
	case OpCreate:
		return "CREATE"
	case OpWrite:
		return "WRITE"
	case OpRemove:
		return "REMOVE"
	case OpRename:
		return "RENAME"
	case OpChmod:
		return "CHMOD"
	default:
		return "UNKNOWN"
	}
}

// Has reports whether op includes o.
func (op Op) Has(o Op) bool { return op&o == o }

// Event reports a single file-system change under a watched directory.
type Event struct {
	Path      string
	Op        Op
	Timestamp time.Time
}

// Stats reports a Watcher's running totals (watched paths, pending and
// total events).
type Stats struct {
	WatchedPaths  int
	PendingEvents int
	TotalEvents   int64
	Errors        int64
	LastError     error
	StartTime     time.Time
}

// Watcher monitors one or more package directories for external changes
// (an editor outside this process touching the files a Tab has open),
// feeding orchestrator.Tab's "reload available" indicator.
type Watcher interface {
	Watch(path string) error
	WatchRecursive(path string) error
	Unwatch(path string) error
	Events() <-chan Event
	Errors() <-chan error
	Close() error
	Stats() Stats
	IsWatching(path string) bool
}

// Config holds Watcher construction options.
type Config struct {
	// BufferSize is the size of the event and error channels.
	BufferSize int
	// IgnoreHidden drops events for dotfiles (editor swap/lock files).
	IgnoreHidden bool
}

// DefaultConfig returns sensible defaults: a 64-event buffer, hidden
// files ignored.
func DefaultConfig() Config {
	return Config{BufferSize: 64, IgnoreHidden: true}
}

// Option configures a Watcher at construction.
type Option func(*Config)

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) Option {
	return func(c *Config) { c.BufferSize = size }
}

// WithIgnoreHidden toggles hidden-file filtering.
func WithIgnoreHidden(ignore bool) Option {
	return func(c *Config) { c.IgnoreHidden = ignore }
}
