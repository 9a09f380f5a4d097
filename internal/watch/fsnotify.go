package watch

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FSNotifyWatcher implements Watcher using fsnotify.
type FSNotifyWatcher struct {
	mu sync.RWMutex

	watcher *fsnotify.Watcher
	config  Config
	paths   map[string]bool

	events chan Event
	errors chan error

	startTime   time.Time
	totalEvents int64
	totalErrors int64
	lastError   error

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// NewFSNotifyWatcher creates an fsnotify-backed Watcher and starts its
// background event-processing goroutine.
func NewFSNotifyWatcher(opts ...Option) (*FSNotifyWatcher, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	bufSize := config.BufferSize
	if bufSize <= 0 {
		bufSize = 64
	}

	w := &FSNotifyWatcher{
		watcher:   fsw,
		config:    config,
		paths:     make(map[string]bool),
		events:    make(chan Event, bufSize),
		errors:    make(chan error, bufSize),
		startTime: time.Now(),
		closeCh:   make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

func (w *FSNotifyWatcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return ErrPathNotExist
		}
		return err
	}
	if w.paths[absPath] {
		return ErrAlreadyWatching
	}
	if err := w.watcher.Add(absPath); err != nil {
		return err
	}
	w.paths[absPath] = true
	return nil
}

// WatchRecursive watches path and, if it's a directory, every
// subdirectory beneath it (a library package directory's models/ and
// resources/ subtrees).
func (w *FSNotifyWatcher) WatchRecursive(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrPathNotExist
		}
		return err
	}
	if !info.IsDir() {
		return w.Watch(absPath)
	}
	return filepath.WalkDir(absPath, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if watchErr := w.Watch(p); watchErr != nil && watchErr != ErrAlreadyWatching {
			w.recordError(watchErr)
		}
		return nil
	})
}

func (w *FSNotifyWatcher) Unwatch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if !w.paths[absPath] {
		return ErrNotWatching
	}
	if err := w.watcher.Remove(absPath); err != nil {
		return err
	}
	delete(w.paths, absPath)
	return nil
}

func (w *FSNotifyWatcher) Events() <-chan Event { return w.events }
func (w *FSNotifyWatcher) Errors() <-chan error { return w.errors }

func (w *FSNotifyWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.closedWg.Wait()
	close(w.events)
	close(w.errors)
	return w.watcher.Close()
}

func (w *FSNotifyWatcher) Stats() Stats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return Stats{
		WatchedPaths:  len(w.paths),
		PendingEvents: len(w.events),
		TotalEvents:   atomic.LoadInt64(&w.totalEvents),
		Errors:        atomic.LoadInt64(&w.totalErrors),
		LastError:     w.lastError,
		StartTime:     w.startTime,
	}
}

func (w *FSNotifyWatcher) IsWatching(path string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return w.paths[absPath]
}

func (w *FSNotifyWatcher) processLoop() {
	defer w.closedWg.Done()
	for {
		select {
		case <-w.closeCh:
			return
		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(fsEvent)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.recordError(err)
			w.sendError(err)
		}
	}
}

func (w *FSNotifyWatcher) handleFSEvent(fsEvent fsnotify.Event) {
	op := convertOp(fsEvent.Op)
	if op == 0 {
		return
	}
	if w.config.IgnoreHidden && filepath.Base(fsEvent.Name)[0] == '.' {
		return
	}
	w.sendEvent(Event{Path: fsEvent.Name, Op: op, Timestamp: time.Now()})

	if op == OpCreate {
		if info, err := os.Stat(fsEvent.Name); err == nil && info.IsDir() {
			_ = w.Watch(fsEvent.Name)
		}
	}
}

func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	if fsOp.Has(fsnotify.Chmod) {
		op |= OpChmod
	}
	return op
}

func (w *FSNotifyWatcher) sendEvent(event Event) {
	select {
	case w.events <- event:
		atomic.AddInt64(&w.totalEvents, 1)
	default:
		w.recordError(errTooBusy)
	}
}

func (w *FSNotifyWatcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
	}
}

func (w *FSNotifyWatcher) recordError(err error) {
	atomic.AddInt64(&w.totalErrors, 1)
	w.mu.Lock()
	w.lastError = err
	w.mu.Unlock()
}

var errTooBusy = errBufferFull{}

type errBufferFull struct{}

func (errBufferFull) Error() string { return "watch: event channel full, dropping event" }

var _ Watcher = (*FSNotifyWatcher)(nil)
