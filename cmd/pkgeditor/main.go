// Package main is the entry point for the package editor core: it wires
// a single on-disk package directory to an orchestrator.Tab and runs
// until interrupted. It owns no UI; its only job is to prove the core
// runs end to end (load, watch, reload, shut down cleanly).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/librepcb/pkgeditor/internal/editorfsm"
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/library"
	"github.com/librepcb/pkgeditor/internal/logging"
	"github.com/librepcb/pkgeditor/internal/orchestrator"
	"github.com/librepcb/pkgeditor/internal/reloadcmd"
	"github.com/librepcb/pkgeditor/internal/sexpr"
	"github.com/librepcb/pkgeditor/internal/watch"
)

// packageFile is the single root document inside a package directory,
// per the persisted-state layout: one sub-directory per library
// element, one versioned s-expression file at its root.
const packageFile = "package.lp"

func main() {
	os.Exit(run())
}

type options struct {
	dir      string
	logLevel string
}

func run() int {
	opts := parseFlags()

	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q\n", opts.logLevel)
		return 1
	}
	logger := logging.New(level)

	if opts.dir == "" {
		fmt.Fprintln(os.Stderr, "Error: -dir is required")
		return 1
	}

	pkg, err := loadPackageDir(opts.dir)
	if err != nil {
		logger.Error("pkgeditor: failed to load package", "dir", opts.dir, "error", err)
		return 1
	}
	if len(pkg.Footprints) == 0 {
		logger.Error("pkgeditor: package has no footprints", "dir", opts.dir)
		return 1
	}

	tab := orchestrator.NewTab(pkg, pkg.Footprints[0], nil, editorfsm.DefaultMemory())

	watcher, err := watch.NewFSNotifyWatcher()
	if err != nil {
		logger.Error("pkgeditor: failed to create watcher", "error", err)
		return 1
	}
	defer watcher.Close()
	if err := watcher.Watch(opts.dir); err != nil {
		logger.Error("pkgeditor: failed to watch directory", "dir", opts.dir, "error", err)
		return 1
	}

	ctx, cancel := context.WithCancel(logging.WithContext(context.Background(), logger))
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		logger.Info("pkgeditor: shutting down")
		cancel()
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		tab.Run(ctx, watcher, func(err error) {
			logger.Warn("pkgeditor: watch error", "error", err)
		})
	}()

	tab.ReloadAvailableChanged.Subscribe(func(available bool) {
		if !available {
			return
		}
		loader := reloadcmd.LoaderFunc(func(dir string) (*library.Package, error) {
			return loadPackageDir(dir)
		})
		if err := tab.Reload(opts.dir, loader, reloadcmd.DirCapturer{}, func() {}); err != nil {
			logger.Error("pkgeditor: reload failed", "error", err)
		}
	})

	<-done
	tab.Close()
	return 0
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.dir, "dir", "", "Package directory to open")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pkgeditor - footprint package editing core\n\n")
		fmt.Fprintf(os.Stderr, "Usage: pkgeditor -dir <package-directory>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	return opts
}

// loadPackageDir reads and parses a package directory's root document.
// It is the reloadcmd.Loader this binary wires in; the library
// scanner/database that would resolve a package by UUID across an
// entire workspace is out of scope for the core.
func loadPackageDir(dir string) (*library.Package, error) {
	data, err := os.ReadFile(filepath.Join(dir, packageFile))
	if err != nil {
		return nil, fmt.Errorf("pkgeditor: reading %s: %w", dir, err)
	}
	node, err := sexpr.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("pkgeditor: parsing %s: %w", dir, err)
	}
	pkg := library.NewPackage(ident.CircuitIdentifier{}, ident.Version{})
	if err := pkg.FromSExpr(node); err != nil {
		return nil, fmt.Errorf("pkgeditor: decoding %s: %w", dir, err)
	}
	return pkg, nil
}
