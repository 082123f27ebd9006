// Package main is sigwatch, a small demonstration of the sigslot hub: it
// bridges file-system notifications into named signals and fans each event
// out to the attached listeners.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/dshills/sigslot/hub"
)

func main() {
	os.Exit(run())
}

func run() int {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] path [path...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		return 2
	}

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create logger: %v\n", err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush on exit

	h := hub.New(hub.WithLogger(logger))

	// One listener per operation, plus a catch-all counter on fs.any.
	for _, name := range []string{"fs.create", "fs.write", "fs.remove", "fs.rename", "fs.chmod"} {
		if _, err := h.Listen(name, func(data any) {
			fmt.Printf("%-9s %v\n", name[len("fs."):], data)
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: listen %s: %v\n", name, err)
			return 1
		}
	}

	total := 0
	h.Listen("fs.any", func(any) { total++ }) //nolint:errcheck // name and fn are static

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create watcher: %v\n", err)
		return 1
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to watch %s: %v\n", path, err)
			return 1
		}
		logger.Info("watching", zap.String("path", path))
	}

	// Handle signals for graceful shutdown.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-interrupts:
			logger.Info("shutting down", zap.Int("events", total))
			return 0

		case event, ok := <-watcher.Events:
			if !ok {
				return 0
			}
			// All emissions happen on this goroutine, honoring the hub's
			// single-goroutine delivery contract.
			for _, name := range eventNames(event.Op) {
				h.Emit(name, event.Name)
			}
			h.Emit("fs.any", event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return 0
			}
			logger.Warn("watch error", zap.Error(err))
		}
	}
}

// eventNames maps an fsnotify operation set to hub signal names.
func eventNames(op fsnotify.Op) []string {
	var names []string
	if op.Has(fsnotify.Create) {
		names = append(names, "fs.create")
	}
	if op.Has(fsnotify.Write) {
		names = append(names, "fs.write")
	}
	if op.Has(fsnotify.Remove) {
		names = append(names, "fs.remove")
	}
	if op.Has(fsnotify.Rename) {
		names = append(names, "fs.rename")
	}
	if op.Has(fsnotify.Chmod) {
		names = append(names, "fs.chmod")
	}
	return names
}

// newLogger builds the process logger.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
