// Package main is the entry point for the panestorm terminal
// multiplexer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/panestorm/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure the terminal is restored on all exit paths.
	defer application.Shutdown()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.Shell, "shell", "", "Shell to run in panes (overrides config)")
	flag.StringVar(&opts.WorkDir, "workdir", "", "Working directory for new shells")
	flag.StringVar(&opts.WorkDir, "w", "", "Working directory for new shells (shorthand)")
	flag.StringVar(&opts.InitScript, "script", "", "Lua layout script run on startup")
	flag.StringVar(&opts.LogPath, "log", "", "Write logs to this file")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.Watch, "watch", true, "Reload configuration when the file changes")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Panestorm - split-pane terminal multiplexer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: panestorm [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  panestorm                     Open with a single shell\n")
		fmt.Fprintf(os.Stderr, "  panestorm -shell /bin/zsh     Use a specific shell\n")
		fmt.Fprintf(os.Stderr, "  panestorm -script layout.lua  Build a layout on startup\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Panestorm %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}
