// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// wristcomp is a simulated wearable computer for the terminal: a
// dashboard with vital stats, an inventory tracker, and device
// settings, all persisted to a single JSON state file.
//
// State lives in watch_data.json in the working directory by default;
// point --state (or state_path in the config file) somewhere else to
// keep it elsewhere. A missing or corrupt state file starts the device
// from factory defaults without complaint.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/wristcomp/wristcomp/lib/clock"
	"github.com/wristcomp/wristcomp/lib/config"
	"github.com/wristcomp/wristcomp/lib/datastore"
	"github.com/wristcomp/wristcomp/lib/version"
	"github.com/wristcomp/wristcomp/lib/wristui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var statePath string
	var logFile string
	var logLevel string

	flagSet := pflag.NewFlagSet("wristcomp", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to config file (default: $WRISTCOMP_CONFIG, then the per-user config dir)")
	flagSet.StringVar(&statePath, "state", "", "path to the JSON state file (overrides config)")
	flagSet.StringVar(&logFile, "log-file", "", "write JSON log records to this file (overrides config)")
	flagSet.StringVar(&logLevel, "log-level", "", "minimum log level: debug, info, warn, error (overrides config)")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match other binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("wristcomp")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	var configuration *config.Config
	var err error
	if configPath != "" {
		configuration, err = config.LoadFile(configPath)
	} else {
		configuration, err = config.Load()
	}
	if err != nil {
		return err
	}

	if statePath != "" {
		configuration.StatePath = statePath
	}
	if logFile != "" {
		configuration.LogFile = logFile
	}
	if logLevel != "" {
		configuration.LogLevel = logLevel
	}

	if err := configuration.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := configuration.EnsurePaths(); err != nil {
		return err
	}

	level := parseLogLevel(configuration.LogLevel)

	// Warnings and errors surface on the TUI status bar. Records only
	// go to stderr when it is redirected away from the terminal; the
	// alt-screen display owns the terminal while the program runs.
	tuiHandler := wristui.NewTUILogHandler(slog.LevelWarn)
	handlers := fanoutHandler{tuiHandler}
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		handlers = append(handlers, slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
	if configuration.LogFile != "" {
		fileHandler, fileCloser, fileErr := openFileLogHandler(configuration.LogFile, level)
		if fileErr != nil {
			return fmt.Errorf("cannot open log file %s: %w", configuration.LogFile, fileErr)
		}
		defer fileCloser()
		handlers = append(handlers, fileHandler)
	}
	logger := slog.New(handlers)

	deviceClock := clock.Real()
	store := datastore.Open(configuration.StatePath, deviceClock, logger)

	model := wristui.NewModel(store, deviceClock, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	tuiHandler.SetProgram(program)

	_, err = program.Run()
	return err
}

// parseLogLevel maps a config level name to its slog level. Unknown
// names map to info; Validate has already rejected them upstream.
func parseLogLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `WristComp — simulated wearable computer for the terminal.

The device opens on its dashboard: vital stats, an inventory preview,
a live clock, and battery. Digits 1-3 jump between screens, escape
backs out, q quits. Stats are adjusted on the stats screen; items are
added, edited, and deleted on the inventory screen.

All data persists to a single JSON file (watch_data.json by default).
With auto-save enabled (the default), every change is written
immediately; a corrupt or missing file starts from factory defaults.

Usage:
  wristcomp [flags]

Examples:
  # Run with state in the working directory
  wristcomp

  # Keep state and logs elsewhere
  wristcomp --state ~/.local/share/wristcomp/state.json --log-file /tmp/wristcomp.log

  # Use an explicit config file
  wristcomp --config ./wristcomp.yaml

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}

// openFileLogHandler creates a slog.JSONHandler that writes to the
// given file path. Returns the handler, a cleanup function to close
// the file, and any error. The file is created or truncated.
func openFileLogHandler(path string, level slog.Level) (slog.Handler, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	return handler, func() { file.Close() }, nil
}

// fanoutHandler is a slog.Handler that sends each record to multiple
// underlying handlers. A record is enabled if any sub-handler is
// enabled for that level.
type fanoutHandler []slog.Handler

func (handlers fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handlers fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers fanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}
