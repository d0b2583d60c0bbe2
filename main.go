package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/settings-menu/internal/app"
	"github.com/atomicstack/settings-menu/internal/config"
	"github.com/atomicstack/settings-menu/internal/logging"
	"github.com/atomicstack/settings-menu/internal/logging/events"
	"github.com/atomicstack/settings-menu/internal/report"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runProgram is swapped out in tests to avoid starting a terminal program.
var runProgram = app.Run

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status: 2 for
// configuration errors, 1 for anything else that failed.
func run(args, environ []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(args, environ, stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, config.ErrInvalid):
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 2
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func newRootCmd(argv, environ []string, stdout io.Writer) *cobra.Command {
	var values *config.Values
	cmd := &cobra.Command{
		Use:   "settings-menu",
		Short: "Browse and edit settings in a keyboard-driven terminal menu",
		Long: "settings-menu opens a nested settings menu in the terminal. Arrow keys move, " +
			"enter opens a submenu or edits an option, esc goes back. Values are printed on exit.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return fmt.Errorf("%w: %v", config.ErrInvalid, err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := values.Config(argv)
			if err != nil {
				return err
			}
			return runApp(cfg, stdout)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", config.ErrInvalid, err)
	})
	values = config.RegisterFlags(cmd.Flags(), config.ParseEnv(environ))
	return cmd
}

func runApp(cfg config.Config, stdout io.Writer) error {
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	defer logging.Sync()

	traceStartup(cfg)

	store, err := runProgram(cfg.App)
	events.App.Exit(err)
	if err != nil {
		logging.Error(err)
		return err
	}
	return report.Write(stdout, store.Options(), cfg.Output.Format)
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
