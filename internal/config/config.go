package config

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atomicstack/settings-menu/internal/app"
	"github.com/atomicstack/settings-menu/internal/report"
	"github.com/spf13/pflag"
)

// ErrInvalid marks configuration the user has to fix; callers exit with
// status 2 when they see it.
var ErrInvalid = errors.New("invalid configuration")

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Output  Output
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// Output controls what is printed once the menu exits.
type Output struct {
	Format report.Format
}

const (
	envTitle      = "SETTINGS_MENU_TITLE"
	envWidth      = "SETTINGS_MENU_WIDTH"
	envHeight     = "SETTINGS_MENU_HEIGHT"
	envShowFooter = "SETTINGS_MENU_FOOTER"
	envOpen       = "SETTINGS_MENU_OPEN"
	envOutput     = "SETTINGS_MENU_OUTPUT"
	envTrace      = "SETTINGS_MENU_TRACE"
	envLogFile    = "SETTINGS_MENU_LOG_FILE"
)

// Values holds the flag destinations registered on a flag set.
type Values struct {
	title   string
	width   int
	height  int
	footer  bool
	open    string
	output  string
	trace   bool
	logFile string
}

// RegisterFlags defines the application's flags on fs. Environment values
// become the flag defaults, so explicit flags always win.
func RegisterFlags(fs *pflag.FlagSet, env map[string]string) *Values {
	v := &Values{}
	fs.StringVar(&v.title, "title", envOrDefault(env, envTitle, ""), "window title and root menu name")
	fs.IntVar(&v.width, "width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	fs.IntVar(&v.height, "height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	fs.BoolVar(&v.footer, "footer", envOrBool(env, envShowFooter, false), "enable footer key help row")
	fs.StringVar(&v.open, "open", envOrDefault(env, envOpen, ""), "slash separated submenu path to open at startup")
	fs.StringVarP(&v.output, "output", "o", envOrDefault(env, envOutput, string(report.FormatText)), "print option values on exit: text, yaml, json or none")
	fs.BoolVar(&v.trace, "trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	fs.StringVar(&v.logFile, "log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	return v
}

// Config assembles and validates the parsed values. args are the raw
// command-line arguments, kept for tracing.
func (v *Values) Config(args []string) (Config, error) {
	format, err := report.ParseFormat(v.output)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	cfg := Config{
		App: app.Config{
			Title:      v.title,
			Width:      v.width,
			Height:     v.height,
			ShowFooter: v.footer,
			OpenPath:   v.open,
		},
		Logging: Logging{
			FilePath: v.logFile,
			Trace:    v.trace,
		},
		Output: Output{Format: format},
		Flags: map[string]string{
			"title":   v.title,
			"width":   strconv.Itoa(v.width),
			"height":  strconv.Itoa(v.height),
			"footer":  strconv.FormatBool(v.footer),
			"open":    v.open,
			"output":  string(format),
			"trace":   strconv.FormatBool(v.trace),
			"logFile": v.logFile,
		},
		Args: append([]string(nil), args...),
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("settings-menu", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	v := RegisterFlags(fs, ParseEnv(environ))
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected arguments %q", ErrInvalid, fs.Args())
	}
	return v.Config(args)
}

// ParseEnv turns KEY=VALUE pairs into a map; malformed entries are skipped.
func ParseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate rejects values the application cannot run with.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("%w: width must be >= 0 (got %d)", ErrInvalid, cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("%w: height must be >= 0 (got %d)", ErrInvalid, cfg.App.Height)
	}
	if _, err := report.ParseFormat(string(cfg.Output.Format)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
