// pattern: Imperative Shell
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"tabsview/internal/config"
	"tabsview/internal/logging"
	"tabsview/internal/toolbar"
)

const (
	layoutUsage = "Usage: tabsview inspect layout [--width cols] [--height rows] [--position bottom|top] [--bar-height 2] [--keyboard 0] [--ignore-keyboard=true|false] [--render]"
	configUsage = "Usage: tabsview inspect config"
	logsUsage   = "Usage: tabsview logs [-f/--follow] [--scope toolbar] [--level info] [--file path]"
)

// BuildApp creates and configures the CLI application with all commands and groups.
// configPath is the config file every command reads.
func BuildApp(version, configPath string) *App {
	app := NewApp(version)

	app.AddCommand(&Command{
		Name:    "version",
		Summary: "Print version and exit",
		Usage:   "Usage: tabsview version",
		Run: func(args []string) error {
			_, err := fmt.Fprintln(app.Stdout, version)
			return err
		},
	})

	app.AddCommand(&Command{
		Name:    "logs",
		Summary: "Print the demo's log file",
		Usage:   logsUsage,
		Run: func(args []string) error {
			return runLogsCommand(app, configPath, args)
		},
	})

	inspect := app.AddGroup("inspect", "Inspect layout and configuration without a terminal")
	inspect.AddCommand(&Command{
		Name:    "layout",
		Summary: "Run a headless layout pass and print frames as JSON",
		Usage:   layoutUsage,
		Run: func(args []string) error {
			return runLayoutCommand(app, configPath, args)
		},
	})
	inspect.AddCommand(&Command{
		Name:    "config",
		Summary: "Print the effective configuration as YAML",
		Usage:   configUsage,
		Run: func(args []string) error {
			return runConfigCommand(app, configPath)
		},
	})

	return app
}

func runLayoutCommand(app *App, configPath string, args []string) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		fmt.Fprintf(app.Stderr, "warning: %v\n", err)
	}

	fs := flag.NewFlagSet("inspect layout", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	defWidth, defHeight := terminalSize(app.Stdout)
	width := fs.Int("width", defWidth, "container width in cells (default: terminal width)")
	height := fs.Int("height", defHeight, "container height in rows (default: terminal height)")
	position := fs.String("position", cfg.Position, "bar position (top or bottom)")
	barHeight := fs.Int("bar-height", 2, "rows of the bar")
	keyboard := fs.Int("keyboard", 0, "rows covered by a keyboard at the bottom")
	ignore := fs.Bool("ignore-keyboard", cfg.IgnoresKeyboard, "keep the bar pinned under the keyboard")
	render := fs.Bool("render", false, "include the rendered screen")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%v\n%s", err, layoutUsage)
	}

	pos, err := toolbar.ParsePosition(*position)
	if err != nil {
		return err
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", *width, *height)
	}
	if *barHeight < 0 || *keyboard < 0 {
		return fmt.Errorf("bar-height and keyboard must not be negative")
	}

	report := InspectLayout(LayoutParams{
		Width:           *width,
		Height:          *height,
		Position:        pos,
		BarHeight:       *barHeight,
		Keyboard:        *keyboard,
		IgnoresKeyboard: *ignore,
		Render:          *render,
	})
	return writeJSON(app.Stdout, report)
}

func runConfigCommand(app *App, configPath string) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if _, err := app.Stdout.Write(data); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return nil
}

func runLogsCommand(app *App, configPath string, args []string) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		fmt.Fprintf(app.Stderr, "warning: %v\n", err)
	}
	defaultPath := cfg.LogFile
	if defaultPath == "" {
		defaultPath = logging.DefaultLogPath()
	}

	fs := flag.NewFlagSet("logs", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	follow := fs.BoolP("follow", "f", false, "keep printing new entries")
	scope := fs.String("scope", "", "only entries at or below this scope")
	level := fs.String("level", "", "minimum level (debug, info, warn, error)")
	path := fs.String("file", defaultPath, "log file to read")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%v\n%s", err, logsUsage)
	}

	// Set up signal handling for SIGINT and SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return TailLogs(ctx, TailConfig{
		Path:   *path,
		Filter: LogFilter{Scope: *scope, Level: *level},
		Follow: *follow,
		Writer: app.Stdout,
	})
}

// terminalSize returns the size of w when it is a terminal, else 80x24.
func terminalSize(w io.Writer) (int, int) {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil && width > 0 && height > 0 {
			return width, height
		}
	}
	return 80, 24
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
