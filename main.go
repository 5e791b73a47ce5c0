// pattern: Imperative Shell
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"tabsview/internal/cli"
	"tabsview/internal/config"
	"tabsview/internal/demo"
	"tabsview/internal/logging"
)

var version = "dev"

func main() {
	// Stop parsing flags after the first non-flag arg (the subcommand),
	// so that --help after a subcommand is handled by the subcommand.
	flag.CommandLine.SetInterspersed(false)

	configPath := flag.StringP("config", "c", config.Path(), "config file")

	// Override flag.Usage before Parse so --help uses the CLI app's help
	flag.Usage = func() {
		app := cli.BuildApp(version, *configPath)
		app.PrintHelp(os.Stderr)
		flag.PrintDefaults()
	}

	flag.Parse()

	app := cli.BuildApp(version, *configPath)
	if app.Execute(flag.Args()) {
		runTUI(*configPath)
	}
}

// newLogManager opens the rotating log file named by cfg.
func newLogManager(cfg config.Config) (*logging.Manager, error) {
	logPath := cfg.LogFile
	if logPath == "" {
		logPath = logging.DefaultLogPath()
	}
	return logging.NewManager(logging.Config{
		FilePath:       logPath,
		MaxSizeMB:      10,
		MaxBackups:     3,
		MaxAgeDays:     7,
		ChannelBufSize: 1000,
		Level:          cfg.LogLevel,
	})
}

// runTUI launches the interactive demo.
func runTUI(configPath string) {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config %s: %v\n", configPath, err)
		os.Exit(1)
	}

	logManager, err := newLogManager(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logManager.Close() }()

	appLogger := logManager.For("app")
	appLogger.Info("application starting", "version", version, "config", configPath)

	model := demo.NewModel(cfg, logManager).
		WithLogEntries(logManager.Entries()).
		WithLevelSetter(logManager)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher, err := config.NewWatcher(configPath, func(c config.Config, err error) {
		p.Send(demo.ConfigReloadedMsg{Config: c, Err: err})
	})
	if err != nil {
		appLogger.Warn("config watcher unavailable", "error", err)
	} else {
		go func() {
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				appLogger.Warn("config watcher stopped", "error", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		appLogger.Error("application exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	appLogger.Info("application stopped")
}
