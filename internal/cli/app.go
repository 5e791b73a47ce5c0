// pattern: Functional Core
package cli

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
)

// Command represents a single CLI command with its metadata and handler.
type Command struct {
	Name    string
	Summary string
	Usage   string
	Run     func(args []string) error
}

// Group represents a group of related commands.
type Group struct {
	Name     string
	Summary  string
	Commands map[string]*Command
}

// App represents the top-level CLI application with groups and ungrouped commands.
type App struct {
	groups   map[string]*Group
	commands map[string]*Command
	version  string

	// Stdout and Stderr receive command output. Default to the process streams.
	Stdout io.Writer
	Stderr io.Writer

	// ExitFunc is called to exit the process. Defaults to os.Exit.
	// Overridable for testing.
	ExitFunc func(int)
}

// NewApp creates a new CLI application with the given version.
func NewApp(version string) *App {
	return &App{
		groups:   make(map[string]*Group),
		commands: make(map[string]*Command),
		version:  version,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		ExitFunc: os.Exit,
	}
}

// AddGroup creates and registers a new command group.
func (a *App) AddGroup(name, summary string) *Group {
	g := &Group{
		Name:     name,
		Summary:  summary,
		Commands: make(map[string]*Command),
	}
	a.groups[name] = g
	return g
}

// AddCommand registers an ungrouped (top-level) command.
func (a *App) AddCommand(cmd *Command) {
	a.commands[cmd.Name] = cmd
}

// AddCommand registers a command in the group.
func (g *Group) AddCommand(cmd *Command) {
	g.Commands[cmd.Name] = cmd
}

// Execute dispatches the CLI arguments to the appropriate command.
// Returns true if TUI should be launched, false otherwise.
func (a *App) Execute(args []string) bool {
	// No args: launch TUI
	if len(args) == 0 {
		return true
	}

	cmdName := args[0]

	// Check for ungrouped command
	if cmd, ok := a.commands[cmdName]; ok {
		if wantsHelp(args[1:]) {
			fmt.Fprintf(a.Stderr, "%s\n", cmd.Usage)
			return false
		}
		a.run(cmd, args[1:])
		return false
	}

	// Check for group
	if group, ok := a.groups[cmdName]; ok {
		// Group with no subcommand, "help", or --help/-h
		if len(args) < 2 || args[1] == "help" || args[1] == "--help" || args[1] == "-h" {
			group.PrintHelp(a.Stderr)
			return false
		}

		if cmd, ok := group.Commands[args[1]]; ok {
			if wantsHelp(args[2:]) {
				fmt.Fprintf(a.Stderr, "%s\n", cmd.Usage)
				return false
			}
			a.run(cmd, args[2:])
			return false
		}

		// Unknown command in group
		group.PrintHelp(a.Stderr)
		a.ExitFunc(1)
		return false
	}

	// Unknown command
	a.PrintHelp(a.Stderr)
	a.ExitFunc(1)
	return false
}

// run executes cmd and reports its error with exit code 1.
func (a *App) run(cmd *Command, args []string) {
	if err := cmd.Run(args); err != nil {
		fmt.Fprintf(a.Stderr, "error: %v\n", err)
		a.ExitFunc(1)
	}
}

func wantsHelp(args []string) bool {
	return slices.Contains(args, "--help") || slices.Contains(args, "-h")
}

// PrintHelp prints the top-level help text.
func (a *App) PrintHelp(w io.Writer) {
	fmt.Fprintf(w, "Usage: tabsview [options] [command]\n\n")
	fmt.Fprintf(w, "Commands:\n")

	for _, name := range slices.Sorted(maps.Keys(a.commands)) {
		cmd := a.commands[name]
		fmt.Fprintf(w, "  %-10s %s\n", cmd.Name, cmd.Summary)
	}

	fmt.Fprintf(w, "  %-10s %s\n", "(none)", "Launch the interactive demo")

	if len(a.groups) > 0 {
		fmt.Fprintf(w, "\nCommand Groups:\n")
		for _, name := range slices.Sorted(maps.Keys(a.groups)) {
			group := a.groups[name]
			fmt.Fprintf(w, "  %-10s %s\n", group.Name, group.Summary)
		}
	}

	fmt.Fprintf(w, "\nUse \"tabsview <group> help\" for group details.\n\n")
	fmt.Fprintf(w, "Options:\n")
}

// PrintHelp prints help for a specific group.
func (g *Group) PrintHelp(w io.Writer) {
	fmt.Fprintf(w, "Usage: tabsview %s <command>\n\n", g.Name)
	fmt.Fprintf(w, "Commands:\n")
	// Sort command names for deterministic output
	names := slices.Sorted(maps.Keys(g.Commands))
	for _, name := range names {
		cmd := g.Commands[name]
		fmt.Fprintf(w, "  %-10s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintf(w, "\nUse \"tabsview %s <command> --help\" for command details.\n", g.Name)
}
