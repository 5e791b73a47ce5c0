package theme

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"

	"tabsview/internal/tabs"
)

// Theme hands out lipgloss styles for one catppuccin flavor.
type Theme struct {
	name   string
	flavor catppuccin.Flavor
}

func New(name string) *Theme {
	flavor := flavorFromName(name)
	return &Theme{name: flavor.Name(), flavor: flavor}
}

func flavorFromName(name string) catppuccin.Flavor {
	switch name {
	case "latte":
		return catppuccin.Latte
	case "frappe":
		return catppuccin.Frappe
	case "macchiato":
		return catppuccin.Macchiato
	case "mocha":
		return catppuccin.Mocha
	default:
		return catppuccin.Mocha
	}
}

func (t *Theme) Name() string {
	return t.name
}

func (t *Theme) color(c catppuccin.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex)
}

// Accent returns the page color for a demo tab id.
func (t *Theme) Accent(id string) lipgloss.Color {
	switch id {
	case "red":
		return t.color(t.flavor.Red())
	case "green":
		return t.color(t.flavor.Green())
	case "blue":
		return t.color(t.flavor.Blue())
	default:
		return t.color(t.flavor.Mauve())
	}
}

// Tabs returns the default tab bar styles.
func (t *Theme) Tabs() tabs.Styles {
	return tabs.Styles{
		Bar: lipgloss.NewStyle().
			Background(t.color(t.flavor.Mantle())),
		Item: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(t.color(t.flavor.Subtext0())).
			Background(t.color(t.flavor.Mantle())),
		Selected: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(t.color(t.flavor.Text())).
			Background(t.color(t.flavor.Surface0())),
		Divider: lipgloss.NewStyle().
			Foreground(t.color(t.flavor.Surface1())).
			Background(t.color(t.flavor.Mantle())),
		DividerRune: "─",
	}
}

func (t *Theme) TitleStyle(id string) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent(id))
}

func (t *Theme) BodyStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.color(t.flavor.Text()))
}

func (t *Theme) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.color(t.flavor.Overlay0()))
}

func (t *Theme) StatusBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.color(t.flavor.Subtext1())).
		Background(t.color(t.flavor.Crust()))
}

func (t *Theme) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.color(t.flavor.Teal()))
}

func (t *Theme) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.color(t.flavor.Red())).
		Bold(true)
}

// KeyboardStyle paints the simulated on-screen keyboard region.
func (t *Theme) KeyboardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.color(t.flavor.Text())).
		Background(t.color(t.flavor.Surface0()))
}

// KeycapStyle paints one key of the simulated keyboard.
func (t *Theme) KeycapStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.color(t.flavor.Text())).
		Background(t.color(t.flavor.Surface2()))
}

func (t *Theme) InputStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.color(t.flavor.Surface1())).
		Padding(0, 1)
}

func (t *Theme) FocusedInputStyle() lipgloss.Style {
	return t.InputStyle().
		BorderForeground(t.color(t.flavor.Lavender()))
}

func (t *Theme) LogPanelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(t.color(t.flavor.Surface1()))
}

// LevelStyle colors a log level label.
func (t *Theme) LevelStyle(level string) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch level {
	case "DEBUG":
		return s.Foreground(t.color(t.flavor.Overlay1()))
	case "WARN":
		return s.Foreground(t.color(t.flavor.Yellow()))
	case "ERROR":
		return s.Foreground(t.color(t.flavor.Red()))
	default:
		return s.Foreground(t.color(t.flavor.Blue()))
	}
}
