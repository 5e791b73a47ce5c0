package tabs

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"tabsview/internal/geometry"
	"tabsview/internal/toolbar"
)

// Styles styles the default bar.
type Styles struct {
	Bar      lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Divider  lipgloss.Style
	// DividerRune is repeated across the bar's edge facing the content.
	// Empty disables the divider.
	DividerRune string
}

// DefaultStyles works on any terminal without a theme.
func DefaultStyles() Styles {
	return Styles{
		Bar:         lipgloss.NewStyle(),
		Item:        lipgloss.NewStyle().Padding(0, 1),
		Selected:    lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true),
		Divider:     lipgloss.NewStyle().Faint(true),
		DividerRune: "─",
	}
}

// LabelFunc returns the label of a tab given whether it is selected.
type LabelFunc[T Tab] func(tab T, selected bool) string

// ItemBuilder builds the bar item for one tab.
type ItemBuilder[T Tab] func(tab T, selection Binding[T]) Item[T]

// Item is one entry of the bar.
type Item[T Tab] struct {
	Tab       T
	selection Binding[T]
	label     LabelFunc[T]
	styles    Styles
}

// DefaultItem builds items that show label and highlight the selection.
func DefaultItem[T Tab](label LabelFunc[T], styles Styles) ItemBuilder[T] {
	return func(tab T, selection Binding[T]) Item[T] {
		return Item[T]{Tab: tab, selection: selection, label: label, styles: styles}
	}
}

// Selected reports whether the item's tab is the selection.
func (i Item[T]) Selected() bool {
	return i.selection != nil && i.selection.Get() == i.Tab
}

// Press selects the item's tab.
func (i Item[T]) Press() {
	if i.selection != nil {
		i.selection.Set(i.Tab)
	}
}

// Render draws the item centered in a cell of the given width.
func (i Item[T]) Render(width int) string {
	if width <= 0 {
		return ""
	}
	selected := i.Selected()
	style := i.styles.Item
	if selected {
		style = i.styles.Selected
	}
	text := ""
	if i.label != nil {
		text = i.label(i.Tab, selected)
	}
	inner := max(width-style.GetHorizontalFrameSize(), 0)
	text = ansi.Truncate(text, inner, "…")
	return style.Width(width).MaxWidth(width).Align(lipgloss.Center).Render(text)
}

// Bar is the default tab bar: items share the width evenly, the selected
// one is highlighted and a divider faces the content.
type Bar[T Tab] struct {
	position toolbar.Position
	items    []Item[T]
	styles   Styles
}

// DefaultBar returns a bar builder drawing label for every tab.
func DefaultBar[T Tab](label LabelFunc[T], styles Styles) BarBuilder[T] {
	return DefaultBarWithItems(DefaultItem(label, styles), styles)
}

// DefaultBarWithItems returns a bar builder using item for every tab.
func DefaultBarWithItems[T Tab](item ItemBuilder[T], styles Styles) BarBuilder[T] {
	return func(position toolbar.Position, tabs []T, selection Binding[T]) toolbar.View {
		items := make([]Item[T], len(tabs))
		for i, t := range tabs {
			items[i] = item(t, selection)
		}
		return &Bar[T]{position: position, items: items, styles: styles}
	}
}

// Items returns the bar items in order.
func (b *Bar[T]) Items() []Item[T] {
	return b.items
}

// Render draws the bar at its natural height for the given width.
func (b *Bar[T]) Render(_ toolbar.Env, width, _ int) string {
	if width <= 0 || len(b.items) == 0 {
		return ""
	}
	spans := evenSpans(width, len(b.items))
	cells := make([]string, len(b.items))
	for i, item := range b.items {
		cells[i] = item.Render(spans[i])
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	if b.styles.DividerRune != "" {
		divider := b.styles.Divider.Render(strings.Repeat(b.styles.DividerRune, width))
		if b.position == toolbar.Top {
			row = lipgloss.JoinVertical(lipgloss.Left, row, divider)
		} else {
			row = lipgloss.JoinVertical(lipgloss.Left, divider, row)
		}
	}
	return b.styles.Bar.Width(width).Render(row)
}

// HandleMouse presses the item under a left click.
func (b *Bar[T]) HandleMouse(msg tea.MouseMsg, frame geometry.Rect) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if item, ok := b.ItemAt(msg.X-frame.X, frame.Width); ok {
		item.Press()
	}
	return nil
}

// ItemAt returns the item covering column x of a bar width cells wide.
func (b *Bar[T]) ItemAt(x, width int) (Item[T], bool) {
	if x < 0 || x >= width || len(b.items) == 0 {
		return Item[T]{}, false
	}
	start := 0
	for i, span := range evenSpans(width, len(b.items)) {
		if x < start+span {
			return b.items[i], true
		}
		start += span
	}
	return Item[T]{}, false
}

// evenSpans splits width into n spans; leftover cells go to the first
// spans.
func evenSpans(width, n int) []int {
	spans := make([]int, n)
	base, rem := width/n, width%n
	for i := range spans {
		spans[i] = base
		if i < rem {
			spans[i]++
		}
	}
	return spans
}
