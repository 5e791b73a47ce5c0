// pattern: Imperative Shell

package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tabsview/internal/geometry"
	"tabsview/internal/theme"
	"tabsview/internal/toolbar"
)

// page is one demo tab.
type page struct {
	id    string
	title string
}

func (p page) ID() string { return p.id }

var demoPages = []page{
	{id: "red", title: "Red"},
	{id: "green", title: "Green"},
	{id: "blue", title: "Blue"},
}

const (
	pageTitleHeight = 2 // title + blank line
	inputHeight     = 3 // bordered text field
	bodyRows        = 40
)

// pageView is the content of one tab: a title, a scrollable body and a
// text field. It is kept across selections so scroll position and typed
// text survive switching tabs.
type pageView struct {
	page  page
	theme *theme.Theme
	body  viewport.Model
	input textinput.Model

	frame    geometry.Rect
	inset    geometry.Size
	position toolbar.Position
}

func newPageView(p page, th *theme.Theme) *pageView {
	input := textinput.New()
	input.Placeholder = "type here to raise the keyboard"
	input.Prompt = "› "
	input.CharLimit = 120

	return &pageView{
		page:  p,
		theme: th,
		body:  viewport.New(0, 0),
		input: input,
	}
}

// Update reacts to placement from the container and to input.
func (v *pageView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case toolbar.LayoutMsg:
		v.place(msg.Frame, msg.Env)
	case tea.KeyMsg:
		if v.input.Focused() {
			v.input, cmd = v.input.Update(msg)
		} else {
			v.body, cmd = v.body.Update(msg)
		}
	case tea.MouseMsg:
		v.body, cmd = v.body.Update(msg)
	default:
		if v.input.Focused() {
			v.input, cmd = v.input.Update(msg)
		}
	}
	return cmd
}

func (v *pageView) place(frame geometry.Rect, env toolbar.Env) {
	v.frame = frame
	v.inset = env.BarInset()
	v.position = env.Position()

	v.body.Width = max(frame.Width, 0)
	v.body.Height = max(frame.Height-pageTitleHeight-inputHeight, 0)
	// border + padding + prompt
	v.input.Width = max(frame.Width-6, 1)
	v.body.SetContent(v.bodyText())
}

func (v *pageView) bodyText() string {
	lines := []string{
		fmt.Sprintf("This is the %s tab.", v.page.title),
		"",
		fmt.Sprintf("frame      %s", v.frame),
		fmt.Sprintf("bar inset  %s", v.inset),
		fmt.Sprintf("bar        %s", v.position),
		"",
	}
	for i := 1; i <= bodyRows; i++ {
		lines = append(lines, fmt.Sprintf("%s row %02d", v.page.id, i))
	}
	return strings.Join(lines, "\n")
}

func (v *pageView) Render(_ toolbar.Env, width, height int) string {
	title := v.theme.TitleStyle(v.page.id).Render(v.page.title)

	style := v.theme.InputStyle()
	if v.input.Focused() {
		style = v.theme.FocusedInputStyle()
	}
	input := style.Width(max(width-2, 0)).Render(v.input.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		v.theme.BodyStyle().Render(v.body.View()),
		input,
	)
}

// Focus focuses the text field.
func (v *pageView) Focus() tea.Cmd {
	return v.input.Focus()
}

// Blur releases the text field.
func (v *pageView) Blur() {
	v.input.Blur()
}

func (v *pageView) Focused() bool {
	return v.input.Focused()
}

// Value returns the typed text.
func (v *pageView) Value() string {
	return v.input.Value()
}
