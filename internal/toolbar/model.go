// pattern: Imperative Shell

package toolbar

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tabsview/internal/geometry"
	"tabsview/internal/logging"
)

// nextID hands out container ids so animation frames reach their owner.
var nextID atomic.Uint64

// KeyboardMsg reports the rows currently covered by an on-screen keyboard.
type KeyboardMsg struct {
	Insets geometry.Insets
}

// LayoutMsg places a container inside its parent. Containers send one to
// their content after every layout pass, so nested containers follow.
type LayoutMsg struct {
	Frame geometry.Rect
	Env   Env
}

// AnimationFrameMsg advances the inset animation of one container.
type AnimationFrameMsg struct {
	id   uint64
	seq  uint64
	Time time.Time
}

// Model composes a content view and a bar view. It measures both after
// every update, reserves their overlap at the bar's edge of the content and
// keeps the bar clear of the keyboard when asked to.
type Model struct {
	id      uint64
	content View
	bar     View
	opts    options

	frame    geometry.Rect
	placed   bool
	keyboard geometry.Insets

	rec         *reconciler
	broadcaster *Broadcaster

	barArea  geometry.Rect
	barFrame geometry.Rect

	displayed geometry.Size
	animating bool
	tween     tween
	seq       uint64
}

// New creates a container for content and bar.
func New(content, bar View, opts ...Option) Model {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return Model{
		id:          nextID.Add(1),
		content:     content,
		bar:         bar,
		opts:        o,
		rec:         newReconciler(o.logger),
		broadcaster: &Broadcaster{},
	}
}

// Init returns no command; the first layout pass runs on the first message.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update runs one layout pass per message.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LayoutMsg:
		m.frame = msg.Frame
		m.placed = true
		return m.relayout()

	case KeyboardMsg:
		m.keyboard = msg.Insets
		return m.relayout()

	case AnimationFrameMsg:
		if msg.id == m.id {
			return m.step(msg)
		}

	case tea.MouseMsg:
		p := geometry.Point{X: msg.X, Y: msg.Y}
		if _, ok := m.rec.state.BarFrame(); ok && m.barFrame.Contains(p) {
			var cmd tea.Cmd
			if h, ok := resolve(m.bar, m.barEnv()).(MouseHandler); ok {
				cmd = h.HandleMouse(msg, m.barFrame)
			}
			var layoutCmd tea.Cmd
			m, layoutCmd = m.relayout()
			return m, tea.Batch(cmd, layoutCmd)
		}
		cmd := updateView(m.content, m.contentEnv(), msg)
		var layoutCmd tea.Cmd
		m, layoutCmd = m.relayout()
		return m, tea.Batch(cmd, layoutCmd)

	case tea.WindowSizeMsg:
		if !m.placed {
			m.frame = geometry.Rect{Width: msg.Width, Height: msg.Height}
		}
	}

	cmds := []tea.Cmd{
		updateView(m.content, m.contentEnv(), msg),
		updateView(m.bar, m.barEnv(), msg),
	}
	var layoutCmd tea.Cmd
	m, layoutCmd = m.relayout()
	cmds = append(cmds, layoutCmd)
	return m, tea.Batch(cmds...)
}

// relayout measures, reconciles and tells the content where it now lives.
func (m Model) relayout() (Model, tea.Cmd) {
	cmd := m.reconcile()
	if m.frame.IsEmpty() {
		return m, cmd
	}
	env := m.contentEnv()
	return m, tea.Batch(cmd, updateView(m.content, env, LayoutMsg{Frame: env.Frame(), Env: env}))
}

// reconcile is the layout pass: place both layers, feed their frames to the
// observers and apply the resulting inset.
func (m *Model) reconcile() tea.Cmd {
	if m.frame.IsEmpty() {
		return nil
	}
	// m.keyboard keeps the reported value; a frame shorter than the
	// keyboard only clamps this pass.
	kb := clampInsets(m.keyboard, m.frame.Height)

	contentFrame := m.frame.Inset(kb)
	exempt := m.opts.position.KeyboardEdges(m.opts.ignoresKeyboard)
	m.barArea = m.frame.Inset(exempt.Suppress(kb))

	bw, bh := measure(m.renderBar())
	bw = min(bw, m.barArea.Width)
	bh = min(bh, m.barArea.Height)
	y := m.barArea.Y
	if m.opts.position.Alignment() == lipgloss.Bottom {
		y = m.barArea.Bottom() - bh
	}
	m.barFrame = geometry.Rect{
		X:      m.barArea.X + (m.barArea.Width-bw)/2,
		Y:      y,
		Width:  bw,
		Height: bh,
	}

	changed, animate := m.rec.observe(
		geometry.Geometry{Frame: contentFrame, Parent: m.frame},
		geometry.Geometry{Frame: m.barFrame, Parent: m.frame},
	)
	if !changed {
		return nil
	}

	target := m.rec.state.Inset()
	m.opts.logger.Debug("inset recomputed",
		"inset", target.String(),
		"phase", m.rec.state.Phase().String(),
		"animate", animate,
	)
	return m.applyInset(target, animate)
}

func (m *Model) applyInset(target geometry.Size, animate bool) tea.Cmd {
	if m.animating && m.tween.to == target {
		return nil
	}
	if !m.animating && m.displayed == target {
		return nil
	}

	a := m.opts.animation
	m.seq++
	if !animate || a == nil || a.Duration <= 0 {
		m.animating = false
		m.displayed = target
		m.broadcaster.Publish(target)
		return nil
	}

	m.tween = tween{from: m.displayed, to: target, start: m.opts.now(), anim: *a, seq: m.seq}
	m.animating = true
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	id, seq := m.id, m.seq
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return AnimationFrameMsg{id: id, seq: seq, Time: t}
	})
}

// step advances the running animation. Frames from a superseded animation
// are dropped.
func (m Model) step(msg AnimationFrameMsg) (Model, tea.Cmd) {
	if !m.animating || msg.seq != m.seq {
		return m, nil
	}
	size, done := m.tween.at(msg.Time)
	m.displayed = size
	m.broadcaster.Publish(size)

	env := m.contentEnv()
	layoutCmd := updateView(m.content, env, LayoutMsg{Frame: env.Frame(), Env: env})
	if done {
		m.animating = false
		return m, layoutCmd
	}
	return m, tea.Batch(m.tick(), layoutCmd)
}

// View draws the content, the bar over it and the keyboard region last.
func (m Model) View() string {
	if m.frame.IsEmpty() {
		return ""
	}
	width, height := m.frame.Width, m.frame.Height
	kb := clampInsets(m.keyboard, height)

	contentFrame := m.frame.Inset(kb)
	area := m.contentArea()
	body := fitBlock(m.renderContent(), area.Width, area.Height)
	spacer := blankBlock(width, contentFrame.Height-area.Height)

	var middle string
	if m.opts.position.Edge() == EdgeTop {
		middle = stack(spacer, body)
	} else {
		middle = stack(body, spacer)
	}
	base := fitBlock(stack(blankBlock(width, kb.Top), middle, blankBlock(width, kb.Bottom)), width, height)

	if !m.barFrame.IsEmpty() {
		bar := fitBlock(m.renderBar(), m.barFrame.Width, m.barFrame.Height)
		base = overlayAt(base, bar, m.barFrame.X-m.frame.X, m.barFrame.Y-m.frame.Y, width)
	}

	if kb.Top > 0 {
		r := geometry.Rect{X: m.frame.X, Y: m.frame.Y, Width: width, Height: kb.Top}
		base = overlayAt(base, m.renderKeyboard(r), 0, 0, width)
	}
	if kb.Bottom > 0 {
		r := geometry.Rect{X: m.frame.X, Y: m.frame.Bottom() - kb.Bottom, Width: width, Height: kb.Bottom}
		base = overlayAt(base, m.renderKeyboard(r), 0, height-kb.Bottom, width)
	}
	return base
}

// Render lets a container be drawn wherever a View is expected.
func (m Model) Render(Env, int, int) string {
	return m.View()
}

func (m Model) renderContent() string {
	if m.content == nil {
		return ""
	}
	area := m.contentArea()
	return m.content.Render(m.contentEnv(), area.Width, area.Height)
}

func (m Model) renderBar() string {
	if m.bar == nil {
		return ""
	}
	return m.bar.Render(m.barEnv(), m.barArea.Width, m.barArea.Height)
}

func (m Model) renderKeyboard(r geometry.Rect) string {
	if m.opts.keyboardView == nil {
		return blankBlock(r.Width, r.Height)
	}
	env := NewEnv(r, m.opts.position, m.broadcaster.Reader())
	return fitBlock(m.opts.keyboardView.Render(env, r.Width, r.Height), r.Width, r.Height)
}

// contentArea is the content frame minus the applied inset.
func (m Model) contentArea() geometry.Rect {
	area := m.frame.Inset(clampInsets(m.keyboard, m.frame.Height))
	if m.opts.reserveInset {
		area = m.opts.position.Edge().Reserve(area, m.displayed.Height)
	}
	return area
}

func (m Model) contentEnv() Env {
	return NewEnv(m.contentArea(), m.opts.position, m.broadcaster.Reader())
}

func (m Model) barEnv() Env {
	return NewEnv(m.barArea, m.opts.position, m.broadcaster.Reader())
}

func clampInsets(in geometry.Insets, height int) geometry.Insets {
	in.Top = min(max(in.Top, 0), max(height, 0))
	in.Bottom = min(max(in.Bottom, 0), max(height-in.Top, 0))
	return in
}

// SetPosition moves the bar. The change animates like any other.
func (m Model) SetPosition(p Position) (Model, tea.Cmd) {
	m.opts.position = p
	return m.relayout()
}

// SetIgnoresKeyboard toggles keyboard avoidance for the bar.
func (m Model) SetIgnoresKeyboard(ignore bool) (Model, tea.Cmd) {
	m.opts.ignoresKeyboard = ignore
	return m.relayout()
}

// SetAnimation replaces the inset animation. nil disables it.
func (m Model) SetAnimation(a *Animation) Model {
	m.opts.animation = a
	return m
}

// SetContent swaps the content view.
func (m Model) SetContent(v View) (Model, tea.Cmd) {
	m.content = v
	return m.relayout()
}

// Refresh runs a layout pass without a message, for state changes made
// behind the container's back such as a new selection.
func (m Model) Refresh() (Model, tea.Cmd) {
	return m.relayout()
}

// SetBar swaps the bar view.
func (m Model) SetBar(v View) (Model, tea.Cmd) {
	m.bar = v
	return m.relayout()
}

// Position returns the bar position.
func (m Model) Position() Position { return m.opts.position }

// IgnoresKeyboard reports whether the bar ignores the keyboard.
func (m Model) IgnoresKeyboard() bool { return m.opts.ignoresKeyboard }

// Animation returns the inset animation, nil when disabled.
func (m Model) Animation() *Animation { return m.opts.animation }

// Frame returns the container's global frame.
func (m Model) Frame() geometry.Rect { return m.frame }

// Inset returns the computed overlap of the content and bar frames.
func (m Model) Inset() geometry.Size { return m.rec.state.Inset() }

// DisplayedInset returns the inset currently reserved, which trails Inset
// while an animation runs.
func (m Model) DisplayedInset() geometry.Size { return m.displayed }

// Animating reports whether an inset animation is running.
func (m Model) Animating() bool { return m.animating }

// Phase reports the measurement phase.
func (m Model) Phase() Phase { return m.rec.state.Phase() }

// ContentFrame returns the last measured content frame.
func (m Model) ContentFrame() (geometry.Rect, bool) { return m.rec.state.ContentFrame() }

// BarFrame returns the last measured bar frame.
func (m Model) BarFrame() (geometry.Rect, bool) { return m.rec.state.BarFrame() }

// Env returns the environment handed to the content.
func (m Model) Env() Env { return m.contentEnv() }

// reconciler owns the layout state and both observers of one container.
type reconciler struct {
	state   *LayoutState
	content *geometry.Observer[geometry.Rect]
	bar     *geometry.Observer[geometry.Rect]

	changed bool
	animate bool
}

func newReconciler(logger *logging.ScopedLogger) *reconciler {
	rc := &reconciler{state: NewLayoutState()}
	rc.content = geometry.NewObserver(geometry.GlobalFrame, func(r geometry.Rect) {
		logger.Debug("content frame changed", "frame", r.String())
		rc.record(rc.state.SetContentFrame(r))
	})
	rc.bar = geometry.NewObserver(geometry.GlobalFrame, func(r geometry.Rect) {
		logger.Debug("bar frame changed", "frame", r.String())
		rc.record(rc.state.SetBarFrame(r))
	})
	skip := func(err error) {
		logger.Warn("measurement skipped", "error", err)
	}
	rc.content.OnSkip = skip
	rc.bar.OnSkip = skip
	return rc
}

// record notes one slot update. A pass animates only if every update in
// it does; a first measurement snaps.
func (rc *reconciler) record(animate bool) {
	if rc.changed {
		rc.animate = rc.animate && animate
	} else {
		rc.animate = animate
	}
	rc.changed = true
}

func (rc *reconciler) begin() {
	rc.changed = false
	rc.animate = false
}

func (rc *reconciler) observe(content, bar geometry.Geometry) (changed, animate bool) {
	rc.begin()
	rc.content.Observe(content)
	rc.bar.Observe(bar)
	return rc.changed, rc.animate
}

// Mounted adapts a Model to View and Updater so it can be nested as the
// content of another container.
type Mounted struct {
	Model Model
}

// Mount wraps m for nesting.
func Mount(m Model) *Mounted {
	return &Mounted{Model: m}
}

func (p *Mounted) Render(env Env, width, height int) string {
	return p.Model.View()
}

func (p *Mounted) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.Model, cmd = p.Model.Update(msg)
	return cmd
}
