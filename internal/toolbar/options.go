package toolbar

import (
	"time"

	"tabsview/internal/logging"
)

// Option configures a Model.
type Option func(*options)

type options struct {
	position        Position
	ignoresKeyboard bool
	animation       *Animation
	reserveInset    bool
	keyboardView    View
	logger          *logging.ScopedLogger
	now             func() time.Time
}

func defaultOptions() options {
	return options{
		position:        Bottom,
		ignoresKeyboard: true,
		animation:       DefaultAnimation(),
		reserveInset:    true,
		logger:          logging.NopLogger(),
		now:             time.Now,
	}
}

// WithPosition sets the bar position. Default Bottom.
func WithPosition(p Position) Option {
	return func(o *options) { o.position = p }
}

// WithIgnoresKeyboard pins the bar to the physical edge while a keyboard
// is shown at that edge. Default true.
func WithIgnoresKeyboard(ignore bool) Option {
	return func(o *options) { o.ignoresKeyboard = ignore }
}

// WithAnimation sets the inset animation. nil disables animation.
func WithAnimation(a *Animation) Option {
	return func(o *options) { o.animation = a }
}

// WithReserveInset controls whether the container shrinks its content by
// the bar inset. With false the content gets the full frame and can read
// the inset from Env, see SafeAreaInset. Default true.
func WithReserveInset(reserve bool) Option {
	return func(o *options) { o.reserveInset = reserve }
}

// WithKeyboardView draws the keyboard region. Without it the region is
// left blank.
func WithKeyboardView(v View) Option {
	return func(o *options) { o.keyboardView = v }
}

// WithLogger sets the logger used for layout events.
func WithLogger(l *logging.ScopedLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func withClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}
