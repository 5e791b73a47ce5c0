// pattern: Imperative Shell

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NopLogger returns a logger that discards all output.
func NopLogger() *ScopedLogger {
	return &ScopedLogger{}
}

// TestLogManager captures every entry, debug included, on a channel.
type TestLogManager struct {
	channelSink *ChannelSink
	scopes      *scopeCache
}

// NewTestLogManager creates a channel-only manager for tests.
func NewTestLogManager(bufferSize int) *TestLogManager {
	channelSink := NewChannelSink(bufferSize)

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig()),
		zapcore.AddSync(channelSink),
		zapcore.DebugLevel,
	)

	return &TestLogManager{
		channelSink: channelSink,
		scopes:      newScopeCache(zap.New(core), zapcore.DebugLevel),
	}
}

// For returns a scoped logger, matching Manager.For.
func (m *TestLogManager) For(scope string) *ScopedLogger {
	return m.scopes.get(scope)
}

// Channel returns the channel of captured entries.
func (m *TestLogManager) Channel() <-chan LogEntry {
	return m.channelSink.Entries()
}

// Drain returns every entry captured so far without blocking.
func (m *TestLogManager) Drain() []LogEntry {
	var out []LogEntry
	for {
		select {
		case e, ok := <-m.channelSink.Entries():
			if !ok {
				return out
			}
			out = append(out, e)
		default:
			return out
		}
	}
}

// Close closes the test log manager.
func (m *TestLogManager) Close() error {
	return m.channelSink.Close()
}
