// pattern: Imperative Shell

package logging

import (
	"fmt"
	"sync"
)

// ChannelSink is a zapcore.WriteSyncer that parses each JSON line zap
// writes and queues it for the log panel. Writes never block: when the
// buffer is full the oldest entry is dropped.
type ChannelSink struct {
	entries chan LogEntry
	mu      sync.Mutex
	closed  bool
}

// NewChannelSink creates a sink buffering up to bufferSize entries.
func NewChannelSink(bufferSize int) *ChannelSink {
	return &ChannelSink{
		entries: make(chan LogEntry, bufferSize),
	}
}

// Write implements io.Writer.
func (s *ChannelSink) Write(p []byte) (int, error) {
	entry, err := ParseEntry(p)
	if err != nil {
		// Unparseable lines are dropped so logging never fails.
		return len(p), nil
	}
	if err := s.send(entry); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Send queues an already parsed entry.
func (s *ChannelSink) Send(entry LogEntry) {
	_ = s.send(entry)
}

func (s *ChannelSink) send(entry LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("write to closed channel sink")
	}

	select {
	case s.entries <- entry:
	default:
		select {
		case <-s.entries:
		default:
		}
		select {
		case s.entries <- entry:
		default:
		}
	}
	return nil
}

// Sync implements zapcore.WriteSyncer.
func (s *ChannelSink) Sync() error {
	return nil
}

// Close closes the entries channel. Safe to call multiple times.
func (s *ChannelSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.entries)
	}
	return nil
}

// Entries returns the channel of queued entries.
func (s *ChannelSink) Entries() <-chan LogEntry {
	return s.entries
}
