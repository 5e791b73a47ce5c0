// pattern: Functional Core

package logging

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// LogEntry is one structured log line as shown in the log panel and by
// "tabsview logs".
type LogEntry struct {
	Timestamp time.Time
	Level     string // DEBUG, INFO, WARN, ERROR
	Scope     string // dotted scope, e.g. "toolbar" or "tabs.demo"
	Message   string
	Fields    map[string]any
}

// String renders the entry on one line with fields sorted by key.
func (e LogEntry) String() string {
	var sb strings.Builder
	sb.WriteString(e.Timestamp.Format("15:04:05"))
	sb.WriteString(" ")
	fmt.Fprintf(&sb, "%-5s", e.Level)
	sb.WriteString(" [")
	sb.WriteString(e.Scope)
	sb.WriteString("] ")
	sb.WriteString(e.Message)
	if fields := e.FieldString(); fields != "" {
		sb.WriteString(" ")
		sb.WriteString(fields)
	}
	return sb.String()
}

// FieldString renders the fields as space separated key=value pairs,
// sorted by key.
func (e LogEntry) FieldString() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, e.Fields[k])
	}
	return strings.Join(parts, " ")
}

// MatchesScope reports whether the entry's scope is prefix or lies below
// it. An empty prefix matches everything.
func (e LogEntry) MatchesScope(prefix string) bool {
	if prefix == "" {
		return true
	}
	return e.Scope == prefix || strings.HasPrefix(e.Scope, prefix+".")
}

// AtLeast reports whether the entry is at or above level.
func (e LogEntry) AtLeast(level string) bool {
	return levelRank(e.Level) >= levelRank(ParseLevel(level))
}

// ParseLevel normalizes a level name to uppercase. Unknown names map to
// INFO.
func ParseLevel(level string) string {
	switch strings.ToLower(level) {
	case "debug":
		return "DEBUG"
	case "info":
		return "INFO"
	case "warn", "warning":
		return "WARN"
	case "error":
		return "ERROR"
	default:
		return "INFO"
	}
}

func levelRank(level string) int {
	switch level {
	case "DEBUG":
		return 0
	case "WARN":
		return 2
	case "ERROR":
		return 3
	default:
		return 1
	}
}

// ParseEntry decodes one JSON line written by the zap encoder.
func ParseEntry(data []byte) (LogEntry, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return LogEntry{}, err
	}

	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     "INFO",
		Scope:     "app",
		Fields:    make(map[string]any),
	}

	if msg, ok := raw["msg"].(string); ok {
		entry.Message = msg
		delete(raw, "msg")
	}
	if level, ok := raw["level"].(string); ok {
		entry.Level = ParseLevel(level)
		delete(raw, "level")
	}
	if logger, ok := raw["logger"].(string); ok {
		entry.Scope = logger
		delete(raw, "logger")
	}
	if ts, ok := raw["ts"].(float64); ok {
		sec := int64(ts)
		nsec := int64((ts - float64(sec)) * 1e9)
		entry.Timestamp = time.Unix(sec, nsec)
		delete(raw, "ts")
	}

	delete(raw, "caller")
	delete(raw, "stacktrace")

	for k, v := range raw {
		entry.Fields[k] = v
	}
	return entry, nil
}
