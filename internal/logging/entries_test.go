// pattern: Functional Core

package logging

import (
	"testing"
	"time"
)

func TestLogEntry_String(t *testing.T) {
	ts := time.Date(2026, 3, 1, 14, 30, 45, 0, time.Local)

	tests := []struct {
		name  string
		entry LogEntry
		want  string
	}{
		{
			name:  "no fields",
			entry: LogEntry{Timestamp: ts, Level: "INFO", Scope: "app", Message: "started"},
			want:  "14:30:45 INFO  [app] started",
		},
		{
			name: "fields sorted by key",
			entry: LogEntry{
				Timestamp: ts,
				Level:     "DEBUG",
				Scope:     "toolbar",
				Message:   "inset recomputed",
				Fields:    map[string]any{"phase": "measured", "inset": "80x1"},
			},
			want: "14:30:45 DEBUG [toolbar] inset recomputed inset=80x1 phase=measured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLogEntry_FieldString(t *testing.T) {
	if got := (LogEntry{}).FieldString(); got != "" {
		t.Errorf("FieldString() = %q, want empty", got)
	}
	e := LogEntry{Fields: map[string]any{"b": 2, "a": true}}
	if got := e.FieldString(); got != "a=true b=2" {
		t.Errorf("FieldString() = %q, want %q", got, "a=true b=2")
	}
}

func TestLogEntry_MatchesScope(t *testing.T) {
	tests := []struct {
		name   string
		scope  string
		prefix string
		want   bool
	}{
		{"empty prefix matches all", "toolbar", "", true},
		{"exact match", "toolbar", "toolbar", true},
		{"child scope", "toolbar.inner", "toolbar", true},
		{"sibling with shared prefix", "toolbars", "toolbar", false},
		{"different root", "tabs.demo", "toolbar", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := LogEntry{Scope: tt.scope}
			if got := entry.MatchesScope(tt.prefix); got != tt.want {
				t.Errorf("MatchesScope(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestLogEntry_AtLeast(t *testing.T) {
	tests := []struct {
		level string
		min   string
		want  bool
	}{
		{"DEBUG", "info", false},
		{"INFO", "info", true},
		{"WARN", "info", true},
		{"ERROR", "warn", true},
		{"INFO", "error", false},
		{"DEBUG", "debug", true},
	}

	for _, tt := range tests {
		t.Run(tt.level+">="+tt.min, func(t *testing.T) {
			if got := (LogEntry{Level: tt.level}).AtLeast(tt.min); got != tt.want {
				t.Errorf("AtLeast(%q) = %v, want %v", tt.min, got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", "DEBUG"},
		{"INFO", "INFO"},
		{"warning", "WARN"},
		{"error", "ERROR"},
		{"unknown", "INFO"},
		{"", "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseEntry(t *testing.T) {
	line := []byte(`{"level":"warn","ts":1772375445.5,"logger":"config","msg":"reload failed","error":"bad yaml","caller":"x.go:1"}`)

	entry, err := ParseEntry(line)
	if err != nil {
		t.Fatalf("ParseEntry() error = %v", err)
	}
	if entry.Level != "WARN" || entry.Scope != "config" || entry.Message != "reload failed" {
		t.Errorf("ParseEntry() = %+v", entry)
	}
	if entry.Timestamp.Unix() != 1772375445 {
		t.Errorf("Timestamp = %v", entry.Timestamp)
	}
	if entry.Fields["error"] != "bad yaml" {
		t.Errorf("Fields[error] = %v", entry.Fields["error"])
	}
	if _, ok := entry.Fields["caller"]; ok {
		t.Error("caller should be stripped from fields")
	}

	if _, err := ParseEntry([]byte("not json")); err == nil {
		t.Error("ParseEntry() should fail on invalid JSON")
	}
}
