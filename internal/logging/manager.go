// pattern: Imperative Shell

package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds configuration for the Manager.
type Config struct {
	FilePath       string // Path to the JSON log file
	MaxSizeMB      int    // Max size in MB before rotation
	MaxBackups     int    // Max number of rotated files to keep
	MaxAgeDays     int    // Max days to keep rotated files
	Level          string // Minimum level (debug, info, warn, error)
	ChannelBufSize int    // Buffer for the in-app log panel (default 500)
}

// LoggerProvider hands out scoped loggers.
// Both Manager and TestLogManager implement this interface.
type LoggerProvider interface {
	For(scope string) *ScopedLogger
}

// ScopedLogger is a slog logger tagged with a dotted scope such as
// "toolbar" or "tabs.demo".
type ScopedLogger struct {
	slog  *slog.Logger
	zap   *zap.Logger
	scope string
}

// Info logs at INFO level.
func (l *ScopedLogger) Info(msg string, args ...any) {
	if l.slog != nil {
		l.slog.Info(msg, args...)
	}
}

// Debug logs at DEBUG level.
func (l *ScopedLogger) Debug(msg string, args ...any) {
	if l.slog != nil {
		l.slog.Debug(msg, args...)
	}
}

// Warn logs at WARN level.
func (l *ScopedLogger) Warn(msg string, args ...any) {
	if l.slog != nil {
		l.slog.Warn(msg, args...)
	}
}

// Error logs at ERROR level.
func (l *ScopedLogger) Error(msg string, args ...any) {
	if l.slog != nil {
		l.slog.Error(msg, args...)
	}
}

// With returns a logger that adds the given key-value pairs to every entry.
func (l *ScopedLogger) With(args ...any) *ScopedLogger {
	if l.slog == nil {
		return l
	}
	return &ScopedLogger{
		slog:  l.slog.With(args...),
		zap:   l.zap,
		scope: l.scope,
	}
}

// Named returns a child logger whose scope is "<scope>.<name>".
func (l *ScopedLogger) Named(name string) *ScopedLogger {
	if l.zap == nil {
		return l
	}
	child := l.zap.Named(name)
	h, ok := l.slog.Handler().(*zapSlogHandler)
	if !ok {
		return l
	}
	return &ScopedLogger{
		slog:  slog.New(&zapSlogHandler{zap: child, level: h.level, attrs: h.attrs}),
		zap:   child,
		scope: l.scope + "." + name,
	}
}

// Scope returns the logger's dotted scope.
func (l *ScopedLogger) Scope() string {
	return l.scope
}

// scopeCache builds and caches one ScopedLogger per scope.
type scopeCache struct {
	base    *zap.Logger
	level   zapcore.LevelEnabler
	mu      sync.RWMutex
	loggers map[string]*ScopedLogger
}

func newScopeCache(base *zap.Logger, level zapcore.LevelEnabler) *scopeCache {
	return &scopeCache{
		base:    base,
		level:   level,
		loggers: make(map[string]*ScopedLogger),
	}
}

func (c *scopeCache) get(scope string) *ScopedLogger {
	c.mu.RLock()
	if logger, ok := c.loggers[scope]; ok {
		c.mu.RUnlock()
		return logger
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if logger, ok := c.loggers[scope]; ok {
		return logger
	}

	zapLogger := c.base.Named(scope)
	logger := &ScopedLogger{
		slog:  slog.New(&zapSlogHandler{zap: zapLogger, level: c.level}),
		zap:   zapLogger,
		scope: scope,
	}
	c.loggers[scope] = logger
	return logger
}

// Manager writes every entry to a rotating JSON file and to a channel the
// TUI log panel drains.
type Manager struct {
	baseZap     *zap.Logger
	channelSink *ChannelSink
	fileWriter  *lumberjack.Logger
	level       zap.AtomicLevel
	scopes      *scopeCache
}

// NewManager creates a log manager with the given configuration.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.FilePath == "" {
		return nil, fmt.Errorf("FilePath is required")
	}

	if cfg.ChannelBufSize == 0 {
		cfg.ChannelBufSize = 500
	}
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = 5
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = 3
	}
	if cfg.MaxAgeDays == 0 {
		cfg.MaxAgeDays = 7
	}

	level := zap.NewAtomicLevelAt(parseZapLevel(cfg.Level))

	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	fileWriter := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
	channelSink := NewChannelSink(cfg.ChannelBufSize)

	enc := zapcore.NewJSONEncoder(encoderConfig())
	core := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.AddSync(fileWriter), level),
		zapcore.NewCore(enc.Clone(), zapcore.AddSync(channelSink), level),
	)
	baseZap := zap.New(core)

	return &Manager{
		baseZap:     baseZap,
		channelSink: channelSink,
		fileWriter:  fileWriter,
		level:       level,
		scopes:      newScopeCache(baseZap, level),
	}, nil
}

// For returns the logger for scope. Loggers are cached per scope.
func (m *Manager) For(scope string) *ScopedLogger {
	return m.scopes.get(scope)
}

// SetLevel changes the minimum level of every logger handed out so far.
func (m *Manager) SetLevel(level string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	m.level.SetLevel(l)
	return nil
}

// Level returns the current minimum level.
func (m *Manager) Level() string {
	return m.level.Level().String()
}

// Entries returns the channel the log panel consumes.
func (m *Manager) Entries() <-chan LogEntry {
	return m.channelSink.Entries()
}

// Sink returns the channel sink so other sources can inject entries.
func (m *Manager) Sink() *ChannelSink {
	return m.channelSink
}

// Sync flushes all buffered logs.
func (m *Manager) Sync() error {
	return m.baseZap.Sync()
}

// Close syncs and closes all resources.
func (m *Manager) Close() error {
	_ = m.Sync()
	_ = m.channelSink.Close()
	return m.fileWriter.Close()
}

// DefaultLogPath returns the log file under the user's state directory.
func DefaultLogPath() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "tabsview", "tabsview.log")
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "tabsview", "tabsview.log")
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.EpochTimeEncoder
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	return cfg
}

func parseZapLevel(level string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// zapSlogHandler adapts zap.Logger to slog.Handler.
type zapSlogHandler struct {
	zap    *zap.Logger
	level  zapcore.LevelEnabler
	attrs  []slog.Attr
	groups []string
}

func (h *zapSlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.level.Enabled(slogToZapLevel(level))
}

func (h *zapSlogHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]zap.Field, 0, r.NumAttrs()+len(h.attrs))

	for _, attr := range h.attrs {
		fields = append(fields, zap.Any(attr.Key, attr.Value.Any()))
	}
	r.Attrs(func(attr slog.Attr) bool {
		fields = append(fields, zap.Any(attr.Key, attr.Value.Any()))
		return true
	})

	switch slogToZapLevel(r.Level) {
	case zapcore.DebugLevel:
		h.zap.Debug(r.Message, fields...)
	case zapcore.WarnLevel:
		h.zap.Warn(r.Message, fields...)
	case zapcore.ErrorLevel:
		h.zap.Error(r.Message, fields...)
	default:
		h.zap.Info(r.Message, fields...)
	}
	return nil
}

func (h *zapSlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)
	return &zapSlogHandler{
		zap:    h.zap,
		level:  h.level,
		attrs:  newAttrs,
		groups: h.groups,
	}
}

func (h *zapSlogHandler) WithGroup(name string) slog.Handler {
	newGroups := make([]string, len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups[len(h.groups)] = name
	return &zapSlogHandler{
		zap:    h.zap.Named(name),
		level:  h.level,
		attrs:  h.attrs,
		groups: newGroups,
	}
}

func slogToZapLevel(level slog.Level) zapcore.Level {
	switch {
	case level >= slog.LevelError:
		return zapcore.ErrorLevel
	case level >= slog.LevelWarn:
		return zapcore.WarnLevel
	case level >= slog.LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
