package logger

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/philipp01105/logtargets/core"
	"github.com/philipp01105/logtargets/formatter"
	"github.com/philipp01105/logtargets/target"
)

// ErrUnconfigured is returned by Log and its wrappers when the Logger has no targets
var ErrUnconfigured = errors.New("logger has no targets")

// Targets maps sinks to the minimum level each one emits
type Targets map[target.Sink]core.Level

type binding struct {
	id        target.ID
	sink      target.Sink
	threshold core.Level
}

// Logger dispatches each log call to every registered target.
//
// Every held sink this Logger's registry created is also the instance the
// registry stores for its key. Target changes take l.mu before the
// registry lock, and no caller-supplied Sink method runs while l.mu is held.
type Logger struct {
	className string
	registry  *target.Registry
	formatter formatter.Formatter
	diag      *zap.Logger
	stats     *target.Stats

	mu      sync.RWMutex
	targets map[target.ID]binding
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	className string
	targets   Targets
	sinkCfg   target.Config
	formatter formatter.Formatter
	diag      *zap.Logger
}

// NewBuilder creates a new logger builder for the given class name
func NewBuilder(className string) *Builder {
	return &Builder{className: className}
}

// WithTargets adds initial targets
func (b *Builder) WithTargets(targets Targets) *Builder {
	if b.targets == nil {
		b.targets = make(Targets, len(targets))
	}
	for s, level := range targets {
		b.targets[s] = level
	}
	return b
}

// WithSinkConfig sets the output settings of sinks created by the Logger's registry
func (b *Builder) WithSinkConfig(cfg target.Config) *Builder {
	b.sinkCfg = cfg
	return b
}

// WithFormatter sets the formatter (default: TextFormatter)
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithDiagnostics sets the zap logger receiving the Logger's own events
func (b *Builder) WithDiagnostics(diag *zap.Logger) *Builder {
	b.diag = diag
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	diag := b.diag
	if diag == nil {
		diag = zap.NewNop()
	}
	diag = diag.With(zap.String("class", b.className))

	f := b.formatter
	if f == nil {
		f = formatter.NewTextFormatter()
	}

	l := &Logger{
		className: b.className,
		registry:  target.NewRegistry(b.sinkCfg, diag),
		formatter: f,
		diag:      diag,
		stats:     target.NewStats(),
		targets:   make(map[target.ID]binding),
	}
	if len(b.targets) > 0 {
		l.AddTargets(b.targets)
	}
	return l
}

// New creates a Logger with no targets
func New(className string) *Logger {
	return NewBuilder(className).Build()
}

// ClassName returns the name printed in every message
func (l *Logger) ClassName() string {
	return l.className
}

// Registry returns the registry owned by this Logger
func (l *Logger) Registry() *target.Registry {
	return l.registry
}

// Stats returns the dispatch statistics
func (l *Logger) Stats() *target.Stats {
	return l.stats
}

// File returns this Logger's shared sink for a file system location
func (l *Logger) File(path string) *target.FileSink {
	return l.registry.File(path)
}

// Email returns this Logger's shared sink for an email address
func (l *Logger) Email(address string) *target.EmailSink {
	return l.registry.Email(address)
}

// API returns this Logger's shared sink for an API URL
func (l *Logger) API(url string) *target.APISink {
	return l.registry.API(url)
}

// AddTargets merges targets into the Logger. A sink with the same ID as a
// held one replaces it and its threshold. A sink from this Logger's
// registry is swapped for the instance the registry currently stores, or
// stored again if it was purged.
func (l *Logger) AddTargets(targets Targets) {
	bindings := make([]binding, 0, len(targets))
	for s, threshold := range targets {
		if s == nil {
			continue
		}
		bindings = append(bindings, binding{id: target.IDOf(s), sink: s, threshold: threshold})
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, b := range bindings {
		b.sink = l.registry.Adopt(b.sink)
		l.targets[b.id] = b
		l.diag.Debug("target added", zap.Stringer("target", b.id), zap.Stringer("threshold", b.threshold))
	}
}

// AddTarget adds a single target
func (l *Logger) AddTarget(s target.Sink, threshold core.Level) {
	l.AddTargets(Targets{s: threshold})
}

// Targets returns a copy of the current targets
func (l *Logger) Targets() Targets {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(Targets, len(l.targets))
	for _, b := range l.targets {
		out[b.sink] = b.threshold
	}
	return out
}

// Threshold returns the level recorded for the target with s's ID
func (l *Logger) Threshold(s target.Sink) (core.Level, bool) {
	id := target.IDOf(s)

	l.mu.RLock()
	defer l.mu.RUnlock()

	b, ok := l.targets[id]
	return b.threshold, ok
}

// HasTargets reports whether Log would dispatch
func (l *Logger) HasTargets() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.targets) > 0
}

// DeleteTargets removes the given sinks. Registry-backed sinks are also
// purged from this Logger's registry; other Loggers are never affected.
func (l *Logger) DeleteTargets(sinks ...target.Sink) {
	gone := make([]binding, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			gone = append(gone, binding{id: target.IDOf(s), sink: s})
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, g := range gone {
		if b, ok := l.targets[g.id]; ok {
			delete(l.targets, g.id)
			l.registry.Remove(b.sink)
			l.diag.Debug("target deleted", zap.Stringer("target", g.id))
		}
		l.registry.Remove(g.sink)
	}
}

// DeleteAllTargets removes every target and purges every sink this
// Logger's registry created, returning the Logger to its initial state.
func (l *Logger) DeleteAllTargets() {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.targets)
	l.targets = make(map[target.ID]binding)
	l.registry.Clear()
	l.diag.Debug("all targets deleted", zap.Int("count", n))
}

// Log formats the message once and hands it to every target. It fails
// only when the Logger has no targets. Several errors are combined into
// one; an error without a stack trace gets one recorded here.
func (l *Logger) Log(level core.Level, msg string, errs ...error) error {
	l.mu.RLock()
	if len(l.targets) == 0 {
		l.mu.RUnlock()
		return errors.Wrapf(ErrUnconfigured, "logger %q", l.className)
	}
	bindings := make([]binding, 0, len(l.targets))
	for _, b := range l.targets {
		bindings = append(bindings, b)
	}
	l.mu.RUnlock()

	err := multierr.Combine(errs...)
	if err != nil && !formatter.HasStackTrace(err) {
		err = errors.WithStack(err)
	}

	entry := core.GetEntry()
	entry.Level = level
	entry.ClassName = l.className
	entry.Message = msg
	entry.Err = err
	message := l.formatter.Format(entry)
	core.PutEntry(entry)

	l.stats.IncrementDispatched()

	// every target gets the message regardless of what the others did
	for _, b := range bindings {
		emitted, werr := b.sink.Emit(message, level, b.threshold)
		switch {
		case werr != nil:
			l.stats.IncrementFailed()
			l.diag.Warn("sink write failed", zap.Stringer("target", b.id), zap.Error(werr))
		case emitted:
			l.stats.IncrementEmitted(level)
		default:
			l.stats.IncrementFiltered(level)
		}
	}
	return nil
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, errs ...error) error {
	return l.Log(core.DebugLevel, msg, errs...)
}

// Info logs an info message
func (l *Logger) Info(msg string, errs ...error) error {
	return l.Log(core.InfoLevel, msg, errs...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, errs ...error) error {
	return l.Log(core.WarnLevel, msg, errs...)
}

// Error logs an error message
func (l *Logger) Error(msg string, errs ...error) error {
	return l.Log(core.ErrorLevel, msg, errs...)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) error {
	return l.Log(core.DebugLevel, fmt.Sprintf(format, args...))
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) error {
	return l.Log(core.InfoLevel, fmt.Sprintf(format, args...))
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) error {
	return l.Log(core.WarnLevel, fmt.Sprintf(format, args...))
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) error {
	return l.Log(core.ErrorLevel, fmt.Sprintf(format, args...))
}
