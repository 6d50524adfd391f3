package consola

import (
	"io"
	"os"
)

// MockFunc is a synchronous interceptor invoked with every record
// immediately before it is passed to the reporter, including aggregated
// emissions. It is called once per emission, in emission order.
type MockFunc func(*LogRecord)

// Logger is the central orchestrator: level filter -> pause queue ->
// throttler -> reporter. A Logger is not intrinsically thread-safe; callers
// wanting shared use must serialize access externally, per spec.md §5.
type Logger struct {
	registry  *Registry
	clock     Clock
	level     LogLevel
	reporter  Reporter
	throttler *Throttler
	queue     *pauseQueue
	paused    bool
	defaults  *RecordDefaults
	mock      MockFunc

	stdout io.Writer
	stderr io.Writer
}

// New returns a Logger with sensible defaults: VERBOSE level (only silent
// records and levels above VERBOSE are filtered), the process-wide Registry, a SystemClock, an unbounded pause
// queue, default throttling, and a TextReporter writing to os.Stdout /
// os.Stderr. Use Builder for anything else.
func New() *Logger {
	return NewBuilder().Build()
}

// passesFilter reports whether level should be let through given the
// Logger's configured level, per spec.md §4.1: record.level <= configured,
// except that the SILENT sentinel never passes any filter except SILENT
// itself (otherwise, being numerically lowest, it would pass every filter).
func passesFilter(level, configured LogLevel) bool {
	if level == SILENT {
		return configured == SILENT
	}
	return level <= configured
}

// dispatch is shared by Log and LogRaw: apply the level filter, then either
// enqueue (paused) or hand off to the throttler.
func (l *Logger) dispatch(r *LogRecord) {
	if !passesFilter(r.Level, l.level) {
		return
	}
	l.defaults.ApplyDefaults(r)
	if l.paused {
		l.queue.push(r)
		return
	}
	l.throttler.Submit(r, l.emit)
}

// Log constructs a LogRecord for typeName at the current clock time and
// runs it through the filter -> queue -> throttler pipeline, per spec.md
// §4.5.
func (l *Logger) Log(typeName string, tag string, hasTag bool, args ...ArgValue) {
	r := NewRecord(l.registry, l.clock.Now(), typeName, tag, hasTag, args)
	l.dispatch(r)
}

// LogRaw constructs a raw LogRecord whose message is pre-composed rather
// than derived from args, but which still participates in filtering, the
// pause queue, throttling, and emission, per spec.md §4.5.
func (l *Logger) LogRaw(typeName string, tag string, hasTag bool, message string) {
	r := NewRawRecord(l.registry, l.clock.Now(), typeName, tag, hasTag, message)
	l.dispatch(r)
}

// emit routes record to the mock interceptor (if any) and then the
// reporter, selecting stderr for level <= ERROR and stdout otherwise.
// Reporter I/O errors are swallowed: logging must never propagate I/O
// failure to callers, per spec.md §4.5 and §7.
func (l *Logger) emit(record *LogRecord) {
	if l.mock != nil {
		l.mock(record)
	}
	sink := l.stdout
	if record.Level <= ERROR {
		sink = l.stderr
	}
	_ = l.reporter.Emit(record, sink)
}

// Flush force-flushes the throttler, emitting any pending aggregated group.
// It does not drain the pause queue; Resume does that.
func (l *Logger) Flush() {
	l.throttler.Flush(l.emit)
}

// Pause flushes the throttler (releasing any pending aggregated group) and
// then starts queueing subsequent log calls instead of emitting them.
//
// spec.md §9 leaves open whether pause should flush or preserve the active
// throttled group across the pause; this flushes, per the "assumed yes" in
// spec.md §4.4, so nothing is silently lost while paused indefinitely.
func (l *Logger) Pause() {
	l.Flush()
	l.paused = true
}

// Resume stops queueing, flushes the throttler once more, and then drains
// the pause queue in FIFO order through the normal filter -> throttler ->
// emit path. The level filter is re-applied on drain since the active
// level may have changed while paused; a queued record that now fails the
// filter is silently dropped, per spec.md §9.
func (l *Logger) Resume() {
	if !l.paused {
		return
	}
	l.paused = false
	l.Flush()
	for _, r := range l.queue.drain() {
		if !passesFilter(r.Level, l.level) {
			continue
		}
		l.throttler.Submit(r, l.emit)
	}
}

// SetLevel changes the configured filter level.
func (l *Logger) SetLevel(level LogLevel) {
	l.level = level
}

// Level returns the configured filter level.
func (l *Logger) Level() LogLevel {
	return l.level
}

// SetMock installs fn as the synchronous emission interceptor.
func (l *Logger) SetMock(fn MockFunc) {
	l.mock = fn
}

// ClearMock removes any installed interceptor.
func (l *Logger) ClearMock() {
	l.mock = nil
}

// Registry returns the type/level registry this Logger resolves levels
// against.
func (l *Logger) Registry() *Registry {
	return l.registry
}

// Close flushes the throttler once, emitting any pending aggregated group,
// mirroring the drop semantics of spec.md §4.5.
func (l *Logger) Close() {
	l.Flush()
}

// Builder configures a Logger before construction.
type Builder struct {
	registry    *Registry
	clock       Clock
	level       LogLevel
	reporter    Reporter
	throttle    ThrottleConfig
	queueCap    int
	hasQueueCap bool
	defaults    *RecordDefaults
	stdout      io.Writer
	stderr      io.Writer
}

// NewBuilder returns a Builder seeded with the same defaults as New().
func NewBuilder() *Builder {
	return &Builder{
		registry: defaultRegistry,
		clock:    SystemClock{},
		level:    VERBOSE,
		reporter: TextReporter{},
		throttle: DefaultThrottleConfig(),
		defaults: &RecordDefaults{},
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// WithRegistry overrides the Registry used to resolve type levels.
func (b *Builder) WithRegistry(r *Registry) *Builder {
	b.registry = r
	return b
}

// WithClock overrides the time source.
func (b *Builder) WithClock(c Clock) *Builder {
	b.clock = c
	return b
}

// WithLevel sets the initial configured level.
func (b *Builder) WithLevel(level LogLevel) *Builder {
	b.level = level
	return b
}

// WithReporter overrides the reporter used for emission.
func (b *Builder) WithReporter(r Reporter) *Builder {
	b.reporter = r
	return b
}

// WithThrottle overrides the throttle window/min-count configuration.
func (b *Builder) WithThrottle(cfg ThrottleConfig) *Builder {
	b.throttle = cfg
	return b
}

// WithQueueCapacity bounds the pause queue at capacity, dropping the
// oldest queued record before accepting a new one past that bound. Call
// WithUnboundedQueue to restore the default.
func (b *Builder) WithQueueCapacity(capacity int) *Builder {
	b.queueCap = capacity
	b.hasQueueCap = true
	return b
}

// WithUnboundedQueue removes any queue capacity bound.
func (b *Builder) WithUnboundedQueue() *Builder {
	b.hasQueueCap = false
	return b
}

// WithDefaults sets the RecordDefaults merged into every emitted record.
func (b *Builder) WithDefaults(d RecordDefaults) *Builder {
	b.defaults = &d
	return b
}

// WithSinks overrides the byte sinks records are written to; intended for
// tests that want to capture TextReporter output without touching the
// process's real stdout/stderr.
func (b *Builder) WithSinks(stdout, stderr io.Writer) *Builder {
	b.stdout = stdout
	b.stderr = stderr
	return b
}

// WithEnv applies CONSOLA_LEVEL from cfg, if present and known, as the
// initial level, per spec.md §6. Call after LoadEnvConfig.
func (b *Builder) WithEnv(cfg *EnvConfig) *Builder {
	if level, ok := cfg.ResolveLevel(b.registry); ok {
		b.level = level
	}
	return b
}

// Build constructs the configured Logger.
func (b *Builder) Build() *Logger {
	return &Logger{
		registry:  b.registry,
		clock:     b.clock,
		level:     b.level,
		reporter:  b.reporter,
		throttler: NewThrottler(b.throttle),
		queue:     newPauseQueue(b.queueCap, b.hasQueueCap),
		defaults:  b.defaults,
		stdout:    b.stdout,
		stderr:    b.stderr,
	}
}
