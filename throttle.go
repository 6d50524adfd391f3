package consola

import "time"

// ThrottleConfig configures the coalescing window and aggregation threshold.
type ThrottleConfig struct {
	Window   time.Duration
	MinCount uint32
}

// DefaultThrottleConfig matches spec.md §4.3's defaults.
func DefaultThrottleConfig() ThrottleConfig {
	return ThrottleConfig{Window: 500 * time.Millisecond, MinCount: 2}
}

// group holds the single active coalescing group a Throttler tracks.
//
// lastEmitted records the RepetitionCount value as of the most recent
// emission of stored (0 if never emitted). A force-flush is only
// meaningful when count has moved past lastEmitted: tracking a boolean
// "has this group ever been emitted" instead double-emits whenever a
// group reaches min_count exactly and is then flushed with no further
// occurrences, since its count (> 1) would otherwise look unflushed.
type group struct {
	fp          Fingerprint
	firstTime   time.Time
	count       uint32
	stored      *LogRecord
	lastEmitted uint32
}

// Throttler collapses runs of fingerprint-identical records into a single
// emission carrying a repetition count, per spec.md §4.3. It holds exactly
// one active group at a time. On the suppressed path no record or group is
// created: matching records only increment a counter and mutate the stored
// record's RepetitionCount in place. Computing each incoming record's
// SHA-256 fingerprint does allocate.
type Throttler struct {
	cfg     ThrottleConfig
	current *group
}

// NewThrottler returns a Throttler configured with cfg.
func NewThrottler(cfg ThrottleConfig) *Throttler {
	return &Throttler{cfg: cfg}
}

// Submit runs r through the state machine, invoking emit once for every
// record the machine decides to emit (the first occurrence of a group, or
// an aggregated record at threshold or force-flush). emit is never called
// with a nil record and is called synchronously, in order.
func (t *Throttler) Submit(r *LogRecord, emit func(*LogRecord)) {
	fp := fingerprintOf(r)

	if t.current != nil && r.Timestamp.Sub(t.current.firstTime) > t.cfg.Window && t.current.count > 0 {
		t.forceFlush(emit)
	}

	if t.current != nil {
		if t.current.fp == fp {
			t.current.count++
			t.current.stored.RepetitionCount = t.current.count
			if t.current.count == t.cfg.MinCount {
				emit(t.current.stored)
				t.current.lastEmitted = t.current.count
			}
			return
		}
		t.forceFlush(emit)
	}

	r.RepetitionCount = 1
	t.current = &group{
		fp:        fp,
		firstTime: r.Timestamp,
		count:     1,
		stored:    r,
	}
	emit(r)
	t.current.lastEmitted = 1
}

// forceFlush emits the active group's stored record if its count has moved
// past the count last emitted for it, then resets to the empty state. It
// never re-emits a record whose current count already matches what was
// last sent out.
func (t *Throttler) forceFlush(emit func(*LogRecord)) {
	if t.current == nil {
		return
	}
	g := t.current
	t.current = nil
	if g.stored != nil && g.count > g.lastEmitted {
		emit(g.stored)
	}
}

// Flush force-flushes any pending group and resets to the empty state.
func (t *Throttler) Flush(emit func(*LogRecord)) {
	t.forceFlush(emit)
}
