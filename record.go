package consola

import "time"

// MetaEntry is a single (key, value) pair in a LogRecord's meta list. Meta
// is a list, not a map: insertion order is preserved, and uniqueness is
// enforced only when RecordDefaults are merged in, per spec.md §3.
type MetaEntry struct {
	Key   string
	Value ArgValue
}

// LogRecord is the central log-event entity. Records are created at the
// call site and mutated only by the Throttler (repetition_count) and by
// default-merge. A record that starts a throttled group is emitted on
// arrival and may be emitted again, with its updated RepetitionCount, as
// that group's aggregated emission; other records reach the reporter at
// most once.
type LogRecord struct {
	Timestamp       time.Time
	Level           LogLevel
	TypeName        string
	Tag             string
	HasTag          bool
	Args            []ArgValue
	Message         string
	HasMessage      bool
	RepetitionCount uint32
	Additional      []ArgValue
	Meta            []MetaEntry
	Stack           []string
	ErrorChain      []string
	IsRaw           bool
}

// NewRecord constructs a LogRecord at ts, resolving level from typeName
// through reg (falling back to LOG for unknown types, per spec.md §4.1's
// invariant: level is always registry.lookup(type_name).unwrap_or(LOG)).
func NewRecord(reg *Registry, ts time.Time, typeName string, tag string, hasTag bool, args []ArgValue) *LogRecord {
	level, ok := reg.LevelFor(typeName)
	if !ok {
		level = LOG
	}
	msg, hasMsg := buildMessage(args)
	return &LogRecord{
		Timestamp:  ts,
		Level:      level,
		TypeName:   typeName,
		Tag:        tag,
		HasTag:     hasTag,
		Args:       args,
		Message:    msg,
		HasMessage: hasMsg,
	}
}

// NewRawRecord constructs a raw LogRecord: its message is pre-composed and
// never re-derived from args (which are always empty for a raw record).
func NewRawRecord(reg *Registry, ts time.Time, typeName string, tag string, hasTag bool, message string) *LogRecord {
	level, ok := reg.LevelFor(typeName)
	if !ok {
		level = LOG
	}
	return &LogRecord{
		Timestamp:  ts,
		Level:      level,
		TypeName:   typeName,
		Tag:        tag,
		HasTag:     hasTag,
		Message:    message,
		HasMessage: true,
		IsRaw:      true,
	}
}

// RecordDefaults holds optional tag/additional/meta values merged into
// records at emission time.
type RecordDefaults struct {
	Tag        string
	HasTag     bool
	Additional []ArgValue
	Meta       []MetaEntry
}

// ApplyDefaults merges d into r in place, following spec.md §3's merge
// rule: record values win on conflict; additional defaults are prepended;
// meta keys from defaults are added only if r does not already supply them.
func (d *RecordDefaults) ApplyDefaults(r *LogRecord) {
	if d == nil {
		return
	}
	if !r.HasTag && d.HasTag {
		r.Tag = d.Tag
		r.HasTag = true
	}
	if len(d.Additional) > 0 {
		merged := make([]ArgValue, 0, len(d.Additional)+len(r.Additional))
		merged = append(merged, d.Additional...)
		merged = append(merged, r.Additional...)
		r.Additional = merged
	}
	if len(d.Meta) > 0 {
		have := make(map[string]struct{}, len(r.Meta))
		for _, m := range r.Meta {
			have[m.Key] = struct{}{}
		}
		for _, m := range d.Meta {
			if _, ok := have[m.Key]; ok {
				continue
			}
			r.Meta = append(r.Meta, m)
			have[m.Key] = struct{}{}
		}
	}
}

// MergeMeta appends extra to r.Meta, enforcing uniqueness by key at merge
// time only: earlier entries (including duplicates accumulated before this
// call) are left untouched, and any key in extra already present in r.Meta
// is dropped rather than overwriting the existing entry.
func (r *LogRecord) MergeMeta(extra []MetaEntry) {
	if len(extra) == 0 {
		return
	}
	have := make(map[string]struct{}, len(r.Meta))
	for _, m := range r.Meta {
		have[m.Key] = struct{}{}
	}
	for _, m := range extra {
		if _, ok := have[m.Key]; ok {
			continue
		}
		r.Meta = append(r.Meta, m)
		have[m.Key] = struct{}{}
	}
}

// clone returns a deep-enough copy of r suitable for the throttler's stored
// aggregation slot: the slice fields are reused (records are never mutated
// through them after storage) but RepetitionCount is independent.
func (r *LogRecord) clone() *LogRecord {
	cp := *r
	return &cp
}
