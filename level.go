package consola

import (
	"strconv"
	"sync"
)

// LogLevel is a signed severity: lower is more severe. Unknown numeric
// levels are valid and comparable with the well-known constants below.
type LogLevel int16

// Well-known levels, per the built-in type table.
const (
	SILENT  LogLevel = -99
	FATAL   LogLevel = 0
	ERROR   LogLevel = 1
	WARN    LogLevel = 2
	LOG     LogLevel = 3
	INFO    LogLevel = 4
	SUCCESS LogLevel = 5
	DEBUG   LogLevel = 6
	TRACE   LogLevel = 7
	VERBOSE LogLevel = 99
)

// TypeSpec binds a type name to the level it logs at.
type TypeSpec struct {
	Level LogLevel
}

type typeEntry struct {
	name string
	spec TypeSpec
}

// Registry is a process-wide, read-mostly mapping from type name to
// TypeSpec. Iteration order follows insertion order. Registry is safe for
// concurrent readers and infrequent writers: readers take a shared lock,
// writers an exclusive one, and registration never panics a concurrent
// reader, even mid-write.
type Registry struct {
	mu      sync.RWMutex
	entries []typeEntry
	index   map[string]int
}

// builtinLevels is the base table every Registry is bootstrapped with,
// including the alias entries (fail, ready, start, box) that share a level
// with a differently-named built-in type.
var builtinLevels = []typeEntry{
	{"silent", TypeSpec{SILENT}},
	{"fatal", TypeSpec{FATAL}},
	{"error", TypeSpec{ERROR}},
	{"warn", TypeSpec{WARN}},
	{"log", TypeSpec{LOG}},
	{"info", TypeSpec{INFO}},
	{"success", TypeSpec{SUCCESS}},
	{"fail", TypeSpec{SUCCESS}},
	{"ready", TypeSpec{INFO}},
	{"start", TypeSpec{LOG}},
	{"box", TypeSpec{LOG}},
	{"debug", TypeSpec{DEBUG}},
	{"trace", TypeSpec{TRACE}},
	{"verbose", TypeSpec{VERBOSE}},
}

// NewRegistry returns a Registry pre-populated with the built-in levels and
// aliases.
func NewRegistry() *Registry {
	r := &Registry{
		entries: make([]typeEntry, len(builtinLevels)),
		index:   make(map[string]int, len(builtinLevels)),
	}
	copy(r.entries, builtinLevels)
	for i, e := range r.entries {
		r.index[e.name] = i
	}
	return r
}

// Register inserts or overwrites the TypeSpec bound to name. Registration is
// last-writer-wins under concurrent writes.
func (r *Registry) Register(name string, spec TypeSpec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.index[name]; ok {
		r.entries[i].spec = spec
		return
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, typeEntry{name, spec})
}

// LevelFor returns the level registered for name, and whether name is known.
func (r *Registry) LevelFor(name string) (LogLevel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[name]
	if !ok {
		return 0, false
	}
	return r.entries[i].spec.Level, true
}

// Normalize resolves input as a LogLevel: a signed integer is wrapped
// directly, otherwise input is looked up as a type name. It returns false
// when input is neither.
func (r *Registry) Normalize(input string) (LogLevel, bool) {
	if n, err := strconv.ParseInt(input, 10, 16); err == nil {
		return LogLevel(n), true
	}
	return r.LevelFor(input)
}

// defaultRegistry is the process-wide registry used by loggers that do not
// supply their own, mirroring the global table the original implementation
// keeps for call-site ergonomics.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide Registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
