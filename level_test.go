package consola

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinLevelOrdering(t *testing.T) {
	levels := []LogLevel{SILENT, FATAL, ERROR, WARN, LOG, INFO, SUCCESS, DEBUG, TRACE, VERBOSE}
	for i := 1; i < len(levels); i++ {
		assert.Less(t, levels[i-1], levels[i], "levels must be strictly increasing")
	}
}

func TestRegistryNormalize(t *testing.T) {
	r := NewRegistry()

	level, ok := r.Normalize("info")
	require.True(t, ok)
	assert.Equal(t, INFO, level)

	level, ok = r.Normalize("4")
	require.True(t, ok)
	assert.Equal(t, LogLevel(4), level)

	_, ok = r.Normalize("bogus")
	assert.False(t, ok)
}

func TestRegistryAliases(t *testing.T) {
	r := NewRegistry()

	cases := map[string]LogLevel{
		"fail":  SUCCESS,
		"ready": INFO,
		"start": LOG,
		"box":   LOG,
	}
	for name, want := range cases {
		got, ok := r.LevelFor(name)
		require.Truef(t, ok, "alias %q should be registered", name)
		assert.Equalf(t, want, got, "alias %q", name)
	}
}

func TestRegistryRegisterOverwrites(t *testing.T) {
	r := NewRegistry()
	r.Register("custom", TypeSpec{Level: LogLevel(42)})
	got, ok := r.LevelFor("custom")
	require.True(t, ok)
	assert.Equal(t, LogLevel(42), got)

	r.Register("custom", TypeSpec{Level: LogLevel(7)})
	got, ok = r.LevelFor("custom")
	require.True(t, ok)
	assert.Equal(t, LogLevel(7), got)
}

func TestRegistryUnknownLookup(t *testing.T) {
	r := NewRegistry()
	_, ok := r.LevelFor("nonexistent")
	assert.False(t, ok)
}

func TestSilentNeverPassesExceptSilent(t *testing.T) {
	assert.True(t, passesFilter(SILENT, SILENT))
	assert.False(t, passesFilter(SILENT, VERBOSE))
	assert.False(t, passesFilter(SILENT, INFO))
}

func TestConcurrentRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			r.Register("race", TypeSpec{Level: LogLevel(i % 10)})
		}
		close(done)
	}()
	for i := 0; i < 1000; i++ {
		_, _ = r.LevelFor("race")
	}
	<-done
}
