package consola

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgValueDisplayIsDeterministic(t *testing.T) {
	cases := []struct {
		val  ArgValue
		want string
	}{
		{String("hello"), "hello"},
		{Number(3.14), "3.14"},
		{Bool(true), "true"},
		{Err(errors.New("boom")), "boom"},
		{Debug("Foo{bar: 1}"), "Foo{bar: 1}"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.val.Display())
		assert.Equal(t, c.want, c.val.Display(), "Display must be stable across repeated calls")
	}
}

func TestErrNilProducesEmptyMessage(t *testing.T) {
	assert.Equal(t, "", Err(nil).Display())
}

func TestBuildMessageSpaceJoinsArgs(t *testing.T) {
	msg, ok := buildMessage([]ArgValue{String("a"), Number(2), Bool(false)})
	assert.True(t, ok)
	assert.Equal(t, "a 2 false", msg)
}

func TestBuildMessageEmptyArgsYieldsNone(t *testing.T) {
	_, ok := buildMessage(nil)
	assert.False(t, ok)
}

func TestNumericConversions(t *testing.T) {
	assert.Equal(t, Number(5), FromInt64(5))
	assert.Equal(t, Number(5), FromUint64(5))
}
