package consola

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type causeErr struct {
	msg   string
	cause error
}

func (e *causeErr) Error() string { return e.msg }
func (e *causeErr) Cause() error  { return e.cause }

func TestWalkErrorChainStdlibWrap(t *testing.T) {
	root := errors.New("disk full")
	wrapped := fmt.Errorf("write failed: %w", root)
	top := fmt.Errorf("save failed: %w", wrapped)

	chain := WalkErrorChain(top)
	assert.Equal(t, []string{top.Error(), wrapped.Error(), root.Error()}, chain)
}

func TestWalkErrorChainCauser(t *testing.T) {
	root := &causeErr{msg: "root"}
	mid := &causeErr{msg: "mid", cause: root}
	top := &causeErr{msg: "top", cause: mid}

	chain := WalkErrorChain(top)
	assert.Equal(t, []string{"top", "mid", "root"}, chain)
}

func TestWalkErrorChainCycleProtected(t *testing.T) {
	a := &causeErr{msg: "a"}
	b := &causeErr{msg: "b", cause: a}
	a.cause = b // legal but cyclic chain

	chain := WalkErrorChain(a)
	assert.NotEmpty(t, chain)
	assert.Less(t, len(chain), 10, "cycle guard must terminate the walk")
}

func TestWalkErrorChainNil(t *testing.T) {
	assert.Nil(t, WalkErrorChain(nil))
}

func TestWalkErrorChainNoDuplicateIdentity(t *testing.T) {
	shared := &causeErr{msg: "shared"}
	top := &causeErr{msg: "top", cause: shared}

	chain := WalkErrorChain(top)
	seen := make(map[string]int)
	for _, msg := range chain {
		seen[msg]++
	}
	for msg, count := range seen {
		assert.LessOrEqualf(t, count, 1, "message %q appeared more than once", msg)
	}
}
