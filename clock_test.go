package consola

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMockClockAdvanceIsDeterministic(t *testing.T) {
	c := NewMockClock()
	t0 := c.Now()
	c.Advance(10 * time.Millisecond)
	t1 := c.Now()
	assert.Equal(t, 10*time.Millisecond, t1.Sub(t0))

	c.Advance(5 * time.Millisecond)
	t2 := c.Now()
	assert.Equal(t, 15*time.Millisecond, t2.Sub(t0))
}

func TestMockClockNeverReadsWallClockOnNow(t *testing.T) {
	c := NewMockClock()
	a := c.Now()
	time.Sleep(2 * time.Millisecond)
	b := c.Now()
	assert.True(t, a.Equal(b), "Now must be pure given no Advance call")
}
