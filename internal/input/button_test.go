package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

const window = 250 * time.Millisecond

func testButton(t *testing.T, name string) *Button {
	t.Helper()
	pin := &gpiotest.Pin{N: name, EdgesChan: make(chan gpio.Level)}
	b, err := NewButton(name, pin, window)
	require.NoError(t, err)
	return b
}

func TestDebounceDropsFastSecondEdge(t *testing.T) {
	b := testButton(t, "next")
	base := time.Now()

	b.Trigger(base)
	b.Trigger(base.Add(100 * time.Millisecond)) // bounce

	assert.True(t, b.take(), "first edge should register")
	assert.False(t, b.take(), "bounce edge must be dropped")
}

func TestDebouncePassesSlowSecondEdge(t *testing.T) {
	b := testButton(t, "next")
	base := time.Now()

	b.Trigger(base)
	assert.True(t, b.take())

	b.Trigger(base.Add(300 * time.Millisecond))
	assert.True(t, b.take(), "edge outside the window is a real press")
}

func TestPendingFlagHeldUntilConsumed(t *testing.T) {
	b := testButton(t, "prev")
	b.Trigger(time.Now())

	// Unconsumed presses stay pending across any number of idle polls.
	assert.True(t, b.pending.Load())
	assert.True(t, b.take())
	assert.False(t, b.take())
}

func TestPairConsumeSnapshotsBothButtons(t *testing.T) {
	p := &Pair{Next: testButton(t, "next"), Prev: testButton(t, "prev")}
	now := time.Now()

	p.Next.Trigger(now)
	p.Prev.Trigger(now)

	next, prev := p.Consume()
	assert.True(t, next)
	assert.True(t, prev)

	next, prev = p.Consume()
	assert.False(t, next)
	assert.False(t, prev)
}

func TestWindowIsPerButton(t *testing.T) {
	p := &Pair{Next: testButton(t, "next"), Prev: testButton(t, "prev")}
	base := time.Now()

	// A press on NEXT must not open or close PREV's window.
	p.Next.Trigger(base)
	p.Prev.Trigger(base.Add(50 * time.Millisecond))

	next, prev := p.Consume()
	assert.True(t, next)
	assert.True(t, prev)
}
