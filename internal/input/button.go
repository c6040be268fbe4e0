// Package input turns raw button edges into debounced, at-most-once-per-poll
// logical press events.
package input

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// edgePoll bounds WaitForEdge so the watch goroutine can notice a cancelled
// context.
const edgePoll = 500 * time.Millisecond

// Button debounces one active-low momentary switch. The edge handler runs on
// the watch goroutine and only filters and flags; all consumption happens on
// the control loop. Single producer, single consumer, so the two atomics are
// the whole synchronization story.
type Button struct {
	name   string
	pin    gpio.PinIO
	window time.Duration

	pending      atomic.Bool
	lastAccepted atomic.Int64 // unix nanos of the last accepted edge
}

// NewButton configures pin as a pulled-up input triggering on falling edges
// (the switch shorts the line to ground on press).
func NewButton(name string, pin gpio.PinIO, window time.Duration) (*Button, error) {
	if err := pin.In(gpio.PullUp, gpio.FallingEdge); err != nil {
		return nil, fmt.Errorf("input: %s on %s: %w", name, pin, err)
	}
	return &Button{name: name, pin: pin, window: window}, nil
}

// NewSoftButton returns a button with no hardware edge source; callers feed
// it edges through Trigger. Used by simulation mode.
func NewSoftButton(name string, window time.Duration) *Button {
	return &Button{name: name, window: window}
}

// Watch blocks on hardware edges until ctx is cancelled. Run it on its own
// goroutine, one per button.
func (b *Button) Watch(ctx context.Context) {
	for ctx.Err() == nil {
		if b.pin.WaitForEdge(edgePoll) {
			b.Trigger(time.Now())
		}
	}
}

// Trigger is the edge handler: accept the edge if it falls outside the
// debounce window of the previous accepted edge, otherwise drop it as bounce.
// Non-blocking, no locks.
func (b *Button) Trigger(now time.Time) {
	last := b.lastAccepted.Load()
	if now.UnixNano()-last <= b.window.Nanoseconds() {
		return
	}
	b.lastAccepted.Store(now.UnixNano())
	b.pending.Store(true)
}

// take atomically reads and clears the pending flag.
func (b *Button) take() bool { return b.pending.Swap(false) }

// Pair is the NEXT/PREV button set polled by the control loop.
type Pair struct {
	Next *Button
	Prev *Button
}

// Consume drains both pending flags in one snapshot and reports which
// buttons were pressed since the previous poll. At most one event per button
// per call; flags left set between polls are deferred presses, never lost.
func (p *Pair) Consume() (next, prev bool) {
	return p.Next.take(), p.Prev.take()
}
