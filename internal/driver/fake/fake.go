// Package fake provides headless stand-ins for the actuator bank and the
// audio module, used by -sim mode and tests.
package fake

import (
	"fmt"

	"github.com/tactileworks/brailletutor/internal/actuator"
	"github.com/tactileworks/brailletutor/internal/braille"
)

// Bank mimics the six-dot servo bank, keeping the commanded state in memory.
// When dot 6 is written it prints the cell, which lines up with the renderer
// finishing a frame since it writes dots in order.
type Bank struct {
	states [braille.NumDots]bool
	frames int
	Quiet  bool
}

// NewBank returns an all-lowered bank.
func NewBank() *Bank { return &Bank{} }

// Channel returns the fake actuator for dot 1..6.
func (b *Bank) Channel(dot int) actuator.Channel {
	return &channel{bank: b, dot: dot}
}

// Snapshot returns the current raised/lowered state per dot.
func (b *Bank) Snapshot() [braille.NumDots]bool { return b.states }

// Diagram renders the cell in the standard 2x3 layout, raised dots as "o".
func (b *Bank) Diagram() string {
	mark := func(i int) byte {
		if b.states[i] {
			return 'o'
		}
		return '.'
	}
	// Dot columns: 1-4 / 2-5 / 3-6.
	return fmt.Sprintf("%c %c | %c %c | %c %c",
		mark(0), mark(3), mark(1), mark(4), mark(2), mark(5))
}

type channel struct {
	bank *Bank
	dot  int
}

func (c *channel) Set(raised bool) error {
	c.bank.states[c.dot-1] = raised
	if c.dot == braille.NumDots && !c.bank.Quiet {
		c.bank.frames++
		fmt.Printf("[cell %04d] %s\n", c.bank.frames, c.bank.Diagram())
	}
	return nil
}

// Audio records playback requests instead of talking to a module.
type Audio struct {
	Played []int
	Volume int
	Quiet  bool
}

// NewAudio returns a silent recorder.
func NewAudio() *Audio { return &Audio{Volume: -1} }

func (a *Audio) Play(track int) error {
	a.Played = append(a.Played, track)
	if !a.Quiet {
		fmt.Printf("[audio] play track %d\n", track)
	}
	return nil
}

func (a *Audio) SetVolume(level int) error {
	a.Volume = level
	return nil
}
