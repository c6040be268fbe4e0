// Package tutor owns the letter navigation state machine: one current
// letter, circular NEXT/PREV stepping, and the display-hold window that
// defers input while the user reads the cell.
package tutor

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tactileworks/brailletutor/internal/braille"
)

// Renderer is the slice of the display layer the machine drives.
type Renderer interface {
	Render(letter int) error
	Clear() error
}

// Player is the slice of the audio layer the machine drives. The track
// index passed to Play always equals the letter index being shown.
type Player interface {
	Play(track int) error
}

// Inputs drains the debounced button flags, both in one snapshot.
type Inputs interface {
	Consume() (next, prev bool)
}

// State of the machine. There are exactly two: no pause, error or off state
// exists; a fatal audio failure halts the program before the machine starts.
type State int

const (
	// Displaying locks input out while the hold timer runs.
	Displaying State = iota
	// Ready accepts pending button events.
	Ready
)

// Config carries the machine's timing. All of it is calibration data:
// assumed durations, not measured signals.
type Config struct {
	// Hold is how long a letter stays locked on the cell after a
	// transition before input is accepted again.
	Hold time.Duration
	// Intro is the assumed length of the introduction track.
	Intro time.Duration
	// IntroTrack is the track index of the spoken introduction.
	IntroTrack int
	// Poll is the cooperative loop tick.
	Poll time.Duration
}

// Machine steps through the alphabet. All state is owned by the loop
// goroutine; the only cross-goroutine traffic is the debounced flag pair
// behind Inputs.
type Machine struct {
	renderer Renderer
	audio    Player
	inputs   Inputs
	cfg      Config

	current    int
	state      State
	lastAction time.Time

	sleep func(time.Duration)
}

// New builds a machine starting at letter 1 (A). Nothing moves until
// Startup runs.
func New(r Renderer, a Player, in Inputs, cfg Config) *Machine {
	return &Machine{
		renderer: r,
		audio:    a,
		inputs:   in,
		cfg:      cfg,
		current:  1,
		state:    Displaying,
		sleep:    time.Sleep,
	}
}

// Current returns the letter being shown, 1..26.
func (m *Machine) Current() int { return m.current }

// State returns the machine state.
func (m *Machine) State() State { return m.state }

// Startup runs the fixed boot sequence: clear the cell, play the
// introduction, wait out its assumed duration, then show letter 1 and enter
// the display hold.
func (m *Machine) Startup(now time.Time) error {
	if err := m.renderer.Clear(); err != nil {
		return err
	}
	if err := m.audio.Play(m.cfg.IntroTrack); err != nil {
		return err
	}
	log.Info().Int("track", m.cfg.IntroTrack).Msg("playing introduction")
	m.sleep(m.cfg.Intro)
	// The hold window starts when letter A lands, after the intro wait.
	return m.show(now.Add(m.cfg.Intro))
}

// Step is one cooperative poll. While Displaying it only watches the hold
// timer; pending presses stay flagged in the input layer, deferred rather
// than dropped. Once Ready it drains both flags in a single snapshot and
// applies NEXT then PREV sequentially, PREV against the already-advanced
// letter, so a simultaneous double-press nets out to no change.
func (m *Machine) Step(now time.Time) error {
	if m.state == Displaying {
		if now.Sub(m.lastAction) < m.cfg.Hold {
			return nil
		}
		m.state = Ready
	}

	next, prev := m.inputs.Consume()

	var firstErr error
	if next {
		m.advance(1)
		if err := m.show(now); err != nil {
			firstErr = err
		}
	}
	if prev {
		m.advance(-1)
		if err := m.show(now); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Run drives Step on a fixed tick until ctx is cancelled. The loop never
// blocks longer than the renderer's settle and the hold window; there is no
// other work to yield to.
func (m *Machine) Run(ctx context.Context) error {
	tick := time.NewTicker(m.cfg.Poll)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
			if err := m.Step(time.Now()); err != nil {
				// Transient transport faults; the next transition
				// rewrites every channel anyway.
				log.Error().Err(err).Msg("transition failed")
			}
		}
	}
}

// advance moves the current letter by delta with wraparound, never a clamp.
func (m *Machine) advance(delta int) {
	m.current += delta
	if m.current > 26 {
		m.current = 1
	}
	if m.current < 1 {
		m.current = 26
	}
}

// show is the single transition path: neutral cell, new pattern, audio,
// log line, then start the hold window.
func (m *Machine) show(now time.Time) error {
	if err := m.renderer.Clear(); err != nil {
		return err
	}
	if err := m.renderer.Render(m.current); err != nil {
		return err
	}
	if err := m.audio.Play(m.current); err != nil {
		return err
	}

	p, _ := braille.PatternFor(m.current)
	log.Info().
		Str("letter", braille.Letter(m.current)).
		Int("track", m.current).
		Str("cell", p.String()).
		Msg("showing letter")

	m.lastAction = now
	m.state = Displaying
	return nil
}
