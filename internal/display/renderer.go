// Package display writes braille cell patterns to the actuator bank.
package display

import (
	"fmt"
	"time"

	"github.com/tactileworks/brailletutor/internal/actuator"
	"github.com/tactileworks/brailletutor/internal/braille"
)

// Renderer drives all six dot channels to match one letter's pattern and
// waits out the mechanical settle time before returning.
type Renderer struct {
	channels [braille.NumDots]actuator.Channel
	settle   time.Duration
	sleep    func(time.Duration)
}

// NewRenderer binds the six channels, in dot order 1..6. settle is the fixed
// time the servos need to reach a commanded position (calibration data, not
// a measured signal).
func NewRenderer(channels [braille.NumDots]actuator.Channel, settle time.Duration) *Renderer {
	return &Renderer{channels: channels, settle: settle, sleep: time.Sleep}
}

// Render raises the dots of the letter's pattern and lowers the rest. The
// six writes are independent; their order carries no meaning.
func (r *Renderer) Render(letter int) error {
	p, err := braille.PatternFor(letter)
	if err != nil {
		return err
	}
	return r.apply(p)
}

// Clear lowers all six dots. Run before every letter so a pattern never
// appears to slide into the next one without passing through neutral.
func (r *Renderer) Clear() error {
	return r.apply(0)
}

func (r *Renderer) apply(p braille.Pattern) error {
	for n := 1; n <= braille.NumDots; n++ {
		if err := r.channels[n-1].Set(p.Has(braille.Dot(n))); err != nil {
			return fmt.Errorf("display: dot %d: %w", n, err)
		}
	}
	r.sleep(r.settle)
	return nil
}
