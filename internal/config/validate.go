package config

import "fmt"

const (
	numDots     = 6
	maxVolume   = 30
	pcaChannels = 16
)

// Validate checks configuration correctness. Declarative checks only; it
// must not mutate the configuration.
func Validate(cfg *Config) error {
	if cfg.Buttons.NextPin == "" || cfg.Buttons.PrevPin == "" {
		return fmt.Errorf("buttons: next_pin and prev_pin are required")
	}
	if cfg.Buttons.NextPin == cfg.Buttons.PrevPin {
		return fmt.Errorf("buttons: next_pin and prev_pin both wired to %q", cfg.Buttons.NextPin)
	}
	if cfg.Buttons.DebounceMs <= 0 {
		return fmt.Errorf("buttons: debounce_ms must be positive, got %d", cfg.Buttons.DebounceMs)
	}

	if n := len(cfg.Servo.Dots); n != numDots {
		return fmt.Errorf("servo: need exactly %d dots, got %d", numDots, n)
	}
	seen := make(map[int]int) // pca channel -> dot number
	for i, d := range cfg.Servo.Dots {
		dot := i + 1
		if d.Channel < 0 || d.Channel >= pcaChannels {
			return fmt.Errorf("servo: dot %d channel %d outside [0,%d)", dot, d.Channel, pcaChannels)
		}
		if prev, dup := seen[d.Channel]; dup {
			return fmt.Errorf("servo: dots %d and %d share channel %d", prev, dot, d.Channel)
		}
		seen[d.Channel] = dot
		if d.RaisedDeg < 0 || d.RaisedDeg > 180 || d.LoweredDeg < 0 || d.LoweredDeg > 180 {
			return fmt.Errorf("servo: dot %d angles must be within [0,180]", dot)
		}
		if d.RaisedDeg == d.LoweredDeg {
			return fmt.Errorf("servo: dot %d raised and lowered positions are both %d°", dot, d.RaisedDeg)
		}
	}
	if cfg.Servo.PwmFreqHz <= 0 {
		return fmt.Errorf("servo: pwm_freq_hz must be positive, got %d", cfg.Servo.PwmFreqHz)
	}

	if cfg.Audio.Port == "" {
		return fmt.Errorf("audio: port is required")
	}
	if cfg.Audio.Baud <= 0 {
		return fmt.Errorf("audio: baud must be positive, got %d", cfg.Audio.Baud)
	}
	if cfg.Audio.Volume < 0 || cfg.Audio.Volume > maxVolume {
		return fmt.Errorf("audio: volume %d outside [0,%d]", cfg.Audio.Volume, maxVolume)
	}
	if cfg.Audio.IntroTrack < 1 {
		return fmt.Errorf("audio: intro_track must be positive, got %d", cfg.Audio.IntroTrack)
	}

	for _, v := range []struct {
		name string
		ms   int
	}{
		{"settle_ms", cfg.Timing.SettleMs},
		{"hold_ms", cfg.Timing.HoldMs},
		{"intro_ms", cfg.Timing.IntroMs},
		{"poll_ms", cfg.Timing.PollMs},
	} {
		if v.ms <= 0 {
			return fmt.Errorf("timing: %s must be positive, got %d", v.name, v.ms)
		}
	}

	return nil
}
