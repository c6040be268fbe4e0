// Package config loads the unit's deployment configuration: pin wiring,
// per-dot servo calibration, audio port, and the timing constants.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Buttons struct {
	NextPin    string `yaml:"next_pin"`
	PrevPin    string `yaml:"prev_pin"`
	DebounceMs int    `yaml:"debounce_ms"`
}

type Dot struct {
	Channel    int `yaml:"channel"`
	RaisedDeg  int `yaml:"raised_deg"`
	LoweredDeg int `yaml:"lowered_deg"`
}

type Servo struct {
	I2CBus    string `yaml:"i2c_bus"` // empty = first available bus
	I2CAddr   uint16 `yaml:"i2c_addr"`
	PwmFreqHz int    `yaml:"pwm_freq_hz"`
	Dots      []Dot  `yaml:"dots"` // exactly 6, in dot order 1..6
}

type Audio struct {
	Port       string `yaml:"port"`
	Baud       int    `yaml:"baud"`
	Volume     int    `yaml:"volume"`
	IntroTrack int    `yaml:"intro_track"`
}

// Timing holds the assumed durations. These are calibration data, not
// timing guarantees: nothing measures whether a servo settled or a track
// finished playing.
type Timing struct {
	SettleMs int `yaml:"settle_ms"`
	HoldMs   int `yaml:"hold_ms"`
	IntroMs  int `yaml:"intro_ms"`
	PollMs   int `yaml:"poll_ms"`
}

type Config struct {
	Buttons Buttons `yaml:"buttons"`
	Servo   Servo   `yaml:"servo"`
	Audio   Audio   `yaml:"audio"`
	Timing  Timing  `yaml:"timing"`
}

// Default returns the configuration of the reference unit. The servo angles
// are per-unit calibration and will differ on any other build.
func Default() *Config {
	return &Config{
		Buttons: Buttons{
			NextPin:    "GPIO23",
			PrevPin:    "GPIO24",
			DebounceMs: 250,
		},
		Servo: Servo{
			I2CAddr:   0x40,
			PwmFreqHz: 50,
			Dots: []Dot{
				{Channel: 0, RaisedDeg: 35, LoweredDeg: 80},
				{Channel: 1, RaisedDeg: 38, LoweredDeg: 82},
				{Channel: 2, RaisedDeg: 33, LoweredDeg: 79},
				{Channel: 3, RaisedDeg: 36, LoweredDeg: 81},
				{Channel: 4, RaisedDeg: 34, LoweredDeg: 80},
				{Channel: 5, RaisedDeg: 37, LoweredDeg: 83},
			},
		},
		Audio: Audio{
			Port:       "/dev/ttyAMA0",
			Baud:       9600,
			Volume:     22,
			IntroTrack: 27,
		},
		Timing: Timing{
			SettleMs: 500,
			HoldMs:   2000,
			IntroMs:  3000,
			PollMs:   10,
		},
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func (t Timing) Settle() time.Duration { return time.Duration(t.SettleMs) * time.Millisecond }
func (t Timing) Hold() time.Duration   { return time.Duration(t.HoldMs) * time.Millisecond }
func (t Timing) Intro() time.Duration  { return time.Duration(t.IntroMs) * time.Millisecond }
func (t Timing) Poll() time.Duration   { return time.Duration(t.PollMs) * time.Millisecond }

func (b Buttons) Debounce() time.Duration { return time.Duration(b.DebounceMs) * time.Millisecond }
