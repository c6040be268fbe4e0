package config

import "testing"

func TestValidate_DefaultIsValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"missing next pin", func(c *Config) { c.Buttons.NextPin = "" }},
		{"missing prev pin", func(c *Config) { c.Buttons.PrevPin = "" }},
		{"shared button pin", func(c *Config) { c.Buttons.PrevPin = c.Buttons.NextPin }},
		{"zero debounce", func(c *Config) { c.Buttons.DebounceMs = 0 }},
		{"negative debounce", func(c *Config) { c.Buttons.DebounceMs = -5 }},
		{"too few dots", func(c *Config) { c.Servo.Dots = c.Servo.Dots[:5] }},
		{"too many dots", func(c *Config) { c.Servo.Dots = append(c.Servo.Dots, Dot{Channel: 7}) }},
		{"duplicate pca channel", func(c *Config) { c.Servo.Dots[5].Channel = c.Servo.Dots[0].Channel }},
		{"channel out of range", func(c *Config) { c.Servo.Dots[2].Channel = 16 }},
		{"negative channel", func(c *Config) { c.Servo.Dots[2].Channel = -1 }},
		{"angle over 180", func(c *Config) { c.Servo.Dots[1].RaisedDeg = 181 }},
		{"equal positions", func(c *Config) { c.Servo.Dots[4].RaisedDeg = c.Servo.Dots[4].LoweredDeg }},
		{"zero pwm freq", func(c *Config) { c.Servo.PwmFreqHz = 0 }},
		{"missing audio port", func(c *Config) { c.Audio.Port = "" }},
		{"zero baud", func(c *Config) { c.Audio.Baud = 0 }},
		{"volume too high", func(c *Config) { c.Audio.Volume = 31 }},
		{"negative volume", func(c *Config) { c.Audio.Volume = -1 }},
		{"zero intro track", func(c *Config) { c.Audio.IntroTrack = 0 }},
		{"zero settle", func(c *Config) { c.Timing.SettleMs = 0 }},
		{"zero hold", func(c *Config) { c.Timing.HoldMs = 0 }},
		{"zero intro wait", func(c *Config) { c.Timing.IntroMs = 0 }},
		{"zero poll", func(c *Config) { c.Timing.PollMs = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			if err := Validate(c); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
