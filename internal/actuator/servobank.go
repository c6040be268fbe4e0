package actuator

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/pca9685"

	"github.com/tactileworks/brailletutor/internal/braille"
)

// Duty counts spanning the usual 1-2ms hobby servo pulse at 50Hz on the
// PCA9685's 12-bit counter.
const (
	servoMinDuty gpio.Duty = 50
	servoMaxDuty gpio.Duty = 650
)

// ServoBank holds the six dot servos behind one PCA9685 PWM controller.
type ServoBank struct {
	dev    *pca9685.Dev
	servos [braille.NumDots]*pca9685.Servo
	cal    [braille.NumDots]DotCalibration
}

// NewServoBank opens the PCA9685 at addr on bus, programs the servo PWM
// frequency and binds one servo per dot. cal must have exactly one entry per
// dot, in dot order 1..6.
func NewServoBank(bus i2c.Bus, addr uint16, freq physic.Frequency, cal []DotCalibration) (*ServoBank, error) {
	if len(cal) != braille.NumDots {
		return nil, fmt.Errorf("actuator: need %d dot calibrations, got %d", braille.NumDots, len(cal))
	}

	dev, err := pca9685.NewI2C(bus, addr)
	if err != nil {
		return nil, fmt.Errorf("actuator: pca9685 init: %w", err)
	}
	if err := dev.SetPwmFreq(freq); err != nil {
		return nil, fmt.Errorf("actuator: pwm freq: %w", err)
	}

	group := pca9685.NewServoGroup(dev, servoMinDuty, servoMaxDuty, 0, 180*physic.Degree)

	b := &ServoBank{dev: dev}
	for i, c := range cal {
		b.servos[i] = group.GetServo(c.Channel)
		b.cal[i] = c
	}
	return b, nil
}

// Channel returns the actuator for dot 1..6.
func (b *ServoBank) Channel(dot int) Channel {
	return &servoChannel{
		servo: b.servos[dot-1],
		cal:   b.cal[dot-1],
	}
}

type servoChannel struct {
	servo *pca9685.Servo
	cal   DotCalibration
}

func (s *servoChannel) Set(raised bool) error {
	deg := s.cal.LoweredDeg
	if raised {
		deg = s.cal.RaisedDeg
	}
	if err := s.servo.SetAngle(physic.Angle(deg) * physic.Degree); err != nil {
		return fmt.Errorf("actuator: channel %d set angle %d°: %w", s.cal.Channel, deg, err)
	}
	return nil
}
