// Package actuator drives the six tactile dot pins of the braille cell.
package actuator

// Channel moves one physical dot to one of its two calibrated positions.
// A stuck or disconnected actuator is not detectable from software; Set
// reports only transport errors (a failed bus write), never mechanical ones.
type Channel interface {
	Set(raised bool) error
}

// DotCalibration holds the per-unit positions for one dot. The angles are
// measured on the assembled unit and are not derivable from a formula.
type DotCalibration struct {
	// Channel is the PWM output the dot's servo is wired to.
	Channel int
	// RaisedDeg and LoweredDeg are the servo angles, in degrees, at which
	// the pin sits flush-up and flush-down.
	RaisedDeg  int
	LoweredDeg int
}
