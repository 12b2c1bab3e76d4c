// Package hal declares the peripheral surface the programs drive, and
// provides virtual implementations of it for the simulator and tests.
// TinyGo implementations backed by the machine package live in board.
package hal

// Output is a digital output pin.
type Output interface {
	Set(high bool)
}

// Enabler connects or disconnects a group of outputs from their pins.
type Enabler interface {
	SetEnabled(enabled bool)
}

// Analog is an ADC channel returning 12-bit samples (0..4095).
type Analog interface {
	Get() uint16
}

// Dimmer is a PWM channel. Level runs from 0 (off) to the configured period.
type Dimmer interface {
	Set(level uint16)
}

// ADCMax is the largest 12-bit sample.
const ADCMax = 1<<12 - 1
