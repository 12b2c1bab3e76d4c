// Package board wires the programs to the BitDogLab peripherals: pin
// assignments, build-time configuration and the TinyGo drivers.
//
// Configuration is fixed at build time. The variables below can be set
// through linker flags, for example:
//
//	tinygo flash -target=pico \
//	  -ldflags "-X github.com/harveysanders/bitdoglab/board.logLevel=debug" ./joydimmer
package board

import (
	"io"
	"log/slog"
	"time"

	"github.com/harveysanders/bitdoglab/control"
)

// Pin assignments (GPIO numbers).
const (
	ButtonAPin        = 5
	ButtonBPin        = 6
	MatrixPin         = 7
	GreenLEDPin       = 11
	BlueLEDPin        = 12
	RedLEDPin         = 13
	I2CSDAPin         = 14
	I2CSCLPin         = 15
	JoystickButtonPin = 22
)

// I2CFrequency is the OLED bus clock.
const I2CFrequency = 400_000

// PWMFrequency is the carrier of the dimmed LEDs.
const PWMFrequency = 1000

var (
	logLevel          string // debug, info, warn or error. Defaults to info.
	sharedDebounce    string // "true" to debounce both buttons with one timestamp.
	legacyFallthrough string // "true" to make BUTTON_A also act as the joystick button.
)

// LogLevel returns the level set at build time.
func LogLevel() slog.Level {
	return parseLevel(logLevel)
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if s == "" || level.UnmarshalText([]byte(s)) != nil {
		return slog.LevelInfo
	}
	return level
}

// Options returns the parity options set at build time.
func Options() control.Options {
	return control.Options{
		SharedDebounce:    sharedDebounce == "true",
		LegacyFallthrough: legacyFallthrough == "true",
	}
}

// NewLogger returns a text logger writing to w at the build-time level.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: LogLevel(),
	}))
}

// PrintErrForever logs msg once per second. It blocks forever; it is used
// when a peripheral the program cannot run without failed to start, and
// keeps repeating in case the serial monitor attaches late.
func PrintErrForever(logger *slog.Logger, msg string, args ...any) {
	for {
		logger.Error(msg, args...)
		time.Sleep(time.Second)
	}
}
