//go:build tinygo

// joydimmer is joycursor plus PWM dimming: displacing the joystick
// vertically brightens the blue LED, horizontally the red LED.
package main

import (
	"context"
	"log/slog"
	"machine"

	"github.com/harveysanders/bitdoglab/board"
	"github.com/harveysanders/bitdoglab/control"
	"github.com/harveysanders/bitdoglab/oled"
)

func main() {
	logger := board.NewLogger(machine.Serial)

	screen, err := board.ConfigureOLED()
	if err != nil {
		board.PrintErrForever(logger, "configure OLED", slog.Any("reason", err))
	}

	red, blue, err := board.ConfigureDimmers()
	if err != nil {
		board.PrintErrForever(logger, "configure PWM", slog.Any("reason", err))
	}

	y, x := board.ConfigureJoystick()
	green := board.ConfigureLED(board.GreenLEDPin)

	events := make(chan control.ButtonEvent, 8)
	if err := board.WatchButton(board.ButtonAPin, control.ButtonA, events); err != nil {
		board.PrintErrForever(logger, "configure button", slog.Any("reason", err))
	}
	if err := board.WatchButton(board.JoystickButtonPin, control.JoystickButton, events); err != nil {
		board.PrintErrForever(logger, "configure button", slog.Any("reason", err))
	}

	// Red and blue go dark through their duty cycle; only green needs its
	// pin reconfigured.
	prog := control.NewDimmer(control.JoystickConfig{
		Canvas:  oled.NewCanvas(screen),
		Y:       y,
		X:       x,
		Green:   green,
		LEDs:    board.LEDPins{green},
		Red:     red,
		Blue:    blue,
		Logger:  logger,
		Options: board.Options(),
	})

	logger.Info("joydimmer:ready")
	err = control.Run(context.Background(), prog, events, nil, control.TickInterval, logger)
	board.PrintErrForever(logger, "joydimmer stopped", slog.Any("reason", err))
}
