//go:build tinygo

// joycursor moves a square around the OLED with the joystick. Button A
// enables or disables the LEDs; the joystick button toggles the green LED
// and cycles the thickness of the screen border.
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

	y, x := board.ConfigureJoystick()
	green := board.ConfigureLED(board.GreenLEDPin)
	blue := board.ConfigureLED(board.BlueLEDPin)
	red := board.ConfigureLED(board.RedLEDPin)

	events := make(chan control.ButtonEvent, 8)
	if err := board.WatchButton(board.ButtonAPin, control.ButtonA, events); err != nil {
		board.PrintErrForever(logger, "configure button", slog.Any("reason", err))
	}
	if err := board.WatchButton(board.JoystickButtonPin, control.JoystickButton, events); err != nil {
		board.PrintErrForever(logger, "configure button", slog.Any("reason", err))
	}

	prog := control.NewCursor(control.JoystickConfig{
		Canvas:  oled.NewCanvas(screen),
		Y:       y,
		X:       x,
		Green:   green,
		LEDs:    board.LEDPins{green, blue, red},
		Logger:  logger,
		Options: board.Options(),
	})

	logger.Info("joycursor:ready")
	err = control.Run(context.Background(), prog, events, nil, control.TickInterval, logger)
	board.PrintErrForever(logger, "joycursor stopped", slog.Any("reason", err))
}
