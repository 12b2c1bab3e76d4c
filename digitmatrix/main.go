//go:build tinygo

// digitmatrix shows digits typed on the serial console on the 5x5 LED
// matrix. Button A toggles the green LED, button B the blue LED; the OLED
// shows the last character and the state of both LEDs.
package main

import (
	"context"
	"log/slog"
	"machine"

	"github.com/harveysanders/bitdoglab/board"
	"github.com/harveysanders/bitdoglab/control"
	"github.com/harveysanders/bitdoglab/matrix"
	"github.com/harveysanders/bitdoglab/oled"
)

func main() {
	logger := board.NewLogger(machine.Serial)

	screen, err := board.ConfigureOLED()
	if err != nil {
		board.PrintErrForever(logger, "configure OLED", slog.Any("reason", err))
	}

	strip, err := board.ConfigureMatrix()
	if err != nil {
		board.PrintErrForever(logger, "configure LED matrix", slog.Any("reason", err))
	}

	green := board.ConfigureLED(board.GreenLEDPin)
	blue := board.ConfigureLED(board.BlueLEDPin)

	// Interrupt handlers only queue edges; the control loop owns the state.
	events := make(chan control.ButtonEvent, 8)
	if err := board.WatchButton(board.ButtonAPin, control.ButtonA, events); err != nil {
		board.PrintErrForever(logger, "configure button", slog.Any("reason", err))
	}
	if err := board.WatchButton(board.ButtonBPin, control.ButtonB, events); err != nil {
		board.PrintErrForever(logger, "configure button", slog.Any("reason", err))
	}

	input := make(chan byte, 16)
	go board.ReadConsole(input)

	prog := control.NewDigits(control.DigitsConfig{
		Matrix:  matrix.NewDriver(strip),
		Canvas:  oled.NewCanvas(screen),
		Green:   green,
		Blue:    blue,
		Logger:  logger,
		Options: board.Options(),
	})

	logger.Info("digitmatrix:ready")
	err = control.Run(context.Background(), prog, events, input, control.TickInterval, logger)
	board.PrintErrForever(logger, "digitmatrix stopped", slog.Any("reason", err))
}
