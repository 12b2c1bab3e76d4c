//go:build tinygo

// boardcheck exercises every peripheral for bring-up: it blinks the green
// LED, sweeps the red and blue PWM levels, walks a single lit LED along
// the matrix strip and shows the raw joystick samples on the OLED.
package main

import (
	"log/slog"
	"machine"
	"strconv"
	"time"

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
	red, blue, err := board.ConfigureDimmers()
	if err != nil {
		board.PrintErrForever(logger, "configure PWM", slog.Any("reason", err))
	}
	y, x := board.ConfigureJoystick()
	green := board.ConfigureLED(board.GreenLEDPin)

	canvas := oled.NewCanvas(screen)
	leds := matrix.NewDriver(strip)

	// We need a preallocated buffer so the heap isn't exhausted
	// by many calls to fmt functions.
	printBuf := make([]byte, 0, 24)
	const step = control.BrightnessMax / 20

	var (
		pos   int
		level uint16
		on    bool
	)
	for {
		s0, s1 := y.Get(), x.Get()

		canvas.Fill(false)
		printBuf = printBuf[:0]
		printBuf = append(printBuf, "ch0: "...)
		printBuf = strconv.AppendUint(printBuf, uint64(s0), 10)
		canvas.DrawString(string(printBuf), 0, 0)

		printBuf = printBuf[:0]
		printBuf = append(printBuf, "ch1: "...)
		printBuf = strconv.AppendUint(printBuf, uint64(s1), 10)
		canvas.DrawString(string(printBuf), 0, 9)

		printBuf = printBuf[:0]
		printBuf = append(printBuf, "pwm: "...)
		printBuf = strconv.AppendUint(printBuf, uint64(level), 10)
		canvas.DrawString(string(printBuf), 0, 18)
		if err := canvas.Flush(); err != nil {
			logger.Error("boardcheck:flush-failed", slog.Any("reason", err))
		}

		// One lit LED walking the strip shows the wiring order.
		var f matrix.Frame
		f[pos] = matrix.Pixel{G: 1}
		leds.Write(f)
		pos = (pos + 1) % matrix.LEDCount

		red.Set(level)
		blue.Set(control.BrightnessMax - level)
		level += step
		if level > control.BrightnessMax {
			level = 0
		}

		on = !on
		green.Set(on)
		logger.Debug("boardcheck:tick", slog.Int("ch0", int(s0)), slog.Int("ch1", int(s1)))

		time.Sleep(250 * time.Millisecond)
	}
}
