package control

import (
	"log/slog"
	"time"

	"github.com/harveysanders/bitdoglab/debounce"
	"github.com/harveysanders/bitdoglab/hal"
	"github.com/harveysanders/bitdoglab/matrix"
	"github.com/harveysanders/bitdoglab/oled"
)

// DigitsConfig wires the digit program to its peripherals.
type DigitsConfig struct {
	Matrix  *matrix.Driver
	Canvas  *oled.Canvas
	Green   hal.Output
	Blue    hal.Output
	Logger  *slog.Logger
	Options Options
}

// Digits shows console digits on the LED matrix. Buttons A and B toggle the
// green and blue LEDs; the OLED shows the last character and both LEDs.
type Digits struct {
	cfg   DigitsConfig
	state *State
	gates *debounce.Group
}

// NewDigits returns the digit program.
func NewDigits(cfg DigitsConfig) *Digits {
	return &Digits{
		cfg:   cfg,
		state: NewState(),
		gates: &debounce.Group{Shared: cfg.Options.SharedDebounce},
	}
}

// State returns the program state.
func (d *Digits) State() *State { return d.state }

func (d *Digits) Start() error {
	d.cfg.Matrix.Clear()
	s := d.state.Snapshot()
	d.cfg.Green.Set(s.GreenOn)
	d.cfg.Blue.Set(s.BlueOn)
	return d.render(s)
}

func (d *Digits) Tick(now time.Time) error { return nil }

// Input shows the glyph for an ASCII digit and clears the matrix for any
// other byte.
func (d *Digits) Input(ch byte) error {
	digit := -1
	if ch >= '0' && ch <= '9' {
		digit = int(ch - '0')
	}
	s := d.state.Update(func(s *Interaction) {
		s.Input = ch
		s.Digit = digit
	})

	if digit < 0 {
		d.cfg.Matrix.Clear()
	} else {
		d.cfg.Matrix.ShowDigit(digit)
	}
	d.cfg.Logger.Debug("digits:input", slog.Int("char", int(ch)), slog.Int("digit", digit))
	return d.render(s)
}

// Press toggles the LED of the pressed button.
func (d *Digits) Press(ev ButtonEvent) error {
	var (
		out  hal.Output
		name string
	)
	switch ev.Button {
	case ButtonA:
		out, name = d.cfg.Green, "green"
	case ButtonB:
		out, name = d.cfg.Blue, "blue"
	default:
		return nil
	}
	if !d.gates.Accept(int(ev.Button), ev.At) {
		return nil
	}

	var on bool
	s := d.state.Update(func(s *Interaction) {
		if ev.Button == ButtonA {
			s.GreenOn = !s.GreenOn
			on = s.GreenOn
		} else {
			s.BlueOn = !s.BlueOn
			on = s.BlueOn
		}
	})
	out.Set(on)
	d.cfg.Logger.Info("digits:led", slog.String("led", name), slog.Bool("on", on))
	return d.render(s)
}

func (d *Digits) render(s Interaction) error {
	return renderDigits(d.cfg.Canvas, s)
}
