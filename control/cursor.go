package control

import (
	"log/slog"
	"time"

	"github.com/harveysanders/bitdoglab/debounce"
	"github.com/harveysanders/bitdoglab/hal"
	"github.com/harveysanders/bitdoglab/oled"
)

// JoystickConfig wires a joystick program to its peripherals.
type JoystickConfig struct {
	Canvas *oled.Canvas
	Y      hal.Analog // ADC channel 0, vertical axis.
	X      hal.Analog // ADC channel 1, horizontal axis.
	Green  hal.Output
	// LEDs is reconfigured when BUTTON_A enables or disables the LEDs.
	// May be nil.
	LEDs hal.Enabler
	// Red and Blue are the dimmed LEDs. Both nil for the cursor program.
	Red     hal.Dimmer
	Blue    hal.Dimmer
	Logger  *slog.Logger
	Options Options
}

// Joystick moves a cursor square around the OLED. BUTTON_A enables or
// disables the LEDs; the joystick button toggles the green LED and cycles
// the border thickness. With dimmers configured, joystick displacement
// also sets the red and blue brightness.
type Joystick struct {
	cfg   JoystickConfig
	state *State
	gates *debounce.Group
}

// NewCursor returns the cursor program.
func NewCursor(cfg JoystickConfig) *Joystick {
	cfg.Red, cfg.Blue = nil, nil
	return newJoystick(cfg)
}

// NewDimmer returns the brightness program. cfg.Red and cfg.Blue must be set.
func NewDimmer(cfg JoystickConfig) *Joystick {
	return newJoystick(cfg)
}

func newJoystick(cfg JoystickConfig) *Joystick {
	return &Joystick{
		cfg:   cfg,
		state: NewState(),
		gates: &debounce.Group{Shared: cfg.Options.SharedDebounce},
	}
}

// State returns the program state.
func (j *Joystick) State() *State { return j.state }

func (j *Joystick) dims() bool { return j.cfg.Red != nil && j.cfg.Blue != nil }

func (j *Joystick) Start() error {
	s := j.state.Snapshot()
	if j.cfg.LEDs != nil {
		j.cfg.LEDs.SetEnabled(s.LEDsEnabled)
	}
	j.cfg.Green.Set(s.GreenOn)
	j.applyLevels(s)
	return renderJoystick(j.cfg.Canvas, s)
}

// Tick samples both axes once and updates the cursor and brightness.
func (j *Joystick) Tick(now time.Time) error {
	s0 := j.cfg.Y.Get()
	s1 := j.cfg.X.Get()
	x, y := Cursor(s0, s1)

	s := j.state.Update(func(s *Interaction) {
		s.RawY, s.RawX = s0, s1
		s.CursorX, s.CursorY = x, y
		if j.dims() {
			s.BlueLevel = Brightness(s0, BlueDeadzone)
			s.RedLevel = Brightness(s1, RedDeadzone)
		}
	})
	j.applyLevels(s)

	j.cfg.Logger.Debug("joystick:sample",
		slog.Int("ch0", int(s0)),
		slog.Int("ch1", int(s1)),
		slog.Int("x", x),
		slog.Int("y", y),
	)
	return renderJoystick(j.cfg.Canvas, s)
}

// Input is ignored; the joystick programs take no console input.
func (j *Joystick) Input(ch byte) error { return nil }

func (j *Joystick) Press(ev ButtonEvent) error {
	if ev.Button != ButtonA && ev.Button != JoystickButton {
		return nil
	}
	if !j.gates.Accept(int(ev.Button), ev.At) {
		return nil
	}

	var s Interaction
	if ev.Button == ButtonA {
		s = j.toggleLEDs()
		if j.cfg.Options.LegacyFallthrough {
			s = j.joystickButton()
		}
	} else {
		s = j.joystickButton()
	}
	return renderJoystick(j.cfg.Canvas, s)
}

func (j *Joystick) toggleLEDs() Interaction {
	s := j.state.Update(func(s *Interaction) {
		s.LEDsEnabled = !s.LEDsEnabled
	})
	if j.cfg.LEDs != nil {
		j.cfg.LEDs.SetEnabled(s.LEDsEnabled)
	}
	j.applyLevels(s)
	j.cfg.Logger.Info("joystick:leds", slog.Bool("enabled", s.LEDsEnabled))
	return s
}

func (j *Joystick) joystickButton() Interaction {
	s := j.state.Update(func(s *Interaction) {
		if s.LEDsEnabled {
			s.GreenOn = !s.GreenOn
		}
		s.Border = NextBorder(s.Border)
	})
	j.cfg.Green.Set(s.GreenOn)
	j.cfg.Logger.Info("joystick:button",
		slog.Bool("green", s.GreenOn),
		slog.Int("border", s.Border),
	)
	return s
}

// applyLevels drives the dimmers, forcing them dark while the LEDs are
// disabled.
func (j *Joystick) applyLevels(s Interaction) {
	if !j.dims() {
		return
	}
	red, blue := s.RedLevel, s.BlueLevel
	if !s.LEDsEnabled {
		red, blue = 0, 0
	}
	j.cfg.Red.Set(red)
	j.cfg.Blue.Set(blue)
}
