// Package sim is a virtual BitDogLab: every peripheral the programs use,
// backed by the virtual implementations in hal and oled, so the programs
// can run on a desktop.
package sim

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/harveysanders/bitdoglab/control"
	"github.com/harveysanders/bitdoglab/hal"
	"github.com/harveysanders/bitdoglab/matrix"
	"github.com/harveysanders/bitdoglab/oled"
)

// Programs lists the program names accepted by Board.Program.
var Programs = []string{"digits", "cursor", "dimmer"}

// Board holds the virtual peripherals.
type Board struct {
	Screen *oled.Framebuffer
	Strip  *Strip

	Green *hal.Pin
	Blue  *hal.Pin
	Red   *hal.Pin

	RedPWM  *hal.PWM
	BluePWM *hal.PWM

	Y *hal.ADC // ADC channel 0
	X *hal.ADC // ADC channel 1

	Events chan control.ButtonEvent
	Input  chan byte

	dimmed bool
}

// NewBoard returns a board with the joystick at rest and everything off.
func NewBoard() *Board {
	return &Board{
		Screen:  oled.NewFramebuffer(oled.Width, oled.Height),
		Strip:   &Strip{},
		Green:   hal.NewPin("GP11"),
		Blue:    hal.NewPin("GP12"),
		Red:     hal.NewPin("GP13"),
		RedPWM:  hal.NewPWM(control.BrightnessMax),
		BluePWM: hal.NewPWM(control.BrightnessMax),
		Y:       hal.NewADC(control.Center),
		X:       hal.NewADC(control.Center),
		Events:  make(chan control.ButtonEvent, 8),
		Input:   make(chan byte, 64),
	}
}

// Program builds the named program wired to this board.
func (b *Board) Program(name string, logger *slog.Logger, opts control.Options) (control.Program, error) {
	canvas := oled.NewCanvas(b.Screen)
	switch name {
	case "digits":
		return control.NewDigits(control.DigitsConfig{
			Matrix:  matrix.NewDriver(b.Strip),
			Canvas:  canvas,
			Green:   b.Green,
			Blue:    b.Blue,
			Logger:  logger,
			Options: opts,
		}), nil
	case "cursor":
		return control.NewCursor(control.JoystickConfig{
			Canvas:  canvas,
			Y:       b.Y,
			X:       b.X,
			Green:   b.Green,
			LEDs:    hal.Pins{b.Green, b.Blue, b.Red},
			Logger:  logger,
			Options: opts,
		}), nil
	case "dimmer":
		b.dimmed = true
		return control.NewDimmer(control.JoystickConfig{
			Canvas:  canvas,
			Y:       b.Y,
			X:       b.X,
			Green:   b.Green,
			LEDs:    hal.Pins{b.Green},
			Red:     b.RedPWM,
			Blue:    b.BluePWM,
			Logger:  logger,
			Options: opts,
		}), nil
	}
	return nil, fmt.Errorf("unknown program %q (want one of %s)", name, strings.Join(Programs, ", "))
}

// Press posts a falling edge of button, as its interrupt handler would.
func (b *Board) Press(button control.Button) bool {
	return control.Post(b.Events, control.ButtonEvent{Button: button, At: time.Now()})
}

// Type queues a console byte. It reports false if the console buffer is
// full.
func (b *Board) Type(ch byte) bool {
	select {
	case b.Input <- ch:
		return true
	default:
		return false
	}
}

// Deflect moves the joystick. dy and dx run from -1 to 1; positive dy is
// up, positive dx is right.
func (b *Board) Deflect(dy, dx float64) {
	b.Y.Set(axisSample(dy))
	b.X.Set(axisSample(dx))
}

func axisSample(d float64) uint16 {
	d = max(-1, min(1, d))
	if d >= 0 {
		return uint16(control.Center + d*(hal.ADCMax-control.Center))
	}
	return uint16(control.Center + d*control.Center)
}

// RGB returns the color of the RGB LED.
func (b *Board) RGB() (r, g, bl uint8) {
	if b.Green.Get() {
		g = 0xff
	}
	if b.dimmed {
		r = level8(b.RedPWM.Level())
		bl = level8(b.BluePWM.Level())
		return r, g, bl
	}
	if b.Red.Get() {
		r = 0xff
	}
	if b.Blue.Get() {
		bl = 0xff
	}
	return r, g, bl
}

func level8(level uint16) uint8 {
	return uint8(uint32(level) * 0xff / control.BrightnessMax)
}

// Strip is a virtual WS2812B strip. It latches pixels in strip order,
// wrapping after the last LED.
type Strip struct {
	mu      sync.Mutex
	frame   matrix.Frame
	pos     int
	version uint64
}

func (s *Strip) Put(px matrix.Pixel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame[s.pos] = px
	s.pos = (s.pos + 1) % matrix.LEDCount
	if s.pos == 0 {
		s.version++
	}
}

// Frame returns the latched pixels and the number of complete frames
// received so far.
func (s *Strip) Frame() (matrix.Frame, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame, s.version
}

// Grid returns the latched frame as rows and columns of the matrix.
func (s *Strip) Grid() [matrix.Size][matrix.Size]matrix.Pixel {
	f, _ := s.Frame()
	var g [matrix.Size][matrix.Size]matrix.Pixel
	for k, px := range f {
		row, col := matrix.Translate(k)
		g[row][col] = px
	}
	return g
}

// String draws the matrix as text, one line per row.
func (s *Strip) String() string {
	var sb strings.Builder
	for _, row := range s.Grid() {
		for _, px := range row {
			if px != (matrix.Pixel{}) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
