package control

import (
	"testing"
	"time"

	"github.com/harveysanders/bitdoglab/hal"
	"github.com/harveysanders/bitdoglab/matrix"
	"github.com/harveysanders/bitdoglab/oled"
)

type digitsRig struct {
	prog  *Digits
	strip *recordingStrip
	fb    *oled.Framebuffer
	green *hal.Pin
	blue  *hal.Pin
}

func newDigitsRig(t *testing.T, opts Options) *digitsRig {
	t.Helper()
	r := &digitsRig{
		strip: &recordingStrip{},
		fb:    oled.NewFramebuffer(oled.Width, oled.Height),
		green: hal.NewPin("GREEN"),
		blue:  hal.NewPin("BLUE"),
	}
	r.prog = NewDigits(DigitsConfig{
		Matrix:  matrix.NewDriver(r.strip),
		Canvas:  oled.NewCanvas(r.fb),
		Green:   r.green,
		Blue:    r.blue,
		Logger:  discardLogger(),
		Options: opts,
	})
	if err := r.prog.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return r
}

func TestDigitsStartClearsMatrix(t *testing.T) {
	r := newDigitsRig(t, Options{})
	f, ok := r.strip.lastFrame()
	if !ok || f != matrix.Clear() {
		t.Fatalf("start frame = %v, %v; want clear", f, ok)
	}
	if r.fb.Flushes() != 1 {
		t.Fatalf("flushes = %d, want 1", r.fb.Flushes())
	}
}

func TestDigitsInput(t *testing.T) {
	tests := []struct {
		name  string
		ch    byte
		digit int
		want  matrix.Frame
	}{
		{"seven", '7', 7, matrix.Render(matrix.Digits[7])},
		{"zero", '0', 0, matrix.Render(matrix.Digits[0])},
		{"nine", '9', 9, matrix.Render(matrix.Digits[9])},
		{"hash", '#', -1, matrix.Clear()},
		{"letter", 'a', -1, matrix.Clear()},
		{"newline", '\n', -1, matrix.Clear()},
		{"high byte", 0xb7, -1, matrix.Clear()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newDigitsRig(t, Options{})
			// Light the matrix first so clears are observable.
			if err := r.prog.Input('8'); err != nil {
				t.Fatalf("Input: %v", err)
			}
			if err := r.prog.Input(tt.ch); err != nil {
				t.Fatalf("Input: %v", err)
			}

			f, _ := r.strip.lastFrame()
			if f != tt.want {
				t.Fatalf("frame = %v, want %v", f, tt.want)
			}
			s := r.prog.State().Snapshot()
			if s.Digit != tt.digit || s.Input != tt.ch {
				t.Fatalf("state digit/input = %d/%q, want %d/%q", s.Digit, s.Input, tt.digit, tt.ch)
			}
			if r.fb.Flushes() != 3 {
				t.Fatalf("flushes = %d, want 3", r.fb.Flushes())
			}
		})
	}
}

func TestDigitsButtons(t *testing.T) {
	t0 := time.Unix(1000, 0)
	r := newDigitsRig(t, Options{})

	r.prog.Press(ButtonEvent{Button: ButtonA, At: t0})
	if !r.green.Get() || !r.prog.State().Snapshot().GreenOn {
		t.Fatal("button A did not turn green on")
	}

	// Bounce on A is ignored, B is debounced separately.
	r.prog.Press(ButtonEvent{Button: ButtonA, At: t0.Add(50 * time.Millisecond)})
	r.prog.Press(ButtonEvent{Button: ButtonB, At: t0.Add(60 * time.Millisecond)})
	s := r.prog.State().Snapshot()
	if !s.GreenOn || !r.green.Get() {
		t.Fatal("bounce toggled green")
	}
	if !s.BlueOn || !r.blue.Get() {
		t.Fatal("button B suppressed by button A window")
	}

	r.prog.Press(ButtonEvent{Button: ButtonA, At: t0.Add(250 * time.Millisecond)})
	if r.green.Get() || r.prog.State().Snapshot().GreenOn {
		t.Fatal("second press did not turn green off")
	}

	// Start + three accepted presses.
	if r.fb.Flushes() != 4 {
		t.Fatalf("flushes = %d, want 4", r.fb.Flushes())
	}
}

func TestDigitsSharedDebounce(t *testing.T) {
	t0 := time.Unix(1000, 0)
	r := newDigitsRig(t, Options{SharedDebounce: true})

	r.prog.Press(ButtonEvent{Button: ButtonA, At: t0})
	r.prog.Press(ButtonEvent{Button: ButtonB, At: t0.Add(100 * time.Millisecond)})
	if r.blue.Get() {
		t.Fatal("shared debounce accepted B within A's window")
	}
	r.prog.Press(ButtonEvent{Button: ButtonB, At: t0.Add(200 * time.Millisecond)})
	if !r.blue.Get() {
		t.Fatal("B rejected after the window")
	}
}

func TestDigitsIgnoresJoystickButton(t *testing.T) {
	r := newDigitsRig(t, Options{})
	if err := r.prog.Press(ButtonEvent{Button: JoystickButton, At: time.Unix(5, 0)}); err != nil {
		t.Fatalf("Press: %v", err)
	}
	if r.green.Writes() != 1 || r.blue.Writes() != 1 {
		t.Fatal("joystick button drove an LED")
	}
}

func TestDigitsRender(t *testing.T) {
	r := newDigitsRig(t, Options{})
	rowLit := func(x0, y0, x1, y1 int16) bool {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if r.fb.Pixel(x, y) {
					return true
				}
			}
		}
		return false
	}

	if rowLit(valueX, 1, oled.Width, 7) {
		t.Fatal("character drawn before any input")
	}
	r.prog.Input('5')
	if !rowLit(valueX, 1, oled.Width, 7) {
		t.Fatal("character not drawn")
	}
	if !rowLit(0, 1, valueX, 7) {
		t.Fatal("label not drawn")
	}
}
