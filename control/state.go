// Package control turns button edges, console input and joystick samples
// into interaction state, and renders that state on the board outputs.
//
// A program is owned by a single goroutine running Run. Interrupt handlers
// only post ButtonEvents; they never touch the state directly.
package control

import "sync"

// Border thicknesses cycle through these values in order.
var borderCycle = [...]int{1, 3, 5, 7}

// NextBorder returns the thickness following t in the border cycle. Values
// outside the cycle restart it.
func NextBorder(t int) int {
	for i, v := range borderCycle {
		if v == t {
			return borderCycle[(i+1)%len(borderCycle)]
		}
	}
	return borderCycle[0]
}

// Interaction is the state shared by the input handlers and the renderer.
// Each program uses only the fields relevant to it.
type Interaction struct {
	Digit       int  // Selected glyph, or -1 when the matrix is blank.
	Input       byte // Last console byte. Zero before any input.
	GreenOn     bool
	BlueOn      bool
	LEDsEnabled bool
	CursorX     int
	CursorY     int
	Border      int    // Border thickness in pixels: 1, 3, 5 or 7.
	RedLevel    uint16 // PWM level, 0..BrightnessMax.
	BlueLevel   uint16 // PWM level, 0..BrightnessMax.
	RawY        uint16 // Last sample of ADC channel 0.
	RawX        uint16 // Last sample of ADC channel 1.
}

// DefaultInteraction returns the power-on state.
func DefaultInteraction() Interaction {
	return Interaction{
		Digit:       -1,
		LEDsEnabled: true,
		CursorX:     centerX,
		CursorY:     centerY,
		Border:      borderCycle[0],
		RawY:        Center,
		RawX:        Center,
	}
}

// State guards an Interaction.
type State struct {
	mu sync.Mutex
	s  Interaction
}

// NewState returns a State holding the power-on defaults.
func NewState() *State {
	return &State{s: DefaultInteraction()}
}

// Snapshot returns a copy of the current state.
func (st *State) Snapshot() Interaction {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s
}

// Update applies fn to the state under the lock and returns the result.
// fn must not block.
func (st *State) Update(fn func(s *Interaction)) Interaction {
	st.mu.Lock()
	defer st.mu.Unlock()
	fn(&st.s)
	return st.s
}
