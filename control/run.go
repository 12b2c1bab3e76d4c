package control

import (
	"context"
	"log/slog"
	"time"
)

// Button identifies a push button on the board.
type Button uint8

const (
	ButtonA Button = iota + 1
	ButtonB
	JoystickButton
)

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case JoystickButton:
		return "joystick"
	}
	return "unknown"
}

// ButtonEvent is a falling edge seen on a button pin.
type ButtonEvent struct {
	Button Button
	At     time.Time // When the edge was seen. Zero means on arrival.
}

// Options select behavior kept for parity with older firmware.
type Options struct {
	// SharedDebounce debounces all buttons with one timestamp, so a press
	// on one button suppresses a press on another within the window.
	SharedDebounce bool
	// LegacyFallthrough makes BUTTON_A also perform the joystick button
	// action on the joystick programs.
	LegacyFallthrough bool
}

// Program is one of the board programs.
type Program interface {
	// Start puts the outputs in their power-on state and draws the first frame.
	Start() error
	// Tick runs the periodic main loop work.
	Tick(now time.Time) error
	// Input handles a byte read from the console.
	Input(ch byte) error
	// Press handles a button edge.
	Press(ev ButtonEvent) error
}

// TickInterval is the main loop cadence.
const TickInterval = 10 * time.Millisecond

// Run owns p: it starts it, then feeds it button events, console bytes and
// ticks one at a time until ctx is done. A nil or closed channel is never
// selected. Errors after Start are logged and the loop continues.
func Run(ctx context.Context, p Program, events <-chan ButtonEvent, input <-chan byte, tick time.Duration, logger *slog.Logger) error {
	if err := p.Start(); err != nil {
		return err
	}

	var ticks <-chan time.Time
	if tick > 0 {
		ticker := time.NewTicker(tick)
		defer ticker.Stop()
		ticks = ticker.C
	}

	for {
		var err error
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if ev.At.IsZero() {
				ev.At = time.Now()
			}
			err = p.Press(ev)
		case ch, ok := <-input:
			if !ok {
				input = nil
				continue
			}
			err = p.Input(ch)
		case now := <-ticks:
			err = p.Tick(now)
		}
		if err != nil {
			logger.Error("control:refresh-failed", slog.Any("reason", err))
		}
	}
}

// Post sends ev without blocking and reports whether it was queued. It is
// safe to call from an interrupt handler.
func Post(events chan<- ButtonEvent, ev ButtonEvent) bool {
	select {
	case events <- ev:
		return true
	default:
		return false
	}
}
