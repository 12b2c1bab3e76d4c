//go:build !tinygo

// boardsim runs the board programs on a desktop against a virtual board.
//
// In a window: type characters for the serial console, F1/F2 press buttons
// A/B, F3 presses the joystick button and the arrow keys deflect the
// joystick. With -headless, console input is read from stdin and the LED
// matrix is printed whenever it changes.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/harveysanders/bitdoglab/control"
	"github.com/harveysanders/bitdoglab/sim"
)

func main() {
	var (
		program  string
		headless bool
		level    string
		opts     control.Options
	)
	flag.StringVar(&program, "program", "digits", "Program to run: "+strings.Join(sim.Programs, "|")+".")
	flag.BoolVar(&headless, "headless", false, "Run without a window, reading console input from stdin.")
	flag.StringVar(&level, "log-level", "info", "Log level: debug|info|warn|error.")
	flag.BoolVar(&opts.SharedDebounce, "shared-debounce", false, "Debounce all buttons with one timestamp.")
	flag.BoolVar(&opts.LegacyFallthrough, "legacy-fallthrough", false, "Button A also acts as the joystick button.")
	flag.Parse()

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		fmt.Fprintln(os.Stderr, "invalid -log-level:", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	board := sim.NewBoard()
	prog, err := board.Program(program, logger, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if headless {
		err = runHeadless(ctx, board, prog, logger)
	} else {
		err = runWindow(ctx, board, prog, program, logger)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runHeadless(ctx context.Context, board *sim.Board, prog control.Program, logger *slog.Logger) error {
	go readConsole(ctx, os.Stdin, board.Input, logger)
	go printMatrix(ctx, board.Strip, os.Stdout)
	return control.Run(ctx, prog, board.Events, board.Input, control.TickInterval, logger)
}

// readConsole forwards every byte of r to input until r is exhausted.
func readConsole(ctx context.Context, r io.Reader, input chan<- byte, logger *slog.Logger) {
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Error("console:read-failed", slog.Any("reason", err))
			}
			return
		}
		select {
		case input <- b:
		case <-ctx.Done():
			return
		}
	}
}

// printMatrix writes the matrix to w each time a new frame is latched.
func printMatrix(ctx context.Context, strip *sim.Strip, w io.Writer) {
	const pollInterval = 20 * time.Millisecond
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var seen uint64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, v := strip.Frame(); v != seen {
				seen = v
				fmt.Fprintln(w, strip.String())
			}
		}
	}
}
