//go:build !tinygo

package main

import (
	"context"
	"errors"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/harveysanders/bitdoglab/control"
	"github.com/harveysanders/bitdoglab/matrix"
	"github.com/harveysanders/bitdoglab/oled"
	"github.com/harveysanders/bitdoglab/sim"
)

const (
	oledScale = 3
	margin    = 16
	cellSize  = 24
	cellGap   = 4
	ledSize   = 32

	matrixX = margin*2 + oled.Width*oledScale
	windowW = matrixX + matrix.Size*(cellSize+cellGap) + margin
	windowH = margin*2 + oled.Height*oledScale
)

var (
	panelOn  = color.RGBA{R: 0x9c, G: 0xe5, B: 0xff, A: 0xff}
	panelOff = color.RGBA{R: 0x05, G: 0x08, B: 0x10, A: 0xff}
	cellOff  = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
)

// runWindow shows the board in a desktop window until it is closed or ctx
// is done.
func runWindow(ctx context.Context, board *sim.Board, prog control.Program, title string, logger *slog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- control.Run(ctx, prog, board.Events, board.Input, control.TickInterval, logger)
	}()

	g := &game{ctx: ctx, board: board, done: done, logger: logger}
	ebiten.SetWindowTitle("BitDogLab: " + title)
	ebiten.SetWindowSize(windowW, windowH)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errClosed) {
		return err
	}
	return g.err
}

// errClosed stops the ebiten loop once the program loop has ended.
var errClosed = errors.New("window closed")

type game struct {
	ctx    context.Context
	board  *sim.Board
	done   <-chan error
	err    error
	logger *slog.Logger

	panel   *ebiten.Image
	pix     []byte
	buf     []bool
	charBuf []rune
}

var buttonKeys = map[ebiten.Key]control.Button{
	ebiten.KeyF1: control.ButtonA,
	ebiten.KeyF2: control.ButtonB,
	ebiten.KeyF3: control.JoystickButton,
}

func (g *game) Update() error {
	select {
	case err := <-g.done:
		g.err = err
		return errClosed
	case <-g.ctx.Done():
		return errClosed
	default:
	}

	for key, button := range buttonKeys {
		if inpututil.IsKeyJustPressed(key) && !g.board.Press(button) {
			g.logger.Warn("sim:button-dropped", slog.String("button", button.String()))
		}
	}

	g.charBuf = ebiten.AppendInputChars(g.charBuf[:0])
	for _, r := range g.charBuf {
		if r < 0x80 {
			g.board.Type(byte(r))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.board.Type('\n')
	}

	var dy, dx float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	g.board.Deflect(dy, dx)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.drawPanel(screen)
	g.drawMatrix(screen)
	g.drawLED(screen)
}

func (g *game) drawPanel(screen *ebiten.Image) {
	if g.panel == nil {
		g.panel = ebiten.NewImage(oled.Width, oled.Height)
		g.pix = make([]byte, oled.Width*oled.Height*4)
	}
	g.buf = g.board.Screen.Snapshot(g.buf)
	for i, on := range g.buf {
		c := panelOff
		if on {
			c = panelOn
		}
		g.pix[i*4+0] = c.R
		g.pix[i*4+1] = c.G
		g.pix[i*4+2] = c.B
		g.pix[i*4+3] = c.A
	}
	g.panel.WritePixels(g.pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(oledScale, oledScale)
	op.GeoM.Translate(margin, margin)
	screen.DrawImage(g.panel, op)
}

func (g *game) drawMatrix(screen *ebiten.Image) {
	for row, cells := range g.board.Strip.Grid() {
		for col, px := range cells {
			c := cellOff
			if px != (matrix.Pixel{}) {
				// The firmware drives the matrix at very low levels; scale
				// them up so they are visible on a monitor.
				c = color.RGBA{R: boost(px.R), G: boost(px.G), B: boost(px.B), A: 0xff}
			}
			x := float32(matrixX + col*(cellSize+cellGap))
			y := float32(margin + row*(cellSize+cellGap))
			vector.DrawFilledRect(screen, x, y, cellSize, cellSize, c, false)
		}
	}
}

func (g *game) drawLED(screen *ebiten.Image) {
	r, gr, b := g.board.RGB()
	x := float32(matrixX)
	y := float32(margin + matrix.Size*(cellSize+cellGap) + margin)
	vector.DrawFilledRect(screen, x, y, ledSize, ledSize, color.RGBA{R: r, G: gr, B: b, A: 0xff}, false)
	vector.StrokeRect(screen, x, y, ledSize, ledSize, 1, cellOff, false)
}

func boost(v uint8) uint8 {
	if v == 0 {
		return 0
	}
	return uint8(min(0xff, 0x80+int(v)*0x7f))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowW, windowH
}
