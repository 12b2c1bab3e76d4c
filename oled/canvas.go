// Package oled draws text and shapes on the 128x64 monochrome OLED.
//
// Drawing happens in the screen's buffer; nothing becomes visible until
// Flush sends the whole buffer to the panel.
package oled

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Panel geometry of the SSD1306 on the board.
const (
	Width   = 128
	Height  = 64
	Address = 0x3C
)

var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}
)

// baseline is the distance from the top of a text row to the font baseline.
const baseline = 7

// Screen is a buffered monochrome display such as *ssd1306.Device.
type Screen interface {
	drivers.Displayer
	ClearBuffer()
}

// Canvas exposes the drawing primitives used by the programs.
type Canvas struct {
	screen Screen
	font   tinyfont.Fonter
}

// NewCanvas returns a Canvas drawing on screen.
func NewCanvas(screen Screen) *Canvas {
	return &Canvas{screen: screen, font: &proggy.TinySZ8pt7b}
}

// Size returns the screen size in pixels.
func (c *Canvas) Size() (w, h int16) {
	return c.screen.Size()
}

// Fill sets every pixel of the buffer on or off.
func (c *Canvas) Fill(on bool) {
	if !on {
		c.screen.ClearBuffer()
		return
	}
	w, h := c.screen.Size()
	c.DrawRect(0, 0, w, h, true, true)
}

// DrawString writes text with its top-left corner at (x, y).
func (c *Canvas) DrawString(text string, x, y int16) {
	tinyfont.WriteLine(c.screen, c.font, x, y+baseline, text, white)
}

// DrawChar writes a single character with its top-left corner at (x, y).
// Zero draws nothing.
func (c *Canvas) DrawChar(ch byte, x, y int16) {
	if ch == 0 {
		return
	}
	tinyfont.DrawChar(c.screen, c.font, x, y+baseline, rune(ch), white)
}

// DrawRect draws a w by h rectangle at (x, y), filled or outlined.
// Empty rectangles draw nothing.
func (c *Canvas) DrawRect(x, y, w, h int16, fill, on bool) {
	if w <= 0 || h <= 0 {
		return
	}
	col := black
	if on {
		col = white
	}
	if fill {
		tinydraw.FilledRectangle(c.screen, x, y, w, h, col)
		return
	}
	tinydraw.Rectangle(c.screen, x, y, w, h, col)
}

// Flush sends the buffer to the panel.
func (c *Canvas) Flush() error {
	return c.screen.Display()
}
