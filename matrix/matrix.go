// Package matrix drives the 5x5 addressable LED matrix.
//
// The LEDs are wired as a single serpentine strip that starts in the
// bottom-right corner, so patterns are written in row/column form and
// translated to strip order before they are pushed to the hardware.
package matrix

// Size is the number of rows and columns of the matrix.
const Size = 5

// LEDCount is the number of LEDs on the strip.
const LEDCount = Size * Size

// Pattern is a monochrome 5x5 image. Row 0 is the top row, column 0 the
// leftmost column. Any non-zero cell is lit.
type Pattern [Size][Size]uint8

// Pixel is a single strip command: one byte per color channel, consumed
// by the strip in red, green, blue order.
type Pixel struct {
	R, G, B uint8
}

// Frame is a full set of strip commands in strip order.
type Frame [LEDCount]Pixel

// Strip is the addressable LED strip. Put blocks until the strip
// accepted the pixel.
type Strip interface {
	Put(px Pixel)
}

// indexMap translates a strip position to its (row, col) cell.
var indexMap = [LEDCount][2]uint8{
	{4, 4}, {4, 3}, {4, 2}, {4, 1}, {4, 0},
	{3, 0}, {3, 1}, {3, 2}, {3, 3}, {3, 4},
	{2, 4}, {2, 3}, {2, 2}, {2, 1}, {2, 0},
	{1, 0}, {1, 1}, {1, 2}, {1, 3}, {1, 4},
	{0, 4}, {0, 3}, {0, 2}, {0, 1}, {0, 0},
}

// Translate returns the matrix cell driven by the LED at strip position k.
// k must be in [0, LEDCount).
func Translate(k int) (row, col int) {
	cell := indexMap[k]
	return int(cell[0]), int(cell[1])
}

// Render converts p into strip commands. The matrix is driven in green
// only; the cell value is used as the green level.
func Render(p Pattern) Frame {
	var f Frame
	for k := range f {
		row, col := Translate(k)
		f[k] = Pixel{G: p[row][col]}
	}
	return f
}

// Clear returns a frame with every LED off.
func Clear() Frame {
	return Frame{}
}

// Driver writes frames to a Strip.
type Driver struct {
	strip Strip
}

// NewDriver returns a Driver that writes to strip.
func NewDriver(strip Strip) *Driver {
	return &Driver{strip: strip}
}

// Write pushes every pixel of f to the strip in strip order.
func (d *Driver) Write(f Frame) {
	for _, px := range f {
		d.strip.Put(px)
	}
}

// Show renders p on the matrix.
func (d *Driver) Show(p Pattern) {
	d.Write(Render(p))
}

// ShowDigit renders the glyph for digit n. It reports false, leaving the
// matrix untouched, if n is not a decimal digit.
func (d *Driver) ShowDigit(n int) bool {
	p, ok := Digit(n)
	if !ok {
		return false
	}
	d.Show(p)
	return true
}

// Clear turns every LED off.
func (d *Driver) Clear() {
	d.Write(Clear())
}
