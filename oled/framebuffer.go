package oled

import (
	"image/color"
	"sync"
)

// Framebuffer is an in-memory Screen. Drawing goes to a back buffer; Display
// copies it to the front buffer, which is what Pixel and Snapshot report.
type Framebuffer struct {
	mu      sync.Mutex
	width   int16
	height  int16
	back    []bool
	front   []bool
	flushes int
}

// NewFramebuffer returns a blank framebuffer of the given size.
func NewFramebuffer(width, height int16) *Framebuffer {
	n := int(width) * int(height)
	return &Framebuffer{
		width:  width,
		height: height,
		back:   make([]bool, n),
		front:  make([]bool, n),
	}
}

func (f *Framebuffer) Size() (x, y int16) { return f.width, f.height }

// SetPixel lights any pixel with a non-black color. Pixels outside the
// buffer are ignored.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.back[int(y)*int(f.width)+int(x)] = c.R != 0 || c.G != 0 || c.B != 0
}

func (f *Framebuffer) ClearBuffer() {
	f.mu.Lock()
	defer f.mu.Unlock()
	clear(f.back)
}

func (f *Framebuffer) Display() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.back)
	f.flushes++
	return nil
}

// Pixel reports whether the flushed pixel at (x, y) is lit.
func (f *Framebuffer) Pixel(x, y int16) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.front[int(y)*int(f.width)+int(x)]
}

// Snapshot copies the flushed buffer into dst, row by row, and returns it.
func (f *Framebuffer) Snapshot(dst []bool) []bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cap(dst) < len(f.front) {
		dst = make([]bool, len(f.front))
	}
	dst = dst[:len(f.front)]
	copy(dst, f.front)
	return dst
}

// Flushes returns how many times Display was called.
func (f *Framebuffer) Flushes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flushes
}
