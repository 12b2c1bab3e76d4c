package oled

import "testing"

func lit(fb *Framebuffer, x0, y0, x1, y1 int16) int {
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if fb.Pixel(x, y) {
				n++
			}
		}
	}
	return n
}

func TestCanvasFlush(t *testing.T) {
	fb := NewFramebuffer(Width, Height)
	c := NewCanvas(fb)

	c.DrawRect(10, 10, 4, 4, true, true)
	if lit(fb, 0, 0, Width, Height) != 0 {
		t.Fatal("pixels visible before flush")
	}
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := lit(fb, 0, 0, Width, Height); got != 16 {
		t.Fatalf("lit pixels = %d, want 16", got)
	}
	if !fb.Pixel(10, 10) || !fb.Pixel(13, 13) || fb.Pixel(14, 14) {
		t.Fatal("rectangle at wrong position")
	}
	if fb.Flushes() != 1 {
		t.Fatalf("flushes = %d, want 1", fb.Flushes())
	}
}

func TestCanvasFill(t *testing.T) {
	fb := NewFramebuffer(Width, Height)
	c := NewCanvas(fb)

	c.Fill(true)
	c.Flush()
	if got := lit(fb, 0, 0, Width, Height); got != Width*Height {
		t.Fatalf("lit pixels = %d, want %d", got, Width*Height)
	}

	c.Fill(false)
	c.Flush()
	if got := lit(fb, 0, 0, Width, Height); got != 0 {
		t.Fatalf("lit pixels = %d after clear", got)
	}
}

func TestCanvasOutlineRect(t *testing.T) {
	fb := NewFramebuffer(Width, Height)
	c := NewCanvas(fb)

	c.DrawRect(0, 0, 10, 10, false, true)
	c.Flush()
	if !fb.Pixel(0, 0) || !fb.Pixel(9, 9) {
		t.Fatal("outline corners not lit")
	}
	if fb.Pixel(5, 5) {
		t.Fatal("outline interior lit")
	}
}

func TestCanvasClipsOffscreen(t *testing.T) {
	fb := NewFramebuffer(Width, Height)
	c := NewCanvas(fb)

	c.DrawRect(Width-4, Height-4, 8, 8, true, true)
	c.DrawRect(5, 5, 0, 3, true, true)
	c.Flush()
	if got := lit(fb, 0, 0, Width, Height); got != 16 {
		t.Fatalf("lit pixels = %d, want 16", got)
	}
}

func TestCanvasText(t *testing.T) {
	fb := NewFramebuffer(Width, Height)
	c := NewCanvas(fb)

	c.DrawString("ON", 72, 9)
	c.DrawChar(0, 0, 0)
	c.Flush()
	if lit(fb, 72, 9, Width, 18) == 0 {
		t.Fatal("text row is blank")
	}
	if lit(fb, 0, 0, 72, 9) != 0 {
		t.Fatal("text drawn outside its row")
	}
}
