package control

import "github.com/harveysanders/bitdoglab/oled"

// Column of the values on the status screen.
const valueX = 72

// cursorSize is the side of the joystick cursor square.
const cursorSize = 8

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}

// renderDigits draws the digit program status: the last console character
// and the state of both LEDs.
func renderDigits(c *oled.Canvas, s Interaction) error {
	c.Fill(false)
	c.DrawString("Char", 0, 0)
	c.DrawChar(s.Input, valueX, 0)
	c.DrawString("Blue LED", 0, 9)
	c.DrawString(onOff(s.BlueOn), valueX, 9)
	c.DrawString("Green LED", 0, 18)
	c.DrawString(onOff(s.GreenOn), valueX, 18)
	return c.Flush()
}

// renderJoystick draws the frame border and the cursor square centered on
// the cursor position.
func renderJoystick(c *oled.Canvas, s Interaction) error {
	c.Fill(false)

	w, h := c.Size()
	t := int16(s.Border)
	c.DrawRect(0, 0, w, t, true, true)   // top
	c.DrawRect(0, h-t, w, t, true, true) // bottom
	c.DrawRect(0, 0, t, h, true, true)   // left
	c.DrawRect(w-t, 0, t, h, true, true) // right

	x := int16(s.CursorX) - cursorSize/2
	y := int16(s.CursorY) - cursorSize/2
	c.DrawRect(x, y, cursorSize, cursorSize, true, true)
	return c.Flush()
}
