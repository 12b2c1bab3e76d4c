package control

// Center is the nominal resting sample of both joystick axes.
const Center = 2030

// BrightnessMax is the PWM period of the dimmed LEDs.
const BrightnessMax = 2000

// Deadzones around Center below which the LEDs stay dark, so sensor noise
// at rest does not make them flicker.
const (
	BlueDeadzone = 40
	RedDeadzone  = 150
)

const (
	centerX = 64
	centerY = 32

	// Samples per pixel of cursor travel.
	xStep = 32
	yStep = 64
)

// Cursor maps a pair of joystick samples to a screen position. Channel 0
// moves the cursor vertically (up for larger samples), channel 1
// horizontally.
func Cursor(s0, s1 uint16) (x, y int) {
	y = centerY - floorDiv(int(s0)-Center, yStep)
	x = centerX + floorDiv(int(s1)-Center, xStep)
	return x, y
}

// Brightness returns the displacement of sample from Center as a PWM level.
// Displacements below deadzone give 0; larger ones are clamped to
// BrightnessMax.
func Brightness(sample uint16, deadzone int) uint16 {
	d := int(sample) - Center
	if d < 0 {
		d = -d
	}
	if d < deadzone {
		return 0
	}
	if d > BrightnessMax {
		return BrightnessMax
	}
	return uint16(d)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
