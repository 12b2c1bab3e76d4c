package control

import "testing"

func TestCursor(t *testing.T) {
	tests := []struct {
		name   string
		s0, s1 uint16
		x, y   int
	}{
		{"rest", 2030, 2030, 64, 32},
		{"one step up", 2030 + 64, 2030, 64, 31},
		{"just below rest", 2029, 2029, 63, 33},
		{"one step right", 2030, 2030 + 32, 65, 32},
		{"full up right", 4095, 4095, 128, 0},
		{"full down left", 0, 0, 0, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Cursor(tt.s0, tt.s1)
			if x != tt.x || y != tt.y {
				t.Fatalf("Cursor(%d, %d) = (%d, %d), want (%d, %d)", tt.s0, tt.s1, x, y, tt.x, tt.y)
			}
		})
	}
}

func TestBrightness(t *testing.T) {
	tests := []struct {
		name     string
		sample   uint16
		deadzone int
		want     uint16
	}{
		{"rest", Center, BlueDeadzone, 0},
		{"inside blue deadzone", Center + 39, BlueDeadzone, 0},
		{"blue deadzone edge", Center + 40, BlueDeadzone, 40},
		{"above blue deadzone", Center + 41, BlueDeadzone, 41},
		{"below center", Center - 41, BlueDeadzone, 41},
		{"inside red deadzone", Center - 149, RedDeadzone, 0},
		{"above red deadzone", Center + 151, RedDeadzone, 151},
		{"clamped", 4095, BlueDeadzone, BrightnessMax},
		{"zero sample", 0, RedDeadzone, BrightnessMax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Brightness(tt.sample, tt.deadzone); got != tt.want {
				t.Fatalf("Brightness(%d, %d) = %d, want %d", tt.sample, tt.deadzone, got, tt.want)
			}
		})
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{7, 2, 3},
		{-7, 2, -4},
		{-8, 2, -4},
		{0, 64, 0},
		{-1, 64, -1},
		{63, 64, 0},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
