package control

import "testing"

func TestNextBorderCycle(t *testing.T) {
	b := 1
	want := []int{3, 5, 7, 1, 3}
	for i, w := range want {
		b = NextBorder(b)
		if b != w {
			t.Fatalf("advance %d: border = %d, want %d", i+1, b, w)
		}
	}
}

func TestNextBorderOutsideCycle(t *testing.T) {
	for _, b := range []int{0, 2, 8, -1} {
		if got := NextBorder(b); got != 1 {
			t.Errorf("NextBorder(%d) = %d, want 1", b, got)
		}
	}
}

func TestDefaultInteraction(t *testing.T) {
	s := NewState().Snapshot()
	if s.Digit != -1 || s.GreenOn || s.BlueOn {
		t.Errorf("unexpected LED/digit defaults: %+v", s)
	}
	if s.CursorX != 64 || s.CursorY != 32 {
		t.Errorf("cursor = (%d, %d), want (64, 32)", s.CursorX, s.CursorY)
	}
	if s.Border != 1 || s.RedLevel != 0 || s.BlueLevel != 0 {
		t.Errorf("unexpected border/brightness defaults: %+v", s)
	}
	if !s.LEDsEnabled {
		t.Error("LEDs disabled at power on")
	}
}

func TestStateUpdate(t *testing.T) {
	st := NewState()
	got := st.Update(func(s *Interaction) { s.GreenOn = true })
	if !got.GreenOn || !st.Snapshot().GreenOn {
		t.Fatal("update not applied")
	}

	snap := st.Snapshot()
	snap.BlueOn = true
	if st.Snapshot().BlueOn {
		t.Fatal("snapshot aliases state")
	}
}
