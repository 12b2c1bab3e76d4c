package hal

import "testing"

func TestPinEnable(t *testing.T) {
	p := NewPin("GREEN")
	p.Set(true)
	if !p.Get() {
		t.Fatal("expected high")
	}

	Pins{p}.SetEnabled(false)
	if p.Get() {
		t.Fatal("disabled pin reads high")
	}
	if p.Enabled() {
		t.Fatal("expected disabled")
	}

	p.SetEnabled(true)
	if !p.Get() {
		t.Fatal("level lost across disable")
	}
	if p.Writes() != 1 {
		t.Fatalf("writes = %d, want 1", p.Writes())
	}
}

func TestADCClamp(t *testing.T) {
	a := NewADC(5000)
	if got := a.Get(); got != ADCMax {
		t.Fatalf("Get() = %d, want %d", got, ADCMax)
	}
	a.Set(2030)
	if got := a.Get(); got != 2030 {
		t.Fatalf("Get() = %d, want 2030", got)
	}
	if a.Reads() != 2 {
		t.Fatalf("reads = %d, want 2", a.Reads())
	}
}

func TestPWMClamp(t *testing.T) {
	p := NewPWM(2000)
	p.Set(2065)
	if p.Level() != 2000 {
		t.Fatalf("Level() = %d, want 2000", p.Level())
	}
	p.Set(41)
	if p.Level() != 41 {
		t.Fatalf("Level() = %d, want 41", p.Level())
	}
}
