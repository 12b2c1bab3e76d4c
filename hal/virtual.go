package hal

import "sync"

// Pin is a virtual digital output. It also satisfies Enabler; a disabled
// pin reads low regardless of the level last written to it.
type Pin struct {
	mu       sync.Mutex
	name     string
	level    bool
	disabled bool
	writes   int
}

// NewPin returns a virtual pin named name, enabled and low.
func NewPin(name string) *Pin {
	return &Pin{name: name}
}

func (p *Pin) Name() string { return p.name }

func (p *Pin) Set(high bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = high
	p.writes++
}

func (p *Pin) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.disabled = !enabled
}

// Get returns the level seen on the pin.
func (p *Pin) Get() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level && !p.disabled
}

// Enabled reports whether the pin is connected.
func (p *Pin) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.disabled
}

// Writes returns how many times Set was called.
func (p *Pin) Writes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writes
}

// Pins groups several pins behind one Enabler.
type Pins []*Pin

func (ps Pins) SetEnabled(enabled bool) {
	for _, p := range ps {
		p.SetEnabled(enabled)
	}
}

// ADC is a virtual analog channel. Samples written with Set are clamped to
// the 12-bit range.
type ADC struct {
	mu    sync.Mutex
	value uint16
	reads int
}

// NewADC returns a channel resting at value.
func NewADC(value uint16) *ADC {
	a := &ADC{}
	a.Set(value)
	return a
}

func (a *ADC) Set(value uint16) {
	if value > ADCMax {
		value = ADCMax
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.value = value
}

func (a *ADC) Get() uint16 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reads++
	return a.value
}

// Reads returns how many samples were taken.
func (a *ADC) Reads() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.reads
}

// PWM is a virtual PWM channel with a fixed period.
type PWM struct {
	mu     sync.Mutex
	period uint16
	level  uint16
}

// NewPWM returns a channel counting to period.
func NewPWM(period uint16) *PWM {
	return &PWM{period: period}
}

func (p *PWM) Set(level uint16) {
	if level > p.period {
		level = p.period
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
}

// Level returns the current duty level.
func (p *PWM) Level() uint16 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

// Period returns the counter period.
func (p *PWM) Period() uint16 { return p.period }
