//go:build tinygo

package board

import (
	"errors"
	"image/color"
	"machine"
	"time"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"
	"tinygo.org/x/drivers/ssd1306"

	"github.com/harveysanders/bitdoglab/control"
	"github.com/harveysanders/bitdoglab/matrix"
	"github.com/harveysanders/bitdoglab/oled"
)

// ConfigureOLED brings up I2C1 and the SSD1306 panel, and blanks it.
func ConfigureOLED() (*ssd1306.Device, error) {
	err := machine.I2C1.Configure(machine.I2CConfig{
		Frequency: I2CFrequency,
		SDA:       machine.Pin(I2CSDAPin),
		SCL:       machine.Pin(I2CSCLPin),
	})
	if err != nil {
		return nil, errors.New("configure I2C1:" + err.Error())
	}

	// Give the panel time to power up before the init sequence.
	time.Sleep(10 * time.Millisecond)

	dev := ssd1306.NewI2C(machine.I2C1)
	dev.Configure(ssd1306.Config{
		Address: oled.Address,
		Width:   oled.Width,
		Height:  oled.Height,
	})
	dev.ClearDisplay()
	return dev, nil
}

// Strip is the WS2812B matrix strip driven by a PIO state machine.
type Strip struct {
	ws *piolib.WS2812B
}

// ConfigureMatrix claims a PIO0 state machine for the LED matrix.
func ConfigureMatrix() (*Strip, error) {
	sm, err := pio.PIO0.ClaimStateMachine()
	if err != nil {
		return nil, errors.New("claim PIO state machine:" + err.Error())
	}
	ws, err := piolib.NewWS2812B(sm, machine.Pin(MatrixPin))
	if err != nil {
		return nil, errors.New("ws2812b init:" + err.Error())
	}
	return &Strip{ws: ws}, nil
}

// Put blocks until the state machine FIFO takes the pixel.
func (s *Strip) Put(px matrix.Pixel) {
	s.ws.PutColor(color.RGBA{R: px.R, G: px.G, B: px.B, A: 0xff})
}

// ConfigureLED sets up pin as a low digital output.
func ConfigureLED(pin int) machine.Pin {
	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.Low()
	return p
}

// LEDPins reconfigures a group of LED pins. Disabled pins are turned into
// inputs so the LEDs go dark regardless of the output latch.
type LEDPins []machine.Pin

func (ps LEDPins) SetEnabled(enabled bool) {
	mode := machine.PinOutput
	if !enabled {
		mode = machine.PinInput
	}
	for _, p := range ps {
		p.Configure(machine.PinConfig{Mode: mode})
	}
}

// Axis is a joystick ADC channel scaled to 12 bits.
type Axis struct {
	adc machine.ADC
}

// Get returns a 12-bit sample. machine.ADC reports 16-bit values.
func (a Axis) Get() uint16 {
	return a.adc.Get() >> 4
}

// ConfigureJoystick returns the vertical (ADC0) and horizontal (ADC1) axes.
func ConfigureJoystick() (y, x Axis) {
	machine.InitADC()
	y = Axis{adc: machine.ADC{Pin: machine.ADC0}}
	x = Axis{adc: machine.ADC{Pin: machine.ADC1}}
	y.adc.Configure(machine.ADCConfig{})
	x.adc.Configure(machine.ADCConfig{})
	return y, x
}

// pwmGroup is the method set of a machine PWM slice.
type pwmGroup interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Set(channel uint8, value uint32)
	Top() uint32
}

// Dimmer is one PWM channel with levels from 0 to control.BrightnessMax.
type Dimmer struct {
	pwm pwmGroup
	ch  uint8
}

func (d *Dimmer) Set(level uint16) {
	if level > control.BrightnessMax {
		level = control.BrightnessMax
	}
	d.pwm.Set(d.ch, uint32(level)*d.pwm.Top()/control.BrightnessMax)
}

// ConfigureDimmers sets up the red and blue LEDs, which share PWM slice 6.
func ConfigureDimmers() (red, blue *Dimmer, err error) {
	pwm := machine.PWM6
	err = pwm.Configure(machine.PWMConfig{
		Period: uint64(time.Second) / PWMFrequency,
	})
	if err != nil {
		return nil, nil, errors.New("configure PWM:" + err.Error())
	}

	redCh, err := pwm.Channel(machine.Pin(RedLEDPin))
	if err != nil {
		return nil, nil, errors.New("red PWM channel:" + err.Error())
	}
	blueCh, err := pwm.Channel(machine.Pin(BlueLEDPin))
	if err != nil {
		return nil, nil, errors.New("blue PWM channel:" + err.Error())
	}

	red = &Dimmer{pwm: pwm, ch: redCh}
	blue = &Dimmer{pwm: pwm, ch: blueCh}
	red.Set(0)
	blue.Set(0)
	return red, blue, nil
}

// WatchButton posts a ButtonEvent on every falling edge of pin. The
// interrupt handler only timestamps the edge; events are dropped if the
// queue is full.
func WatchButton(pin int, b control.Button, events chan<- control.ButtonEvent) error {
	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	err := p.SetInterrupt(machine.PinFalling, func(machine.Pin) {
		control.Post(events, control.ButtonEvent{Button: b, At: time.Now()})
	})
	if err != nil {
		return errors.New("button " + b.String() + " interrupt:" + err.Error())
	}
	return nil
}

// ReadConsole forwards bytes received on the USB serial console to input.
// It blocks forever and should be run in its own goroutine.
func ReadConsole(input chan<- byte) {
	const pollInterval = 5 * time.Millisecond
	for {
		if machine.Serial.Buffered() == 0 {
			time.Sleep(pollInterval)
			continue
		}
		b, err := machine.Serial.ReadByte()
		if err != nil {
			continue
		}
		input <- b
	}
}
