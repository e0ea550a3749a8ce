//go:build tinygo && baremetal && cyd

package hal

import (
	"machine"

	"tinygo.org/x/drivers/xpt2046"
)

type cydHAL struct {
	logger *uartLogger
	led    LED
	fb     Framebuffer
	kbd    Keyboard
	touch  Touch
	t      *tinyGoTime
	radio  Radio
}

// New returns the ESP32-2432S028 ("Cheap Yellow Display") HAL: ILI9341 320x240 panel on
// SPI, XPT2046 resistive touch on its own pins, RGB LED (red channel) as the activity LED.
//
// UART: UART0 (USB bridge), 115200 8N1.
//
// The ESP32 radio has no TinyGo driver; scans report ErrNotImplemented and the views stay empty.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{BaudRate: 115200})

	// Without a panel the app falls back to mirroring the views on the UART.
	var fb Framebuffer
	if disp, err := newCYDDisplay(); err == nil {
		fb = disp
	}

	return &cydHAL{
		logger: &uartLogger{uart: uart},
		led:    newActiveLowLED(machine.GPIO4),
		fb:     fb,
		kbd:    newUARTConsole(uart),
		touch:  newCYDTouch(),
		t:      newTinyGoTime(),
		radio:  nullRadio{},
	}
}

func (h *cydHAL) Logger() Logger   { return h.logger }
func (h *cydHAL) LED() LED         { return h.led }
func (h *cydHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *cydHAL) Input() Input     { return tinyGoInput{kbd: h.kbd, touch: h.touch} }
func (h *cydHAL) Time() Time       { return h.t }
func (h *cydHAL) Radio() Radio     { return h.radio }

type cydTouch struct {
	dev xpt2046.Device
}

func newCYDTouch() *cydTouch {
	dev := xpt2046.New(
		machine.GPIO25, // CLK
		machine.GPIO33, // CS
		machine.GPIO32, // DIN (MOSI)
		machine.GPIO39, // DOUT (MISO)
		machine.GPIO36, // IRQ
	)
	dev.Configure(&xpt2046.Config{Precision: 10})
	return &cydTouch{dev: dev}
}

func (t *cydTouch) Touched() (bool, int16, int16) {
	if !t.dev.Touched() {
		return false, 0, 0
	}
	p := t.dev.ReadTouchPoint()
	return true, int16(p.X), int16(p.Y)
}
