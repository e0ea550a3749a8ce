//go:build tinygo && baremetal && !cyd

package hal

import (
	"machine"
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	fb     Framebuffer
	kbd    Keyboard
	touch  Touch
	t      *tinyGoTime
	radio  Radio
}

// New returns a display-less HAL for boards without a panel: the views are only
// mirrored to the UART console.
//
// UART: UART0 at its board default pins, 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{BaudRate: 115200})

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		led:    &pinLED{pin: ledPin},
		kbd:    newUARTConsole(uart),
		touch:  noTouch{},
		t:      newTinyGoTime(),
		radio:  nullRadio{},
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) LED() LED         { return h.led }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{kbd: h.kbd, touch: h.touch} }
func (h *tinyGoHAL) Time() Time       { return h.t }
func (h *tinyGoHAL) Radio() Radio     { return h.radio }
