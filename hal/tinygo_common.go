//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoInput struct {
	kbd   Keyboard
	touch Touch
}

func (in tinyGoInput) Keyboard() Keyboard { return in.kbd }
func (in tinyGoInput) Touch() Touch       { return in.touch }

type tinyGoTime struct {
	start time.Time
}

func newTinyGoTime() *tinyGoTime {
	return &tinyGoTime{start: time.Now()}
}

func (t *tinyGoTime) Millis() uint64 {
	return uint64(time.Since(t.start) / time.Millisecond)
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

// uartConsole turns received UART bytes into rune key events.
type uartConsole struct {
	ch chan KeyEvent
}

func newUARTConsole(uart *machine.UART) *uartConsole {
	c := &uartConsole{ch: make(chan KeyEvent, 16)}
	go func() {
		for {
			for uart.Buffered() > 0 {
				b, err := uart.ReadByte()
				if err != nil {
					break
				}
				if b == '\r' || b == '\n' {
					continue
				}
				select {
				case c.ch <- KeyEvent{Press: true, Rune: rune(b)}:
				default:
				}
			}
			time.Sleep(5 * time.Millisecond)
		}
	}()
	return c
}

func (c *uartConsole) Events() <-chan KeyEvent { return c.ch }
