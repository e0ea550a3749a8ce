//go:build !tinygo

package hal

import (
	"bufio"
	"io"
	"sync"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) push(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

// readConsole forwards bytes from r as rune events until r is exhausted.
func (k *hostKeyboard) readConsole(r io.Reader) {
	go func() {
		br := bufio.NewReader(r)
		for {
			c, _, err := br.ReadRune()
			if err != nil {
				return
			}
			switch c {
			case '\r', '\n':
				continue
			}
			k.push(KeyEvent{Press: true, Rune: c})
		}
	}()
}

type hostTouch struct {
	mu      sync.Mutex
	pressed bool
	x       int16
	y       int16
}

func (t *hostTouch) Touched() (bool, int16, int16) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pressed, t.x, t.y
}

func (t *hostTouch) set(pressed bool, x, y int16) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pressed = pressed
	t.x = x
	t.y = y
}
