//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// HostConfig selects the host backends.
type HostConfig struct {
	// Width and Height of the simulated panel. Zero means the CYD's 320x240 landscape panel.
	Width  int
	Height int

	// Scenario replaces the built-in simulated beacon environment.
	Scenario *Scenario

	// Console forwards stdin bytes as rune key events.
	Console bool

	// LogOutput receives logger lines. Nil means stdout.
	LogOutput io.Writer
}

type hostHAL struct {
	logger *hostLogger
	led    *hostLED
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	touch  *hostTouch
	t      *hostTime
	radio  *simRadio
}

// New returns a host HAL implementation with the built-in beacon environment.
func New() HAL {
	return newHostHAL(HostConfig{})
}

// NewHost returns a host HAL implementation for cfg.
func NewHost(cfg HostConfig) HAL {
	return newHostHAL(cfg)
}

func newHostHAL(cfg HostConfig) *hostHAL {
	if cfg.Width <= 0 {
		cfg.Width = 320
	}
	if cfg.Height <= 0 {
		cfg.Height = 240
	}
	out := cfg.LogOutput
	if out == nil {
		out = os.Stdout
	}
	t := newHostTime()
	kbd := newHostKeyboard()
	if cfg.Console {
		kbd.readConsole(os.Stdin)
	}
	return &hostHAL{
		logger: &hostLogger{w: out},
		led:    &hostLED{},
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		kbd:    kbd,
		touch:  &hostTouch{},
		t:      t,
		radio:  newSimRadio(cfg.Scenario, t.now),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) LED() LED         { return h.led }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, touch: h.touch} }
func (h *hostHAL) Time() Time       { return h.t }
func (h *hostHAL) Radio() Radio     { return h.radio }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd   *hostKeyboard
	touch *hostTouch
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Touch() Touch       { return in.touch }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// hostLED only tracks state; scan activity toggles it every cycle.
type hostLED struct {
	mu sync.Mutex
	on bool
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
}

func (l *hostLED) isOn() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}
