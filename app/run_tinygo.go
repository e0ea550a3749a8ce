//go:build tinygo

package app

import (
	"time"

	"github.com/463N7/CYD-wifi-monitor/hal"
)

// Run builds the monitor and loops forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	sys, err := New(h)
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString(err.Error())
		}
		select {}
	}
	for {
		if err := sys.Step(); err != nil {
			select {}
		}
		time.Sleep(time.Millisecond)
	}
}
