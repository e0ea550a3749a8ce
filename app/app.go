// Package app builds the monitor on top of a HAL.
package app

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/463N7/CYD-wifi-monitor/hal"
	"github.com/463N7/CYD-wifi-monitor/internal/config"
	"github.com/463N7/CYD-wifi-monitor/monitor"
	"github.com/463N7/CYD-wifi-monitor/monitor/render"
)

// ErrHalted is returned by Step after a panic was caught and reported.
var ErrHalted = errors.New("halted after panic")

type Config struct {
	Monitor config.Config
	Verbose bool

	// Log replaces the logger built on the HAL's line logger.
	Log *logrus.Logger
	// Observer receives loop events.
	Observer monitor.Observer
	// Renderers are added after the LCD and serial renderers.
	Renderers []render.Renderer
	// Console feeds the HAL keyboard to the loop. Front-ends that own the terminal leave it off.
	Console bool
	// Boot prints the boot console on the panel before the first scan completes.
	Boot bool
}

// System is a monitor wired to a HAL.
type System struct {
	h      hal.HAL
	log    *logrus.Logger
	mon    *monitor.Monitor
	halted bool
}

// New builds the monitor for h with default settings.
func New(h hal.HAL) (*System, error) {
	return NewWithConfig(h, Config{Monitor: config.Default(), Console: true, Boot: true})
}

func NewWithConfig(h hal.HAL, cfg Config) (*System, error) {
	if h == nil {
		return nil, errors.New("app: nil HAL")
	}
	log := cfg.Log
	if log == nil {
		log = NewLogger(h.Logger(), cfg.Verbose)
	}

	var renderers []render.Renderer
	var surface *render.FramebufferSurface
	if d := h.Display(); d != nil {
		if fb := d.Framebuffer(); fb != nil && fb.Format() == hal.PixelFormatRGB565 {
			surface = render.NewFramebufferSurface(fb)
			renderers = append(renderers, render.NewLCD(surface))
		}
	}
	// Panel-less boards always mirror the views as text.
	if (cfg.Monitor.SerialMirror || surface == nil) && h.Logger() != nil {
		renderers = append(renderers, render.NewText(h.Logger(), cfg.Monitor.BarWidth))
	}
	renderers = append(renderers, cfg.Renderers...)

	deps := monitor.Deps{
		Radio:     h.Radio(),
		Clock:     h.Time(),
		LED:       h.LED(),
		Log:       log,
		Observer:  cfg.Observer,
		Renderers: renderers,
	}
	if in := h.Input(); in != nil {
		deps.Touch = in.Touch()
		if cfg.Console {
			deps.Keys = in.Keyboard()
		}
	}

	mon, err := monitor.New(deps, cfg.Monitor)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	if cfg.Boot && surface != nil {
		if err := showBoot(surface, cfg.Monitor); err != nil {
			log.WithError(err).Warn("boot console unavailable")
		}
	}
	log.WithFields(logrus.Fields{
		"channels": fmt.Sprintf("%d-%d", cfg.Monitor.ChannelMin, cfg.Monitor.ChannelMax),
		"cadence":  cfg.Monitor.ScanCadenceMs,
	}).Info("monitor started")

	return &System{h: h, log: log, mon: mon}, nil
}

func (s *System) Monitor() *monitor.Monitor { return s.mon }

// Step runs one loop pass. A panic inside the loop is reported on the log and the panel, and
// every later Step returns ErrHalted.
func (s *System) Step() (err error) {
	if s.halted {
		return ErrHalted
	}
	defer func() {
		if r := recover(); r != nil {
			s.halted = true
			reportPanic(s.h, r)
			err = ErrHalted
		}
	}()
	s.mon.Step()
	return nil
}

// StepFunc adapts NewWithConfig to the host runners. A build error is returned by the first step.
func StepFunc(cfg Config) func(h hal.HAL) func() error {
	return func(h hal.HAL) func() error {
		sys, err := NewWithConfig(h, cfg)
		if err != nil {
			return func() error { return err }
		}
		return sys.Step
	}
}
