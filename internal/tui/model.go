//go:build !tinygo

// Package tui is a terminal front-end that drives the monitor loop and shows the text views.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/463N7/CYD-wifi-monitor/monitor/render"
	"github.com/463N7/CYD-wifi-monitor/monitor/scan"
)

// Loop is one pass of the monitor loop.
type Loop interface {
	Step() error
}

// Monitor is the part of the monitor the TUI reads and pokes.
type Monitor interface {
	Frame() render.Frame
	InjectToggle()
	RequestScan() bool
	ScanState() scan.State
}

// tickMsg drives one loop pass.
type tickMsg time.Time

// Model is the root Bubble Tea model.
type Model struct {
	loop     Loop
	mon      Monitor
	keys     keyMap
	help     help.Model
	interval time.Duration
	barWidth int

	width    int
	height   int
	steps    uint64
	notice   string
	err      error
	quitting bool
}

// NewModel returns a model stepping loop every interval.
func NewModel(loop Loop, mon Monitor, interval time.Duration, barWidth int) Model {
	if interval <= 0 {
		interval = time.Second / defaultHz
	}
	return Model{
		loop:     loop,
		mon:      mon,
		keys:     newKeyMap(),
		help:     help.New(),
		interval: interval,
		barWidth: barWidth,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Err is the loop error that ended the program, if any.
func (m Model) Err() error { return m.err }
