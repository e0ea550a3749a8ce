//go:build !tinygo

package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

const defaultHz = 60

// Options configures Run.
type Options struct {
	Hz       int
	BarWidth int
	// Log is silenced while the program owns the terminal.
	Log *logrus.Logger
}

// Run drives loop from the Bubble Tea event loop until the user quits, ctx ends, or a step fails.
func Run(ctx context.Context, loop Loop, mon Monitor, opts Options) error {
	hz := opts.Hz
	if hz <= 0 {
		hz = defaultHz
	}
	model := NewModel(loop, mon, time.Second/time.Duration(hz), opts.BarWidth)

	if opts.Log != nil {
		prevOut := opts.Log.Out
		opts.Log.SetOutput(io.Discard)
		defer opts.Log.SetOutput(prevOut)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
