//go:build !tinygo

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { //nolint:ireturn
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		m.help.Width = x.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(x)

	case tickMsg:
		if err := m.step(); err != nil {
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Toggle):
		m.mon.InjectToggle()
		m.notice = ""
		if err := m.step(); err != nil {
			return m, tea.Quit
		}
	case key.Matches(msg, m.keys.Rescan):
		if m.mon.RequestScan() {
			m.notice = "rescan requested"
		} else {
			m.notice = "scan already running"
		}
	}
	return m, nil
}

func (m *Model) step() error {
	if err := m.loop.Step(); err != nil {
		m.err = err
		return err
	}
	m.steps++
	return nil
}
