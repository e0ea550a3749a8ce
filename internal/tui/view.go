//go:build !tinygo

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/463N7/CYD-wifi-monitor/internal/buildinfo"
	"github.com/463N7/CYD-wifi-monitor/monitor/render"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	bodyStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func (m Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	f := m.mon.Frame()
	b.WriteString(bodyStyle.Render(strings.Join(render.TextLines(f, m.barWidth), "\n")))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderHeader() string {
	f := m.mon.Frame()
	title := titleStyle.Render("CYD Wi-Fi Monitor")
	status := statusStyle.Render(fmt.Sprintf("%s | view: %s | radio: %s | scans: %d",
		buildinfo.Short(), f.Mode, m.mon.ScanState(), f.Scans))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", status)
}
