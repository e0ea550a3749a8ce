package render

import (
	"fmt"
	"strings"

	"github.com/463N7/CYD-wifi-monitor/monitor/view"
)

// LineWriter receives rendered text one line at a time. hal.Logger satisfies it.
type LineWriter interface {
	WriteLineString(s string)
}

// Text renders the views as plain text lines, the way the serial console shows them.
type Text struct {
	w        LineWriter
	barWidth int
}

// NewText returns a text renderer with barWidth-character congestion bars.
func NewText(w LineWriter, barWidth int) *Text {
	return &Text{w: w, barWidth: barWidth}
}

func (t *Text) Render(f Frame) error {
	for _, line := range TextLines(f, t.barWidth) {
		t.w.WriteLineString(line)
	}
	return nil
}

// TextLines returns the text form of f's view.
func TextLines(f Frame, barWidth int) []string {
	if f.Mode == view.NetworkFeed {
		return feedLines(f)
	}
	return congestionLines(f, barWidth)
}

func congestionLines(f Frame, barWidth int) []string {
	lines := []string{"Channel usage (2.4 GHz), bars = RSSI-weighted congestion:"}
	if f.Channels == nil {
		return lines
	}
	maxW := f.Channels.MaxWeight()
	min, max := f.Channels.Range()
	for ch := min; ch <= max; ch++ {
		t := f.Channels.Tally(ch)
		lines = append(lines, fmt.Sprintf("  ch%-2d : %2d APs | weight:%7.1f | %s",
			ch, t.Count, t.Weight, textBar(t.Weight, maxW, barWidth)))
	}
	if f.Scans > 0 && f.Channels.Total() > 0 {
		lines = append(lines, fmt.Sprintf("  quietest: ch%d", f.Channels.Quietest()))
	}
	return lines
}

func textBar(w, max float64, width int) string {
	if width <= 0 {
		return ""
	}
	n := scale(w, max, width)
	return strings.Repeat("#", n) + strings.Repeat("-", width-n)
}

func feedLines(f Frame) []string {
	lines := []string{fmt.Sprintf("Found %d networks", f.Observed)}
	if f.Networks == nil {
		return lines
	}
	for i, idx := range f.Networks.Ranked(f.Show) {
		n := f.Networks.At(idx)
		lines = append(lines, fmt.Sprintf("%2d) ch%-2d  %-32s  RSSI:%4d dBm  sec:%s",
			i+1, n.Channel, displayName(n, f.NameMax), n.RSSI, n.Security))
	}
	if f.Dropped > 0 {
		lines = append(lines, fmt.Sprintf("(%d more not kept)", f.Dropped))
	}
	return lines
}
