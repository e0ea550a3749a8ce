// Package render draws the congestion and network feed views.
//
// Renderers only read: they never mutate the tallies or the snapshot they are handed.
package render

import (
	"image/color"

	"github.com/463N7/CYD-wifi-monitor/monitor/channel"
	"github.com/463N7/CYD-wifi-monitor/monitor/rank"
	"github.com/463N7/CYD-wifi-monitor/monitor/view"
)

// Channels is the read side of the channel aggregator.
type Channels interface {
	Range() (min, max int)
	Tally(ch int) channel.Tally
	MaxWeight() float64
	Total() int
	Quietest() int
}

// Networks is the read side of the ranked snapshot.
type Networks interface {
	Len() int
	At(i int) rank.Network
	Ranked(show int) []int
}

// Frame is everything one render needs.
type Frame struct {
	Mode     view.Mode
	Channels Channels
	Networks Networks

	// Show caps the number of feed rows.
	Show int
	// NameMax is the number of SSID runes shown before the name is cut with "...".
	NameMax int
	// Observed and Dropped describe the last completed scan.
	Observed int
	Dropped  int
	// Scans counts completed scans; 0 means nothing has been collected yet.
	Scans uint64
}

// Renderer draws a Frame on some output.
type Renderer interface {
	Render(f Frame) error
}

var (
	colorBG       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	colorFG       = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorAccent   = color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
	colorDim      = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	colorBarEmpty = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xFF}
)

// scale maps w onto 0..width against max. A zero max is replaced by 1 so empty scans draw
// empty bars.
func scale(w, max float64, width int) int {
	if width <= 0 {
		return 0
	}
	if max <= 0 {
		max = 1
	}
	n := int(w/max*float64(width) + 0.5)
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	return n
}

// displayName shortens n's SSID to max runes plus "...". Hidden networks show as <hidden>.
func displayName(n rank.Network, max int) string {
	if n.Hidden() {
		return "<hidden>"
	}
	name := n.Name
	if max <= 0 {
		return name
	}
	count := 0
	for i := range name {
		if count == max {
			return name[:i] + "..."
		}
		count++
	}
	return name
}
