package render

import (
	"fmt"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/463N7/CYD-wifi-monitor/monitor/view"
)

// LCD layout, in pixels. Text y coordinates name the top of the line; the font
// baseline is added when drawing.
const (
	marginL      = 6
	marginR      = 6
	marginTop    = 25
	titleY       = 2
	titleBase    = 13
	bodyBase     = 9
	labelW       = 110
	congestRowH  = 18
	feedTop      = 24
	feedRowH     = 14
	footerOffset = 12
)

const (
	titleCongestion = "2.4 GHz: Congestion"
	titleFeed       = "SSID Feed (top by RSSI)"
	footerFeed      = "Tap to toggle view"
)

// LCD draws the views on a pixel surface with tinyfont.
type LCD struct {
	s     Surface
	title tinyfont.Fonter
	body  tinyfont.Fonter
}

// NewLCD returns an LCD renderer.
func NewLCD(s Surface) *LCD {
	return &LCD{
		s:     s,
		title: &freemono.Bold9pt7b,
		body:  &proggy.TinySZ8pt7b,
	}
}

func (l *LCD) Render(f Frame) error {
	w, h := l.s.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	if err := l.s.FillRectangle(0, 0, w, h, colorBG); err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	var err error
	if f.Mode == view.NetworkFeed {
		err = l.feed(f, h)
	} else {
		err = l.congestion(f, w, h)
	}
	if err != nil {
		return err
	}
	return l.s.Display()
}

func (l *LCD) congestion(f Frame, w, h int16) error {
	tinyfont.WriteLine(l.s, l.title, marginL, titleY+titleBase, titleCongestion, colorAccent)
	if f.Channels == nil {
		return nil
	}

	barW := int(w) - marginL - marginR - labelW
	if barW < 0 {
		barW = 0
	}
	maxW := f.Channels.MaxWeight()
	min, max := f.Channels.Range()
	rowH := congestionPitch(int(h), max-min+1)
	for ch := min; ch <= max; ch++ {
		t := f.Channels.Tally(ch)
		y := int16(marginTop + (ch-min)*rowH)

		label := fmt.Sprintf("ch%-2d  cnt:%2d  wt:", ch, t.Count)
		tinyfont.WriteLine(l.s, l.body, marginL, y+bodyBase, label, colorFG)

		bx := int16(marginL + labelW)
		by := y - 2
		bh := int16(rowH - 4)
		if err := l.s.FillRectangle(bx, by, int16(barW), bh, colorBarEmpty); err != nil {
			return err
		}
		if filled := scale(t.Weight, maxW, barW); filled > 0 {
			if err := l.s.FillRectangle(bx, by, int16(filled), bh, colorAccent); err != nil {
				return err
			}
		}
	}

	tinyfont.WriteLine(l.s, l.body, marginL, h-footerOffset+bodyBase, congestionHint(f), colorDim)
	return nil
}

// congestionPitch is the row pitch that fits rows between the title and the hint line,
// capped at congestRowH. Bars keep at least one pixel.
func congestionPitch(h, rows int) int {
	if rows < 1 {
		return congestRowH
	}
	pitch := (h - marginTop - footerOffset) / rows
	if pitch > congestRowH {
		pitch = congestRowH
	}
	if pitch < 5 {
		pitch = 5
	}
	return pitch
}

func (l *LCD) feed(f Frame, h int16) error {
	tinyfont.WriteLine(l.s, l.title, marginL, titleY+titleBase, titleFeed, colorAccent)

	y := int16(feedTop)
	if f.Networks != nil {
		for i, idx := range f.Networks.Ranked(f.Show) {
			n := f.Networks.At(idx)
			prefix := fmt.Sprintf("%2d) ch%-2d  RSSI:%4d  ", i+1, n.Channel, n.RSSI)
			tinyfont.WriteLine(l.s, l.body, marginL, y+bodyBase, prefix, colorAccent)
			_, pw := tinyfont.LineWidth(l.body, prefix)
			tinyfont.WriteLine(l.s, l.body, marginL+int16(pw), y+bodyBase, displayName(n, f.NameMax), colorFG)
			y += feedRowH
		}
	}
	if f.Networks == nil || f.Networks.Len() == 0 {
		msg := "no networks yet"
		if f.Scans > 0 {
			msg = "no networks found"
		}
		tinyfont.WriteLine(l.s, l.body, marginL, y+bodyBase, msg, colorDim)
	}

	tinyfont.WriteLine(l.s, l.body, marginL, h-footerOffset+bodyBase, footerFeed, colorDim)
	return nil
}

func congestionHint(f Frame) string {
	if f.Scans == 0 {
		return "scanning..."
	}
	if f.Channels.Total() == 0 {
		return "no networks in range"
	}
	return fmt.Sprintf("quietest: ch%d   %d APs seen", f.Channels.Quietest(), f.Observed)
}
