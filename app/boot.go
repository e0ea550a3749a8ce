package app

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/463N7/CYD-wifi-monitor/internal/buildinfo"
	"github.com/463N7/CYD-wifi-monitor/internal/config"
	"github.com/463N7/CYD-wifi-monitor/monitor/render"
)

const (
	consoleLineH   = 12
	consoleBaseOff = 9
)

var (
	consoleBG     = color.RGBA{A: 0xFF}
	consoleFG     = color.RGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}
	consoleAccent = color.RGBA{G: 0xFF, A: 0xFF}
)

// showBoot prints the startup banner on d. The first rendered view replaces it.
func showBoot(d render.Surface, cfg config.Config) error {
	w, h := d.Size()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("display %dx%d", w, h)
	}
	if err := d.FillRectangle(0, 0, w, h, consoleBG); err != nil {
		return err
	}

	font := &proggy.TinySZ8pt7b
	lines := []string{
		fmt.Sprintf("display  %dx%d", w, h),
		fmt.Sprintf("channels %d-%d", cfg.ChannelMin, cfg.ChannelMax),
		fmt.Sprintf("cadence  %d ms", cfg.ScanCadenceMs),
		"tap or 't' toggles, 's' rescans",
		"",
		"waiting for first scan...",
	}

	y := int16(4)
	tinyfont.WriteLine(d, font, 4, y+consoleBaseOff, "CYD Wi-Fi Monitor "+buildinfo.Short(), consoleAccent)
	for _, line := range lines {
		y += consoleLineH
		if y+consoleLineH > h {
			break
		}
		tinyfont.WriteLine(d, font, 4, y+consoleBaseOff, line, consoleFG)
	}
	return d.Display()
}
