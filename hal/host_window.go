//go:build !tinygo && cgo

package hal

import (
	"errors"
	"image"
	"image/color"

	"github.com/463N7/CYD-wifi-monitor/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const windowScale = 2

// ledSize is the side of the scan-activity square drawn in the top-right corner.
const ledSize = 4

var ledColor = color.RGBA{R: 0xE0, G: 0x20, B: 0x20, A: 0xFF}

// RunWindow opens a desktop window showing the simulated panel at twice its size. Typed
// characters reach the console, the left mouse button is the touch panel and Escape quits.
// It blocks until the window closes.
func RunWindow(cfg HostConfig, newApp func(HAL) func() error) error {
	h := newHostHAL(cfg)
	g := &panelGame{h: h, step: newApp(h)}

	ebiten.SetWindowTitle("CYD Wi-Fi Monitor " + buildinfo.Short())
	ebiten.SetWindowSize(h.fb.width*windowScale, h.fb.height*windowScale)
	ebiten.SetTPS(60)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// panelGame mirrors the RGB565 framebuffer into an ebiten image once per frame.
type panelGame struct {
	h    *hostHAL
	step func() error

	rgba  *image.RGBA
	panel *ebiten.Image
	raw   []byte
}

func (g *panelGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.h.kbd.poll(g.h.touch)
	if g.step == nil {
		return nil
	}
	return g.step()
}

func (g *panelGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.panel == nil {
		g.rgba = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.raw = make([]byte, len(fb.buf))
		g.panel = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.raw)
	expandRGB565(g.rgba.Pix, g.raw)
	g.panel.WritePixels(g.rgba.Pix)
	screen.DrawImage(g.panel, nil)

	if g.h.led.isOn() {
		r := image.Rect(fb.width-ledSize-1, 1, fb.width-1, 1+ledSize)
		screen.SubImage(r).(*ebiten.Image).Fill(ledColor)
	}
}

func (g *panelGame) Layout(_, _ int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
