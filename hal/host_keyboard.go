//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// poll forwards typed characters as rune events and mirrors the left mouse button as a touch.
func (k *hostKeyboard) poll(t *hostTouch) {
	for _, r := range ebiten.AppendInputChars(nil) {
		k.push(KeyEvent{Press: true, Rune: r})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		k.push(KeyEvent{Code: KeyEnter, Press: true})
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEnter) {
		k.push(KeyEvent{Code: KeyEnter, Press: false})
	}

	if t == nil {
		return
	}
	x, y := ebiten.CursorPosition()
	t.set(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), int16(x), int16(y))
}
