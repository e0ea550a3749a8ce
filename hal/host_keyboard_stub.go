//go:build !tinygo && !cgo

package hal

func (k *hostKeyboard) poll(t *hostTouch) {
	// No keyboard or pointer support without the window backend.
	_ = t
}
