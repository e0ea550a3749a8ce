//go:build !tinygo && !cgo

package hal

import "errors"

// ErrNoWindow is returned by RunWindow in builds without cgo; use headless or TUI mode.
var ErrNoWindow = errors.New("window mode needs a cgo build (CGO_ENABLED=1); use --headless or --tui")

func RunWindow(_ HostConfig, _ func(HAL) func() error) error {
	return ErrNoWindow
}
