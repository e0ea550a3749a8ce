//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	// Hz is the loop rate. Zero means 60.
	Hz int
	// Ticks stops the run after that many loop passes. Zero runs until ctx is done.
	Ticks uint64
	// Snapshot, when set, receives the panel as a PNG once the run ends.
	Snapshot string

	Host HostConfig
}

// RunHeadless drives the firmware loop from a ticker instead of a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) (err error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	period := time.Second / time.Duration(cfg.Hz)
	if period <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHostHAL(cfg.Host)
	step := newApp(h)
	if cfg.Snapshot != "" {
		defer func() {
			if serr := writeSnapshot(cfg.Snapshot, h.fb); serr != nil && err == nil {
				err = serr
			}
		}()
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for n := uint64(1); ; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if step != nil {
			if err := step(); err != nil {
				return err
			}
		}
		if cfg.Ticks > 0 && n >= cfg.Ticks {
			return nil
		}
	}
}

func writeSnapshot(path string, fb *hostFramebuffer) error {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	raw := make([]byte, len(fb.buf))
	fb.snapshotRGB565(raw)
	expandRGB565(img.Pix, raw)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: %w", err)
	}
	return f.Close()
}
