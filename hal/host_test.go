//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestHostTimeMillis(t *testing.T) {
	now := time.Unix(100, 0)
	ht := newHostTimeWithClock(func() time.Time { return now })

	if got := ht.Millis(); got != 0 {
		t.Fatalf("Millis()=%d, want 0", got)
	}
	now = now.Add(1500*time.Millisecond + 900*time.Microsecond)
	if got := ht.Millis(); got != 1500 {
		t.Fatalf("Millis()=%d, want 1500", got)
	}
	now = time.Unix(99, 0)
	if got := ht.Millis(); got != 0 {
		t.Fatalf("Millis() before start=%d, want 0", got)
	}
}

func TestHostLogger(t *testing.T) {
	var buf bytes.Buffer
	l := &hostLogger{w: &buf}
	l.WriteLineString("hello")
	l.WriteLineBytes([]byte("world"))

	if got, want := buf.String(), "hello\nworld\n"; got != want {
		t.Fatalf("output=%q, want %q", got, want)
	}
}

func TestHostLED(t *testing.T) {
	l := &hostLED{}
	l.High()
	if !l.isOn() {
		t.Fatal("expected LED on")
	}
	l.Low()
	if l.isOn() {
		t.Fatal("expected LED off")
	}
}

func TestNewHostDefaults(t *testing.T) {
	h := NewHost(HostConfig{LogOutput: &bytes.Buffer{}})
	fb := h.Display().Framebuffer()
	if fb.Width() != 320 || fb.Height() != 240 {
		t.Fatalf("panel=%dx%d, want 320x240", fb.Width(), fb.Height())
	}
	if fb.StrideBytes() != 640 || len(fb.Buffer()) != 640*240 {
		t.Fatalf("stride=%d len=%d", fb.StrideBytes(), len(fb.Buffer()))
	}
	if h.Radio() == nil || h.Input().Touch() == nil || h.Input().Keyboard() == nil {
		t.Fatal("expected radio and input backends")
	}
}

func TestHostKeyboardReadConsole(t *testing.T) {
	k := newHostKeyboard()
	k.readConsole(bytes.NewBufferString("t\r\ns"))

	var got []rune
	deadline := time.After(time.Second)
	for len(got) < 2 {
		select {
		case ev := <-k.Events():
			got = append(got, ev.Rune)
		case <-deadline:
			t.Fatalf("got %q before timeout", string(got))
		}
	}
	if string(got) != "ts" {
		t.Fatalf("runes=%q, want %q", string(got), "ts")
	}
}

func TestHostFramebufferClear(t *testing.T) {
	fb := newHostFramebuffer(2, 1)
	fb.ClearRGB(0xFF, 0, 0)
	if got := fb.Buffer(); got[0] != 0x00 || got[1] != 0xF8 || got[2] != 0x00 || got[3] != 0xF8 {
		t.Fatalf("buffer=% x, want 00 f8 00 f8", got)
	}
	if err := fb.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if got := fb.presentCount(); got != 1 {
		t.Fatalf("presents=%d, want 1", got)
	}
}

func TestExpandRGB565(t *testing.T) {
	src := []byte{0x00, 0xF8, 0xE0, 0x07, 0x1F, 0x00}
	dst := make([]byte, 12)
	expandRGB565(dst, src)

	want := []byte{
		0xFF, 0x00, 0x00, 0xFF,
		0x00, 0xFF, 0x00, 0xFF,
		0x00, 0x00, 0xFF, 0xFF,
	}
	if !bytes.Equal(dst, want) {
		t.Fatalf("dst=% x, want % x", dst, want)
	}
}

func TestRunHeadlessTicks(t *testing.T) {
	var steps int
	err := RunHeadless(context.Background(), func(HAL) func() error {
		return func() error {
			steps++
			return nil
		}
	}, HeadlessConfig{Hz: 1000, Ticks: 5, Host: HostConfig{LogOutput: &bytes.Buffer{}}})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps=%d, want 5", steps)
	}
}

func TestRunHeadlessStepError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), func(HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Hz: 1000, Host: HostConfig{LogOutput: &bytes.Buffer{}}})
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v, want %v", err, boom)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, func(HAL) func() error { return nil }, HeadlessConfig{Host: HostConfig{LogOutput: &bytes.Buffer{}}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want %v", err, context.Canceled)
	}
}

func TestRunHeadlessSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.png")
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		return func() error {
			h.Display().Framebuffer().ClearRGB(0, 0xFF, 0)
			return nil
		}
	}, HeadlessConfig{
		Hz:       1000,
		Ticks:    1,
		Snapshot: path,
		Host:     HostConfig{Width: 4, Height: 2, LogOutput: &bytes.Buffer{}},
	})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Fatalf("bounds=%v, want 4x2", b)
	}
	r, g, b, _ := img.At(3, 1).RGBA()
	if r != 0 || g>>8 != 0xFF || b != 0 {
		t.Fatalf("pixel=(%d,%d,%d), want green", r>>8, g>>8, b>>8)
	}
}
