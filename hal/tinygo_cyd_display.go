//go:build tinygo && baremetal && cyd

package hal

import (
	"errors"
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ili9341"
)

type cydFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	lcd   *ili9341.Device
	txBuf []byte
}

func newCYDDisplay() (*cydFramebuffer, error) {
	spi := machine.SPI2
	if err := spi.Configure(machine.SPIConfig{
		SCK:       machine.GPIO14,
		SDO:       machine.GPIO13,
		SDI:       machine.GPIO12,
		Frequency: 40_000_000,
	}); err != nil {
		return nil, err
	}

	backlight := machine.GPIO21
	backlight.Configure(machine.PinConfig{Mode: machine.PinOutput})
	backlight.High()

	lcd := ili9341.NewSPI(spi, machine.GPIO2, machine.GPIO15, machine.NoPin)
	lcd.Configure(ili9341.Config{
		Width:    240,
		Height:   320,
		Rotation: drivers.Rotation90,
	})

	const w = 320
	const h = 240
	return &cydFramebuffer{
		w:      w,
		h:      h,
		stride: w * 2,
		buf:    make([]byte, w*h*2),
		lcd:    lcd,
		txBuf:  make([]byte, w*2*8),
	}, nil
}

func (f *cydFramebuffer) Width() int          { return f.w }
func (f *cydFramebuffer) Height() int         { return f.h }
func (f *cydFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *cydFramebuffer) StrideBytes() int    { return f.stride }
func (f *cydFramebuffer) Buffer() []byte      { return f.buf }

func (f *cydFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// Present pushes the framebuffer in bands of rows; the panel expects big-endian RGB565.
func (f *cydFramebuffer) Present() error {
	if f.lcd == nil {
		return ErrNotImplemented
	}
	rows := len(f.txBuf) / f.stride
	if rows <= 0 {
		return errors.New("tx buffer too small")
	}
	for y := 0; y < f.h; y += rows {
		n := rows
		if y+n > f.h {
			n = f.h - y
		}
		src := f.buf[y*f.stride : (y+n)*f.stride]
		chunk := f.txBuf[:len(src)]
		for i := 0; i+1 < len(src); i += 2 {
			chunk[i] = src[i+1]
			chunk[i+1] = src[i]
		}
		if err := f.lcd.DrawRGBBitmap8(0, int16(y), chunk, int16(f.w), int16(n)); err != nil {
			return err
		}
	}
	return nil
}
