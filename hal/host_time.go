//go:build !tinygo

package hal

import "time"

type hostTime struct {
	start time.Time
	clock func() time.Time
}

func newHostTime() *hostTime {
	return newHostTimeWithClock(time.Now)
}

func newHostTimeWithClock(clock func() time.Time) *hostTime {
	return &hostTime{start: clock(), clock: clock}
}

func (t *hostTime) now() time.Time { return t.clock() }

// Millis returns milliseconds since the HAL was created.
func (t *hostTime) Millis() uint64 {
	d := t.clock().Sub(t.start)
	if d < 0 {
		return 0
	}
	return uint64(d / time.Millisecond)
}
