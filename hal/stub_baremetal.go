//go:build tinygo && baremetal

package hal

import "machine"

// activeLowLED drives an LED wired between the supply and the pin.
type activeLowLED struct {
	pin machine.Pin
}

func newActiveLowLED(pin machine.Pin) *activeLowLED {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.High()
	return &activeLowLED{pin: pin}
}

func (l *activeLowLED) High() { l.pin.Low() }
func (l *activeLowLED) Low()  { l.pin.High() }

// noTouch is the Touch of boards without a panel digitizer; only the console toggles views.
type noTouch struct{}

func (noTouch) Touched() (bool, int16, int16) { return false, 0, 0 }
