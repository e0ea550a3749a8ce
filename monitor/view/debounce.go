package view

// Debouncer turns a sampled pressed/released signal into toggle events: one per release,
// and none within Interval ms of the previous one.
type Debouncer struct {
	// Interval is the minimum time between two recognized toggles, in milliseconds.
	Interval uint64

	wasDown  bool
	injected bool
	fired    bool
	last     uint64
}

// Inject makes the next Sample see a release regardless of the real input.
func (d *Debouncer) Inject() {
	d.injected = true
}

// Sample feeds the current pressed state. It returns true when a toggle is recognized.
func (d *Debouncer) Sample(down bool, now uint64) bool {
	if d.injected {
		d.injected = false
		d.wasDown = true
		down = false
	}

	toggle := false
	if d.wasDown && !down && (!d.fired || now-d.last >= d.Interval) {
		toggle = true
		d.fired = true
		d.last = now
	}
	d.wasDown = down
	return toggle
}
