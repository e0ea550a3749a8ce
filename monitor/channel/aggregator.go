// Package channel tallies per-channel congestion from one scan's results.
package channel

import "github.com/463N7/CYD-wifi-monitor/hal"

const (
	// MinChannel and MaxChannel bound the 2.4 GHz band.
	MinChannel = 1
	MaxChannel = 14
)

// Source is a read-only view of one scan's raw entries.
type Source interface {
	Len() int
	At(i int) hal.AccessPoint
}

// Tally is the congestion of one channel.
type Tally struct {
	Count  int
	Weight float64
}

// Weight maps an RSSI reading onto a congestion contribution: 0 at -100 dBm and below,
// rising by one per dB. There is no upper cap.
func Weight(rssi int32) float64 {
	w := 100 + int64(rssi)
	if w < 0 {
		return 0
	}
	return float64(w)
}

// Aggregator owns the per-channel tallies of the most recent scan.
type Aggregator struct {
	min, max int

	tallies  [MaxChannel + 1]Tally
	scratch  [MaxChannel + 1]Tally
	maxW     float64
	total    int
	observed int
}

// NewAggregator tracks channels min..max, clamped into the 2.4 GHz band.
func NewAggregator(min, max int) *Aggregator {
	if min < MinChannel {
		min = MinChannel
	}
	if max > MaxChannel {
		max = MaxChannel
	}
	if max < min {
		max = min
	}
	return &Aggregator{min: min, max: max}
}

// Aggregate replaces every tally with the contents of src. Entries on channels outside the
// tracked range are ignored.
func (a *Aggregator) Aggregate(src Source) {
	a.scratch = [MaxChannel + 1]Tally{}
	n := 0
	if src != nil {
		n = src.Len()
	}
	total := 0
	for i := 0; i < n; i++ {
		ap := src.At(i)
		ch := int(ap.Channel)
		if ch < a.min || ch > a.max {
			continue
		}
		t := &a.scratch[ch]
		t.Count++
		t.Weight += Weight(ap.RSSI)
		total++
	}

	maxW := 0.0
	for ch := a.min; ch <= a.max; ch++ {
		if w := a.scratch[ch].Weight; w > maxW {
			maxW = w
		}
	}

	a.tallies = a.scratch
	a.maxW = maxW
	a.total = total
	a.observed = n
}

// Range returns the tracked channel range, inclusive.
func (a *Aggregator) Range() (min, max int) { return a.min, a.max }

// Tally returns the tally of ch, or a zero Tally outside the range.
func (a *Aggregator) Tally(ch int) Tally {
	if ch < a.min || ch > a.max {
		return Tally{}
	}
	return a.tallies[ch]
}

// Channels returns the tallies of the full range in channel order; index 0 is the range's
// first channel.
func (a *Aggregator) Channels() []Tally {
	out := make([]Tally, 0, a.max-a.min+1)
	for ch := a.min; ch <= a.max; ch++ {
		out = append(out, a.tallies[ch])
	}
	return out
}

// MaxWeight is the largest weight over the tracked range; 0 when nothing was seen.
func (a *Aggregator) MaxWeight() float64 { return a.maxW }

// Total is the number of entries that landed on a tracked channel.
func (a *Aggregator) Total() int { return a.total }

// Observed is the number of raw entries in the last pass, tracked channel or not.
func (a *Aggregator) Observed() int { return a.observed }

// Quietest returns the channel with the lowest weight. Ties go to the lower count, then to the
// lower channel number.
func (a *Aggregator) Quietest() int {
	best := a.min
	for ch := a.min + 1; ch <= a.max; ch++ {
		t, b := a.tallies[ch], a.tallies[best]
		if t.Weight < b.Weight || (t.Weight == b.Weight && t.Count < b.Count) {
			best = ch
		}
	}
	return best
}
