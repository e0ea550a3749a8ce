// Package rank keeps a bounded snapshot of one scan and orders it by signal strength.
package rank

import "github.com/463N7/CYD-wifi-monitor/hal"

// Source is a read-only view of one scan's raw entries.
type Source interface {
	Len() int
	At(i int) hal.AccessPoint
}

// Network is one captured entry. Name is kept in full; display code shortens it.
type Network struct {
	Name     string
	RSSI     int32
	Channel  int32
	Security hal.Security
}

// Hidden reports whether the network did not broadcast its SSID.
func (n Network) Hidden() bool { return n.Name == "" }

// Ranker holds up to Capacity networks of the latest scan, in the order the radio reported
// them. Entries past the capacity are dropped, strongest or not.
type Ranker struct {
	items   []Network
	n       int
	dropped int

	idx []int
}

func NewRanker(capacity int) *Ranker {
	if capacity < 1 {
		capacity = 1
	}
	return &Ranker{
		items: make([]Network, capacity),
		idx:   make([]int, capacity),
	}
}

// Capture replaces the snapshot with the first Capacity entries of src.
func (r *Ranker) Capture(src Source) {
	total := 0
	if src != nil {
		total = src.Len()
	}
	m := total
	if m > len(r.items) {
		m = len(r.items)
	}
	for i := 0; i < m; i++ {
		ap := src.At(i)
		r.items[i] = Network{
			Name:     ap.SSID,
			RSSI:     ap.RSSI,
			Channel:  ap.Channel,
			Security: ap.Security,
		}
	}
	for i := m; i < r.n; i++ {
		r.items[i] = Network{}
	}
	r.n = m
	r.dropped = total - m
}

func (r *Ranker) Len() int { return r.n }

// Dropped is how many entries of the last capture did not fit.
func (r *Ranker) Dropped() int { return r.dropped }

// At returns snapshot entry i in capture order.
func (r *Ranker) At(i int) Network { return r.items[i] }

// Ranked returns snapshot indices of the show strongest networks, strongest first. Equal RSSI
// keeps capture order. The slice is reused by the next call.
func (r *Ranker) Ranked(show int) []int {
	m := r.n
	for i := 0; i < m; i++ {
		r.idx[i] = i
	}
	if show > m {
		show = m
	}
	if show < 0 {
		show = 0
	}
	for i := 0; i < show; i++ {
		best := i
		for j := i + 1; j < m; j++ {
			if r.items[r.idx[j]].RSSI > r.items[r.idx[best]].RSSI {
				best = j
			}
		}
		if best != i {
			r.idx[i], r.idx[best] = r.idx[best], r.idx[i]
		}
	}
	return r.idx[:show]
}
