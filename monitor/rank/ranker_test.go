package rank

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/463N7/CYD-wifi-monitor/hal"
)

func names(r *Ranker, idx []int) []string {
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		out = append(out, r.At(i).Name)
	}
	return out
}

func TestCaptureKeepsOrderAndFields(t *testing.T) {
	r := NewRanker(8)
	r.Capture(hal.AccessPoints{
		{SSID: "home", RSSI: -40, Channel: 1, Security: hal.SecurityWPA2},
		{SSID: "", RSSI: -70, Channel: 6, Security: hal.SecurityOpen},
	})
	require.Equal(t, 2, r.Len())
	assert.Equal(t, 0, r.Dropped())
	assert.Equal(t, Network{Name: "home", RSSI: -40, Channel: 1, Security: hal.SecurityWPA2}, r.At(0))
	assert.True(t, r.At(1).Hidden())
}

func TestCaptureKeepsLongNames(t *testing.T) {
	long := "an-ssid-that-is-exactly-thirty-2"
	r := NewRanker(4)
	r.Capture(hal.AccessPoints{{SSID: long, RSSI: -50, Channel: 3}})
	assert.Equal(t, long, r.At(0).Name)
}

func TestCaptureTruncatesInCaptureOrder(t *testing.T) {
	src := make(hal.AccessPoints, 70)
	for i := range src {
		src[i] = hal.AccessPoint{SSID: fmt.Sprintf("n%02d", i), RSSI: -90, Channel: 1}
	}
	src[69].RSSI = -10

	r := NewRanker(64)
	r.Capture(src)
	assert.Equal(t, 64, r.Len())
	assert.Equal(t, 6, r.Dropped())
	assert.Equal(t, "n63", r.At(63).Name)

	for _, i := range r.Ranked(15) {
		assert.NotEqual(t, "n69", r.At(i).Name, "entries past capacity never rank")
	}
}

func TestCaptureReplacesPrevious(t *testing.T) {
	r := NewRanker(4)
	r.Capture(hal.AccessPoints{{SSID: "a"}, {SSID: "b"}, {SSID: "c"}})
	r.Capture(hal.AccessPoints{{SSID: "z"}})
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, []string{"z"}, names(r, r.Ranked(10)))

	r.Capture(nil)
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Ranked(10))
}

func TestRankedDescending(t *testing.T) {
	r := NewRanker(64)
	r.Capture(hal.AccessPoints{
		{SSID: "a", RSSI: -70},
		{SSID: "b", RSSI: -30},
		{SSID: "c", RSSI: -55},
		{SSID: "d", RSSI: -90},
		{SSID: "e", RSSI: -31},
	})
	idx := r.Ranked(15)
	require.Len(t, idx, 5)
	assert.Equal(t, []string{"b", "e", "c", "a", "d"}, names(r, idx))
	for k := 1; k < len(idx); k++ {
		assert.GreaterOrEqual(t, r.At(idx[k-1]).RSSI, r.At(idx[k]).RSSI)
	}
}

func TestRankedShowLimit(t *testing.T) {
	r := NewRanker(64)
	r.Capture(hal.AccessPoints{{SSID: "a", RSSI: -70}, {SSID: "b", RSSI: -30}, {SSID: "c", RSSI: -55}})
	assert.Equal(t, []string{"b", "c"}, names(r, r.Ranked(2)))
	assert.Empty(t, r.Ranked(0))
	assert.Empty(t, r.Ranked(-1))
}

func TestRankedTiesKeepCaptureOrder(t *testing.T) {
	r := NewRanker(8)
	r.Capture(hal.AccessPoints{
		{SSID: "A", RSSI: -50},
		{SSID: "B", RSSI: -50},
		{SSID: "C", RSSI: -60},
	})
	assert.Equal(t, []string{"A", "B", "C"}, names(r, r.Ranked(15)))
}

func TestRankedNonIncreasingRandom(t *testing.T) {
	// deterministic pseudo-random RSSI set
	src := make(hal.AccessPoints, 40)
	x := uint32(7)
	for i := range src {
		x = x*1103515245 + 12345
		src[i] = hal.AccessPoint{SSID: fmt.Sprint(i), RSSI: -int32(x>>16) % 100}
	}
	r := NewRanker(64)
	r.Capture(src)
	idx := r.Ranked(15)
	require.Len(t, idx, 15)
	for k := 1; k < len(idx); k++ {
		assert.GreaterOrEqual(t, r.At(idx[k-1]).RSSI, r.At(idx[k]).RSSI)
	}
}
