package render

import (
	"fmt"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/463N7/CYD-wifi-monitor/hal"
	"github.com/463N7/CYD-wifi-monitor/monitor/channel"
	"github.com/463N7/CYD-wifi-monitor/monitor/rank"
	"github.com/463N7/CYD-wifi-monitor/monitor/view"
)

type fillCall struct {
	x, y, w, h int16
	c          color.RGBA
}

// recordingSurface is a 320x240 surface that remembers fills and pixel colors.
type recordingSurface struct {
	fills    []fillCall
	pixels   map[color.RGBA]int
	displays int
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{pixels: map[color.RGBA]int{}}
}

func (s *recordingSurface) Size() (int16, int16) { return 320, 240 }

func (s *recordingSurface) SetPixel(x, y int16, c color.RGBA) { s.pixels[c]++ }

func (s *recordingSurface) Display() error {
	s.displays++
	return nil
}

func (s *recordingSurface) FillRectangle(x, y, w, h int16, c color.RGBA) error {
	s.fills = append(s.fills, fillCall{x, y, w, h, c})
	return nil
}

func (s *recordingSurface) fillsOf(c color.RGBA) []fillCall {
	var out []fillCall
	for _, f := range s.fills {
		if f.c == c {
			out = append(out, f)
		}
	}
	return out
}

func frameFor(mode view.Mode, aps hal.AccessPoints) Frame {
	agg := channel.NewAggregator(1, 11)
	agg.Aggregate(aps)
	r := rank.NewRanker(64)
	r.Capture(aps)
	return Frame{
		Mode:     mode,
		Channels: agg,
		Networks: r,
		Show:     15,
		NameMax:  22,
		Observed: aps.Len(),
		Dropped:  r.Dropped(),
		Scans:    1,
	}
}

func TestScale(t *testing.T) {
	assert.Equal(t, 0, scale(0, 0, 40))
	assert.Equal(t, 198, scale(60, 60, 198))
	assert.Equal(t, 99, scale(30, 60, 198))
	assert.Equal(t, 0, scale(10, 60, 0))
	assert.Equal(t, 40, scale(80, 60, 40))
}

func TestDisplayName(t *testing.T) {
	named := func(name string) rank.Network { return rank.Network{Name: name} }
	assert.Equal(t, "<hidden>", displayName(named(""), 22))
	assert.Equal(t, "abcdefghijklmnopqrstuv", displayName(named("abcdefghijklmnopqrstuv"), 22))
	assert.Equal(t, "abcdefghijklmnopqrstuv...", displayName(named("abcdefghijklmnopqrstuvwxyz"), 22))
	assert.Equal(t, strings.Repeat("ñ", 22)+"...", displayName(named(strings.Repeat("ñ", 23)), 22))
	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz", displayName(named("abcdefghijklmnopqrstuvwxyz"), 0))
}

func TestLCDCongestionEmpty(t *testing.T) {
	s := newRecordingSurface()
	require.NoError(t, NewLCD(s).Render(frameFor(view.Congestion, nil)))

	assert.Equal(t, 1, s.displays)
	assert.Len(t, s.fillsOf(colorBarEmpty), 11)
	assert.Empty(t, s.fillsOf(colorAccent), "no bar is filled without networks")
}

func TestLCDCongestionBars(t *testing.T) {
	s := newRecordingSurface()
	f := frameFor(view.Congestion, hal.AccessPoints{
		{SSID: "a", RSSI: -40, Channel: 1},
		{SSID: "b", RSSI: -70, Channel: 6},
		{SSID: "c", RSSI: -50, Channel: 13},
	})
	require.NoError(t, NewLCD(s).Render(f))

	require.NotEmpty(t, s.fills)
	assert.Equal(t, fillCall{0, 0, 320, 240, colorBG}, s.fills[0], "clears first")

	bars := s.fillsOf(colorAccent)
	require.Len(t, bars, 2)
	assert.Equal(t, int16(198), bars[0].w)
	assert.Equal(t, int16(marginTop-2), bars[0].y)
	assert.Equal(t, int16(99), bars[1].w)
	assert.Equal(t, int16(marginTop+5*congestRowH-2), bars[1].y)
	assert.Equal(t, 1, s.displays)
	assert.Positive(t, s.pixels[colorFG], "row labels drawn")
}

func TestLCDCongestionFullBandFitsPanel(t *testing.T) {
	agg := channel.NewAggregator(1, 14)
	agg.Aggregate(hal.AccessPoints{{SSID: "jp", RSSI: -50, Channel: 14}})
	s := newRecordingSurface()
	require.NoError(t, NewLCD(s).Render(Frame{Mode: view.Congestion, Channels: agg, Scans: 1}))

	bars := s.fillsOf(colorBarEmpty)
	require.Len(t, bars, 14)
	hintTop := int16(240 - footerOffset)
	for _, b := range bars {
		assert.LessOrEqual(t, b.y+b.h, hintTop, "bar at y=%d h=%d overlaps the hint line", b.y, b.h)
	}
	for i := 1; i < len(bars); i++ {
		assert.Greater(t, bars[i].y, bars[i-1].y+bars[i-1].h-1, "rows %d and %d overlap", i-1, i)
	}
	filled := s.fillsOf(colorAccent)
	require.Len(t, filled, 1)
	assert.Equal(t, bars[13].y, filled[0].y)
}

func TestCongestionPitch(t *testing.T) {
	assert.Equal(t, congestRowH, congestionPitch(240, 11))
	assert.Equal(t, 14, congestionPitch(240, 14))
	assert.Equal(t, congestRowH, congestionPitch(240, 1))
	assert.Equal(t, 5, congestionPitch(40, 14))
}

func TestLCDFeed(t *testing.T) {
	s := newRecordingSurface()
	f := frameFor(view.NetworkFeed, hal.AccessPoints{
		{SSID: "home", RSSI: -40, Channel: 1},
		{SSID: "", RSSI: -60, Channel: 6},
	})
	require.NoError(t, NewLCD(s).Render(f))

	assert.Equal(t, 1, s.displays)
	assert.Positive(t, s.pixels[colorAccent], "prefix and title")
	assert.Positive(t, s.pixels[colorFG], "names")
	assert.Positive(t, s.pixels[colorDim], "footer")
	assert.Empty(t, s.fillsOf(colorBarEmpty))
}

func TestLCDFeedEmpty(t *testing.T) {
	s := newRecordingSurface()
	require.NoError(t, NewLCD(s).Render(frameFor(view.NetworkFeed, nil)))
	assert.Equal(t, 1, s.displays)
	assert.Zero(t, s.pixels[colorFG])
}

func TestTextCongestion(t *testing.T) {
	agg := channel.NewAggregator(1, 3)
	agg.Aggregate(hal.AccessPoints{{RSSI: -40, Channel: 1}, {RSSI: -70, Channel: 3}})
	lines := TextLines(Frame{Mode: view.Congestion, Channels: agg, Scans: 1}, 10)

	assert.Equal(t, []string{
		"Channel usage (2.4 GHz), bars = RSSI-weighted congestion:",
		"  ch1  :  1 APs | weight:   60.0 | ##########",
		"  ch2  :  0 APs | weight:    0.0 | ----------",
		"  ch3  :  1 APs | weight:   30.0 | #####-----",
		"  quietest: ch2",
	}, lines)
}

func TestTextCongestionEmpty(t *testing.T) {
	lines := TextLines(frameFor(view.Congestion, nil), 8)
	require.Len(t, lines, 12)
	for _, l := range lines[1:] {
		assert.True(t, strings.HasSuffix(l, "| --------"), l)
	}
}

func TestTextFeedRankedOrder(t *testing.T) {
	f := frameFor(view.NetworkFeed, hal.AccessPoints{
		{SSID: "weak", RSSI: -80, Channel: 11, Security: hal.SecurityOpen},
		{SSID: "home", RSSI: -40, Channel: 6, Security: hal.SecurityWPA2},
		{SSID: "", RSSI: -55, Channel: 1, Security: hal.SecurityWPA3},
	})
	lines := TextLines(f, 40)

	require.Len(t, lines, 4)
	assert.Equal(t, "Found 3 networks", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], " 1) ch6   home "), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], "RSSI: -40 dBm  sec:WPA2"), lines[1])
	assert.Contains(t, lines[2], "<hidden>")
	assert.Contains(t, lines[3], "weak")
}

func TestTextFeedHonorsShowAndNameMax(t *testing.T) {
	var aps hal.AccessPoints
	for i := 0; i < 30; i++ {
		aps = append(aps, hal.AccessPoint{
			SSID:    fmt.Sprintf("Neighbourhood-Network-Name-%02d", i),
			RSSI:    int32(-30 - i),
			Channel: 6,
		})
	}
	lines := TextLines(frameFor(view.NetworkFeed, aps), 40)

	require.Len(t, lines, 16, "header plus Show rows")
	assert.Equal(t, "Found 30 networks", lines[0])
	assert.Contains(t, lines[1], "Neighbourhood-Network-... ")
	assert.NotContains(t, lines[1], "Name-00")
	assert.Contains(t, lines[15], "RSSI: -44 dBm")
}

func TestTextRendererWritesLines(t *testing.T) {
	var got []string
	w := lineFunc(func(s string) { got = append(got, s) })
	require.NoError(t, NewText(w, 10).Render(frameFor(view.NetworkFeed, nil)))
	assert.Equal(t, []string{"Found 0 networks"}, got)
}

type lineFunc func(string)

func (f lineFunc) WriteLineString(s string) { f(s) }
