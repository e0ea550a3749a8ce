// Package config holds the monitor's operational parameters.
package config

// Config is the full set of tunables. Zero values are not meaningful; start from Default.
type Config struct {
	// ScanCadenceMs is the minimum interval between scan starts.
	ScanCadenceMs uint64 `yaml:"scan_cadence_ms" validate:"gte=100,lte=600000"`
	// DebounceMs is the minimum interval between two recognized view toggles.
	DebounceMs uint64 `yaml:"debounce_ms" validate:"lte=5000"`

	ChannelMin int `yaml:"channel_min" validate:"gte=1,lte=14"`
	ChannelMax int `yaml:"channel_max" validate:"gte=1,lte=14,gtefield=ChannelMin"`

	// SnapshotCapacity bounds how many networks of one scan are kept for ranking.
	SnapshotCapacity int `yaml:"snapshot_capacity" validate:"gte=1,lte=256"`
	// ShowCount is how many ranked networks the feed view lists.
	ShowCount int `yaml:"show_count" validate:"gte=1,lte=64"`
	// BarWidth is the congestion bar length of the text view, in characters. The LCD bar spans
	// whatever the panel leaves next to the row labels.
	BarWidth int `yaml:"bar_width" validate:"gte=4,lte=120"`
	// NameMax is the number of SSID runes shown before the name is cut with "...".
	NameMax int `yaml:"name_max" validate:"gte=4,lte=32"`

	IncludeHidden bool `yaml:"include_hidden"`
	SerialMirror  bool `yaml:"serial_mirror"`
}

// Default returns the parameters the device ships with.
func Default() Config {
	return Config{
		ScanCadenceMs:    3000,
		DebounceMs:       250,
		ChannelMin:       1,
		ChannelMax:       11,
		SnapshotCapacity: 64,
		ShowCount:        15,
		BarWidth:         40,
		NameMax:          22,
		IncludeHidden:    true,
	}
}
