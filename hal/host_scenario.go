//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"strings"

	"github.com/463N7/CYD-wifi-monitor/internal/validate"

	"gopkg.in/yaml.v3"
)

// Scenario describes the beacon environment served by the simulated host radio.
type Scenario struct {
	// ScanDurationMs is how long an asynchronous scan stays running.
	ScanDurationMs int `yaml:"scan_duration_ms" validate:"gte=0,lte=60000"`
	// FailEvery makes every Nth scan report ScanFailed. Zero disables failures.
	FailEvery int `yaml:"fail_every" validate:"gte=0"`
	// JitterDB is the maximum per-scan RSSI deviation applied to every beacon.
	JitterDB int `yaml:"jitter_db" validate:"gte=0,lte=30"`

	AccessPoints []ScenarioAP `yaml:"access_points" validate:"dive"`
}

// ScenarioAP is one simulated beacon.
type ScenarioAP struct {
	SSID     string `yaml:"ssid" validate:"max=32"`
	RSSI     int32  `yaml:"rssi" validate:"gte=-120,lte=0"`
	Channel  int32  `yaml:"channel" validate:"gte=0,lte=196"`
	Security string `yaml:"security" validate:"omitempty,oneof=open wep wpa wpa2 wpa-wpa2 wpa2-eap wpa3 wpa2-wpa3"`
}

// LoadScenario reads and validates a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := ParseScenario(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScenario decodes and validates a YAML scenario.
func ParseScenario(b []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &s, nil
}

func parseSecurity(s string) Security {
	switch strings.ToLower(s) {
	case "", "open":
		return SecurityOpen
	case "wep":
		return SecurityWEP
	case "wpa":
		return SecurityWPA
	case "wpa2":
		return SecurityWPA2
	case "wpa-wpa2":
		return SecurityWPAWPA2
	case "wpa2-eap":
		return SecurityWPA2Enterprise
	case "wpa3":
		return SecurityWPA3
	case "wpa2-wpa3":
		return SecurityWPA2WPA3
	default:
		return SecurityUnknown
	}
}

// defaultScenario is a busy apartment-block survey: channels 1/6/11 crowded, a few
// neighbours on odd channels, two hidden networks and one 5 GHz beacon the 2.4 GHz
// views ignore.
func defaultScenario() *Scenario {
	return &Scenario{
		ScanDurationMs: 1800,
		JitterDB:       4,
		AccessPoints: []ScenarioAP{
			{SSID: "HomeNet-2G", RSSI: -38, Channel: 6, Security: "wpa2"},
			{SSID: "NETGEAR42", RSSI: -52, Channel: 1, Security: "wpa2"},
			{SSID: "TP-Link_8C1E", RSSI: -61, Channel: 11, Security: "wpa-wpa2"},
			{SSID: "xfinitywifi", RSSI: -67, Channel: 1, Security: "open"},
			{SSID: "DIRECT-4B-HP OfficeJet Pro 9010", RSSI: -71, Channel: 6, Security: "wpa2"},
			{SSID: "Linksys00417", RSSI: -74, Channel: 11, Security: "wpa2"},
			{SSID: "", RSSI: -58, Channel: 6, Security: "wpa2"},
			{SSID: "CoffeeShop Guest", RSSI: -80, Channel: 3, Security: "open"},
			{SSID: "FBI Surveillance Van", RSSI: -77, Channel: 9, Security: "wpa3"},
			{SSID: "ATT-WIFI-7731", RSSI: -83, Channel: 1, Security: "wpa2"},
			{SSID: "eduroam", RSSI: -69, Channel: 11, Security: "wpa2-eap"},
			{SSID: "Pixel_5521", RSSI: -63, Channel: 6, Security: "wpa2-wpa3"},
			{SSID: "SmartTV-Setup", RSSI: -88, Channel: 4, Security: "open"},
			{SSID: "", RSSI: -90, Channel: 2, Security: "wpa2"},
			{SSID: "Garage-Door-Opener", RSSI: -94, Channel: 8, Security: "wpa"},
			{SSID: "Neighbours_Old_Router", RSSI: -86, Channel: 7, Security: "wep"},
			{SSID: "HomeNet-5G", RSSI: -45, Channel: 36, Security: "wpa2"},
		},
	}
}
