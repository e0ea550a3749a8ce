//go:build !tinygo

package hal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseScenario(t *testing.T) {
	s, err := ParseScenario([]byte(`
scan_duration_ms: 250
fail_every: 3
access_points:
  - ssid: Office
    rssi: -55
    channel: 6
    security: wpa2-eap
  - ssid: ""
    rssi: -80
    channel: 1
`))
	if err != nil {
		t.Fatalf("ParseScenario: %v", err)
	}
	if s.ScanDurationMs != 250 || s.FailEvery != 3 {
		t.Fatalf("scenario=%+v", s)
	}
	if len(s.AccessPoints) != 2 {
		t.Fatalf("len(access_points)=%d, want 2", len(s.AccessPoints))
	}
	if got := parseSecurity(s.AccessPoints[0].Security); got != SecurityWPA2Enterprise {
		t.Fatalf("security=%v, want %v", got, SecurityWPA2Enterprise)
	}
	if got := parseSecurity(s.AccessPoints[1].Security); got != SecurityOpen {
		t.Fatalf("empty security=%v, want %v", got, SecurityOpen)
	}
}

func TestParseScenarioRejects(t *testing.T) {
	cases := map[string]string{
		"positive rssi":    "access_points:\n  - {ssid: x, rssi: 5, channel: 1}\n",
		"bad security":     "access_points:\n  - {ssid: x, rssi: -50, channel: 1, security: wpa9}\n",
		"negative fail":    "fail_every: -1\n",
		"long ssid":        "access_points:\n  - {ssid: 0123456789012345678901234567890123, rssi: -50, channel: 1}\n",
		"malformed yaml":   "access_points: [\n",
		"jitter too large": "jitter_db: 99\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseScenario([]byte(in)); err == nil {
				t.Fatalf("expected error for %q", in)
			}
		})
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte("scan_duration_ms: 10\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if s.ScanDurationMs != 10 {
		t.Fatalf("scan_duration_ms=%d, want 10", s.ScanDurationMs)
	}

	if _, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseSecurityUnknown(t *testing.T) {
	if got := parseSecurity("WPA2"); got != SecurityWPA2 {
		t.Fatalf("parseSecurity(WPA2)=%v, want %v", got, SecurityWPA2)
	}
	if got := SecurityUnknown.String(); got != "?" {
		t.Fatalf("SecurityUnknown.String()=%q, want %q", got, "?")
	}
}
