//go:build !tinygo

package hal

import (
	"errors"
	"sync"
	"time"
)

// ErrScanInProgress is returned by StartScan while a previous scan is still running.
var ErrScanInProgress = errors.New("scan in progress")

// simRadio replays a Scenario as an asynchronous scanner.
type simRadio struct {
	mu    sync.Mutex
	clock func() time.Time

	env       []AccessPoint
	duration  time.Duration
	failEvery int
	jitter    int32
	rng       uint32

	phase         ScanPhase
	started       time.Time
	scans         int
	includeHidden bool
	results       []AccessPoint
}

func newSimRadio(s *Scenario, clock func() time.Time) *simRadio {
	if s == nil {
		s = defaultScenario()
	}
	if clock == nil {
		clock = time.Now
	}
	env := make([]AccessPoint, 0, len(s.AccessPoints))
	for _, ap := range s.AccessPoints {
		env = append(env, AccessPoint{
			SSID:     ap.SSID,
			RSSI:     ap.RSSI,
			Channel:  ap.Channel,
			Security: parseSecurity(ap.Security),
		})
	}
	return &simRadio{
		clock:     clock,
		env:       env,
		duration:  time.Duration(s.ScanDurationMs) * time.Millisecond,
		failEvery: s.FailEvery,
		jitter:    int32(s.JitterDB),
		rng:       0xA341316C,
		results:   make([]AccessPoint, 0, len(env)),
	}
}

func (r *simRadio) StartScan(async, includeHidden bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase == ScanRunning {
		return ErrScanInProgress
	}
	r.results = r.results[:0]
	r.phase = ScanRunning
	r.started = r.clock()
	r.scans++
	r.includeHidden = includeHidden
	if !async {
		r.finishLocked()
	}
	return nil
}

func (r *simRadio) ScanStatus() ScanStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase == ScanRunning && r.clock().Sub(r.started) >= r.duration {
		r.finishLocked()
	}
	if r.phase == ScanDone {
		return ScanStatus{Phase: ScanDone, Count: len(r.results)}
	}
	return ScanStatus{Phase: r.phase}
}

func (r *simRadio) AccessPoint(i int) AccessPoint {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != ScanDone || i < 0 || i >= len(r.results) {
		return AccessPoint{}
	}
	return r.results[i]
}

func (r *simRadio) FreeResults() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.results = r.results[:0]
	if r.phase != ScanRunning {
		r.phase = ScanIdle
	}
}

func (r *simRadio) finishLocked() {
	if r.failEvery > 0 && r.scans%r.failEvery == 0 {
		r.phase = ScanFailed
		return
	}
	for _, ap := range r.env {
		if ap.SSID == "" && !r.includeHidden {
			continue
		}
		ap.RSSI += r.jitterLocked()
		if ap.RSSI > 0 {
			ap.RSSI = 0
		}
		r.results = append(r.results, ap)
	}
	r.phase = ScanDone
}

func (r *simRadio) jitterLocked() int32 {
	if r.jitter <= 0 {
		return 0
	}
	// xorshift32
	x := r.rng
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.rng = x

	span := uint32(2*r.jitter + 1)
	return int32(x%span) - r.jitter
}
