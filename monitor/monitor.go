// Package monitor runs the scan, aggregate and render loop.
package monitor

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/463N7/CYD-wifi-monitor/hal"
	"github.com/463N7/CYD-wifi-monitor/internal/config"
	"github.com/463N7/CYD-wifi-monitor/monitor/channel"
	"github.com/463N7/CYD-wifi-monitor/monitor/rank"
	"github.com/463N7/CYD-wifi-monitor/monitor/render"
	"github.com/463N7/CYD-wifi-monitor/monitor/scan"
	"github.com/463N7/CYD-wifi-monitor/monitor/view"
)

var (
	errNoRadio = errors.New("monitor: radio is required")
	errNoClock = errors.New("monitor: clock is required")
)

// Observer is notified of loop events. Calls happen on the loop goroutine.
type Observer interface {
	ScanStarted()
	ScanCompleted(observed, captured, dropped int, d time.Duration)
	ScanFailed()
	ViewChanged(mode view.Mode)
}

// TallyObserver is implemented by observers that also want the per-channel tallies after
// every scan, completed or failed.
type TallyObserver interface {
	TalliesUpdated(c render.Channels)
}

type nopObserver struct{}

func (nopObserver) ScanStarted()                               {}
func (nopObserver) ScanCompleted(_, _, _ int, _ time.Duration) {}
func (nopObserver) ScanFailed()                                {}
func (nopObserver) ViewChanged(view.Mode)                      {}

// Deps are the monitor's collaborators. Radio and Clock are required.
type Deps struct {
	Radio hal.Radio
	Clock hal.Time
	Touch hal.Touch
	Keys  hal.Keyboard
	LED   hal.LED

	Log       logrus.FieldLogger
	Observer  Observer
	Renderers []render.Renderer
}

// Monitor owns every piece of loop state. Step must be called from one goroutine.
type Monitor struct {
	cfg   config.Config
	clock hal.Time
	touch hal.Touch
	keys  hal.Keyboard
	log   logrus.FieldLogger
	obs   Observer
	out   []render.Renderer

	coord    *scan.Coordinator
	agg      *channel.Aggregator
	ranker   *rank.Ranker
	view     view.State
	debounce view.Debouncer

	scanStart uint64
}

func New(d Deps, cfg config.Config) (*Monitor, error) {
	if d.Radio == nil {
		return nil, errNoRadio
	}
	if d.Clock == nil {
		return nil, errNoClock
	}
	log := d.Log
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	obs := d.Observer
	if obs == nil {
		obs = nopObserver{}
	}

	coord := scan.NewCoordinator(d.Radio, scan.Config{
		Cadence:       cfg.ScanCadenceMs,
		IncludeHidden: cfg.IncludeHidden,
	}, log)
	if d.LED != nil {
		coord.UseLED(d.LED)
	}

	return &Monitor{
		cfg:      cfg,
		clock:    d.Clock,
		touch:    d.Touch,
		keys:     d.Keys,
		log:      log.WithField("component", "monitor"),
		obs:      obs,
		out:      d.Renderers,
		coord:    coord,
		agg:      channel.NewAggregator(cfg.ChannelMin, cfg.ChannelMax),
		ranker:   rank.NewRanker(cfg.SnapshotCapacity),
		debounce: view.Debouncer{Interval: cfg.DebounceMs},
	}, nil
}

// Step runs one loop pass: input, then the scan lifecycle. It never blocks.
func (m *Monitor) Step() {
	now := m.clock.Millis()

	down := false
	if m.touch != nil {
		down, _, _ = m.touch.Touched()
	}
	m.drainKeys()

	if m.debounce.Sample(down, now) {
		mode := m.view.Toggle()
		m.log.WithField("view", mode.String()).Debug("view toggled")
		m.obs.ViewChanged(mode)
		m.Render()
	}

	switch m.coord.Tick(now, m.consume) {
	case scan.Started:
		m.scanStart = now
		m.obs.ScanStarted()
	case scan.Completed:
		d := time.Duration(now-m.scanStart) * time.Millisecond
		m.obs.ScanCompleted(m.agg.Observed(), m.ranker.Len(), m.ranker.Dropped(), d)
		m.publishTallies()
		m.Render()
	case scan.Failed:
		m.agg.Aggregate(nil)
		m.ranker.Capture(nil)
		m.obs.ScanFailed()
		m.publishTallies()
		m.Render()
	}
}

func (m *Monitor) consume(b scan.Batch) {
	m.agg.Aggregate(b)
	m.ranker.Capture(b)
	if dropped := m.ranker.Dropped(); dropped > 0 {
		m.log.WithFields(logrus.Fields{
			"count":   b.Len(),
			"dropped": dropped,
		}).Debug("snapshot full")
	}
}

func (m *Monitor) publishTallies() {
	if to, ok := m.obs.(TallyObserver); ok {
		to.TalliesUpdated(m.agg)
	}
}

func (m *Monitor) drainKeys() {
	if m.keys == nil {
		return
	}
	ch := m.keys.Events()
	if ch == nil {
		return
	}
	for {
		select {
		case ev := <-ch:
			if !ev.Press {
				continue
			}
			if ev.Code == hal.KeyEnter {
				m.debounce.Inject()
				continue
			}
			switch ev.Rune {
			case 't', 'T':
				m.debounce.Inject()
			case 's', 'S':
				if m.coord.RequestScan() {
					m.log.Debug("rescan requested")
				}
			}
		default:
			return
		}
	}
}

// Frame is the current render input.
func (m *Monitor) Frame() render.Frame {
	return render.Frame{
		Mode:     m.view.Mode(),
		Channels: m.agg,
		Networks: m.ranker,
		Show:     m.cfg.ShowCount,
		NameMax:  m.cfg.NameMax,
		Observed: m.agg.Observed(),
		Dropped:  m.ranker.Dropped(),
		Scans:    m.coord.Cycles(),
	}
}

// Render draws the current view on every renderer. Failures are logged and skipped.
func (m *Monitor) Render() {
	f := m.Frame()
	for _, r := range m.out {
		if err := r.Render(f); err != nil {
			m.log.WithError(err).Warn("render failed")
		}
	}
}

// InjectToggle queues a synthetic press and release; the next Step recognizes it.
func (m *Monitor) InjectToggle() { m.debounce.Inject() }

// RequestScan asks for a scan on the next idle Step. It reports false while one is running.
func (m *Monitor) RequestScan() bool { return m.coord.RequestScan() }

func (m *Monitor) Mode() view.Mode { return m.view.Mode() }

func (m *Monitor) ScanState() scan.State { return m.coord.State() }

// LastScanStart is the clock time of the latest scan attempt, in milliseconds.
func (m *Monitor) LastScanStart() uint64 { return m.coord.LastStart() }

// AddRenderer appends r to the outputs of subsequent renders.
func (m *Monitor) AddRenderer(r render.Renderer) {
	if r != nil {
		m.out = append(m.out, r)
	}
}
