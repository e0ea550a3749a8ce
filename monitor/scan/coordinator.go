// Package scan drives the radio's asynchronous scan lifecycle from a polling loop.
package scan

import (
	"github.com/sirupsen/logrus"

	"github.com/463N7/CYD-wifi-monitor/hal"
)

// State is the coordinator's view of the scan cycle.
type State uint8

const (
	Idle State = iota
	Scanning
)

func (s State) String() string {
	if s == Scanning {
		return "scanning"
	}
	return "idle"
}

// Outcome reports what a single Tick did.
type Outcome uint8

const (
	// None means the coordinator was idle and no scan was due.
	None Outcome = iota
	// Started means a new asynchronous scan was requested.
	Started
	// Running means the outstanding scan has not finished yet.
	Running
	// Completed means a batch was handed to the consumer and released.
	Completed
	// Failed means a scan could not be started or ended without results.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case None:
		return "none"
	case Started:
		return "started"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	default:
		return "?"
	}
}

// Config tunes the coordinator.
type Config struct {
	// Cadence is the minimum time between two scan starts, in milliseconds.
	Cadence uint64
	// IncludeHidden asks the radio to report networks with an empty SSID.
	IncludeHidden bool
}

// Batch is the result set of one completed scan. It reads straight from the radio's buffers
// and is only valid inside the consume callback passed to Tick.
type Batch struct {
	radio hal.Radio
	n     int
}

func (b Batch) Len() int { return b.n }

func (b Batch) At(i int) hal.AccessPoint { return b.radio.AccessPoint(i) }

// Coordinator starts a scan every Cadence milliseconds and collects it once the radio reports
// completion. It never blocks and never cancels an outstanding scan.
//
// Not safe for concurrent use; the loop owns it.
type Coordinator struct {
	radio hal.Radio
	cfg   Config
	log   logrus.FieldLogger
	led   hal.LED

	state     State
	everStart bool
	lastStart uint64
	rescan    bool
	cycles    uint64
}

func NewCoordinator(radio hal.Radio, cfg Config, log logrus.FieldLogger) *Coordinator {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Coordinator{
		radio: radio,
		cfg:   cfg,
		log:   log.WithField("component", "scan"),
	}
}

// UseLED drives led High while a scan is outstanding.
func (c *Coordinator) UseLED(led hal.LED) {
	c.led = led
	if led != nil {
		led.Low()
	}
}

func (c *Coordinator) State() State { return c.state }

// LastStart is the time of the most recent start attempt, in milliseconds.
func (c *Coordinator) LastStart() uint64 { return c.lastStart }

// Cycles counts scans that completed with a batch.
func (c *Coordinator) Cycles() uint64 { return c.cycles }

// RequestScan arms an immediate start on the next idle Tick. It returns false, and does
// nothing, while a scan is outstanding.
func (c *Coordinator) RequestScan() bool {
	if c.state == Scanning {
		return false
	}
	c.rescan = true
	return true
}

// Tick advances the lifecycle by at most one step. On completion consume receives the batch;
// the radio's results are freed as soon as consume returns.
func (c *Coordinator) Tick(now uint64, consume func(Batch)) Outcome {
	if c.state == Idle {
		if !c.due(now) {
			return None
		}
		return c.start(now)
	}

	st := c.radio.ScanStatus()
	switch st.Phase {
	case hal.ScanRunning:
		return Running
	case hal.ScanDone:
		n := st.Count
		if n < 0 {
			n = 0
		}
		if consume != nil {
			consume(Batch{radio: c.radio, n: n})
		}
		c.finish()
		c.cycles++
		c.log.WithField("count", n).Debug("scan completed")
		return Completed
	default:
		c.log.WithField("phase", st.Phase.String()).Warn("scan ended without results")
		c.finish()
		return Failed
	}
}

func (c *Coordinator) due(now uint64) bool {
	return !c.everStart || c.rescan || now-c.lastStart >= c.cfg.Cadence
}

func (c *Coordinator) start(now uint64) Outcome {
	c.everStart = true
	c.rescan = false
	c.lastStart = now

	if err := c.radio.StartScan(true, c.cfg.IncludeHidden); err != nil {
		c.log.WithError(err).Warn("scan start failed")
		return Failed
	}
	c.state = Scanning
	if c.led != nil {
		c.led.High()
	}
	return Started
}

func (c *Coordinator) finish() {
	c.radio.FreeResults()
	c.state = Idle
	if c.led != nil {
		c.led.Low()
	}
}
