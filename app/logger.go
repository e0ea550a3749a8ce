package app

import (
	"bytes"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/463N7/CYD-wifi-monitor/hal"
)

// NewLogger returns a logrus logger that prints through the HAL's line logger, one formatted
// entry per line.
func NewLogger(l hal.Logger, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(newLineWriter(l))
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}

// lineWriter buffers partial writes and forwards complete lines.
type lineWriter struct {
	mu  sync.Mutex
	l   hal.Logger
	buf []byte
}

func newLineWriter(l hal.Logger) io.Writer {
	if l == nil {
		return io.Discard
	}
	return &lineWriter{l: l}
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.l.WriteLineBytes(bytes.TrimRight(w.buf[:i], "\r"))
		w.buf = w.buf[i+1:]
	}
	if len(w.buf) == 0 {
		w.buf = w.buf[:0:0]
	}
	return len(p), nil
}
