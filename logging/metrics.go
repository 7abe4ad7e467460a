package logging

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"go.uber.org/zap/zapcore"
)

// Registry is the prometheus registry carrying the logging metrics.
// Embedding applications expose it alongside their own collectors.
var Registry = prometheus.NewRegistry()

var (
	metricsOnce  sync.Once
	entriesTotal *prometheus.CounterVec
)

// initMetrics registers the collectors once, on first use.
func initMetrics() {
	metricsOnce.Do(func() {
		entriesTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_log_entries_total",
				Help: "Total log entries written, by service and level.",
			},
			[]string{"service", "level"},
		)
		Registry.MustRegister(entriesTotal)
	})
}

// metricsCore counts every written entry on its way to the wrapped core.
type metricsCore struct {
	zapcore.Core
	service string
}

// withMetrics wraps a core so emissions are counted per service and level.
func withMetrics(core zapcore.Core, service string) zapcore.Core {
	initMetrics()
	return &metricsCore{Core: core, service: service}
}

// With implements zapcore.Core, keeping the wrapper on derived cores.
func (m *metricsCore) With(fields []zapcore.Field) zapcore.Core {
	return &metricsCore{Core: m.Core.With(fields), service: m.service}
}

// Check implements zapcore.Core, routing writes through this wrapper.
func (m *metricsCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if m.Enabled(ent.Level) {
		return ce.AddCore(ent, m)
	}
	return ce
}

// Write implements zapcore.Core.
func (m *metricsCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	entriesTotal.WithLabelValues(m.service, LevelName(ent.Level)).Inc()
	return m.Core.Write(ent, fields)
}
