package logging

import (
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

// throttleCore drops entries exceeding a token-bucket admission rate.
// Dropped entries vanish silently: logging is best-effort, and a flooding
// caller must never be blocked or surfaced an error.
type throttleCore struct {
	zapcore.Core
	limiter *rate.Limiter
}

// Throttled returns a handle whose emissions are admitted by a token
// bucket of perSecond events with the given burst. Levels at error and
// above bypass the limiter so failures are never dropped.
//
// Intended for hot paths (per-item workers, poll loops) that would
// otherwise flood the sink with identical entries.
func (l *Logger) Throttled(perSecond float64, burst int) *Logger {
	derived := *l
	derived.core = &throttleCore{
		Core:    l.core,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
	return &derived
}

// With implements zapcore.Core, keeping the wrapper on derived cores.
func (t *throttleCore) With(fields []zapcore.Field) zapcore.Core {
	return &throttleCore{Core: t.Core.With(fields), limiter: t.limiter}
}

// Check implements zapcore.Core.
func (t *throttleCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if t.Enabled(ent.Level) {
		return ce.AddCore(ent, t)
	}
	return ce
}

// Write implements zapcore.Core.
func (t *throttleCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	if ent.Level < ErrorLevel && !t.limiter.Allow() {
		return nil
	}
	return t.Core.Write(ent, fields)
}
