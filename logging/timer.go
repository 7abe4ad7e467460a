package logging

import "time"

// Time starts a named measurement. It emits a debug entry immediately and
// returns a stop function; calling the stop function emits an info entry
// with the elapsed duration as a performance event.
//
// The stop function measures from the original start on every call; there
// is no guard against calling it twice. Callers typically defer it so it
// runs on all exit paths.
func (l *Logger) Time(label string) func() {
	l.Debug("Timer started: " + label)
	start := time.Now()

	return func() {
		elapsed := time.Since(start)
		l.Info("Timer ended: "+label, Context{
			Event: &Event{
				Action:     ActionTimer,
				Category:   CategoryPerformance,
				DurationMs: elapsed.Milliseconds(),
			},
			Labels: map[string]interface{}{
				LabelTimerLabel: label,
			},
		})
	}
}
