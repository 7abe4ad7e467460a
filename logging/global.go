package logging

import "sync/atomic"

// defaultLogger is the process-wide handle returned by L. It starts as a
// no-op logger; Init installs the real one during application startup.
var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(Nop())
}

// Init constructs the process-wide default logger from cfg and installs
// it. Call once during application startup, before any L() call site runs;
// construction errors should abort startup. The last successful Init wins.
func Init(cfg Config) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	defaultLogger.Store(l)
	return nil
}

// InitFromEnv is Init with ConfigFromEnv, for services configured purely
// through the environment.
func InitFromEnv() error {
	return Init(ConfigFromEnv())
}

// L returns the process-wide default logger. Before Init it is a no-op
// handle, so call sites are always safe.
func L() *Logger {
	return defaultLogger.Load()
}

// ReplaceDefault installs l as the default logger and returns a function
// restoring the previous one. Intended for tests.
func ReplaceDefault(l *Logger) func() {
	prev := defaultLogger.Swap(l)
	return func() { defaultLogger.Store(prev) }
}
