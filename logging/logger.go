package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/foliocms/shared-go/apperr"
)

// Logger is an immutable handle for emitting structured log entries.
// Derive request- or component-scoped handles with Child and WithRequest;
// the receiver is never mutated, so a root handle can be shared freely
// across goroutines.
type Logger struct {
	svc        Service
	host       Host
	proc       Process
	min        Level
	stackTrace bool

	core zapcore.Core
	ctx  Context
}

// New creates a root logger from the given configuration.
//
// It fails fast on an empty service name or an unrecognized level name;
// both indicate a misconfigured service and should abort startup.
func New(cfg Config) (*Logger, error) {
	set, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	var sink zapcore.WriteSyncer = zapcore.Lock(os.Stdout)
	if !set.console {
		sink = zapcore.AddSync(io.Discard)
	}

	core := zapcore.NewCore(
		newEncoder(set.json, set.development),
		sink,
		zap.NewAtomicLevelAt(set.level),
	)
	return build(set, core), nil
}

// NewWithCore creates a root logger that emits through the provided zap
// core instead of the built-in encoder/sink pair. The configured minimum
// level still gates emission, and the core's enabler applies on top.
// Intended for tests (zaptest/observer) and for embedding applications
// with custom sinks.
func NewWithCore(cfg Config, core zapcore.Core) (*Logger, error) {
	set, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	return build(set, core), nil
}

func build(set settings, core zapcore.Core) *Logger {
	if set.metrics {
		core = withMetrics(core, set.service.Name)
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	return &Logger{
		svc: set.service,
		host: Host{
			Hostname:     hostname,
			OS:           runtime.GOOS,
			Architecture: runtime.GOARCH,
		},
		proc: Process{
			PID:  os.Getpid(),
			Name: filepath.Base(os.Args[0]),
		},
		min:        set.level,
		stackTrace: set.stackTrace,
		core:       core,
	}
}

// Nop returns a logger that discards everything. Used where a logger is
// required but none was provided.
func Nop() *Logger {
	return &Logger{
		svc:  Service{Name: "nop"},
		min:  FatalLevel,
		core: zapcore.NewNopCore(),
	}
}

// Service returns the service identity recorded on every entry.
func (l *Logger) Service() Service {
	return l.svc
}

// Level returns the configured minimum level.
func (l *Logger) Level() Level {
	return l.min
}

// Child returns a new handle with overlay merged onto the receiver's
// accumulated context. The receiver is unaffected; sub-records merge
// field-by-field and maps key-by-key, with the overlay winning on
// conflict. May be chained to arbitrary depth.
func (l *Logger) Child(overlay Context) *Logger {
	derived := *l
	derived.ctx = l.ctx.merge(overlay)
	return &derived
}

// Trace emits at trace level.
func (l *Logger) Trace(msg string, data ...Context) {
	l.emit(TraceLevel, msg, nil, false, data)
}

// Debug emits at debug level.
func (l *Logger) Debug(msg string, data ...Context) {
	l.emit(DebugLevel, msg, nil, false, data)
}

// Info emits at info level.
func (l *Logger) Info(msg string, data ...Context) {
	l.emit(InfoLevel, msg, nil, false, data)
}

// Warn emits at warn level.
func (l *Logger) Warn(msg string, data ...Context) {
	l.emit(WarnLevel, msg, nil, false, data)
}

// Error emits at error level. A non-nil err is normalized into the error
// sub-record; event.outcome is forced to failure either way, overriding
// any outcome in data.
func (l *Logger) Error(msg string, err error, data ...Context) {
	l.emit(ErrorLevel, msg, err, true, data)
}

// Fatal emits at fatal level with the same error handling as Error.
// It does not terminate the process; that decision belongs to the caller.
func (l *Logger) Fatal(msg string, err error, data ...Context) {
	l.emit(FatalLevel, msg, err, true, data)
}

func (l *Logger) emit(lvl Level, msg string, err error, failure bool, data []Context) {
	// The level gate comes before any composition work.
	if lvl < l.min || !l.core.Enabled(lvl) {
		return
	}

	c := l.ctx
	for _, d := range data {
		c = c.merge(d)
	}

	var detail *ErrorDetail
	if failure {
		ev := Event{}
		if c.Event != nil {
			ev = *c.Event
		}
		ev.Outcome = OutcomeFailure
		c.Event = &ev
		if err != nil {
			detail = normalizeError(err, l.stackTrace)
		}
	}

	ent := zapcore.Entry{
		Level:      lvl,
		Time:       time.Now(),
		LoggerName: l.svc.Name,
		Message:    msg,
	}
	if ce := l.core.Check(ent, nil); ce != nil {
		ce.Write(l.compose(c, detail)...)
	}
}

// compose flattens the merged context into zap fields in the shared entry
// layout. Sink write failures are swallowed by the core; logging never
// surfaces errors to the caller.
func (l *Logger) compose(c Context, detail *ErrorDetail) []zapcore.Field {
	fields := make([]zapcore.Field, 0, 9)
	fields = append(fields,
		zap.Object("service", l.svc),
		zap.Object("host", l.host),
		zap.Object("process", l.proc),
	)
	if c.Event != nil {
		fields = append(fields, zap.Object("event", c.Event))
	}
	if c.HTTP != nil {
		fields = append(fields, zap.Object("http", c.HTTP))
	}
	if c.URL != nil {
		fields = append(fields, zap.Object("url", c.URL))
	}
	if c.User != nil {
		fields = append(fields, zap.Object("user", c.User))
	}
	if detail != nil {
		fields = append(fields, zap.Object("error", detail))
	}
	if len(c.Labels) > 0 {
		fields = append(fields, zap.Any("labels", c.Labels))
	}
	if len(c.Meta) > 0 {
		fields = append(fields, zap.Any("meta", c.Meta))
	}
	return fields
}

// normalizeError coerces any error value into the entry's error
// sub-record. apperr kinds surface their kind name and status code; other
// errors fall back to their Go type name.
func normalizeError(err error, includeStack bool) *ErrorDetail {
	detail := &ErrorDetail{Message: err.Error()}

	var ae *apperr.Error
	var me *apperr.MissingEnvError
	switch {
	case errors.As(err, &ae):
		detail.Type = ae.Kind.String()
		detail.Code = strconv.Itoa(ae.StatusCode())
	case errors.As(err, &me):
		detail.Type = "missing_env"
	default:
		detail.Type = strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
		if coder, ok := err.(interface{ Code() string }); ok {
			detail.Code = coder.Code()
		}
	}
	if detail.Type == "" {
		detail.Type = "error"
	}

	if includeStack {
		detail.StackTrace = zap.StackSkip("", 3).String
	}
	return detail
}
