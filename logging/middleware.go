package logging

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ResponseInfo is the narrow response shape LogRequest consumes: a status
// code readable at completion time, and registration of a completion
// callback. Framework adapters implement it over their response types.
type ResponseInfo interface {
	// StatusCode returns the response status, valid once the response has
	// completed.
	StatusCode() int

	// OnFinish registers fn to run when the transport signals completion.
	// The callback fires at most once; if the transport never signals
	// (e.g. an aborted connection), fn never runs and no completion entry
	// is emitted. Known limitation, accepted.
	OnFinish(fn func())
}

// LogRequest instruments one HTTP exchange: it derives a request-scoped
// logger, emits an access entry, registers the completion entry on the
// response's finish signal, and hands control to next synchronously
// without waiting for completion.
//
// The completion entry is emitted at warn for status >= 400, info
// otherwise, with the elapsed duration and http.response.status_code.
func (l *Logger) LogRequest(req RequestInfo, res ResponseInfo, next func()) {
	start := time.Now()
	reqLog := l.WithRequest(req)

	reqLog.Info("request received", Context{
		Event: &Event{Action: ActionRequest, Category: CategoryWeb, Type: TypeAccess},
	})

	res.OnFinish(func() {
		logCompletion(reqLog, res.StatusCode(), time.Since(start))
	})

	next()
}

func logCompletion(reqLog *Logger, status int, elapsed time.Duration) {
	outcome := OutcomeSuccess
	if status >= 400 {
		outcome = OutcomeFailure
	}

	data := Context{
		Event: &Event{
			Action:     ActionResponse,
			Category:   CategoryWeb,
			Type:       TypeAccess,
			Outcome:    outcome,
			DurationMs: elapsed.Milliseconds(),
		},
		HTTP: &HTTPInfo{Response: &HTTPResponse{StatusCode: status}},
	}

	if status >= 400 {
		reqLog.Warn("request completed", data)
	} else {
		reqLog.Info("request completed", data)
	}
}

// Gin context keys set by RequestLogger.
const (
	ginLoggerKey    = "logger"
	ginRequestIDKey = "request_id"
)

// RequestLogger creates a gin middleware that instruments every request
// with a request-scoped logger.
//
// This middleware:
// - Resolves the request id (client-supplied X-Request-ID or generated)
// - Derives a request-scoped logger with sanitized request context
// - Stores the logger in both gin and request context
// - Emits access entries on arrival and completion with duration
func RequestLogger(base *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		info := RequestInfoFromHTTP(c.Request)
		info.RemoteIP = c.ClientIP()
		info.RequestID = requestID(info)

		reqLog := base.WithRequest(info)

		c.Set(ginLoggerKey, reqLog)
		c.Set(ginRequestIDKey, info.RequestID)
		c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), reqLog))

		reqLog.Info("request received", Context{
			Event: &Event{Action: ActionRequest, Category: CategoryWeb, Type: TypeAccess},
		})

		c.Next()

		logCompletion(reqLog, c.Writer.Status(), time.Since(start))
	}
}

// GetLogger retrieves the request-scoped logger from gin context.
// Returns a no-op logger if not found.
func GetLogger(c *gin.Context) *Logger {
	if v, exists := c.Get(ginLoggerKey); exists {
		if l, ok := v.(*Logger); ok {
			return l
		}
	}
	return Nop()
}

// GetRequestID retrieves the request id from gin context.
// Returns empty string if not found.
func GetRequestID(c *gin.Context) string {
	if v, exists := c.Get(ginRequestIDKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// LogRequests wraps an http.Handler with the same instrumentation for
// services not built on gin. The completion entry is emitted when the
// handler returns.
func LogRequests(base *Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			info := RequestInfoFromHTTP(r)
			info.RequestID = requestID(info)

			reqLog := base.WithRequest(info)
			r = r.WithContext(WithLogger(r.Context(), reqLog))

			reqLog.Info("request received", Context{
				Event: &Event{Action: ActionRequest, Category: CategoryWeb, Type: TypeAccess},
			})

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			logCompletion(reqLog, rec.status, time.Since(start))
		})
	}
}

// statusRecorder captures the response status for the completion entry.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
