package logging

import (
	"sort"

	"go.uber.org/zap/zapcore"
)

// Service identifies the emitting service. It is fixed at root-logger
// construction and inherited unchanged by every derived handle.
type Service struct {
	// Name is the service name (e.g. "article-api").
	Name string

	// Version is the deployed service version.
	Version string

	// Environment is the deployment environment (e.g. "production").
	Environment string
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s Service) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", s.Name)
	if s.Version != "" {
		enc.AddString("version", s.Version)
	}
	if s.Environment != "" {
		enc.AddString("environment", s.Environment)
	}
	return nil
}

// Host describes the machine the process runs on, captured once at
// construction.
type Host struct {
	// Hostname is the machine's hostname.
	Hostname string

	// OS is the operating system (runtime.GOOS).
	OS string

	// Architecture is the CPU architecture (runtime.GOARCH).
	Architecture string
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (h Host) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("hostname", h.Hostname)
	enc.AddString("os", h.OS)
	enc.AddString("architecture", h.Architecture)
	return nil
}

// Process describes the emitting process, captured once at construction.
type Process struct {
	// PID is the operating system process id.
	PID int

	// Name is the process executable name.
	Name string
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (p Process) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("pid", p.PID)
	enc.AddString("name", p.Name)
	return nil
}

// Event describes what a log entry is about in the shared event taxonomy.
type Event struct {
	// Action is the specific action taken (e.g. "response").
	Action string

	// Category is the broad event group (e.g. "web").
	Category string

	// Type refines the category (e.g. "access").
	Type string

	// Kind further classifies the event when needed.
	Kind string

	// Outcome is one of success, failure, or unknown.
	Outcome string

	// DurationMs is the elapsed time of the operation in milliseconds.
	DurationMs int64
}

// MarshalLogObject implements zapcore.ObjectMarshaler. Zero-valued fields
// are omitted.
func (e *Event) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if e.Action != "" {
		enc.AddString("action", e.Action)
	}
	if e.Category != "" {
		enc.AddString("category", e.Category)
	}
	if e.Type != "" {
		enc.AddString("type", e.Type)
	}
	if e.Kind != "" {
		enc.AddString("kind", e.Kind)
	}
	if e.Outcome != "" {
		enc.AddString("outcome", e.Outcome)
	}
	if e.DurationMs != 0 {
		enc.AddInt64("durationMs", e.DurationMs)
	}
	return nil
}

// HTTPRequest describes the request half of an HTTP exchange. Header
// values are sanitized before they ever reach this struct.
type HTTPRequest struct {
	Method  string
	URL     string
	Headers map[string]string
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (r *HTTPRequest) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("method", r.Method)
	enc.AddString("url", r.URL)
	if len(r.Headers) > 0 {
		return enc.AddObject("headers", stringMap(r.Headers))
	}
	return nil
}

// HTTPResponse describes the response half of an HTTP exchange.
type HTTPResponse struct {
	StatusCode int
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (r *HTTPResponse) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("status_code", r.StatusCode)
	return nil
}

// HTTPInfo groups the request/response sub-records of an entry.
type HTTPInfo struct {
	Request  *HTTPRequest
	Response *HTTPResponse
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (h *HTTPInfo) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if h.Request != nil {
		if err := enc.AddObject("request", h.Request); err != nil {
			return err
		}
	}
	if h.Response != nil {
		return enc.AddObject("response", h.Response)
	}
	return nil
}

// URLInfo describes the URL of an associated request.
type URLInfo struct {
	// Original is the URL as the client sent it.
	Original string

	// Path is the path component.
	Path string

	// Query is the canonical query string, empty when the request had none.
	Query string
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (u *URLInfo) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("original", u.Original)
	enc.AddString("path", u.Path)
	if u.Query != "" {
		enc.AddString("query", u.Query)
	}
	return nil
}

// User identifies the authenticated user of an associated request.
type User struct {
	ID    string
	Name  string
	Email string
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (u *User) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if u.ID != "" {
		enc.AddString("id", u.ID)
	}
	if u.Name != "" {
		enc.AddString("name", u.Name)
	}
	if u.Email != "" {
		enc.AddString("email", u.Email)
	}
	return nil
}

// ErrorDetail is the normalized error sub-record attached by Error and
// Fatal emissions.
type ErrorDetail struct {
	// Type is the classified error kind (apperr kind name, or the Go type).
	Type string

	// Message is the error message.
	Message string

	// Code is an error code when the error exposes one (for apperr errors,
	// the HTTP status code).
	Code string

	// StackTrace is the captured stack, present only when the logger was
	// configured with stack traces enabled.
	StackTrace string
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (e *ErrorDetail) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("type", e.Type)
	enc.AddString("message", e.Message)
	if e.Code != "" {
		enc.AddString("code", e.Code)
	}
	if e.StackTrace != "" {
		enc.AddString("stackTrace", e.StackTrace)
	}
	return nil
}

// stringMap encodes a map with deterministic key order.
type stringMap map[string]string

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (m stringMap) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		enc.AddString(k, m[k])
	}
	return nil
}
