package logging

import (
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// RedactionMarker replaces the value of every sensitive header before it
// is attached to an entry. The raw value never reaches the sink.
const RedactionMarker = "[REDACTED]"

// sensitiveHeaders are redacted case-insensitively wherever header data is
// attached to an entry.
var sensitiveHeaders = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
	"x-api-key":     {},
	"x-auth-token":  {},
}

// RequestInfo is the narrow request shape the logger consumes. Framework
// adapters (see RequestInfoFromHTTP and the gin middleware) fill it in;
// the logger never inspects framework request types directly.
type RequestInfo struct {
	// Method is the HTTP method.
	Method string

	// URL is the request URL as routed.
	URL string

	// OriginalURL is the URL as the client sent it, preferred over URL for
	// the url.original field when set.
	OriginalURL string

	// Path is the URL path component.
	Path string

	// Header is the request header mapping. Multi-valued headers are
	// joined with ", " and sensitive headers redacted before emission.
	Header http.Header

	// Query is the parsed query mapping, serialized canonically
	// (sorted keys) and omitted from entries when empty.
	Query url.Values

	// User is the authenticated user identity, omitted entirely when nil.
	User *User

	// RequestID is the client-supplied request id. When empty a fresh
	// unique id is generated at derivation time.
	RequestID string

	// RemoteIP is the client address, omitted when empty.
	RemoteIP string
}

// RequestInfoFromHTTP adapts a *http.Request. The request id is taken from
// the X-Request-ID header when present.
func RequestInfoFromHTTP(r *http.Request) RequestInfo {
	ip := ""
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		ip = host
	} else if r.RemoteAddr != "" {
		ip = r.RemoteAddr
	}

	return RequestInfo{
		Method:    r.Method,
		URL:       r.URL.String(),
		Path:      r.URL.Path,
		Header:    r.Header,
		Query:     r.URL.Query(),
		RequestID: r.Header.Get("X-Request-ID"),
		RemoteIP:  ip,
	}
}

// WithRequest derives a request-scoped handle carrying the http, url,
// user, and request-label sub-records built from req. Headers are
// sanitized, the query string canonicalized, and a request id generated
// when the client supplied none.
func (l *Logger) WithRequest(req RequestInfo) *Logger {
	original := req.OriginalURL
	if original == "" {
		original = req.URL
	}

	overlay := Context{
		HTTP: &HTTPInfo{
			Request: &HTTPRequest{
				Method:  req.Method,
				URL:     req.URL,
				Headers: SanitizeHeaders(req.Header),
			},
		},
		URL: &URLInfo{
			Original: original,
			Path:     req.Path,
			Query:    req.Query.Encode(),
		},
		Labels: map[string]interface{}{
			LabelRequestID: requestID(req),
		},
	}

	if req.User != nil {
		u := *req.User
		overlay.User = &u
	}
	if ua := req.Header.Get("User-Agent"); ua != "" {
		overlay.Labels[LabelUserAgent] = ua
	}
	if req.RemoteIP != "" {
		overlay.Labels[LabelIP] = req.RemoteIP
	}

	return l.Child(overlay)
}

func requestID(req RequestInfo) string {
	if req.RequestID != "" {
		return req.RequestID
	}
	return uuid.New().String()
}

// SanitizeHeaders flattens a header mapping for logging: multi-valued
// headers are joined with ", ", and every header whose lowercased name is
// in the sensitive set has its value replaced with RedactionMarker.
func SanitizeHeaders(h http.Header) map[string]string {
	if len(h) == 0 {
		return nil
	}
	out := make(map[string]string, len(h))
	for name, values := range h {
		if _, sensitive := sensitiveHeaders[strings.ToLower(name)]; sensitive {
			out[name] = RedactionMarker
			continue
		}
		out[name] = strings.Join(values, ", ")
	}
	return out
}
