package logging

import (
	"context"
)

// Context is the overlay of structured sub-records accumulated on a logger
// handle through Child and WithRequest calls, and supplied per-emission as
// the data argument. The zero value is an empty overlay.
type Context struct {
	Event  *Event
	HTTP   *HTTPInfo
	URL    *URLInfo
	User   *User
	Labels map[string]interface{}
	Meta   map[string]interface{}
}

// merge overlays over onto c and returns the result. Neither input is
// mutated: sub-records are copied field-by-field with over's set fields
// winning, and maps are merged key-by-key with over's values winning.
func (c Context) merge(over Context) Context {
	return Context{
		Event:  mergeEvent(c.Event, over.Event),
		HTTP:   mergeHTTP(c.HTTP, over.HTTP),
		URL:    mergeURL(c.URL, over.URL),
		User:   mergeUser(c.User, over.User),
		Labels: mergeMap(c.Labels, over.Labels),
		Meta:   mergeMap(c.Meta, over.Meta),
	}
}

func mergeEvent(base, over *Event) *Event {
	if over == nil {
		return base
	}
	out := Event{}
	if base != nil {
		out = *base
	}
	if over.Action != "" {
		out.Action = over.Action
	}
	if over.Category != "" {
		out.Category = over.Category
	}
	if over.Type != "" {
		out.Type = over.Type
	}
	if over.Kind != "" {
		out.Kind = over.Kind
	}
	if over.Outcome != "" {
		out.Outcome = over.Outcome
	}
	if over.DurationMs != 0 {
		out.DurationMs = over.DurationMs
	}
	return &out
}

func mergeHTTP(base, over *HTTPInfo) *HTTPInfo {
	if over == nil {
		return base
	}
	out := HTTPInfo{}
	if base != nil {
		out = *base
	}
	if over.Request != nil {
		req := *over.Request
		if len(req.Headers) > 0 {
			req.Headers = mergeStringMap(nil, req.Headers)
		}
		out.Request = &req
	}
	if over.Response != nil {
		res := *over.Response
		out.Response = &res
	}
	return &out
}

func mergeURL(base, over *URLInfo) *URLInfo {
	if over == nil {
		return base
	}
	out := URLInfo{}
	if base != nil {
		out = *base
	}
	if over.Original != "" {
		out.Original = over.Original
	}
	if over.Path != "" {
		out.Path = over.Path
	}
	if over.Query != "" {
		out.Query = over.Query
	}
	return &out
}

func mergeUser(base, over *User) *User {
	if over == nil {
		return base
	}
	out := User{}
	if base != nil {
		out = *base
	}
	if over.ID != "" {
		out.ID = over.ID
	}
	if over.Name != "" {
		out.Name = over.Name
	}
	if over.Email != "" {
		out.Email = over.Email
	}
	return &out
}

func mergeMap(base, over map[string]interface{}) map[string]interface{} {
	if len(over) == 0 {
		return base
	}
	out := make(map[string]interface{}, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

func mergeStringMap(base, over map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

type contextKey string

const loggerKey contextKey = "logger"

// WithLogger stores a logger in the context.
func WithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves a logger from the context.
// If no logger is found, it returns a no-op logger.
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(loggerKey).(*Logger); ok {
		return logger
	}
	return Nop()
}

// AddContext overlays fields onto the logger stored in the context.
// Returns a new context carrying the derived logger.
func AddContext(ctx context.Context, overlay Context) context.Context {
	return WithLogger(ctx, FromContext(ctx).Child(overlay))
}
