package logging

// Standard label keys for consistent logging across Folio services.
const (
	// LabelRequestID is the unique identifier of an HTTP request.
	LabelRequestID = "requestId"

	// LabelUserAgent is the client's user agent string.
	LabelUserAgent = "userAgent"

	// LabelIP is the client's remote address.
	LabelIP = "ip"

	// LabelTimerLabel names the measurement emitted by Time.
	LabelTimerLabel = "timerLabel"
)

// Event vocabulary used by the request middleware and timing helper.
const (
	// ActionRequest marks the entry emitted when a request arrives.
	ActionRequest = "request"

	// ActionResponse marks the entry emitted when a response completes.
	ActionResponse = "response"

	// ActionTimer marks the entry emitted by a Time stop function.
	ActionTimer = "timer"

	// CategoryWeb groups HTTP access events.
	CategoryWeb = "web"

	// CategoryPerformance groups timing measurements.
	CategoryPerformance = "performance"

	// TypeAccess tags request/response access-log events.
	TypeAccess = "access"
)

// Event outcomes.
const (
	// OutcomeSuccess marks an operation that completed normally.
	OutcomeSuccess = "success"

	// OutcomeFailure marks a failed operation. Error and Fatal emissions
	// always force this outcome.
	OutcomeFailure = "failure"

	// OutcomeUnknown marks an operation whose result is not yet known.
	OutcomeUnknown = "unknown"
)
