// Package logging provides the structured logger shared by all Folio
// services.
//
// Every emission produces one entry in a common ECS-style layout
// (service/event/http/url/user/error sub-records plus open labels/meta
// maps) so that logs from different services can be correlated by the same
// tooling. The logger is a thin enrichment and formatting layer over
// zap cores: construction picks an encoder (JSON in production, a
// human-readable console line in development) and a sink, and emission
// composes the accumulated context into zap fields.
//
// Logger handles are immutable: Child and WithRequest return fresh handles
// overlaying new context onto a copy of the receiver's, so request-scoped
// loggers can be derived freely from a shared root without locking.
//
// Logging is best-effort and never interrupts the caller: sink write
// failures are swallowed, and entries below the configured minimum level
// are discarded before any composition work happens.
package logging
