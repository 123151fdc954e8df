// Package stockbot provides a client-side research session controller.
// A user submits a handful of article URLs to a remote indexing service,
// follows coarse progress while the service ingests them, and then asks
// natural language questions answered against the resulting index.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, slog/).
package stockbot
