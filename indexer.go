package stockbot

import "context"

// IngestResult reports the outcome of an ingestion request.
type IngestResult struct {
	// Number of document chunks the service indexed.
	DocumentsCount int

	// Optional human-readable status returned by the service.
	Message string
}

// Indexer submits article URLs to the remote indexing service.
type Indexer interface {
	// ProcessURLs sends every URL slot, including empty ones, in a single
	// ingestion request and waits for the service to finish indexing.
	ProcessURLs(ctx context.Context, urls []string) (*IngestResult, error)
}
