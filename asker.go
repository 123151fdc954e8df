package stockbot

import (
	"context"
	"strings"
)

// Answer is the result of a question asked against the index.
type Answer struct {
	Text string

	// Source identifiers in the order the service returned them.
	Sources []string
}

// Asker answers natural language questions against the indexed articles.
type Asker interface {
	// Ask sends the question to the question answering service.
	// Returns EINVALID if the question is empty.
	Ask(ctx context.Context, question string) (*Answer, error)
}

// SplitSources splits a newline-delimited source string into identifiers,
// preserving order. An empty string yields an empty slice.
func SplitSources(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
