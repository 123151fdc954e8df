package mock

import (
	"context"

	"github.com/fwojciec/stockbot"
)

var _ stockbot.Indexer = (*Indexer)(nil)

// Indexer is a mock implementation of stockbot.Indexer.
type Indexer struct {
	ProcessURLsFn func(ctx context.Context, urls []string) (*stockbot.IngestResult, error)
}

func (i *Indexer) ProcessURLs(ctx context.Context, urls []string) (*stockbot.IngestResult, error) {
	return i.ProcessURLsFn(ctx, urls)
}
