package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/stockbot"
	"github.com/fwojciec/stockbot/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexer_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where Indexer is expected
	var _ stockbot.Indexer = &mock.Indexer{}
}

func TestIndexer_ProcessURLs(t *testing.T) {
	t.Parallel()

	t.Run("delegates to ProcessURLsFn", func(t *testing.T) {
		t.Parallel()

		var calledWith []string
		idx := &mock.Indexer{
			ProcessURLsFn: func(_ context.Context, urls []string) (*stockbot.IngestResult, error) {
				calledWith = urls
				return &stockbot.IngestResult{DocumentsCount: 2}, nil
			},
		}

		result, err := idx.ProcessURLs(context.Background(), []string{"u1", ""})

		require.NoError(t, err)
		assert.Equal(t, 2, result.DocumentsCount)
		assert.Equal(t, []string{"u1", ""}, calledWith)
	})
}
