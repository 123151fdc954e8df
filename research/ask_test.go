package research_test

import (
	"context"
	"testing"

	"github.com/fwojciec/stockbot"
	"github.com/fwojciec/stockbot/mock"
	"github.com/fwojciec/stockbot/research"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_AskQuestion(t *testing.T) {
	t.Parallel()

	t.Run("stores answer with ordered sources", func(t *testing.T) {
		t.Parallel()

		session := stockbot.NewSession(3)
		c := &research.Controller{
			Session: session,
			Asker: &mock.Asker{
				AskFn: func(_ context.Context, question string) (*stockbot.Answer, error) {
					assert.Equal(t, "What moved the market?", question)
					return &stockbot.Answer{Text: "A", Sources: stockbot.SplitSources("s1\ns2\ns3")}, nil
				},
			},
		}

		err := c.AskQuestion(context.Background(), "What moved the market?")

		require.NoError(t, err)
		assert.Equal(t, &stockbot.Answer{Text: "A", Sources: []string{"s1", "s2", "s3"}}, session.Answer())
		assert.Equal(t, "What moved the market?", session.Question())
		assert.False(t, session.Busy())
	})

	t.Run("normalizes missing sources to empty slice", func(t *testing.T) {
		t.Parallel()

		returned := &stockbot.Answer{Text: "A"}
		session := stockbot.NewSession(3)
		c := &research.Controller{
			Session: session,
			Asker: &mock.Asker{
				AskFn: func(context.Context, string) (*stockbot.Answer, error) {
					return returned, nil
				},
			},
		}

		require.NoError(t, c.AskQuestion(context.Background(), "q"))

		assert.Nil(t, returned.Sources)
		answer := session.Answer()
		require.NotNil(t, answer)
		require.NotNil(t, answer.Sources)
		assert.Empty(t, answer.Sources)
	})

	t.Run("rejects empty question without sending a request", func(t *testing.T) {
		t.Parallel()

		session := stockbot.NewSession(3)
		previous := &stockbot.Answer{Text: "old", Sources: []string{"x"}}
		session.SetAnswer(previous)
		c := &research.Controller{
			Session: session,
			Asker: &mock.Asker{
				AskFn: func(context.Context, string) (*stockbot.Answer, error) {
					t.Fatal("Ask should not be called for an empty question")
					return nil, nil
				},
			},
		}

		err := c.AskQuestion(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, stockbot.EINVALID, stockbot.ErrorCode(err))
		assert.Equal(t, "Please enter a question", stockbot.ErrorMessage(err))
		assert.Equal(t, previous, session.Answer())
		assert.False(t, session.Busy())
	})

	t.Run("does not trim whitespace-only question", func(t *testing.T) {
		t.Parallel()

		called := false
		c := &research.Controller{
			Session: stockbot.NewSession(3),
			Asker: &mock.Asker{
				AskFn: func(context.Context, string) (*stockbot.Answer, error) {
					called = true
					return &stockbot.Answer{Text: "?"}, nil
				},
			},
		}

		require.NoError(t, c.AskQuestion(context.Background(), " "))

		assert.True(t, called)
	})

	t.Run("keeps previous answer on failure", func(t *testing.T) {
		t.Parallel()

		session := stockbot.NewSession(3)
		previous := &stockbot.Answer{Text: "old", Sources: []string{"x"}}
		session.SetAnswer(previous)
		c := &research.Controller{
			Session: session,
			Asker: &mock.Asker{
				AskFn: func(context.Context, string) (*stockbot.Answer, error) {
					return nil, stockbot.Errorf(stockbot.EINTERNAL, "service returned 500")
				},
			},
		}

		err := c.AskQuestion(context.Background(), "q")

		require.Error(t, err)
		assert.Equal(t, stockbot.EINTERNAL, stockbot.ErrorCode(err))
		assert.Equal(t, previous, session.Answer())
		assert.False(t, session.Busy())
	})

	t.Run("is busy only while the request is in flight", func(t *testing.T) {
		t.Parallel()

		session := stockbot.NewSession(3)
		var busyDuringCall bool
		c := &research.Controller{
			Session: session,
			Asker: &mock.Asker{
				AskFn: func(context.Context, string) (*stockbot.Answer, error) {
					busyDuringCall = session.Busy()
					return &stockbot.Answer{Text: "A"}, nil
				},
			},
		}

		require.NoError(t, c.AskQuestion(context.Background(), "q"))

		assert.True(t, busyDuringCall)
		assert.False(t, session.Busy())
	})

	t.Run("rejects question while processing is in flight", func(t *testing.T) {
		t.Parallel()

		session := stockbot.NewSession(3)
		var askErr error
		c := &research.Controller{
			Session: session,
			Asker: &mock.Asker{
				AskFn: func(context.Context, string) (*stockbot.Answer, error) {
					t.Fatal("Ask should not be called while busy")
					return nil, nil
				},
			},
		}
		c.Indexer = &mock.Indexer{
			ProcessURLsFn: func(ctx context.Context, _ []string) (*stockbot.IngestResult, error) {
				askErr = c.AskQuestion(ctx, "too soon")
				return &stockbot.IngestResult{DocumentsCount: 1}, nil
			},
		}

		require.NoError(t, c.ProcessURLs(context.Background(), session.URLs()))

		require.Error(t, askErr)
		assert.Equal(t, stockbot.ECONFLICT, stockbot.ErrorCode(askErr))
		assert.Nil(t, session.Answer())
	})
}
