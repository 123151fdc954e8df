package mock

import (
	"context"

	"github.com/fwojciec/stockbot"
)

var _ stockbot.Asker = (*Asker)(nil)

// Asker is a mock implementation of stockbot.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string) (*stockbot.Answer, error)
}

func (a *Asker) Ask(ctx context.Context, question string) (*stockbot.Answer, error) {
	return a.AskFn(ctx, question)
}
