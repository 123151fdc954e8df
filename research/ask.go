package research

import (
	"context"

	"github.com/fwojciec/stockbot"
)

// AskQuestion asks question against the index and stores the answer on the
// session. An empty question fails with EINVALID before any request is sent.
// On failure the previous answer is left in place and the error is returned.
func (c *Controller) AskQuestion(ctx context.Context, question string) error {
	if question == "" {
		return stockbot.Errorf(stockbot.EINVALID, "Please enter a question")
	}

	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	c.Session.SetQuestion(question)

	answer, err := c.Asker.Ask(ctx, question)
	if err != nil {
		return err
	}
	if answer == nil {
		return stockbot.Errorf(stockbot.EINTERNAL, "question service returned no answer")
	}
	c.Session.SetAnswer(answer)
	return nil
}
