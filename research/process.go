package research

import (
	"context"

	"github.com/fwojciec/stockbot"
)

// ProcessURLs submits urls for indexing and records progress milestones on
// the session. The progress log is reset at the start of each run.
//
// The indexing service works in one atomic call, so the splitting and
// embedding milestones are appended after it returns, StageDelay apart.
// Ingestion failures are recorded as a single failure milestone and are not
// returned. The only error returned is ECONFLICT when the session is busy.
func (c *Controller) ProcessURLs(ctx context.Context, urls []string) error {
	if !c.Session.BeginRun(stockbot.MilestoneStarted) {
		return errBusy()
	}
	defer c.release()
	if c.Progress != nil {
		c.Progress(stockbot.MilestoneStarted)
	}

	result, err := c.Indexer.ProcessURLs(ctx, urls)
	if err == nil && result == nil {
		err = stockbot.Errorf(stockbot.EINTERNAL, "indexing service returned no result")
	}
	if err != nil {
		c.appendProgress(stockbot.FailureMilestone(err))
		return nil
	}

	for _, milestone := range []string{stockbot.MilestoneSplitting, stockbot.MilestoneEmbedding} {
		c.appendProgress(milestone)
		if err := c.wait(ctx); err != nil {
			c.appendProgress(stockbot.FailureMilestone(stockbot.Errorf(stockbot.EUNAVAILABLE, "processing interrupted: %v", err)))
			return nil
		}
	}

	c.appendProgress(stockbot.CompletionMilestone(result.DocumentsCount))
	return nil
}
