// Package research drives a research session: it submits the session's
// article URLs for indexing and asks questions against the resulting index,
// recording progress and answers on the session.
package research

import (
	"context"
	"time"

	"github.com/fwojciec/stockbot"
)

// DefaultStageDelay is the pause between manufactured progress milestones.
const DefaultStageDelay = 1 * time.Second

// SleepFunc waits for d or until the context is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Controller runs the processing and question flows for one session.
// Only one flow may be in flight per session; overlapping calls are
// rejected with ECONFLICT.
type Controller struct {
	Session *stockbot.Session
	Indexer stockbot.Indexer
	Asker   stockbot.Asker

	// StageDelay separates the splitting, embedding and completion
	// milestones. Zero means no waiting.
	StageDelay time.Duration

	// Sleep defaults to a context-aware timer wait.
	Sleep SleepFunc

	// Progress, if set, receives each milestone after it is appended.
	Progress stockbot.ProgressFunc
}

// acquire marks the session busy, or returns ECONFLICT if it already is.
func (c *Controller) acquire() error {
	if !c.Session.TryBusy() {
		return errBusy()
	}
	return nil
}

func errBusy() error {
	return stockbot.Errorf(stockbot.ECONFLICT, "operation already in progress")
}

func (c *Controller) release() {
	c.Session.SetBusy(false)
}

func (c *Controller) appendProgress(message string) {
	c.Session.AppendProgress(message)
	if c.Progress != nil {
		c.Progress(message)
	}
}

func (c *Controller) wait(ctx context.Context) error {
	if c.StageDelay <= 0 {
		return ctx.Err()
	}
	sleep := c.Sleep
	if sleep == nil {
		sleep = Sleep
	}
	return sleep(ctx, c.StageDelay)
}

// Sleep blocks for d or until ctx is canceled.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
