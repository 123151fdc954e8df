package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/stockbot"
	"github.com/fwojciec/stockbot/research"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Session    *stockbot.Session
	Indexer    stockbot.Indexer
	Asker      stockbot.Asker
	StageDelay time.Duration
}

// Controller returns a research controller for the dependencies' session.
func (d *Dependencies) Controller(progress stockbot.ProgressFunc) *research.Controller {
	return &research.Controller{
		Session:    d.Session,
		Indexer:    d.Indexer,
		Asker:      d.Asker,
		StageDelay: d.StageDelay,
		Progress:   progress,
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Server     string        `default:"http://localhost:8000" env:"STOCKBOT_SERVER" help:"Research service base URL"`
	Slots      int           `default:"3" help:"Number of URL slots"`
	StageDelay time.Duration `default:"1s" name:"stage-delay" help:"Pause between progress milestones"`
	Timeout    time.Duration `default:"0s" help:"Per-request timeout (0 disables)"`
	RPS        float64       `name:"rps" default:"0" help:"Maximum requests per second (0 disables)"`
	Verbose    bool          `short:"v" help:"Log service calls to stderr"`

	Process ProcessCmd `cmd:"" help:"Index article URLs"`
	Ask     AskCmd     `cmd:"" help:"Ask a question about the indexed articles"`
	Session SessionCmd `cmd:"" help:"Start an interactive research session"`
}

// ProcessCmd is the "process" subcommand.
type ProcessCmd struct {
	URLs []string `arg:"" name:"url" optional:"" help:"Article URLs"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about the articles"`
}

// SessionCmd is the "session" subcommand.
type SessionCmd struct{}
