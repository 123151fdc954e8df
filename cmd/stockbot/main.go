package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/stockbot"
	stockhttp "github.com/fwojciec/stockbot/http"
	stockslog "github.com/fwojciec/stockbot/slog"
	"golang.org/x/time/rate"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Input for the interactive session. Set before calling Run().
	Stdin io.Reader

	// Services for end-to-end testing. When nil, Run creates an HTTP client
	// for the configured server.
	Indexer stockbot.Indexer
	Asker   stockbot.Asker
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("stockbot"),
		kong.Description("News research tool: index article URLs and ask questions about them."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'stockbot --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The process command may be given more URLs than there are slots.
	slots := max(cli.Slots, len(cli.Process.URLs))
	deps.StageDelay = cli.StageDelay
	deps.Session = stockbot.NewSession(slots)

	indexer, asker := m.Indexer, m.Asker
	if indexer == nil || asker == nil {
		var opts []stockhttp.Option
		if cli.Timeout > 0 {
			opts = append(opts, stockhttp.WithTimeout(cli.Timeout))
		}
		if cli.RPS > 0 {
			opts = append(opts, stockhttp.WithLimiter(rate.NewLimiter(rate.Limit(cli.RPS), 1)))
		}
		client := stockhttp.NewClient(cli.Server, opts...)
		if indexer == nil {
			indexer = client
		}
		if asker == nil {
			asker = client
		}
	}

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil)).With("session", deps.Session.ID())
		svc := stockslog.NewLoggingService(indexer, asker, logger)
		indexer, asker = svc, svc
	}

	deps.Indexer = indexer
	deps.Asker = asker

	return kongCtx.Run(deps)
}
