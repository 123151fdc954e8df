package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/stockbot"
)

// Ensure LoggingService implements the service interfaces.
var (
	_ stockbot.Indexer = (*LoggingService)(nil)
	_ stockbot.Asker   = (*LoggingService)(nil)
)

// LoggingService wraps an Indexer and an Asker with request logging.
type LoggingService struct {
	indexer stockbot.Indexer
	asker   stockbot.Asker
	logger  *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(indexer stockbot.Indexer, asker stockbot.Asker, logger *slog.Logger) *LoggingService {
	return &LoggingService{indexer: indexer, asker: asker, logger: logger}
}

// ProcessURLs delegates to the wrapped Indexer and logs the operation.
func (s *LoggingService) ProcessURLs(ctx context.Context, urls []string) (result *stockbot.IngestResult, err error) {
	defer func(begin time.Time) {
		documents := 0
		if result != nil {
			documents = result.DocumentsCount
		}
		s.logger.Info("process urls",
			"urls", len(urls),
			"documents", documents,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.indexer.ProcessURLs(ctx, urls)
}

// Ask delegates to the wrapped Asker and logs the operation.
func (s *LoggingService) Ask(ctx context.Context, question string) (answer *stockbot.Answer, err error) {
	defer func(begin time.Time) {
		sources := 0
		if answer != nil {
			sources = len(answer.Sources)
		}
		s.logger.Info("ask question",
			"question_len", len(question),
			"sources", sources,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.asker.Ask(ctx, question)
}
