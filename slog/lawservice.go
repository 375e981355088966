// Package slog provides logging decorators for the hourei interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	hourei "github.com/ToAmano/hourei-api"
)

// Ensure LoggingLawService implements hourei.LawService.
var _ hourei.LawService = (*LoggingLawService)(nil)

// LoggingLawService wraps a LawService with operation logging.
type LoggingLawService struct {
	next   hourei.LawService
	logger *slog.Logger
}

// NewLoggingLawService creates a new LoggingLawService.
func NewLoggingLawService(next hourei.LawService, logger *slog.Logger) *LoggingLawService {
	return &LoggingLawService{next: next, logger: logger}
}

// SearchLaws delegates to the wrapped service and logs the operation.
func (s *LoggingLawService) SearchLaws(ctx context.Context, title string) (laws []*hourei.Law, err error) {
	defer func(begin time.Time) {
		s.logger.Info("law search",
			"title", title,
			"count", len(laws),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchLaws(ctx, title)
}

// ResolveLawID delegates to the wrapped service and logs the operation.
func (s *LoggingLawService) ResolveLawID(ctx context.Context, title string) (id string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("law id resolution",
			"title", title,
			"law_id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ResolveLawID(ctx, title)
}

// FetchLawData delegates to the wrapped service and logs the operation.
func (s *LoggingLawService) FetchLawData(ctx context.Context, lawID string) (xml string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("law data fetch",
			"law_id", lawID,
			"bytes", len(xml),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchLawData(ctx, lawID)
}
