// Package mock provides hand-rolled mocks for the hourei interfaces.
package mock

import (
	"context"

	hourei "github.com/ToAmano/hourei-api"
)

var _ hourei.LawService = (*LawService)(nil)

// LawService is a mock implementation of hourei.LawService.
type LawService struct {
	SearchLawsFn   func(ctx context.Context, title string) ([]*hourei.Law, error)
	ResolveLawIDFn func(ctx context.Context, title string) (string, error)
	FetchLawDataFn func(ctx context.Context, lawID string) (string, error)
}

func (s *LawService) SearchLaws(ctx context.Context, title string) ([]*hourei.Law, error) {
	return s.SearchLawsFn(ctx, title)
}

func (s *LawService) ResolveLawID(ctx context.Context, title string) (string, error) {
	return s.ResolveLawIDFn(ctx, title)
}

func (s *LawService) FetchLawData(ctx context.Context, lawID string) (string, error) {
	return s.FetchLawDataFn(ctx, lawID)
}
