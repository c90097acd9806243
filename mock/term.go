package mock

import (
	"context"

	"github.com/jmoralesv/educrawl"
)

var _ educrawl.TermService = (*TermService)(nil)

// TermService is a mock implementation of educrawl.TermService.
type TermService struct {
	CreateTermFn   func(ctx context.Context, term *educrawl.Term) error
	FindSynonymsFn func(ctx context.Context, term string) ([]string, error)
}

func (s *TermService) CreateTerm(ctx context.Context, term *educrawl.Term) error {
	return s.CreateTermFn(ctx, term)
}

func (s *TermService) FindSynonyms(ctx context.Context, term string) ([]string, error) {
	return s.FindSynonymsFn(ctx, term)
}

var _ educrawl.RunService = (*RunService)(nil)

// RunService is a mock implementation of educrawl.RunService.
type RunService struct {
	CreateRunFn func(ctx context.Context, run *educrawl.CrawlRun) error
	FinishRunFn func(ctx context.Context, run *educrawl.CrawlRun) error
}

func (s *RunService) CreateRun(ctx context.Context, run *educrawl.CrawlRun) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FinishRun(ctx context.Context, run *educrawl.CrawlRun) error {
	return s.FinishRunFn(ctx, run)
}
