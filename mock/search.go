package mock

import (
	"context"

	"github.com/jmoralesv/educrawl"
)

var _ educrawl.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of educrawl.SearchService.
type SearchService struct {
	SearchCoursesFn func(ctx context.Context, interests []string, limit int) ([]*educrawl.SearchResult, error)
}

func (s *SearchService) SearchCourses(ctx context.Context, interests []string, limit int) ([]*educrawl.SearchResult, error) {
	return s.SearchCoursesFn(ctx, interests, limit)
}
