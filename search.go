package educrawl

import "context"

// SearchResult represents one full-text search hit.
type SearchResult struct {
	URL   string  `json:"url"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// SearchService represents synonym-expanded full-text search over stored
// courses.
type SearchService interface {
	// SearchCourses expands each interest with its synonyms, builds one
	// OR-group per interest, and executes the combined match expression
	// against the full-text index. Results are ranked by BM25 when the
	// engine supports it; otherwise an unranked result set is returned.
	// Blank interests contribute no group; if no group can be built the
	// result is empty.
	SearchCourses(ctx context.Context, interests []string, limit int) ([]*SearchResult, error)
}
