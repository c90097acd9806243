package sqlite

import (
	"context"
	"sort"
	"strings"

	"github.com/jmoralesv/educrawl"
)

// Compile-time interface verification.
var _ educrawl.SearchService = (*SearchService)(nil)

// SearchService implements synonym-expanded full-text search over the
// courses_fts index.
type SearchService struct {
	db    *DB
	terms educrawl.TermService
}

// NewSearchService creates a new SearchService. The term service supplies
// synonym expansion; pass the sqlite TermService in production.
func NewSearchService(db *DB, terms educrawl.TermService) *SearchService {
	return &SearchService{db: db, terms: terms}
}

// SearchCourses expands interests with synonyms and executes the combined
// match expression, ranked by BM25 when supported. If the ranked query
// fails (older FTS builds without the bm25 function), it degrades to the
// unranked form in insertion order.
func (s *SearchService) SearchCourses(ctx context.Context, interests []string, limit int) ([]*educrawl.SearchResult, error) {
	match, err := s.buildMatch(ctx, interests)
	if err != nil {
		return nil, err
	}
	if match == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	results, err := s.query(ctx, `
		SELECT c.url, c.title, bm25(courses_fts) AS score
		FROM courses_fts f
		JOIN courses c ON c.course_id = f.rowid
		WHERE courses_fts MATCH ?
		ORDER BY score
		LIMIT ?
	`, match, limit)
	if err == nil {
		return results, nil
	}

	// Ranking unsupported; fall back to the unranked result set.
	return s.query(ctx, `
		SELECT c.url, c.title, f.rowid AS score
		FROM courses_fts f
		JOIN courses c ON c.course_id = f.rowid
		WHERE courses_fts MATCH ?
		LIMIT ?
	`, match, limit)
}

func (s *SearchService) query(ctx context.Context, sql, match string, limit int) ([]*educrawl.SearchResult, error) {
	rows, err := s.db.QueryContext(ctx, sql, match, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*educrawl.SearchResult
	for rows.Next() {
		var r educrawl.SearchResult
		if err := rows.Scan(&r.URL, &r.Title, &r.Score); err != nil {
			return nil, err
		}
		results = append(results, &r)
	}
	return results, rows.Err()
}

// buildMatch builds the full-text match expression: one OR-group per
// non-blank interest, groups joined with OR.
func (s *SearchService) buildMatch(ctx context.Context, interests []string) (string, error) {
	var groups []string
	for _, interest := range interests {
		interest = strings.TrimSpace(interest)
		if interest == "" {
			continue
		}
		synonyms, err := s.terms.FindSynonyms(ctx, interest)
		if err != nil {
			return "", err
		}
		groups = append(groups, BuildGroup(interest, synonyms))
	}
	return strings.Join(groups, " OR "), nil
}

// BuildGroup builds one OR-group combining a term and its synonyms, quoting
// multi-word phrases. The term comes first and synonyms follow in sorted
// order, so the expression is deterministic.
func BuildGroup(term string, synonyms []string) string {
	term = strings.ToLower(strings.TrimSpace(term))

	unique := make([]string, 0, len(synonyms))
	seen := map[string]struct{}{term: {}}
	for _, synonym := range synonyms {
		synonym = strings.ToLower(strings.TrimSpace(synonym))
		if synonym == "" {
			continue
		}
		if _, ok := seen[synonym]; ok {
			continue
		}
		seen[synonym] = struct{}{}
		unique = append(unique, synonym)
	}
	sort.Strings(unique)

	parts := make([]string, 0, len(unique)+1)
	for _, p := range append([]string{term}, unique...) {
		if strings.Contains(p, " ") {
			p = `"` + p + `"`
		}
		parts = append(parts, p)
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}
