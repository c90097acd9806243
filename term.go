package educrawl

import "context"

// Term represents a vocabulary entry with zero or more synonyms.
// Terms are matched case-insensitively at query time.
type Term struct {
	ID       int64    `json:"id"`
	Term     string   `json:"term"`
	Synonyms []string `json:"synonyms"`
}

// Validate returns an error if the term contains invalid fields.
func (t *Term) Validate() error {
	if t.Term == "" {
		return Errorf(EINVALID, "term text required")
	}
	return nil
}

// TermService represents a service for the synonym vocabulary.
type TermService interface {
	// CreateTerm creates a term with its synonyms. Creating a term that
	// already exists returns ECONFLICT.
	CreateTerm(ctx context.Context, term *Term) error

	// FindSynonyms returns the synonyms for a term, matched
	// case-insensitively. An unknown term yields an empty slice, not an
	// error.
	FindSynonyms(ctx context.Context, term string) ([]string, error)
}
