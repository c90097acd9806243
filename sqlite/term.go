package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoralesv/educrawl"
)

// Compile-time interface verification.
var _ educrawl.TermService = (*TermService)(nil)

// TermService implements educrawl.TermService using SQLite.
type TermService struct {
	db *DB
}

// NewTermService creates a new TermService.
func NewTermService(db *DB) *TermService {
	return &TermService{db: db}
}

// CreateTerm creates a term with its synonyms.
func (s *TermService) CreateTerm(ctx context.Context, term *educrawl.Term) error {
	if err := term.Validate(); err != nil {
		return err
	}

	normalized := strings.ToLower(strings.TrimSpace(term.Term))

	var existing int64
	err := s.db.QueryRowContext(ctx,
		"SELECT term_id FROM terms WHERE lower(term) = ?", normalized).Scan(&existing)
	if err == nil {
		return educrawl.Errorf(educrawl.ECONFLICT, "term %q already exists", normalized)
	}
	if err != sql.ErrNoRows {
		return err
	}

	result, err := s.db.ExecContext(ctx, "INSERT INTO terms (term) VALUES (?)", normalized)
	if err != nil {
		return err
	}
	term.ID, err = result.LastInsertId()
	if err != nil {
		return err
	}
	term.Term = normalized

	for _, synonym := range term.Synonyms {
		synonym = strings.ToLower(strings.TrimSpace(synonym))
		if synonym == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx,
			"INSERT INTO synonyms (term_id, synonym) VALUES (?, ?)", term.ID, synonym); err != nil {
			return err
		}
	}

	return nil
}

// FindSynonyms returns the synonyms for a term, matched case-insensitively.
// An unknown term yields an empty slice, not an error.
func (s *TermService) FindSynonyms(ctx context.Context, term string) ([]string, error) {
	normalized := strings.ToLower(strings.TrimSpace(term))
	if normalized == "" {
		return nil, nil
	}

	var termID int64
	err := s.db.QueryRowContext(ctx,
		"SELECT term_id FROM terms WHERE lower(term) = ?", normalized).Scan(&termID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT synonym FROM synonyms WHERE term_id = ?", termID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var synonyms []string
	seen := make(map[string]struct{})
	for rows.Next() {
		var synonym string
		if err := rows.Scan(&synonym); err != nil {
			return nil, err
		}
		synonym = strings.ToLower(strings.TrimSpace(synonym))
		if synonym == "" {
			continue
		}
		if _, ok := seen[synonym]; ok {
			continue
		}
		seen[synonym] = struct{}{}
		synonyms = append(synonyms, synonym)
	}

	return synonyms, rows.Err()
}
