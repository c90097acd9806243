package educrawl

import (
	"context"
	"time"
)

// CrawlRun records one crawl invocation for bookkeeping.
type CrawlRun struct {
	ID         string    `json:"id"`
	StartURL   string    `json:"startUrl"`
	Pages      int       `json:"pages"`
	LinksFound int       `json:"linksFound"`
	Saved      int       `json:"saved"`
	Skipped    int       `json:"skipped"`
	Failed     int       `json:"failed"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *CrawlRun) Validate() error {
	if r.StartURL == "" {
		return Errorf(EINVALID, "run start URL required")
	}
	return nil
}

// RunService records crawl runs.
type RunService interface {
	// CreateRun creates a new run record and assigns its ID.
	CreateRun(ctx context.Context, run *CrawlRun) error

	// FinishRun stores the final counters and finish time for a run.
	// Returns ENOTFOUND if the run does not exist.
	FinishRun(ctx context.Context, run *CrawlRun) error
}
