package educrawl

import (
	"context"
	"strings"
)

// Card represents one catalog list item. A card may describe a course or
// another program type (diploma, specialization); only course cards are
// followed.
type Card struct {
	Title     string
	TypeLabel string
	Href      string
}

// IsCourse reports whether the card's type label identifies a course.
// The match is case-insensitive and tolerant of surrounding text.
func (c *Card) IsCourse() bool {
	return strings.Contains(strings.ToLower(strings.TrimSpace(c.TypeLabel)), "curso")
}

// CardExtractor extracts catalog cards from rendered markup.
type CardExtractor interface {
	// ExtractCards returns the ordered sequence of cards present in the
	// markup. Cards of every program type are returned; filtering to
	// courses is the caller's concern. A card with no anchor has an empty
	// Href.
	ExtractCards(html string) ([]Card, error)
}

// DetailParser extracts structured course fields from a rendered detail page.
type DetailParser interface {
	// ParseCourseDetail extracts the named fields by structural selector.
	// A missing section yields an empty field, never an error.
	ParseCourseDetail(html, url string) (*Course, error)
}

// BrowserSession is the browser surface the pagination walker drives.
// All operations block until completion or context cancellation.
type BrowserSession interface {
	// Navigate loads the URL and waits for the load event.
	Navigate(ctx context.Context, url string) error

	// WaitVisible blocks until an element matching the selector is
	// present and visible.
	WaitVisible(ctx context.Context, selector string) error

	// Click triggers activation of the first element matching the
	// selector.
	Click(ctx context.Context, selector string) error

	// Attribute returns the named attribute of the first element matching
	// the selector, or "" if the element or attribute is absent.
	Attribute(ctx context.Context, selector, name string) (string, error)

	// HTML returns the current rendered markup.
	HTML(ctx context.Context) (string, error)

	// Close releases the session and its browser resources.
	Close() error
}

// Fetcher retrieves raw (non-rendered) HTML over HTTP. Used by the probe
// command; the crawl itself goes through BrowserSession because the catalog
// is rendered client-side.
type Fetcher interface {
	// Fetch returns the response body for the URL.
	Fetch(ctx context.Context, url string) (string, error)

	// FetchDocument returns the body along with the final URL after
	// redirects.
	FetchDocument(ctx context.Context, url string) (finalURL, html string, err error)

	// Close releases client resources.
	Close() error
}
