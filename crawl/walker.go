package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/jmoralesv/educrawl"
)

// Live-DOM selectors for the catalog's pagination. The pagination control
// for page i is a list item with id "p{i}" whose container gains the
// selected class once the page is active.
const (
	resultsSelector  = "li.item-programa.ais-Hits-item"
	pageItemSelector = "li#p%d"
	pageLinkSelector = "li#p%d a.page-link"
	selectedClass    = "ais-Pagination-item--selected"
)

// Default walker timeouts.
const (
	DefaultLoadTimeout    = 20 * time.Second
	DefaultAdvanceTimeout = 10 * time.Second
)

// Walker drives the browser through the paginated catalog and accumulates a
// deduplicated set of course detail links. The catalog is rendered
// client-side, so each page advance waits on two independent signals: the
// pagination control reporting a selected state, and the first card's title
// (the page fingerprint) changing. Both waits are bounded; on timeout the
// walker proceeds to extraction best-effort, since the link set deduplicates
// anything re-extracted from a stale render.
type Walker struct {
	Session educrawl.BrowserSession
	Cards   educrawl.CardExtractor
	Pacer   *Pacer
	Logger  *slog.Logger

	// LoadTimeout bounds the initial wait for catalog results. Exceeding
	// it is fatal for the run.
	LoadTimeout time.Duration

	// AdvanceTimeout bounds each of the two page-advance signals.
	AdvanceTimeout time.Duration

	// PollInterval is how often advance signals are re-checked.
	PollInterval time.Duration
}

// CollectLinks navigates to the start URL and walks pages 1..pages,
// collecting deduplicated, domain-filtered course detail links. The true
// page count is not discoverable from the DOM, so pages is a configured
// upper bound.
func (w *Walker) CollectLinks(ctx context.Context, startURL string, pages int) (*LinkSet, error) {
	logger := w.logger()

	parsed, err := url.Parse(startURL)
	if err != nil || parsed.Host == "" {
		return nil, educrawl.Errorf(educrawl.EINVALID, "invalid start URL %q", startURL)
	}
	domain := parsed.Host

	if err := w.Session.Navigate(ctx, startURL); err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	// The initial render must produce at least one card; anything else
	// means the catalog never loaded and the run cannot proceed.
	loadCtx, cancel := context.WithTimeout(ctx, w.loadTimeout())
	err = w.Session.WaitVisible(loadCtx, resultsSelector)
	cancel()
	if err != nil {
		return nil, educrawl.Errorf(educrawl.EUNAVAILABLE, "catalog did not render any results: %v", err)
	}

	links := NewLinkSet()
	fingerprint, err := w.firstCardTitle(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading initial render: %w", err)
	}

	for i := 1; i <= pages; i++ {
		fingerprint = w.advance(ctx, i, fingerprint)
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		found, err := w.extractInto(ctx, links, startURL, domain)
		if err != nil {
			logger.Warn("extraction failed, skipping page", "page", i, "err", err)
			continue
		}
		logger.Info("page extracted", "page", i, "courses", found, "accumulated", links.Len())
	}

	return links, nil
}

// advance activates the pagination control for page i and waits for the
// dual advance signals. It returns the fingerprint of whatever render the
// walker ends up on. If the control already reports selected (page 1 at
// start), the click and the fingerprint wait are skipped rather than left
// to time out.
func (w *Walker) advance(ctx context.Context, i int, fingerprint string) string {
	logger := w.logger()

	if selected, err := w.isSelected(ctx, i); err == nil && selected {
		logger.Debug("page already selected", "page", i)
		return w.refreshFingerprint(ctx, fingerprint)
	}

	if err := w.Session.Click(ctx, fmt.Sprintf(pageLinkSelector, i)); err != nil {
		logger.Warn("pagination control not clickable, proceeding with current render",
			"page", i, "err", err)
		return w.refreshFingerprint(ctx, fingerprint)
	}

	selectedOK, err := Poll(ctx, w.advanceTimeout(), w.PollInterval, func(ctx context.Context) (bool, error) {
		return w.isSelected(ctx, i)
	})
	if err != nil {
		return fingerprint
	}

	changedOK, err := Poll(ctx, w.advanceTimeout(), w.PollInterval, func(ctx context.Context) (bool, error) {
		current, err := w.firstCardTitle(ctx)
		if err != nil {
			return false, err
		}
		return current != fingerprint, nil
	})
	if err != nil {
		return fingerprint
	}

	if !selectedOK || !changedOK {
		logger.Warn("page advance signals timed out, proceeding with current render",
			"page", i, "selected", selectedOK, "content_changed", changedOK)
	}

	if w.Pacer != nil {
		_ = w.Pacer.Wait(ctx)
	}

	return w.refreshFingerprint(ctx, fingerprint)
}

// extractInto extracts the current render's cards, filters to courses,
// resolves their links, and adds them to the set. Returns the number of
// course links found on this render.
func (w *Walker) extractInto(ctx context.Context, links *LinkSet, startURL, domain string) (int, error) {
	html, err := w.Session.HTML(ctx)
	if err != nil {
		return 0, err
	}
	cards, err := w.Cards.ExtractCards(html)
	if err != nil {
		return 0, err
	}

	found := 0
	for _, card := range cards {
		if !card.IsCourse() || card.Href == "" {
			continue
		}
		link := educrawl.ResolveURL(startURL, card.Href)
		if link == "" || !educrawl.OKToFollow(link, domain) {
			continue
		}
		links.Add(link)
		found++
	}
	return found, nil
}

// isSelected reports whether the pagination control for page i carries the
// selected class.
func (w *Walker) isSelected(ctx context.Context, i int) (bool, error) {
	class, err := w.Session.Attribute(ctx, fmt.Sprintf(pageItemSelector, i), "class")
	if err != nil {
		return false, err
	}
	return strings.Contains(class, selectedClass), nil
}

// firstCardTitle returns the current render's page fingerprint: the title
// of the first catalog card, or "" when no card is present.
func (w *Walker) firstCardTitle(ctx context.Context) (string, error) {
	html, err := w.Session.HTML(ctx)
	if err != nil {
		return "", err
	}
	cards, err := w.Cards.ExtractCards(html)
	if err != nil {
		return "", err
	}
	if len(cards) == 0 {
		return "", nil
	}
	return cards[0].Title, nil
}

// refreshFingerprint re-reads the fingerprint, keeping the previous one if
// the render cannot be read.
func (w *Walker) refreshFingerprint(ctx context.Context, previous string) string {
	current, err := w.firstCardTitle(ctx)
	if err != nil {
		return previous
	}
	return current
}

func (w *Walker) loadTimeout() time.Duration {
	if w.LoadTimeout > 0 {
		return w.LoadTimeout
	}
	return DefaultLoadTimeout
}

func (w *Walker) advanceTimeout() time.Duration {
	if w.AdvanceTimeout > 0 {
		return w.AdvanceTimeout
	}
	return DefaultAdvanceTimeout
}

func (w *Walker) logger() *slog.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return slog.Default()
}
