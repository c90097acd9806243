// Package crawl provides catalog crawling orchestration: pagination
// traversal, link collection, detail-page parsing, and persistence.
package crawl

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/jmoralesv/educrawl"
)

// Crawler orchestrates one crawl run: it walks the paginated catalog to
// collect course links, then visits each detail page sequentially, parsing
// and upserting one course per page. All execution is single-threaded;
// suspension happens only at explicit bounded waits.
type Crawler struct {
	Session educrawl.BrowserSession
	Cards   educrawl.CardExtractor
	Details educrawl.DetailParser
	Courses educrawl.CourseService
	Runs    educrawl.RunService
	Pacer   *Pacer
	Logger  *slog.Logger

	// SaveHTML stores the rendered detail markup alongside the parsed
	// fields.
	SaveHTML bool

	// Walker timeouts; zero values use the walker defaults.
	LoadTimeout    time.Duration
	AdvanceTimeout time.Duration
	PollInterval   time.Duration
}

// Result holds the outcome of a crawl run.
type Result struct {
	LinksFound int
	Saved      int
	Skipped    int
	Failed     int
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types emitted during a crawl run.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a crawl run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Run crawls the catalog starting at startURL, walking up to pages catalog
// pages, and persists every course detail page that yields a title.
// Failures on individual detail pages are logged and skipped; only a failed
// catalog load or an unusable store aborts the run.
func (c *Crawler) Run(ctx context.Context, startURL string, pages int, progress ProgressFunc) (*Result, error) {
	logger := c.logger()

	run := &educrawl.CrawlRun{
		StartURL:  startURL,
		Pages:     pages,
		StartedAt: time.Now().UTC(),
	}
	if c.Runs != nil {
		if err := c.Runs.CreateRun(ctx, run); err != nil {
			return nil, err
		}
	}

	walker := &Walker{
		Session:        c.Session,
		Cards:          c.Cards,
		Pacer:          c.Pacer,
		Logger:         logger,
		LoadTimeout:    c.LoadTimeout,
		AdvanceTimeout: c.AdvanceTimeout,
		PollInterval:   c.PollInterval,
	}

	links, err := walker.CollectLinks(ctx, startURL, pages)
	if err != nil {
		return nil, err
	}

	sorted := links.Sorted()
	result := &Result{LinksFound: len(sorted)}
	logger.Info("link collection finished", "links", len(sorted))

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(sorted)})
	}

	completed := 0
	for _, link := range sorted {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		completed++

		course, err := c.visitDetail(ctx, link)
		if err != nil {
			result.Failed++
			logger.Warn("detail visit failed", "url", link, "err", err)
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: completed, Total: len(sorted), URL: link, Error: err})
			}
			continue
		}

		// A page without a title is a skip condition, not an error.
		if course.Title == "" {
			result.Skipped++
			logger.Info("skipping untitled page", "url", link)
			if progress != nil {
				progress(ProgressEvent{Type: ProgressSkipped, Completed: completed, Total: len(sorted), URL: link})
			}
			continue
		}

		if err := c.Courses.UpsertCourse(ctx, course); err != nil {
			result.Failed++
			logger.Warn("upsert failed", "url", link, "err", err)
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: completed, Total: len(sorted), URL: link, Error: err})
			}
			continue
		}

		result.Saved++
		if progress != nil {
			progress(ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: len(sorted), URL: link})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: len(sorted)})
	}

	run.LinksFound = result.LinksFound
	run.Saved = result.Saved
	run.Skipped = result.Skipped
	run.Failed = result.Failed
	run.FinishedAt = time.Now().UTC()
	if c.Runs != nil {
		if err := c.Runs.FinishRun(ctx, run); err != nil {
			logger.Warn("recording run failed", "err", err)
		}
	}

	return result, nil
}

// visitDetail navigates to a course detail page and parses it into a Course.
func (c *Crawler) visitDetail(ctx context.Context, link string) (*educrawl.Course, error) {
	if c.Pacer != nil {
		if err := c.Pacer.Wait(ctx); err != nil {
			return nil, err
		}
	}

	if err := c.Session.Navigate(ctx, link); err != nil {
		return nil, err
	}
	html, err := c.Session.HTML(ctx)
	if err != nil {
		return nil, err
	}

	course, err := c.Details.ParseCourseDetail(html, link)
	if err != nil {
		return nil, err
	}

	course.ContentHash = contentHash(html)
	course.LastCrawledAt = time.Now().UTC()
	if c.SaveHTML {
		course.RawHTML = html
	}
	return course, nil
}

// contentHash computes the xxHash of content and returns it as a hex string.
func contentHash(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
