package crawl_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jmoralesv/educrawl"
	"github.com/jmoralesv/educrawl/crawl"
	"github.com/jmoralesv/educrawl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// crawlerSession serves both sides of a run: the catalog render while on the
// start URL and a per-URL detail render after navigating away.
type crawlerSession struct {
	mock.BrowserSession
	current string
}

func newCrawlerSession() *crawlerSession {
	s := &crawlerSession{}
	s.NavigateFn = func(ctx context.Context, url string) error {
		s.current = url
		return nil
	}
	s.WaitVisibleFn = func(ctx context.Context, selector string) error { return nil }
	s.ClickFn = func(ctx context.Context, selector string) error { return nil }
	s.AttributeFn = func(ctx context.Context, selector, name string) (string, error) {
		// Single-page catalog: page 1 is always selected.
		if selector == "li#p1" {
			return "ais-Pagination-item--selected", nil
		}
		return "", nil
	}
	s.HTMLFn = func(ctx context.Context) (string, error) {
		if s.current == startURL {
			return "catalog", nil
		}
		return "detail:" + s.current, nil
	}
	return s
}

func catalogCards(html string) ([]educrawl.Card, error) {
	return []educrawl.Card{
		{Title: "Curso A", TypeLabel: "Curso", Href: "/curso-a"},
		{Title: "Curso B", TypeLabel: "Curso", Href: "/curso-b"},
		{Title: "Curso C", TypeLabel: "Curso", Href: "/curso-c"},
	}, nil
}

func detailByURL(html, url string) (*educrawl.Course, error) {
	course := &educrawl.Course{URL: url}
	switch {
	case strings.HasSuffix(url, "/curso-a"):
		course.Title = "Curso A"
	case strings.HasSuffix(url, "/curso-b"):
		course.Title = "Curso B"
	case strings.HasSuffix(url, "/curso-c"):
		// Untitled page; the crawler should skip it.
	}
	return course, nil
}

func TestCrawler_Run(t *testing.T) {
	t.Parallel()

	var saved []*educrawl.Course
	courses := &mock.CourseService{
		UpsertCourseFn: func(ctx context.Context, course *educrawl.Course) error {
			if course.Title == "Curso B" {
				return educrawl.Errorf(educrawl.EINTERNAL, "disk full")
			}
			saved = append(saved, course)
			return nil
		},
	}

	var createdRun, finishedRun *educrawl.CrawlRun
	runs := &mock.RunService{
		CreateRunFn: func(ctx context.Context, run *educrawl.CrawlRun) error {
			run.ID = "run-1"
			createdRun = run
			return nil
		},
		FinishRunFn: func(ctx context.Context, run *educrawl.CrawlRun) error {
			finishedRun = run
			return nil
		},
	}

	crawler := &crawl.Crawler{
		Session:        newCrawlerSession(),
		Cards:          &mock.CardExtractor{ExtractCardsFn: catalogCards},
		Details:        &mock.DetailParser{ParseCourseDetailFn: detailByURL},
		Courses:        courses,
		Runs:           runs,
		AdvanceTimeout: 50 * time.Millisecond,
		PollInterval:   time.Millisecond,
	}

	var events []crawl.ProgressEvent
	result, err := crawler.Run(context.Background(), startURL, 1, func(event crawl.ProgressEvent) {
		events = append(events, event)
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.LinksFound)
	assert.Equal(t, 1, result.Saved)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.Failed)

	t.Run("saved course carries crawl metadata", func(t *testing.T) {
		require.Len(t, saved, 1)
		course := saved[0]
		assert.Equal(t, "Curso A", course.Title)
		assert.NotEmpty(t, course.ContentHash)
		assert.False(t, course.LastCrawledAt.IsZero())
		assert.Empty(t, course.RawHTML, "raw markup is not kept unless requested")
	})

	t.Run("run record is created and finished", func(t *testing.T) {
		require.NotNil(t, createdRun)
		require.NotNil(t, finishedRun)
		assert.Equal(t, "run-1", finishedRun.ID)
		assert.Equal(t, startURL, finishedRun.StartURL)
		assert.Equal(t, 3, finishedRun.LinksFound)
		assert.Equal(t, 1, finishedRun.Saved)
		assert.Equal(t, 1, finishedRun.Skipped)
		assert.Equal(t, 1, finishedRun.Failed)
		assert.False(t, finishedRun.FinishedAt.IsZero())
	})

	t.Run("progress events in visit order", func(t *testing.T) {
		require.Len(t, events, 5)
		assert.Equal(t, crawl.ProgressStarted, events[0].Type)
		assert.Equal(t, 3, events[0].Total)
		assert.Equal(t, crawl.ProgressCompleted, events[1].Type)
		assert.True(t, strings.HasSuffix(events[1].URL, "/curso-a"))
		assert.Equal(t, crawl.ProgressFailed, events[2].Type)
		assert.True(t, strings.HasSuffix(events[2].URL, "/curso-b"))
		require.Error(t, events[2].Error)
		assert.Equal(t, crawl.ProgressSkipped, events[3].Type)
		assert.True(t, strings.HasSuffix(events[3].URL, "/curso-c"))
		assert.Equal(t, crawl.ProgressFinished, events[4].Type)
		assert.Equal(t, 3, events[4].Completed)
	})
}

func TestCrawler_Run_SaveHTML(t *testing.T) {
	t.Parallel()

	var saved *educrawl.Course
	crawler := &crawl.Crawler{
		Session: newCrawlerSession(),
		Cards: &mock.CardExtractor{ExtractCardsFn: func(html string) ([]educrawl.Card, error) {
			return []educrawl.Card{{Title: "Curso A", TypeLabel: "Curso", Href: "/curso-a"}}, nil
		}},
		Details: &mock.DetailParser{ParseCourseDetailFn: detailByURL},
		Courses: &mock.CourseService{
			UpsertCourseFn: func(ctx context.Context, course *educrawl.Course) error {
				saved = course
				return nil
			},
		},
		SaveHTML:       true,
		AdvanceTimeout: 50 * time.Millisecond,
		PollInterval:   time.Millisecond,
	}

	result, err := crawler.Run(context.Background(), startURL, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Saved)

	require.NotNil(t, saved)
	assert.True(t, strings.HasPrefix(saved.RawHTML, "detail:"))
}

func TestCrawler_Run_CatalogLoadFailure(t *testing.T) {
	t.Parallel()

	session := newCrawlerSession()
	session.WaitVisibleFn = func(ctx context.Context, selector string) error {
		return educrawl.Errorf(educrawl.EUNAVAILABLE, "no results")
	}

	crawler := &crawl.Crawler{
		Session: session,
		Cards:   &mock.CardExtractor{ExtractCardsFn: catalogCards},
		Details: &mock.DetailParser{ParseCourseDetailFn: detailByURL},
		Courses: &mock.CourseService{},
		Runs: &mock.RunService{
			CreateRunFn: func(ctx context.Context, run *educrawl.CrawlRun) error { return nil },
			FinishRunFn: func(ctx context.Context, run *educrawl.CrawlRun) error { return nil },
		},
	}

	_, err := crawler.Run(context.Background(), startURL, 1, nil)
	require.Error(t, err)
	assert.Equal(t, educrawl.EUNAVAILABLE, educrawl.ErrorCode(err))
}
