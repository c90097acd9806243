package educrawl

import (
	"context"
	"time"
)

// Course represents one crawled course detail page. Courses are keyed by URL:
// revisiting a URL overwrites the previous record.
type Course struct {
	ID            int64     `json:"id"`
	URL           string    `json:"url"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Modality      string    `json:"modality"`
	Duration      string    `json:"duration"`
	Price         string    `json:"price"`
	StartDate     string    `json:"startDate"`
	Location      string    `json:"location"`
	ValueProposal string    `json:"valueProposal"`
	Tutoring      string    `json:"tutoring"`
	Description   string    `json:"description"`
	RawHTML       string    `json:"-"`
	ContentHash   string    `json:"contentHash"`
	LastCrawledAt time.Time `json:"lastCrawledAt"`
}

// Validate returns an error if the course contains invalid fields.
// A course without a title is never stored.
func (c *Course) Validate() error {
	if c.URL == "" {
		return Errorf(EINVALID, "course URL required")
	}
	if c.Title == "" {
		return Errorf(EINVALID, "course title required")
	}
	return nil
}

// SimilarityText returns the text document used for similarity scoring:
// title, description, value proposal, and tutoring text joined with spaces,
// skipping empty fields.
func (c *Course) SimilarityText() string {
	var out string
	for _, part := range []string{c.Title, c.Description, c.ValueProposal, c.Tutoring} {
		if part == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += part
	}
	return out
}

// CourseService represents a service for managing stored courses.
type CourseService interface {
	// UpsertCourse inserts a course or overwrites all fields of the
	// existing row with the same URL.
	UpsertCourse(ctx context.Context, course *Course) error

	// FindCourseByID retrieves a course by its numeric row id.
	// Returns ENOTFOUND if the course does not exist.
	FindCourseByID(ctx context.Context, id int64) (*Course, error)

	// FindCourseByURL retrieves a course by its URL.
	// Returns ENOTFOUND if the course does not exist.
	FindCourseByURL(ctx context.Context, url string) (*Course, error)

	// FindCourseByTitle retrieves the first course (lowest id) whose title
	// contains the given substring. Returns ENOTFOUND if no title matches.
	FindCourseByTitle(ctx context.Context, contains string) (*Course, error)

	// FindCourses retrieves courses matching the filter, ordered by id.
	FindCourses(ctx context.Context, filter CourseFilter) ([]*Course, error)
}

// CourseFilter represents a filter for FindCourses.
type CourseFilter struct {
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
