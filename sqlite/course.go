package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jmoralesv/educrawl"
)

// Compile-time interface verification.
var _ educrawl.CourseService = (*CourseService)(nil)

// CourseService implements educrawl.CourseService using SQLite.
type CourseService struct {
	db *DB
}

// NewCourseService creates a new CourseService.
func NewCourseService(db *DB) *CourseService {
	return &CourseService{db: db}
}

const courseColumns = `course_id, url, title, category, modality, duration, price,
	start_date, location, value_proposal, tutoria, description, raw_html,
	content_hash, last_crawled_at`

// UpsertCourse inserts a course or overwrites all fields of the existing row
// with the same URL. The course's ID is set to the stored row id.
func (s *CourseService) UpsertCourse(ctx context.Context, course *educrawl.Course) error {
	if err := course.Validate(); err != nil {
		return err
	}

	if course.LastCrawledAt.IsZero() {
		course.LastCrawledAt = time.Now().UTC()
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO courses (
			url, title, category, modality, duration, price, start_date,
			location, value_proposal, tutoria, description, raw_html,
			content_hash, last_crawled_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			category = excluded.category,
			modality = excluded.modality,
			duration = excluded.duration,
			price = excluded.price,
			start_date = excluded.start_date,
			location = excluded.location,
			value_proposal = excluded.value_proposal,
			tutoria = excluded.tutoria,
			description = excluded.description,
			raw_html = excluded.raw_html,
			content_hash = excluded.content_hash,
			last_crawled_at = excluded.last_crawled_at
		RETURNING course_id
	`, course.URL, course.Title, course.Category, course.Modality, course.Duration,
		course.Price, course.StartDate, course.Location, course.ValueProposal,
		course.Tutoring, course.Description, course.RawHTML, course.ContentHash,
		course.LastCrawledAt.Format(time.RFC3339)).Scan(&course.ID)

	return err
}

// FindCourseByID retrieves a course by its numeric row id.
func (s *CourseService) FindCourseByID(ctx context.Context, id int64) (*educrawl.Course, error) {
	return s.findOne(ctx, "WHERE course_id = ?", id)
}

// FindCourseByURL retrieves a course by its URL.
func (s *CourseService) FindCourseByURL(ctx context.Context, url string) (*educrawl.Course, error) {
	return s.findOne(ctx, "WHERE url = ?", url)
}

// FindCourseByTitle retrieves the first course (lowest id) whose title
// contains the given substring.
func (s *CourseService) FindCourseByTitle(ctx context.Context, contains string) (*educrawl.Course, error) {
	return s.findOne(ctx, "WHERE title LIKE ? ORDER BY course_id LIMIT 1", "%"+contains+"%")
}

func (s *CourseService) findOne(ctx context.Context, clause string, args ...any) (*educrawl.Course, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+courseColumns+" FROM courses "+clause, args...)
	course, err := scanCourse(row.Scan)
	if err == sql.ErrNoRows {
		return nil, educrawl.Errorf(educrawl.ENOTFOUND, "course not found")
	}
	if err != nil {
		return nil, err
	}
	return course, nil
}

// FindCourses retrieves courses matching the filter, ordered by id.
func (s *CourseService) FindCourses(ctx context.Context, filter educrawl.CourseFilter) ([]*educrawl.Course, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + courseColumns + " FROM courses WHERE 1=1")
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	query.WriteString(" ORDER BY course_id ASC")
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*educrawl.Course
	for rows.Next() {
		course, err := scanCourse(rows.Scan)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}

// scanCourse scans one courses row using the provided scan function.
func scanCourse(scan func(dest ...any) error) (*educrawl.Course, error) {
	var course educrawl.Course
	var lastCrawledAt string

	if err := scan(&course.ID, &course.URL, &course.Title, &course.Category,
		&course.Modality, &course.Duration, &course.Price, &course.StartDate,
		&course.Location, &course.ValueProposal, &course.Tutoring,
		&course.Description, &course.RawHTML, &course.ContentHash,
		&lastCrawledAt); err != nil {
		return nil, err
	}

	var err error
	course.LastCrawledAt, err = parseRFC3339(lastCrawledAt, "last_crawled_at")
	if err != nil {
		return nil, err
	}

	return &course, nil
}
