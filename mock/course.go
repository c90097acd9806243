package mock

import (
	"context"

	"github.com/jmoralesv/educrawl"
)

var _ educrawl.CourseService = (*CourseService)(nil)

// CourseService is a mock implementation of educrawl.CourseService.
type CourseService struct {
	UpsertCourseFn      func(ctx context.Context, course *educrawl.Course) error
	FindCourseByIDFn    func(ctx context.Context, id int64) (*educrawl.Course, error)
	FindCourseByURLFn   func(ctx context.Context, url string) (*educrawl.Course, error)
	FindCourseByTitleFn func(ctx context.Context, contains string) (*educrawl.Course, error)
	FindCoursesFn       func(ctx context.Context, filter educrawl.CourseFilter) ([]*educrawl.Course, error)
}

func (s *CourseService) UpsertCourse(ctx context.Context, course *educrawl.Course) error {
	return s.UpsertCourseFn(ctx, course)
}

func (s *CourseService) FindCourseByID(ctx context.Context, id int64) (*educrawl.Course, error) {
	return s.FindCourseByIDFn(ctx, id)
}

func (s *CourseService) FindCourseByURL(ctx context.Context, url string) (*educrawl.Course, error) {
	return s.FindCourseByURLFn(ctx, url)
}

func (s *CourseService) FindCourseByTitle(ctx context.Context, contains string) (*educrawl.Course, error) {
	return s.FindCourseByTitleFn(ctx, contains)
}

func (s *CourseService) FindCourses(ctx context.Context, filter educrawl.CourseFilter) ([]*educrawl.Course, error) {
	return s.FindCoursesFn(ctx, filter)
}
