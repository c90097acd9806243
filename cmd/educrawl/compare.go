package main

import (
	"fmt"

	"github.com/jmoralesv/educrawl"
	"github.com/jmoralesv/educrawl/tfidf"
)

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	a, b, err := c.selectPair(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", educrawl.ErrorMessage(err))
		return err
	}

	score := tfidf.CompareTexts(a.SimilarityText(), b.SimilarityText())
	fmt.Fprintf(deps.Stdout, "Similarity (cosine) = %.4f\n", score)

	return nil
}

// selectPair resolves the two courses named by whichever selector was given.
func (c *CompareCmd) selectPair(deps *Dependencies) (*educrawl.Course, *educrawl.Course, error) {
	switch {
	case len(c.IDs) > 0:
		if len(c.IDs) != 2 {
			return nil, nil, educrawl.Errorf(educrawl.EINVALID, "--ids needs exactly two ids")
		}
		return c.lookup(deps,
			func() (*educrawl.Course, error) { return deps.Courses.FindCourseByID(deps.Ctx, c.IDs[0]) },
			func() (*educrawl.Course, error) { return deps.Courses.FindCourseByID(deps.Ctx, c.IDs[1]) })

	case len(c.URLs) > 0:
		if len(c.URLs) != 2 {
			return nil, nil, educrawl.Errorf(educrawl.EINVALID, "--urls needs exactly two URLs")
		}
		return c.lookup(deps,
			func() (*educrawl.Course, error) { return deps.Courses.FindCourseByURL(deps.Ctx, c.URLs[0]) },
			func() (*educrawl.Course, error) { return deps.Courses.FindCourseByURL(deps.Ctx, c.URLs[1]) })

	case len(c.Titles) > 0:
		if len(c.Titles) != 2 {
			return nil, nil, educrawl.Errorf(educrawl.EINVALID, "--titles needs exactly two substrings")
		}
		return c.lookup(deps,
			func() (*educrawl.Course, error) { return deps.Courses.FindCourseByTitle(deps.Ctx, c.Titles[0]) },
			func() (*educrawl.Course, error) { return deps.Courses.FindCourseByTitle(deps.Ctx, c.Titles[1]) })
	}

	return nil, nil, educrawl.Errorf(educrawl.EINVALID, "one of --ids, --urls, or --titles is required")
}

func (c *CompareCmd) lookup(deps *Dependencies, first, second func() (*educrawl.Course, error)) (*educrawl.Course, *educrawl.Course, error) {
	a, err := first()
	if err != nil {
		return nil, nil, err
	}
	b, err := second()
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
