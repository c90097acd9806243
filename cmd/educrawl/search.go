package main

import (
	"fmt"
	"strings"

	"github.com/jmoralesv/educrawl"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	interests := strings.Split(c.Interests, ",")

	results, err := deps.Search.SearchCourses(deps.Ctx, interests, c.Top)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", educrawl.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No courses matched.")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "- %s  (score=%g)\n  %s\n\n", r.Title, r.Score, r.URL)
	}

	return nil
}
