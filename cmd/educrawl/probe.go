package main

import (
	"fmt"

	"github.com/jmoralesv/educrawl/goquery"
)

// Run executes the probe command: fetch the start URL over plain HTTP and
// report the page title and a sample of links passing the follow filter.
// The catalog itself renders client-side, so the probe only verifies that
// the site is reachable and the filter behaves, not that cards are visible.
func (c *ProbeCmd) Run(deps *Dependencies) error {
	finalURL, html, err := deps.Fetcher.FetchDocument(deps.Ctx, c.Start)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to GET %s: %v\n", c.Start, err)
		return err
	}

	title := goquery.PageTitle(html)
	if title == "" {
		title = "<no title>"
	}
	fmt.Fprintf(deps.Stdout, "Fetched: %s\n", finalURL)
	fmt.Fprintf(deps.Stdout, "Title: %s\n", title)

	links, err := goquery.FollowableLinks(html, finalURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if c.Limit > 0 && len(links) > c.Limit {
		links = links[:c.Limit]
	}
	fmt.Fprintln(deps.Stdout, "Sample links:")
	for _, link := range links {
		fmt.Fprintf(deps.Stdout, " - %s\n", link)
	}

	return nil
}
