package main

import (
	"fmt"

	"github.com/jmoralesv/educrawl/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	crawler := buildCrawler(deps, c.Delay, c.SaveHTML)

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Collected %d course links\n", event.Total)
		case crawl.ProgressCompleted:
			if event.Completed%10 == 0 {
				fmt.Fprintf(deps.Stdout, "  saved %d/%d\n", event.Completed, event.Total)
			}
		case crawl.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  skip (no title) %s\n", event.URL)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		case crawl.ProgressFinished:
			// Summary printed after the run completes.
		}
	}

	result, err := crawler.Run(deps.Ctx, c.Start, c.Pages, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error crawling: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Done. Courses saved/updated: %d (links %d, skipped %d, failed %d)\n",
		result.Saved, result.LinksFound, result.Skipped, result.Failed)

	return nil
}
