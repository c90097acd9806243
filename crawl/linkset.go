package crawl

import (
	"sort"

	"github.com/jmoralesv/educrawl"
	"github.com/jmoralesv/educrawl/bloom"
)

// LinkSet sizing. The catalog holds a few hundred programs; the filter is
// sized generously so false positives stay negligible.
const (
	linkSetExpectedURLs      = 10000
	linkSetFalsePositiveRate = 0.001
)

// LinkSet accumulates a deduplicated set of absolute course URLs across the
// catalog pages of one crawl run. URLs are normalized before deduplication,
// so two URLs differing only by fragment or host case collapse to one.
type LinkSet struct {
	seen  *bloom.Filter
	links []string
}

// NewLinkSet creates an empty LinkSet.
func NewLinkSet() *LinkSet {
	return &LinkSet{
		seen: bloom.NewFilter(linkSetExpectedURLs, linkSetFalsePositiveRate),
	}
}

// Add normalizes the URL and adds it to the set.
// Returns false if the URL was already present.
func (s *LinkSet) Add(rawURL string) bool {
	url := educrawl.NormalizeURL(rawURL)
	if url == "" || s.seen.Test(url) {
		return false
	}
	s.seen.Add(url)
	s.links = append(s.links, url)
	return true
}

// Len returns the number of URLs in the set.
func (s *LinkSet) Len() int {
	return len(s.links)
}

// Sorted returns the URLs in lexicographic order. Sorting makes the detail
// visit order deterministic across runs.
func (s *LinkSet) Sorted() []string {
	out := make([]string, len(s.links))
	copy(out, s.links)
	sort.Strings(out)
	return out
}
