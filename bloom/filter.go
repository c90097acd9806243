// Package bloom provides the probabilistic membership filter behind the
// crawler's course-link deduplication.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter answers "was this link seen already?". A positive answer may rarely
// be wrong, a negative answer never is, so no course link is dropped without
// having been recorded first.
type Filter struct {
	bits *bloom.BloomFilter
}

// NewFilter sizes a filter for n expected links at the given false positive
// rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{bits: bloom.NewWithEstimates(n, fpRate)}
}

// Add records a link.
func (f *Filter) Add(link string) {
	f.bits.AddString(link)
}

// Test reports whether the link was (probably) recorded before.
func (f *Filter) Test(link string) bool {
	return f.bits.TestString(link)
}

// EstimatedCount approximates how many distinct links have been recorded.
func (f *Filter) EstimatedCount() uint {
	return uint(f.bits.ApproximatedSize())
}
