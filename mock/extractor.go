package mock

import "github.com/jmoralesv/educrawl"

var _ educrawl.CardExtractor = (*CardExtractor)(nil)

// CardExtractor is a mock implementation of educrawl.CardExtractor.
type CardExtractor struct {
	ExtractCardsFn func(html string) ([]educrawl.Card, error)
}

func (e *CardExtractor) ExtractCards(html string) ([]educrawl.Card, error) {
	return e.ExtractCardsFn(html)
}

var _ educrawl.DetailParser = (*DetailParser)(nil)

// DetailParser is a mock implementation of educrawl.DetailParser.
type DetailParser struct {
	ParseCourseDetailFn func(html, url string) (*educrawl.Course, error)
}

func (p *DetailParser) ParseCourseDetail(html, url string) (*educrawl.Course, error) {
	return p.ParseCourseDetailFn(html, url)
}
