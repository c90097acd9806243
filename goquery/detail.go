package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jmoralesv/educrawl"
)

// Sidebar labels on the detail page. Matching is a fuzzy case-insensitive
// contains-match because the site renders the labels with varying whitespace
// and casing.
const (
	labelLevel    = "NIVEL"
	labelDuration = "DURACIÓN"
	labelTutoring = "TUTORÍA"
	labelStart    = "INICIO"
)

const (
	sidebarLabelSelector = "h6.font-title-color.m-0"
	sectionHeaderClass   = ".font-weight-bold.text-primary"
	proposalSelector     = ".course-wrapper-seccion.course-wrapper-content--proposal"
	presentationSelector = ".course-wrapper-seccion.course-wrapper-content--presentation"
)

// Ensure DetailParser implements educrawl.DetailParser at compile time.
var _ educrawl.DetailParser = (*DetailParser)(nil)

// DetailParser extracts structured course fields from a rendered detail page.
type DetailParser struct{}

// NewDetailParser creates a new DetailParser.
func NewDetailParser() *DetailParser {
	return &DetailParser{}
}

// ParseCourseDetail extracts the course fields by structural selector.
// A missing section yields an empty field, never an error. The returned
// course is not validated; callers decide whether a titleless page is a
// skip condition.
func (p *DetailParser) ParseCourseDetail(html, url string) (*educrawl.Course, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, educrawl.Errorf(educrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	course := &educrawl.Course{
		URL:           url,
		Title:         parseTitle(doc),
		Price:         collapseText(doc.Find("span.course-price").First()),
		Category:      sidebarValue(doc, labelLevel),
		Duration:      sidebarValue(doc, labelDuration),
		Tutoring:      sidebarValue(doc, labelTutoring),
		StartDate:     sidebarValue(doc, labelStart),
		ValueProposal: sectionText(doc, proposalSelector),
		Description:   sectionText(doc, presentationSelector),
	}

	return course, nil
}

// parseTitle reads the course title, preferring the specific heading class
// and degrading to any h1/h2.
func parseTitle(doc *goquery.Document) string {
	for _, selector := range []string{
		"h2.font-weight-bold.mb-md-0",
		"h1.font-weight-bold",
		"h1, h2",
	} {
		if title := collapseText(doc.Find(selector).First()); title != "" {
			return title
		}
	}
	return ""
}

// sidebarValue locates the sidebar fact whose label text contains the given
// label (case-insensitive) and returns the adjacent value element's text.
// Returns "" when the label is not found.
func sidebarValue(doc *goquery.Document, label string) string {
	label = strings.ToLower(label)

	var value string
	doc.Find(sidebarLabelSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(sel.Text()), label) {
			return true
		}
		row := sel.Closest(".row")
		if row.Length() == 0 {
			return true
		}
		value = collapseText(row.Find(".col > div").First())
		return false
	})
	return value
}

// sectionText returns the text of a content section with its bold header
// element removed, so the section title does not leak into the field value.
func sectionText(doc *goquery.Document, selector string) string {
	section := doc.Find(selector).First()
	if section.Length() == 0 {
		return ""
	}
	section.Find(sectionHeaderClass).Remove()
	return collapseText(section)
}
