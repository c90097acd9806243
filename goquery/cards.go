// Package goquery provides DOM extraction for the course catalog: catalog
// card extraction and detail-page field parsing via fixed CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jmoralesv/educrawl"
)

// Selectors for the catalog listing. The catalog renders each program as a
// list item tagged with both the program class and the hits-item class.
const (
	cardSelector      = "li.item-programa.ais-Hits-item"
	cardTypeSelector  = "div.card-type"
	cardTitleSelector = ".card-body b.card-title"
	cardLinkSelector  = ".card-body a[href]"
)

// Ensure CardExtractor implements educrawl.CardExtractor at compile time.
var _ educrawl.CardExtractor = (*CardExtractor)(nil)

// CardExtractor extracts catalog cards from rendered markup.
type CardExtractor struct{}

// NewCardExtractor creates a new CardExtractor.
func NewCardExtractor() *CardExtractor {
	return &CardExtractor{}
}

// ExtractCards returns the ordered sequence of catalog cards in the markup.
// The detail link is taken from the first anchor inside the card body,
// falling back to the first anchor anywhere in the card; a card with no
// anchor has an empty Href.
func (e *CardExtractor) ExtractCards(html string) ([]educrawl.Card, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, educrawl.Errorf(educrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	var cards []educrawl.Card
	doc.Find(cardSelector).Each(func(_ int, sel *goquery.Selection) {
		card := educrawl.Card{
			Title:     collapseText(sel.Find(cardTitleSelector).First()),
			TypeLabel: collapseText(sel.Find(cardTypeSelector).First()),
		}

		anchor := sel.Find(cardLinkSelector).First()
		if anchor.Length() == 0 {
			anchor = sel.Find("a[href]").First()
		}
		if href, ok := anchor.Attr("href"); ok {
			card.Href = strings.TrimSpace(href)
		}

		cards = append(cards, card)
	})

	return cards, nil
}

// collapseText returns the selection's text with runs of whitespace
// collapsed to single spaces and surrounding whitespace trimmed.
func collapseText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}
