package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jmoralesv/educrawl"
)

// PageTitle returns the document's <title> text, or "" if absent.
func PageTitle(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return collapseText(doc.Find("title").First())
}

// FollowableLinks returns the distinct absolute links in the page that pass
// the follow filter for the page's own domain, in document order. Used by
// the probe command to sanity-check the link filter against a live page.
func FollowableLinks(html, pageURL string) ([]string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Host == "" {
		return nil, educrawl.Errorf(educrawl.EINVALID, "invalid page URL %q", pageURL)
	}
	domain := parsed.Host

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, educrawl.Errorf(educrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]struct{})
	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		link := educrawl.ResolveURL(pageURL, href)
		if link == "" || !educrawl.OKToFollow(link, domain) {
			return
		}
		link = educrawl.NormalizeURL(link)
		if _, ok := seen[link]; ok {
			return
		}
		seen[link] = struct{}{}
		links = append(links, link)
	})

	return links, nil
}
