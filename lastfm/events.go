package lastfm

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// trailingSegments are path suffixes last.fm hangs off an event URL
// depending on where the link appears. Each is stripped at most once,
// in this order, before the canonical "/lineup" suffix is applied.
var trailingSegments = []string{"/attendance", "/going", "/interested", "/lineup"}

// EventURLs extracts every event link from a listing page and returns
// the canonical lineup URL for each, deduplicated in first-seen order.
//
// Two passes feed the candidate set: anchors inside div/li/article
// elements whose class attribute mentions "event" or "card", and then
// every anchor on the page. The second pass subsumes the first, but
// both are kept so that the card pass controls ordering when the
// markup cooperates.
func EventURLs(doc *goquery.Document, base string) []string {
	var hrefs []string

	doc.Find("div, li, article").Each(func(_ int, card *goquery.Selection) {
		class, ok := card.Attr("class")
		if !ok {
			return
		}
		lower := strings.ToLower(class)
		if !strings.Contains(lower, "event") && !strings.Contains(lower, "card") {
			return
		}
		card.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
			hrefs = append(hrefs, link.AttrOr("href", ""))
		})
	})

	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		hrefs = append(hrefs, link.AttrOr("href", ""))
	})

	var urls []string
	seen := map[string]struct{}{}
	for _, href := range hrefs {
		if !strings.Contains(href, "/event/") {
			continue
		}
		canonical, err := CanonicalEventURL(base, href)
		if err != nil {
			continue
		}
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		urls = append(urls, canonical)
	}

	return urls
}

// CanonicalEventURL resolves href against the site origin and reduces
// it to the event's lineup page: the query string is dropped, any known
// trailing segment is stripped, and "/lineup" is appended. An already
// canonical URL passes through unchanged, so the reduction is
// idempotent.
func CanonicalEventURL(base, href string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("error parsing base url '%s': %w", base, err)
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("error parsing href '%s': %w", href, err)
	}

	full := baseURL.ResolveReference(ref).String()
	if i := strings.Index(full, "?"); i >= 0 {
		full = full[:i]
	}
	for _, suffix := range trailingSegments {
		full = strings.TrimSuffix(full, suffix)
	}

	return full + "/lineup", nil
}
