package lastfm

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// The artist-extraction heuristics, by name. All of them run by
// default; a subset can be selected for debugging a page whose markup
// has drifted.
const (
	HeuristicLinkBlocks = "link-blocks"
	HeuristicHeadings   = "headings"
	HeuristicLineupList = "lineup-list"
)

// Heuristics lists every artist-extraction heuristic.
func Heuristics() []string {
	return []string{HeuristicLinkBlocks, HeuristicHeadings, HeuristicLineupList}
}

// Artists extracts performer names from an event's lineup page,
// running every heuristic and unioning the results. An empty set means
// no heuristic matched anything; that is a property of the page, not a
// fetch failure.
func Artists(doc *goquery.Document) map[string]struct{} {
	return ArtistsUsing(doc, Heuristics()...)
}

// ArtistsUsing extracts performer names using only the named
// heuristics. Whitespace-only names are discarded; duplicates across
// heuristics collapse into the set.
func ArtistsUsing(doc *goquery.Document, heuristics ...string) map[string]struct{} {
	artists := map[string]struct{}{}

	add := func(name string) {
		name = strings.TrimSpace(name)
		if name != "" {
			artists[name] = struct{}{}
		}
	}

	for _, heuristic := range heuristics {
		switch heuristic {
		case HeuristicLinkBlocks:
			// Artist links in the lineup carry this class.
			doc.Find("a.link-block-target").Each(func(_ int, link *goquery.Selection) {
				add(link.Text())
			})

		case HeuristicHeadings:
			// The headliner is usually a page heading.
			doc.Find("h1.event-detail-artists, h2.event-detail-artists, h3.event-detail-artists").
				Each(func(_ int, heading *goquery.Selection) {
					add(heading.Text())
				})

		case HeuristicLineupList:
			// Each list item inside the lineup container names one
			// artist in its first anchor.
			container := doc.Find("section.lineup-section").First()
			if container.Length() == 0 {
				container = doc.Find("div.lineup").First()
			}
			container.Find("li").Each(func(_ int, item *goquery.Selection) {
				add(item.Find("a").First().Text())
			})
		}
	}

	return artists
}
