// Package crawler drives the event crawl: listing pages in, event URLs
// out, then lineup pages in, artist names out. Everything is
// sequential; the only concession to the server is a fixed pause
// between requests.
package crawler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/pkarls/gigography/db"
	"github.com/pkarls/gigography/lastfm"
	"github.com/pkarls/gigography/limiter"
	"github.com/pkarls/gigography/request"
)

// Options configures a Crawler. The zero value gets last.fm defaults:
// the public site origin, a 1 second pause between listing pages, a
// half second pause between lineup pages, every extraction heuristic,
// and no resume store.
type Options struct {
	BaseURL    string
	Verbose    bool
	Store      *db.DB
	Heuristics []string
	PagePause  time.Duration
	EventPause time.Duration
}

type Crawler struct {
	client  *request.Client
	base    string
	verbose bool
	store   *db.DB

	heuristics []string

	pages  *limiter.Limiter
	events *limiter.Limiter
}

func New(client *request.Client, opts Options) *Crawler {
	if opts.BaseURL == "" {
		opts.BaseURL = lastfm.BaseURL
	}
	if opts.PagePause == 0 {
		opts.PagePause = time.Second
	}
	if opts.EventPause == 0 {
		opts.EventPause = 500 * time.Millisecond
	}
	if len(opts.Heuristics) == 0 {
		opts.Heuristics = lastfm.Heuristics()
	}
	return &Crawler{
		client:     client,
		base:       opts.BaseURL,
		verbose:    opts.Verbose,
		store:      opts.Store,
		heuristics: opts.Heuristics,
		pages:      limiter.New(opts.PagePause),
		events:     limiter.New(opts.EventPause),
	}
}

// EventURLs fetches the user's main events page and then each year
// page in the inclusive range [from, to], ascending, merging the
// discovered lineup URLs in first-seen order. A page that can't be
// fetched contributes nothing; the crawl moves on. A fixed pause
// follows every page regardless of outcome.
func (c *Crawler) EventURLs(ctx context.Context, username string, from, to int) ([]string, error) {
	var all []string
	seen := map[string]struct{}{}

	merge := func(urls []string) (added int, err error) {
		for _, u := range urls {
			if _, dup := seen[u]; dup {
				continue
			}
			seen[u] = struct{}{}
			all = append(all, u)
			added++
			if c.store != nil {
				if err := c.store.InsertEvent(u); err != nil {
					return added, err
				}
			}
		}
		return added, nil
	}

	log.Printf("fetching events from main page")
	urls := c.eventURLsFromPage(ctx, lastfm.UserEventsURL(c.base, username))
	if _, err := merge(urls); err != nil {
		return nil, err
	}
	log.Printf("found %d events on main page", len(urls))
	if err := c.pages.Pause(ctx); err != nil {
		return nil, err
	}

	for year := from; year <= to; year++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		log.Printf("fetching events from %d", year)
		urls := c.eventURLsFromPage(ctx, lastfm.UserYearEventsURL(c.base, username, year))
		added, err := merge(urls)
		if err != nil {
			return nil, err
		}
		log.Printf("found %d new events in %d", added, year)
		if err := c.pages.Pause(ctx); err != nil {
			return nil, err
		}
	}

	return all, nil
}

func (c *Crawler) eventURLsFromPage(ctx context.Context, url string) []string {
	doc, err := c.client.FetchHTML(ctx, url)
	if err != nil {
		log.Printf("error fetching '%s': %v", url, err)
		return nil
	}
	urls := lastfm.EventURLs(doc, c.base)
	if c.verbose {
		log.Printf("found %d unique event urls on '%s'", len(urls), url)
	}
	return urls
}

// A Harvest is the result of walking a list of events for artists.
type Harvest struct {
	// The union of every event's performers.
	Artists map[string]struct{}

	// EventsProcessed counts lineup pages visited this run; with a
	// resume store, events harvested by an earlier run don't count.
	EventsProcessed int

	// EventsWithoutArtists counts visited events where no heuristic
	// found anything.
	EventsWithoutArtists int
}

// Artists visits every event URL in order, extracts performer names,
// and unions them into one set. Each event is harvested exactly once.
// An event whose fetch fails, or whose page matches no heuristic,
// contributes nothing and is counted; it does not stop the harvest.
func (c *Crawler) Artists(ctx context.Context, eventURLs []string) (*Harvest, error) {
	harvest := &Harvest{Artists: map[string]struct{}{}}

	var done map[string]struct{}
	if c.store != nil {
		fetched, err := c.store.FetchedEventURLs()
		if err != nil {
			return harvest, err
		}
		done = make(map[string]struct{}, len(fetched))
		for _, u := range fetched {
			done[u] = struct{}{}
		}
	}

	for i, eventURL := range eventURLs {
		if err := ctx.Err(); err != nil {
			return harvest, err
		}
		if _, ok := done[eventURL]; ok {
			if c.verbose {
				log.Printf("skipping already-harvested event %s", eventURL)
			}
			continue
		}

		if c.verbose {
			log.Printf("processing event %d/%d: %s", i+1, len(eventURLs), eventURL)
		} else {
			fmt.Printf("processing event %d/%d...\r", i+1, len(eventURLs))
		}

		artists := c.artistsFromEvent(ctx, eventURL)
		harvest.EventsProcessed++
		if len(artists) == 0 {
			harvest.EventsWithoutArtists++
		}
		for name := range artists {
			harvest.Artists[name] = struct{}{}
			if c.store != nil {
				if err := c.store.InsertArtist(name, eventURL); err != nil {
					return harvest, err
				}
			}
		}
		if c.store != nil {
			if err := c.store.MarkEventFetched(eventURL); err != nil {
				return harvest, err
			}
		}

		if err := c.events.Pause(ctx); err != nil {
			return harvest, err
		}
	}

	if !c.verbose && harvest.EventsProcessed > 0 {
		fmt.Println()
	}

	return harvest, nil
}

func (c *Crawler) artistsFromEvent(ctx context.Context, eventURL string) map[string]struct{} {
	doc, err := c.client.FetchHTML(ctx, eventURL)
	if err != nil {
		log.Printf("error fetching event '%s': %v", eventURL, err)
		return nil
	}
	artists := lastfm.ArtistsUsing(doc, c.heuristics...)
	if c.verbose && len(artists) == 0 {
		log.Printf("warning: no artists found for %s", eventURL)
	}
	return artists
}
