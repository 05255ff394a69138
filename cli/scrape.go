package main

import (
	"context"
	"fmt"

	"github.com/pkarls/gigography/crawler"
	"github.com/pkarls/gigography/db"
	"github.com/pkarls/gigography/lastfm"
	"github.com/pkarls/gigography/readthrough"
	"github.com/pkarls/gigography/request"
	"github.com/pkarls/gigography/setflag"
	"github.com/pkarls/gigography/subcmd"
)

func scrape(ctx context.Context, args []string) error {
	subcmd := subcmd.New("scrape", "crawl a user's event history and list every artist they've seen")
	subcmd.SetArg("username", "string", "last.fm username (required)")
	var (
		from           = subcmd.Int("from", 2005, "first year to crawl")
		to             = subcmd.Int("to", 2026, "last year to crawl")
		ignoreThe      = subcmd.Bool("ignore-the", false, `sort names ignoring a leading "The" (e.g. "The Beatles" under "B")`)
		letterHeadings = subcmd.Bool("letter-headings", false, "group output under A-Z headings")
		verbose        = subcmd.Bool("v", false, "verbose diagnostics")
		output         = subcmd.String("o", "", "write results to a file instead of stdout")
		resume         = subcmd.String("resume", "", "sqlite file for crawl state; reruns skip already-harvested events")
		cacheDir       = subcmd.String("cache-dir", "", "cache fetched pages under this directory")
		heuristics     = setflag.New(lastfm.Heuristics()...)
	)
	subcmd.Var(heuristics, "heuristics", "comma-separated artist-extraction heuristics to apply (default: all)")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}
	if subcmd.NArg() != 1 {
		subcmd.Usage()
		return fmt.Errorf("expected exactly one username")
	}
	username := subcmd.Arg(0)

	client := request.New()
	if *cacheDir != "" {
		cache, err := readthrough.New(*cacheDir, "page-")
		if err != nil {
			return err
		}
		client.Cache = cache
	}

	var store *db.DB
	if *resume != "" {
		var err error
		if store, err = db.Open(*resume); err != nil {
			return err
		}
		defer store.Close()
	}

	c := crawler.New(client, crawler.Options{
		Verbose:    *verbose,
		Store:      store,
		Heuristics: heuristics.List(),
	})

	fmt.Printf("scraping events for user: %s\n", username)
	fmt.Printf("searching from %d to %d\n", *from, *to)

	eventURLs, err := c.EventURLs(ctx, username, *from, *to)
	if err != nil {
		return err
	}
	humanPrinter.Printf("total events found: %d\n", len(eventURLs))

	if *verbose {
		for i, url := range eventURLs {
			if i == 10 {
				fmt.Printf("  ... and %d more\n", len(eventURLs)-10)
				break
			}
			fmt.Printf("  %s\n", url)
		}
	}

	if len(eventURLs) == 0 {
		fmt.Printf("No events found for user: %s\n", username)
		return nil
	}

	fmt.Println("extracting artists from events...")
	harvest, err := c.Artists(ctx, eventURLs)
	if err != nil {
		return err
	}

	names := harvest.Artists
	if store != nil {
		stored, err := store.ArtistNames()
		if err != nil {
			return err
		}
		for _, name := range stored {
			names[name] = struct{}{}
		}
	}

	if *verbose {
		humanPrinter.Printf("events processed: %d\n", harvest.EventsProcessed)
		humanPrinter.Printf("events with no artists found: %d\n", harvest.EventsWithoutArtists)
		humanPrinter.Printf("total unique artists: %d\n", len(names))
	}

	return writeListing(names, *ignoreThe, *letterHeadings, *output)
}
