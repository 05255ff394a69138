package main

import (
	"context"
	"fmt"

	"github.com/pkarls/gigography/crawler"
	"github.com/pkarls/gigography/lastfm"
	"github.com/pkarls/gigography/readthrough"
	"github.com/pkarls/gigography/request"
	"github.com/pkarls/gigography/setflag"
	"github.com/pkarls/gigography/subcmd"
)

func artists(ctx context.Context, args []string) error {
	subcmd := subcmd.New("artists", "extract performer names from the given lineup pages")
	subcmd.SetArg("url", "string...", "lineup page urls (at least one)")
	var (
		ignoreThe      = subcmd.Bool("ignore-the", false, `sort names ignoring a leading "The"`)
		letterHeadings = subcmd.Bool("letter-headings", false, "group output under A-Z headings")
		verbose        = subcmd.Bool("v", false, "verbose diagnostics")
		output         = subcmd.String("o", "", "write results to a file instead of stdout")
		cacheDir       = subcmd.String("cache-dir", "", "cache fetched pages under this directory")
		heuristics     = setflag.New(lastfm.Heuristics()...)
	)
	subcmd.Var(heuristics, "heuristics", "comma-separated artist-extraction heuristics to apply (default: all)")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}
	if subcmd.NArg() == 0 {
		subcmd.Usage()
		return fmt.Errorf("expected at least one lineup url")
	}

	client := request.New()
	if *cacheDir != "" {
		cache, err := readthrough.New(*cacheDir, "page-")
		if err != nil {
			return err
		}
		client.Cache = cache
	}

	c := crawler.New(client, crawler.Options{
		Verbose:    *verbose,
		Heuristics: heuristics.List(),
	})

	harvest, err := c.Artists(ctx, subcmd.Args())
	if err != nil {
		return err
	}

	if *verbose {
		humanPrinter.Printf("events processed: %d\n", harvest.EventsProcessed)
		humanPrinter.Printf("events with no artists found: %d\n", harvest.EventsWithoutArtists)
	}

	return writeListing(harvest.Artists, *ignoreThe, *letterHeadings, *output)
}
