package main

import (
	"context"
	"fmt"

	"github.com/pkarls/gigography/crawler"
	"github.com/pkarls/gigography/request"
	"github.com/pkarls/gigography/subcmd"
)

func events(ctx context.Context, args []string) error {
	subcmd := subcmd.New("events", "crawl a user's event history and print the canonical lineup urls")
	subcmd.SetArg("username", "string", "last.fm username (required)")
	var (
		from    = subcmd.Int("from", 2005, "first year to crawl")
		to      = subcmd.Int("to", 2026, "last year to crawl")
		verbose = subcmd.Bool("v", false, "verbose diagnostics")
	)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}
	if subcmd.NArg() != 1 {
		subcmd.Usage()
		return fmt.Errorf("expected exactly one username")
	}
	username := subcmd.Arg(0)

	c := crawler.New(request.New(), crawler.Options{Verbose: *verbose})

	eventURLs, err := c.EventURLs(ctx, username, *from, *to)
	if err != nil {
		return err
	}

	if len(eventURLs) == 0 {
		fmt.Printf("No events found for user: %s\n", username)
		return nil
	}

	for _, url := range eventURLs {
		fmt.Println(url)
	}
	return nil
}
