// gigography scrapes a last.fm user's concert history and lists every
// artist they've seen, alphabetized.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkarls/gigography/sigctx"
)

func main() {
	err := run()
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	} else if errors.Is(err, context.Canceled) {
		fmt.Println("canceled")
	}
}

var usage = strings.TrimSpace(`
usage: gigography $cmd
valid $cmd are 'scrape', 'events', 'artists'
for help: gigography $cmd -help
`)

func run() error {
	ctx := sigctx.New()

	if len(os.Args) < 2 {
		return errors.New(usage)
	}
	cmd, args := os.Args[1], os.Args[2:]

	switch cmd {
	case "scrape":
		return scrape(ctx, args)

	case "events":
		return events(ctx, args)

	case "artists":
		return artists(ctx, args)

	default:
		return fmt.Errorf("unknown cmd: '%s'\n%s", cmd, usage)
	}
}
