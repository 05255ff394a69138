package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkarls/gigography/alpha"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var humanPrinter = message.NewPrinter(language.English)

// writeListing sorts the artist set and writes it to path, or to
// stdout when path is empty. A failure to create or write the output
// file is the one fatal error in the pipeline.
func writeListing(artists map[string]struct{}, ignoreThe, letterHeadings bool, path string) error {
	sorted := alpha.Sort(artists, ignoreThe)

	if path == "" {
		if letterHeadings {
			return alpha.WriteGrouped(os.Stdout, sorted, ignoreThe)
		}
		return alpha.WriteList(os.Stdout, sorted)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error writing to file: %w", err)
	}
	w := bufio.NewWriter(f)
	if letterHeadings {
		err = alpha.WriteGrouped(w, sorted, ignoreThe)
	} else {
		err = alpha.WriteList(w, sorted)
	}
	if err == nil {
		err = w.Flush()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("error writing to file: %w", err)
	}

	fmt.Printf("results written to: %s\n", path)
	return nil
}
