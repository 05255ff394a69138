// Package alpha alphabetizes artist names for display, optionally
// treating a leading "The " as insignificant, and optionally grouping
// the listing under letter headings.
package alpha

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Key returns the collation key for a name: the lowercased name, or,
// when ignoreArticle is set and the name starts with "the " (any case,
// with more text after it), the lowercased remainder past the article.
// "The Beatles" files under B; the band "The The" files under T.
func Key(name string, ignoreArticle bool) string {
	if ignoreArticle && hasArticle(name) {
		return strings.ToLower(name[4:])
	}
	return strings.ToLower(name)
}

// hasArticle reports whether name starts with a leading "The " that
// has more text after it. The article is always a 4-byte ASCII prefix,
// so slicing name[4:] is safe whenever this returns true.
func hasArticle(name string) bool {
	return len(name) > 4 && strings.EqualFold(name[:4], "the ")
}

// Sort flattens the artist set into a list in stable alphabetical
// order of Key, breaking key ties by the name itself so that output is
// deterministic across runs.
func Sort(artists map[string]struct{}, ignoreArticle bool) []string {
	names := make([]string, 0, len(artists))
	for name := range artists {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ki, kj := Key(names[i], ignoreArticle), Key(names[j], ignoreArticle)
		if ki != kj {
			return ki < kj
		}
		return names[i] < names[j]
	})
	return names
}

// A Section is one heading's worth of the grouped listing.
type Section struct {
	Heading string
	Artists []string
}

// Group partitions sorted names into 27 sections: a numbers-and-symbols
// bucket, then one section per letter A through Z. A name's bucket is
// decided by its first rune (or the first rune past a stripped "The "),
// case-normalized; anything that isn't an ASCII letter, accented
// initials included, lands in the first bucket. Every name lands in
// exactly one section, and empty sections are kept so the caller can
// render a placeholder.
func Group(sorted []string, ignoreArticle bool) []Section {
	sections := make([]Section, 27)
	sections[0].Heading = "# (Numbers & Symbols)"
	for i := 0; i < 26; i++ {
		sections[i+1].Heading = string(rune('A' + i))
	}

	for _, name := range sorted {
		r := groupRune(name, ignoreArticle)
		i := 0
		if r >= 'A' && r <= 'Z' {
			i = int(r-'A') + 1
		}
		sections[i].Artists = append(sections[i].Artists, name)
	}

	return sections
}

func groupRune(name string, ignoreArticle bool) rune {
	s := name
	if ignoreArticle && hasArticle(name) {
		s = name[4:]
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.ToUpper(r)
}

// WriteList writes the plain listing: a count header, a separator
// line, then one name per line.
func WriteList(w io.Writer, sorted []string) error {
	if _, err := fmt.Fprintf(w, "Artists (%d unique):\n", len(sorted)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 50)); err != nil {
		return err
	}
	for _, name := range sorted {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

// WriteGrouped writes the listing under letter headings, with a
// "(none)" placeholder for sections that have no artists.
func WriteGrouped(w io.Writer, sorted []string, ignoreArticle bool) error {
	if _, err := fmt.Fprintf(w, "Artists (%d unique):\n", len(sorted)); err != nil {
		return err
	}
	for _, section := range Group(sorted, ignoreArticle) {
		if _, err := fmt.Fprintf(w, "\n=== %s ===\n", section.Heading); err != nil {
			return err
		}
		if len(section.Artists) == 0 {
			if _, err := fmt.Fprintln(w, "(none)"); err != nil {
				return err
			}
			continue
		}
		for _, name := range section.Artists {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return err
			}
		}
	}
	return nil
}
