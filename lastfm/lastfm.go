// Package lastfm knows the shape of last.fm's user-event and
// event-lineup pages.
//
// last.fm publishes no API for event attendance, and the page markup
// is unversioned and changes without notice. The extractors here
// deliberately run several overlapping strategies and union their
// results instead of trusting any one selector; collapsing them to a
// single "best" query would make the package more fragile, not less.
package lastfm

import "fmt"

// BaseURL is the site origin all relative event links resolve against.
const BaseURL = "https://www.last.fm"

// UserEventsURL returns the listing page for a user's full event
// history.
func UserEventsURL(base, username string) string {
	return fmt.Sprintf("%s/user/%s/events", base, username)
}

// UserYearEventsURL returns the listing page for a user's events in a
// single calendar year.
func UserYearEventsURL(base, username string, year int) string {
	return fmt.Sprintf("%s/user/%s/events/%d", base, username, year)
}
