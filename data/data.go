// Package data holds the record types stored in the resume database.
package data

// An Event is one concert page discovered during a crawl.
type Event struct {
	// The canonical lineup URL, like
	// "https://www.last.fm/event/4335040+primavera-sound-2015/lineup".
	URL string

	// Set once the event's lineup page has been harvested, so a
	// resumed run can skip it.
	HasFetchedArtists bool
}

// An Artist is one performer name harvested from an event's lineup.
// EventURL records the first event the name was seen at; the name
// itself is the identity.
type Artist struct {
	Name     string
	EventURL string
}
