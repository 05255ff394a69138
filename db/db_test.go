package db_test

import (
	"path/filepath"
	"testing"

	"github.com/pkarls/gigography/db"
	"github.com/stretchr/testify/assert"
)

func open(t *testing.T) *db.DB {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "resume.db"))
	assert.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func TestInsertEventIsIdempotent(t *testing.T) {
	d := open(t)

	assert.NoError(t, d.InsertEvent("https://www.last.fm/event/1/lineup"))
	assert.NoError(t, d.InsertEvent("https://www.last.fm/event/1/lineup"))

	fetched, err := d.FetchedEventURLs()
	assert.NoError(t, err)
	assert.Empty(t, fetched)
}

func TestMarkEventFetched(t *testing.T) {
	d := open(t)

	assert.NoError(t, d.InsertEvent("https://www.last.fm/event/1/lineup"))
	assert.NoError(t, d.InsertEvent("https://www.last.fm/event/2/lineup"))
	assert.NoError(t, d.MarkEventFetched("https://www.last.fm/event/1/lineup"))

	fetched, err := d.FetchedEventURLs()
	assert.NoError(t, err)
	assert.Equal(t, []string{"https://www.last.fm/event/1/lineup"}, fetched)
}

func TestInsertArtistDeduplicates(t *testing.T) {
	d := open(t)

	assert.NoError(t, d.InsertEvent("https://www.last.fm/event/1/lineup"))
	assert.NoError(t, d.InsertArtist("Calexico", "https://www.last.fm/event/1/lineup"))
	assert.NoError(t, d.InsertArtist("Calexico", "https://www.last.fm/event/2/lineup"))
	assert.NoError(t, d.InsertArtist("Neko Case", "https://www.last.fm/event/1/lineup"))

	names, err := d.ArtistNames()
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"Calexico", "Neko Case"}, names)
}

func TestRejectsEmptyValues(t *testing.T) {
	d := open(t)
	assert.Error(t, d.InsertEvent(""))
	assert.Error(t, d.InsertArtist("", "x"))
	assert.Error(t, d.MarkEventFetched(""))
}
