package db

import (
	_ "embed"
	"fmt"

	"github.com/pkarls/gigography/data"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DB represents the sqlite3 resume file: which events we know about,
// which ones we've harvested, and every artist seen so far.
type DB struct{ *gorm.DB }

//go:embed schema.sql
var schema string

// Open returns a connection to a migrated sqlite3 database file on
// disk, creating the file and running migrations if necessary.
func Open(filename string) (*DB, error) {
	gdb, err := gorm.Open(sqlite.Open(filename), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error opening db file at '%s': %w", filename, err)
	}

	db := &DB{gdb}

	if err := db.Exec(schema).Error; err != nil {
		return nil, fmt.Errorf("error migrating db at '%s': %w", filename, err)
	}

	return db, nil
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	pool, err := db.DB.DB()
	if err != nil {
		return err
	}
	return pool.Close()
}

// InsertEvent records a discovered event URL, ignoring URLs we already
// know about.
func (db *DB) InsertEvent(url string) error {
	if url == "" {
		return fmt.Errorf("no event url")
	}
	if err := db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&data.Event{URL: url}).
		Error; err != nil {
		return fmt.Errorf("error inserting event '%s': %w", url, err)
	}
	return nil
}

// MarkEventFetched flags an event whose lineup has been harvested.
func (db *DB) MarkEventFetched(url string) error {
	if url == "" {
		return fmt.Errorf("no event url")
	}
	if err := db.
		Table("events").
		Where("url = ?", url).
		Update("has_fetched_artists", true).
		Error; err != nil {
		return fmt.Errorf("error marking event '%s' as fetched: %w", url, err)
	}
	return nil
}

// InsertArtist records a harvested artist name, ignoring names we
// already know about.
func (db *DB) InsertArtist(name, eventURL string) error {
	if name == "" {
		return fmt.Errorf("no artist name")
	}
	if err := db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&data.Artist{Name: name, EventURL: eventURL}).
		Error; err != nil {
		return fmt.Errorf("error inserting artist '%s': %w", name, err)
	}
	return nil
}

// FetchedEventURLs returns the URLs of every event already harvested.
func (db *DB) FetchedEventURLs() ([]string, error) {
	urls := []string{}
	if err := db.
		Table("events").
		Where("has_fetched_artists = true").
		Pluck("url", &urls).
		Error; err != nil {
		return nil, fmt.Errorf("error listing fetched events: %w", err)
	}
	return urls, nil
}

// ArtistNames returns every artist name in the store.
func (db *DB) ArtistNames() ([]string, error) {
	names := []string{}
	if err := db.
		Table("artists").
		Pluck("name", &names).
		Error; err != nil {
		return nil, fmt.Errorf("error listing artists: %w", err)
	}
	return names, nil
}
