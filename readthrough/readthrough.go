package readthrough

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// A Cache is a read-through cache of fetched pages, one file per URL,
// keyed by a hash of the URL. It lets a rerun against the same event
// list skip the network entirely.
type Cache struct {
	dir, prefix string
}

// New returns a Cache storing files named prefix+hash under dir,
// creating dir if necessary.
func New(dir, prefix string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating cache dir '%s': %w", dir, err)
	}
	return &Cache{dir: dir, prefix: prefix}, nil
}

var ErrMiss = errors.New("cache miss")

// Get returns a reader over the cached body for the given URL, or an
// error wrapping ErrMiss if the URL has not been cached.
func (c *Cache) Get(url string) (io.ReadCloser, error) {
	filename := c.filename(url)

	if _, err := os.Stat(filename); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error checking for cache file '%s': %w", filename, err)
	} else if err != nil {
		return nil, fmt.Errorf("no cache entry for '%s': %w", url, ErrMiss)
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening cache file '%s': %w", filename, err)
	}

	return f, nil
}

// Set drains r into the cache entry for the given URL and returns a
// replacement reader over the same bytes, so the caller can still
// consume the body it handed over.
func (c *Cache) Set(url string, r io.Reader) (io.ReadCloser, error) {
	filename := c.filename(url)

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, fmt.Errorf("error reading body for '%s': %w", url, err)
	}

	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("error writing cache file '%s': %w", filename, err)
	}

	return io.NopCloser(&buf), nil
}

func (c *Cache) filename(url string) string {
	sum := sha256.Sum256([]byte(url))
	return filepath.Join(c.dir, c.prefix+hex.EncodeToString(sum[:]))
}
