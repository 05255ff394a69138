package request

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkarls/gigography/readthrough"
)

// A Client fetches pages from last.fm. Every request carries a
// browser-like user agent, and any failed request is retried a fixed
// number of times with a fixed pause in between. Failure classes are
// not distinguished: a timeout, a 404, and a 503 all get the same
// retries and the same pause.
type Client struct {
	// UserAgent is sent on every request.
	UserAgent string

	// Attempts is the total number of tries per URL, including the
	// first one.
	Attempts int

	// RetryPause is how long to sleep between attempts.
	RetryPause time.Duration

	// Cache, if set, is consulted before the network and fed after
	// every successful fetch.
	Cache *readthrough.Cache

	HTTPClient *http.Client
}

// New returns a Client with the fetch policy used against last.fm:
// three total attempts per URL, a five second pause between them, and
// a generic browser user agent.
func New() *Client {
	return &Client{
		UserAgent:  "Mozilla/5.0",
		Attempts:   3,
		RetryPause: 5 * time.Second,
		HTTPClient: http.DefaultClient,
	}
}

// FetchHTML does an HTTP GET on the given URL, then parses the response
// as HTML. On a non-200 status or a transport error it retries up to
// c.Attempts total attempts, sleeping c.RetryPause between attempts;
// the sleep is cut short if ctx is canceled. After the last failed
// attempt it gives up and returns the last error.
func (c *Client) FetchHTML(ctx context.Context, url string) (*goquery.Document, error) {
	if c.Cache != nil {
		if cached, err := c.Cache.Get(url); err == nil {
			defer cached.Close()
			return goquery.NewDocumentFromReader(cached)
		}
	}

	var lastErr error
	for attempt := 1; attempt <= c.Attempts; attempt++ {
		if attempt > 1 {
			log.Printf("retrying '%s' in %s (attempt %d/%d)", url, c.RetryPause, attempt, c.Attempts)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.RetryPause):
			}
		}

		doc, err := c.fetch(ctx, url)
		if err != nil {
			lastErr = err
			continue
		}
		return doc, nil
	}

	log.Printf("failed after %d attempts: %s", c.Attempts, lastErr)
	return nil, fmt.Errorf("giving up on '%s' after %d attempts: %w", url, c.Attempts, lastErr)
}

func (c *Client) fetch(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching '%s': %w", url, err)
	}
	defer resp.Body.Close()

	if err := Error(resp); err != nil {
		return nil, fmt.Errorf("unexpected status from '%s': %w", url, err)
	}

	var body io.Reader = resp.Body
	if c.Cache != nil {
		cached, err := c.Cache.Set(url, resp.Body)
		if err != nil {
			return nil, fmt.Errorf("error caching '%s': %w", url, err)
		}
		defer cached.Close()
		body = cached
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("error parsing html from '%s': %w", url, err)
	}

	return doc, nil
}

// Error checks the given http response for a non-200 status code, and,
// if one is present, dumps the response into a friendly error.
func Error(resp *http.Response) error {
	if resp.StatusCode != http.StatusOK {
		bs, err := httputil.DumpResponse(resp, true)
		if err != nil {
			return fmt.Errorf("http status code %d; error decoding body: %w", resp.StatusCode, err)
		} else {
			return fmt.Errorf("http status code %d:\n%s", resp.StatusCode, string(bs))
		}
	}
	return nil
}
