package fetcher

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// DefaultTimeout bounds a single feed fetch when the config does not set one.
const DefaultTimeout = 10 * time.Second

// Options configure the RSS fetcher. InsecureTLS disables certificate
// verification for the fetcher's own HTTP client only; it is an explicit
// opt-in, never process-wide state.
type Options struct {
	Timeout     time.Duration
	InsecureTLS bool
}

// RSSFetcher fetches RSS feeds using gofeed
type RSSFetcher struct {
	parser  *gofeed.Parser
	timeout time.Duration
}

// NewRSSFetcher creates a new RSS fetcher
func NewRSSFetcher(opts Options) *RSSFetcher {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := &http.Client{}
	if opts.InsecureTLS {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	parser := gofeed.NewParser()
	parser.Client = client

	return &RSSFetcher{
		parser:  parser,
		timeout: timeout,
	}
}

// Fetch retrieves and parses an RSS feed from the given URL
func (f *RSSFetcher) Fetch(ctx context.Context, url string) (Feed, error) {
	var feed Feed

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	gofeedFeed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return feed, fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	// Convert gofeed.Feed to our custom Feed type
	feed.Title = gofeedFeed.Title
	feed.Updated = gofeedFeed.Updated
	feed.Items = make([]FeedItem, 0, len(gofeedFeed.Items))

	for _, item := range gofeedFeed.Items {
		feed.Items = append(feed.Items, FeedItem{
			Title:       item.Title,
			Description: item.Description,
			Link:        item.Link,
		})
	}

	return feed, nil
}
