package fetcher

import "context"

// Feed represents a collection of items from a feed source
type Feed struct {
	Title     string
	Updated   string // feed-level "updated" stamp, source-defined format, never parsed
	Items     []FeedItem
	Malformed bool // feed failed strict validation but still yielded entries
}

// FeedItem represents a single item in a feed
type FeedItem struct {
	Title       string
	Description string
	Link        string
}

// FeedFetcher is an interface for fetching feeds from different sources
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) (Feed, error)
}
