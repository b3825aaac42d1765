// Package normalize converts raw feed entries into clean, renderable news
// items. It owns title cleanup and the "Headline - Publisher" source-tag
// split used by Google News style feeds.
package normalize

import (
	"log/slog"
	"strings"

	"newsgen/fetcher"
)

// NotAvailable is the last-updated stamp used when a feed could not be
// fetched at all. Callers hand normalization an empty feed carrying this
// stamp instead of propagating the fetch error.
const NotAvailable = "N/a"

// sourceSeparator joins headline and publisher in aggregated feed titles.
const sourceSeparator = " - "

// NewsItem is one normalized feed entry, ready for rendering
type NewsItem struct {
	Title       string // headline with bold markers stripped and source tag removed
	SourceTag   string // trailing publisher extracted from the title, empty if none
	Description string // raw HTML fragment as received
	Link        string
}

// DisplayTitle returns the title in its rendered form, with the source tag
// appended in brackets when one was extracted
func (n NewsItem) DisplayTitle() string {
	if n.SourceTag == "" {
		return n.Title
	}
	return n.Title + " [" + n.SourceTag + "]"
}

// Feed converts a fetched feed into normalized news items plus the feed's
// last-updated stamp. Entry order is preserved; nothing is de-duplicated or
// re-sorted. Missing fields default to empty text so rendering code never
// sees an absent value.
func Feed(f fetcher.Feed) ([]NewsItem, string) {
	if f.Malformed {
		slog.Warn("feed failed strict validation, normalizing entries that parsed", "feed", f.Title)
	}

	items := make([]NewsItem, 0, len(f.Items))
	for _, entry := range f.Items {
		title := entry.Title
		if title == "" {
			title = "No title"
		}
		// Feeds sometimes wrap matched search terms in bold tags
		title = strings.ReplaceAll(title, "<strong>", "")
		title = strings.ReplaceAll(title, "</strong>", "")

		// Google News formats titles like "Headline - Source"; split at
		// the right-most separator only
		var sourceTag string
		if i := strings.LastIndex(title, sourceSeparator); i >= 0 {
			sourceTag = title[i+len(sourceSeparator):]
			title = title[:i]
		}

		items = append(items, NewsItem{
			Title:       title,
			SourceTag:   sourceTag,
			Description: entry.Description,
			Link:        entry.Link,
		})
	}

	return items, f.Updated
}
