// Package site assembles the generated news pages: it fetches each
// configured section's feed, normalizes the items and wraps the rendered
// sections in page chrome.
package site

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"newsgen/config"
	"newsgen/fetcher"
	"newsgen/filter"
	"newsgen/gnews"
	"newsgen/normalize"
	"newsgen/sanitize"
)

//go:embed templates/page.html
var pageTemplateText string

// Section bodies are prebuilt HTML with fields already escaped by the
// sanitizer, so the chrome template must not escape again.
var pageTemplate = template.Must(template.New("page").Parse(pageTemplateText))

type navEntry struct {
	File   string
	Name   string
	Active bool
}

type pageData struct {
	Title   string
	Nav     []navEntry
	Content string
}

// Builder assembles HTML pages from configured sections
type Builder struct {
	conf    config.Config
	fetcher fetcher.FeedFetcher
	filters *filter.Pipeline
}

// NewBuilder creates a page builder over the given fetcher and filters
func NewBuilder(conf config.Config, f fetcher.FeedFetcher, filters *filter.Pipeline) *Builder {
	return &Builder{conf: conf, fetcher: f, filters: filters}
}

// BuildPage fetches every section feed of the page and renders the complete
// HTML document. A feed that cannot be fetched renders as an empty section
// with the "N/a" stamp; it never fails the page.
func (b *Builder) BuildPage(ctx context.Context, page config.Page) (string, error) {
	var sections strings.Builder
	for _, section := range page.Sections {
		feed, err := b.fetcher.Fetch(ctx, section.FeedURL)
		if err != nil {
			slog.Error("feed fetch failed", "url", section.FeedURL, "error", err)
			feed = fetcher.Feed{Updated: normalize.NotAvailable}
		}

		items, lastUpdated := normalize.Feed(feed)
		slog.Info("loaded feed items", "section", section.Title, "amount", len(items))

		if b.filters != nil && len(section.FilterNames) > 0 {
			kept := items[:0]
			for _, item := range items {
				include, reason := b.filters.ShouldInclude(item, section.FilterNames)
				if !include {
					slog.Debug("item filtered out", "title", item.Title, "reason", reason, "url", item.Link)
					continue
				}
				kept = append(kept, item)
			}
			items = kept
		}

		sections.WriteString(renderSection(section, items, lastUpdated, page.MaxItems))
	}

	nav := make([]navEntry, 0, len(b.conf.Pages))
	for _, p := range b.conf.Pages {
		nav = append(nav, navEntry{File: p.File, Name: p.Title, Active: p.File == page.File})
	}

	var out strings.Builder
	err := pageTemplate.Execute(&out, pageData{
		Title:   page.Title,
		Nav:     nav,
		Content: sections.String(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render page %s with %w", page.File, err)
	}
	return out.String(), nil
}

// renderSection builds the heading, last-updated line and item list for one
// section, truncated to maxItems
func renderSection(section config.Section, items []normalize.NewsItem, lastUpdated string, maxItems int) string {
	var html strings.Builder
	fmt.Fprintf(&html, "        <h2 id=\"%s\"><a href=\"%s\">%s</a></h2>\n",
		anchorID(section.Title), section.HomeURL, section.Title)
	fmt.Fprintf(&html, "        <p class=\"last-updated\">%s</p>\n", sanitize.Clean(lastUpdated))
	html.WriteString("        <ul class=\"news-list\">\n")

	if maxItems > 0 && len(items) > maxItems {
		items = items[:maxItems]
	}
	for _, item := range items {
		title := sanitize.Clean(item.DisplayTitle())
		if section.TrimSuffix != "" {
			title = strings.TrimSuffix(title, section.TrimSuffix)
		}

		switch section.Style {
		case config.Google:
			anchors := citationAnchors(item.Description)
			if len(anchors) > 0 {
				fmt.Fprintf(&html, "            <li><a href=\"%s\" title=\"%s\" target=\"_blank\"><strong>%s</strong></a> %s</li>\n",
					item.Link, title, title, strings.Join(anchors, " "))
			} else {
				fmt.Fprintf(&html, "            <li><a href=\"%s\" title=\"%s\" target=\"_blank\"><strong>%s</strong></a></li>\n",
					item.Link, title, title)
			}
		case config.Detailed:
			description := sanitize.Clean(item.Description)
			fmt.Fprintf(&html, "            <li><a href=\"%s\" title=\"%s\" target=\"_blank\"><strong>%s</strong><br>%s</a></li>\n",
				item.Link, description, title, description)
		default: // config.Plain
			fmt.Fprintf(&html, "            <li><a href=\"%s\" target=\"_blank\"><strong>%s</strong></a></li>\n",
				item.Link, title)
		}
	}
	html.WriteString("        </ul>\n")
	return html.String()
}

// citationAnchors renders an item's secondary sources as bracketed links
func citationAnchors(description string) []string {
	citations := gnews.ExtractSecondarySources(description)
	anchors := make([]string, 0, len(citations))
	for _, c := range citations {
		anchors = append(anchors, fmt.Sprintf("<a href=\"%s\" title=\"%s\" target=\"_blank\">[%s]</a>",
			c.URL, sanitize.Clean(c.Title), sanitize.Clean(c.Publisher)))
	}
	return anchors
}

// anchorID derives a fragment id from a section title
func anchorID(title string) string {
	id := strings.ToLower(title)
	id = strings.ReplaceAll(id, " ", "-")
	id = strings.ReplaceAll(id, ".", "")
	return id
}
