package site

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"newsgen/config"
	"newsgen/fetcher"
	"newsgen/filter"
)

// stubFetcher serves canned feeds keyed by URL
type stubFetcher struct {
	feeds map[string]fetcher.Feed
}

func (s stubFetcher) Fetch(ctx context.Context, url string) (fetcher.Feed, error) {
	feed, ok := s.feeds[url]
	if !ok {
		return fetcher.Feed{}, errors.New("connection refused")
	}
	return feed, nil
}

func testConfig(sections ...config.Section) config.Config {
	return config.Config{
		Pages: []config.Page{
			{File: "index.html", Title: "Top News", MaxItems: 30, Sections: sections},
			{File: "world.html", Title: "World News", MaxItems: 30},
		},
	}
}

func TestBuildPage_PlainSectionWithTrimSuffix(t *testing.T) {
	conf := testConfig(config.Section{
		Title:      "Reuters",
		HomeURL:    "https://www.reuters.com",
		FeedURL:    "https://example.com/reuters",
		Style:      config.Plain,
		TrimSuffix: " [Reuters]",
	})
	stub := stubFetcher{feeds: map[string]fetcher.Feed{
		"https://example.com/reuters": {
			Updated: "Mon, 02 Jan 2006 15:04:05 GMT",
			Items: []fetcher.FeedItem{
				{Title: "Storm hits coast - Reuters", Link: "http://x"},
			},
		},
	}}

	html, err := NewBuilder(conf, stub, nil).BuildPage(context.Background(), conf.Pages[0])
	if err != nil {
		t.Fatalf("BuildPage failed: %v", err)
	}

	if !strings.Contains(html, `<li><a href="http://x" target="_blank"><strong>Storm hits coast</strong></a></li>`) {
		t.Errorf("Expected trimmed plain item, got:\n%s", html)
	}
	if !strings.Contains(html, `<h2 id="reuters"><a href="https://www.reuters.com">Reuters</a></h2>`) {
		t.Errorf("Expected section heading with anchor id, got:\n%s", html)
	}
	if !strings.Contains(html, `<p class="last-updated">Mon, 02 Jan 2006 15:04:05 GMT</p>`) {
		t.Errorf("Expected last-updated line, got:\n%s", html)
	}
}

func TestBuildPage_GoogleSectionWithCitations(t *testing.T) {
	description := `<ol><li><a href="https://primary" target="_blank">Primary</a>&nbsp;&nbsp;<font color="#6f6f6f">Primary Wire</font></li>` +
		`<li><a href="https://alt" target="_blank">Alt headline</a>&nbsp;&nbsp;<font color="#6f6f6f">Alt Pub</font></li></ol>`

	conf := testConfig(config.Section{
		Title:   "Google News",
		HomeURL: "https://news.google.com",
		FeedURL: "https://example.com/gn",
		Style:   config.Google,
	})
	stub := stubFetcher{feeds: map[string]fetcher.Feed{
		"https://example.com/gn": {
			Items: []fetcher.FeedItem{
				{Title: "Big story - CNN", Description: description, Link: "http://story"},
				{Title: "Solo story - AP", Description: "", Link: "http://solo"},
			},
		},
	}}

	html, err := NewBuilder(conf, stub, nil).BuildPage(context.Background(), conf.Pages[0])
	if err != nil {
		t.Fatalf("BuildPage failed: %v", err)
	}

	want := `<li><a href="http://story" title="Big story [CNN]" target="_blank"><strong>Big story [CNN]</strong></a> ` +
		`<a href="https://alt" title="Alt headline" target="_blank">[Alt Pub]</a></li>`
	if !strings.Contains(html, want) {
		t.Errorf("Expected item with citation anchor, got:\n%s", html)
	}
	if !strings.Contains(html, `<li><a href="http://solo" title="Solo story [AP]" target="_blank"><strong>Solo story [AP]</strong></a></li>`) {
		t.Errorf("Expected citation-free item without trailing anchors, got:\n%s", html)
	}
}

func TestBuildPage_DetailedSectionSanitizesFields(t *testing.T) {
	conf := testConfig(config.Section{
		Title:   "Fox Weather",
		HomeURL: "https://www.foxweather.com/",
		FeedURL: "https://example.com/weather",
		Style:   config.Detailed,
	})
	stub := stubFetcher{feeds: map[string]fetcher.Feed{
		"https://example.com/weather": {
			Items: []fetcher.FeedItem{
				{Title: `Floods "worsen" in valley`, Description: "Rain & wind continue", Link: "http://f"},
			},
		},
	}}

	html, err := NewBuilder(conf, stub, nil).BuildPage(context.Background(), conf.Pages[0])
	if err != nil {
		t.Fatalf("BuildPage failed: %v", err)
	}

	want := `<li><a href="http://f" title="Rain &amp; wind continue" target="_blank"><strong>Floods 'worsen' in valley</strong><br>Rain &amp; wind continue</a></li>`
	if !strings.Contains(html, want) {
		t.Errorf("Expected sanitized detailed item, got:\n%s", html)
	}
}

func TestBuildPage_MaxItems(t *testing.T) {
	conf := testConfig(config.Section{
		Title:   "Reuters",
		FeedURL: "https://example.com/reuters",
		Style:   config.Plain,
	})
	conf.Pages[0].MaxItems = 2

	items := []fetcher.FeedItem{
		{Title: "one", Link: "http://1"},
		{Title: "two", Link: "http://2"},
		{Title: "three", Link: "http://3"},
	}
	stub := stubFetcher{feeds: map[string]fetcher.Feed{
		"https://example.com/reuters": {Items: items},
	}}

	html, err := NewBuilder(conf, stub, nil).BuildPage(context.Background(), conf.Pages[0])
	if err != nil {
		t.Fatalf("BuildPage failed: %v", err)
	}

	if !strings.Contains(html, "http://2") {
		t.Error("Expected second item to be rendered")
	}
	if strings.Contains(html, "http://3") {
		t.Error("Expected third item to be cut by the page limit")
	}
}

func TestBuildPage_FetchFailureRendersEmptySection(t *testing.T) {
	conf := testConfig(config.Section{
		Title:   "Unreachable",
		FeedURL: "https://example.com/down",
		Style:   config.Detailed,
	})
	stub := stubFetcher{feeds: map[string]fetcher.Feed{}}

	html, err := NewBuilder(conf, stub, nil).BuildPage(context.Background(), conf.Pages[0])
	if err != nil {
		t.Fatalf("BuildPage must not fail on fetch errors: %v", err)
	}

	if !strings.Contains(html, `<h2 id="unreachable">`) {
		t.Errorf("Expected empty section heading, got:\n%s", html)
	}
	if !strings.Contains(html, `<p class="last-updated">N/a</p>`) {
		t.Errorf("Expected N/a stamp for failed fetch, got:\n%s", html)
	}
}

func TestBuildPage_NavBar(t *testing.T) {
	conf := testConfig()
	stub := stubFetcher{feeds: map[string]fetcher.Feed{}}

	html, err := NewBuilder(conf, stub, nil).BuildPage(context.Background(), conf.Pages[0])
	if err != nil {
		t.Fatalf("BuildPage failed: %v", err)
	}

	if !strings.Contains(html, `<li class="active"><a href="index.html">Top News</a></li>`) {
		t.Errorf("Expected active nav entry for current page, got:\n%s", html)
	}
	if !strings.Contains(html, `<li><a href="world.html">World News</a></li>`) {
		t.Errorf("Expected plain nav entry for other page, got:\n%s", html)
	}
	if !strings.Contains(html, "<!DOCTYPE html>") || !strings.Contains(html, "<title>Top News</title>") {
		t.Errorf("Expected full page chrome, got:\n%s", html)
	}
}

func TestBuildPage_FiltersApplied(t *testing.T) {
	pipeline, err := filter.NewPipeline(map[string]config.Filter{
		"no-sports": {ExcludePatterns: []string{`(?i)sports?`}},
	})
	if err != nil {
		t.Fatalf("Failed to create pipeline: %v", err)
	}

	conf := testConfig(config.Section{
		Title:       "Google News",
		FeedURL:     "https://example.com/gn",
		Style:       config.Plain,
		FilterNames: []string{"no-sports"},
	})
	stub := stubFetcher{feeds: map[string]fetcher.Feed{
		"https://example.com/gn": {
			Items: []fetcher.FeedItem{
				{Title: "Election coverage", Link: "http://keep"},
				{Title: "Sports roundup", Link: "http://drop"},
			},
		},
	}}

	html, err := NewBuilder(conf, stub, pipeline).BuildPage(context.Background(), conf.Pages[0])
	if err != nil {
		t.Fatalf("BuildPage failed: %v", err)
	}

	if !strings.Contains(html, "http://keep") {
		t.Error("Expected unfiltered item to be rendered")
	}
	if strings.Contains(html, "http://drop") {
		t.Error("Expected filtered item to be dropped")
	}
}

func TestAnchorID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Google News - U.S.", "google-news---us"},
		{"Reuters", "reuters"},
		{"SANS Internet Storm Center", "sans-internet-storm-center"},
	}
	for _, tt := range tests {
		if got := anchorID(tt.in); got != tt.want {
			t.Errorf("anchorID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWritePageAndCopyAssets(t *testing.T) {
	tmp := t.TempDir()
	outDir := filepath.Join(tmp, "output")

	if err := WritePage(outDir, "index.html", "<html></html>"); err != nil {
		t.Fatalf("WritePage failed: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	if err != nil {
		t.Fatalf("Failed to read generated page: %v", err)
	}
	if string(got) != "<html></html>" {
		t.Errorf("Unexpected page content %q", got)
	}

	assetsDir := filepath.Join(tmp, "assets")
	if err := os.MkdirAll(assetsDir, os.ModePerm); err != nil {
		t.Fatal(err)
	}
	css := "body { color: black; }\n"
	if err := os.WriteFile(filepath.Join(assetsDir, "style.css"), []byte(css), 0644); err != nil {
		t.Fatal(err)
	}

	if err := CopyAssets(assetsDir, outDir); err != nil {
		t.Fatalf("CopyAssets failed: %v", err)
	}
	copied, err := os.ReadFile(filepath.Join(outDir, "style.css"))
	if err != nil {
		t.Fatalf("Failed to read copied asset: %v", err)
	}
	if string(copied) != css {
		t.Errorf("Expected asset copied verbatim, got %q", copied)
	}
}
