package config

import (
	"fmt"
	"log/slog"
	"os"
	"path"

	"github.com/BurntSushi/toml"
)

// SectionStyle selects how a section's items are rendered
type SectionStyle = string

var (
	// Google renders the headline link plus secondary-source citations
	Google = SectionStyle("google")
	// Detailed renders the headline link with the description underneath
	Detailed = SectionStyle("detailed")
	// Plain renders the headline link only
	Plain = SectionStyle("plain")
)

const baseCfgPath = "newsgen/config.toml"

type Config struct {
	OutputDirectory     string            `toml:"output_directory"`
	AssetsDirectory     string            `toml:"assets_directory"`
	FetchTimeoutSeconds int               `toml:"fetch_timeout_seconds"`
	InsecureTLS         bool              `toml:"insecure_tls"` // skip TLS verification on feed fetches, explicit opt-in
	Pages               []Page            `toml:"pages"`
	Filters             map[string]Filter `toml:"filters"` // named filters that can be referenced by sections
}

// Page is one generated HTML file with its news sections
type Page struct {
	File     string    `toml:"file"`
	Title    string    `toml:"title"`
	MaxItems int       `toml:"max_items"` // per-section item cap for this page
	Sections []Section `toml:"sections"`
}

// Section is one feed rendered under a heading on a page
type Section struct {
	Title       string       `toml:"title"`
	HomeURL     string       `toml:"home_url"` // link target of the section heading
	FeedURL     string       `toml:"feed_url"`
	Style       SectionStyle `toml:"style"`
	TrimSuffix  string       `toml:"trim_suffix"` // trailing display-title suffix to strip, e.g. " [Reuters]"
	FilterNames []string     `toml:"filters"`     // names of filters to apply (pipeline)
}

// Filter defines rules for excluding feed items
type Filter struct {
	ExcludePatterns []string `toml:"exclude_patterns"` // regex patterns to exclude
}

func Read(path string) (Config, error) {
	conf := Default()
	dat, err := os.ReadFile(path)
	if err != nil {
		return conf, err
	}
	_, err = toml.Decode(string(dat), &conf)
	if err != nil {
		return conf, fmt.Errorf("failed to decode config at %s with %w", path, err)
	}
	return conf, nil
}

func Write(cfgPath string, cfg Config) error {
	blob, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config with %w", err)
	}
	basePath := path.Dir(cfgPath)
	err = os.MkdirAll(basePath, os.ModePerm)
	if err != nil {
		return fmt.Errorf("failed to create base config directory at '%s' with %w", basePath, err)
	}
	err = os.WriteFile(cfgPath, blob, 0644)
	if err != nil {
		return fmt.Errorf("failed to write into config file at '%s' with %w", cfgPath, err)
	}
	slog.Info("config written", "at", cfgPath)
	return nil
}

// Default returns the stock six-page news site
func Default() Config {
	const (
		maxItems      = 18
		maxItemsSmall = 10
		maxItemsBig   = 30
	)
	return Config{
		OutputDirectory:     "output",
		AssetsDirectory:     "assets",
		FetchTimeoutSeconds: 10,
		Pages: []Page{
			{
				File:     "index.html",
				Title:    "Top News",
				MaxItems: maxItemsBig,
				Sections: []Section{
					{
						Title:   "Google News",
						HomeURL: "https://news.google.com/home?hl=en-US&gl=US&ceid=US:en",
						FeedURL: "https://news.google.com/rss?hl=en-US&gl=US&ceid=US:en",
						Style:   Google,
					},
					{
						Title:      "Reuters",
						HomeURL:    "https://www.reuters.com",
						FeedURL:    "https://news.google.com/rss/search?q=site%3Areuters.com&hl=en-US&gl=US&ceid=US%3Aen",
						Style:      Plain,
						TrimSuffix: " [Reuters]",
					},
				},
			},
			{
				File:     "us.html",
				Title:    "U.S. News",
				MaxItems: maxItems,
				Sections: []Section{
					{
						Title:   "Google News - U.S.",
						HomeURL: "https://news.google.com/topics/CAAqIggKIhxDQkFTRHdvSkwyMHZNRGxqTjNjd0VnSmxiaWdBUAE",
						FeedURL: "https://news.google.com/rss/topics/CAAqIggKIhxDQkFTRHdvSkwyMHZNRGxqTjNjd0VnSmxiaWdBUAE",
						Style:   Google,
					},
					{
						Title:   "Fox Weather",
						HomeURL: "https://www.foxweather.com/",
						FeedURL: "https://moxie.foxweather.com/google-publisher/latest.xml",
						Style:   Detailed,
					},
					{
						Title:   "CNBC U.S.",
						HomeURL: "https://www.cnbc.com/us-news/",
						FeedURL: "https://www.cnbc.com/id/15837362/device/rss/rss.html",
						Style:   Detailed,
					},
					{
						Title:   "CNN U.S.",
						HomeURL: "https://www.cnn.com/us",
						FeedURL: "http://rss.cnn.com/rss/cnn_us.rss",
						Style:   Detailed,
					},
				},
			},
			{
				File:     "world.html",
				Title:    "World News",
				MaxItems: maxItemsBig,
				Sections: []Section{
					{
						Title:   "Google News - World",
						HomeURL: "https://news.google.com/topics/CAAqJggKIiBDQkFTRWdvSUwyMHZNRGx1YlY4U0FtVnVHZ0pWVXlnQVAB",
						FeedURL: "https://news.google.com/rss/topics/CAAqJggKIiBDQkFTRWdvSUwyMHZNRGx1YlY4U0FtVnVHZ0pWVXlnQVAB",
						Style:   Google,
					},
					{
						Title:   "BBC News - World",
						HomeURL: "https://www.bbc.com/news/world",
						FeedURL: "https://feeds.bbci.co.uk/news/world/rss.xml",
						Style:   Detailed,
					},
				},
			},
			{
				File:     "business.html",
				Title:    "Business",
				MaxItems: maxItemsSmall,
				Sections: []Section{
					{
						Title:   "Google News - Business",
						HomeURL: "https://news.google.com/topics/CAAqJggKIiBDQkFTRWdvSUwyMHZNRGx6TVdZU0FtVnVHZ0pWVXlnQVAB",
						FeedURL: "https://news.google.com/rss/topics/CAAqJggKIiBDQkFTRWdvSUwyMHZNRGx6TVdZU0FtVnVHZ0pWVXlnQVAB",
						Style:   Google,
					},
					{
						Title:   "Bloomberg",
						HomeURL: "https://www.bloomberg.com/",
						FeedURL: "https://feeds.bloomberg.com/news.rss",
						Style:   Detailed,
					},
					{
						Title:   "CNBC",
						HomeURL: "https://www.cnbc.com/",
						FeedURL: "https://www.cnbc.com/id/100003114/device/rss/rss.html",
						Style:   Detailed,
					},
					{
						Title:   "Fox Business",
						HomeURL: "https://www.foxbusiness.com/",
						FeedURL: "https://moxie.foxbusiness.com/google-publisher/latest.xml",
						Style:   Detailed,
					},
				},
			},
			{
				File:     "security.html",
				Title:    "Security",
				MaxItems: maxItemsSmall,
				Sections: []Section{
					{
						Title:   "Talkback.sh News",
						HomeURL: "https://talkback.sh/",
						FeedURL: "https://talkback.sh/resources/feed/news/",
						Style:   Detailed,
					},
					{
						Title:   "Talkback.sh Technical",
						HomeURL: "https://talkback.sh/",
						FeedURL: "https://talkback.sh/resources/feed/tech/",
						Style:   Detailed,
					},
					{
						Title:   "Hacker News",
						HomeURL: "https://thehackernews.com/",
						FeedURL: "https://feeds.feedburner.com/TheHackersNews",
						Style:   Detailed,
					},
					{
						Title:   "SANS Internet Storm Center",
						HomeURL: "https://isc.sans.edu/",
						FeedURL: "https://isc.sans.edu/rssfeed.xml",
						Style:   Detailed,
					},
					{
						Title:   "Krebs on Security",
						HomeURL: "https://krebsonsecurity.com/",
						FeedURL: "https://krebsonsecurity.com/feed/",
						Style:   Detailed,
					},
				},
			},
			{
				File:     "technology.html",
				Title:    "Technology",
				MaxItems: maxItems,
				Sections: []Section{
					{
						Title:   "Google News - Technology",
						HomeURL: "https://news.google.com/topics/CAAqJggKIiBDQkFTRWdvSUwyMHZNRGRqTVhZU0FtVnVHZ0pWVXlnQVAB",
						FeedURL: "https://news.google.com/rss/topics/CAAqJggKIiBDQkFTRWdvSUwyMHZNRGRqTVhZU0FtVnVHZ0pWVXlnQVAB",
						Style:   Google,
					},
					{
						Title:   "MIT Technology Review",
						HomeURL: "https://www.technologyreview.com/",
						FeedURL: "https://www.technologyreview.com/feed",
						Style:   Detailed,
					},
					{
						Title:   "Reddit Technology",
						HomeURL: "https://www.reddit.com/r/technology/",
						FeedURL: "https://www.reddit.com/r/technology/top/.rss?t=month",
						Style:   Plain,
					},
				},
			},
		},
	}
}

func DefaultPath() string {
	var xdgHome = os.Getenv("XDG_CONFIG_HOME")
	if xdgHome != "" {
		return path.Join(xdgHome, baseCfgPath)
	}

	var home = os.Getenv("HOME")
	if home != "" {
		return path.Join(home, ".config", baseCfgPath)
	}

	panic("unclear where to search for the config file")
}
