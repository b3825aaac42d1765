package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsgen/config"
	"newsgen/fetcher"
	"newsgen/filter"
	"newsgen/site"
)

func main() {
	if os.Getenv("DEBUG") != "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var cfgPath string
	var outDir string
	flag.StringVar(&cfgPath, "config", config.DefaultPath(), "path to a TOML config")
	flag.StringVar(&outDir, "out", "", "output directory (overrides the config)")
	flag.Parse()

	// Read config and create if default is missing
	conf, err := config.Read(cfgPath)
	if errors.Is(err, os.ErrNotExist) && cfgPath == config.DefaultPath() {
		if err := config.Write(cfgPath, conf); err != nil {
			log.Fatalf("failed to write default config with %s", err)
		}
	} else if err != nil {
		log.Fatalf("failed to read config with %s", err)
	}
	if outDir != "" {
		conf.OutputDirectory = outDir
	}

	// Initialize filter pipeline
	filterPipeline, err := filter.NewPipeline(conf.Filters)
	if err != nil {
		log.Fatalf("failed to initialize filters: %s", err)
	}
	if len(conf.Filters) > 0 {
		slog.Info("initialized filters", "count", len(conf.Filters))
	}

	rss := fetcher.NewRSSFetcher(fetcher.Options{
		Timeout:     time.Duration(conf.FetchTimeoutSeconds) * time.Second,
		InsecureTLS: conf.InsecureTLS,
	})
	if conf.InsecureTLS {
		slog.Warn("TLS certificate verification disabled for feed fetches")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	builder := site.NewBuilder(conf, rss, filterPipeline)

	var errs []error
	generated := 0
	for _, page := range conf.Pages {
		// Check for cancellation before building the next page
		select {
		case <-ctx.Done():
			slog.Info("interrupted by user, exiting gracefully")
			return
		default:
		}

		html, err := builder.BuildPage(ctx, page)
		if err != nil {
			errs = append(errs, fmt.Errorf("'%s' build failed with %w", page.File, err))
			continue
		}
		if err := site.WritePage(conf.OutputDirectory, page.File, html); err != nil {
			errs = append(errs, err)
			continue
		}
		generated++
	}
	slog.Info("pages generated", "amount", generated)
	if len(errs) > 0 {
		slog.Error("several pages were not generated", "errors", errors.Join(errs...))
	}

	if err := site.CopyAssets(conf.AssetsDirectory, conf.OutputDirectory); err != nil {
		slog.Error("failed to copy static assets", "error", err)
	}
}
