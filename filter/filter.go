package filter

import (
	"log/slog"
	"regexp"

	"newsgen/config"
	"newsgen/normalize"
)

// Pipeline applies a series of named filters to normalized news items
type Pipeline struct {
	filters map[string]*compiledFilter
}

// compiledFilter holds compiled regex patterns for efficient matching
type compiledFilter struct {
	config          config.Filter
	excludePatterns []*regexp.Regexp
}

// NewPipeline creates a new filter pipeline from config
func NewPipeline(filtersConfig map[string]config.Filter) (*Pipeline, error) {
	compiled := make(map[string]*compiledFilter)

	for name, filterCfg := range filtersConfig {
		cf := &compiledFilter{
			config:          filterCfg,
			excludePatterns: make([]*regexp.Regexp, 0, len(filterCfg.ExcludePatterns)),
		}

		for _, pattern := range filterCfg.ExcludePatterns {
			re, err := regexp.Compile(pattern)
			if err != nil {
				slog.Warn("invalid regex pattern in filter", "filter", name, "pattern", pattern, "error", err)
				continue
			}
			cf.excludePatterns = append(cf.excludePatterns, re)
		}

		compiled[name] = cf
	}

	return &Pipeline{filters: compiled}, nil
}

// ShouldInclude returns true if the item passes all filters in the pipeline.
// filterNames is a list of filter names to apply in order; the second return
// value names the filter and pattern that excluded the item.
func (p *Pipeline) ShouldInclude(item normalize.NewsItem, filterNames []string) (bool, string) {
	if len(filterNames) == 0 {
		return true, "" // No filters = include everything
	}

	text := item.DisplayTitle() + " " + item.Description

	for _, filterName := range filterNames {
		filter, exists := p.filters[filterName]
		if !exists {
			slog.Warn("filter not found, skipping", "filter_name", filterName)
			continue
		}

		for i, pattern := range filter.excludePatterns {
			if pattern.MatchString(text) {
				return false, filterName + ":exclude_pattern[" + filter.config.ExcludePatterns[i] + "]"
			}
		}
	}

	return true, ""
}
