// Package gnews decodes the secondary-source markup Google News embeds in
// item descriptions. An aggregated item carries its alternate-source links
// as a fixed HTML template:
//
//	<li><a href="URL" target="_blank">TITLE</a>&nbsp;&nbsp;<font color="#6f6f6f">PUBLISHER</font></li>
//
// The format is undocumented and externally controlled, so decoding stays
// literal substring splitting against the known template rather than a real
// HTML parse.
package gnews

import (
	"log/slog"
	"strings"
)

const (
	segmentMarker        = "</font></li>"
	urlMarker            = `" target="_blank">`
	titlePublisherMarker = `</a>&nbsp;&nbsp;<font color="#6f6f6f">`
)

// Citation is one alternate-source link for an aggregated news item
type Citation struct {
	URL       string
	Title     string
	Publisher string
}

// ExtractSecondarySources pulls the alternate-source citations out of a
// Google News item description. Single-source items yield an empty slice.
// Segments that do not match the known template are skipped with a
// diagnostic; they never abort extraction of their siblings.
func ExtractSecondarySources(description string) []Citation {
	stripped := strings.ReplaceAll(description, `<li><a href="`, "")
	stripped = strings.ReplaceAll(stripped, "<ol>", "")
	stripped = strings.ReplaceAll(stripped, "</ol>", "")
	stripped = strings.ReplaceAll(stripped, "<strong>", "")
	stripped = strings.ReplaceAll(stripped, "</strong>", "")

	segments := strings.Split(stripped, segmentMarker)
	if len(segments) <= 1 {
		return nil
	}
	// The first segment is the primary source, the last is the empty
	// artifact the split leaves after the trailing marker
	segments = segments[1 : len(segments)-1]

	var citations []Citation
	for _, segment := range segments {
		urlSplit := strings.Split(segment, urlMarker)
		if len(urlSplit) != 2 {
			slog.Warn("unexpected source format during url split", "segment", segment)
			continue
		}
		titlePublisherSplit := strings.Split(urlSplit[1], titlePublisherMarker)
		if len(titlePublisherSplit) != 2 {
			slog.Warn("unexpected source format during title-publisher split", "segment", segment)
			continue
		}
		citations = append(citations, Citation{
			URL:       urlSplit[0],
			Title:     titlePublisherSplit[0],
			Publisher: titlePublisherSplit[1],
		})
	}

	return citations
}
