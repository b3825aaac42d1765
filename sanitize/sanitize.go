// Package sanitize cleans free text headed for HTML attributes or content.
package sanitize

import "strings"

const govSuffix = " (.gov)"

// Clean applies the text transforms used on every rendered field, in order:
// double quotes become single quotes, literal ampersands become &amp;, a
// trailing " (.gov)" suffix is removed, and incidental whitespace-only lines
// are collapsed. The ampersand replacement is a single literal pass and runs
// after the quote replacement; entities already present in the input get
// double-escaped, which is accepted. The function is pure and total.
func Clean(text string) string {
	text = strings.ReplaceAll(text, `"`, "'")
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.TrimSuffix(text, govSuffix)

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
