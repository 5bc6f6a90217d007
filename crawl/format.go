package crawl

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// PageHash fingerprints the HTML a lot was parsed from as 16 hex digits, so
// a changed page can be told apart from a re-run over the same page.
func PageHash(html string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(html))
}

// ShortSource shortens a lot source for progress lines. URLs lose their
// scheme and "www." prefix; what remains is cut from the left, since the lot
// number sits at the end.
func ShortSource(src string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	for _, prefix := range []string{"https://", "http://"} {
		if rest, ok := strings.CutPrefix(src, prefix); ok {
			src = strings.TrimPrefix(rest, "www.")
			break
		}
	}
	if len(src) <= maxLen {
		return src
	}
	if maxLen <= len(ellipsis) {
		return src[len(src)-maxLen:]
	}
	return ellipsis + src[len(src)-maxLen+len(ellipsis):]
}

const ellipsis = "..."

// FormatResult summarizes a batch for display.
func FormatResult(r *Result) string {
	parts := []string{fmt.Sprintf("%s parsed", plural(len(r.Lots), "lot"))}
	if r.Stored > 0 {
		parts = append(parts, fmt.Sprintf("%d stored", r.Stored))
	}
	if r.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", r.Skipped))
	}
	if r.Failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", r.Failed))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
