// Package extract provides the primitive field parsers. Each parser is a pure
// function from a normalized snippet to a typed value plus a matched flag.
// On any miss a parser returns its documented fallback (0, "", false or an
// empty struct) with matched set to false; parsers never panic.
package extract

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	namePattern    = regexp.MustCompile(`^(.*?)\s*\(`)
	lotIDPattern   = regexp.MustCompile(`^\d+`)
	segmentPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// noImageMarker appears in placeholder image addresses.
const noImageMarker = "no-image"

// Name returns the artist name of a "Name (dates)" heading: the text before
// the first opening parenthesis, trimmed.
func Name(s string) (string, bool) {
	m := namePattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	return name, name != ""
}

// LotID returns the leading run of digits.
func LotID(s string) (string, bool) {
	id := lotIDPattern.FindString(strings.TrimSpace(s))
	return id, id != ""
}

// ImageURL passes an image address through unless it is empty or points at a
// placeholder.
func ImageURL(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, noImageMarker) {
		return "", false
	}
	return s, true
}

// ProvenanceFlag reports whether the provenance mentions an estate or a museum.
func ProvenanceFlag(s string) (bool, bool) {
	t := strings.ToLower(s)
	found := strings.Contains(t, "estate") || strings.Contains(t, "museum")
	return found, found
}

// SaleID returns the sale code of a lot address, the path segment before the
// lot number: ".../detail/PABLO-PICASSO/UK030217/1" yields "UK030217".
func SaleID(s string) (string, bool) {
	path := strings.TrimSpace(s)
	if u, err := url.Parse(path); err == nil && u.Path != "" {
		path = u.Path
	}
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 2 {
		return "", false
	}
	id := segments[len(segments)-2]
	if !segmentPattern.MatchString(id) {
		return "", false
	}
	return id, true
}

// Text passes normalized text through; empty text is a miss.
func Text(s string) (string, bool) {
	return s, s != ""
}
