// Package normalize cleans raw page snippets into plain text: markup is
// stripped, entities decoded and whitespace collapsed. Decoded text that
// would read as markup again is escaped, so normalizing twice changes
// nothing.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"
)

// blockTags separate words when stripped. Inline tags are removed without a
// trace so that "Pi<b>cas</b>so" stays one word.
var blockTags = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Br: true, atom.Dd: true, atom.Div: true, atom.Dl: true, atom.Dt: true,
	atom.Footer: true, atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true,
	atom.H5: true, atom.H6: true, atom.Header: true, atom.Hr: true, atom.Li: true,
	atom.Ol: true, atom.P: true, atom.Section: true, atom.Table: true, atom.Td: true,
	atom.Th: true, atom.Tr: true, atom.Ul: true,
}

// skipTags have content that is never page text.
var skipTags = map[atom.Atom]bool{
	atom.Script: true, atom.Style: true, atom.Noscript: true,
}

// Text strips markup from s and collapses whitespace runs to single spaces.
// It never fails; input without markup only has its whitespace collapsed.
//
// An entity that decodes to a tag opener or to another entity stays escaped:
// "&lt;b&gt;" becomes "&lt;b>" and "&amp;amp;" stays "&amp;amp;", while a
// plain "&amp;" becomes "&".
func Text(s string) string {
	if s == "" {
		return ""
	}
	return escapeMarkup(collapse(stripTags(s)))
}

// Join joins fragments with a space and normalizes the result.
func Join(fragments []string) string {
	switch len(fragments) {
	case 0:
		return ""
	case 1:
		return Text(fragments[0])
	}
	return Text(strings.Join(fragments, " "))
}

// StripAccents decomposes s canonically and drops every accent mark, keeping
// other combining characters such as the diaeresis. The result stays
// decomposed.
func StripAccents(s string) string {
	if s == "" {
		return ""
	}
	decomposed := norm.NFD.String(s)

	var sb strings.Builder
	sb.Grow(len(decomposed))
	for _, r := range decomposed {
		if isAccent(r) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// isAccent reports whether the Unicode name of r ends in ACCENT.
func isAccent(r rune) bool {
	if r < unicode.MaxASCII && r != '`' && r != '^' {
		return false
	}
	return strings.HasSuffix(runenames.Name(r), "ACCENT")
}

// stripTags returns the text content of s with entities decoded.
func stripTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))

	z := html.NewTokenizer(strings.NewReader(s))
	skipping := 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF is the only error a string reader produces.
			return sb.String()
		case html.TextToken:
			if skipping == 0 {
				sb.Write(z.Text())
			}
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if skipTags[a] {
				if tt == html.StartTagToken {
					skipping++
				} else if tt == html.EndTagToken && skipping > 0 {
					skipping--
				}
				continue
			}
			if blockTags[a] {
				sb.WriteByte(' ')
			}
		}
	}
}

// escapeMarkup escapes every "<" that would open a tag or comment and every
// "&" that would start an entity. Entity names end at the next "&" or "<",
// so escaping one character never changes how another one reads.
func escapeMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '<' && i+1 < len(s) && opensTag(s[i+1]):
			sb.WriteString("&lt;")
		case c == '&' && startsEntity(s[i:]):
			sb.WriteString("&amp;")
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// opensTag reports whether c after "<" makes the tokenizer read a tag, an end
// tag, a comment or a processing instruction.
func opensTag(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '/' || c == '!' || c == '?'
}

// startsEntity reports whether s, which begins with "&", decodes to something
// else.
func startsEntity(s string) bool {
	if end := strings.IndexAny(s[1:], "&<"); end >= 0 {
		s = s[:end+1]
	}
	return html.UnescapeString(s) != s
}

// collapse replaces whitespace runs, including non-breaking spaces, with one
// space and trims the ends.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
