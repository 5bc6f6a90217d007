package goquery

import (
	"maps"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/artlot"
	"golang.org/x/net/html"
)

// Rule maps the elements matched by a CSS selector onto a field.
//
// By default each matched element contributes its inner HTML as one
// fragment; markup is left for the normalizer to strip.
type Rule struct {
	Field    artlot.Field
	Selector string

	// Attr takes the value of this attribute instead of the content.
	Attr string

	// Nodes takes each direct child text node as its own fragment, the way
	// an XPath text() step does.
	Nodes bool

	// FromURL takes the page address instead of selecting from the HTML.
	FromURL bool
}

// SelectWithRules parses HTML and collects the fragments of every rule in
// document order. Empty fragments are dropped. Several rules may feed the
// same field; their fragments are appended in rule order.
func SelectWithRules(htmlStr string, pageURL string, rules []Rule) (artlot.Fragments, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return nil, artlot.Errorf(artlot.EINVALID, "failed to parse HTML: %v", err)
	}

	fragments := make(artlot.Fragments)
	for _, rule := range rules {
		if rule.FromURL {
			if pageURL != "" {
				fragments.Add(rule.Field, pageURL)
			}
			continue
		}
		if rule.Selector == "" {
			continue
		}
		sel, err := compile(rule.Selector)
		if err != nil {
			return nil, artlot.Errorf(artlot.EINVALID, "invalid selector %q for field %q: %v", rule.Selector, rule.Field, err)
		}
		doc.FindMatcher(sel).Each(func(_ int, s *goquery.Selection) {
			for _, fragment := range ruleFragments(rule, s) {
				if strings.TrimSpace(fragment) != "" {
					fragments.Add(rule.Field, fragment)
				}
			}
		})
	}
	return fragments, nil
}

// OverrideRules returns rules with the selectors in css substituted for the
// fields they name. A field without a rule gets a new content rule.
func OverrideRules(rules []Rule, css map[artlot.Field]string) []Rule {
	out := make([]Rule, 0, len(rules)+len(css))
	seen := make(map[artlot.Field]bool, len(css))
	for _, rule := range rules {
		if selector, ok := css[rule.Field]; ok && !rule.FromURL {
			rule.Selector = selector
			seen[rule.Field] = true
		}
		out = append(out, rule)
	}
	for _, field := range slices.Sorted(maps.Keys(css)) {
		if !seen[field] {
			out = append(out, Rule{Field: field, Selector: css[field]})
		}
	}
	return out
}

// compile parses a CSS selector, reporting the syntax errors goquery's Find
// ignores.
func compile(selector string) (goquery.Matcher, error) {
	return cascadia.Compile(selector)
}

func ruleFragments(rule Rule, s *goquery.Selection) []string {
	switch {
	case rule.Attr != "":
		v, ok := s.Attr(rule.Attr)
		if !ok {
			return nil
		}
		return []string{v}
	case rule.Nodes:
		var texts []string
		for _, n := range s.Nodes {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					texts = append(texts, c.Data)
				}
			}
		}
		return texts
	default:
		h, err := s.Html()
		if err != nil {
			return nil
		}
		return []string{h}
	}
}
