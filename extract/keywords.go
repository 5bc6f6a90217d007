package extract

import "strings"

// Keywords is an immutable list of lowercase search terms.
type Keywords []string

// NewKeywords lowercases and trims words, dropping empty ones.
func NewKeywords(words ...string) Keywords {
	kws := make(Keywords, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			kws = append(kws, w)
		}
	}
	return kws
}

// DefaultMuseums lists major museums and galleries whose exhibitions are
// counted by CountMuseums.
var DefaultMuseums = NewKeywords(
	"museum",
	"musée",
	"museo",
	"beyeler",
	"thannhauser",
	"gmurzynska",
	"georges petit",
	"matthiesen",
	"tate modern",
	"somerset house",
	"wilanów palace",
	"the national art center",
	"galleria degli uffizi",
	"national portrait gallery",
	"art institute of chicago",
	"saatchi gallery",
	"wawel royal castle",
	"galleria dell'accademia",
	"national galler",
	"grand palais",
	"tretyakov",
	"tate britain",
	"royal academy of arts",
	"minneapolis institute of art",
)

// Count returns how often the keywords occur in s, ignoring case. Each
// keyword is counted on its own, so overlapping keywords all count.
func (k Keywords) Count(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	t := strings.ToLower(s)
	n := 0
	for _, kw := range k {
		n += strings.Count(t, kw)
	}
	return n, n > 0
}

// CountMuseums counts exhibitions in the default museums.
func CountMuseums(s string) (int, bool) {
	return DefaultMuseums.Count(s)
}

// Rule labels text that contains every term of All and, when Any is set, at
// least one term of Any.
type Rule struct {
	Label string
	All   []string
	Any   []string
}

// Rules is an ordered list of classification rules, most specific first.
type Rules []Rule

// NewRules returns rules with lowercased terms.
func NewRules(rules ...Rule) Rules {
	out := make(Rules, 0, len(rules))
	for _, r := range rules {
		out = append(out, Rule{
			Label: r.Label,
			All:   NewKeywords(r.All...),
			Any:   NewKeywords(r.Any...),
		})
	}
	return out
}

// Phrase returns a rule matching one phrase and labelled with it.
func Phrase(p string) Rule {
	return Rule{Label: p, All: []string{p}}
}

// DefaultStyles classifies the medium of a work.
var DefaultStyles = NewRules(
	Phrase("oil on canvas"),
	Phrase("oil on board"),
	Phrase("oil on paper"),
	Phrase("tempera on canvas"),
	Phrase("tempera on board"),
	Phrase("tempera on paper"),
	Phrase("drawing"),
	Rule{Label: "water color", All: []string{"water"}, Any: []string{"colour", "color"}},
	Phrase("pastel"),
	Phrase("bronze"),
	Phrase("marble"),
	Phrase("acrylic on canvas"),
	Phrase("acrylic on paper"),
	Phrase("pen on paper"),
	Phrase("ink on paper"),
	Phrase("paper"),
	Phrase("canvas"),
	Rule{Label: "acrylic", Any: []string{"acrylic", "acryllic"}},
)

// DefaultLocations classifies the city of a sale.
var DefaultLocations = NewRules(
	Rule{Label: "London", All: []string{"london"}},
	Rule{Label: "New York", All: []string{"new york"}},
	Rule{Label: "Geneva", All: []string{"geneva"}},
	Rule{Label: "Hong Kong", All: []string{"hong kong"}},
	Rule{Label: "Paris", All: []string{"paris"}},
)

// Classify returns the label of the first rule the text satisfies.
func (r Rules) Classify(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	t := strings.ToLower(s)
	for _, rule := range r {
		if rule.matches(t) {
			return rule.Label, true
		}
	}
	return "", false
}

// Style classifies the medium with the default rules.
func Style(s string) (string, bool) {
	return DefaultStyles.Classify(s)
}

func (r Rule) matches(t string) bool {
	if len(r.All) == 0 && len(r.Any) == 0 {
		return false
	}
	for _, term := range r.All {
		if !strings.Contains(t, term) {
			return false
		}
	}
	if len(r.Any) == 0 {
		return true
	}
	for _, term := range r.Any {
		if strings.Contains(t, term) {
			return true
		}
	}
	return false
}
