package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Money is an amount in a currency.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Estimate is a pre-sale price range.
type Estimate struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

// DefaultCurrencySymbols maps the currency tokens seen on lot pages to
// three-letter codes.
var DefaultCurrencySymbols = map[string]string{
	"£":   "GBP",
	"$":   "USD",
	"US$": "USD",
	"HK$": "HKD",
	"€":   "EUR",
	"CHF": "CHF",
	"GBP": "GBP",
	"USD": "USD",
	"HKD": "HKD",
	"EUR": "EUR",
}

// DefaultCurrencies is the currency table built from DefaultCurrencySymbols.
var DefaultCurrencies = NewCurrencies(DefaultCurrencySymbols)

// Currencies recognizes currency tokens and parses amounts written after them.
// A Currencies value is immutable and safe for concurrent use.
type Currencies struct {
	codes    map[string]string
	money    *regexp.Regexp
	estimate *regexp.Regexp
	locate   *regexp.Regexp
	tokens   *regexp.Regexp
}

// NewCurrencies compiles a currency table. Keys are the tokens as printed
// ("£", "HK$", "GBP"), values the three-letter codes they stand for.
func NewCurrencies(symbols map[string]string) *Currencies {
	codes := make(map[string]string, len(symbols))
	keys := make([]string, 0, len(symbols))
	for token, code := range symbols {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		codes[token] = strings.ToUpper(strings.TrimSpace(code))
		keys = append(keys, token)
	}

	// Longest first so that "HK$" wins over "$".
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = regexp.QuoteMeta(k)
	}
	known := strings.Join(quoted, "|")

	// Any three letters count as a code when they lead the text.
	token := `(?:` + known + `|[A-Za-z]{3})`
	if known == "" {
		token = `[A-Za-z]{3}`
		known = `[A-Za-z]{3}`
	}
	amount := `(\d[\d,]*)`

	return &Currencies{
		codes:    codes,
		money:    regexp.MustCompile(`^\s*(` + token + `)\s*` + amount),
		estimate: regexp.MustCompile(`^\s*(` + token + `)\s*` + amount + `\s*(?:-|–|—|(?i:to))\s*(?:` + token + `)?\s*` + amount),
		locate:   regexp.MustCompile(`(?:` + known + `)\s*\d`),
		tokens:   regexp.MustCompile(known),
	}
}

// Code returns the three-letter code of a currency token.
func (c *Currencies) Code(token string) string {
	if code, ok := c.codes[token]; ok {
		return code
	}
	return strings.ToUpper(token)
}

// ParseMoney parses "<currency><amount>" where the amount may carry comma
// thousands separators: "USD 12,345" yields {12345, "USD"}.
func (c *Currencies) ParseMoney(s string) (Money, bool) {
	m := c.money.FindStringSubmatch(s)
	if m == nil {
		return Money{}, false
	}
	amount, ok := parseAmount(m[2])
	if !ok {
		return Money{}, false
	}
	return Money{Amount: amount, Currency: c.Code(m[1])}, true
}

// EstimateRange parses "<currency><min>-<max>", e.g. "GBP 10,000 - 15,000" or
// "USD 1,000,000 - USD 1,500,000".
func (c *Currencies) EstimateRange(s string) (Estimate, bool) {
	m := c.estimate.FindStringSubmatch(s)
	if m == nil {
		return Estimate{}, false
	}
	lo, ok := parseAmount(m[2])
	if !ok {
		return Estimate{}, false
	}
	hi, ok := parseAmount(m[3])
	if !ok {
		return Estimate{}, false
	}
	return Estimate{Min: lo, Max: hi, Currency: c.Code(m[1])}, true
}

// LocateCurrency finds the first known currency token followed by an amount,
// drops the text before it and rewrites every known token in the rest to its
// code: "Estimate £10,000 - 15,000" yields "GBP 10,000 - 15,000". Only tokens
// of the table are recognized here, never arbitrary three-letter words.
func (c *Currencies) LocateCurrency(s string) (string, bool) {
	loc := c.locate.FindStringIndex(s)
	if loc == nil {
		return "", false
	}
	rest := c.tokens.ReplaceAllStringFunc(s[loc[0]:], func(tok string) string {
		return c.Code(tok) + " "
	})
	return strings.Join(strings.Fields(rest), " "), true
}

// ParseMoney parses money with the default currency table.
func ParseMoney(s string) (Money, bool) {
	return DefaultCurrencies.ParseMoney(s)
}

// EstimateRange parses an estimate with the default currency table.
func EstimateRange(s string) (Estimate, bool) {
	return DefaultCurrencies.EstimateRange(s)
}

// LocateCurrency locates money with the default currency table.
func LocateCurrency(s string) (string, bool) {
	return DefaultCurrencies.LocateCurrency(s)
}

// Amount returns the amount of parsed money.
func Amount(m Money) (int64, bool) {
	return m.Amount, m.Currency != ""
}

// Currency returns the currency code of parsed money.
func Currency(m Money) (string, bool) {
	return m.Currency, m.Currency != ""
}

// EstimateMin returns the lower bound of an estimate.
func EstimateMin(e Estimate) (int64, bool) {
	return e.Min, e.Currency != ""
}

// EstimateMax returns the upper bound of an estimate.
func EstimateMax(e Estimate) (int64, bool) {
	return e.Max, e.Currency != ""
}

// EstimateCurrency returns the currency code of an estimate.
func EstimateCurrency(e Estimate) (string, bool) {
	return e.Currency, e.Currency != ""
}

// parseAmount converts "1,234,500" to 1234500.
func parseAmount(s string) (int64, bool) {
	digits := strings.ReplaceAll(s, ",", "")
	if digits == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
