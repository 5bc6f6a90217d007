package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	dps "github.com/markusmobius/go-dateparser"
)

// isoDate is the output layout of SaleDate.
const isoDate = "2006-01-02"

// dayMonthYearPattern finds "12 May 2017" inside longer text such as a sale
// spanning several days ("11 - 12 May 2017").
var dayMonthYearPattern = regexp.MustCompile(`\b\d{1,2}\s+\p{L}+\s+\d{4}\b`)

// SaleDate returns the sale date as an ISO calendar date. The whole text is
// parsed first; if that fails the first day-month-year substring is parsed.
func SaleDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if d, ok := parseDate(s); ok {
		return d, true
	}
	sub := dayMonthYearPattern.FindString(s)
	if sub == "" {
		return "", false
	}
	return parseDate(sub)
}

// referenceTimes anchor the free-text parser. A text whose date moves with
// the anchor ("yesterday", "12 May") names no fixed sale date.
var referenceTimes = [2]time.Time{
	time.Date(2001, time.March, 14, 12, 0, 0, 0, time.UTC),
	time.Date(2012, time.October, 27, 12, 0, 0, 0, time.UTC),
}

// parseDate tries the strict layout parser before the free-text one. A
// month without a day resolves to the first of the month.
func parseDate(s string) (string, bool) {
	if t, err := dateparse.ParseAny(s); err == nil {
		return t.Format(isoDate), true
	}

	var dates [len(referenceTimes)]string
	for i, ref := range referenceTimes {
		dt, err := dps.Parse(&dps.Configuration{
			CurrentTime:         ref,
			PreferredDayOfMonth: dps.First,
		}, s)
		if err != nil || dt.Time.IsZero() {
			return "", false
		}
		dates[i] = dt.Time.Format(isoDate)
	}
	if dates[0] != dates[1] {
		return "", false
	}
	return dates[0], true
}
