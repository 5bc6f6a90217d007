package extract

import (
	"regexp"
	"strconv"
)

// createdPattern finds a four digit number at most 20 characters after a
// creation keyword.
var createdPattern = regexp.MustCompile(`(?i)\b(?:painted|signed|dated|executed|completed|circa)\b.{1,20}(\d{4})`)

// CreatedYear returns the year a work was made. When the text mentions
// several, the last one wins.
func CreatedYear(s string) (int, bool) {
	matches := createdPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return 0, false
	}
	year, err := strconv.Atoi(matches[len(matches)-1][1])
	if err != nil {
		return 0, false
	}
	return year, true
}
