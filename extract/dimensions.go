package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Dimensions is a work's size converted to centimeters.
type Dimensions struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`

	// Unit is "cm" for parsed sizes and "" otherwise.
	Unit string `json:"unit"`

	// SourceUnit is the unit as printed on the page: "in", "cm" or "mm".
	SourceUnit string `json:"source_unit,omitempty"`
}

var (
	mixedFractionPattern = regexp.MustCompile(`(\d+)\s+(\d+)/(\d+)`)
	dimensionsPattern    = regexp.MustCompile(`(?i)(\d*[.,]\d+|\d+)(?:\s*[x×]\s*)?(\d*[.,]\d+|\d+)?\s*(in|cm|mm)`)
)

// cmFactors converts a unit into centimeters.
var cmFactors = map[string]float64{
	"cm": 1,
	"mm": 0.1,
	"in": 2.54,
}

// ConvertToCM converts v in unit to centimeters. Unknown units convert to 0.
func ConvertToCM(v float64, unit string) float64 {
	return v * cmFactors[strings.ToLower(strings.TrimSpace(unit))]
}

// ParseDimensions returns the first "H x W unit" or "H unit" size in the text.
// Mixed fractions such as "24 1/2" are read as decimals and a comma may serve
// as the decimal separator.
func ParseDimensions(s string) (Dimensions, bool) {
	m := dimensionsPattern.FindStringSubmatch(expandFractions(s))
	if m == nil {
		return Dimensions{}, false
	}
	unit := strings.ToLower(m[3])

	height, ok := parseDecimal(m[1])
	if !ok {
		return Dimensions{}, false
	}
	var width float64
	if m[2] != "" {
		if width, ok = parseDecimal(m[2]); !ok {
			return Dimensions{}, false
		}
	}

	return Dimensions{
		Height:     round(ConvertToCM(height, unit)),
		Width:      round(ConvertToCM(width, unit)),
		Unit:       "cm",
		SourceUnit: unit,
	}, true
}

// Height returns the height of parsed dimensions.
func Height(d Dimensions) (float64, bool) {
	return d.Height, d.Unit != ""
}

// Width returns the width of parsed dimensions. A size given as a single
// number has no width.
func Width(d Dimensions) (float64, bool) {
	return d.Width, d.Unit != "" && d.Width != 0
}

// SizeUnit returns the unit of parsed dimensions.
func SizeUnit(d Dimensions) (string, bool) {
	return d.Unit, d.Unit != ""
}

// expandFractions rewrites "24 1/2" as "24.5".
func expandFractions(s string) string {
	return mixedFractionPattern.ReplaceAllStringFunc(s, func(frac string) string {
		m := mixedFractionPattern.FindStringSubmatch(frac)
		whole, err1 := strconv.ParseFloat(m[1], 64)
		num, err2 := strconv.ParseFloat(m[2], 64)
		den, err3 := strconv.ParseFloat(m[3], 64)
		if err1 != nil || err2 != nil || err3 != nil || den == 0 {
			return frac
		}
		return strconv.FormatFloat(whole+num/den, 'f', -1, 64)
	})
}

func parseDecimal(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// round trims float noise from unit conversion to four decimals.
func round(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
