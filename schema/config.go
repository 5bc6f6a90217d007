// Package schema declares the field tables of the supported auction houses.
//
// A schema is data: adding a house means writing a new table from the
// stages in this package and registering it, never changing the extractors.
package schema

import "github.com/fwojciec/artlot/extract"

// Config holds the keyword data the schemas classify and count with. Zero
// fields are replaced by the package defaults of extract.
type Config struct {
	Museums    extract.Keywords
	Styles     extract.Rules
	Locations  extract.Rules
	Currencies *extract.Currencies
}

// DefaultConfig returns the built-in keyword data.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

func (c Config) withDefaults() Config {
	if len(c.Museums) == 0 {
		c.Museums = extract.DefaultMuseums
	}
	if len(c.Styles) == 0 {
		c.Styles = extract.DefaultStyles
	}
	if len(c.Locations) == 0 {
		c.Locations = extract.DefaultLocations
	}
	if c.Currencies == nil {
		c.Currencies = extract.DefaultCurrencies
	}
	return c
}
