// Package yaml loads the keyword tables and selector overrides of artlot from
// a YAML file.
//
// An example file:
//
//	museums:
//	  - museum of modern art
//	  - tate
//	styles:
//	  - label: oil on canvas
//	    all: [oil, canvas]
//	currencies:
//	  "¥": JPY
//	selectors:
//	  christies:
//	    title: h1.lot-title
//
// Sections left out keep their built-in defaults.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/artlot"
	"github.com/fwojciec/artlot/extract"
	"github.com/fwojciec/artlot/schema"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the decoded form of a configuration file.
type Config struct {
	Museums    []string                     `yaml:"museums" validate:"dive,required"`
	Styles     []Rule                       `yaml:"styles" validate:"dive"`
	Locations  []Rule                       `yaml:"locations" validate:"dive"`
	Currencies map[string]string            `yaml:"currencies" validate:"dive,keys,required,endkeys,len=3,uppercase"`
	Selectors  map[string]map[string]string `yaml:"selectors" validate:"dive,keys,oneof=christies phillips,endkeys,dive,keys,required,endkeys,required"`
}

// Rule is a classification rule. Label defaults to the only term of All.
type Rule struct {
	Label string   `yaml:"label"`
	All   []string `yaml:"all" validate:"required_without=Any,dive,required"`
	Any   []string `yaml:"any" validate:"dive,required"`
}

var validate = validator.New()

// Load reads and validates the configuration file at path.
// Returns ENOTFOUND if the file does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, artlot.Errorf(artlot.ENOTFOUND, "config file not found: %s", path)
	}
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes and validates a configuration. Unknown keys are rejected.
// An empty document is a valid configuration with every default in place.
func Parse(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, artlot.Errorf(artlot.EINVALID, "invalid config: %v", err)
	}

	for i, rule := range cfg.Styles {
		cfg.Styles[i] = rule.withLabel()
	}
	for i, rule := range cfg.Locations {
		cfg.Locations[i] = rule.withLabel()
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, validationError(err)
	}
	if err := checkLabels("styles", cfg.Styles); err != nil {
		return nil, err
	}
	if err := checkLabels("locations", cfg.Locations); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func checkLabels(section string, rules []Rule) error {
	for i, rule := range rules {
		if rule.Label == "" {
			return artlot.Errorf(artlot.EINVALID, "invalid config: %s[%d] needs a label", section, i)
		}
	}
	return nil
}

func (r Rule) withLabel() Rule {
	if r.Label == "" && len(r.All) == 1 && len(r.Any) == 0 {
		r.Label = r.All[0]
	}
	return r
}

// validationError turns validator errors into one EINVALID error naming
// every offending field.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return artlot.Errorf(artlot.EINVALID, "invalid config: %v", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Namespace()+" failed "+fe.Tag())
	}
	return artlot.Errorf(artlot.EINVALID, "invalid config: %s", strings.Join(msgs, "; "))
}

// Schema returns the keyword data for the house schemas. Sections the file
// leaves out stay zero and fall back to the defaults of the schema package.
func (c *Config) Schema() schema.Config {
	var sc schema.Config
	if len(c.Museums) > 0 {
		sc.Museums = extract.NewKeywords(c.Museums...)
	}
	if len(c.Styles) > 0 {
		sc.Styles = rules(c.Styles)
	}
	if len(c.Locations) > 0 {
		sc.Locations = rules(c.Locations)
	}
	if len(c.Currencies) > 0 {
		symbols := make(map[string]string, len(extract.DefaultCurrencySymbols)+len(c.Currencies))
		for token, code := range extract.DefaultCurrencySymbols {
			symbols[token] = code
		}
		for token, code := range c.Currencies {
			symbols[token] = code
		}
		sc.Currencies = extract.NewCurrencies(symbols)
	}
	return sc
}

func rules(in []Rule) extract.Rules {
	out := make([]extract.Rule, 0, len(in))
	for _, r := range in {
		out = append(out, extract.Rule{Label: r.Label, All: r.All, Any: r.Any})
	}
	return extract.NewRules(out...)
}

// Overrides returns the selector overrides keyed by house and field.
func (c *Config) Overrides() map[artlot.House]map[artlot.Field]string {
	out := make(map[artlot.House]map[artlot.Field]string, len(c.Selectors))
	for house, fields := range c.Selectors {
		css := make(map[artlot.Field]string, len(fields))
		for field, selector := range fields {
			css[artlot.Field(field)] = selector
		}
		out[artlot.House(house)] = css
	}
	return out
}
