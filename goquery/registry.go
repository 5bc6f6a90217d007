package goquery

import (
	"slices"

	"github.com/fwojciec/artlot"
)

var _ artlot.SelectorRegistry = (*Registry)(nil)

// Registry manages house-specific fragment selectors and detects the house
// of a page. There is no generic fallback: a page of an unknown house has no
// selector.
type Registry struct {
	detector  artlot.HouseDetector
	selectors map[artlot.House]artlot.FragmentSelector
}

// NewRegistry creates a new Registry with the given detector.
func NewRegistry(detector artlot.HouseDetector) *Registry {
	return &Registry{
		detector:  detector,
		selectors: make(map[artlot.House]artlot.FragmentSelector),
	}
}

// NewDefaultRegistry creates a Registry with the Christie's and Phillips
// selectors and the markup detector.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(NewDetector())
	r.Register(NewChristiesSelector())
	r.Register(NewPhillipsSelector())
	return r
}

// Get returns the selector for a house.
// Returns nil if no selector is registered for the house.
func (r *Registry) Get(house artlot.House) artlot.FragmentSelector {
	return r.selectors[house]
}

// GetForHTML detects the house from the page and returns its selector.
// Returns nil if the house is unknown or has no selector.
func (r *Registry) GetForHTML(html string, pageURL string) artlot.FragmentSelector {
	return r.selectors[r.detector.Detect(html, pageURL)]
}

// Register adds a selector for its house.
// If a selector is already registered for the house, it is replaced.
func (r *Registry) Register(selector artlot.FragmentSelector) {
	r.selectors[selector.House()] = selector
}

// List returns all registered houses in name order.
func (r *Registry) List() []artlot.House {
	houses := make([]artlot.House, 0, len(r.selectors))
	for h := range r.selectors {
		houses = append(houses, h)
	}
	slices.Sort(houses)
	return houses
}

// Override replaces the CSS selectors of some fields of a registered house.
// Every selector is compiled first, so an invalid one leaves the registry
// unchanged. Returns EINVALID if the house has no rule-based selector.
func (r *Registry) Override(house artlot.House, css map[artlot.Field]string) error {
	hs, ok := r.selectors[house].(*HouseSelector)
	if !ok {
		return artlot.Errorf(artlot.EINVALID, "no selector rules for house %q", house)
	}
	for field, selector := range css {
		if _, err := compile(selector); err != nil {
			return artlot.Errorf(artlot.EINVALID, "invalid selector %q for field %q: %v", selector, field, err)
		}
	}
	r.Register(NewHouseSelector(house, OverrideRules(hs.Rules(), css)))
	return nil
}
