package artlot

// FragmentSelector pulls the raw snippets of each field out of a lot page.
// Selection rules are house specific; parsing the snippets is not its job.
type FragmentSelector interface {
	// Select parses HTML and returns the snippets found per field.
	// The pageURL is recorded for fields that derive from the address.
	Select(html string, pageURL string) (Fragments, error)

	// House returns the house whose pages the selector understands.
	House() House
}

// HouseDetector identifies the auction house of a lot page.
type HouseDetector interface {
	// Detect analyzes HTML and the page address and returns the house.
	// Returns HouseUnknown if the house cannot be determined.
	Detect(html string, pageURL string) House
}

// SelectorRegistry manages house-specific fragment selectors.
type SelectorRegistry interface {
	// Get returns the selector for a house.
	// Returns nil if no selector is registered for the house.
	Get(house House) FragmentSelector

	// GetForHTML detects the house and returns its selector.
	// Returns nil if the house is unknown or has no selector.
	GetForHTML(html string, pageURL string) FragmentSelector

	// Register adds a selector for its house.
	Register(selector FragmentSelector)

	// List returns all registered houses.
	List() []House
}
