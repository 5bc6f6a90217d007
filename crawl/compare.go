package crawl

import "github.com/fwojciec/artlot"

// FragmentsDiffer compares the fields found in statically fetched HTML with
// those found in browser-rendered HTML of the same lot page. It returns true
// when rendering reveals fields the static page lacks, suggesting the house
// fills the page with JavaScript. It also returns true when only the
// rendered copy matches a house or when the static copy fails to select.
func FragmentsDiffer(staticHTML, renderedHTML, pageURL string, selectors artlot.SelectorRegistry) bool {
	rendered := selectors.GetForHTML(renderedHTML, pageURL)
	if rendered == nil {
		return false
	}
	renderedFragments, err := rendered.Select(renderedHTML, pageURL)
	if err != nil {
		return false
	}

	static := selectors.GetForHTML(staticHTML, pageURL)
	if static == nil {
		return true
	}
	staticFragments, err := static.Select(staticHTML, pageURL)
	if err != nil {
		return true
	}

	return len(renderedFragments) > len(staticFragments)
}
