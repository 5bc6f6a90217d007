package mock

import "github.com/fwojciec/artlot"

var _ artlot.FragmentSelector = (*FragmentSelector)(nil)

// FragmentSelector is a mock implementation of artlot.FragmentSelector.
type FragmentSelector struct {
	SelectFn func(html string, pageURL string) (artlot.Fragments, error)
	HouseFn  func() artlot.House
}

func (s *FragmentSelector) Select(html string, pageURL string) (artlot.Fragments, error) {
	return s.SelectFn(html, pageURL)
}

func (s *FragmentSelector) House() artlot.House {
	return s.HouseFn()
}

var _ artlot.HouseDetector = (*HouseDetector)(nil)

// HouseDetector is a mock implementation of artlot.HouseDetector.
type HouseDetector struct {
	DetectFn func(html string, pageURL string) artlot.House
}

func (d *HouseDetector) Detect(html string, pageURL string) artlot.House {
	return d.DetectFn(html, pageURL)
}

var _ artlot.SelectorRegistry = (*SelectorRegistry)(nil)

// SelectorRegistry is a mock implementation of artlot.SelectorRegistry.
type SelectorRegistry struct {
	GetFn        func(house artlot.House) artlot.FragmentSelector
	GetForHTMLFn func(html string, pageURL string) artlot.FragmentSelector
	RegisterFn   func(selector artlot.FragmentSelector)
	ListFn       func() []artlot.House
}

func (r *SelectorRegistry) Get(house artlot.House) artlot.FragmentSelector {
	return r.GetFn(house)
}

func (r *SelectorRegistry) GetForHTML(html string, pageURL string) artlot.FragmentSelector {
	return r.GetForHTMLFn(html, pageURL)
}

func (r *SelectorRegistry) Register(selector artlot.FragmentSelector) {
	r.RegisterFn(selector)
}

func (r *SelectorRegistry) List() []artlot.House {
	return r.ListFn()
}
