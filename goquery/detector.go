package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/artlot"
)

var _ artlot.HouseDetector = (*Detector)(nil)

// Detector identifies the auction house of a lot page. The page address is
// checked first; pages read from disk fall back to markup markers.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and the page address and returns the house.
// Returns HouseUnknown if the house cannot be determined.
func (d *Detector) Detect(html string, pageURL string) artlot.House {
	if house := d.detectFromURL(pageURL); house != artlot.HouseUnknown {
		return house
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return artlot.HouseUnknown
	}

	if house := d.detectFromMeta(doc); house != artlot.HouseUnknown {
		return house
	}

	// Christie's lot pages are ASP.NET forms with generated element ids
	if d.hasSelector(doc, "#main_center_0_lblLotPrimaryTitle") ||
		d.hasSelector(doc, "#main_center_0_lblLotNumber") {
		return artlot.HouseChristies
	}

	if d.hasSelector(doc, ".sale-title-banner") ||
		d.hasSelector(doc, ".lot-information") && d.hasSelector(doc, "a.modal-zoom") {
		return artlot.HousePhillips
	}

	return artlot.HouseUnknown
}

func (d *Detector) detectFromURL(pageURL string) artlot.House {
	if pageURL == "" {
		return artlot.HouseUnknown
	}
	u, err := url.Parse(pageURL)
	if err != nil {
		return artlot.HouseUnknown
	}
	return houseFromName(u.Hostname())
}

// detectFromMeta checks the Open Graph site name and canonical link.
func (d *Detector) detectFromMeta(doc *goquery.Document) artlot.House {
	if name, ok := doc.Find("meta[property='og:site_name']").Attr("content"); ok {
		if house := houseFromName(name); house != artlot.HouseUnknown {
			return house
		}
	}
	if href, ok := doc.Find("link[rel='canonical']").Attr("href"); ok {
		return d.detectFromURL(href)
	}
	return artlot.HouseUnknown
}

func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}

func houseFromName(s string) artlot.House {
	s = strings.ToLower(s)
	switch {
	case strings.Contains(s, "christies"), strings.Contains(s, "christie's"):
		return artlot.HouseChristies
	case strings.Contains(s, "phillips"):
		return artlot.HousePhillips
	}
	return artlot.HouseUnknown
}
