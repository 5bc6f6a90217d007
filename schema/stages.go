package schema

import (
	"github.com/fwojciec/artlot"
	"github.com/fwojciec/artlot/extract"
	"github.com/fwojciec/artlot/normalize"
)

// Constant returns a stage that ignores its input and yields v.
func Constant(v string) artlot.Stage {
	return artlot.Stage{
		Name:     "constant",
		Fallback: v,
		Apply:    func(any) (any, bool) { return v, true },
	}
}

// StripAccents removes accents from text.
var StripAccents = artlot.StageOf("strip_accents", func(s string) (string, bool) {
	s = normalize.StripAccents(s)
	return s, s != ""
})

// Shared stages that need no configuration.
var (
	Text        = artlot.StageOf("text", extract.Text)
	Name        = artlot.StageOf("name", extract.Name)
	LotID       = artlot.StageOf("lot_id", extract.LotID)
	CreatedYear = artlot.StageOf("created_year", extract.CreatedYear)
	SaleDate    = artlot.StageOf("sale_date", extract.SaleDate).Warned()
	SaleID      = artlot.StageOf("sale_id", extract.SaleID).Warned()
	ImageURL    = artlot.StageOf("image_url", extract.ImageURL)
	Provenance  = artlot.StageOf("provenance_flag", extract.ProvenanceFlag)

	Dimensions = artlot.StageOf("dimensions", extract.ParseDimensions)
	Height     = artlot.StageOf("height", extract.Height)
	Width      = artlot.StageOf("width", extract.Width)
	SizeUnit   = artlot.StageOf("size_unit", extract.SizeUnit)

	Amount           = artlot.StageOf("amount", extract.Amount)
	Currency         = artlot.StageOf("currency", extract.Currency)
	EstimateMin      = artlot.StageOf("estimate_min", extract.EstimateMin)
	EstimateMax      = artlot.StageOf("estimate_max", extract.EstimateMax)
	EstimateCurrency = artlot.StageOf("estimate_currency", extract.EstimateCurrency)
)

// stages builds the configurable stages from cfg.
type stages struct {
	money    artlot.Stage
	estimate artlot.Stage
	locate   artlot.Stage
	museums  artlot.Stage
	style    artlot.Stage
	location artlot.Stage
}

func newStages(cfg Config) stages {
	cfg = cfg.withDefaults()
	return stages{
		money:    artlot.StageOf("money", cfg.Currencies.ParseMoney),
		estimate: artlot.StageOf("estimate", cfg.Currencies.EstimateRange),
		locate:   artlot.StageOf("locate_currency", cfg.Currencies.LocateCurrency),
		museums:  artlot.StageOf("museums", cfg.Museums.Count),
		style:    artlot.StageOf("style", cfg.Styles.Classify),
		location: artlot.StageOf("sale_location", cfg.Locations.Classify).Warned(),
	}
}
