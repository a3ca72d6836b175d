// Package engine orchestrates a tariff build: it loads the reference-data
// slices for a request, computes the per-band cost stack, aggregates
// consumption-weighted rates and an annual bill estimate, and gates the
// result through the configured sanity bounds.
package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/allinpricing/tariffbuild/internal/charges"
	"github.com/allinpricing/tariffbuild/internal/config"
	"github.com/allinpricing/tariffbuild/internal/refdata"
	"github.com/allinpricing/tariffbuild/internal/sanity"
	"github.com/allinpricing/tariffbuild/internal/tariff"
)

// Engine builds tariff quotes from static reference tables. Each build is a
// pure function of the reference tables and the request: the engine holds no
// mutable state across builds, so one Engine may serve concurrent builds.
type Engine struct {
	settings *config.Settings
	dataRoot string
	logger   zerolog.Logger
}

// New creates an Engine over loaded settings and a reference-data root.
func New(settings *config.Settings, dataRoot string, logger zerolog.Logger) *Engine {
	return &Engine{settings: settings, dataRoot: dataRoot, logger: logger}
}

// FromConfig loads settings from a YAML file and creates an Engine.
func FromConfig(configPath, dataRoot string, logger zerolog.Logger) (*Engine, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return New(settings, dataRoot, logger), nil
}

// Settings exposes the engine's configuration to callers that need the
// sanity bounds or VAT rates the build used.
func (e *Engine) Settings() *config.Settings {
	return e.settings
}

// BuildTariffFromArchetype resolves the archetype for the requested key,
// constructs a request from it (with the market's configured VAT rate when
// includeVAT is set), and delegates to BuildTariff.
func (e *Engine) BuildTariffFromArchetype(market tariff.Market, commodity tariff.Commodity, segment tariff.Segment, structure tariff.TariffStructure, year int, contractType tariff.ContractType, includeVAT bool) (*tariff.Result, error) {
	archetype, err := refdata.GetArchetype(e.settings, e.dataRoot, market, commodity, segment, structure)
	if err != nil {
		return nil, err
	}

	vatRate := 0.0
	if includeVAT {
		if vatRate, err = e.settings.VATRate(market); err != nil {
			return nil, err
		}
	}

	req := tariff.Request{
		Market:                   market,
		Commodity:                commodity,
		Segment:                  segment,
		TariffStructure:          structure,
		Year:                     year,
		ContractType:             contractType,
		AnnualConsumptionKWh:     archetype.AnnualConsumptionKWh,
		StandingChargeEURPerYear: archetype.StandingChargeEURPerYear,
		BandSplit:                archetype.BandSplit,
		VATRate:                  vatRate,
	}
	return e.BuildTariff(req)
}

// wholesalePolicy decides the wholesale term priced into the numeric stack
// for a contract type.
type wholesalePolicy func(loaded float64) float64

func policyFor(ct tariff.ContractType) (wholesalePolicy, error) {
	switch ct {
	case tariff.ContractFixed:
		return func(loaded float64) float64 { return loaded }, nil
	case tariff.ContractIndexed:
		// The floating index is settled separately; only the markup over it
		// belongs in the stack.
		return func(float64) float64 { return 0 }, nil
	}
	return nil, fmt.Errorf("%w: unknown contract type %q", tariff.ErrValidation, string(ct))
}

// BuildTariff runs one tariff build. Any missing required reference row is
// fatal: the engine never returns a partial result and never skips a band.
func (e *Engine) BuildTariff(req tariff.Request) (*tariff.Result, error) {
	quoteID := uuid.New().String()
	log := e.logger.With().
		Str("quote_id", quoteID).
		Str("market", string(req.Market)).
		Str("commodity", string(req.Commodity)).
		Str("segment", string(req.Segment)).
		Str("tariff_structure", string(req.TariffStructure)).
		Int("year", req.Year).
		Logger()

	bands, err := tariff.BandsForStructure(req.TariffStructure)
	if err != nil {
		return nil, err
	}
	stackWholesale, err := policyFor(req.ContractType)
	if err != nil {
		return nil, err
	}

	wholesale, err := refdata.LoadWholesaleCurve(e.settings, e.dataRoot, req.Market, req.Commodity, req.Year)
	if err != nil {
		return nil, err
	}
	shaping, err := refdata.LoadShapingAdders(e.settings, e.dataRoot, req.Market, req.Commodity, req.Year)
	if err != nil {
		return nil, err
	}
	losses, err := refdata.LoadLossFactors(e.settings, e.dataRoot, req.Market, req.Commodity, req.Segment, req.Year)
	if err != nil {
		return nil, err
	}
	chargeRows, err := refdata.LoadPassThrough(e.settings, e.dataRoot, req.Market, req.Commodity, req.Segment, req.Year)
	if err != nil {
		return nil, err
	}
	chargeLib, err := charges.NewLibrary(chargeRows)
	if err != nil {
		return nil, err
	}

	marginPct, err := e.settings.MarginFor(req.Segment)
	if err != nil {
		return nil, err
	}
	riskPct, err := e.settings.RiskFor(req.Segment)
	if err != nil {
		return nil, err
	}

	asOf := charges.ReferenceDate(req.Year)
	components := make([]tariff.Component, 0, len(bands))
	for _, band := range bands {
		wholesalePrice, ok := wholesale.Price(band)
		if !ok {
			return nil, fmt.Errorf("%w: no wholesale price for band %s", tariff.ErrNotFound, band)
		}
		// Shaping data is optional per band.
		shapingAdder, _ := shaping.Adder(band)
		lossFactor, ok := losses.Factor(band)
		if !ok {
			return nil, fmt.Errorf("%w: no loss factor for band %s", tariff.ErrNotFound, band)
		}

		sel, err := chargeLib.SelectForBand(req.Market, req.Commodity, req.Segment, req.Year, band, asOf)
		if err != nil {
			return nil, err
		}

		wholesaleUsed := stackWholesale(wholesalePrice)

		// Losses ride the traded energy component only, not the regulated
		// charges.
		energyExLosses := wholesaleUsed + shapingAdder
		lossesComponent := energyExLosses * (lossFactor - 1.0)

		subtotal := wholesaleUsed + shapingAdder + lossesComponent +
			sel.NetworkEURPerMWh + sel.LeviesEURPerMWh

		// Margin and risk are independent markups on the same subtotal,
		// not compounded on each other.
		comp := tariff.Component{
			Band:               band,
			WholesaleEURPerMWh: wholesaleUsed,
			ShapingEURPerMWh:   shapingAdder,
			LossesEURPerMWh:    lossesComponent,
			NetworkEURPerMWh:   sel.NetworkEURPerMWh,
			LeviesEURPerMWh:    sel.LeviesEURPerMWh,
			MarginEURPerMWh:    subtotal * marginPct,
			RiskEURPerMWh:      subtotal * riskPct,
		}
		components = append(components, comp)

		log.Debug().
			Str("band", string(band)).
			Float64("all_in_eur_per_mwh", comp.AllInEURPerMWh()).
			Msg("Band cost stack computed")
	}

	weightedEnergyOnlyMWh := 0.0
	weightedAllInMWh := 0.0
	for i, band := range bands {
		weight, ok := req.BandSplit[band]
		if !ok {
			return nil, fmt.Errorf("%w: band split has no share for band %s", tariff.ErrValidation, band)
		}
		weightedEnergyOnlyMWh += weight * components[i].EnergyOnlyEURPerMWh()
		weightedAllInMWh += weight * components[i].AllInEURPerMWh()
	}
	weightedEnergyOnlyKWh := weightedEnergyOnlyMWh / 1000.0
	weightedAllInKWh := weightedAllInMWh / 1000.0

	annualBillExVAT := weightedAllInKWh*req.AnnualConsumptionKWh + req.StandingChargeEURPerYear
	annualBillIncVAT := annualBillExVAT * (1.0 + req.VATRate)

	var indexedInfo *tariff.IndexedInfo
	if req.ContractType == tariff.ContractIndexed {
		// With wholesale excluded from the stack, the per-band rates already
		// are the full markup over the index.
		indexedInfo = &tariff.IndexedInfo{
			IndexName:                     tariff.DefaultIndexName,
			BandAddersEnergyOnlyEURPerMWh: make(map[tariff.TimeBand]float64, len(bands)),
			BandAddersAllInEURPerMWh:      make(map[tariff.TimeBand]float64, len(bands)),
		}
		for i, band := range bands {
			indexedInfo.BandAddersEnergyOnlyEURPerMWh[band] = components[i].EnergyOnlyEURPerMWh()
			indexedInfo.BandAddersAllInEURPerMWh[band] = components[i].AllInEURPerMWh()
		}
	}

	result := &tariff.Result{
		QuoteID:                     quoteID,
		Request:                     req,
		Components:                  components,
		WeightedEnergyOnlyEURPerKWh: weightedEnergyOnlyKWh,
		WeightedAllInEURPerKWh:      weightedAllInKWh,
		EstimatedAnnualBillExVAT:    annualBillExVAT,
		EstimatedAnnualBillIncVAT:   annualBillIncVAT,
		IndexedInfo:                 indexedInfo,
	}

	if err := sanity.AssertTariffBounds(result,
		e.settings.Sanity.MinUnitRateEURPerKWh,
		e.settings.Sanity.MaxUnitRateEURPerKWh); err != nil {
		return nil, err
	}

	log.Info().
		Float64("weighted_all_in_eur_per_kwh", weightedAllInKWh).
		Float64("annual_bill_ex_vat", annualBillExVAT).
		Msg("Tariff build complete")

	return result, nil
}
