package tariff

import (
	"fmt"
	"time"
)

// WholesalePrice is one row of the wholesale price curve in EUR/MWh.
type WholesalePrice struct {
	Market         Market    `json:"market"`
	Commodity      Commodity `json:"commodity"`
	Year           int       `json:"year"`
	Band           TimeBand  `json:"band"`
	PriceEURPerMWh float64   `json:"price_eur_per_mwh"`
}

// ShapingAdder is the shape cost adder vs baseload for one band, in EUR/MWh.
type ShapingAdder struct {
	Market         Market    `json:"market"`
	Commodity      Commodity `json:"commodity"`
	Year           int       `json:"year"`
	Band           TimeBand  `json:"band"`
	AdderEURPerMWh float64   `json:"adder_eur_per_mwh"`
}

// LossFactor is the distribution/transmission loss multiplier (>= 1.0)
// applied to wholesale plus shaping for one band.
type LossFactor struct {
	Market     Market    `json:"market"`
	Commodity  Commodity `json:"commodity"`
	Segment    Segment   `json:"segment"`
	Year       int       `json:"year"`
	Band       TimeBand  `json:"band"`
	LossFactor float64   `json:"loss_factor"`
}

// ChargeUnitEURPerMWh is the only pass-through charge unit supported.
const ChargeUnitEURPerMWh = "EUR_MWH"

// PassThroughCharge is a single versioned, date-ranged network or levy
// charge row. Multiple versions of the same logical charge (same
// region/commodity/segment/year/band/charge_type/name) may coexist with
// non-overlapping effective ranges.
type PassThroughCharge struct {
	Region        Market     `json:"region"`
	Commodity     Commodity  `json:"commodity"`
	Segment       Segment    `json:"segment"`
	Year          int        `json:"year"`
	Band          TimeBand   `json:"band"`
	ChargeType    ChargeType `json:"charge_type"`
	Name          string     `json:"name"`
	Unit          string     `json:"unit"`
	Value         float64    `json:"value"`
	EffectiveFrom time.Time  `json:"effective_from"`
	EffectiveTo   time.Time  `json:"effective_to"`
	Version       int        `json:"version"`
}

// Validate checks the charge unit. Only EUR_MWH rows are supported.
func (c PassThroughCharge) Validate() error {
	if c.Unit != ChargeUnitEURPerMWh {
		return fmt.Errorf("%w: unsupported pass-through unit %q for charge %q (only %s)",
			ErrValidation, c.Unit, c.Name, ChargeUnitEURPerMWh)
	}
	return nil
}

// CustomerArchetype is a representative customer profile used as the default
// input for a tariff build. Loaded once per build from reference data and
// never mutated.
type CustomerArchetype struct {
	ArchetypeID              string               `json:"archetype_id"`
	Name                     string               `json:"name"`
	Market                   Market               `json:"market"`
	Commodity                Commodity            `json:"commodity"`
	Segment                  Segment              `json:"segment"`
	TariffStructure          TariffStructure      `json:"tariff_structure"`
	AnnualConsumptionKWh     float64              `json:"annual_consumption_kwh"`
	StandingChargeEURPerYear float64              `json:"standing_charge_eur_per_year"`
	BandSplit                map[TimeBand]float64 `json:"band_split"`
}

// Validate checks that the band split shares sum to 1.0 within tolerance.
func (a CustomerArchetype) Validate() error {
	total := 0.0
	for _, share := range a.BandSplit {
		total += share
	}
	if total < 0.999 || total > 1.001 {
		return fmt.Errorf("%w: archetype %s band split must sum to 1.0, got %g",
			ErrValidation, a.ArchetypeID, total)
	}
	return nil
}
