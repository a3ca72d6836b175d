package refdata

import (
	"path/filepath"

	"github.com/allinpricing/tariffbuild/internal/config"
	"github.com/allinpricing/tariffbuild/internal/tariff"
)

// WholesaleCurve holds the per-band wholesale prices for one
// market/commodity/year slice.
type WholesaleCurve struct {
	prices map[tariff.TimeBand]float64
}

// Price returns the wholesale price for a band in EUR/MWh.
// Returns (price, true) if found, (0, false) if not found.
func (c WholesaleCurve) Price(band tariff.TimeBand) (float64, bool) {
	p, ok := c.prices[band]
	return p, ok
}

// LoadWholesaleCurve loads the wholesale curve for a market/commodity and
// filters it to one year.
func LoadWholesaleCurve(settings *config.Settings, dataRoot string, market tariff.Market, commodity tariff.Commodity, year int) (WholesaleCurve, error) {
	rel, err := settings.WholesalePath(commodity, market)
	if err != nil {
		return WholesaleCurve{}, err
	}
	t, err := readTable(filepath.Join(dataRoot, rel))
	if err != nil {
		return WholesaleCurve{}, err
	}

	curve := WholesaleCurve{prices: make(map[tariff.TimeBand]float64)}
	for _, row := range t.rows {
		y, err := t.intField(row, "year")
		if err != nil {
			return WholesaleCurve{}, err
		}
		m, err := t.field(row, "market")
		if err != nil {
			return WholesaleCurve{}, err
		}
		c, err := t.field(row, "commodity")
		if err != nil {
			return WholesaleCurve{}, err
		}
		if y != year || m != string(market) || c != string(commodity) {
			continue
		}
		bandRaw, err := t.field(row, "band")
		if err != nil {
			return WholesaleCurve{}, err
		}
		band, err := tariff.ParseTimeBand(bandRaw)
		if err != nil {
			return WholesaleCurve{}, err
		}
		price, err := t.floatField(row, "price_eur_per_mwh")
		if err != nil {
			return WholesaleCurve{}, err
		}
		curve.prices[band] = price
	}
	return curve, nil
}

// ShapingAdders holds the per-band shape cost adders for one
// market/commodity/year slice. Shaping data is optional per band.
type ShapingAdders struct {
	adders map[tariff.TimeBand]float64
}

// Adder returns the shaping adder for a band in EUR/MWh.
// Returns (adder, true) if found, (0, false) if not found.
func (s ShapingAdders) Adder(band tariff.TimeBand) (float64, bool) {
	a, ok := s.adders[band]
	return a, ok
}

// LoadShapingAdders loads and filters shaping adders for one
// market/commodity/year slice.
func LoadShapingAdders(settings *config.Settings, dataRoot string, market tariff.Market, commodity tariff.Commodity, year int) (ShapingAdders, error) {
	t, err := readTable(filepath.Join(dataRoot, settings.FilePaths.ShapingAdders))
	if err != nil {
		return ShapingAdders{}, err
	}

	adders := ShapingAdders{adders: make(map[tariff.TimeBand]float64)}
	for _, row := range t.rows {
		y, err := t.intField(row, "year")
		if err != nil {
			return ShapingAdders{}, err
		}
		m, err := t.field(row, "market")
		if err != nil {
			return ShapingAdders{}, err
		}
		c, err := t.field(row, "commodity")
		if err != nil {
			return ShapingAdders{}, err
		}
		if y != year || m != string(market) || c != string(commodity) {
			continue
		}
		bandRaw, err := t.field(row, "band")
		if err != nil {
			return ShapingAdders{}, err
		}
		band, err := tariff.ParseTimeBand(bandRaw)
		if err != nil {
			return ShapingAdders{}, err
		}
		adder, err := t.floatField(row, "adder_eur_per_mwh")
		if err != nil {
			return ShapingAdders{}, err
		}
		adders.adders[band] = adder
	}
	return adders, nil
}

// LossFactors holds the per-band loss multipliers for one
// market/commodity/segment/year slice.
type LossFactors struct {
	factors map[tariff.TimeBand]float64
}

// Factor returns the loss factor for a band.
// Returns (factor, true) if found, (0, false) if not found.
func (l LossFactors) Factor(band tariff.TimeBand) (float64, bool) {
	f, ok := l.factors[band]
	return f, ok
}

// LoadLossFactors loads and filters loss factors for one
// market/commodity/segment/year slice.
func LoadLossFactors(settings *config.Settings, dataRoot string, market tariff.Market, commodity tariff.Commodity, segment tariff.Segment, year int) (LossFactors, error) {
	t, err := readTable(filepath.Join(dataRoot, settings.FilePaths.Losses))
	if err != nil {
		return LossFactors{}, err
	}

	factors := LossFactors{factors: make(map[tariff.TimeBand]float64)}
	for _, row := range t.rows {
		y, err := t.intField(row, "year")
		if err != nil {
			return LossFactors{}, err
		}
		m, err := t.field(row, "market")
		if err != nil {
			return LossFactors{}, err
		}
		c, err := t.field(row, "commodity")
		if err != nil {
			return LossFactors{}, err
		}
		s, err := t.field(row, "segment")
		if err != nil {
			return LossFactors{}, err
		}
		if y != year || m != string(market) || c != string(commodity) || s != string(segment) {
			continue
		}
		bandRaw, err := t.field(row, "band")
		if err != nil {
			return LossFactors{}, err
		}
		band, err := tariff.ParseTimeBand(bandRaw)
		if err != nil {
			return LossFactors{}, err
		}
		factor, err := t.floatField(row, "loss_factor")
		if err != nil {
			return LossFactors{}, err
		}
		factors.factors[band] = factor
	}
	return factors, nil
}

// LoadPassThrough loads and filters pass-through charge rows for one
// market/commodity/segment/year slice. Rows with unsupported units fail
// validation; an empty filtered slice is returned silently (the charge
// library treats emptiness as a configuration defect at construction).
func LoadPassThrough(settings *config.Settings, dataRoot string, market tariff.Market, commodity tariff.Commodity, segment tariff.Segment, year int) ([]tariff.PassThroughCharge, error) {
	t, err := readTable(filepath.Join(dataRoot, settings.FilePaths.PassThrough))
	if err != nil {
		return nil, err
	}

	var charges []tariff.PassThroughCharge
	for _, row := range t.rows {
		y, err := t.intField(row, "year")
		if err != nil {
			return nil, err
		}
		region, err := t.field(row, "region")
		if err != nil {
			return nil, err
		}
		c, err := t.field(row, "commodity")
		if err != nil {
			return nil, err
		}
		s, err := t.field(row, "segment")
		if err != nil {
			return nil, err
		}
		if y != year || region != string(market) || c != string(commodity) || s != string(segment) {
			continue
		}

		charge, err := parseCharge(t, row)
		if err != nil {
			return nil, err
		}
		charges = append(charges, charge)
	}
	return charges, nil
}

func parseCharge(t *table, row []string) (tariff.PassThroughCharge, error) {
	var (
		charge tariff.PassThroughCharge
		err    error
	)

	regionRaw, err := t.field(row, "region")
	if err != nil {
		return charge, err
	}
	if charge.Region, err = tariff.ParseMarket(regionRaw); err != nil {
		return charge, err
	}
	commodityRaw, err := t.field(row, "commodity")
	if err != nil {
		return charge, err
	}
	if charge.Commodity, err = tariff.ParseCommodity(commodityRaw); err != nil {
		return charge, err
	}
	segmentRaw, err := t.field(row, "segment")
	if err != nil {
		return charge, err
	}
	if charge.Segment, err = tariff.ParseSegment(segmentRaw); err != nil {
		return charge, err
	}
	if charge.Year, err = t.intField(row, "year"); err != nil {
		return charge, err
	}
	bandRaw, err := t.field(row, "band")
	if err != nil {
		return charge, err
	}
	if charge.Band, err = tariff.ParseTimeBand(bandRaw); err != nil {
		return charge, err
	}
	chargeTypeRaw, err := t.field(row, "charge_type")
	if err != nil {
		return charge, err
	}
	if charge.ChargeType, err = tariff.ParseChargeType(chargeTypeRaw); err != nil {
		return charge, err
	}
	if charge.Name, err = t.field(row, "name"); err != nil {
		return charge, err
	}
	if charge.Unit, err = t.field(row, "unit"); err != nil {
		return charge, err
	}
	if charge.Value, err = t.floatField(row, "value"); err != nil {
		return charge, err
	}
	if charge.EffectiveFrom, err = t.dateField(row, "effective_from"); err != nil {
		return charge, err
	}
	if charge.EffectiveTo, err = t.dateField(row, "effective_to"); err != nil {
		return charge, err
	}
	if charge.Version, err = t.intField(row, "version"); err != nil {
		return charge, err
	}
	if err := charge.Validate(); err != nil {
		return charge, err
	}
	return charge, nil
}
