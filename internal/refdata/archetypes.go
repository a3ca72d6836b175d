package refdata

import (
	"fmt"
	"path/filepath"

	"github.com/allinpricing/tariffbuild/internal/config"
	"github.com/allinpricing/tariffbuild/internal/tariff"
)

// shareColumns maps archetype CSV share columns to the band they populate.
// Only bands with a present, non-zero share end up in the band split.
var shareColumns = []struct {
	col  string
	band tariff.TimeBand
}{
	{"flat_share", tariff.BandFlat},
	{"day_share", tariff.BandDay},
	{"night_share", tariff.BandNight},
	{"peak_share", tariff.BandPeak},
	{"offpeak_share", tariff.BandOffpeak},
}

// GetArchetype looks up the representative customer profile for a
// (market, commodity, segment, tariff structure) key. Unlike the other
// accessors, a miss here is an explicit error naming the key: a build
// started from an archetype cannot proceed without one.
func GetArchetype(settings *config.Settings, dataRoot string, market tariff.Market, commodity tariff.Commodity, segment tariff.Segment, structure tariff.TariffStructure) (tariff.CustomerArchetype, error) {
	t, err := readTable(filepath.Join(dataRoot, settings.FilePaths.CustomerArchetypes))
	if err != nil {
		return tariff.CustomerArchetype{}, err
	}

	for _, row := range t.rows {
		m, err := t.field(row, "market")
		if err != nil {
			return tariff.CustomerArchetype{}, err
		}
		c, err := t.field(row, "commodity")
		if err != nil {
			return tariff.CustomerArchetype{}, err
		}
		s, err := t.field(row, "segment")
		if err != nil {
			return tariff.CustomerArchetype{}, err
		}
		ts, err := t.field(row, "tariff_structure")
		if err != nil {
			return tariff.CustomerArchetype{}, err
		}
		if m != string(market) || c != string(commodity) || s != string(segment) || ts != string(structure) {
			continue
		}
		return parseArchetype(t, row)
	}

	return tariff.CustomerArchetype{}, fmt.Errorf("%w: no archetype for %s/%s/%s/%s",
		tariff.ErrNotFound, market, commodity, segment, structure)
}

func parseArchetype(t *table, row []string) (tariff.CustomerArchetype, error) {
	var a tariff.CustomerArchetype
	var err error

	if a.ArchetypeID, err = t.field(row, "archetype_id"); err != nil {
		return a, err
	}
	if a.Name, err = t.field(row, "name"); err != nil {
		return a, err
	}
	marketRaw, err := t.field(row, "market")
	if err != nil {
		return a, err
	}
	if a.Market, err = tariff.ParseMarket(marketRaw); err != nil {
		return a, err
	}
	commodityRaw, err := t.field(row, "commodity")
	if err != nil {
		return a, err
	}
	if a.Commodity, err = tariff.ParseCommodity(commodityRaw); err != nil {
		return a, err
	}
	segmentRaw, err := t.field(row, "segment")
	if err != nil {
		return a, err
	}
	if a.Segment, err = tariff.ParseSegment(segmentRaw); err != nil {
		return a, err
	}
	structureRaw, err := t.field(row, "tariff_structure")
	if err != nil {
		return a, err
	}
	if a.TariffStructure, err = tariff.ParseTariffStructure(structureRaw); err != nil {
		return a, err
	}
	if a.AnnualConsumptionKWh, err = t.floatField(row, "annual_consumption_kwh"); err != nil {
		return a, err
	}
	if a.StandingChargeEURPerYear, err = t.floatField(row, "standing_charge_eur_per_year"); err != nil {
		return a, err
	}

	a.BandSplit = make(map[tariff.TimeBand]float64)
	for _, sc := range shareColumns {
		raw, err := t.field(row, sc.col)
		if err != nil {
			return a, err
		}
		if raw == "" {
			continue
		}
		share, err := t.floatField(row, sc.col)
		if err != nil {
			return a, err
		}
		if share != 0 {
			a.BandSplit[sc.band] = share
		}
	}

	if err := a.Validate(); err != nil {
		return a, err
	}
	return a, nil
}
