// Package charges resolves pass-through network and levy charges for a
// tariff band from versioned, date-ranged charge rows, and provides
// diagnostics over the charge table (date-range overlaps, large step
// changes between versions).
package charges

import (
	"fmt"
	"sort"
	"time"

	"github.com/allinpricing/tariffbuild/internal/tariff"
)

// Selection is the resolved pass-through total for one band as of a date:
// the NETWORK and LEVY sums plus the raw rows that produced them.
type Selection struct {
	NetworkEURPerMWh float64
	LeviesEURPerMWh  float64
	Rows             []tariff.PassThroughCharge
}

// Library holds the pass-through charge rows for one
// market/commodity/segment/year slice.
type Library struct {
	rows []tariff.PassThroughCharge
}

// NewLibrary constructs a charge library. An empty table is a configuration
// defect, not a zero-charge result.
func NewLibrary(rows []tariff.PassThroughCharge) (*Library, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: pass-through charge dataset is empty for requested slice",
			tariff.ErrEmptyDataset)
	}
	return &Library{rows: rows}, nil
}

// ReferenceDate returns the fixed mid-year date used to represent an
// annualized charge level for a build year.
func ReferenceDate(year int) time.Time {
	return time.Date(year, time.June, 30, 0, 0, 0, 0, time.UTC)
}

// SelectForBand resolves the NETWORK and LEVY totals for a band as of a
// date. A zero asOf defaults to June 30 of the year. Multiple
// simultaneously-effective charges of the same type are additive.
func (l *Library) SelectForBand(region tariff.Market, commodity tariff.Commodity, segment tariff.Segment, year int, band tariff.TimeBand, asOf time.Time) (Selection, error) {
	if asOf.IsZero() {
		asOf = ReferenceDate(year)
	}

	var sel Selection
	for _, row := range l.rows {
		if row.Region != region || row.Commodity != commodity || row.Segment != segment ||
			row.Year != year || row.Band != band {
			continue
		}
		if asOf.Before(row.EffectiveFrom) || asOf.After(row.EffectiveTo) {
			continue
		}
		switch row.ChargeType {
		case tariff.ChargeNetwork:
			sel.NetworkEURPerMWh += row.Value
		case tariff.ChargeLevy:
			sel.LeviesEURPerMWh += row.Value
		}
		sel.Rows = append(sel.Rows, row)
	}

	if len(sel.Rows) == 0 {
		return Selection{}, fmt.Errorf("%w: no pass-through charges for band %s @ %s %d",
			tariff.ErrNotFound, band, region, year)
	}
	return sel, nil
}

// chargeKey is the logical identity of a charge: every version of the same
// charge shares one key.
type chargeKey struct {
	Region     tariff.Market
	Commodity  tariff.Commodity
	Segment    tariff.Segment
	Year       int
	Band       tariff.TimeBand
	ChargeType tariff.ChargeType
	Name       string
}

func (k chargeKey) String() string {
	return fmt.Sprintf("%s/%s/%s/%d/%s/%s/%s",
		k.Region, k.Commodity, k.Segment, k.Year, k.Band, k.ChargeType, k.Name)
}

// grouped returns the rows per logical charge, each group sorted by
// effective_from, with group keys in deterministic order.
func (l *Library) grouped() ([]chargeKey, map[chargeKey][]tariff.PassThroughCharge) {
	groups := make(map[chargeKey][]tariff.PassThroughCharge)
	var keys []chargeKey
	for _, row := range l.rows {
		k := chargeKey{row.Region, row.Commodity, row.Segment, row.Year, row.Band, row.ChargeType, row.Name}
		if _, seen := groups[k]; !seen {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], row)
	}
	for _, rows := range groups {
		sort.Slice(rows, func(i, j int) bool {
			return rows[i].EffectiveFrom.Before(rows[j].EffectiveFrom)
		})
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys, groups
}

// FindOverlaps reports a description for every row whose effective range
// overlaps the prior version of the same logical charge. Purely diagnostic:
// the data is not mutated or repaired.
func (l *Library) FindOverlaps() []string {
	var errs []string
	keys, groups := l.grouped()
	for _, key := range keys {
		var prevEnd time.Time
		for i, row := range groups[key] {
			if i > 0 && !row.EffectiveFrom.After(prevEnd) {
				errs = append(errs, fmt.Sprintf("Overlap for %s between %s and %s (version %d)",
					key, prevEnd.Format("2006-01-02"), row.EffectiveFrom.Format("2006-01-02"), row.Version))
			}
			prevEnd = row.EffectiveTo
		}
	}
	return errs
}

// DetectLargeChanges flags consecutive versions of the same logical charge
// whose relative value change exceeds thresholdPct. The comparison is
// skipped when the prior value is exactly zero. Purely diagnostic.
func (l *Library) DetectLargeChanges(thresholdPct float64) []string {
	var warnings []string
	keys, groups := l.grouped()
	for _, key := range keys {
		var prev *tariff.PassThroughCharge
		for i := range groups[key] {
			row := groups[key][i]
			if prev != nil && prev.Value != 0 {
				change := abs(row.Value-prev.Value) / abs(prev.Value)
				if change > thresholdPct {
					warnings = append(warnings, fmt.Sprintf("Large change for %s: v%d=%g -> v%d=%g (%.0f%%)",
						key, prev.Version, prev.Value, row.Version, row.Value, change*100))
				}
			}
			prev = &groups[key][i]
		}
	}
	return warnings
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
