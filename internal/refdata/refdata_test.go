package refdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allinpricing/tariffbuild/internal/config"
	"github.com/allinpricing/tariffbuild/internal/tariff"
)

func testSettings() *config.Settings {
	return &config.Settings{
		VAT:       map[string]float64{"ROI": 0.135},
		MarginPct: map[string]float64{"SME": 0.08},
		RiskPct:   map[string]float64{"SME": 0.05},
		Sanity: config.SanityBounds{
			MinUnitRateEURPerKWh: map[string]float64{"SME": 0.02},
			MaxUnitRateEURPerKWh: map[string]float64{"SME": 0.80},
		},
		FilePaths: config.FilePaths{
			Wholesale: map[string]map[string]string{
				"ELEC": {"ROI": "wholesale_elec_roi.csv", "NI": "missing_ni.csv"},
			},
			ShapingAdders:      "shaping_adders.csv",
			Losses:             "losses.csv",
			PassThrough:        "pass_through.csv",
			CustomerArchetypes: "customer_archetypes.csv",
		},
	}
}

func TestLoadWholesaleCurve(t *testing.T) {
	curve, err := LoadWholesaleCurve(testSettings(), "testdata", tariff.MarketROI, tariff.CommodityElec, 2026)
	require.NoError(t, err)

	day, ok := curve.Price(tariff.BandDay)
	require.True(t, ok)
	assert.Equal(t, 95.5, day)

	night, ok := curve.Price(tariff.BandNight)
	require.True(t, ok)
	assert.Equal(t, 78.2, night)

	// 2025 rows and NI rows are filtered out.
	_, ok = curve.Price(tariff.BandFlat)
	assert.False(t, ok)
}

func TestLoadWholesaleCurveMissingFile(t *testing.T) {
	_, err := LoadWholesaleCurve(testSettings(), "testdata", tariff.MarketNI, tariff.CommodityElec, 2026)
	require.Error(t, err)
	assert.ErrorIs(t, err, tariff.ErrNotFound)
}

func TestLoadShapingAdders(t *testing.T) {
	adders, err := LoadShapingAdders(testSettings(), "testdata", tariff.MarketROI, tariff.CommodityElec, 2026)
	require.NoError(t, err)

	day, ok := adders.Adder(tariff.BandDay)
	require.True(t, ok)
	assert.Equal(t, 4.5, day)

	// No FLAT shaping row: the caller defaults it, not the loader.
	_, ok = adders.Adder(tariff.BandFlat)
	assert.False(t, ok)
}

func TestLoadLossFactors(t *testing.T) {
	losses, err := LoadLossFactors(testSettings(), "testdata", tariff.MarketROI, tariff.CommodityElec, tariff.SegmentSME, 2026)
	require.NoError(t, err)

	day, ok := losses.Factor(tariff.BandDay)
	require.True(t, ok)
	assert.Equal(t, 1.09, day)

	// The IC row does not leak into an SME load.
	ic, err := LoadLossFactors(testSettings(), "testdata", tariff.MarketROI, tariff.CommodityElec, tariff.SegmentIC, 2026)
	require.NoError(t, err)
	factor, ok := ic.Factor(tariff.BandDay)
	require.True(t, ok)
	assert.Equal(t, 1.06, factor)
	_, ok = ic.Factor(tariff.BandNight)
	assert.False(t, ok)
}

func TestLoadPassThrough(t *testing.T) {
	rows, err := LoadPassThrough(testSettings(), "testdata", tariff.MarketROI, tariff.CommodityElec, tariff.SegmentSME, 2026)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, tariff.ChargeNetwork, rows[0].ChargeType)
	assert.Equal(t, "DUoS", rows[0].Name)
	assert.Equal(t, 40.0, rows[0].Value)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), rows[0].EffectiveFrom)
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), rows[0].EffectiveTo)
	assert.Equal(t, 1, rows[0].Version)
}

func TestLoadPassThroughEmptySliceIsSilent(t *testing.T) {
	// Filtering to a year with no rows is not an error at the accessor
	// layer; emptiness is judged by the charge library.
	rows, err := LoadPassThrough(testSettings(), "testdata", tariff.MarketROI, tariff.CommodityElec, tariff.SegmentSME, 2030)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLoadPassThroughRejectsBadUnit(t *testing.T) {
	settings := testSettings()
	settings.FilePaths.PassThrough = "pass_through_bad_unit.csv"

	_, err := LoadPassThrough(settings, "testdata", tariff.MarketROI, tariff.CommodityElec, tariff.SegmentSME, 2026)
	require.Error(t, err)
	assert.ErrorIs(t, err, tariff.ErrValidation)
	assert.Contains(t, err.Error(), "GBP_MWH")
}

func TestGetArchetype(t *testing.T) {
	a, err := GetArchetype(testSettings(), "testdata", tariff.MarketROI, tariff.CommodityElec, tariff.SegmentSME, tariff.StructureDayNight)
	require.NoError(t, err)

	assert.Equal(t, "ROI_ELEC_SME_DN", a.ArchetypeID)
	assert.Equal(t, 45000.0, a.AnnualConsumptionKWh)
	assert.Equal(t, 300.0, a.StandingChargeEURPerYear)
	assert.Equal(t, map[tariff.TimeBand]float64{
		tariff.BandDay:   0.62,
		tariff.BandNight: 0.38,
	}, a.BandSplit)
}

func TestGetArchetypeSkipsZeroShares(t *testing.T) {
	// The flat archetype row carries explicit zeros for day/night; only the
	// flat share must survive into the band split.
	a, err := GetArchetype(testSettings(), "testdata", tariff.MarketROI, tariff.CommodityElec, tariff.SegmentSME, tariff.StructureFlat)
	require.NoError(t, err)
	assert.Equal(t, map[tariff.TimeBand]float64{tariff.BandFlat: 1.0}, a.BandSplit)
}

func TestGetArchetypeNotFound(t *testing.T) {
	_, err := GetArchetype(testSettings(), "testdata", tariff.MarketROI, tariff.CommodityElec, tariff.SegmentIC, tariff.StructurePeakOffpeak)
	require.Error(t, err)
	assert.ErrorIs(t, err, tariff.ErrNotFound)
	// The error names the full key so an analyst can fix the dataset.
	assert.Contains(t, err.Error(), "ROI/ELEC/IC/peakoffpeak")
}
