package tariff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandsForStructure(t *testing.T) {
	tests := []struct {
		name      string
		structure TariffStructure
		want      []TimeBand
		wantErr   bool
	}{
		{
			name:      "flat structure has one band",
			structure: StructureFlat,
			want:      []TimeBand{BandFlat},
		},
		{
			name:      "day-night order is day then night",
			structure: StructureDayNight,
			want:      []TimeBand{BandDay, BandNight},
		},
		{
			name:      "peak-offpeak order is peak then offpeak",
			structure: StructurePeakOffpeak,
			want:      []TimeBand{BandPeak, BandOffpeak},
		},
		{
			name:      "unknown structure fails",
			structure: TariffStructure("hourly"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BandsForStructure(tt.structure)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEnums(t *testing.T) {
	tests := []struct {
		name    string
		parse   func(string) (string, error)
		input   string
		wantErr bool
	}{
		{"valid market", wrap(ParseMarket), "ROI", false},
		{"unknown market", wrap(ParseMarket), "UK", true},
		{"valid segment", wrap(ParseSegment), "IC", false},
		{"unknown segment", wrap(ParseSegment), "RESIDENTIAL", true},
		{"valid commodity", wrap(ParseCommodity), "GAS", false},
		{"unknown commodity", wrap(ParseCommodity), "WATER", true},
		{"valid structure", wrap(ParseTariffStructure), "daynight", false},
		{"structure is case sensitive", wrap(ParseTariffStructure), "DAYNIGHT", true},
		{"valid contract", wrap(ParseContractType), "indexed", false},
		{"unknown contract", wrap(ParseContractType), "hybrid", true},
		{"valid band", wrap(ParseTimeBand), "OFFPEAK", false},
		{"unknown band", wrap(ParseTimeBand), "EVENING", true},
		{"valid charge type", wrap(ParseChargeType), "LEVY", false},
		{"unknown charge type", wrap(ParseChargeType), "TAX", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func wrap[T ~string](parse func(string) (T, error)) func(string) (string, error) {
	return func(s string) (string, error) {
		v, err := parse(s)
		return string(v), err
	}
}

func TestComponentDerivedRates(t *testing.T) {
	comp := Component{
		Band:               BandDay,
		WholesaleEURPerMWh: 95.5,
		ShapingEURPerMWh:   4.5,
		LossesEURPerMWh:    9.0,
		NetworkEURPerMWh:   35.0,
		LeviesEURPerMWh:    5.0,
		MarginEURPerMWh:    11.92,
		RiskEURPerMWh:      7.45,
	}

	assert.Equal(t, 95.5+4.5+9.0, comp.EnergyOnlyEURPerMWh())
	// All-in is exactly the sum of the seven raw terms, no hidden
	// contributions and no rounding.
	assert.Equal(t,
		comp.WholesaleEURPerMWh+comp.ShapingEURPerMWh+comp.LossesEURPerMWh+
			comp.NetworkEURPerMWh+comp.LeviesEURPerMWh+comp.MarginEURPerMWh+comp.RiskEURPerMWh,
		comp.AllInEURPerMWh())
	assert.Equal(t, comp.EnergyOnlyEURPerMWh()/1000.0, comp.EnergyOnlyEURPerKWh())
	assert.Equal(t, comp.AllInEURPerMWh()/1000.0, comp.AllInEURPerKWh())
}

func TestCustomerArchetypeValidate(t *testing.T) {
	archetype := func(split map[TimeBand]float64) CustomerArchetype {
		return CustomerArchetype{
			ArchetypeID:              "TEST",
			Name:                     "Test",
			Market:                   MarketROI,
			Commodity:                CommodityElec,
			Segment:                  SegmentSME,
			TariffStructure:          StructureDayNight,
			AnnualConsumptionKWh:     45000,
			StandingChargeEURPerYear: 300,
			BandSplit:                split,
		}
	}

	tests := []struct {
		name    string
		split   map[TimeBand]float64
		wantErr bool
	}{
		{"exact sum", map[TimeBand]float64{BandDay: 0.62, BandNight: 0.38}, false},
		{"single flat band", map[TimeBand]float64{BandFlat: 1.0}, false},
		{"within tolerance", map[TimeBand]float64{BandDay: 0.6204, BandNight: 0.38}, false},
		{"sum too low", map[TimeBand]float64{BandDay: 0.5, BandNight: 0.3}, true},
		{"sum too high", map[TimeBand]float64{BandDay: 0.7, BandNight: 0.4}, true},
		{"empty split", map[TimeBand]float64{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := archetype(tt.split).Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPassThroughChargeValidate(t *testing.T) {
	charge := PassThroughCharge{
		Region:     MarketROI,
		Commodity:  CommodityElec,
		Segment:    SegmentSME,
		Year:       2026,
		Band:       BandDay,
		ChargeType: ChargeNetwork,
		Name:       "DUoS",
		Unit:       ChargeUnitEURPerMWh,
		Value:      35.0,
	}
	assert.NoError(t, charge.Validate())

	charge.Unit = "GBP_MWH"
	err := charge.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "GBP_MWH")
}
