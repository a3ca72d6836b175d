package sanity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allinpricing/tariffbuild/internal/tariff"
)

// resultWithRates builds a minimal SME result whose components have the
// given all-in EUR/MWh rates, loaded entirely into the wholesale term.
func resultWithRates(ratesEURPerMWh ...float64) *tariff.Result {
	res := &tariff.Result{
		Request: tariff.Request{Segment: tariff.SegmentSME},
	}
	bands := []tariff.TimeBand{tariff.BandDay, tariff.BandNight}
	for i, rate := range ratesEURPerMWh {
		res.Components = append(res.Components, tariff.Component{
			Band:               bands[i%len(bands)],
			WholesaleEURPerMWh: rate,
		})
	}
	return res
}

var (
	minBounds = map[string]float64{"SME": 0.05, "IC": 0.04}
	maxBounds = map[string]float64{"SME": 0.80, "IC": 0.60}
)

func TestCheckTariffBounds(t *testing.T) {
	tests := []struct {
		name         string
		rates        []float64 // EUR/MWh
		wantWarnings int
	}{
		{"all within bounds", []float64{150, 120}, 0},
		{"one below min", []float64{40, 120}, 1},
		{"one above max", []float64{900, 120}, 1},
		{"both components violate", []float64{40, 900}, 2},
		{"boundary rates pass", []float64{50, 800}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := CheckTariffBounds(resultWithRates(tt.rates...), minBounds, maxBounds)
			assert.Len(t, warnings, tt.wantWarnings)
		})
	}
}

func TestCheckTariffBoundsMessages(t *testing.T) {
	warnings := CheckTariffBounds(resultWithRates(40, 900), minBounds, maxBounds)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "SME DAY")
	assert.Contains(t, warnings[0], "< configured min")
	assert.Contains(t, warnings[1], "SME NIGHT")
	assert.Contains(t, warnings[1], "> configured max")
}

func TestAssertTariffBounds(t *testing.T) {
	assert.NoError(t, AssertTariffBounds(resultWithRates(150, 120), minBounds, maxBounds))

	err := AssertTariffBounds(resultWithRates(40, 900), minBounds, maxBounds)
	require.Error(t, err)
	assert.ErrorIs(t, err, tariff.ErrValidation)
	// Every finding lands in the single error message.
	assert.Contains(t, err.Error(), "DAY")
	assert.Contains(t, err.Error(), "NIGHT")
}
