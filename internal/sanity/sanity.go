// Package sanity validates computed tariff results against configured
// per-segment unit-rate bounds.
package sanity

import (
	"fmt"
	"strings"

	"github.com/allinpricing/tariffbuild/internal/tariff"
)

// CheckTariffBounds compares each component's all-in EUR/kWh rate against
// the segment's configured min/max bounds and returns a warning for every
// violation. Both bounds are checked independently. Pure function, no side
// effects; the returned list may be empty.
func CheckTariffBounds(result *tariff.Result, minBounds, maxBounds map[string]float64) []string {
	seg := string(result.Request.Segment)
	minRate := minBounds[seg]
	maxRate := maxBounds[seg]

	var warnings []string
	for _, comp := range result.Components {
		rate := comp.AllInEURPerKWh()
		if rate < minRate {
			warnings = append(warnings, fmt.Sprintf(
				"%s %s: all-in %.4f EUR/kWh < configured min %.4f EUR/kWh",
				seg, comp.Band, rate, minRate))
		}
		if rate > maxRate {
			warnings = append(warnings, fmt.Sprintf(
				"%s %s: all-in %.4f EUR/kWh > configured max %.4f EUR/kWh",
				seg, comp.Band, rate, maxRate))
		}
	}
	return warnings
}

// AssertTariffBounds runs CheckTariffBounds and fails with a single error
// concatenating all findings if any bound is violated. Used as the final
// gate in the build pipeline.
func AssertTariffBounds(result *tariff.Result, minBounds, maxBounds map[string]float64) error {
	warnings := CheckTariffBounds(result, minBounds, maxBounds)
	if len(warnings) > 0 {
		return fmt.Errorf("%w: tariff out of configured bounds:\n%s",
			tariff.ErrValidation, strings.Join(warnings, "\n"))
	}
	return nil
}
