// Package config loads the YAML settings the tariff engine consumes:
// VAT rates, margin/risk percentages, sanity bounds, and the mapping from
// logical dataset names to reference-data file paths.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/allinpricing/tariffbuild/internal/tariff"
)

// SanityBounds holds per-segment min/max all-in unit-rate bounds in EUR/kWh.
type SanityBounds struct {
	MinUnitRateEURPerKWh map[string]float64 `yaml:"min_unit_rate_eur_per_kwh"`
	MaxUnitRateEURPerKWh map[string]float64 `yaml:"max_unit_rate_eur_per_kwh"`
}

// FilePaths maps logical dataset names to file paths relative to the data
// root. Wholesale curves are split per commodity and market.
type FilePaths struct {
	Wholesale          map[string]map[string]string `yaml:"wholesale"`
	ShapingAdders      string                       `yaml:"shaping_adders"`
	Losses             string                       `yaml:"losses"`
	PassThrough        string                       `yaml:"pass_through"`
	CustomerArchetypes string                       `yaml:"customer_archetypes"`
}

// Settings is the on-disk configuration shape (YAML).
type Settings struct {
	VAT       map[string]float64 `yaml:"vat"`
	MarginPct map[string]float64 `yaml:"margin_pct"`
	RiskPct   map[string]float64 `yaml:"risk_pct"`
	Sanity    SanityBounds       `yaml:"sanity"`
	FilePaths FilePaths          `yaml:"file_paths"`
}

// Load reads and validates settings from a YAML file.
func Load(path string) (*Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read settings %s: %v", tariff.ErrConfig, path, err)
	}
	var s Settings
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: parse settings %s: %v", tariff.ErrConfig, path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every section the engine depends on is present.
func (s *Settings) Validate() error {
	if len(s.VAT) == 0 {
		return fmt.Errorf("%w: vat section is empty", tariff.ErrConfig)
	}
	if len(s.MarginPct) == 0 {
		return fmt.Errorf("%w: margin_pct section is empty", tariff.ErrConfig)
	}
	if len(s.RiskPct) == 0 {
		return fmt.Errorf("%w: risk_pct section is empty", tariff.ErrConfig)
	}
	if len(s.Sanity.MinUnitRateEURPerKWh) == 0 || len(s.Sanity.MaxUnitRateEURPerKWh) == 0 {
		return fmt.Errorf("%w: sanity bounds are incomplete", tariff.ErrConfig)
	}
	fp := s.FilePaths
	if len(fp.Wholesale) == 0 || fp.ShapingAdders == "" || fp.Losses == "" ||
		fp.PassThrough == "" || fp.CustomerArchetypes == "" {
		return fmt.Errorf("%w: file_paths section is incomplete", tariff.ErrConfig)
	}
	return nil
}

// VATRate returns the configured VAT rate for a market.
func (s *Settings) VATRate(market tariff.Market) (float64, error) {
	rate, ok := s.VAT[string(market)]
	if !ok {
		return 0, fmt.Errorf("%w: no VAT rate configured for market %s", tariff.ErrConfig, market)
	}
	return rate, nil
}

// MarginFor returns the configured margin percentage for a segment.
func (s *Settings) MarginFor(segment tariff.Segment) (float64, error) {
	pct, ok := s.MarginPct[string(segment)]
	if !ok {
		return 0, fmt.Errorf("%w: no margin_pct configured for segment %s", tariff.ErrConfig, segment)
	}
	return pct, nil
}

// RiskFor returns the configured risk percentage for a segment.
func (s *Settings) RiskFor(segment tariff.Segment) (float64, error) {
	pct, ok := s.RiskPct[string(segment)]
	if !ok {
		return 0, fmt.Errorf("%w: no risk_pct configured for segment %s", tariff.ErrConfig, segment)
	}
	return pct, nil
}

// WholesalePath returns the wholesale-curve path for a commodity and market.
func (s *Settings) WholesalePath(commodity tariff.Commodity, market tariff.Market) (string, error) {
	byMarket, ok := s.FilePaths.Wholesale[string(commodity)]
	if !ok {
		return "", fmt.Errorf("%w: no wholesale path for commodity %s", tariff.ErrConfig, commodity)
	}
	rel, ok := byMarket[string(market)]
	if !ok {
		return "", fmt.Errorf("%w: no wholesale path for %s/%s", tariff.ErrConfig, commodity, market)
	}
	return rel, nil
}
