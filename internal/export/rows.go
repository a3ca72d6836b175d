// Package export renders a tariff result for downstream consumers: flattened
// component rows, long-format cost-stack rows for charts, and CSV/XLSX/PDF
// files. All rendering reads the result model only; nothing here feeds back
// into the build.
package export

import "github.com/allinpricing/tariffbuild/internal/tariff"

// ComponentRow is one band of the tariff build flattened for tabular output,
// with derived totals and the band's annual consumption and cost attached.
type ComponentRow struct {
	Band                 string  `json:"band"`
	WholesaleEURPerMWh   float64 `json:"wholesale_eur_per_mwh"`
	ShapingEURPerMWh     float64 `json:"shaping_eur_per_mwh"`
	LossesEURPerMWh      float64 `json:"losses_eur_per_mwh"`
	NetworkEURPerMWh     float64 `json:"network_eur_per_mwh"`
	LeviesEURPerMWh      float64 `json:"levies_eur_per_mwh"`
	MarginEURPerMWh      float64 `json:"margin_eur_per_mwh"`
	RiskEURPerMWh        float64 `json:"risk_eur_per_mwh"`
	EnergyOnlyEURPerMWh  float64 `json:"energy_only_eur_per_mwh"`
	AllInEURPerMWh       float64 `json:"all_in_eur_per_mwh"`
	EnergyOnlyEURPerKWh  float64 `json:"energy_only_eur_per_kwh"`
	AllInEURPerKWh       float64 `json:"all_in_eur_per_kwh"`
	AnnualConsumptionKWh float64 `json:"annual_consumption_kwh"`
	AnnualCostExVAT      float64 `json:"annual_cost_ex_vat"`
}

// ComponentRows flattens the result's components in band order.
func ComponentRows(result *tariff.Result) []ComponentRow {
	rows := make([]ComponentRow, 0, len(result.Components))
	for _, c := range result.Components {
		bandKWh := result.Request.AnnualConsumptionKWh * result.Request.BandSplit[c.Band]
		rows = append(rows, ComponentRow{
			Band:                 string(c.Band),
			WholesaleEURPerMWh:   c.WholesaleEURPerMWh,
			ShapingEURPerMWh:     c.ShapingEURPerMWh,
			LossesEURPerMWh:      c.LossesEURPerMWh,
			NetworkEURPerMWh:     c.NetworkEURPerMWh,
			LeviesEURPerMWh:      c.LeviesEURPerMWh,
			MarginEURPerMWh:      c.MarginEURPerMWh,
			RiskEURPerMWh:        c.RiskEURPerMWh,
			EnergyOnlyEURPerMWh:  c.EnergyOnlyEURPerMWh(),
			AllInEURPerMWh:       c.AllInEURPerMWh(),
			EnergyOnlyEURPerKWh:  c.EnergyOnlyEURPerKWh(),
			AllInEURPerKWh:       c.AllInEURPerKWh(),
			AnnualConsumptionKWh: bandKWh,
			AnnualCostExVAT:      c.AllInEURPerKWh() * bandKWh,
		})
	}
	return rows
}

// WaterfallRow is one (band, component, value) cell of the long-format cost
// stack, the source shape for waterfall charts.
type WaterfallRow struct {
	Band           string  `json:"band"`
	Component      string  `json:"component"`
	ValueEURPerMWh float64 `json:"value_eur_per_mwh"`
}

// WaterfallRows converts the result's components to long format, one row per
// band and cost term, in stack order.
func WaterfallRows(result *tariff.Result) []WaterfallRow {
	var rows []WaterfallRow
	for _, c := range result.Components {
		terms := []struct {
			name  string
			value float64
		}{
			{"wholesale", c.WholesaleEURPerMWh},
			{"shaping", c.ShapingEURPerMWh},
			{"losses", c.LossesEURPerMWh},
			{"network", c.NetworkEURPerMWh},
			{"levies", c.LeviesEURPerMWh},
			{"margin", c.MarginEURPerMWh},
			{"risk", c.RiskEURPerMWh},
		}
		for _, term := range terms {
			rows = append(rows, WaterfallRow{
				Band:           string(c.Band),
				Component:      term.name,
				ValueEURPerMWh: term.value,
			})
		}
	}
	return rows
}
