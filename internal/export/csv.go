package export

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/allinpricing/tariffbuild/internal/tariff"
)

var componentHeader = []string{
	"band",
	"wholesale_eur_per_mwh",
	"shaping_eur_per_mwh",
	"losses_eur_per_mwh",
	"network_eur_per_mwh",
	"levies_eur_per_mwh",
	"margin_eur_per_mwh",
	"risk_eur_per_mwh",
	"energy_only_eur_per_mwh",
	"all_in_eur_per_mwh",
	"energy_only_eur_per_kwh",
	"all_in_eur_per_kwh",
	"annual_consumption_kwh",
	"annual_cost_ex_vat",
}

// WriteCSV writes the full tariff build, one row per band, to a CSV file.
func WriteCSV(result *tariff.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(componentHeader); err != nil {
		return err
	}
	for _, row := range ComponentRows(result) {
		record := []string{
			row.Band,
			fmtFloat(row.WholesaleEURPerMWh),
			fmtFloat(row.ShapingEURPerMWh),
			fmtFloat(row.LossesEURPerMWh),
			fmtFloat(row.NetworkEURPerMWh),
			fmtFloat(row.LeviesEURPerMWh),
			fmtFloat(row.MarginEURPerMWh),
			fmtFloat(row.RiskEURPerMWh),
			fmtFloat(row.EnergyOnlyEURPerMWh),
			fmtFloat(row.AllInEURPerMWh),
			fmtFloat(row.EnergyOnlyEURPerKWh),
			fmtFloat(row.AllInEURPerKWh),
			fmtFloat(row.AnnualConsumptionKWh),
			fmtFloat(row.AnnualCostExVAT),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
