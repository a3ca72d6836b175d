package export

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/allinpricing/tariffbuild/internal/tariff"
)

// WriteQuotePDF renders a one-page quote summary with the per-band cost
// stack table.
func WriteQuotePDF(result *tariff.Result, path string) error {
	req := result.Request

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Tariff Quote")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Quote: %s", result.QuoteID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Market: %s  Commodity: %s  Segment: %s", req.Market, req.Commodity, req.Segment))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Tariff: %s  Contract: %s  Year: %d", req.TariffStructure, req.ContractType, req.Year))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Annual consumption: %.0f kWh", req.AnnualConsumptionKWh))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Standing charge: %.2f EUR/year", req.StandingChargeEURPerYear))
	pdf.Ln(8)

	pdf.Cell(0, 6, fmt.Sprintf("Weighted energy-only rate: %.5f EUR/kWh", result.WeightedEnergyOnlyEURPerKWh))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Weighted all-in rate: %.5f EUR/kWh", result.WeightedAllInEURPerKWh))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Estimated annual bill (ex VAT): %.2f EUR", result.EstimatedAnnualBillExVAT))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Estimated annual bill (inc VAT): %.2f EUR", result.EstimatedAnnualBillIncVAT))
	pdf.Ln(8)

	// Cost stack table
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(22, 6, "Band", "1", 0, "C", false, 0, "")
	for _, h := range []string{"Wholesale", "Shaping", "Losses", "Network", "Levies", "Margin", "Risk", "All-in"} {
		pdf.CellFormat(20, 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, c := range result.Components {
		pdf.CellFormat(22, 6, string(c.Band), "1", 0, "C", false, 0, "")
		for _, v := range []float64{
			c.WholesaleEURPerMWh, c.ShapingEURPerMWh, c.LossesEURPerMWh,
			c.NetworkEURPerMWh, c.LeviesEURPerMWh, c.MarginEURPerMWh,
			c.RiskEURPerMWh, c.AllInEURPerMWh(),
		} {
			pdf.CellFormat(20, 6, fmt.Sprintf("%.2f", v), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if result.IndexedInfo != nil {
		pdf.Ln(4)
		pdf.Cell(0, 6, fmt.Sprintf("Indexed product: adders over %s in EUR/MWh", result.IndexedInfo.IndexName))
		pdf.Ln(5)
		for _, c := range result.Components {
			adder := result.IndexedInfo.BandAddersAllInEURPerMWh[c.Band]
			pdf.Cell(0, 6, fmt.Sprintf("  %s: INDEX + %.2f EUR/MWh all-in", c.Band, adder))
			pdf.Ln(5)
		}
	}

	return pdf.OutputFileAndClose(path)
}
