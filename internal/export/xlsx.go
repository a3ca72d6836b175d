package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/allinpricing/tariffbuild/internal/tariff"
)

const (
	sheetBuild    = "Tariff_Build"
	sheetStack    = "Cost_Stack_Data"
	sheetSummary  = "Quote_Summary"
	sheetMetadata = "Inputs_Metadata"
)

// WriteXLSX writes a quote workbook: the full tariff build, the long-format
// cost-stack data (the intended source for waterfall charts), a one-row
// quote summary, and a metadata sheet.
func WriteXLSX(result *tariff.Result, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetBuild)
	for _, name := range []string{sheetStack, sheetSummary, sheetMetadata} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	if err := writeBuildSheet(f, result); err != nil {
		return err
	}
	if err := writeStackSheet(f, result); err != nil {
		return err
	}
	if err := writeSummarySheet(f, result); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetMetadata, "A1", &[]interface{}{"key", "value"}); err != nil {
		return err
	}
	note := fmt.Sprintf("%s is intended as the source for Excel cost stack charts.", sheetStack)
	if err := f.SetSheetRow(sheetMetadata, "A2", &[]interface{}{"note", note}); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetMetadata, "A3", &[]interface{}{"quote_id", result.QuoteID}); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeBuildSheet(f *excelize.File, result *tariff.Result) error {
	header := make([]interface{}, len(componentHeader))
	for i, h := range componentHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetBuild, "A1", &header); err != nil {
		return err
	}
	for i, row := range ComponentRows(result) {
		cells := []interface{}{
			row.Band,
			row.WholesaleEURPerMWh,
			row.ShapingEURPerMWh,
			row.LossesEURPerMWh,
			row.NetworkEURPerMWh,
			row.LeviesEURPerMWh,
			row.MarginEURPerMWh,
			row.RiskEURPerMWh,
			row.EnergyOnlyEURPerMWh,
			row.AllInEURPerMWh,
			row.EnergyOnlyEURPerKWh,
			row.AllInEURPerKWh,
			row.AnnualConsumptionKWh,
			row.AnnualCostExVAT,
		}
		if err := f.SetSheetRow(sheetBuild, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return err
		}
	}
	return nil
}

func writeStackSheet(f *excelize.File, result *tariff.Result) error {
	if err := f.SetSheetRow(sheetStack, "A1", &[]interface{}{"band", "component", "value_eur_per_mwh"}); err != nil {
		return err
	}
	for i, row := range WaterfallRows(result) {
		cells := []interface{}{row.Band, row.Component, row.ValueEURPerMWh}
		if err := f.SetSheetRow(sheetStack, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, result *tariff.Result) error {
	req := result.Request
	header := []interface{}{
		"market", "commodity", "segment", "tariff_structure", "contract_type",
		"annual_consumption_kwh", "standing_charge_eur_per_year",
		"weighted_energy_only_eur_per_kwh", "weighted_all_in_eur_per_kwh",
		"estimated_annual_bill_ex_vat", "estimated_annual_bill_inc_vat",
	}
	if err := f.SetSheetRow(sheetSummary, "A1", &header); err != nil {
		return err
	}
	values := []interface{}{
		string(req.Market), string(req.Commodity), string(req.Segment),
		string(req.TariffStructure), string(req.ContractType),
		req.AnnualConsumptionKWh, req.StandingChargeEURPerYear,
		result.WeightedEnergyOnlyEURPerKWh, result.WeightedAllInEURPerKWh,
		result.EstimatedAnnualBillExVAT, result.EstimatedAnnualBillIncVAT,
	}
	return f.SetSheetRow(sheetSummary, "A2", &values)
}
