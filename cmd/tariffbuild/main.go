// Command tariffbuild builds one all-in tariff quote from published
// reference data plus an archetype consumption profile, prints a summary,
// and optionally exports the build to CSV, XLSX, PDF, or JSON.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/allinpricing/tariffbuild/internal/charges"
	"github.com/allinpricing/tariffbuild/internal/engine"
	"github.com/allinpricing/tariffbuild/internal/export"
	"github.com/allinpricing/tariffbuild/internal/refdata"
	"github.com/allinpricing/tariffbuild/internal/tariff"
)

// Config holds the parsed command-line settings for one build.
type Config struct {
	Market     string
	Commodity  string
	Segment    string
	Tariff     string
	Contract   string
	Year       int
	ConfigPath string
	DataRoot   string
	OutputCSV  string
	OutputXLSX string
	OutputPDF  string
	OutputJSON string
	ExcludeVAT bool
	CheckData  bool
	Verbose    bool
}

func parseConfig() *Config {
	config := &Config{}

	flag.StringVar(&config.Market, "market", "", "Market (ROI or NI)")
	flag.StringVar(&config.Commodity, "commodity", string(tariff.CommodityElec), "Commodity (ELEC or GAS)")
	flag.StringVar(&config.Segment, "segment", "", "Customer segment (SME or IC)")
	flag.StringVar(&config.Tariff, "tariff", "", "Tariff structure (flat, daynight, peakoffpeak)")
	flag.StringVar(&config.Contract, "contract", string(tariff.ContractFixed), "Contract type (fixed or indexed)")
	flag.IntVar(&config.Year, "year", 0, "Delivery year")
	flag.StringVar(&config.ConfigPath, "config", "config/base.yaml", "Path to YAML settings file")
	flag.StringVar(&config.DataRoot, "data-root", ".", "Root directory for reference-data files")
	flag.StringVar(&config.OutputCSV, "output-csv", "", "Write the tariff build to a CSV file")
	flag.StringVar(&config.OutputXLSX, "output-xlsx", "", "Write the quote workbook to an XLSX file")
	flag.StringVar(&config.OutputPDF, "output-pdf", "", "Write the quote summary to a PDF file")
	flag.StringVar(&config.OutputJSON, "output-json", "", "Write the full result to a JSON file")
	flag.BoolVar(&config.ExcludeVAT, "exclude-vat", false, "Estimate the bill ex-VAT only")
	flag.BoolVar(&config.CheckData, "check-data", false, "Run pass-through charge diagnostics before building")
	flag.BoolVar(&config.Verbose, "v", false, "Enable debug logging")

	flag.Parse()

	return config
}

func main() {
	cfg := parseConfig()

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("Tariff build failed")
	}
}

func run(cfg *Config, logger zerolog.Logger) error {
	market, err := tariff.ParseMarket(cfg.Market)
	if err != nil {
		return err
	}
	commodity, err := tariff.ParseCommodity(cfg.Commodity)
	if err != nil {
		return err
	}
	segment, err := tariff.ParseSegment(cfg.Segment)
	if err != nil {
		return err
	}
	structure, err := tariff.ParseTariffStructure(cfg.Tariff)
	if err != nil {
		return err
	}
	contract, err := tariff.ParseContractType(cfg.Contract)
	if err != nil {
		return err
	}
	if cfg.Year == 0 {
		return fmt.Errorf("%w: -year is required", tariff.ErrValidation)
	}

	eng, err := engine.FromConfig(cfg.ConfigPath, cfg.DataRoot, logger)
	if err != nil {
		return err
	}

	if cfg.CheckData {
		if err := checkData(eng, cfg.DataRoot, market, commodity, segment, cfg.Year, logger); err != nil {
			return err
		}
	}

	result, err := eng.BuildTariffFromArchetype(market, commodity, segment, structure, cfg.Year, contract, !cfg.ExcludeVAT)
	if err != nil {
		return err
	}

	printSummary(result)

	if cfg.OutputCSV != "" {
		if err := export.WriteCSV(result, cfg.OutputCSV); err != nil {
			return err
		}
		fmt.Printf("\nTariff build exported to CSV: %s\n", absPath(cfg.OutputCSV))
	}
	if cfg.OutputXLSX != "" {
		if err := export.WriteXLSX(result, cfg.OutputXLSX); err != nil {
			return err
		}
		fmt.Printf("Quote workbook exported to: %s\n", absPath(cfg.OutputXLSX))
	}
	if cfg.OutputPDF != "" {
		if err := export.WriteQuotePDF(result, cfg.OutputPDF); err != nil {
			return err
		}
		fmt.Printf("Quote PDF exported to: %s\n", absPath(cfg.OutputPDF))
	}
	if cfg.OutputJSON != "" {
		if err := writeJSON(result, cfg.OutputJSON); err != nil {
			return err
		}
		fmt.Printf("Result exported to JSON: %s\n", absPath(cfg.OutputJSON))
	}

	return nil
}

// checkData runs the diagnostic passes over the pass-through charge slice
// the build will use. Findings are logged, not fatal: overlaps and large
// step changes are for the analyst to resolve in the source data.
func checkData(eng *engine.Engine, dataRoot string, market tariff.Market, commodity tariff.Commodity, segment tariff.Segment, year int, logger zerolog.Logger) error {
	rows, err := refdata.LoadPassThrough(eng.Settings(), dataRoot, market, commodity, segment, year)
	if err != nil {
		return err
	}
	lib, err := charges.NewLibrary(rows)
	if err != nil {
		return err
	}

	for _, overlap := range lib.FindOverlaps() {
		logger.Error().Msg(overlap)
	}
	for _, warning := range lib.DetectLargeChanges(0.2) {
		logger.Warn().Msg(warning)
	}
	return nil
}

func printSummary(result *tariff.Result) {
	req := result.Request

	fmt.Println("=== Tariff Quote Summary ===")
	fmt.Printf("Market: %s, Commodity: %s, Segment: %s, Tariff: %s, Contract: %s\n",
		req.Market, req.Commodity, req.Segment, req.TariffStructure, req.ContractType)
	fmt.Printf("Annual consumption: %.0f kWh\n", req.AnnualConsumptionKWh)
	fmt.Printf("Standing charge: EUR %.2f/year\n", req.StandingChargeEURPerYear)
	fmt.Printf("Weighted energy-only rate: %.5f EUR/kWh\n", result.WeightedEnergyOnlyEURPerKWh)
	fmt.Printf("Weighted all-in rate:      %.5f EUR/kWh\n", result.WeightedAllInEURPerKWh)
	fmt.Printf("Estimated annual bill (ex VAT): EUR %.2f\n", result.EstimatedAnnualBillExVAT)
	fmt.Printf("Estimated annual bill (inc VAT): EUR %.2f\n", result.EstimatedAnnualBillIncVAT)

	if result.IndexedInfo != nil {
		fmt.Printf("\nIndexed product structure (adders vs %s in EUR/MWh):\n", result.IndexedInfo.IndexName)
		for _, comp := range result.Components {
			adder := result.IndexedInfo.BandAddersAllInEURPerMWh[comp.Band]
			fmt.Printf("  %s: INDEX + %.2f EUR/MWh all-in\n", comp.Band, adder)
		}
	}
}

func writeJSON(result *tariff.Result, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
