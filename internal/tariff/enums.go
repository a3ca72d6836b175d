// Package tariff defines the domain model for all-in tariff quotes:
// the closed enumerations, reference-data row types, and the immutable
// request/component/result structures passed between the build engine
// and its callers.
package tariff

import "fmt"

// Market identifies a retail electricity/gas market.
type Market string

const (
	MarketROI Market = "ROI"
	MarketNI  Market = "NI"
)

// Segment identifies a customer segment.
type Segment string

const (
	SegmentSME Segment = "SME"
	SegmentIC  Segment = "IC" // Industrial & Commercial
)

// Commodity identifies the traded energy commodity.
type Commodity string

const (
	CommodityElec Commodity = "ELEC"
	CommodityGas  Commodity = "GAS"
)

// TariffStructure identifies the time-of-use layout of a tariff.
type TariffStructure string

const (
	StructureFlat        TariffStructure = "flat"
	StructureDayNight    TariffStructure = "daynight"
	StructurePeakOffpeak TariffStructure = "peakoffpeak"
)

// ContractType distinguishes fully-fixed pricing from index-plus-adder pricing.
type ContractType string

const (
	ContractFixed   ContractType = "fixed"
	ContractIndexed ContractType = "indexed"
)

// TimeBand is a time-of-use period with its own cost stack.
type TimeBand string

const (
	BandFlat    TimeBand = "FLAT"
	BandDay     TimeBand = "DAY"
	BandNight   TimeBand = "NIGHT"
	BandPeak    TimeBand = "PEAK"
	BandOffpeak TimeBand = "OFFPEAK"
)

// ChargeType classifies a pass-through charge row.
type ChargeType string

const (
	ChargeNetwork ChargeType = "NETWORK"
	ChargeLevy    ChargeType = "LEVY"
)

// BandsForStructure returns the ordered set of time bands that apply to a
// tariff structure. The engine iterates exactly these bands, in this order.
func BandsForStructure(ts TariffStructure) ([]TimeBand, error) {
	switch ts {
	case StructureFlat:
		return []TimeBand{BandFlat}, nil
	case StructureDayNight:
		return []TimeBand{BandDay, BandNight}, nil
	case StructurePeakOffpeak:
		return []TimeBand{BandPeak, BandOffpeak}, nil
	default:
		return nil, fmt.Errorf("%w: unknown tariff structure %q", ErrValidation, string(ts))
	}
}

// ParseMarket converts a string to a Market, failing on unknown values.
func ParseMarket(s string) (Market, error) {
	switch Market(s) {
	case MarketROI, MarketNI:
		return Market(s), nil
	}
	return "", fmt.Errorf("%w: unknown market %q", ErrValidation, s)
}

// ParseSegment converts a string to a Segment, failing on unknown values.
func ParseSegment(s string) (Segment, error) {
	switch Segment(s) {
	case SegmentSME, SegmentIC:
		return Segment(s), nil
	}
	return "", fmt.Errorf("%w: unknown segment %q", ErrValidation, s)
}

// ParseCommodity converts a string to a Commodity, failing on unknown values.
func ParseCommodity(s string) (Commodity, error) {
	switch Commodity(s) {
	case CommodityElec, CommodityGas:
		return Commodity(s), nil
	}
	return "", fmt.Errorf("%w: unknown commodity %q", ErrValidation, s)
}

// ParseTariffStructure converts a string to a TariffStructure, failing on
// unknown values.
func ParseTariffStructure(s string) (TariffStructure, error) {
	switch TariffStructure(s) {
	case StructureFlat, StructureDayNight, StructurePeakOffpeak:
		return TariffStructure(s), nil
	}
	return "", fmt.Errorf("%w: unknown tariff structure %q", ErrValidation, s)
}

// ParseContractType converts a string to a ContractType, failing on unknown
// values.
func ParseContractType(s string) (ContractType, error) {
	switch ContractType(s) {
	case ContractFixed, ContractIndexed:
		return ContractType(s), nil
	}
	return "", fmt.Errorf("%w: unknown contract type %q", ErrValidation, s)
}

// ParseTimeBand converts a string to a TimeBand, failing on unknown values.
func ParseTimeBand(s string) (TimeBand, error) {
	switch TimeBand(s) {
	case BandFlat, BandDay, BandNight, BandPeak, BandOffpeak:
		return TimeBand(s), nil
	}
	return "", fmt.Errorf("%w: unknown time band %q", ErrValidation, s)
}

// ParseChargeType converts a string to a ChargeType, failing on unknown
// values.
func ParseChargeType(s string) (ChargeType, error) {
	switch ChargeType(s) {
	case ChargeNetwork, ChargeLevy:
		return ChargeType(s), nil
	}
	return "", fmt.Errorf("%w: unknown charge type %q", ErrValidation, s)
}
