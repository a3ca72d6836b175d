package tariff

// Request is the full set of inputs to one tariff build. It is constructed
// either directly by the caller or derived from a CustomerArchetype plus a
// VAT lookup, and is immutable once constructed.
type Request struct {
	Market                   Market               `json:"market"`
	Commodity                Commodity            `json:"commodity"`
	Segment                  Segment              `json:"segment"`
	TariffStructure          TariffStructure      `json:"tariff_structure"`
	Year                     int                  `json:"year"`
	ContractType             ContractType         `json:"contract_type"`
	AnnualConsumptionKWh     float64              `json:"annual_consumption_kwh"`
	StandingChargeEURPerYear float64              `json:"standing_charge_eur_per_year"`
	BandSplit                map[TimeBand]float64 `json:"band_split"`
	VATRate                  float64              `json:"vat_rate"`
}

// Component is one band's cost-stack breakdown. All seven raw terms are in
// EUR/MWh; the derived totals are the plain sum of the raw terms with no
// hidden contributions.
type Component struct {
	Band               TimeBand `json:"band"`
	WholesaleEURPerMWh float64  `json:"wholesale_eur_per_mwh"`
	ShapingEURPerMWh   float64  `json:"shaping_eur_per_mwh"`
	LossesEURPerMWh    float64  `json:"losses_eur_per_mwh"`
	NetworkEURPerMWh   float64  `json:"network_eur_per_mwh"`
	LeviesEURPerMWh    float64  `json:"levies_eur_per_mwh"`
	MarginEURPerMWh    float64  `json:"margin_eur_per_mwh"`
	RiskEURPerMWh      float64  `json:"risk_eur_per_mwh"`
}

// EnergyOnlyEURPerMWh returns wholesale + shaping + losses.
func (c Component) EnergyOnlyEURPerMWh() float64 {
	return c.WholesaleEURPerMWh + c.ShapingEURPerMWh + c.LossesEURPerMWh
}

// AllInEURPerMWh returns the total of all seven cost terms.
func (c Component) AllInEURPerMWh() float64 {
	return c.EnergyOnlyEURPerMWh() + c.NetworkEURPerMWh + c.LeviesEURPerMWh +
		c.MarginEURPerMWh + c.RiskEURPerMWh
}

// EnergyOnlyEURPerKWh returns the energy-only rate in EUR/kWh.
func (c Component) EnergyOnlyEURPerKWh() float64 {
	return c.EnergyOnlyEURPerMWh() / 1000.0
}

// AllInEURPerKWh returns the all-in rate in EUR/kWh.
func (c Component) AllInEURPerKWh() float64 {
	return c.AllInEURPerMWh() / 1000.0
}

// DefaultIndexName reports the floating index an indexed product settles
// against.
const DefaultIndexName = "DA_ELEC_BASE"

// IndexedInfo describes an indexed product: per-band adders in EUR/MWh on
// top of the floating index price. Present only for indexed contracts.
type IndexedInfo struct {
	IndexName                     string               `json:"index_name"`
	BandAddersEnergyOnlyEURPerMWh map[TimeBand]float64 `json:"band_adders_energy_only_eur_per_mwh"`
	BandAddersAllInEURPerMWh      map[TimeBand]float64 `json:"band_adders_all_in_eur_per_mwh"`
}

// Result is the outcome of one tariff build: one component per applicable
// band in structure order, consumption-weighted rates, and an annual bill
// estimate. Created once per build and immutable thereafter.
type Result struct {
	QuoteID                     string       `json:"quote_id"`
	Request                     Request      `json:"request"`
	Components                  []Component  `json:"components"`
	WeightedEnergyOnlyEURPerKWh float64      `json:"weighted_energy_only_eur_per_kwh"`
	WeightedAllInEURPerKWh      float64      `json:"weighted_all_in_eur_per_kwh"`
	EstimatedAnnualBillExVAT    float64      `json:"estimated_annual_bill_ex_vat"`
	EstimatedAnnualBillIncVAT   float64      `json:"estimated_annual_bill_inc_vat"`
	IndexedInfo                 *IndexedInfo `json:"indexed_info,omitempty"`
}
