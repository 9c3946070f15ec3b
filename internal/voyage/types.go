// =============================================================================
// Voyage Data Collector - Shared Types
// =============================================================================
//
// This package contains the voyage record data model shared across the
// collector, validation and exporter modules, to avoid import cycles.
//
// DATA MODEL:
//   - Record     : one voyage with identifiers, route, schedule, port details
//                  and two fuel-consumption matrices (sailing and port)
//   - FuelMatrix : fuel-type label -> engine-type label -> consumption (MT)
//
// The fuel matrix is keyed by plain label strings rather than an enum.
// Interactive collection only ever produces the canonical labels below, but
// records loaded from JSON may carry legacy labels (older exports used
// different fuel names); those still flatten, summarize and export correctly.
//
// =============================================================================

package voyage

// =============================================================================
// FIELD CONFIGURATION
// =============================================================================

// FuelTypes is the canonical list of fuel-type labels collected per voyage.
var FuelTypes = []string{
	"LFO", "HFO", "MGO",
	"LPG(P)", "LPG(B)", "LNG Otto MS", "LNG Otto SS",
	"LNG Diesel SS", "LNG LBSI", "BioFuel 1", "BioFuel 2", "BioFuel 3",
}

// EngineTypes is the list of engine operating categories that partition the
// consumption of each fuel type.
var EngineTypes = []string{"ME", "AE", "Others", "Off-hire"}

// Choice lists for enumerated fields. The collector only accepts responses
// that exactly match one of these values.
var (
	Conditions        = []string{"Laden", "Ballast"}
	EUStatuses        = []string{"EU", "Non-EU"}
	PortActivities    = []string{"Load", "Discharge", "Other"}
	PortLimitsOptions = []string{"Within port limits", "Outside port limits"}
	PercentageOptions = []string{"0", "50", "100"}
)

// RequiredFields is the fixed set of fields a record must carry a non-empty,
// non-zero value for to count as complete.
var RequiredFields = []string{
	"imo_number",
	"vessel",
	"application_year",
	"voyage_number",
	"from_port",
	"to_port",
	"departure_date",
	"arrival_date",
	"distance_nm",
}

// =============================================================================
// FUEL MATRIX
// =============================================================================

// FuelMatrix maps a fuel-type label to the consumption (in metric tons) of
// that fuel per engine type.
type FuelMatrix map[string]map[string]float64

// NewFuelMatrix returns a matrix with every canonical fuel type carrying an
// explicit 0.0 entry for every engine type.
func NewFuelMatrix() FuelMatrix {
	m := make(FuelMatrix, len(FuelTypes))
	for _, fuel := range FuelTypes {
		entry := make(map[string]float64, len(EngineTypes))
		for _, engine := range EngineTypes {
			entry[engine] = 0.0
		}
		m[fuel] = entry
	}
	return m
}

// Map converts the matrix into a generic nested mapping for flattening.
func (m FuelMatrix) Map() map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for fuel, engines := range m {
		entry := make(map[string]interface{}, len(engines))
		for engine, qty := range engines {
			entry[engine] = qty
		}
		out[fuel] = entry
	}
	return out
}

// =============================================================================
// VOYAGE RECORD
// =============================================================================

// Record is a single voyage's collected data. JSON tags define the on-disk
// schema; the same names are used as flattened export keys.
type Record struct {
	// Basic voyage information.
	IMONumber               string `json:"imo_number"`
	Vessel                  string `json:"vessel"`
	ApplicationYear         string `json:"application_year"`
	EmissionStatementNumber string `json:"emission_statement_number"`
	VoyageNumber            string `json:"voyage_number"`
	Condition               string `json:"condition"`

	// Route information.
	FromPort         string `json:"from_port"`
	FromPortEU       string `json:"from_port_eu"`
	ToPort           string `json:"to_port"`
	ToPortEU         string `json:"to_port_eu"`
	EUETSPercentage  int    `json:"eu_ets_percentage"`
	FuelEUPercentage int    `json:"fueleu_percentage"`

	// Sailing schedule (UTC). Dates are dd/mm/yyyy, times are HH:MM.
	DepartureDate string  `json:"departure_date"`
	DepartureTime string  `json:"departure_time"`
	ArrivalDate   string  `json:"arrival_date"`
	ArrivalTime   string  `json:"arrival_time"`
	DistanceNM    float64 `json:"distance_nm"`

	// Sailing fuel consumption.
	SailingFuel FuelMatrix `json:"sailing_fuel"`

	// Port information.
	ArrivalPort       string  `json:"arrival_port"`
	PortActivity      string  `json:"port_activity"`
	ArrivalPortEU     string  `json:"arrival_port_eu"`
	PortArrivalDate   string  `json:"port_arrival_date"`
	PortArrivalTime   string  `json:"port_arrival_time"`
	PortDepartureDate string  `json:"port_departure_date"`
	PortDepartureTime string  `json:"port_departure_time"`
	PortLimits        string  `json:"port_limits"`
	TotalStayHours    float64 `json:"total_stay_hours"`

	// Port fuel consumption.
	PortFuel FuelMatrix `json:"port_fuel"`
}

// Map converts the record into a generic nested mapping keyed by the JSON
// field names. The fuel matrices appear as nested mappings; everything else
// is a leaf scalar. Flattening, completeness checking and export all walk
// this representation.
func (r *Record) Map() map[string]interface{} {
	m := map[string]interface{}{
		"imo_number":                r.IMONumber,
		"vessel":                    r.Vessel,
		"application_year":          r.ApplicationYear,
		"emission_statement_number": r.EmissionStatementNumber,
		"voyage_number":             r.VoyageNumber,
		"condition":                 r.Condition,
		"from_port":                 r.FromPort,
		"from_port_eu":              r.FromPortEU,
		"to_port":                   r.ToPort,
		"to_port_eu":                r.ToPortEU,
		"eu_ets_percentage":         r.EUETSPercentage,
		"fueleu_percentage":         r.FuelEUPercentage,
		"departure_date":            r.DepartureDate,
		"departure_time":            r.DepartureTime,
		"arrival_date":              r.ArrivalDate,
		"arrival_time":              r.ArrivalTime,
		"distance_nm":               r.DistanceNM,
		"arrival_port":              r.ArrivalPort,
		"port_activity":             r.PortActivity,
		"arrival_port_eu":           r.ArrivalPortEU,
		"port_arrival_date":         r.PortArrivalDate,
		"port_arrival_time":         r.PortArrivalTime,
		"port_departure_date":       r.PortDepartureDate,
		"port_departure_time":       r.PortDepartureTime,
		"port_limits":               r.PortLimits,
		"total_stay_hours":          r.TotalStayHours,
	}
	if r.SailingFuel != nil {
		m["sailing_fuel"] = r.SailingFuel.Map()
	}
	if r.PortFuel != nil {
		m["port_fuel"] = r.PortFuel.Map()
	}
	return m
}
