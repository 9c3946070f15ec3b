// =============================================================================
// Voyage Data Collector - Demo Record
// =============================================================================
//
// A fully populated sample voyage used by the 'demo' command and by
// end-to-end export tests. The fuel labels here are the ones used by older
// spreadsheet exports ("VLSFO LFO (<80Cst)" etc.), not the canonical
// FuelTypes list; keeping them exercises the label-agnostic fuel matrix.
//
// =============================================================================

package voyage

// DemoRecord returns a complete sample voyage (Cadiz to Singapore, laden).
func DemoRecord() *Record {
	return &Record{
		IMONumber:               "1234567",
		Vessel:                  "Pacific Ruby",
		ApplicationYear:         "2025",
		EmissionStatementNumber: "ES-2025-0042",
		VoyageNumber:            "202502 VNGDA-ESCAD",
		Condition:               "Laden",

		FromPort:         "Cadiz",
		FromPortEU:       "EU",
		ToPort:           "Singapore",
		ToPortEU:         "Non-EU",
		EUETSPercentage:  50,
		FuelEUPercentage: 50,

		DepartureDate: "03/02/2025",
		DepartureTime: "11:00",
		ArrivalDate:   "21/02/2025",
		ArrivalTime:   "10:18",
		DistanceNM:    1873.0,

		SailingFuel: FuelMatrix{
			"VLSFO LFO (<80Cst)": {
				"ME": 150.0, "AE": 12.5, "Others": 0.0, "Off-hire": 0.0,
			},
			"MDO/MGO": {
				"ME": 0.0, "AE": 8.2, "Others": 1.1, "Off-hire": 0.0,
			},
		},

		ArrivalPort:       "Singapore",
		PortActivity:      "Discharge",
		ArrivalPortEU:     "Non-EU",
		PortArrivalDate:   "21/02/2025",
		PortArrivalTime:   "10:18",
		PortDepartureDate: "23/02/2025",
		PortDepartureTime: "18:30",
		PortLimits:        "Within port limits",
		TotalStayHours:    56.2,

		PortFuel: FuelMatrix{
			"MDO/MGO": {
				"ME": 0.0, "AE": 3.4, "Others": 0.6, "Off-hire": 0.0,
			},
		},
	}
}
