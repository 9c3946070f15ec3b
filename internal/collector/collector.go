// =============================================================================
// Voyage Data Collector - Prompt-Driven Collector
// =============================================================================
//
// This module populates a voyage record field-by-field through a sequence of
// request/response exchanges with an abstract input source.
//
// COLLECTION ORDER (fixed, for reproducible sessions):
//   1. Basic voyage identifiers
//   2. Route, port EU status and applicable percentages
//   3. Sailing schedule timestamps and distance
//   4. Full sailing fuel matrix (fuel type outer, engine type inner)
//   5. Arrival-port operational details
//   6. Full port fuel matrix
//
// RE-PROMPT LOOP:
//   A malformed response is never an error. The collector re-asks the same
//   question with a hint appended until the response validates, so the record
//   never holds an invalid value for a field once set. Empty responses are
//   accepted only for optional fields.
//
// INTERRUPTION:
//   Any ErrInterrupted from the input source aborts the whole session; the
//   partially filled record is discarded by the caller.
//
// =============================================================================

package collector

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"voyage-collector/internal/validation"
	"voyage-collector/internal/voyage"
)

// Collector drives one interactive collection session. It exclusively owns
// the record it builds; sessions are strictly sequential.
type Collector struct {
	in  InputSource
	log *zap.SugaredLogger
}

// New creates a collector reading from the given input source. A nil logger
// disables logging.
func New(in InputSource, logger *zap.SugaredLogger) *Collector {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Collector{in: in, log: logger}
}

// =============================================================================
// REQUEST PRIMITIVES
// =============================================================================

// RequestText repeatedly asks until the response passes the validator (when
// given) and satisfies the required/optional emptiness rule. An empty
// response on an optional field returns "" immediately.
func (c *Collector) RequestText(prompt string, validate func(string) bool, required bool) (string, error) {
	hint := prompt
	for {
		resp, err := c.in.Ask(hint)
		if err != nil {
			return "", err
		}
		resp = strings.TrimSpace(resp)

		if resp == "" {
			if !required {
				return "", nil
			}
			hint = prompt + " (required)"
			continue
		}
		if validate != nil && !validate(resp) {
			c.log.Debugw("rejected response", "prompt", prompt, "value", resp)
			hint = prompt + " (invalid format, try again)"
			continue
		}
		return resp, nil
	}
}

// RequestNumber repeatedly asks until the response parses as a non-negative
// floating-point number. An empty response on an optional field returns 0.0
// immediately without validation.
func (c *Collector) RequestNumber(prompt string, required bool) (float64, error) {
	hint := prompt
	for {
		resp, err := c.in.Ask(hint)
		if err != nil {
			return 0, err
		}
		resp = strings.TrimSpace(resp)

		if resp == "" {
			if !required {
				return 0.0, nil
			}
			hint = prompt + " (required)"
			continue
		}
		f, perr := strconv.ParseFloat(resp, 64)
		if perr != nil || f < 0 {
			c.log.Debugw("rejected number", "prompt", prompt, "value", resp)
			hint = prompt + " (enter a non-negative number)"
			continue
		}
		return f, nil
	}
}

// RequestChoice repeatedly asks until the response exactly matches one of
// the allowed values (or is empty and the field is optional).
func (c *Collector) RequestChoice(prompt string, choices []string, required bool) (string, error) {
	full := fmt.Sprintf("%s [%s]", prompt, strings.Join(choices, "/"))
	hint := full
	for {
		resp, err := c.in.Ask(hint)
		if err != nil {
			return "", err
		}
		resp = strings.TrimSpace(resp)

		if resp == "" {
			if !required {
				return "", nil
			}
			hint = full + " (required)"
			continue
		}
		for _, choice := range choices {
			if resp == choice {
				return resp, nil
			}
		}
		c.log.Debugw("rejected choice", "prompt", prompt, "value", resp)
		hint = full + " (choose one of the listed values)"
	}
}

// requestPercentage collects one of the applicable voyage-type percentages.
func (c *Collector) requestPercentage(prompt string) (int, error) {
	resp, err := c.RequestChoice(prompt, voyage.PercentageOptions, true)
	if err != nil {
		return 0, err
	}
	// Choices are a closed set of integer literals; Atoi cannot fail here.
	pct, _ := strconv.Atoi(resp)
	return pct, nil
}

// =============================================================================
// SESSION ORCHESTRATION
// =============================================================================

// Collect runs a full collection session and returns the populated record.
// On interruption the partial record is discarded and ErrInterrupted is
// returned.
func (c *Collector) Collect() (*voyage.Record, error) {
	r := &voyage.Record{}
	steps := []func(*voyage.Record) error{
		c.collectBasicInfo,
		c.collectRoute,
		c.collectSailingSchedule,
		c.collectSailingFuel,
		c.collectPortInfo,
		c.collectPortFuel,
	}
	for _, step := range steps {
		if err := step(r); err != nil {
			return nil, err
		}
	}
	c.log.Infow("collection complete", "voyage_number", r.VoyageNumber, "vessel", r.Vessel)
	return r, nil
}

func (c *Collector) collectBasicInfo(r *voyage.Record) (err error) {
	if r.IMONumber, err = c.RequestText("IMO No.", validation.IMONumber, true); err != nil {
		return err
	}
	if r.Vessel, err = c.RequestText("Vessel", nil, true); err != nil {
		return err
	}
	if r.ApplicationYear, err = c.RequestText("Application Year", nil, true); err != nil {
		return err
	}
	if r.EmissionStatementNumber, err = c.RequestText("Emission Statement Number", nil, false); err != nil {
		return err
	}
	if r.VoyageNumber, err = c.RequestText("Voyage no.", nil, true); err != nil {
		return err
	}
	r.Condition, err = c.RequestChoice("Condition (Laden/Ballast)", voyage.Conditions, true)
	return err
}

func (c *Collector) collectRoute(r *voyage.Record) (err error) {
	if r.FromPort, err = c.RequestText("From (port)", nil, true); err != nil {
		return err
	}
	if r.FromPortEU, err = c.RequestChoice("From (port) EU/Non-EU", voyage.EUStatuses, true); err != nil {
		return err
	}
	if r.ToPort, err = c.RequestText("To (port)", nil, true); err != nil {
		return err
	}
	if r.ToPortEU, err = c.RequestChoice("To (port) EU/Non-EU", voyage.EUStatuses, true); err != nil {
		return err
	}
	if r.EUETSPercentage, err = c.requestPercentage("Applicable EU ETS Voyage Type %"); err != nil {
		return err
	}
	r.FuelEUPercentage, err = c.requestPercentage("Applicable FuelEU Voyage Type %")
	return err
}

func (c *Collector) collectSailingSchedule(r *voyage.Record) (err error) {
	if r.DepartureDate, err = c.RequestText("Departure Date from last berth (UTC, dd/mm/yyyy)", validation.Date, true); err != nil {
		return err
	}
	if r.DepartureTime, err = c.RequestText("Departure Time from last berth (UTC, hh:mm)", validation.Time, true); err != nil {
		return err
	}
	if r.ArrivalDate, err = c.RequestText("Arrival Date at first berth (UTC, dd/mm/yyyy)", validation.Date, true); err != nil {
		return err
	}
	if r.ArrivalTime, err = c.RequestText("Arrival time at first berth (UTC, hh:mm)", validation.Time, true); err != nil {
		return err
	}
	r.DistanceNM, err = c.RequestNumber("Distance (Nm)", true)
	return err
}

func (c *Collector) collectSailingFuel(r *voyage.Record) (err error) {
	r.SailingFuel, err = c.collectFuelMatrix("Sailing")
	return err
}

func (c *Collector) collectPortInfo(r *voyage.Record) (err error) {
	if r.ArrivalPort, err = c.RequestText("Arrival port", nil, true); err != nil {
		return err
	}
	if r.PortActivity, err = c.RequestChoice("Port Activity", voyage.PortActivities, true); err != nil {
		return err
	}
	if r.ArrivalPortEU, err = c.RequestChoice("Arrival Port EU or Non-EU?", voyage.EUStatuses, true); err != nil {
		return err
	}
	if r.PortArrivalDate, err = c.RequestText("Arrival Date at first berth (UTC, dd/mm/yyyy)", validation.Date, false); err != nil {
		return err
	}
	if r.PortArrivalTime, err = c.RequestText("Arrival time at first berth (UTC, hh:mm)", validation.Time, false); err != nil {
		return err
	}
	if r.PortDepartureDate, err = c.RequestText("Departure Date from last berth (UTC, dd/mm/yyyy)", validation.Date, false); err != nil {
		return err
	}
	if r.PortDepartureTime, err = c.RequestText("Departure time from last berth (UTC, hh:mm)", validation.Time, false); err != nil {
		return err
	}
	if r.PortLimits, err = c.RequestChoice("Within port limits or outside port limits", voyage.PortLimitsOptions, true); err != nil {
		return err
	}
	r.TotalStayHours, err = c.RequestNumber("Total Stay (hrs)", true)
	return err
}

func (c *Collector) collectPortFuel(r *voyage.Record) (err error) {
	r.PortFuel, err = c.collectFuelMatrix("Port")
	return err
}

// collectFuelMatrix asks for every fuel type x engine type quantity. Every
// entry is optional; an empty response records 0.0.
func (c *Collector) collectFuelMatrix(stage string) (voyage.FuelMatrix, error) {
	m := voyage.NewFuelMatrix()
	for _, fuel := range voyage.FuelTypes {
		for _, engine := range voyage.EngineTypes {
			prompt := fmt.Sprintf("%s %s %s (MT)", engine, fuel, stage)
			qty, err := c.RequestNumber(prompt, false)
			if err != nil {
				return nil, err
			}
			m[fuel][engine] = qty
		}
	}
	return m, nil
}
