package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voyage-collector/internal/voyage"
)

func TestIMONumber(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  bool
	}{
		{"seven digits", "1234567", true},
		{"all zeros", "0000000", true},
		{"six digits", "123456", false},
		{"eight digits", "12345678", false},
		{"empty", "", false},
		{"letter in the middle", "123a567", false},
		{"trailing space", "1234567 ", false},
		{"leading sign", "+234567", false},
		{"unicode digits", "１２３４５６７", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IMONumber(tc.value))
		})
	}
}

func TestDate(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  bool
	}{
		{"normal date", "15/06/2025", true},
		{"leap day", "29/02/2024", true},
		{"non-leap february 29", "29/02/2025", false},
		{"day out of range", "31/02/2025", false},
		{"missing zero padding", "1/1/2025", false},
		{"month out of range", "01/13/2025", false},
		{"iso order", "2025/01/01", false},
		{"two-digit year", "01/01/25", false},
		{"empty", "", false},
		{"garbage", "not a date", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Date(tc.value))
		})
	}
}

func TestTime(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  bool
	}{
		{"midnight", "00:00", true},
		{"end of day", "23:59", true},
		{"morning", "09:30", true},
		{"hour out of range", "24:00", false},
		{"minute out of range", "12:60", false},
		{"missing zero padding", "9:30", false},
		{"no separator", "0930", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Time(tc.value))
		})
	}
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  bool
	}{
		{"zero", "0", true},
		{"fifty", "50", true},
		{"hundred", "100", true},
		{"fifty with decimal point", "50.0", true},
		{"zero with decimal point", "0.0", true},
		{"intermediate value", "25", false},
		{"close but not exact", "49.9", false},
		{"negative", "-50", false},
		{"not a number", "half", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Percentage(tc.value))
		})
	}
}

func TestValidateRecord(t *testing.T) {
	t.Run("valid record has no errors", func(t *testing.T) {
		assert.Empty(t, ValidateRecord(voyage.DemoRecord()))
	})

	t.Run("collects every violation", func(t *testing.T) {
		rec := voyage.DemoRecord()
		rec.IMONumber = "12345"
		rec.DepartureDate = "31/02/2025"
		rec.ArrivalTime = "25:00"
		rec.EUETSPercentage = 75

		errs := ValidateRecord(rec)
		assert.Len(t, errs, 4)

		fields := make([]string, 0, len(errs))
		for _, e := range errs {
			fields = append(fields, e.Field)
		}
		assert.ElementsMatch(t, fields, []string{
			"imo_number", "departure_date", "arrival_time", "eu_ets_percentage",
		})
	})

	t.Run("optional empty fields are not checked", func(t *testing.T) {
		rec := voyage.DemoRecord()
		rec.PortArrivalDate = ""
		rec.PortArrivalTime = ""
		assert.Empty(t, ValidateRecord(rec))
	})

	t.Run("errors format into a readable report", func(t *testing.T) {
		rec := voyage.DemoRecord()
		rec.IMONumber = "abc"
		out := FormatErrors(ValidateRecord(rec))
		assert.Contains(t, out, "1 validation error")
		assert.Contains(t, out, "imo_number")
	})
}
