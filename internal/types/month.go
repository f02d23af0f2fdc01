// Package types implements special types for the household ledger.
package types

import (
	"fmt"
	"strings"
	"time"
)

// Month is a calendar month in a specific year, anchored in a location.
type Month time.Time

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, t.Location()))
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the result of m.String().
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface for "YYYY-MM" strings.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	month, err := ParseMonth(value)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// Contains reports whether the time instant is in the month.
//
// The instant is converted to the location of the month before comparing, so
// that a record stored in UTC is attributed to the month of the local calendar.
func (m Month) Contains(t time.Time) bool {
	local := t.In(time.Time(m).Location())
	return local.Year() == time.Time(m).Year() && local.Month() == time.Time(m).Month()
}
