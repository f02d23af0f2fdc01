// Package stats filters and aggregates records held in memory.
//
// All functions are pure. Functions that depend on the current time take it
// as an argument, its location is used as the local time zone.
package stats

import (
	"errors"
	"strings"
	"time"

	"github.com/kakeibo-app/backend/internal/models"
)

// TimeWindow restricts records to a period before now.
type TimeWindow string

const (
	WindowAll   TimeWindow = "all"
	WindowToday TimeWindow = "today"
	WindowWeek  TimeWindow = "week"
)

// CategoryAll is the category filter value that matches every record.
const CategoryAll = "all"

var ErrUnknownTimeWindow = errors.New("unknown time window")

// ParseTimeWindow parses a time window. An empty string is WindowAll.
func ParseTimeWindow(s string) (TimeWindow, error) {
	switch TimeWindow(s) {
	case "", WindowAll:
		return WindowAll, nil
	case WindowToday, WindowWeek:
		return TimeWindow(s), nil
	}

	return WindowAll, ErrUnknownTimeWindow
}

// MatchesTime reports if the record's date is in the time window.
//
// "today" compares calendar dates in now's location. "week" includes all
// records dated on or after the same time seven days ago.
func MatchesTime(r models.Record, window TimeWindow, now time.Time) bool {
	switch window {
	case WindowToday:
		y1, m1, d1 := r.Date.In(now.Location()).Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case WindowWeek:
		return !r.Date.Before(now.AddDate(0, 0, -7))
	}

	return true
}

// MatchesText reports if the description contains the query, ignoring case.
func MatchesText(r models.Record, query string) bool {
	return strings.Contains(strings.ToLower(r.Description), strings.ToLower(query))
}

// MatchesCategory reports if the record has the category. An empty category
// and CategoryAll match all records.
func MatchesCategory(r models.Record, category string) bool {
	return category == "" || category == CategoryAll || r.Category == category
}

// Filter is the combination of all filters for the record list.
type Filter struct {
	Query    string     `form:"q"`
	Category string     `form:"category"`
	Window   TimeWindow `form:"window"`
}

// Matches reports if the record passes all filters.
func (f Filter) Matches(r models.Record, now time.Time) bool {
	return MatchesText(r, f.Query) && MatchesCategory(r, f.Category) && MatchesTime(r, f.Window, now)
}

// IsZero reports if the filter lets all records pass.
func (f Filter) IsZero() bool {
	return f.Query == "" && (f.Category == "" || f.Category == CategoryAll) && (f.Window == "" || f.Window == WindowAll)
}

// Apply returns the records passing the filter, in their original order.
func Apply(records []models.Record, f Filter, now time.Time) []models.Record {
	result := make([]models.Record, 0, len(records))
	for _, r := range records {
		if f.Matches(r, now) {
			result = append(result, r)
		}
	}

	return result
}
