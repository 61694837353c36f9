package services

import (
	"strings"
	"time"

	"smsledger/internal/models"
)

// Window is a calendar-relative date range recognized in query text.
type Window int

const (
	WindowAll Window = iota
	WindowToday
	WindowWeek
	WindowMonth
)

// WindowFromQuery tests for window keywords in priority order: a query
// containing both "week" and "month" resolves to the week window because
// "week" is checked first. Queries without a keyword are unfiltered.
func WindowFromQuery(query string) Window {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "today"):
		return WindowToday
	case strings.Contains(q, "week"):
		return WindowWeek
	case strings.Contains(q, "month"):
		return WindowMonth
	default:
		return WindowAll
	}
}

// Label returns the period label used in aggregate answers.
func (w Window) Label() string {
	switch w {
	case WindowToday:
		return "Today"
	case WindowWeek:
		return "This week"
	case WindowMonth:
		return "This month"
	default:
		return "Total"
	}
}

// Start returns the inclusive lower bound of the window relative to now,
// in local time. WindowAll has no bound.
func (w Window) Start(now time.Time) (time.Time, bool) {
	switch w {
	case WindowToday:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return midnight, true
	case WindowWeek:
		return now.Add(-7 * 24 * time.Hour), true
	case WindowMonth:
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return firstOfMonth, true
	default:
		return time.Time{}, false
	}
}

// FilterByWindow restricts transactions to the window. WindowAll returns the
// input list unchanged.
func FilterByWindow(txns []models.Transaction, w Window, now time.Time) []models.Transaction {
	start, bounded := w.Start(now)
	if !bounded {
		return txns
	}

	cutoff := start.UnixMilli()
	filtered := make([]models.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.Date >= cutoff {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
