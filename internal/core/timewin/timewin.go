// Package timewin provides the time-bucketing windows behind the
// timeline and stats endpoints. All bucketing happens in UTC
package timewin

import (
	"fmt"
	"strings"
	"time"

	ptime "gitstats/internal/platform/time"
)

// Period selects a timeline window: 30 days, 12 weeks, or 12 months
type Period string

// Timeline periods
const (
	Day   Period = "day"
	Week  Period = "week"
	Month Period = "month"
)

// ParsePeriod coerces unknown values to Day
func ParsePeriod(s string) Period {
	switch Period(strings.ToLower(s)) {
	case Week:
		return Week
	case Month:
		return Month
	default:
		return Day
	}
}

// Points is the bucket count for the period window
func (p Period) Points() int {
	if p == Day {
		return 30
	}
	return 12
}

// Since returns the lower bound of the window, in UTC
func (p Period) Since(now time.Time) time.Time {
	now = now.UTC()
	switch p {
	case Week:
		return now.AddDate(0, 0, -12*7)
	case Month:
		return now.AddDate(0, -12, 0)
	default:
		return now.AddDate(0, 0, -30)
	}
}

// Label formats a timestamp under the period's bucket formatter
func (p Period) Label(t time.Time) string {
	t = t.UTC()
	switch p {
	case Week:
		_, wk := t.ISOWeek()
		return fmt.Sprintf("W%d", wk)
	case Month:
		return t.Format("Jan 2006")
	default:
		return t.Format("Jan 2")
	}
}

// Buckets returns the window's labels oldest first, one per bucket
func (p Period) Buckets(now time.Time) []string {
	now = now.UTC()
	n := p.Points()
	labels := make([]string, 0, n)
	switch p {
	case Week:
		for i := n - 1; i >= 0; i-- {
			labels = append(labels, p.Label(now.AddDate(0, 0, -7*i)))
		}
	case Month:
		// anchor on the first of the month so AddDate cannot skip short months
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		for i := n - 1; i >= 0; i-- {
			labels = append(labels, p.Label(first.AddDate(0, -i, 0)))
		}
	default:
		for i := n - 1; i >= 0; i-- {
			labels = append(labels, p.Label(now.AddDate(0, 0, -i)))
		}
	}
	return labels
}

// StatsPeriod selects the window for per-contributor stats
type StatsPeriod string

// Stats periods
const (
	AllTime   StatsPeriod = "ALL_TIME"
	LastMonth StatsPeriod = "LAST_MONTH"
	LastWeek  StatsPeriod = "LAST_WEEK"
)

// ParseStatsPeriod accepts both the query spelling (ALL_TIME) and the
// path spelling (all-time); unknown values coerce to AllTime
func ParseStatsPeriod(s string) StatsPeriod {
	norm := strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
	switch StatsPeriod(norm) {
	case LastMonth:
		return LastMonth
	case LastWeek:
		return LastWeek
	default:
		return AllTime
	}
}

// Since returns the window lower bound in UTC, or nil for AllTime
func (p StatsPeriod) Since(now time.Time) *time.Time {
	now = now.UTC()
	switch p {
	case LastMonth:
		return ptime.Ptr(now.AddDate(0, -1, 0))
	case LastWeek:
		return ptime.Ptr(now.AddDate(0, 0, -7))
	default:
		return nil
	}
}

// Contains reports whether t falls inside the window
func (p StatsPeriod) Contains(t, now time.Time) bool {
	since := p.Since(now)
	return since == nil || !t.Before(*since)
}
