package request

import (
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("invalid date range")
)

// EstimateRangeQuery is the admin register filter: /estimates?from=&to=.
// Both bounds are calendar days in the showroom time zone and inclusive.
type EstimateRangeQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// Resolve turns the query into [start of from, end of to]. A missing to
// defaults to from.
func (q EstimateRangeQuery) Resolve(loc *time.Location) (time.Time, time.Time, error) {
	from, err := ParseDate(q.From, loc)
	if err != nil || from.IsZero() {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	to := from
	if strings.TrimSpace(q.To) != "" {
		to, err = ParseDate(q.To, loc)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDateRange
		}
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return from, to.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
}

// ParseDate reads a YYYY-MM-DD day in loc. Blank input yields the zero time.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
