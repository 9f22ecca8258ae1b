package dateutil

import (
	"fmt"
	"time"

	"github.com/habitlab/habitlab/internal/apperr"
	"github.com/habitlab/habitlab/internal/constants"
)

// Days are represented as YYYY-MM-DD strings in the local calendar. All
// date-keyed storage and statistics use these day buckets, never raw
// timestamps, so two instants in the same local calendar day always key the
// same record.

// BucketOf returns the day bucket for a timestamp: the local calendar day it
// falls in, with the time of day stripped.
func BucketOf(t time.Time) string {
	return t.Local().Format(constants.DateFormat)
}

// Today returns the current day bucket.
func Today() string {
	return BucketOf(time.Now())
}

// Same reports whether two day buckets name the same calendar day.
func Same(a, b string) bool {
	return a == b
}

// AddDays returns the day shifted by n calendar days; n may be negative.
// The shift goes through time.AddDate so month and year boundaries carry.
func AddDays(day string, n int) string {
	t, err := time.ParseInLocation(constants.DateFormat, day, time.Local)
	if err != nil {
		return day
	}
	return t.AddDate(0, 0, n).Format(constants.DateFormat)
}

// Parse validates a day string. Malformed input is an ErrInvalidArgument.
func Parse(s string) (string, error) {
	t, err := time.ParseInLocation(constants.DateFormat, s, time.Local)
	if err != nil {
		return "", fmt.Errorf("%w: invalid day %q (expected YYYY-MM-DD)", apperr.ErrInvalidArgument, s)
	}
	return t.Format(constants.DateFormat), nil
}

// Time returns midnight local time for a day bucket.
func Time(day string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, day, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid day %q (expected YYYY-MM-DD)", apperr.ErrInvalidArgument, day)
	}
	return t, nil
}
