package schedule

import (
	"fmt"
	"time"
)

const isoDate = "2006-01-02"

// Today returns the current local calendar date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format(isoDate)
}

// ParseDate interprets an ISO date at local midnight. Interpreting at UTC
// shifts the displayed day for anyone west of Greenwich, so all date math
// in this package goes through local-midnight times.
func ParseDate(iso string) (time.Time, error) {
	t, err := time.ParseInLocation(isoDate, iso, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", iso)
	}
	return t, nil
}

// ValidDate reports whether iso is a well-formed YYYY-MM-DD calendar date.
func ValidDate(iso string) bool {
	_, err := ParseDate(iso)
	return err == nil
}

// AddDays steps an ISO date by n calendar days. It works on date components
// and lets time.Date normalize, so a DST transition in the local timezone
// can never skip or double a day.
func AddDays(iso string, n int) (string, error) {
	t, err := ParseDate(iso)
	if err != nil {
		return "", err
	}
	return time.Date(t.Year(), t.Month(), t.Day()+n, 0, 0, 0, 0, time.UTC).Format(isoDate), nil
}

// DaysBetween returns the number of calendar days from a to b (negative when
// b precedes a).
func DaysBetween(a, b string) (int, error) {
	ta, err := ParseDate(a)
	if err != nil {
		return 0, err
	}
	tb, err := ParseDate(b)
	if err != nil {
		return 0, err
	}
	ua := time.Date(ta.Year(), ta.Month(), ta.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(tb.Year(), tb.Month(), tb.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24), nil
}

// FormatDate renders an ISO date for display, e.g. "Mon, Jun 3 2024".
// Malformed input is returned as-is rather than erroring at a render site.
func FormatDate(iso string) string {
	t, err := ParseDate(iso)
	if err != nil {
		return iso
	}
	return t.Format("Mon, Jan 2 2006")
}
