package search

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned for a date-range boundary that cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// Layouts accepted for call timestamps. Zone-less forms are read as UTC.
var callTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseCallTime parses an ISO 8601 call timestamp.
func ParseCallTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range callTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// CallTimeMillis returns epoch millis, or 0 when s does not parse.
func CallTimeMillis(s string) int64 {
	t, ok := ParseCallTime(s)
	if !ok {
		return 0
	}
	return t.UnixMilli()
}

// FormatCallTime renders a timestamp for display; unparseable input is returned verbatim.
func FormatCallTime(s string) string {
	if s == "" {
		return "N/A"
	}
	t, ok := ParseCallTime(s)
	if !ok {
		return s
	}
	return t.Format("2006-01-02 15:04:05 MST")
}

// FormatCallDate is FormatCallTime without the clock.
func FormatCallDate(s string) string {
	if s == "" {
		return "N/A"
	}
	t, ok := ParseCallTime(s)
	if !ok {
		return s
	}
	return t.Format("2006-01-02")
}

// DateRange is an inclusive filter; a nil bound is open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Active reports whether either bound is set.
func (r DateRange) Active() bool {
	return r.Start != nil || r.End != nil
}

// Contains reports whether t falls within the range.
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// ParseDateRange builds a range from date inputs. The start is moved to
// 00:00:00.000 UTC and the end to 23:59:59.999 UTC of their dates. Empty
// strings leave that side open.
func ParseDateRange(start, end string) (DateRange, error) {
	var r DateRange
	if start != "" {
		t, ok := ParseCallTime(start)
		if !ok {
			return DateRange{}, fmt.Errorf("%w: start %q", ErrInvalidDate, start)
		}
		s := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		r.Start = &s
	}
	if end != "" {
		t, ok := ParseCallTime(end)
		if !ok {
			return DateRange{}, fmt.Errorf("%w: end %q", ErrInvalidDate, end)
		}
		e := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), time.UTC)
		r.End = &e
	}
	return r, nil
}
