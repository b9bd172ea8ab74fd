// Package biztime provides business-day window calculations for the parking
// facility. All storage and transport use UTC. The facility's business day is
// not the UTC calendar day: it starts a fixed 5 hours after UTC midnight, so
// the day "2024-03-10" covers 2024-03-10T05:00:00Z through
// 2024-03-11T04:59:59.999Z.
//
// The 5-hour shift is a literal constant, not a timezone lookup. It encodes
// the facility's local day boundary relative to UTC and every "by date" query
// (daily report, daily resume, today's activity) depends on it.
package biztime

import (
	"fmt"
	"time"
)

// BusinessDayOffset is the fixed shift between UTC midnight and the start of
// the facility's business day.
const BusinessDayOffset = 5 * time.Hour

// dateLayout is the calendar date format accepted by window constructors.
const dateLayout = "2006-01-02"

// Window is a half-open-in-spirit [Start, End] query window in UTC. End is
// inclusive and carries millisecond precision (…:59:59.999) to match the
// stored timestamp resolution.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// DayWindow returns the business-day window for a calendar date string
// (YYYY-MM-DD): start = UTC midnight of the date + offset, end = last
// millisecond of the UTC date + offset.
func DayWindow(date string) (Window, error) {
	day, err := parseDate(date)
	if err != nil {
		return Window{}, err
	}
	return Window{
		Start: day.Add(BusinessDayOffset),
		End:   day.Add(24*time.Hour - time.Millisecond + BusinessDayOffset),
	}, nil
}

// RangeWindow returns the window spanning two calendar dates. The offset is
// applied independently to the start-of-range and end-of-range boundaries, so
// the result is the union of the business days from dateStart to dateEnd.
func RangeWindow(dateStart, dateEnd string) (Window, error) {
	start, err := parseDate(dateStart)
	if err != nil {
		return Window{}, err
	}
	end, err := parseDate(dateEnd)
	if err != nil {
		return Window{}, err
	}
	if end.Before(start) {
		return Window{}, fmt.Errorf("date range end %s precedes start %s", dateEnd, dateStart)
	}
	return Window{
		Start: start.Add(BusinessDayOffset),
		End:   end.Add(24*time.Hour - time.Millisecond + BusinessDayOffset),
	}, nil
}

func parseDate(date string) (time.Time, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", date, err)
	}
	return t, nil
}
