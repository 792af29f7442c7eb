package domain

import "time"

// DefaultWindowDays applies when the caller omits the days parameter or
// supplies something unusable.
const DefaultWindowDays = 30

// DateFormat is the wire format for chart bucket dates.
const DateFormat = "2006-01-02"

// TimeWindow is an absolute [Since, Until) query boundary resolved from a
// relative day count.
type TimeWindow struct {
	Since time.Time
	Until time.Time
	days  int
}

// NewTimeWindow resolves a day count into a window ending at now.
// Non-positive day counts fall back to DefaultWindowDays; the resolver
// never fails.
func NewTimeWindow(now time.Time, days int) TimeWindow {
	if days <= 0 {
		days = DefaultWindowDays
	}
	return TimeWindow{
		Since: now.AddDate(0, 0, -days),
		Until: now,
		days:  days,
	}
}

// DayCount reports the resolved day count.
func (w TimeWindow) DayCount() int {
	return w.days
}

// Days enumerates the calendar days covered by the window, oldest first,
// ending on Until's date. It always returns exactly DayCount() entries so
// chart buckets exist even for days with no data.
func (w TimeWindow) Days() []string {
	out := make([]string, 0, w.days)
	for i := w.days - 1; i >= 0; i-- {
		out = append(out, w.Until.AddDate(0, 0, -i).Format(DateFormat))
	}
	return out
}
