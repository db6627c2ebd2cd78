package entity

import (
	"slices"
	"time"
)

// isoDate is the layout of attendance dates.
const isoDate = "2006-01-02"

// Profile is the waiter's performance and attendance record.
type Profile struct {
	Name                 string   `json:"name"`
	CompletedOrdersCount int      `json:"completedOrdersCount"`
	AttendanceDates      []string `json:"attendanceDates"` // Attendance days as YYYY-MM-DD.
}

// ISODate formats t as an attendance date.
func ISODate(t time.Time) string {
	return t.Format(isoDate)
}

// WithAttendance returns a copy of the profile with day merged into the
// attendance dates. Dates are de-duplicated by their string form.
func (p Profile) WithAttendance(day string) Profile {
	dates := make([]string, 0, len(p.AttendanceDates)+1)
	for _, d := range p.AttendanceDates {
		if !slices.Contains(dates, d) {
			dates = append(dates, d)
		}
	}
	if !slices.Contains(dates, day) {
		dates = append(dates, day)
	}
	p.AttendanceDates = dates

	return p
}

// CalendarDay is one cell of the attendance calendar.
type CalendarDay struct {
	Day      int    `json:"day"`
	ISO      string `json:"iso"`
	Attended bool   `json:"attended"`
	IsToday  bool   `json:"isToday"`
}

// MonthCalendar is a Sunday-first month grid. Nil cells pad the first and last week.
type MonthCalendar struct {
	Year  int              `json:"year"`
	Month time.Month       `json:"month"`
	Weeks [][]*CalendarDay `json:"weeks"`
}

// BuildMonthCalendar lays out the month containing now and marks attended days.
// Attendance entries that do not parse as a date are ignored.
func BuildMonthCalendar(now time.Time, attendanceDates []string) MonthCalendar {
	attended := make(map[string]struct{}, len(attendanceDates))
	for _, raw := range attendanceDates {
		if day, ok := normalizeDate(raw); ok {
			attended[day] = struct{}{}
		}
	}

	year, month, _ := now.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	today := ISODate(now)

	cal := MonthCalendar{Year: year, Month: month}
	for current := 1 - int(first.Weekday()); current <= daysInMonth; {
		week := make([]*CalendarDay, 7)
		for i := range week {
			if current >= 1 && current <= daysInMonth {
				iso := ISODate(time.Date(year, month, current, 0, 0, 0, 0, now.Location()))
				_, ok := attended[iso]
				week[i] = &CalendarDay{
					Day:      current,
					ISO:      iso,
					Attended: ok,
					IsToday:  iso == today,
				}
			}
			current++
		}
		cal.Weeks = append(cal.Weeks, week)
	}

	return cal
}

// normalizeDate accepts a plain date or an RFC 3339 timestamp.
func normalizeDate(raw string) (string, bool) {
	if t, err := time.Parse(isoDate, raw); err == nil {
		return ISODate(t), true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return ISODate(t.UTC()), true
	}

	return "", false
}
