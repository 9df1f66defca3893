package layout

import "time"

type MonthLayout struct {
	Year  int
	Month time.Month
	Weeks []Week
}

type Week struct {
	Days []DayCell
}

type DayCell struct {
	Date           time.Time
	IsSelected     bool
	IsToday        bool
	HasEvents      bool
	IsCurrentMonth bool
}

// BuildMonth lays the selected date's month out as Monday-anchored
// weeks of exactly seven cells. Leading and trailing cells hold real
// adjacent-month dates flagged IsCurrentMonth=false.
func BuildMonth(selected, today time.Time, idx EventIndex) MonthLayout {
	selected = DateOf(selected)
	today = DateOf(today)
	first := FirstOfMonth(selected)
	last := LastOfMonth(selected)

	layout := MonthLayout{Year: first.Year(), Month: first.Month()}
	week := Week{}

	for lead := DaysFromMonday(first); lead > 0; lead-- {
		date := first.AddDate(0, 0, -lead)
		week.Days = append(week.Days, DayCell{Date: date})
	}

	for date := first; !date.After(last); date = date.AddDate(0, 0, 1) {
		week.Days = append(week.Days, DayCell{
			Date:           date,
			IsSelected:     date.Equal(selected),
			IsToday:        date.Equal(today),
			HasEvents:      idx.HasEvents(date),
			IsCurrentMonth: true,
		})
		if date.Weekday() == time.Sunday {
			layout.Weeks = append(layout.Weeks, week)
			week = Week{}
		}
	}

	if len(week.Days) > 0 {
		next := last.AddDate(0, 0, 1)
		for len(week.Days) < 7 {
			week.Days = append(week.Days, DayCell{Date: next})
			next = next.AddDate(0, 0, 1)
		}
		layout.Weeks = append(layout.Weeks, week)
	}

	return layout
}
