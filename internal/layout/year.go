package layout

import "time"

type YearLayout struct {
	Year   int
	Months []MonthGrid
}

// MonthGrid is one of the twelve mini-month panels in the year view.
// FirstWeekday is the Monday-relative offset of day 1, which lets a
// renderer compute the week-row count as
// ceil((len(Days)+FirstWeekday)/7).
type MonthGrid struct {
	Month          time.Month
	Days           []YearDayCell
	IsCurrentMonth bool
	FirstWeekday   int
}

type YearDayCell struct {
	Day        int
	IsToday    bool
	IsSelected bool
	HasEvents  bool
}

// WeekRows is the number of 7-cell rows needed to render the grid.
func (g MonthGrid) WeekRows() int {
	return (len(g.Days) + g.FirstWeekday + 6) / 7
}

func BuildYear(selected, today time.Time, idx EventIndex) YearLayout {
	selected = DateOf(selected)
	today = DateOf(today)
	year := selected.Year()

	layout := YearLayout{Year: year}
	for month := time.January; month <= time.December; month++ {
		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		grid := MonthGrid{
			Month:          month,
			IsCurrentMonth: year == today.Year() && month == today.Month(),
			FirstWeekday:   DaysFromMonday(first),
		}
		for day := 1; day <= DaysInMonth(year, month); day++ {
			date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
			grid.Days = append(grid.Days, YearDayCell{
				Day:        day,
				IsToday:    date.Equal(today),
				IsSelected: date.Equal(selected),
				HasEvents:  idx.HasEvents(date),
			})
		}
		layout.Months = append(layout.Months, grid)
	}
	return layout
}
