package layout

import "time"

type WeekLayout struct {
	WeekStart time.Time
	Days      []DayColumn
}

type DayColumn struct {
	Date       time.Time
	IsSelected bool
	IsToday    bool
	Slots      []TimeSlot
}

// TimeSlot groups a day's events by start hour. Only occupied hours are
// materialized; the day view enumerates all 24 regardless.
type TimeSlot struct {
	Hour   int
	Events []EventBlock
}

type EventBlock struct {
	EventID         string
	Title           string
	StartHour       int
	StartMinute     int
	DurationMinutes int
}

// BuildWeek lays out the Monday-anchored seven-day window containing
// the selected date.
func BuildWeek(selected, today time.Time, idx EventIndex) WeekLayout {
	selected = DateOf(selected)
	today = DateOf(today)
	weekStart := StartOfWeek(selected)

	layout := WeekLayout{WeekStart: weekStart}
	for offset := 0; offset < 7; offset++ {
		date := weekStart.AddDate(0, 0, offset)
		layout.Days = append(layout.Days, DayColumn{
			Date:       date,
			IsSelected: date.Equal(selected),
			IsToday:    date.Equal(today),
			Slots:      buildTimeSlots(idx, date),
		})
	}
	return layout
}

func buildTimeSlots(idx EventIndex, date time.Time) []TimeSlot {
	var slots []TimeSlot
	events := idx.On(date)
	for hour := 0; hour < 24; hour++ {
		var blocks []EventBlock
		for _, ev := range events {
			if ev.Start.UTC().Hour() != hour {
				continue
			}
			blocks = append(blocks, EventBlock{
				EventID:         ev.ID,
				Title:           ev.Title,
				StartHour:       hour,
				StartMinute:     ev.Start.UTC().Minute(),
				DurationMinutes: ev.DurationMinutes(),
			})
		}
		if len(blocks) > 0 {
			slots = append(slots, TimeSlot{Hour: hour, Events: blocks})
		}
	}
	return slots
}
