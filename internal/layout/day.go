package layout

import "time"

type DayLayout struct {
	Date    time.Time
	IsToday bool
	Hours   []HourBlock
}

type HourBlock struct {
	Hour   int
	Events []EventEntry
}

type EventEntry struct {
	EventID         string
	Title           string
	StartMinute     int
	DurationMinutes int
	Location        string
	Description     string
}

// BuildDay enumerates all 24 hour blocks for the selected date, empty
// or not, so the renderer can show a full timeline.
func BuildDay(selected, today time.Time, idx EventIndex) DayLayout {
	selected = DateOf(selected)
	layout := DayLayout{
		Date:    selected,
		IsToday: selected.Equal(DateOf(today)),
		Hours:   make([]HourBlock, 24),
	}
	events := idx.On(selected)
	for hour := 0; hour < 24; hour++ {
		block := HourBlock{Hour: hour}
		for _, ev := range events {
			if ev.Start.UTC().Hour() != hour {
				continue
			}
			block.Events = append(block.Events, EventEntry{
				EventID:         ev.ID,
				Title:           ev.Title,
				StartMinute:     ev.Start.UTC().Minute(),
				DurationMinutes: ev.DurationMinutes(),
				Location:        ev.Location,
				Description:     ev.Description,
			})
		}
		layout.Hours[hour] = block
	}
	return layout
}
