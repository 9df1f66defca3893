package layout

import (
	"sort"
	"time"

	"github.com/phasecurve/gcal-imp/internal/model"
)

// EventIndex buckets events by their start date so grid builders can
// answer "what happens on this day" without rescanning the event map.
// It is rebuilt from scratch whenever the session's events change; the
// grids derived from it are never patched in place.
type EventIndex struct {
	byDate map[time.Time][]model.Event
}

func NewEventIndex(events map[string]model.Event) EventIndex {
	byDate := make(map[time.Time][]model.Event, len(events))
	for _, ev := range events {
		key := DateOf(ev.Start)
		byDate[key] = append(byDate[key], ev)
	}
	for key := range byDate {
		day := byDate[key]
		sort.Slice(day, func(i, j int) bool { return day[i].Start.Before(day[j].Start) })
		byDate[key] = day
	}
	return EventIndex{byDate: byDate}
}

// On returns the events starting on the given day, sorted by start time.
func (idx EventIndex) On(date time.Time) []model.Event {
	return idx.byDate[DateOf(date)]
}

func (idx EventIndex) HasEvents(date time.Time) bool {
	return len(idx.byDate[DateOf(date)]) > 0
}
