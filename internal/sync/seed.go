package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/phasecurve/gcal-imp/internal/model"
	"github.com/phasecurve/gcal-imp/internal/storage"
)

// SeedSampleEvents loads a small demo schedule into an empty cache so
// offline runs have something to navigate. A non-empty cache is left
// alone.
func SeedSampleEvents(ctx context.Context, repo storage.Repository, around time.Time) (int, error) {
	existing, err := repo.ListEvents(ctx, storage.EventListFilter{Limit: 1})
	if err != nil {
		return 0, fmt.Errorf("check cache: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	day := func(offset, hour, min int) time.Time {
		y, m, d := around.UTC().Date()
		return time.Date(y, m, d, hour, min, 0, 0, time.UTC).AddDate(0, 0, offset)
	}

	samples := []model.Event{
		{
			Title:       "Team standup",
			Description: "Daily sync with the team",
			Location:    "Meet",
			Start:       day(0, 9, 30),
			End:         day(0, 9, 45),
		},
		{
			Title:       "Design review",
			Description: "Review the <b>calendar grid</b> mockups. Notes at <a href=\"https://example.com/notes\">the wiki</a>.",
			Location:    "Room 4",
			Start:       day(1, 14, 0),
			End:         day(1, 15, 0),
			Attendees:   []string{"alice@example.com", "bob@example.com"},
		},
		{
			Title:  "Conference",
			Start:  day(7, 0, 0),
			End:    day(10, 0, 0),
			AllDay: true,
		},
		{
			Title:    "Dentist",
			Location: "Main St clinic",
			Start:    day(-3, 11, 0),
			End:      day(-3, 11, 30),
		},
	}

	for i := range samples {
		samples[i].ID = "sample-" + uuid.NewString()
		samples[i].CalendarID = model.DefaultCalendarID
		samples[i].Status = model.StatusConfirmed
		samples[i].LastModified = around.UTC()
		row, err := storage.ToRow(samples[i], false)
		if err != nil {
			return 0, err
		}
		if err := repo.UpsertEvent(ctx, row); err != nil {
			return 0, fmt.Errorf("seed event: %w", err)
		}
	}
	return len(samples), nil
}
