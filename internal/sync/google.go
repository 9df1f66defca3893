package sync

import (
	"context"
	"time"

	"google.golang.org/api/calendar/v3"
)

// googleAPI adapts *calendar.Service to the engine's API interface.
type googleAPI struct {
	svc *calendar.Service
}

func NewGoogleAPI(svc *calendar.Service) API {
	return &googleAPI{svc: svc}
}

func (g *googleAPI) ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]*calendar.Event, error) {
	var (
		out       []*calendar.Event
		pageToken string
	)
	for {
		call := g.svc.Events.List(calendarID).
			TimeMin(timeMin.Format(time.RFC3339)).
			TimeMax(timeMax.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		page, err := call.Do()
		if err != nil {
			return nil, err
		}
		out = append(out, page.Items...)
		if page.NextPageToken == "" {
			return out, nil
		}
		pageToken = page.NextPageToken
	}
}

func (g *googleAPI) InsertEvent(ctx context.Context, calendarID string, ev *calendar.Event) (*calendar.Event, error) {
	return g.svc.Events.Insert(calendarID, ev).Context(ctx).Do()
}

func (g *googleAPI) UpdateEvent(ctx context.Context, calendarID, eventID string, ev *calendar.Event) (*calendar.Event, error) {
	return g.svc.Events.Update(calendarID, eventID, ev).Context(ctx).Do()
}

func (g *googleAPI) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	return g.svc.Events.Delete(calendarID, eventID).Context(ctx).Do()
}

func (g *googleAPI) ListCalendars(ctx context.Context) ([]*calendar.CalendarListEntry, error) {
	list, err := g.svc.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}
