package sync

import (
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/phasecurve/gcal-imp/internal/model"
)

const allDayLayout = "2006-01-02"

// toAPI converts a domain event into the wire shape the Calendar API
// expects. All-day events use the date-only fields; timed events use
// RFC3339 datetimes.
func toAPI(ev model.Event) *calendar.Event {
	out := &calendar.Event{
		Id:          ev.ID,
		Summary:     ev.Title,
		Description: ev.Description,
		Location:    ev.Location,
		Status:      string(ev.Status),
	}
	if ev.AllDay {
		out.Start = &calendar.EventDateTime{Date: ev.Start.UTC().Format(allDayLayout)}
		out.End = &calendar.EventDateTime{Date: ev.End.UTC().Format(allDayLayout)}
	} else {
		out.Start = &calendar.EventDateTime{DateTime: ev.Start.UTC().Format(time.RFC3339)}
		out.End = &calendar.EventDateTime{DateTime: ev.End.UTC().Format(time.RFC3339)}
	}
	for _, email := range ev.Attendees {
		out.Attendees = append(out.Attendees, &calendar.EventAttendee{Email: email})
	}
	if len(ev.Reminders) > 0 {
		overrides := make([]*calendar.EventReminder, 0, len(ev.Reminders))
		for _, r := range ev.Reminders {
			overrides = append(overrides, &calendar.EventReminder{
				Method:  string(r.Method),
				Minutes: int64(r.MinutesBefore),
			})
		}
		out.Reminders = &calendar.EventReminders{
			UseDefault:      false,
			Overrides:       overrides,
			ForceSendFields: []string{"UseDefault"},
		}
	}
	return out
}

// fromAPI converts a Calendar API event into the domain shape.
func fromAPI(calendarID string, in *calendar.Event) (model.Event, error) {
	start, allDay, err := parseEventTime(in.Start)
	if err != nil {
		return model.Event{}, fmt.Errorf("event %s start: %w", in.Id, err)
	}
	end, _, err := parseEventTime(in.End)
	if err != nil {
		return model.Event{}, fmt.Errorf("event %s end: %w", in.Id, err)
	}

	ev := model.Event{
		ID:          in.Id,
		CalendarID:  calendarID,
		Title:       in.Summary,
		Description: in.Description,
		Location:    in.Location,
		Start:       start,
		End:         end,
		AllDay:      allDay,
		Status:      model.EventStatus(in.Status),
		HTMLLink:    in.HtmlLink,
	}
	if in.Updated != "" {
		if ev.LastModified, err = time.Parse(time.RFC3339, in.Updated); err != nil {
			return model.Event{}, fmt.Errorf("event %s updated: %w", in.Id, err)
		}
	}
	for _, a := range in.Attendees {
		if a.Email != "" {
			ev.Attendees = append(ev.Attendees, a.Email)
		}
	}
	if in.Reminders != nil {
		for _, r := range in.Reminders.Overrides {
			ev.Reminders = append(ev.Reminders, model.Reminder{
				Method:        model.ReminderMethod(r.Method),
				MinutesBefore: int(r.Minutes),
			})
		}
	}
	return ev, nil
}

func parseEventTime(edt *calendar.EventDateTime) (time.Time, bool, error) {
	if edt == nil {
		return time.Time{}, false, fmt.Errorf("missing event time")
	}
	if edt.Date != "" {
		t, err := time.Parse(allDayLayout, edt.Date)
		return t, true, err
	}
	t, err := time.Parse(time.RFC3339, edt.DateTime)
	return t.UTC(), false, err
}
