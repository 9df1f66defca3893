package update

import (
	"time"

	"github.com/google/uuid"

	"github.com/phasecurve/gcal-imp/internal/layout"
	"github.com/phasecurve/gcal-imp/internal/model"
)

// localEventID labels events that never reached a server.
func localEventID() string {
	return "local-" + uuid.NewString()
}

func dateOf(t time.Time) time.Time {
	return layout.DateOf(t)
}

func newIndex(events map[string]model.Event) layout.EventIndex {
	return layout.NewEventIndex(events)
}

// cycleIndex advances i by delta within [0, n), wrapping. Returns 0
// when the list is empty.
func cycleIndex(i, delta, n int) int {
	if n <= 0 {
		return 0
	}
	i = (i + delta) % n
	if i < 0 {
		i += n
	}
	return i
}
