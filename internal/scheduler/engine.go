package scheduler

import (
	"container/heap"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/phasecurve/gcal-imp/internal/model"
)

var ErrInvalidFireTime = errors.New("scheduler: invalid fire time")

// Alert is one due reminder, delivered on C() when its fire time
// arrives.
type Alert struct {
	ID      string
	EventID string
	Title   string
	Method  model.ReminderMethod
	FireAt  time.Time
}

type queueItem struct {
	alert Alert
}

type alertQueue []queueItem

func (q alertQueue) Len() int { return len(q) }

func (q alertQueue) Less(i, j int) bool {
	return q[i].alert.FireAt.Before(q[j].alert.FireAt)
}

func (q alertQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *alertQueue) Push(x any) {
	*q = append(*q, x.(queueItem))
}

func (q *alertQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[0 : n-1]
	return item
}

// Engine fires event reminders at their due times. Alerts for deleted
// or rescheduled events are cancelled by event id and dropped lazily
// when they reach the head of the queue.
type Engine struct {
	mu        sync.Mutex
	queue     alertQueue
	cancelled map[string]struct{}
	out       chan Alert
	wakeup    chan struct{}
	stopCh    chan struct{}
	doneCh    chan struct{}
	started   bool
	stopped   bool
	dropped   uint64
}

func NewEngine(bufferSize int) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Engine{
		queue:     make(alertQueue, 0),
		cancelled: make(map[string]struct{}),
		out:       make(chan Alert, bufferSize),
		wakeup:    make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

func (e *Engine) C() <-chan Alert {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	heap.Init(&e.queue)
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

func (e *Engine) Schedule(a Alert) error {
	if a.FireAt.IsZero() {
		return ErrInvalidFireTime
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return errors.New("scheduler: engine stopped")
	}

	delete(e.cancelled, a.EventID)
	heap.Push(&e.queue, queueItem{alert: a})
	e.signalWakeup()
	return nil
}

// ScheduleEvent queues one alert per reminder on the event, skipping
// alerts whose fire time has already passed. It returns the number of
// alerts queued.
func (e *Engine) ScheduleEvent(ev model.Event, now time.Time) (int, error) {
	queued := 0
	for i, r := range ev.Reminders {
		fireAt := ev.Start.Add(-time.Duration(r.MinutesBefore) * time.Minute)
		if !fireAt.After(now) {
			continue
		}
		err := e.Schedule(Alert{
			ID:      fmt.Sprintf("%s/%d", ev.ID, i),
			EventID: ev.ID,
			Title:   ev.Title,
			Method:  r.Method,
			FireAt:  fireAt,
		})
		if err != nil {
			return queued, err
		}
		queued++
	}
	return queued, nil
}

// Cancel suppresses all pending alerts for an event.
func (e *Engine) Cancel(eventID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelled[eventID] = struct{}{}
	e.signalWakeup()
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer *time.Timer
	for {
		next, hasNext := e.peek()
		if !hasNext {
			select {
			case <-e.wakeup:
				continue
			case <-e.stopCh:
				return
			}
		}

		wait := time.Until(next.FireAt)
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			due := e.popDue(time.Now().UTC())
			for _, a := range due {
				select {
				case e.out <- a:
				default:
					atomic.AddUint64(&e.dropped, 1)
				}
			}
		case <-e.wakeup:
			continue
		case <-e.stopCh:
			if timer != nil {
				stopTimer(timer)
			}
			return
		}
	}
}

func (e *Engine) signalWakeup() {
	select {
	case e.wakeup <- struct{}{}:
	default:
	}
}

func (e *Engine) peek() (Alert, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for len(e.queue) > 0 {
		head := e.queue[0].alert
		if _, gone := e.cancelled[head.EventID]; !gone {
			return head, true
		}
		heap.Pop(&e.queue)
	}
	return Alert{}, false
}

func (e *Engine) popDue(now time.Time) []Alert {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Alert, 0)
	for len(e.queue) > 0 {
		next := e.queue[0].alert
		if next.FireAt.After(now) {
			break
		}
		item := heap.Pop(&e.queue).(queueItem)
		if _, gone := e.cancelled[item.alert.EventID]; gone {
			continue
		}
		out = append(out, item.alert)
	}
	return out
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
