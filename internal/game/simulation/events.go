package simulation

import (
	"time"
)

type Event struct {
	Timestamp time.Time
	Elapsed   float64
	Message   string
	IsUrgent  bool
}

func (e *Engagement) AddEvent(message string, isUrgent bool) {
	ev := Event{
		Timestamp: time.Now(),
		Elapsed:   e.Elapsed,
		Message:   message,
		IsUrgent:  isUrgent,
	}
	e.Events = append(e.Events, ev)

	if len(e.Events) > e.maxEventLogSize {
		e.Events = e.Events[len(e.Events)-e.maxEventLogSize:]
	}
}
