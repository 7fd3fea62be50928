package reconcile

import "fmt"

// Trip status machine: started -> ongoing -> completed, strictly forward.
// Every submit handler calls AdvanceStatus with EventFirstActivity instead
// of carrying its own first-action check.

type Status string

const (
	StatusStarted   Status = "started"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

type StatusEvent string

const (
	// EventFirstActivity fires on any management action (purchase, sale,
	// expense...). It moves a started trip to ongoing and is a no-op on
	// a trip that is already ongoing.
	EventFirstActivity StatusEvent = "first_activity"
	EventComplete      StatusEvent = "complete"
)

// AdvanceStatus returns the status after the event. Completed trips
// accept no further events.
func AdvanceStatus(s Status, e StatusEvent) (Status, error) {
	switch e {
	case EventFirstActivity:
		switch s {
		case StatusStarted:
			return StatusOngoing, nil
		case StatusOngoing:
			return StatusOngoing, nil
		}
	case EventComplete:
		switch s {
		case StatusStarted, StatusOngoing:
			return StatusCompleted, nil
		}
	}
	return s, fmt.Errorf("invalid status transition: %s on %s trip", e, s)
}
