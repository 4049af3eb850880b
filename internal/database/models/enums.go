package models

// OccurrenceStatus defines the lifecycle states of a session occurrence
type OccurrenceStatus string

const (
	OccurrenceStatusScheduled OccurrenceStatus = "scheduled"
	OccurrenceStatusCancelled OccurrenceStatus = "cancelled"
	OccurrenceStatusCompleted OccurrenceStatus = "completed"
)

// IsValid checks if the OccurrenceStatus is valid
func (s OccurrenceStatus) IsValid() bool {
	switch s {
	case OccurrenceStatusScheduled, OccurrenceStatusCancelled, OccurrenceStatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no further status transition is allowed.
// Cancelled and completed occurrences never return to scheduled.
func (s OccurrenceStatus) IsTerminal() bool {
	return s == OccurrenceStatusCancelled || s == OccurrenceStatusCompleted
}
