package domain

import "time"

// Status enumerates lifecycle states for service request tickets.
type Status string

const (
	StatusSubmitted       Status = "submitted"
	StatusPendingApproval Status = "pending_approval"
	StatusApproved        Status = "approved"
	StatusInProgress      Status = "in_progress"
	StatusCompleted       Status = "completed"
	StatusRejected        Status = "rejected"
)

// happyPath is the single-step progression walked by approval simulation.
var happyPath = map[Status]Status{
	StatusSubmitted:       StatusPendingApproval,
	StatusPendingApproval: StatusApproved,
	StatusApproved:        StatusInProgress,
	StatusInProgress:      StatusCompleted,
}

var allowedTransitions = map[Status][]Status{
	StatusSubmitted:       {StatusPendingApproval},
	StatusPendingApproval: {StatusApproved, StatusRejected},
	StatusApproved:        {StatusInProgress},
	StatusInProgress:      {StatusCompleted},
	StatusCompleted:       {},
	StatusRejected:        {},
}

// Next returns the happy-path successor of s; ok is false for terminal states.
func (s Status) Next() (Status, bool) {
	next, ok := happyPath[s]
	return next, ok
}

// Terminal reports whether no further transition is possible from s.
func (s Status) Terminal() bool {
	return len(allowedTransitions[s]) == 0
}

// CanTransition reports whether current -> next is a legal edge.
func CanTransition(current, next Status) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// HistoryEntry is one immutable status record; tickets accumulate one per
// transition, starting with the submission itself.
type HistoryEntry struct {
	Status    Status
	Note      string
	Timestamp time.Time
}

// Ticket is the aggregate for one infrastructure change request.
type Ticket struct {
	ID                  string
	Kind                RequestKind
	Namespace           string
	Payload             map[string]any
	Justification       string
	TicketType          string
	Status              Status
	LeadTimeDays        int
	CreatedAt           time.Time
	EstimatedCompletion time.Time
	History             []HistoryEntry
}

// Clone returns a copy that shares no mutable state with the original.
func (t *Ticket) Clone() *Ticket {
	copied := *t
	copied.Payload = make(map[string]any, len(t.Payload))
	for k, v := range t.Payload {
		copied.Payload[k] = v
	}
	copied.History = append([]HistoryEntry(nil), t.History...)
	return &copied
}
