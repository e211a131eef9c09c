package events

import (
	"time"

	"github.com/spec-kit/service-request-portal/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventRequestSubmitted  EventType = "request_submitted"
	EventRequestProgressed EventType = "request_progressed"
)

// Event represents a domain event emitted by the request service.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// RequestSubmittedPayload payload.
type RequestSubmittedPayload struct {
	Kind         domain.RequestKind `json:"request_type"`
	Namespace    string             `json:"namespace"`
	LeadTimeDays int                `json:"lead_time_days"`
}

// RequestProgressedPayload payload.
type RequestProgressedPayload struct {
	OldStatus domain.Status `json:"old_status"`
	NewStatus domain.Status `json:"new_status"`
}
