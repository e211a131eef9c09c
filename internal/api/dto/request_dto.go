package dto

import (
	"time"

	"github.com/spec-kit/service-request-portal/internal/domain"
)

const dateLayout = "2006-01-02"

// HistoryEntryResponse is one status record in a ticket's audit trail.
type HistoryEntryResponse struct {
	Status    domain.Status `json:"status"`
	Note      string        `json:"note,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// TicketSummary is the listing row.
type TicketSummary struct {
	TicketID            string             `json:"ticket_id"`
	RequestType         domain.RequestKind `json:"request_type"`
	Namespace           string             `json:"namespace"`
	Status              domain.Status      `json:"status"`
	CreatedAt           time.Time          `json:"created_at"`
	EstimatedCompletion string             `json:"estimated_completion"`
}

// TicketDetail provides full ticket info.
type TicketDetail struct {
	TicketID            string                 `json:"ticket_id"`
	RequestType         domain.RequestKind     `json:"request_type"`
	Namespace           string                 `json:"namespace"`
	TicketType          string                 `json:"ticket_type,omitempty"`
	Status              domain.Status          `json:"status"`
	Details             map[string]any         `json:"details"`
	Justification       string                 `json:"justification"`
	LeadTimeDays        int                    `json:"lead_time_days"`
	CreatedAt           time.Time              `json:"created_at"`
	EstimatedCompletion string                 `json:"estimated_completion"`
	History             []HistoryEntryResponse `json:"history"`
}

// SubmitResult is the envelope returned by every submit_* tool.
type SubmitResult struct {
	Success             bool          `json:"success"`
	TicketID            string        `json:"ticket_id"`
	TicketType          string        `json:"ticket_type,omitempty"`
	Status              domain.Status `json:"status"`
	Message             string        `json:"message"`
	LeadTimeDays        int           `json:"lead_time_days"`
	EstimatedCompletion string        `json:"estimated_completion"`
	Warning             string        `json:"warning,omitempty"`
	Request             TicketDetail  `json:"request"`
}

// StatusResult is the envelope returned by check_request_status.
type StatusResult struct {
	Success bool `json:"success"`
	TicketDetail
}

// ListResult is the envelope returned by list_open_requests.
type ListResult struct {
	Success  bool            `json:"success"`
	Count    int             `json:"count"`
	Requests []TicketSummary `json:"requests"`
}

// ApprovalResult is the envelope returned by simulate_approval.
type ApprovalResult struct {
	Success        bool          `json:"success"`
	TicketID       string        `json:"ticket_id"`
	PreviousStatus domain.Status `json:"previous_status"`
	NewStatus      domain.Status `json:"new_status"`
	Message        string        `json:"message"`
}

// NewTicketSummary maps a domain ticket to its listing row.
func NewTicketSummary(ticket *domain.Ticket) TicketSummary {
	return TicketSummary{
		TicketID:            ticket.ID,
		RequestType:         ticket.Kind,
		Namespace:           ticket.Namespace,
		Status:              ticket.Status,
		CreatedAt:           ticket.CreatedAt,
		EstimatedCompletion: ticket.EstimatedCompletion.Format(dateLayout),
	}
}

// NewTicketDetail maps a domain ticket to its full response form.
func NewTicketDetail(ticket *domain.Ticket) TicketDetail {
	history := make([]HistoryEntryResponse, 0, len(ticket.History))
	for _, entry := range ticket.History {
		history = append(history, HistoryEntryResponse{
			Status:    entry.Status,
			Note:      entry.Note,
			Timestamp: entry.Timestamp,
		})
	}
	return TicketDetail{
		TicketID:            ticket.ID,
		RequestType:         ticket.Kind,
		Namespace:           ticket.Namespace,
		TicketType:          ticket.TicketType,
		Status:              ticket.Status,
		Details:             ticket.Payload,
		Justification:       ticket.Justification,
		LeadTimeDays:        ticket.LeadTimeDays,
		CreatedAt:           ticket.CreatedAt,
		EstimatedCompletion: ticket.EstimatedCompletion.Format(dateLayout),
		History:             history,
	}
}
