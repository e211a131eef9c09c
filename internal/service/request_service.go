package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/service-request-portal/internal/domain"
	"github.com/spec-kit/service-request-portal/internal/events"
	"github.com/spec-kit/service-request-portal/internal/repository"
	apperrors "github.com/spec-kit/service-request-portal/pkg/util/errorutil"
)

// RequestService coordinates submission, status tracking, and the scripted
// approval progression for service request tickets.
type RequestService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
	clock      func() time.Time
}

// RequestDependencies bundles collaborators for the request service.
type RequestDependencies struct {
	TicketRepo repository.TicketRepository
	Dispatcher events.Dispatcher
	Clock      func() time.Time
}

// SubmitInput describes one submission.
type SubmitInput struct {
	Namespace     string
	Payload       map[string]any
	Justification string
}

// ListFilter describes listing parameters.
type ListFilter struct {
	Namespace *string
	Kind      *domain.RequestKind
	OpenOnly  bool
}

// NewRequestService constructs the service.
func NewRequestService(deps RequestDependencies) *RequestService {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &RequestService{
		tickets:    deps.TicketRepo,
		dispatcher: deps.Dispatcher,
		clock:      clock,
	}
}

// Submit validates a request payload and creates the ticket.
func (s *RequestService) Submit(ctx context.Context, kind domain.RequestKind, input SubmitInput) (*domain.Ticket, error) {
	rt, err := domain.SchemaFor(kind)
	if err != nil {
		return nil, apperrors.NewUnknownRequestType(string(kind))
	}
	if input.Namespace == "" {
		return nil, apperrors.NewValidationError("missing or empty required fields: namespace", map[string]any{"fields": []string{"namespace"}})
	}
	if err := ValidatePayload(rt, input.Payload); err != nil {
		return nil, err
	}

	payload := applyDefaults(kind, input.Payload)
	now := s.clock()

	ticket := &domain.Ticket{
		Kind:                kind,
		Namespace:           input.Namespace,
		Payload:             payload,
		Justification:       justificationOrDefault(kind, input),
		TicketType:          ticketTypeFor(kind, payload),
		Status:              domain.StatusSubmitted,
		LeadTimeDays:        rt.LeadTimeDays,
		CreatedAt:           now,
		EstimatedCompletion: now.AddDate(0, 0, rt.LeadTimeDays),
		History: []domain.HistoryEntry{
			{Status: domain.StatusSubmitted, Note: "Request submitted", Timestamp: now},
		},
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventRequestSubmitted,
		TicketID: ticket.ID,
		Payload: events.RequestSubmittedPayload{
			Kind:         ticket.Kind,
			Namespace:    ticket.Namespace,
			LeadTimeDays: ticket.LeadTimeDays,
		},
	})
	return ticket, nil
}

// Status returns the full ticket for an id.
func (s *RequestService) Status(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	return s.tickets.GetByID(ctx, ticketID)
}

// List returns tickets matching the filter, in insertion order.
func (s *RequestService) List(ctx context.Context, filter ListFilter) ([]domain.Ticket, error) {
	if filter.Kind != nil && !domain.ValidKind(*filter.Kind) {
		return nil, apperrors.NewUnknownRequestType(string(*filter.Kind))
	}
	return s.tickets.ListWithFilter(ctx, repository.TicketFilter{
		Namespace: filter.Namespace,
		Kind:      filter.Kind,
		OpenOnly:  filter.OpenOnly,
	})
}

// Advance moves a ticket one step along the approval path.
func (s *RequestService) Advance(ctx context.Context, ticketID string) (*domain.Ticket, domain.Status, error) {
	ticket, err := s.tickets.Advance(ctx, ticketID)
	if err != nil {
		return nil, "", err
	}
	previous := domain.StatusSubmitted
	if n := len(ticket.History); n >= 2 {
		previous = ticket.History[n-2].Status
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventRequestProgressed,
		TicketID: ticket.ID,
		Payload: events.RequestProgressedPayload{
			OldStatus: previous,
			NewStatus: ticket.Status,
		},
	})
	return ticket, previous, nil
}

func (s *RequestService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.clock()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

// applyDefaults fills the optional payload fields the portal records for each
// kind. Validation has already passed; the input map is not modified.
func applyDefaults(kind domain.RequestKind, payload map[string]any) map[string]any {
	out := make(map[string]any, len(payload)+3)
	for k, v := range payload {
		out[k] = v
	}
	switch kind {
	case domain.KindFirewall:
		if str, _ := out["protocol"].(string); str == "" {
			out["protocol"] = "TCP"
		}
		out["direction"] = "outbound"
	case domain.KindCertificate:
		if str, _ := out["certificate_type"].(string); str == "" {
			out["certificate_type"] = "server"
		}
		out["key_size"] = 2048
		out["validity_years"] = 1
	case domain.KindDNS:
		action, _ := out["request_type"].(string)
		if action == "" {
			action = "create"
		}
		out["dns_action"] = action
		delete(out, "request_type")
	case domain.KindSSO:
		action, _ := out["request_type"].(string)
		if action == "" {
			action = "registration"
		}
		out["sso_action"] = action
		delete(out, "request_type")
	case domain.KindCleanup:
		out["cleanup_type"] = "project_deletion"
		out["confirmed"] = true
	}
	return out
}

func justificationOrDefault(kind domain.RequestKind, input SubmitInput) string {
	if input.Justification != "" {
		return input.Justification
	}
	switch kind {
	case domain.KindFirewall:
		return fmt.Sprintf("Migration firewall request for %s", input.Namespace)
	case domain.KindCertificate:
		return fmt.Sprintf("Migration certificate for %s", input.Namespace)
	case domain.KindDNS:
		return fmt.Sprintf("Migration DNS request for %v", input.Payload["vanity_url"])
	case domain.KindSSO:
		return fmt.Sprintf("Migration SSO request for %v", input.Payload["application_id"])
	case domain.KindOperator:
		return fmt.Sprintf("Operator installation: %v", input.Payload["operator_name"])
	case domain.KindCleanup:
		return fmt.Sprintf("Post-migration cleanup for %s", input.Namespace)
	default:
		return ""
	}
}

// ticketTypeFor mirrors the portal's routing of cleanup work: incidents for
// DEV, change records everywhere else. Other kinds carry no ticket type.
func ticketTypeFor(kind domain.RequestKind, payload map[string]any) string {
	if kind != domain.KindCleanup {
		return ""
	}
	if env, _ := payload["environment"].(string); env == "DEV" {
		return "incident"
	}
	return "change"
}
