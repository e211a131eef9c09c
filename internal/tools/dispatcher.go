package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/spec-kit/service-request-portal/internal/api/dto"
	"github.com/spec-kit/service-request-portal/internal/domain"
	"github.com/spec-kit/service-request-portal/internal/service"
	apperrors "github.com/spec-kit/service-request-portal/pkg/util/errorutil"
)

// Handler executes one tool call.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Definition describes one tool: its name, a description for the calling
// agent, the JSON schema of its arguments, and the bound handler.
type Definition struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
	handle      Handler
}

// Dispatcher holds the closed set of tools and routes calls by name.
type Dispatcher struct {
	defs   []Definition
	byName map[string]Definition
}

// NewDispatcher builds the tool catalog bound to the request service.
func NewDispatcher(requests *service.RequestService) *Dispatcher {
	defs := catalog(requests)
	byName := make(map[string]Definition, len(defs))
	for _, def := range defs {
		byName[def.Name] = def
	}
	return &Dispatcher{defs: defs, byName: byName}
}

// Definitions returns the catalog in registration order.
func (d *Dispatcher) Definitions() []Definition {
	return d.defs
}

// Call routes a tool invocation by name.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) (any, error) {
	def, ok := d.byName[name]
	if !ok {
		return nil, apperrors.NewUnknownTool(name)
	}
	if args == nil {
		args = map[string]any{}
	}
	return def.handle(ctx, args)
}

func submitTool(requests *service.RequestService, kind domain.RequestKind) Handler {
	return func(ctx context.Context, args map[string]any) (any, error) {
		payload := make(map[string]any, len(args))
		for k, v := range args {
			payload[k] = v
		}
		namespace, _ := payload["namespace"].(string)
		delete(payload, "namespace")
		justification, _ := payload["justification"].(string)
		delete(payload, "justification")

		ticket, err := requests.Submit(ctx, kind, service.SubmitInput{
			Namespace:     namespace,
			Payload:       payload,
			Justification: justification,
		})
		if err != nil {
			return nil, err
		}
		return submitResult(ticket), nil
	}
}

func statusTool(requests *service.RequestService) Handler {
	return func(ctx context.Context, args map[string]any) (any, error) {
		ticketID, err := requiredTicketID(args)
		if err != nil {
			return nil, err
		}
		ticket, err := requests.Status(ctx, ticketID)
		if err != nil {
			return nil, err
		}
		return dto.StatusResult{Success: true, TicketDetail: dto.NewTicketDetail(ticket)}, nil
	}
}

func listOpenTool(requests *service.RequestService) Handler {
	return func(ctx context.Context, args map[string]any) (any, error) {
		filter := service.ListFilter{OpenOnly: true}
		if ns, _ := args["namespace"].(string); ns != "" {
			filter.Namespace = &ns
		}
		if rt, _ := args["request_type"].(string); rt != "" {
			kind := domain.RequestKind(rt)
			filter.Kind = &kind
		}
		tickets, err := requests.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		summaries := make([]dto.TicketSummary, 0, len(tickets))
		for i := range tickets {
			summaries = append(summaries, dto.NewTicketSummary(&tickets[i]))
		}
		return dto.ListResult{Success: true, Count: len(summaries), Requests: summaries}, nil
	}
}

func approvalTool(requests *service.RequestService) Handler {
	return func(ctx context.Context, args map[string]any) (any, error) {
		ticketID, err := requiredTicketID(args)
		if err != nil {
			return nil, err
		}
		ticket, previous, err := requests.Advance(ctx, ticketID)
		if err != nil {
			return nil, err
		}
		return dto.ApprovalResult{
			Success:        true,
			TicketID:       ticket.ID,
			PreviousStatus: previous,
			NewStatus:      ticket.Status,
			Message:        fmt.Sprintf("Request progressed to %s", ticket.Status),
		}, nil
	}
}

func requiredTicketID(args map[string]any) (string, error) {
	ticketID, _ := args["ticket_id"].(string)
	if strings.TrimSpace(ticketID) == "" {
		return "", apperrors.NewValidationError("ticket_id required", map[string]any{"fields": []string{"ticket_id"}})
	}
	return ticketID, nil
}

func submitResult(ticket *domain.Ticket) dto.SubmitResult {
	completion := ticket.EstimatedCompletion.Format("2006-01-02")
	result := dto.SubmitResult{
		Success:             true,
		TicketID:            ticket.ID,
		TicketType:          ticket.TicketType,
		Status:              ticket.Status,
		LeadTimeDays:        ticket.LeadTimeDays,
		EstimatedCompletion: completion,
		Request:             dto.NewTicketDetail(ticket),
	}
	if ticket.Kind == domain.KindCleanup {
		result.Message = fmt.Sprintf("Cleanup request submitted as %s. Namespace will be deleted from %v.",
			ticket.TicketType, ticket.Payload["source_cluster"])
		result.Warning = "This action is irreversible. Deleted projects cannot be restored."
		return result
	}
	result.Message = fmt.Sprintf("%s request submitted. Estimated completion: %s", kindLabel(ticket.Kind), completion)
	return result
}

func kindLabel(kind domain.RequestKind) string {
	switch kind {
	case domain.KindFirewall:
		return "Firewall"
	case domain.KindCertificate:
		return "Certificate"
	case domain.KindDNS:
		return "DNS"
	case domain.KindSSO:
		return "SSO"
	case domain.KindOperator:
		return "Operator"
	default:
		return "Service"
	}
}
