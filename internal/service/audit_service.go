package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/service-request-portal/internal/events"
)

// AuditService writes a structured log line for every domain event; the
// portal's stand-in for notifying an external change-management system.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventRequestSubmitted, a.handleSubmitted)
	a.dispatcher.Subscribe(events.EventRequestProgressed, a.handleProgressed)
}

func (a *AuditService) handleSubmitted(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.RequestSubmittedPayload)
	if !ok {
		return nil
	}
	a.logger.Info("request submitted",
		zap.String("ticket_id", event.TicketID),
		zap.String("request_type", string(payload.Kind)),
		zap.String("namespace", payload.Namespace),
		zap.Int("lead_time_days", payload.LeadTimeDays),
	)
	return nil
}

func (a *AuditService) handleProgressed(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.RequestProgressedPayload)
	if !ok {
		return nil
	}
	a.logger.Info("request progressed",
		zap.String("ticket_id", event.TicketID),
		zap.String("old_status", string(payload.OldStatus)),
		zap.String("new_status", string(payload.NewStatus)),
	)
	return nil
}
