package repository

import (
	"context"

	"github.com/spec-kit/service-request-portal/internal/domain"
)

// TicketFilter captures listing parameters. Nil filters match everything;
// OpenOnly drops tickets in terminal states.
type TicketFilter struct {
	Namespace *string
	Kind      *domain.RequestKind
	OpenOnly  bool
}

// TicketRepository encapsulates ticket storage. The portal ships an in-memory
// implementation only; the store is deliberately not durable.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	ListWithFilter(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
	Advance(ctx context.Context, id string) (*domain.Ticket, error)
	Count(ctx context.Context) int
}
