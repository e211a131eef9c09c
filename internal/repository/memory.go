package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spec-kit/service-request-portal/internal/domain"
	apperrors "github.com/spec-kit/service-request-portal/pkg/util/errorutil"
)

// memoryTicketRepository keeps every ticket in process memory. Assigning an id
// and inserting happen under one lock so concurrent submissions cannot collide,
// and Advance mutates under the same lock so two callers cannot both move a
// ticket past the same state.
type memoryTicketRepository struct {
	mu    sync.RWMutex
	seq   *Sequence
	byID  map[string]*domain.Ticket
	order []string
}

// NewMemoryTicketRepository instantiates the in-memory store.
func NewMemoryTicketRepository(seq *Sequence) TicketRepository {
	return &memoryTicketRepository{
		seq:  seq,
		byID: make(map[string]*domain.Ticket),
	}
}

func (r *memoryTicketRepository) Create(_ context.Context, ticket *domain.Ticket) error {
	rt, err := domain.SchemaFor(ticket.Kind)
	if err != nil {
		return fmt.Errorf("create ticket: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ticket.ID = r.seq.Next(rt.IDPrefix)
	r.byID[ticket.ID] = ticket.Clone()
	r.order = append(r.order, ticket.ID)
	return nil
}

func (r *memoryTicketRepository) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ticket, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": id})
	}
	return ticket.Clone(), nil
}

func (r *memoryTicketRepository) ListWithFilter(_ context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]domain.Ticket, 0, len(r.order))
	for _, id := range r.order {
		ticket := r.byID[id]
		if filter.Namespace != nil && ticket.Namespace != *filter.Namespace {
			continue
		}
		if filter.Kind != nil && ticket.Kind != *filter.Kind {
			continue
		}
		if filter.OpenOnly && ticket.Status.Terminal() {
			continue
		}
		results = append(results, *ticket.Clone())
	}
	return results, nil
}

func (r *memoryTicketRepository) Advance(_ context.Context, id string) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticket, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": id})
	}
	next, ok := ticket.Status.Next()
	if !ok {
		return nil, apperrors.NewInvalidTransition(id, string(ticket.Status))
	}

	previous := ticket.Status
	ticket.Status = next
	ticket.History = append(ticket.History, domain.HistoryEntry{
		Status:    next,
		Note:      fmt.Sprintf("Auto-progressed from %s", previous),
		Timestamp: time.Now(),
	})
	return ticket.Clone(), nil
}

func (r *memoryTicketRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
