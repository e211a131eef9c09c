package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHappyPathChain(t *testing.T) {
	want := []Status{StatusPendingApproval, StatusApproved, StatusInProgress, StatusCompleted}

	current := StatusSubmitted
	for _, expected := range want {
		next, ok := current.Next()
		require.True(t, ok, "expected %s to have a successor", current)
		assert.Equal(t, expected, next)
		current = next
	}

	_, ok := current.Next()
	assert.False(t, ok, "completed must be terminal")
}

func TestTerminalStates(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.False(t, StatusSubmitted.Terminal())
	assert.False(t, StatusPendingApproval.Terminal())
	assert.False(t, StatusApproved.Terminal())
	assert.False(t, StatusInProgress.Terminal())
}

func TestRejectionEdge(t *testing.T) {
	assert.True(t, CanTransition(StatusPendingApproval, StatusRejected))
	assert.False(t, CanTransition(StatusSubmitted, StatusRejected))
	assert.False(t, CanTransition(StatusRejected, StatusPendingApproval))

	// The rejection edge exists in the table but is never taken by Next.
	next, ok := StatusPendingApproval.Next()
	require.True(t, ok)
	assert.Equal(t, StatusApproved, next)
}

func TestSchemaFor(t *testing.T) {
	rt, err := SchemaFor(KindFirewall)
	require.NoError(t, err)
	assert.Equal(t, "FW", rt.IDPrefix)
	assert.Equal(t, 14, rt.LeadTimeDays)

	_, err = SchemaFor(RequestKind("loadbalancer"))
	assert.Error(t, err)
}

func TestCatalogLeadTimes(t *testing.T) {
	want := map[RequestKind]int{
		KindFirewall:    14,
		KindCertificate: 7,
		KindDNS:         3,
		KindSSO:         7,
		KindOperator:    5,
		KindCleanup:     3,
	}
	for kind, days := range want {
		rt, err := SchemaFor(kind)
		require.NoError(t, err)
		assert.Equal(t, days, rt.LeadTimeDays, "lead time for %s", kind)
	}
}

func TestTicketCloneIsolation(t *testing.T) {
	ticket := &Ticket{
		ID:      "FW-1001",
		Kind:    KindFirewall,
		Payload: map[string]any{"protocol": "TCP"},
		Status:  StatusSubmitted,
		History: []HistoryEntry{{Status: StatusSubmitted}},
	}

	clone := ticket.Clone()
	clone.Payload["protocol"] = "UDP"
	clone.History = append(clone.History, HistoryEntry{Status: StatusPendingApproval})

	assert.Equal(t, "TCP", ticket.Payload["protocol"])
	assert.Len(t, ticket.History, 1)
}
