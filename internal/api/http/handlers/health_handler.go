package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/service-request-portal/internal/repository"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	tickets     repository.TicketRepository
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, tickets repository.TicketRepository) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, tickets: tickets}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness. The store is in-process, so readiness only
// surfaces its current size.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ready",
		"tickets": h.tickets.Count(c.UserContext()),
	})
}
