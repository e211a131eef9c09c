package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/service-request-portal/internal/tools"
	apperrors "github.com/spec-kit/service-request-portal/pkg/util/errorutil"
)

// ToolsHandler exposes the tool catalog and invocation endpoints consumed by
// the orchestrator's tool-calling layer.
type ToolsHandler struct {
	dispatcher *tools.Dispatcher
}

// NewToolsHandler constructs handler.
func NewToolsHandler(dispatcher *tools.Dispatcher) *ToolsHandler {
	return &ToolsHandler{dispatcher: dispatcher}
}

// ListTools GET /tools.
func (h *ToolsHandler) ListTools(c *fiber.Ctx) error {
	defs := h.dispatcher.Definitions()
	items := make([]fiber.Map, 0, len(defs))
	for _, def := range defs {
		items = append(items, fiber.Map{
			"name":        def.Name,
			"description": def.Description,
			"inputSchema": def.InputSchema,
		})
	}
	return c.JSON(fiber.Map{"tools": items})
}

// CallTool POST /tools/:name.
func (h *ToolsHandler) CallTool(c *fiber.Ctx) error {
	args := map[string]any{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&args); err != nil {
			return apperrors.NewValidationError("invalid JSON payload", nil)
		}
	}
	result, err := h.dispatcher.Call(c.UserContext(), c.Params("name"), args)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
