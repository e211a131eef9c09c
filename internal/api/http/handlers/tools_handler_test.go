package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/service-request-portal/internal/api/http"
	"github.com/spec-kit/service-request-portal/internal/api/http/handlers"
	"github.com/spec-kit/service-request-portal/internal/events"
	"github.com/spec-kit/service-request-portal/internal/observability"
	"github.com/spec-kit/service-request-portal/internal/repository"
	"github.com/spec-kit/service-request-portal/internal/service"
	"github.com/spec-kit/service-request-portal/internal/tools"
)

func newTestApp() *fiber.App {
	logger := zap.NewNop()
	metrics := observability.NewMetrics()

	ticketRepo := repository.NewMemoryTicketRepository(repository.NewSequence(1000))
	requestService := service.NewRequestService(service.RequestDependencies{
		TicketRepo: ticketRepo,
		Dispatcher: events.NewInMemoryDispatcher(),
	})

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler("test", "test", ticketRepo),
		Tools:  handlers.NewToolsHandler(tools.NewDispatcher(requestService)),
	})
	return app
}

func callTool(t *testing.T, app *fiber.App, name string, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/tools/"+name, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded), "body: %s", data)
	return resp.StatusCode, decoded
}

func TestListToolsCatalog(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/tools", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded struct {
		Tools []struct {
			Name        string         `json:"name"`
			Description string         `json:"description"`
			InputSchema map[string]any `json:"inputSchema"`
		} `json:"tools"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))

	names := make([]string, 0, len(decoded.Tools))
	for _, tool := range decoded.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description)
		assert.Equal(t, "object", tool.InputSchema["type"])
	}
	assert.Equal(t, []string{
		"submit_firewall_request",
		"submit_certificate_request",
		"submit_dns_request",
		"submit_sso_request",
		"submit_operator_request",
		"submit_cleanup_request",
		"check_request_status",
		"list_open_requests",
		"simulate_approval",
	}, names)
}

func TestSubmitFirewallRequestOverHTTP(t *testing.T) {
	app := newTestApp()

	status, body := callTool(t, app, "submit_firewall_request", `{
		"namespace": "payments-api",
		"source_egress_ips": ["10.100.50.10"],
		"destination_hosts": ["db.internal.example.com"],
		"destination_ports": ["5432"]
	}`)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.True(t, strings.HasPrefix(body["ticket_id"].(string), "FW-"), "ticket_id %v", body["ticket_id"])
	assert.Equal(t, "submitted", body["status"])
	assert.Equal(t, float64(14), body["lead_time_days"])
	assert.NotEmpty(t, body["estimated_completion"])

	request, ok := body["request"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "payments-api", request["namespace"])
	details, ok := request["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "TCP", details["protocol"])
}

func TestSubmitFirewallMissingFieldOverHTTP(t *testing.T) {
	app := newTestApp()

	status, body := callTool(t, app, "submit_firewall_request", `{
		"namespace": "payments-api",
		"source_egress_ips": ["10.100.50.10"],
		"destination_hosts": ["db.internal.example.com"]
	}`)

	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	errBody := body["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_FAILED", errBody["code"])
	details := errBody["details"].(map[string]any)
	assert.Contains(t, details["fields"], "destination_ports")

	// The failed submission left nothing behind.
	status, listBody := callTool(t, app, "list_open_requests", `{}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), listBody["count"])
}

func TestCleanupConfirmationOverHTTP(t *testing.T) {
	app := newTestApp()

	status, body := callTool(t, app, "submit_cleanup_request", `{
		"namespace": "payments-api",
		"source_cluster": "vmw-prod-01",
		"environment": "PROD",
		"confirmation": "WRONG"
	}`)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "CONFIRMATION_MISMATCH", body["error"].(map[string]any)["code"])

	status, body = callTool(t, app, "submit_cleanup_request", `{
		"namespace": "payments-api",
		"source_cluster": "vmw-prod-01",
		"environment": "PROD",
		"confirmation": "I_CONFIRM_DELETION"
	}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "change", body["ticket_type"])
	assert.NotEmpty(t, body["warning"])
}

func TestApprovalWalkOverHTTP(t *testing.T) {
	app := newTestApp()

	status, body := callTool(t, app, "submit_certificate_request", `{
		"namespace": "payments-api",
		"common_name": "pay.example.com",
		"san_list": ["pay.example.com", "pay-alt.example.com"]
	}`)
	require.Equal(t, http.StatusOK, status)
	ticketID := body["ticket_id"].(string)

	want := []string{"pending_approval", "approved", "in_progress", "completed"}
	for _, expected := range want {
		status, body = callTool(t, app, "simulate_approval", fmt.Sprintf(`{"ticket_id": %q}`, ticketID))
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, expected, body["new_status"])
	}

	status, body = callTool(t, app, "simulate_approval", fmt.Sprintf(`{"ticket_id": %q}`, ticketID))
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "INVALID_TRANSITION", body["error"].(map[string]any)["code"])

	// Completed tickets drop out of the open listing.
	status, body = callTool(t, app, "list_open_requests", `{}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["count"])
}

func TestCheckRequestStatusOverHTTP(t *testing.T) {
	app := newTestApp()

	status, body := callTool(t, app, "submit_sso_request", `{
		"namespace": "accounts-service",
		"application_id": "accounts-web",
		"sso_provider": "modern_sso",
		"base_url": "https://accounts.example.com",
		"new_sso_host": "sso-bm.example.com"
	}`)
	require.Equal(t, http.StatusOK, status)
	ticketID := body["ticket_id"].(string)

	status, body = callTool(t, app, "check_request_status", fmt.Sprintf(`{"ticket_id": %q}`, ticketID))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, ticketID, body["ticket_id"])
	assert.Equal(t, "sso", body["request_type"])
	assert.Equal(t, "submitted", body["status"])
	history, ok := body["history"].([]any)
	require.True(t, ok)
	assert.Len(t, history, 1)
}

func TestCheckRequestStatusNotFound(t *testing.T) {
	app := newTestApp()

	status, body := callTool(t, app, "check_request_status", `{"ticket_id": "FW-9999"}`)
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["error"].(map[string]any)["code"])
}

func TestListOpenRequestsNamespaceFilter(t *testing.T) {
	app := newTestApp()

	submit := func(namespace string) {
		status, _ := callTool(t, app, "submit_firewall_request", fmt.Sprintf(`{
			"namespace": %q,
			"source_egress_ips": ["10.100.50.10"],
			"destination_hosts": ["db.internal.example.com"],
			"destination_ports": ["5432"]
		}`, namespace))
		require.Equal(t, http.StatusOK, status)
	}
	submit("payments-api")
	submit("accounts-service")

	status, body := callTool(t, app, "list_open_requests", `{"namespace": "payments-api"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])
	requests := body["requests"].([]any)
	require.Len(t, requests, 1)
	assert.Equal(t, "payments-api", requests[0].(map[string]any)["namespace"])
}

func TestUnknownToolReturns404(t *testing.T) {
	app := newTestApp()

	status, body := callTool(t, app, "submit_loadbalancer_request", `{}`)
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "UNKNOWN_TOOL", body["error"].(map[string]any)["code"])
}

func TestMalformedBodyReturns400(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodPost, "/tools/list_open_requests", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/live", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Equal(t, "ready", decoded["status"])
	assert.Equal(t, float64(0), decoded["tickets"])
}
