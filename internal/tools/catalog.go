package tools

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/spec-kit/service-request-portal/internal/domain"
	"github.com/spec-kit/service-request-portal/internal/service"
)

// catalog declares the nine portal tools. The schemas mirror the argument
// validation the engine enforces; descriptions guide the calling agent.
func catalog(requests *service.RequestService) []Definition {
	return []Definition{
		{
			Name:        "submit_firewall_request",
			Description: "Submit a firewall rule request for new EgressIP whitelisting. Use when migrating workloads and internal systems need updated firewall rules.",
			InputSchema: objectSchema(map[string]*jsonschema.Schema{
				"namespace":         stringSchema("Namespace requiring the firewall rule"),
				"source_egress_ips": listSchema("New EgressIP addresses"),
				"destination_hosts": listSchema("Target hosts/IPs that need access"),
				"destination_ports": listSchema("Target ports"),
				"protocol":          enumSchema("TCP or UDP", "TCP", "UDP"),
				"justification":     stringSchema("Business justification"),
			}, "namespace", "source_egress_ips", "destination_hosts", "destination_ports"),
			handle: submitTool(requests, domain.KindFirewall),
		},
		{
			Name:        "submit_certificate_request",
			Description: "Submit a certificate request for migration. Use when cluster-based routes are in the SAN list and need updating.",
			InputSchema: objectSchema(map[string]*jsonschema.Schema{
				"namespace":        stringSchema("Namespace requiring the certificate"),
				"common_name":      stringSchema("Primary hostname for the certificate"),
				"san_list":         listSchema("Subject Alternative Names"),
				"certificate_type": stringSchema("Type of certificate (default server)"),
				"justification":    stringSchema("Business justification"),
			}, "namespace", "common_name", "san_list"),
			handle: submitTool(requests, domain.KindCertificate),
		},
		{
			Name:        "submit_dns_request",
			Description: "Submit a DNS/Vanity URL request. Use to create or modify Vanity URL mappings to a new cluster VIP.",
			InputSchema: objectSchema(map[string]*jsonschema.Schema{
				"namespace":     stringSchema("Associated namespace"),
				"vanity_url":    stringSchema("The vanity URL"),
				"target_vip":    stringSchema("Target VIP hostname"),
				"target_vip_ip": stringSchema("Target VIP IP address"),
				"request_type":  enumSchema("DNS action", "create", "modify", "delete"),
				"justification": stringSchema("Business justification"),
			}, "namespace", "vanity_url", "target_vip", "target_vip_ip"),
			handle: submitTool(requests, domain.KindDNS),
		},
		{
			Name:        "submit_sso_request",
			Description: "Submit an SSO configuration request for migration. Use to register with a new SSO host or update the base URL.",
			InputSchema: objectSchema(map[string]*jsonschema.Schema{
				"namespace":      stringSchema("Namespace for the application"),
				"application_id": stringSchema("Application identifier"),
				"sso_provider":   enumSchema("SSO provider type", "modern_sso", "legacy_sso"),
				"base_url":       stringSchema("Application base URL"),
				"new_sso_host":   stringSchema("New SSO registration hostname"),
				"request_type":   enumSchema("SSO action", "registration", "modification", "removal"),
				"justification":  stringSchema("Business justification"),
			}, "namespace", "application_id", "sso_provider", "base_url", "new_sso_host"),
			handle: submitTool(requests, domain.KindSSO),
		},
		{
			Name:        "submit_operator_request",
			Description: "Submit an operator installation request to Platform Ops. Use for Redis, Couchbase, Service Mesh, etc.",
			InputSchema: objectSchema(map[string]*jsonschema.Schema{
				"namespace":           stringSchema("Target namespace"),
				"operator_name":       enumSchema("Name of operator", "redis", "couchbase", "service_mesh", "other"),
				"operator_config":     {Type: "object", Description: "Configuration including resource requirements"},
				"destination_cluster": stringSchema("Destination cluster name"),
				"justification":       stringSchema("Business justification"),
			}, "namespace", "operator_name", "operator_config", "destination_cluster"),
			handle: submitTool(requests, domain.KindOperator),
		},
		{
			Name:        "submit_cleanup_request",
			Description: "Submit a cleanup request to delete a project from the source cluster after successful migration.",
			InputSchema: objectSchema(map[string]*jsonschema.Schema{
				"namespace":      stringSchema("Namespace to delete"),
				"source_cluster": stringSchema("Source cluster to delete from"),
				"environment":    enumSchema("Deployment environment", "DEV", "UAT", "PROD"),
				"confirmation":   stringSchema("Must be 'I_CONFIRM_DELETION'"),
				"justification":  stringSchema("Business justification"),
			}, "namespace", "source_cluster", "environment", "confirmation"),
			handle: submitTool(requests, domain.KindCleanup),
		},
		{
			Name:        "check_request_status",
			Description: "Check the status of a service request by ticket ID.",
			InputSchema: objectSchema(map[string]*jsonschema.Schema{
				"ticket_id": stringSchema("The ticket ID to check"),
			}, "ticket_id"),
			handle: statusTool(requests),
		},
		{
			Name:        "list_open_requests",
			Description: "List all open service requests, optionally filtered by namespace or type.",
			InputSchema: objectSchema(map[string]*jsonschema.Schema{
				"namespace":    stringSchema("Filter by namespace"),
				"request_type": enumSchema("Filter by request type", "firewall", "certificate", "dns", "sso", "operator", "cleanup"),
			}),
			handle: listOpenTool(requests),
		},
		{
			Name:        "simulate_approval",
			Description: "Simulate approval/progress on a request (demo only). Advances the request one workflow stage.",
			InputSchema: objectSchema(map[string]*jsonschema.Schema{
				"ticket_id": stringSchema("Ticket to advance"),
			}, "ticket_id"),
			handle: approvalTool(requests),
		},
	}
}

func objectSchema(properties map[string]*jsonschema.Schema, required ...string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

func stringSchema(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: description}
}

func listSchema(description string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "array",
		Description: description,
		Items:       &jsonschema.Schema{Type: "string"},
	}
}

func enumSchema(description string, values ...string) *jsonschema.Schema {
	enum := make([]any, 0, len(values))
	for _, v := range values {
		enum = append(enum, v)
	}
	return &jsonschema.Schema{Type: "string", Description: description, Enum: enum}
}
