package domain

import "fmt"

// RequestKind enumerates the supported service request categories.
type RequestKind string

const (
	KindFirewall    RequestKind = "firewall"
	KindCertificate RequestKind = "certificate"
	KindDNS         RequestKind = "dns"
	KindSSO         RequestKind = "sso"
	KindOperator    RequestKind = "operator"
	KindCleanup     RequestKind = "cleanup"
)

// FieldShape constrains the expected JSON shape of a required field.
type FieldShape string

const (
	ShapeString FieldShape = "string"
	ShapeList   FieldShape = "list"
	ShapeObject FieldShape = "object"
)

// FieldSpec names one required payload field and its shape.
type FieldSpec struct {
	Name  string
	Shape FieldShape
}

// RequestType is the static catalog entry for one request kind.
type RequestType struct {
	Kind           RequestKind
	IDPrefix       string
	LeadTimeDays   int
	RequiredFields []FieldSpec
}

// ConfirmationPhrase must be supplied verbatim on cleanup requests.
const ConfirmationPhrase = "I_CONFIRM_DELETION"

var catalog = map[RequestKind]RequestType{
	KindFirewall: {
		Kind:         KindFirewall,
		IDPrefix:     "FW",
		LeadTimeDays: 14,
		RequiredFields: []FieldSpec{
			{Name: "source_egress_ips", Shape: ShapeList},
			{Name: "destination_hosts", Shape: ShapeList},
			{Name: "destination_ports", Shape: ShapeList},
		},
	},
	KindCertificate: {
		Kind:         KindCertificate,
		IDPrefix:     "CERT",
		LeadTimeDays: 7,
		RequiredFields: []FieldSpec{
			{Name: "common_name", Shape: ShapeString},
			{Name: "san_list", Shape: ShapeList},
		},
	},
	KindDNS: {
		Kind:         KindDNS,
		IDPrefix:     "DNS",
		LeadTimeDays: 3,
		RequiredFields: []FieldSpec{
			{Name: "vanity_url", Shape: ShapeString},
			{Name: "target_vip", Shape: ShapeString},
			{Name: "target_vip_ip", Shape: ShapeString},
		},
	},
	KindSSO: {
		Kind:         KindSSO,
		IDPrefix:     "SSO",
		LeadTimeDays: 7,
		RequiredFields: []FieldSpec{
			{Name: "application_id", Shape: ShapeString},
			{Name: "sso_provider", Shape: ShapeString},
			{Name: "base_url", Shape: ShapeString},
			{Name: "new_sso_host", Shape: ShapeString},
		},
	},
	KindOperator: {
		Kind:         KindOperator,
		IDPrefix:     "OP",
		LeadTimeDays: 5,
		RequiredFields: []FieldSpec{
			{Name: "operator_name", Shape: ShapeString},
			{Name: "operator_config", Shape: ShapeObject},
			{Name: "destination_cluster", Shape: ShapeString},
		},
	},
	KindCleanup: {
		Kind:         KindCleanup,
		IDPrefix:     "CLEAN",
		LeadTimeDays: 3,
		RequiredFields: []FieldSpec{
			{Name: "source_cluster", Shape: ShapeString},
			{Name: "environment", Shape: ShapeString},
			{Name: "confirmation", Shape: ShapeString},
		},
	},
}

// Kinds lists every catalog kind in a stable order.
func Kinds() []RequestKind {
	return []RequestKind{KindFirewall, KindCertificate, KindDNS, KindSSO, KindOperator, KindCleanup}
}

// SchemaFor looks up the catalog entry for a kind.
func SchemaFor(kind RequestKind) (RequestType, error) {
	rt, ok := catalog[kind]
	if !ok {
		return RequestType{}, fmt.Errorf("unknown request type %q", kind)
	}
	return rt, nil
}

// ValidKind reports whether the kind is part of the catalog.
func ValidKind(kind RequestKind) bool {
	_, ok := catalog[kind]
	return ok
}
