package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/service-request-portal/internal/domain"
)

func TestValidatePayloadShapes(t *testing.T) {
	rt, err := domain.SchemaFor(domain.KindOperator)
	require.NoError(t, err)

	payload := map[string]any{
		"operator_name":       "redis",
		"operator_config":     map[string]any{"replicas": 3},
		"destination_cluster": "bm-east-01",
	}
	assert.NoError(t, ValidatePayload(rt, payload))

	payload["operator_config"] = "not-an-object"
	assert.Error(t, ValidatePayload(rt, payload))

	payload["operator_config"] = map[string]any{}
	assert.NoError(t, ValidatePayload(rt, payload), "empty config object is still present")
}

func TestValidatePayloadAcceptsStringSlices(t *testing.T) {
	rt, err := domain.SchemaFor(domain.KindCertificate)
	require.NoError(t, err)

	// Direct Go callers pass []string where JSON decoding yields []any.
	payload := map[string]any{
		"common_name": "pay.example.com",
		"san_list":    []string{"pay.example.com"},
	}
	assert.NoError(t, ValidatePayload(rt, payload))
}

func TestValidatePayloadBlankStringIsEmpty(t *testing.T) {
	rt, err := domain.SchemaFor(domain.KindDNS)
	require.NoError(t, err)

	payload := map[string]any{
		"vanity_url":    "   ",
		"target_vip":    "vip-bm-01.example.com",
		"target_vip_ip": "10.200.1.5",
	}
	assert.Error(t, ValidatePayload(rt, payload))
}
