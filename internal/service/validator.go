package service

import (
	"fmt"
	"strings"

	"github.com/spec-kit/service-request-portal/internal/domain"
	apperrors "github.com/spec-kit/service-request-portal/pkg/util/errorutil"
)

// ValidatePayload checks a submission payload against the catalog schema for
// its kind. The payload is returned to the caller untouched; defaults are
// applied later, after validation has passed.
func ValidatePayload(rt domain.RequestType, payload map[string]any) error {
	var missing []string
	for _, field := range rt.RequiredFields {
		if !fieldPresent(payload[field.Name], field.Shape) {
			missing = append(missing, field.Name)
		}
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError(
			fmt.Sprintf("missing or empty required fields: %s", strings.Join(missing, ", ")),
			map[string]any{"fields": missing},
		)
	}

	if rt.Kind == domain.KindCleanup {
		confirmation, _ := payload["confirmation"].(string)
		if confirmation != domain.ConfirmationPhrase {
			return apperrors.NewConfirmationMismatch(domain.ConfirmationPhrase)
		}
	}
	return nil
}

func fieldPresent(value any, shape domain.FieldShape) bool {
	if value == nil {
		return false
	}
	switch shape {
	case domain.ShapeString:
		s, ok := value.(string)
		return ok && strings.TrimSpace(s) != ""
	case domain.ShapeList:
		switch v := value.(type) {
		case []any:
			return len(v) > 0
		case []string:
			return len(v) > 0
		default:
			return false
		}
	case domain.ShapeObject:
		_, ok := value.(map[string]any)
		return ok
	default:
		return false
	}
}
