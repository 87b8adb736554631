package services

import (
	"context"

	"github.com/clubdesk/club_desk_app/internal/core/domain"
)

// AuditSvcFacade is the fire-and-forget audit sink. Implementations must never
// surface a failure to the caller: a lost audit record is logged and swallowed,
// it cannot roll back the financial operation it describes.
type AuditSvcFacade interface {
	// LogAsync records an audit event in the background. The payload is marshalled
	// to JSON; a nil payload is allowed.
	LogAsync(ctx context.Context, action domain.AuditAction, entityName, entityID, operatorID string, payload any)
}
