package repositories

import (
	"context"

	"github.com/clubdesk/club_desk_app/internal/core/domain"
)

// AuditLogRepositoryFacade defines persistence for the compliance audit trail.
type AuditLogRepositoryFacade interface {
	// SaveAuditLog persists one audit record.
	SaveAuditLog(ctx context.Context, log domain.AuditLog) error
}
