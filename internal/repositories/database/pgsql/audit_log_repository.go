package pgsql

import (
	"context"

	"github.com/clubdesk/club_desk_app/internal/apperrors"
	"github.com/clubdesk/club_desk_app/internal/core/domain"
	portsrepo "github.com/clubdesk/club_desk_app/internal/core/ports/repositories"
	"github.com/clubdesk/club_desk_app/internal/models"
)

// PgxAuditLogRepository persists the compliance audit trail. Records are
// append-only and never read back by the application itself.
type PgxAuditLogRepository struct {
	BaseRepository
}

// NewAuditLogRepository creates a new repository for audit log data.
func NewAuditLogRepository(pool PgxPool) portsrepo.AuditLogRepositoryFacade {
	return &PgxAuditLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditLogRepositoryFacade = (*PgxAuditLogRepository)(nil)

// SaveAuditLog persists one audit record.
func (r *PgxAuditLogRepository) SaveAuditLog(ctx context.Context, log domain.AuditLog) error {
	m := models.AuditLog{
		AuditID:    log.AuditID,
		Action:     string(log.Action),
		EntityName: log.EntityName,
		EntityID:   log.EntityID,
		OperatorID: log.OperatorID,
		Payload:    log.Payload,
		CreatedAt:  log.CreatedAt,
	}
	query := `
		INSERT INTO audit_logs (audit_id, action, entity_name, entity_id, operator_id, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AuditID, m.Action, m.EntityName, m.EntityID, m.OperatorID, m.Payload, m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert audit log "+m.AuditID, err)
	}
	return nil
}
