package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/clubdesk/club_desk_app/internal/core/domain"
	portsrepo "github.com/clubdesk/club_desk_app/internal/core/ports/repositories"
	portssvc "github.com/clubdesk/club_desk_app/internal/core/ports/services"
	"github.com/clubdesk/club_desk_app/internal/middleware"
)

const auditWriteTimeout = 5 * time.Second

// auditService persists compliance records on a best-effort basis. Writes happen
// on a background goroutine with a detached context so they survive the request
// ending and can never fail or delay the operation they describe.
type auditService struct {
	auditRepo portsrepo.AuditLogRepositoryFacade
}

// NewAuditService creates a new audit service.
func NewAuditService(auditRepo portsrepo.AuditLogRepositoryFacade) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// LogAsync records an audit event in the background. Failures are logged and
// swallowed.
func (s *auditService) LogAsync(ctx context.Context, action domain.AuditAction, entityName, entityID, operatorID string, payload any) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var raw []byte
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			logger.Warn("Failed to marshal audit payload, logging without it",
				slog.String("action", string(action)), slog.String("error", err.Error()))
			raw = nil
		}
	}

	log := domain.AuditLog{
		AuditID:    uuid.NewString(),
		Action:     action,
		EntityName: entityName,
		EntityID:   entityID,
		OperatorID: operatorID,
		Payload:    raw,
		CreatedAt:  time.Now().UTC(),
	}

	go func() {
		// The request context may already be cancelled by the time this runs.
		bgCtx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()

		if err := s.auditRepo.SaveAuditLog(bgCtx, log); err != nil {
			logger.Warn("Audit log write failed",
				slog.String("action", string(action)),
				slog.String("entity_id", entityID),
				slog.String("error", err.Error()))
		}
	}()
}
