package services

import (
	"context"

	"github.com/clubdesk/club_desk_app/internal/core/domain"
	"github.com/clubdesk/club_desk_app/internal/dto"
)

// CashSessionReaderSvc defines read operations for cash session reconciliation
type CashSessionReaderSvc interface {
	// GetOpenSnapshot returns the reconciliation snapshot of the currently open
	// session. Returns apperrors.ErrNotFound when no session is open.
	GetOpenSnapshot(ctx context.Context) (*domain.BalanceSnapshot, error)

	// GetSnapshot returns the reconciliation snapshot of any session, open or closed.
	GetSnapshot(ctx context.Context, sessionID string) (*domain.BalanceSnapshot, error)

	// ListSessions retrieves session history newest-first with token pagination.
	ListSessions(ctx context.Context, limit int, nextToken *string) ([]domain.CashSession, *string, error)

	// ListMovements retrieves the movements recorded against a session.
	ListMovements(ctx context.Context, sessionID string) ([]domain.CashMovement, error)
}

// CashSessionWriterSvc defines the state-changing session lifecycle operations
type CashSessionWriterSvc interface {
	// OpenSession opens a new drawer session with the given opening float.
	// Fails with apperrors.ErrConflict when a session is already open.
	OpenSession(ctx context.Context, req dto.OpenCashSessionRequest, operatorID string) (*domain.CashSession, error)

	// AddMovement records a manual drawer adjustment against an open session.
	AddMovement(ctx context.Context, sessionID string, req dto.AddMovementRequest, operatorID string) (*domain.CashMovement, error)

	// CloseSession closes an open session with the operator's counted totals and
	// returns the final snapshot. Variances are recorded, never rejected.
	CloseSession(ctx context.Context, sessionID string, req dto.CloseCashSessionRequest, operatorID string) (*domain.BalanceSnapshot, error)
}

// CashSessionSvcFacade combines all cash-session service interfaces
type CashSessionSvcFacade interface {
	CashSessionReaderSvc
	CashSessionWriterSvc
}
