package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/clubdesk/club_desk_app/internal/apperrors"
	"github.com/clubdesk/club_desk_app/internal/core/domain"
	portsrepo "github.com/clubdesk/club_desk_app/internal/core/ports/repositories"
	portssvc "github.com/clubdesk/club_desk_app/internal/core/ports/services"
	"github.com/clubdesk/club_desk_app/internal/dto"
	"github.com/clubdesk/club_desk_app/internal/middleware"
	"github.com/clubdesk/club_desk_app/internal/utils/reconciliation"
)

const auditEntityCashSession = "cash_session"

// cashSessionService implements the drawer session lifecycle and reconciliation.
// The service itself is stateless; the single-open-session invariant and the
// movement-vs-close consistency both live at the persistence boundary (guarded
// insert and row locks), so concurrent requests need no in-process locking.
type cashSessionService struct {
	sessionRepo portsrepo.CashSessionRepositoryWithTx
	methodRepo  portsrepo.PaymentMethodRepositoryFacade
	auditSvc    portssvc.AuditSvcFacade
}

// NewCashSessionService creates a new CashSessionService.
func NewCashSessionService(sessionRepo portsrepo.CashSessionRepositoryWithTx, methodRepo portsrepo.PaymentMethodRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.CashSessionSvcFacade {
	return &cashSessionService{
		sessionRepo: sessionRepo,
		methodRepo:  methodRepo,
		auditSvc:    auditSvc,
	}
}

var _ portssvc.CashSessionSvcFacade = (*cashSessionService)(nil)

// OpenSession opens a new drawer session. The repository rejects the insert with
// apperrors.ErrConflict when another session is already open, atomically against
// concurrent opens.
func (s *cashSessionService) OpenSession(ctx context.Context, req dto.OpenCashSessionRequest, operatorID string) (*domain.CashSession, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.OpeningAmount.IsNegative() {
		return nil, fmt.Errorf("%w: opening amount must not be negative", apperrors.ErrValidation)
	}

	session := domain.CashSession{
		SessionID:     uuid.NewString(),
		OpenedBy:      operatorID,
		OpenedAt:      time.Now().UTC(),
		OpeningAmount: req.OpeningAmount,
		Status:        domain.SessionOpen,
	}

	if err := s.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	logger.Info("Cash session opened",
		slog.String("session_id", session.SessionID),
		slog.String("opening_amount", session.OpeningAmount.String()))

	s.auditSvc.LogAsync(ctx, domain.CashSessionOpened, auditEntityCashSession, session.SessionID, operatorID, session)

	return &session, nil
}

// AddMovement records a manual drawer adjustment against an open session. The
// session row is locked for the duration of the transaction, so a concurrent
// close either sees this movement in its totals or this call fails with
// apperrors.ErrInvalidState.
func (s *cashSessionService) AddMovement(ctx context.Context, sessionID string, req dto.AddMovementRequest, operatorID string) (*domain.CashMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	kind := domain.MovementKind(req.Kind)
	if kind != domain.MovementIn && kind != domain.MovementOut {
		return nil, fmt.Errorf("%w: unknown movement kind %q", apperrors.ErrValidation, req.Kind)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: movement amount must be positive", apperrors.ErrValidation)
	}

	tx, err := s.sessionRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.sessionRepo.Rollback(ctx, tx)

	session, err := s.sessionRepo.FindSessionByIDForUpdate(ctx, tx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.SessionOpen {
		return nil, fmt.Errorf("%w: session %s is closed", apperrors.ErrInvalidState, sessionID)
	}

	movement := domain.CashMovement{
		MovementID: uuid.NewString(),
		SessionID:  sessionID,
		Kind:       kind,
		Amount:     req.Amount,
		Notes:      req.Notes,
		CreatedAt:  time.Now().UTC(),
		CreatedBy:  operatorID,
	}

	if err := s.sessionRepo.CreateMovement(ctx, tx, movement); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Cash movement recorded",
		slog.String("session_id", sessionID),
		slog.String("kind", string(kind)),
		slog.String("amount", movement.Amount.String()))

	s.auditSvc.LogAsync(ctx, domain.CashMovementCreated, auditEntityCashSession, sessionID, operatorID, movement)

	return &movement, nil
}

// CloseSession closes an open session. All reads and the status flip happen inside
// one transaction, so the final snapshot reflects exactly the totals as of the
// close instant. A variance between counted and expected cash is recorded, never
// rejected.
func (s *cashSessionService) CloseSession(ctx context.Context, sessionID string, req dto.CloseCashSessionRequest, operatorID string) (*domain.BalanceSnapshot, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.sessionRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.sessionRepo.Rollback(ctx, tx)

	session, err := s.sessionRepo.FindSessionByIDForUpdate(ctx, tx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.SessionOpen {
		return nil, fmt.Errorf("%w: session %s is already closed", apperrors.ErrInvalidState, sessionID)
	}

	closedAt := time.Now().UTC()

	totals, err := s.sessionRepo.GetSessionSummaryTx(ctx, tx, sessionID, closedAt)
	if err != nil {
		return nil, err
	}
	methods, err := s.methodRepo.ListPaymentMethods(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := reconciliation.BuildSnapshot(*session, methods, *totals)

	counted := domain.CountedTotals{
		Cash:     req.CountedCash,
		Card:     req.CountedCard,
		Transfer: req.CountedTransfer,
		Other:    req.CountedOther,
	}
	variance := counted.Cash.Sub(snapshot.ExpectedCash)

	closure := domain.SessionClosure{
		SessionID:    sessionID,
		ClosedBy:     operatorID,
		ClosedAt:     closedAt,
		Counted:      counted,
		ExpectedCash: snapshot.ExpectedCash,
		CashVariance: variance,
	}

	if err := s.sessionRepo.UpdateSessionOnClose(ctx, tx, closure); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	applyClosure(&snapshot.Session, closure)

	logger.Info("Cash session closed",
		slog.String("session_id", sessionID),
		slog.String("expected_cash", snapshot.ExpectedCash.String()),
		slog.String("counted_cash", counted.Cash.String()),
		slog.String("variance", variance.String()))

	s.auditSvc.LogAsync(ctx, domain.CashSessionClosed, auditEntityCashSession, sessionID, operatorID, closure)

	return &snapshot, nil
}

// GetOpenSnapshot returns the reconciliation snapshot of the currently open
// session, or apperrors.ErrNotFound when none is open.
func (s *cashSessionService) GetOpenSnapshot(ctx context.Context) (*domain.BalanceSnapshot, error) {
	session, err := s.sessionRepo.GetOpenSession(ctx)
	if err != nil {
		return nil, err
	}
	return s.buildSnapshotFor(ctx, session)
}

// GetSnapshot returns the reconciliation snapshot of any session.
func (s *cashSessionService) GetSnapshot(ctx context.Context, sessionID string) (*domain.BalanceSnapshot, error) {
	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.buildSnapshotFor(ctx, session)
}

// ListSessions retrieves session history newest-first with token pagination.
func (s *cashSessionService) ListSessions(ctx context.Context, limit int, nextToken *string) ([]domain.CashSession, *string, error) {
	if limit <= 0 {
		return nil, nil, fmt.Errorf("%w: limit must be positive", apperrors.ErrValidation)
	}
	return s.sessionRepo.ListSessions(ctx, limit, nextToken)
}

// ListMovements retrieves the movements recorded against a session.
func (s *cashSessionService) ListMovements(ctx context.Context, sessionID string) ([]domain.CashMovement, error) {
	if _, err := s.sessionRepo.FindSessionByID(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.sessionRepo.ListMovementsBySession(ctx, sessionID)
}

func (s *cashSessionService) buildSnapshotFor(ctx context.Context, session *domain.CashSession) (*domain.BalanceSnapshot, error) {
	totals, err := s.sessionRepo.GetSessionSummary(ctx, session.SessionID)
	if err != nil {
		return nil, err
	}
	methods, err := s.methodRepo.ListPaymentMethods(ctx)
	if err != nil {
		return nil, err
	}
	snapshot := reconciliation.BuildSnapshot(*session, methods, *totals)
	return &snapshot, nil
}

// applyClosure stamps the closing figures onto the in-memory session so the
// returned snapshot matches what was just persisted.
func applyClosure(session *domain.CashSession, closure domain.SessionClosure) {
	session.Status = domain.SessionClosed
	session.ClosedBy = &closure.ClosedBy
	session.ClosedAt = &closure.ClosedAt

	countedCash := closure.Counted.Cash
	countedCard := closure.Counted.Card
	countedTransfer := closure.Counted.Transfer
	countedOther := closure.Counted.Other
	expected := closure.ExpectedCash
	variance := closure.CashVariance

	session.CountedCash = &countedCash
	session.CountedCard = &countedCard
	session.CountedTransfer = &countedTransfer
	session.CountedOther = &countedOther
	session.ExpectedCash = &expected
	session.CashVariance = &variance
}
