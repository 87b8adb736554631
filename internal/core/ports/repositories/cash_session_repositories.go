package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/clubdesk/club_desk_app/internal/core/domain"
)

// CashSessionReader defines read operations for cash session data
type CashSessionReader interface {
	// GetOpenSession retrieves the currently open session.
	// Returns apperrors.ErrNotFound when no session is open.
	GetOpenSession(ctx context.Context) (*domain.CashSession, error)

	// FindSessionByID retrieves a specific session by its unique identifier.
	FindSessionByID(ctx context.Context, sessionID string) (*domain.CashSession, error)

	// FindSessionByIDForUpdate retrieves a session within the given transaction,
	// taking a row lock so its status cannot change until the transaction ends.
	FindSessionByIDForUpdate(ctx context.Context, tx pgx.Tx, sessionID string) (*domain.CashSession, error)

	// ListSessions retrieves sessions newest-first using token-based pagination.
	ListSessions(ctx context.Context, limit int, nextToken *string) ([]domain.CashSession, *string, error)

	// ListMovementsBySession retrieves all movements recorded against a session.
	ListMovementsBySession(ctx context.Context, sessionID string) ([]domain.CashMovement, error)
}

// CashSessionWriter defines write operations for cash session data
type CashSessionWriter interface {
	// CreateSession persists a new open session. The insert is guarded so that it
	// fails with apperrors.ErrConflict when another session is already open,
	// atomically with respect to concurrent opens.
	CreateSession(ctx context.Context, session domain.CashSession) error

	// CreateMovement persists a movement within the given transaction. The owning
	// session must already be locked via FindSessionByIDForUpdate.
	CreateMovement(ctx context.Context, tx pgx.Tx, movement domain.CashMovement) error

	// UpdateSessionOnClose persists the closing figures and flips the session to
	// CLOSED within the given transaction.
	UpdateSessionOnClose(ctx context.Context, tx pgx.Tx, closure domain.SessionClosure) error
}

// SessionLedgerSource supplies the pre-aggregated totals the reconciliation runs on.
type SessionLedgerSource interface {
	// GetSessionSummary aggregates payment, movement and expense totals for the
	// session's time window. Returns apperrors.ErrNotFound if the session is missing.
	GetSessionSummary(ctx context.Context, sessionID string) (*domain.SessionLedgerTotals, error)

	// GetSessionSummaryTx is GetSessionSummary inside an existing transaction with
	// an explicit upper bound on the window, used at close time so the totals are
	// exactly those as of the close instant.
	GetSessionSummaryTx(ctx context.Context, tx pgx.Tx, sessionID string, asOf time.Time) (*domain.SessionLedgerTotals, error)
}

// CashSessionRepositoryFacade combines all cash-session repository interfaces
type CashSessionRepositoryFacade interface {
	CashSessionReader
	CashSessionWriter
	SessionLedgerSource
}

// CashSessionRepositoryWithTx extends the facade with transaction capabilities
type CashSessionRepositoryWithTx interface {
	CashSessionRepositoryFacade
	TransactionManager
}
