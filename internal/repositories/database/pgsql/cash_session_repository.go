package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/clubdesk/club_desk_app/internal/apperrors"
	"github.com/clubdesk/club_desk_app/internal/core/domain"
	portsrepo "github.com/clubdesk/club_desk_app/internal/core/ports/repositories"
	"github.com/clubdesk/club_desk_app/internal/models"
	"github.com/clubdesk/club_desk_app/internal/utils/mapping"
	"github.com/clubdesk/club_desk_app/internal/utils/pagination"
)

const sessionColumns = `
	session_id, opened_by, opened_at, opening_amount, status, closed_by, closed_at,
	counted_cash, counted_card, counted_transfer, counted_other, expected_cash, cash_variance`

// PgxCashSessionRepository persists cash sessions and movements, and aggregates
// the per-session ledger totals the reconciliation runs on. The single-open-session
// invariant is enforced in SQL: a guarded insert plus a partial unique index on
// status = 'OPEN', so it holds across processes and restarts.
type PgxCashSessionRepository struct {
	BaseRepository
}

// NewCashSessionRepository creates a new repository for cash session data.
func NewCashSessionRepository(pool PgxPool) portsrepo.CashSessionRepositoryWithTx {
	return &PgxCashSessionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CashSessionRepositoryWithTx = (*PgxCashSessionRepository)(nil)

// CreateSession inserts a new open session. The insert only succeeds when no other
// OPEN session exists; concurrent opens race on the same guard and the partial
// unique index, so exactly one wins and the rest get apperrors.ErrConflict.
func (r *PgxCashSessionRepository) CreateSession(ctx context.Context, session domain.CashSession) error {
	modelSession := mapping.ToModelCashSession(session)
	query := `
		INSERT INTO cash_sessions (session_id, opened_by, opened_at, opening_amount, status)
		SELECT $1, $2, $3, $4, $5
		WHERE NOT EXISTS (SELECT 1 FROM cash_sessions WHERE status = 'OPEN');
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelSession.SessionID,
		modelSession.OpenedBy,
		modelSession.OpenedAt,
		modelSession.OpeningAmount,
		modelSession.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return apperrors.NewAppError(500, "failed to insert cash session "+modelSession.SessionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

// GetOpenSession retrieves the currently open session, or apperrors.ErrNotFound
// when no session is open.
func (r *PgxCashSessionRepository) GetOpenSession(ctx context.Context) (*domain.CashSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM cash_sessions WHERE status = 'OPEN' LIMIT 1;`
	return r.scanSession(r.Pool.QueryRow(ctx, query), "open session lookup")
}

// FindSessionByID retrieves a session by its ID.
func (r *PgxCashSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.CashSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM cash_sessions WHERE session_id = $1;`
	return r.scanSession(r.Pool.QueryRow(ctx, query, sessionID), "session "+sessionID)
}

// FindSessionByIDForUpdate retrieves a session within the given transaction under a
// row lock. While the lock is held a concurrent AddMovement or Close on the same
// session blocks, which is what makes the open-status check race-free.
func (r *PgxCashSessionRepository) FindSessionByIDForUpdate(ctx context.Context, tx pgx.Tx, sessionID string) (*domain.CashSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM cash_sessions WHERE session_id = $1 FOR UPDATE;`
	return r.scanSession(tx.QueryRow(ctx, query, sessionID), "session "+sessionID)
}

// ListSessions retrieves sessions newest-first with token-based pagination.
func (r *PgxCashSessionRepository) ListSessions(ctx context.Context, limit int, nextToken *string) ([]domain.CashSession, *string, error) {
	query := `SELECT ` + sessionColumns + ` FROM cash_sessions`
	args := []interface{}{}
	if nextToken != nil {
		before, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.ErrValidation
		}
		query += ` WHERE opened_at < $1`
		args = append(args, before)
	}
	query += ` ORDER BY opened_at DESC LIMIT ` + strconv.Itoa(limit+1) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list cash sessions", err)
	}
	defer rows.Close()

	sessions := make([]models.CashSession, 0, limit+1)
	for rows.Next() {
		m, err := scanSessionRow(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan cash session row", err)
		}
		sessions = append(sessions, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to iterate cash session rows", err)
	}

	var token *string
	if len(sessions) > limit {
		sessions = sessions[:limit]
		t := pagination.EncodeToken(sessions[limit-1].OpenedAt)
		token = &t
	}
	return mapping.ToDomainCashSessionSlice(sessions), token, nil
}

// ListMovementsBySession retrieves all movements for a session, oldest first.
func (r *PgxCashSessionRepository) ListMovementsBySession(ctx context.Context, sessionID string) ([]domain.CashMovement, error) {
	query := `
		SELECT movement_id, session_id, kind, amount, notes, created_at, created_by
		FROM cash_movements
		WHERE session_id = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list movements for session "+sessionID, err)
	}
	defer rows.Close()

	movements := []models.CashMovement{}
	for rows.Next() {
		var m models.CashMovement
		if err := rows.Scan(&m.MovementID, &m.SessionID, &m.Kind, &m.Amount, &m.Notes, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan movement row", err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate movement rows", err)
	}
	return mapping.ToDomainCashMovementSlice(movements), nil
}

// CreateMovement inserts a movement within the given transaction. Callers must
// have locked the owning session first via FindSessionByIDForUpdate.
func (r *PgxCashSessionRepository) CreateMovement(ctx context.Context, tx pgx.Tx, movement domain.CashMovement) error {
	modelMovement := mapping.ToModelCashMovement(movement)
	query := `
		INSERT INTO cash_movements (movement_id, session_id, kind, amount, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query,
		modelMovement.MovementID,
		modelMovement.SessionID,
		modelMovement.Kind,
		modelMovement.Amount,
		modelMovement.Notes,
		modelMovement.CreatedAt,
		modelMovement.CreatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert movement "+modelMovement.MovementID, err)
	}
	return nil
}

// UpdateSessionOnClose persists the closing figures and flips the session to
// CLOSED within the given transaction.
func (r *PgxCashSessionRepository) UpdateSessionOnClose(ctx context.Context, tx pgx.Tx, closure domain.SessionClosure) error {
	query := `
		UPDATE cash_sessions
		SET status = 'CLOSED', closed_by = $2, closed_at = $3,
		    counted_cash = $4, counted_card = $5, counted_transfer = $6, counted_other = $7,
		    expected_cash = $8, cash_variance = $9
		WHERE session_id = $1 AND status = 'OPEN';
	`
	tag, err := tx.Exec(ctx, query,
		closure.SessionID,
		closure.ClosedBy,
		closure.ClosedAt,
		closure.Counted.Cash,
		closure.Counted.Card,
		closure.Counted.Transfer,
		closure.Counted.Other,
		closure.ExpectedCash,
		closure.CashVariance,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to close session "+closure.SessionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInvalidState
	}
	return nil
}

// GetSessionSummary aggregates payment, movement and expense totals for the
// session's time window. For a closed session the window ends at closed_at, for
// an open one at now.
func (r *PgxCashSessionRepository) GetSessionSummary(ctx context.Context, sessionID string) (*domain.SessionLedgerTotals, error) {
	session, err := r.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	asOf := time.Now().UTC()
	if session.ClosedAt != nil {
		asOf = *session.ClosedAt
	}
	return r.summarize(ctx, r.Pool, sessionID, session.OpenedAt, asOf)
}

// GetSessionSummaryTx is GetSessionSummary inside an existing transaction with an
// explicit window upper bound, used at close time.
func (r *PgxCashSessionRepository) GetSessionSummaryTx(ctx context.Context, tx pgx.Tx, sessionID string, asOf time.Time) (*domain.SessionLedgerTotals, error) {
	var openedAt time.Time
	err := tx.QueryRow(ctx, `SELECT opened_at FROM cash_sessions WHERE session_id = $1;`, sessionID).Scan(&openedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to load session window for "+sessionID, err)
	}
	return r.summarize(ctx, tx, sessionID, openedAt, asOf)
}

// summarize runs the three aggregation queries against the given querier.
func (r *PgxCashSessionRepository) summarize(ctx context.Context, q Querier, sessionID string, from, to time.Time) (*domain.SessionLedgerTotals, error) {
	totals := &domain.SessionLedgerTotals{
		PaymentTotals: make(map[string]decimal.Decimal),
		MovementsIn:   decimal.Zero,
		MovementsOut:  decimal.Zero,
		ExpenseTotals: make(map[string]decimal.Decimal),
	}

	movementQuery := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE kind = 'IN'), 0),
			COALESCE(SUM(amount) FILTER (WHERE kind = 'OUT'), 0)
		FROM cash_movements
		WHERE session_id = $1;
	`
	if err := q.QueryRow(ctx, movementQuery, sessionID).Scan(&totals.MovementsIn, &totals.MovementsOut); err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate movements for session "+sessionID, err)
	}

	paymentQuery := `
		SELECT method_id, COALESCE(SUM(amount), 0)
		FROM payments
		WHERE created_at >= $1 AND created_at <= $2
		GROUP BY method_id;
	`
	if err := r.scanMethodTotals(ctx, q, paymentQuery, from, to, totals.PaymentTotals); err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate payments for session "+sessionID, err)
	}

	expenseQuery := `
		SELECT method_id, COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE created_at >= $1 AND created_at <= $2
		GROUP BY method_id;
	`
	if err := r.scanMethodTotals(ctx, q, expenseQuery, from, to, totals.ExpenseTotals); err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate expenses for session "+sessionID, err)
	}

	return totals, nil
}

func (r *PgxCashSessionRepository) scanMethodTotals(ctx context.Context, q Querier, query string, from, to time.Time, dest map[string]decimal.Decimal) error {
	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var methodID string
		var total decimal.Decimal
		if err := rows.Scan(&methodID, &total); err != nil {
			return err
		}
		dest[methodID] = total
	}
	return rows.Err()
}

func (r *PgxCashSessionRepository) scanSession(row pgx.Row, desc string) (*domain.CashSession, error) {
	m, err := scanSessionRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find "+desc, err)
	}
	session := mapping.ToDomainCashSession(*m)
	return &session, nil
}

// scanSessionRow scans one cash_sessions row in sessionColumns order.
func scanSessionRow(row pgx.Row) (*models.CashSession, error) {
	var m models.CashSession
	err := row.Scan(
		&m.SessionID,
		&m.OpenedBy,
		&m.OpenedAt,
		&m.OpeningAmount,
		&m.Status,
		&m.ClosedBy,
		&m.ClosedAt,
		&m.CountedCash,
		&m.CountedCard,
		&m.CountedTransfer,
		&m.CountedOther,
		&m.ExpectedCash,
		&m.CashVariance,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
