package pgsql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubdesk/club_desk_app/internal/apperrors"
	"github.com/clubdesk/club_desk_app/internal/core/domain"
	"github.com/clubdesk/club_desk_app/internal/models"
)

var sessionRowColumns = []string{
	"session_id", "opened_by", "opened_at", "opening_amount", "status", "closed_by", "closed_at",
	"counted_cash", "counted_card", "counted_transfer", "counted_other", "expected_cash", "cash_variance",
}

func openSessionFixture() domain.CashSession {
	return domain.CashSession{
		SessionID:     uuid.NewString(),
		OpenedBy:      uuid.NewString(),
		OpenedAt:      time.Now().UTC(),
		OpeningAmount: decimal.RequireFromString("100.00"),
		Status:        domain.SessionOpen,
	}
}

func addSessionRow(rows *pgxmock.Rows, s domain.CashSession) *pgxmock.Rows {
	return rows.AddRow(
		s.SessionID, s.OpenedBy, s.OpenedAt, s.OpeningAmount, models.CashSessionStatus(s.Status), s.ClosedBy, s.ClosedAt,
		s.CountedCash, s.CountedCard, s.CountedTransfer, s.CountedOther, s.ExpectedCash, s.CashVariance,
	)
}

func TestCashSessionRepository_CreateSession(t *testing.T) {
	ctx := context.Background()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxCashSessionRepository{BaseRepository: BaseRepository{Pool: mock}}
	session := openSessionFixture()

	query := `
		INSERT INTO cash_sessions \(session_id, opened_by, opened_at, opening_amount, status\)
		SELECT \$1, \$2, \$3, \$4, \$5
		WHERE NOT EXISTS \(SELECT 1 FROM cash_sessions WHERE status = 'OPEN'\);
	`

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(session.SessionID, session.OpenedBy, session.OpenedAt, session.OpeningAmount, models.SessionOpen).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.CreateSession(ctx, session)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("another session already open", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(session.SessionID, session.OpenedBy, session.OpenedAt, session.OpeningAmount, models.SessionOpen).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))

		err := repo.CreateSession(ctx, session)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique index race", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(session.SessionID, session.OpenedBy, session.OpenedAt, session.OpeningAmount, models.SessionOpen).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := repo.CreateSession(ctx, session)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		dbErr := errors.New("insert db error")
		mock.ExpectExec(query).
			WithArgs(session.SessionID, session.OpenedBy, session.OpenedAt, session.OpeningAmount, models.SessionOpen).
			WillReturnError(dbErr)

		err := repo.CreateSession(ctx, session)
		assert.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "failed to insert cash session")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCashSessionRepository_GetOpenSession(t *testing.T) {
	ctx := context.Background()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxCashSessionRepository{BaseRepository: BaseRepository{Pool: mock}}
	session := openSessionFixture()

	query := `SELECT (.+) FROM cash_sessions WHERE status = 'OPEN' LIMIT 1;`

	t.Run("success", func(t *testing.T) {
		rows := addSessionRow(pgxmock.NewRows(sessionRowColumns), session)
		mock.ExpectQuery(query).WillReturnRows(rows)

		got, err := repo.GetOpenSession(ctx)
		assert.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, session.SessionID, got.SessionID)
		assert.Equal(t, domain.SessionOpen, got.Status)
		assert.True(t, got.OpeningAmount.Equal(session.OpeningAmount))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no open session", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(pgx.ErrNoRows)

		got, err := repo.GetOpenSession(ctx)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCashSessionRepository_FindSessionByID(t *testing.T) {
	ctx := context.Background()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxCashSessionRepository{BaseRepository: BaseRepository{Pool: mock}}
	session := openSessionFixture()

	query := `SELECT (.+) FROM cash_sessions WHERE session_id = \$1;`

	t.Run("success", func(t *testing.T) {
		rows := addSessionRow(pgxmock.NewRows(sessionRowColumns), session)
		mock.ExpectQuery(query).WithArgs(session.SessionID).WillReturnRows(rows)

		got, err := repo.FindSessionByID(ctx, session.SessionID)
		assert.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, session.SessionID, got.SessionID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(session.SessionID).WillReturnError(pgx.ErrNoRows)

		got, err := repo.FindSessionByID(ctx, session.SessionID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCashSessionRepository_UpdateSessionOnClose(t *testing.T) {
	ctx := context.Background()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxCashSessionRepository{BaseRepository: BaseRepository{Pool: mock}}

	closure := domain.SessionClosure{
		SessionID: uuid.NewString(),
		ClosedBy:  uuid.NewString(),
		ClosedAt:  time.Now().UTC(),
		Counted: domain.CountedTotals{
			Cash:     decimal.RequireFromString("295.00"),
			Card:     decimal.RequireFromString("120.00"),
			Transfer: decimal.Zero,
			Other:    decimal.Zero,
		},
		ExpectedCash: decimal.RequireFromString("300.00"),
		CashVariance: decimal.RequireFromString("-5.00"),
	}

	query := `
		UPDATE cash_sessions
		SET status = 'CLOSED', closed_by = \$2, closed_at = \$3,
		    counted_cash = \$4, counted_card = \$5, counted_transfer = \$6, counted_other = \$7,
		    expected_cash = \$8, cash_variance = \$9
		WHERE session_id = \$1 AND status = 'OPEN';
	`

	t.Run("success", func(t *testing.T) {
		mock.ExpectBegin()
		tx, err := repo.Begin(ctx)
		require.NoError(t, err)

		mock.ExpectExec(query).
			WithArgs(closure.SessionID, closure.ClosedBy, closure.ClosedAt,
				closure.Counted.Cash, closure.Counted.Card, closure.Counted.Transfer, closure.Counted.Other,
				closure.ExpectedCash, closure.CashVariance).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.UpdateSessionOnClose(ctx, tx, closure))
		assert.NoError(t, repo.Commit(ctx, tx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("session already closed", func(t *testing.T) {
		mock.ExpectBegin()
		tx, err := repo.Begin(ctx)
		require.NoError(t, err)

		mock.ExpectExec(query).
			WithArgs(closure.SessionID, closure.ClosedBy, closure.ClosedAt,
				closure.Counted.Cash, closure.Counted.Card, closure.Counted.Transfer, closure.Counted.Other,
				closure.ExpectedCash, closure.CashVariance).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		err = repo.UpdateSessionOnClose(ctx, tx, closure)
		assert.ErrorIs(t, err, apperrors.ErrInvalidState)
		assert.NoError(t, repo.Rollback(ctx, tx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCashSessionRepository_GetSessionSummaryTx(t *testing.T) {
	ctx := context.Background()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxCashSessionRepository{BaseRepository: BaseRepository{Pool: mock}}
	sessionID := uuid.NewString()
	openedAt := time.Now().UTC().Add(-2 * time.Hour)
	asOf := time.Now().UTC()
	cashMethodID := uuid.NewString()
	cardMethodID := uuid.NewString()

	t.Run("aggregates all three sources", func(t *testing.T) {
		mock.ExpectBegin()
		tx, err := repo.Begin(ctx)
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT opened_at FROM cash_sessions WHERE session_id = \$1;`).
			WithArgs(sessionID).
			WillReturnRows(pgxmock.NewRows([]string{"opened_at"}).AddRow(openedAt))
		mock.ExpectQuery(`SELECT(.+)FROM cash_movements(.+)WHERE session_id = \$1`).
			WithArgs(sessionID).
			WillReturnRows(pgxmock.NewRows([]string{"in", "out"}).
				AddRow(decimal.RequireFromString("50.00"), decimal.RequireFromString("20.00")))
		mock.ExpectQuery(`SELECT method_id, (.+) FROM payments`).
			WithArgs(openedAt, asOf).
			WillReturnRows(pgxmock.NewRows([]string{"method_id", "total"}).
				AddRow(cashMethodID, decimal.RequireFromString("200.00")).
				AddRow(cardMethodID, decimal.RequireFromString("120.00")))
		mock.ExpectQuery(`SELECT method_id, (.+) FROM expenses`).
			WithArgs(openedAt, asOf).
			WillReturnRows(pgxmock.NewRows([]string{"method_id", "total"}).
				AddRow(cashMethodID, decimal.RequireFromString("30.00")))

		totals, err := repo.GetSessionSummaryTx(ctx, tx, sessionID, asOf)
		require.NoError(t, err)
		assert.True(t, totals.MovementsIn.Equal(decimal.RequireFromString("50.00")))
		assert.True(t, totals.MovementsOut.Equal(decimal.RequireFromString("20.00")))
		assert.True(t, totals.PaymentTotals[cashMethodID].Equal(decimal.RequireFromString("200.00")))
		assert.True(t, totals.PaymentTotals[cardMethodID].Equal(decimal.RequireFromString("120.00")))
		assert.True(t, totals.ExpenseTotals[cashMethodID].Equal(decimal.RequireFromString("30.00")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing session", func(t *testing.T) {
		mock.ExpectBegin()
		tx, err := repo.Begin(ctx)
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT opened_at FROM cash_sessions WHERE session_id = \$1;`).
			WithArgs(sessionID).
			WillReturnError(pgx.ErrNoRows)

		totals, err := repo.GetSessionSummaryTx(ctx, tx, sessionID, asOf)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Nil(t, totals)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
