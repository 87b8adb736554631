package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/clubdesk/club_desk_app/internal/apperrors"
	"github.com/clubdesk/club_desk_app/internal/core/domain"
	portsrepo "github.com/clubdesk/club_desk_app/internal/core/ports/repositories"
	"github.com/clubdesk/club_desk_app/internal/models"
	"github.com/clubdesk/club_desk_app/internal/utils/mapping"
)

// PgxPaymentRepository persists member payments. Payments are append-only, so
// the repository exposes no update or delete queries.
type PgxPaymentRepository struct {
	BaseRepository
}

// NewPaymentRepository creates a new repository for payment data.
func NewPaymentRepository(pool PgxPool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

// SavePayment persists a new payment.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (payment_id, member_id, method_id, amount, notes,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PaymentID, m.MemberID, m.MethodID, m.Amount, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert payment "+m.PaymentID, err)
	}
	return nil
}

// FindPaymentByID retrieves a payment by its identifier.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `
		SELECT payment_id, member_id, method_id, amount, notes,
			created_at, created_by, last_updated_at, last_updated_by
		FROM payments WHERE payment_id = $1;
	`
	var m models.Payment
	err := r.Pool.QueryRow(ctx, query, paymentID).Scan(
		&m.PaymentID, &m.MemberID, &m.MethodID, &m.Amount, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment "+paymentID, err)
	}
	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

// ListPaymentsByMember retrieves all payments recorded for a member, newest first.
func (r *PgxPaymentRepository) ListPaymentsByMember(ctx context.Context, memberID string) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, member_id, method_id, amount, notes,
			created_at, created_by, last_updated_at, last_updated_by
		FROM payments WHERE member_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, memberID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list payments for member "+memberID, err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(
			&m.PaymentID, &m.MemberID, &m.MethodID, &m.Amount, &m.Notes,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate payment rows", err)
	}
	return mapping.ToDomainPaymentSlice(payments), nil
}
