package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/clubdesk/club_desk_app/internal/apperrors"
	"github.com/clubdesk/club_desk_app/internal/core/domain"
	portsrepo "github.com/clubdesk/club_desk_app/internal/core/ports/repositories"
	"github.com/clubdesk/club_desk_app/internal/models"
	"github.com/clubdesk/club_desk_app/internal/utils/mapping"
)

// PgxPaymentMethodRepository persists tender types.
type PgxPaymentMethodRepository struct {
	BaseRepository
}

// NewPaymentMethodRepository creates a new repository for payment method data.
func NewPaymentMethodRepository(pool PgxPool) portsrepo.PaymentMethodRepositoryFacade {
	return &PgxPaymentMethodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentMethodRepositoryFacade = (*PgxPaymentMethodRepository)(nil)

// SavePaymentMethod persists a new payment method. A duplicate name maps to
// apperrors.ErrDuplicate.
func (r *PgxPaymentMethodRepository) SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error {
	m := mapping.ToModelPaymentMethod(method)
	query := `
		INSERT INTO payment_methods (method_id, name, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.MethodID, m.Name, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert payment method "+m.MethodID, err)
	}
	return nil
}

// FindMethodByID retrieves a payment method by its identifier.
func (r *PgxPaymentMethodRepository) FindMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error) {
	query := `
		SELECT method_id, name, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM payment_methods WHERE method_id = $1;
	`
	var m models.PaymentMethod
	err := r.Pool.QueryRow(ctx, query, methodID).Scan(
		&m.MethodID, &m.Name, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment method "+methodID, err)
	}
	method := mapping.ToDomainPaymentMethod(m)
	return &method, nil
}

// ListPaymentMethods retrieves all payment methods, active and inactive.
func (r *PgxPaymentMethodRepository) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	query := `
		SELECT method_id, name, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM payment_methods ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list payment methods", err)
	}
	defer rows.Close()

	methods := []models.PaymentMethod{}
	for rows.Next() {
		var m models.PaymentMethod
		if err := rows.Scan(
			&m.MethodID, &m.Name, &m.IsActive,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment method row", err)
		}
		methods = append(methods, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate payment method rows", err)
	}
	return mapping.ToDomainPaymentMethodSlice(methods), nil
}

// DeactivatePaymentMethod marks a payment method inactive. Returns
// apperrors.ErrNotFound when the method does not exist.
func (r *PgxPaymentMethodRepository) DeactivatePaymentMethod(ctx context.Context, methodID string, updatedBy string) error {
	query := `
		UPDATE payment_methods
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE method_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, methodID, time.Now().UTC(), updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate payment method "+methodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
