package pgsql

import (
	"context"
	"strconv"

	"github.com/clubdesk/club_desk_app/internal/apperrors"
	"github.com/clubdesk/club_desk_app/internal/core/domain"
	portsrepo "github.com/clubdesk/club_desk_app/internal/core/ports/repositories"
	"github.com/clubdesk/club_desk_app/internal/models"
	"github.com/clubdesk/club_desk_app/internal/utils/mapping"
	"github.com/clubdesk/club_desk_app/internal/utils/pagination"
)

// PgxExpenseRepository persists tender-tagged expenses. Like payments, expenses
// are append-only.
type PgxExpenseRepository struct {
	BaseRepository
}

// NewExpenseRepository creates a new repository for expense data.
func NewExpenseRepository(pool PgxPool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

// SaveExpense persists a new expense.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (expense_id, method_id, amount, description,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID, m.MethodID, m.Amount, m.Description,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert expense "+m.ExpenseID, err)
	}
	return nil
}

// ListExpenses retrieves expenses newest-first with token-based pagination.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	query := `
		SELECT expense_id, method_id, amount, description,
			created_at, created_by, last_updated_at, last_updated_by
		FROM expenses`
	args := []interface{}{}
	if nextToken != nil {
		before, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.ErrValidation
		}
		query += ` WHERE created_at < $1`
		args = append(args, before)
	}
	query += ` ORDER BY created_at DESC LIMIT ` + strconv.Itoa(limit+1) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list expenses", err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0, limit+1)
	for rows.Next() {
		var m models.Expense
		if err := rows.Scan(
			&m.ExpenseID, &m.MethodID, &m.Amount, &m.Description,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan expense row", err)
		}
		expenses = append(expenses, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to iterate expense rows", err)
	}

	var token *string
	if len(expenses) > limit {
		expenses = expenses[:limit]
		t := pagination.EncodeToken(expenses[limit-1].CreatedAt)
		token = &t
	}
	return mapping.ToDomainExpenseSlice(expenses), token, nil
}
