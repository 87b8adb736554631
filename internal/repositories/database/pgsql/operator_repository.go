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

const operatorColumns = `
	operator_id, name, username, password_hash,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxOperatorRepository persists back-office operators.
type PgxOperatorRepository struct {
	BaseRepository
}

// NewOperatorRepository creates a new repository for operator data.
func NewOperatorRepository(pool PgxPool) portsrepo.OperatorRepositoryFacade {
	return &PgxOperatorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OperatorRepositoryFacade = (*PgxOperatorRepository)(nil)

// SaveOperator persists a new operator. A duplicate username maps to
// apperrors.ErrDuplicate.
func (r *PgxOperatorRepository) SaveOperator(ctx context.Context, operator domain.Operator) error {
	m := mapping.ToModelOperator(operator)
	query := `
		INSERT INTO operators (operator_id, name, username, password_hash,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.OperatorID, m.Name, m.Username, m.PasswordHash,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert operator "+m.OperatorID, err)
	}
	return nil
}

// FindOperatorByID retrieves an operator by their identifier.
func (r *PgxOperatorRepository) FindOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error) {
	query := `SELECT ` + operatorColumns + ` FROM operators WHERE operator_id = $1;`
	return r.scanOperator(r.Pool.QueryRow(ctx, query, operatorID), "operator "+operatorID)
}

// FindOperatorByUsername retrieves an operator by login username.
func (r *PgxOperatorRepository) FindOperatorByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	query := `SELECT ` + operatorColumns + ` FROM operators WHERE username = $1;`
	return r.scanOperator(r.Pool.QueryRow(ctx, query, username), "operator by username")
}

// ListOperators retrieves all operators, oldest first.
func (r *PgxOperatorRepository) ListOperators(ctx context.Context) ([]domain.Operator, error) {
	query := `SELECT ` + operatorColumns + ` FROM operators ORDER BY created_at ASC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query operators", err)
	}
	defer rows.Close()

	var operators []domain.Operator
	for rows.Next() {
		var m models.Operator
		if err := rows.Scan(
			&m.OperatorID, &m.Name, &m.Username, &m.PasswordHash,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan operator row", err)
		}
		operators = append(operators, mapping.ToDomainOperator(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating operator rows", err)
	}
	return operators, nil
}

func (r *PgxOperatorRepository) scanOperator(row pgx.Row, desc string) (*domain.Operator, error) {
	var m models.Operator
	err := row.Scan(
		&m.OperatorID, &m.Name, &m.Username, &m.PasswordHash,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find "+desc, err)
	}
	operator := mapping.ToDomainOperator(m)
	return &operator, nil
}
