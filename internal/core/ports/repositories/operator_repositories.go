package repositories

import (
	"context"

	"github.com/clubdesk/club_desk_app/internal/core/domain"
)

// OperatorRepositoryFacade defines persistence for back-office operators.
type OperatorRepositoryFacade interface {
	// SaveOperator persists a new operator.
	SaveOperator(ctx context.Context, operator domain.Operator) error

	// FindOperatorByID retrieves a specific operator by their identifier.
	FindOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error)

	// FindOperatorByUsername retrieves an operator by login username.
	FindOperatorByUsername(ctx context.Context, username string) (*domain.Operator, error)

	// ListOperators retrieves all operators, oldest first. The set is small
	// enough that no pagination is needed.
	ListOperators(ctx context.Context) ([]domain.Operator, error)
}
