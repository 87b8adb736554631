package services

import (
	"context"

	"github.com/clubdesk/club_desk_app/internal/core/domain"
	"github.com/clubdesk/club_desk_app/internal/dto"
)

// OperatorSvcFacade defines operations over back-office operators, including login.
type OperatorSvcFacade interface {
	// CreateOperator registers a new operator with a bcrypt-hashed password.
	CreateOperator(ctx context.Context, req dto.CreateOperatorRequest, creatorOperatorID string) (*domain.Operator, error)

	// GetOperatorByID retrieves a specific operator.
	GetOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error)

	// ListOperators retrieves all operators.
	ListOperators(ctx context.Context) ([]domain.Operator, error)

	// Authenticate verifies credentials and returns the operator on success.
	// Returns apperrors.ErrForbidden for unknown usernames and bad passwords alike.
	Authenticate(ctx context.Context, username, password string) (*domain.Operator, error)
}
