package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clubdesk/club_desk_app/internal/apperrors"
	"github.com/clubdesk/club_desk_app/internal/core/domain"
	portsrepo "github.com/clubdesk/club_desk_app/internal/core/ports/repositories"
	portssvc "github.com/clubdesk/club_desk_app/internal/core/ports/services"
	"github.com/clubdesk/club_desk_app/internal/dto"
	"github.com/clubdesk/club_desk_app/internal/utils"
)

// operatorService manages back-office users and verifies their credentials.
type operatorService struct {
	operatorRepo portsrepo.OperatorRepositoryFacade
}

// NewOperatorService creates a new OperatorService.
func NewOperatorService(operatorRepo portsrepo.OperatorRepositoryFacade) portssvc.OperatorSvcFacade {
	return &operatorService{operatorRepo: operatorRepo}
}

var _ portssvc.OperatorSvcFacade = (*operatorService)(nil)

func (s *operatorService) CreateOperator(ctx context.Context, req dto.CreateOperatorRequest, creatorOperatorID string) (*domain.Operator, error) {
	username := strings.TrimSpace(strings.ToLower(req.Username))
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	operator := domain.Operator{
		OperatorID:   uuid.NewString(),
		Name:         req.Name,
		Username:     username,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorOperatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorOperatorID,
		},
	}

	if err := s.operatorRepo.SaveOperator(ctx, operator); err != nil {
		return nil, err
	}

	return &operator, nil
}

func (s *operatorService) GetOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error) {
	return s.operatorRepo.FindOperatorByID(ctx, operatorID)
}

func (s *operatorService) ListOperators(ctx context.Context) ([]domain.Operator, error) {
	return s.operatorRepo.ListOperators(ctx)
}

// Authenticate verifies credentials. Unknown usernames and wrong passwords are
// indistinguishable to the caller.
func (s *operatorService) Authenticate(ctx context.Context, username, password string) (*domain.Operator, error) {
	operator, err := s.operatorRepo.FindOperatorByUsername(ctx, strings.TrimSpace(strings.ToLower(username)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrForbidden
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, operator.PasswordHash) {
		return nil, apperrors.ErrForbidden
	}

	return operator, nil
}
