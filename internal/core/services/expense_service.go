package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clubdesk/club_desk_app/internal/apperrors"
	"github.com/clubdesk/club_desk_app/internal/core/domain"
	portsrepo "github.com/clubdesk/club_desk_app/internal/core/ports/repositories"
	portssvc "github.com/clubdesk/club_desk_app/internal/core/ports/services"
	"github.com/clubdesk/club_desk_app/internal/dto"
)

// expenseService records tender-tagged expenses. Cash-tagged expenses created
// while a session is open reduce that session's expected cash.
type expenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
	methodRepo  portsrepo.PaymentMethodRepositoryFacade
	auditSvc    portssvc.AuditSvcFacade
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, methodRepo portsrepo.PaymentMethodRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo: expenseRepo,
		methodRepo:  methodRepo,
		auditSvc:    auditSvc,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, operatorID string) (*domain.Expense, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: expense description is required", apperrors.ErrValidation)
	}

	method, err := s.methodRepo.FindMethodByID(ctx, req.MethodID)
	if err != nil {
		return nil, err
	}
	if !method.IsActive {
		return nil, fmt.Errorf("%w: payment method %s is inactive", apperrors.ErrInvalidState, req.MethodID)
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		MethodID:    req.MethodID,
		Amount:      req.Amount,
		Description: description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     operatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: operatorID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return nil, err
	}

	s.auditSvc.LogAsync(ctx, domain.ExpenseCreated, "expense", expense.ExpenseID, operatorID, expense)

	return &expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	if limit <= 0 {
		return nil, nil, fmt.Errorf("%w: limit must be positive", apperrors.ErrValidation)
	}
	return s.expenseRepo.ListExpenses(ctx, limit, nextToken)
}
