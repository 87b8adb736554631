package services

import (
	"context"

	"github.com/clubdesk/club_desk_app/internal/core/domain"
	"github.com/clubdesk/club_desk_app/internal/dto"
)

// PaymentSvcFacade defines operations over member payments.
type PaymentSvcFacade interface {
	// CreatePayment records money received from a member through some tender.
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, operatorID string) (*domain.Payment, error)

	// GetPaymentByID retrieves a specific payment.
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByMember retrieves all payments recorded for a member.
	ListPaymentsByMember(ctx context.Context, memberID string) ([]domain.Payment, error)
}

// ExpenseSvcFacade defines operations over tender-tagged expenses.
type ExpenseSvcFacade interface {
	// CreateExpense records money paid out through some tender.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, operatorID string) (*domain.Expense, error)

	// ListExpenses retrieves expenses newest-first with token pagination.
	ListExpenses(ctx context.Context, limit int, nextToken *string) ([]domain.Expense, *string, error)
}
