package repositories

import (
	"context"

	"github.com/clubdesk/club_desk_app/internal/core/domain"
)

// PaymentRepositoryFacade defines persistence for member payments.
// Payments are append-only; there are no update or delete operations.
type PaymentRepositoryFacade interface {
	// SavePayment persists a new payment.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// FindPaymentByID retrieves a specific payment by its identifier.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByMember retrieves all payments recorded for a member, newest first.
	ListPaymentsByMember(ctx context.Context, memberID string) ([]domain.Payment, error)
}

// ExpenseRepositoryFacade defines persistence for tender-tagged expenses.
// Expenses are append-only, like payments.
type ExpenseRepositoryFacade interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// ListExpenses retrieves expenses newest-first using token-based pagination.
	ListExpenses(ctx context.Context, limit int, nextToken *string) ([]domain.Expense, *string, error)
}
