package repositories

import (
	"context"

	"github.com/clubdesk/club_desk_app/internal/core/domain"
)

// PaymentMethodReader defines read operations for payment method data
type PaymentMethodReader interface {
	// FindMethodByID retrieves a specific payment method by its identifier.
	FindMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error)

	// ListPaymentMethods retrieves all payment methods, active and inactive.
	// Callers filter by the active flag where it matters.
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}

// PaymentMethodWriter defines write operations for payment method data
type PaymentMethodWriter interface {
	// SavePaymentMethod persists a new payment method.
	SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error

	// DeactivatePaymentMethod marks a payment method inactive.
	DeactivatePaymentMethod(ctx context.Context, methodID string, updatedBy string) error
}

// PaymentMethodRepositoryFacade combines all payment-method repository interfaces
type PaymentMethodRepositoryFacade interface {
	PaymentMethodReader
	PaymentMethodWriter
}
