package services

import (
	"context"

	"github.com/clubdesk/club_desk_app/internal/core/domain"
	"github.com/clubdesk/club_desk_app/internal/dto"
)

// PaymentMethodReaderSvc defines read operations for payment method data
type PaymentMethodReaderSvc interface {
	// GetMethodByID retrieves a specific payment method.
	GetMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error)

	// ListPaymentMethods retrieves all payment methods, active and inactive.
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}

// PaymentMethodWriterSvc defines write operations for payment method data
type PaymentMethodWriterSvc interface {
	// CreatePaymentMethod persists a new payment method.
	CreatePaymentMethod(ctx context.Context, req dto.CreatePaymentMethodRequest, creatorOperatorID string) (*domain.PaymentMethod, error)

	// DeactivatePaymentMethod marks a payment method inactive.
	DeactivatePaymentMethod(ctx context.Context, methodID string, operatorID string) error
}

// PaymentMethodSvcFacade combines all payment-method service interfaces
type PaymentMethodSvcFacade interface {
	PaymentMethodReaderSvc
	PaymentMethodWriterSvc
}
