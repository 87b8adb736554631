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

// paymentMethodService provides tender registry operations.
type paymentMethodService struct {
	methodRepo portsrepo.PaymentMethodRepositoryFacade
	auditSvc   portssvc.AuditSvcFacade
}

// NewPaymentMethodService creates a new PaymentMethodService.
func NewPaymentMethodService(methodRepo portsrepo.PaymentMethodRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.PaymentMethodSvcFacade {
	return &paymentMethodService{methodRepo: methodRepo, auditSvc: auditSvc}
}

var _ portssvc.PaymentMethodSvcFacade = (*paymentMethodService)(nil)

func (s *paymentMethodService) CreatePaymentMethod(ctx context.Context, req dto.CreatePaymentMethodRequest, creatorOperatorID string) (*domain.PaymentMethod, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: payment method name is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	method := domain.PaymentMethod{
		MethodID: uuid.NewString(),
		Name:     name,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorOperatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorOperatorID,
		},
	}

	if err := s.methodRepo.SavePaymentMethod(ctx, method); err != nil {
		return nil, err
	}

	s.auditSvc.LogAsync(ctx, domain.PaymentMethodCreated, "payment_method", method.MethodID, creatorOperatorID, method)

	return &method, nil
}

func (s *paymentMethodService) GetMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error) {
	return s.methodRepo.FindMethodByID(ctx, methodID)
}

func (s *paymentMethodService) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return s.methodRepo.ListPaymentMethods(ctx)
}

func (s *paymentMethodService) DeactivatePaymentMethod(ctx context.Context, methodID string, operatorID string) error {
	if err := s.methodRepo.DeactivatePaymentMethod(ctx, methodID, operatorID); err != nil {
		return err
	}
	s.auditSvc.LogAsync(ctx, domain.PaymentMethodDeactivated, "payment_method", methodID, operatorID, nil)
	return nil
}
