package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clubdesk/club_desk_app/internal/apperrors"
	"github.com/clubdesk/club_desk_app/internal/core/domain"
	portsrepo "github.com/clubdesk/club_desk_app/internal/core/ports/repositories"
	portssvc "github.com/clubdesk/club_desk_app/internal/core/ports/services"
	"github.com/clubdesk/club_desk_app/internal/dto"
)

// paymentService records member payments. Payments created while a session is
// open fall into that session's reconciliation window automatically; the service
// itself does not need to know about sessions.
type paymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
	memberRepo  portsrepo.MemberRepositoryFacade
	methodRepo  portsrepo.PaymentMethodRepositoryFacade
	auditSvc    portssvc.AuditSvcFacade
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, memberRepo portsrepo.MemberRepositoryFacade, methodRepo portsrepo.PaymentMethodRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
		memberRepo:  memberRepo,
		methodRepo:  methodRepo,
		auditSvc:    auditSvc,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, operatorID string) (*domain.Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	member, err := s.memberRepo.FindMemberByID(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	if !member.IsActive {
		return nil, fmt.Errorf("%w: member %s is inactive", apperrors.ErrInvalidState, req.MemberID)
	}

	method, err := s.methodRepo.FindMethodByID(ctx, req.MethodID)
	if err != nil {
		return nil, err
	}
	if !method.IsActive {
		return nil, fmt.Errorf("%w: payment method %s is inactive", apperrors.ErrInvalidState, req.MethodID)
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID: uuid.NewString(),
		MemberID:  req.MemberID,
		MethodID:  req.MethodID,
		Amount:    req.Amount,
		Notes:     req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     operatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: operatorID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		return nil, err
	}

	s.auditSvc.LogAsync(ctx, domain.PaymentCreated, "payment", payment.PaymentID, operatorID, payment)

	return &payment, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return s.paymentRepo.FindPaymentByID(ctx, paymentID)
}

func (s *paymentService) ListPaymentsByMember(ctx context.Context, memberID string) ([]domain.Payment, error) {
	if _, err := s.memberRepo.FindMemberByID(ctx, memberID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListPaymentsByMember(ctx, memberID)
}
