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

// memberService provides member CRUD operations.
type memberService struct {
	memberRepo portsrepo.MemberRepositoryFacade
	auditSvc   portssvc.AuditSvcFacade
}

// NewMemberService creates a new MemberService.
func NewMemberService(memberRepo portsrepo.MemberRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.MemberSvcFacade {
	return &memberService{memberRepo: memberRepo, auditSvc: auditSvc}
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

func (s *memberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest, creatorOperatorID string) (*domain.Member, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, fmt.Errorf("%w: member full name is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	member := domain.Member{
		MemberID: uuid.NewString(),
		FullName: fullName,
		Email:    req.Email,
		Phone:    req.Phone,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorOperatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorOperatorID,
		},
	}

	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		return nil, err
	}

	s.auditSvc.LogAsync(ctx, domain.MemberCreated, "member", member.MemberID, creatorOperatorID, member)

	return &member, nil
}

func (s *memberService) GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	return s.memberRepo.FindMemberByID(ctx, memberID)
}

func (s *memberService) ListMembers(ctx context.Context, limit int, nextToken *string) ([]domain.Member, *string, error) {
	if limit <= 0 {
		return nil, nil, fmt.Errorf("%w: limit must be positive", apperrors.ErrValidation)
	}
	return s.memberRepo.ListMembers(ctx, limit, nextToken)
}

func (s *memberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, operatorID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		fullName := strings.TrimSpace(*req.FullName)
		if fullName == "" {
			return nil, fmt.Errorf("%w: member full name must not be blank", apperrors.ErrValidation)
		}
		member.FullName = fullName
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	member.LastUpdatedAt = time.Now().UTC()
	member.LastUpdatedBy = operatorID

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		return nil, err
	}

	s.auditSvc.LogAsync(ctx, domain.MemberUpdated, "member", memberID, operatorID, member)

	return member, nil
}

func (s *memberService) DeactivateMember(ctx context.Context, memberID string, operatorID string) error {
	if err := s.memberRepo.DeactivateMember(ctx, memberID, operatorID); err != nil {
		return err
	}
	s.auditSvc.LogAsync(ctx, domain.MemberDeactivated, "member", memberID, operatorID, nil)
	return nil
}
