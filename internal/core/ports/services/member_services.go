package services

import (
	"context"

	"github.com/clubdesk/club_desk_app/internal/core/domain"
	"github.com/clubdesk/club_desk_app/internal/dto"
)

// MemberReaderSvc defines read operations for member data
type MemberReaderSvc interface {
	// GetMemberByID retrieves a specific member.
	GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// ListMembers retrieves members newest-first with token pagination.
	ListMembers(ctx context.Context, limit int, nextToken *string) ([]domain.Member, *string, error)
}

// MemberWriterSvc defines write operations for member data
type MemberWriterSvc interface {
	// CreateMember persists a new member.
	CreateMember(ctx context.Context, req dto.CreateMemberRequest, creatorOperatorID string) (*domain.Member, error)

	// UpdateMember updates a member's contact details.
	UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, operatorID string) (*domain.Member, error)

	// DeactivateMember marks a member inactive.
	DeactivateMember(ctx context.Context, memberID string, operatorID string) error
}

// MemberSvcFacade combines all member service interfaces
type MemberSvcFacade interface {
	MemberReaderSvc
	MemberWriterSvc
}
