package repositories

import (
	"context"

	"github.com/clubdesk/club_desk_app/internal/core/domain"
)

// MemberReader defines read operations for member data
type MemberReader interface {
	// FindMemberByID retrieves a specific member by their identifier.
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// ListMembers retrieves members newest-first using token-based pagination.
	ListMembers(ctx context.Context, limit int, nextToken *string) ([]domain.Member, *string, error)
}

// MemberWriter defines write operations for member data
type MemberWriter interface {
	// SaveMember persists a new member.
	SaveMember(ctx context.Context, member domain.Member) error

	// UpdateMember updates a member's contact details.
	UpdateMember(ctx context.Context, member domain.Member) error

	// DeactivateMember marks a member inactive.
	DeactivateMember(ctx context.Context, memberID string, updatedBy string) error
}

// MemberRepositoryFacade combines all member repository interfaces
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
}
