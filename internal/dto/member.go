package dto

import (
	"time"

	"github.com/clubdesk/club_desk_app/internal/core/domain"
)

// CreateMemberRequest is the payload for registering a new member.
type CreateMemberRequest struct {
	FullName string `json:"fullName" binding:"required,max=120"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone" binding:"omitempty,max=30"`
}

// UpdateMemberRequest is the payload for updating a member's contact details.
// Nil fields are left unchanged.
type UpdateMemberRequest struct {
	FullName *string `json:"fullName" binding:"omitempty,max=120"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone" binding:"omitempty,max=30"`
}

// MemberResponse defines the data returned for a member.
type MemberResponse struct {
	MemberID  string    `json:"memberID"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListMembersResponse is a page of members plus the continuation token.
type ListMembersResponse struct {
	Members   []MemberResponse `json:"members"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ToMemberResponse converts a domain.Member to MemberResponse DTO.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:  m.MemberID,
		FullName:  m.FullName,
		Email:     m.Email,
		Phone:     m.Phone,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

// ToMemberResponses converts a slice of domain.Member to responses.
func ToMemberResponses(members []domain.Member) []MemberResponse {
	responses := make([]MemberResponse, len(members))
	for i, m := range members {
		responses[i] = ToMemberResponse(&m)
	}
	return responses
}
