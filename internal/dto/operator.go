package dto

import (
	"github.com/clubdesk/club_desk_app/internal/core/domain"
)

// CreateOperatorRequest is the payload for registering a new back-office operator.
type CreateOperatorRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for operator login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token      string `json:"token"`
	OperatorID string `json:"operatorID"`
}

// OperatorResponse defines the data returned for an operator.
type OperatorResponse struct {
	OperatorID string `json:"operatorID"`
	Name       string `json:"name"`
	Username   string `json:"username"`
}

// ToOperatorResponses converts a slice of domain.Operator to responses.
func ToOperatorResponses(operators []domain.Operator) []OperatorResponse {
	responses := make([]OperatorResponse, len(operators))
	for i, o := range operators {
		responses[i] = ToOperatorResponse(&o)
	}
	return responses
}

// ToOperatorResponse converts a domain.Operator to OperatorResponse DTO.
func ToOperatorResponse(o *domain.Operator) OperatorResponse {
	return OperatorResponse{
		OperatorID: o.OperatorID,
		Name:       o.Name,
		Username:   o.Username,
	}
}
