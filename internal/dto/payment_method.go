package dto

import (
	"github.com/clubdesk/club_desk_app/internal/core/domain"
)

// CreatePaymentMethodRequest is the payload for registering a new tender type.
type CreatePaymentMethodRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// PaymentMethodResponse defines the data returned for a payment method.
type PaymentMethodResponse struct {
	MethodID string `json:"methodID"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// ToPaymentMethodResponse converts a domain.PaymentMethod to its response DTO.
func ToPaymentMethodResponse(m *domain.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		MethodID: m.MethodID,
		Name:     m.Name,
		IsActive: m.IsActive,
	}
}

// ToPaymentMethodResponses converts a slice of domain.PaymentMethod to responses.
func ToPaymentMethodResponses(methods []domain.PaymentMethod) []PaymentMethodResponse {
	responses := make([]PaymentMethodResponse, len(methods))
	for i, m := range methods {
		responses[i] = ToPaymentMethodResponse(&m)
	}
	return responses
}
