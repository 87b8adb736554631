package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubdesk/club_desk_app/internal/core/domain"
)

// CreatePaymentRequest is the payload for recording money received from a member.
type CreatePaymentRequest struct {
	MemberID string          `json:"memberID" binding:"required,uuid"`
	MethodID string          `json:"methodID" binding:"required,uuid"`
	Amount   decimal.Decimal `json:"amount" binding:"required,dgt0"`
	Notes    string          `json:"notes"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID string          `json:"paymentID"`
	MemberID  string          `json:"memberID"`
	MethodID  string          `json:"methodID"`
	Amount    decimal.Decimal `json:"amount"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	CreatedBy string          `json:"createdBy"`
}

// CreateExpenseRequest is the payload for recording a tender-tagged expense.
type CreateExpenseRequest struct {
	MethodID    string          `json:"methodID" binding:"required,uuid"`
	Amount      decimal.Decimal `json:"amount" binding:"required,dgt0"`
	Description string          `json:"description" binding:"required,max=255"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	MethodID    string          `json:"methodID"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// ListExpensesResponse is a page of expenses plus the continuation token.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID: p.PaymentID,
		MemberID:  p.MemberID,
		MethodID:  p.MethodID,
		Amount:    p.Amount,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		CreatedBy: p.CreatedBy,
	}
}

// ToPaymentResponses converts a slice of domain.Payment to responses.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToPaymentResponse(&p)
	}
	return responses
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		MethodID:    e.MethodID,
		Amount:      e.Amount,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
	}
}

// ToExpenseResponses converts a slice of domain.Expense to responses.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToExpenseResponse(&e)
	}
	return responses
}
