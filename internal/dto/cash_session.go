package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubdesk/club_desk_app/internal/core/domain"
)

// OpenCashSessionRequest is the payload for opening a new drawer session.
// OpeningAmount may legitimately be zero, so it is not marked required.
type OpenCashSessionRequest struct {
	OpeningAmount decimal.Decimal `json:"openingAmount" binding:"dgte0"`
}

// AddMovementRequest is the payload for recording a manual drawer adjustment.
type AddMovementRequest struct {
	Kind   string          `json:"kind" binding:"required,oneof=IN OUT"`
	Amount decimal.Decimal `json:"amount" binding:"required,dgt0"`
	Notes  string          `json:"notes"`
}

// CloseCashSessionRequest carries the four conventional counted tender buckets.
type CloseCashSessionRequest struct {
	CountedCash     decimal.Decimal `json:"countedCash"`
	CountedCard     decimal.Decimal `json:"countedCard"`
	CountedTransfer decimal.Decimal `json:"countedTransfer"`
	CountedOther    decimal.Decimal `json:"countedOther"`
}

// CashSessionResponse defines the data returned for a cash session.
type CashSessionResponse struct {
	SessionID     string          `json:"sessionID"`
	OpenedBy      string          `json:"openedBy"`
	OpenedAt      time.Time       `json:"openedAt"`
	OpeningAmount decimal.Decimal `json:"openingAmount"`
	Status        string          `json:"status"`
	ClosedBy      *string         `json:"closedBy,omitempty"`
	ClosedAt      *time.Time      `json:"closedAt,omitempty"`

	CountedCash     *decimal.Decimal `json:"countedCash,omitempty"`
	CountedCard     *decimal.Decimal `json:"countedCard,omitempty"`
	CountedTransfer *decimal.Decimal `json:"countedTransfer,omitempty"`
	CountedOther    *decimal.Decimal `json:"countedOther,omitempty"`
	ExpectedCash    *decimal.Decimal `json:"expectedCash,omitempty"`
	CashVariance    *decimal.Decimal `json:"cashVariance,omitempty"`
}

// CashMovementResponse defines the data returned for a cash movement.
type CashMovementResponse struct {
	MovementID string          `json:"movementID"`
	SessionID  string          `json:"sessionID"`
	Kind       string          `json:"kind"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	CreatedBy  string          `json:"createdBy"`
}

// BalanceSnapshotResponse defines the full reconciliation state returned to callers.
type BalanceSnapshotResponse struct {
	Session        CashSessionResponse        `json:"session"`
	Methods        []PaymentMethodResponse    `json:"methods"`
	PaymentTotals  map[string]decimal.Decimal `json:"paymentTotals"`
	MovementsIn    decimal.Decimal            `json:"movementsIn"`
	MovementsOut   decimal.Decimal            `json:"movementsOut"`
	CashExpenses   decimal.Decimal            `json:"cashExpenses"`
	ExpectedCash   decimal.Decimal            `json:"expectedCash"`
	MethodBalances map[string]decimal.Decimal `json:"methodBalances"`
	CashMethodID   *string                    `json:"cashMethodID,omitempty"`
}

// ListSessionsResponse is a page of sessions plus the continuation token.
type ListSessionsResponse struct {
	Sessions  []CashSessionResponse `json:"sessions"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToCashSessionResponse converts a domain.CashSession to CashSessionResponse DTO.
func ToCashSessionResponse(s *domain.CashSession) CashSessionResponse {
	return CashSessionResponse{
		SessionID:       s.SessionID,
		OpenedBy:        s.OpenedBy,
		OpenedAt:        s.OpenedAt,
		OpeningAmount:   s.OpeningAmount,
		Status:          string(s.Status),
		ClosedBy:        s.ClosedBy,
		ClosedAt:        s.ClosedAt,
		CountedCash:     s.CountedCash,
		CountedCard:     s.CountedCard,
		CountedTransfer: s.CountedTransfer,
		CountedOther:    s.CountedOther,
		ExpectedCash:    s.ExpectedCash,
		CashVariance:    s.CashVariance,
	}
}

// ToCashSessionResponses converts a slice of domain.CashSession to responses.
func ToCashSessionResponses(sessions []domain.CashSession) []CashSessionResponse {
	responses := make([]CashSessionResponse, len(sessions))
	for i, s := range sessions {
		responses[i] = ToCashSessionResponse(&s)
	}
	return responses
}

// ToCashMovementResponse converts a domain.CashMovement to CashMovementResponse DTO.
func ToCashMovementResponse(m *domain.CashMovement) CashMovementResponse {
	return CashMovementResponse{
		MovementID: m.MovementID,
		SessionID:  m.SessionID,
		Kind:       string(m.Kind),
		Amount:     m.Amount,
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
		CreatedBy:  m.CreatedBy,
	}
}

// ToBalanceSnapshotResponse converts a domain.BalanceSnapshot to its response DTO.
func ToBalanceSnapshotResponse(s *domain.BalanceSnapshot) BalanceSnapshotResponse {
	return BalanceSnapshotResponse{
		Session:        ToCashSessionResponse(&s.Session),
		Methods:        ToPaymentMethodResponses(s.Methods),
		PaymentTotals:  s.PaymentTotals,
		MovementsIn:    s.MovementsIn,
		MovementsOut:   s.MovementsOut,
		CashExpenses:   s.CashExpenses,
		ExpectedCash:   s.ExpectedCash,
		MethodBalances: s.MethodBalances,
		CashMethodID:   s.CashMethodID,
	}
}
