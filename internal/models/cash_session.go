package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashSessionStatus mirrors the session states stored in the cash_sessions table.
type CashSessionStatus string

const (
	SessionOpen   CashSessionStatus = "OPEN"
	SessionClosed CashSessionStatus = "CLOSED"
)

// MovementKind mirrors the movement kinds stored in the cash_movements table.
type MovementKind string

const (
	MovementIn  MovementKind = "IN"
	MovementOut MovementKind = "OUT"
)

// CashSession is the database shape of one drawer shift. A partial unique index on
// status enforces that at most one row is OPEN at any time.
type CashSession struct {
	SessionID     string            `json:"sessionID"`
	OpenedBy      string            `json:"openedBy"`
	OpenedAt      time.Time         `json:"openedAt"`
	OpeningAmount decimal.Decimal   `json:"openingAmount"`
	Status        CashSessionStatus `json:"status"`
	ClosedBy      *string           `json:"closedBy,omitempty"`
	ClosedAt      *time.Time        `json:"closedAt,omitempty"`

	CountedCash     *decimal.Decimal `json:"countedCash,omitempty"`
	CountedCard     *decimal.Decimal `json:"countedCard,omitempty"`
	CountedTransfer *decimal.Decimal `json:"countedTransfer,omitempty"`
	CountedOther    *decimal.Decimal `json:"countedOther,omitempty"`
	ExpectedCash    *decimal.Decimal `json:"expectedCash,omitempty"`
	CashVariance    *decimal.Decimal `json:"cashVariance,omitempty"`
}

// CashMovement is the database shape of one manual drawer adjustment.
type CashMovement struct {
	MovementID string          `json:"movementID"`
	SessionID  string          `json:"sessionID"`
	Kind       MovementKind    `json:"kind"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	CreatedBy  string          `json:"createdBy"`
}
