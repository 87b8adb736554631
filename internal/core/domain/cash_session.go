package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashSessionStatus indicates the state of a cash session.
type CashSessionStatus string

const (
	SessionOpen   CashSessionStatus = "OPEN"
	SessionClosed CashSessionStatus = "CLOSED"
)

// MovementKind distinguishes money put into the drawer from money taken out.
type MovementKind string

const (
	MovementIn  MovementKind = "IN"
	MovementOut MovementKind = "OUT"
)

// CashSession represents one shift of cash drawer activity, bounded by open and close.
// Sessions are an append-only financial record: they are created by opening, mutated
// only by closing and never deleted. At most one session is OPEN at any instant.
type CashSession struct {
	SessionID     string            `json:"sessionID"` // Primary Key (UUID)
	OpenedBy      string            `json:"openedBy"`  // OperatorID reference
	OpenedAt      time.Time         `json:"openedAt"`  // UTC
	OpeningAmount decimal.Decimal   `json:"openingAmount"`
	Status        CashSessionStatus `json:"status"`
	ClosedBy      *string           `json:"closedBy,omitempty"`
	ClosedAt      *time.Time        `json:"closedAt,omitempty"`

	// Closing figures, nil until the session is closed.
	CountedCash     *decimal.Decimal `json:"countedCash,omitempty"`
	CountedCard     *decimal.Decimal `json:"countedCard,omitempty"`
	CountedTransfer *decimal.Decimal `json:"countedTransfer,omitempty"`
	CountedOther    *decimal.Decimal `json:"countedOther,omitempty"`
	ExpectedCash    *decimal.Decimal `json:"expectedCash,omitempty"`
	CashVariance    *decimal.Decimal `json:"cashVariance,omitempty"` // counted - expected, recorded never enforced
}

// CashMovement is a manual, non-sale adjustment to the physical drawer
// (change brought in, a safe drop taken out). Immutable once created.
type CashMovement struct {
	MovementID string          `json:"movementID"` // Primary Key (UUID)
	SessionID  string          `json:"sessionID"`
	Kind       MovementKind    `json:"kind"`
	Amount     decimal.Decimal `json:"amount"` // strictly positive
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	CreatedBy  string          `json:"createdBy"` // OperatorID reference
}

// CountedTotals carries the amounts an operator physically counted per tender bucket
// when closing a session.
type CountedTotals struct {
	Cash     decimal.Decimal `json:"cash"`
	Card     decimal.Decimal `json:"card"`
	Transfer decimal.Decimal `json:"transfer"`
	Other    decimal.Decimal `json:"other"`
}

// SessionClosure carries everything persisted when a session is closed: who closed
// it and when, the operator's counted totals, and the computed figures they are
// reconciled against.
type SessionClosure struct {
	SessionID    string
	ClosedBy     string
	ClosedAt     time.Time
	Counted      CountedTotals
	ExpectedCash decimal.Decimal
	CashVariance decimal.Decimal // Counted.Cash - ExpectedCash
}

// SessionLedgerTotals holds the pre-aggregated figures for one session: payment totals
// keyed by method ID, movement in/out totals and expense totals keyed by method ID.
// These are sums over immutable records computed by the persistence layer; the
// reconciliation logic treats them as opaque inputs. Absent keys mean zero.
type SessionLedgerTotals struct {
	PaymentTotals map[string]decimal.Decimal
	MovementsIn   decimal.Decimal
	MovementsOut  decimal.Decimal
	ExpenseTotals map[string]decimal.Decimal
}

// BalanceSnapshot is the full derived reconciliation state for a session at a point
// in time. All intermediate figures are retained so reports can audit how the
// expected cash figure was derived, not just the final balances.
type BalanceSnapshot struct {
	Session        CashSession                `json:"session"`
	Methods        []PaymentMethod            `json:"methods"`
	PaymentTotals  map[string]decimal.Decimal `json:"paymentTotals"`
	MovementsIn    decimal.Decimal            `json:"movementsIn"`
	MovementsOut   decimal.Decimal            `json:"movementsOut"`
	CashExpenses   decimal.Decimal            `json:"cashExpenses"`
	ExpectedCash   decimal.Decimal            `json:"expectedCash"`
	MethodBalances map[string]decimal.Decimal `json:"methodBalances"`
	CashMethodID   *string                    `json:"cashMethodID,omitempty"`
}
