package domain

import (
	"github.com/shopspring/decimal"
)

// Payment is money received from a member through some tender. Payments are
// append-only facts; the session reconciliation aggregates them by method over
// the session's time window.
type Payment struct {
	PaymentID string          `json:"paymentID"` // Primary Key (UUID)
	MemberID  string          `json:"memberID"`
	MethodID  string          `json:"methodID"`
	Amount    decimal.Decimal `json:"amount"` // strictly positive
	Notes     string          `json:"notes,omitempty"`
	AuditFields
}

// Expense is money paid out of the business, tagged with the tender it was paid
// from. Cash-tagged expenses reduce the expected cash of the session they fall in;
// expenses in other tenders are informational only.
type Expense struct {
	ExpenseID   string          `json:"expenseID"` // Primary Key (UUID)
	MethodID    string          `json:"methodID"`
	Amount      decimal.Decimal `json:"amount"` // strictly positive
	Description string          `json:"description"`
	AuditFields
}
