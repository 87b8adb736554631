package models

import "github.com/shopspring/decimal"

// Payment is the database shape of money received from a member.
type Payment struct {
	PaymentID string          `json:"paymentID"`
	MemberID  string          `json:"memberID"`
	MethodID  string          `json:"methodID"`
	Amount    decimal.Decimal `json:"amount"`
	Notes     string          `json:"notes,omitempty"`
	AuditFields
}

// Expense is the database shape of money paid out, tagged with its tender.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	MethodID    string          `json:"methodID"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	AuditFields
}
