package domain

// CashMethodName is the display name that designates the physical cash tender.
// Resolution is case-insensitive; if duplicates exist the first active match wins.
const CashMethodName = "Cash"

// PaymentMethod represents a tender type through which money is received
// (e.g. Cash, Card, Transfer, Other).
type PaymentMethod struct {
	MethodID string `json:"methodID"` // Primary Key (UUID)
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
	AuditFields
}
