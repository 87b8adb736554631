package models

// PaymentMethod is the database shape of a tender type.
type PaymentMethod struct {
	MethodID string `json:"methodID"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
	AuditFields
}
