package domain

// Operator is a back-office user working a terminal (front desk, manager).
type Operator struct {
	OperatorID   string `json:"operatorID"` // Primary Key (UUID)
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // bcrypt, never serialized
	AuditFields
}
