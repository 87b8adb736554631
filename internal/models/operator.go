package models

// Operator is the database shape of a back-office user.
type Operator struct {
	OperatorID   string `json:"operatorID"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	AuditFields
}
