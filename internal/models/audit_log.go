package models

import "time"

// AuditLog is the database shape of one compliance record.
type AuditLog struct {
	AuditID    string    `json:"auditID"`
	Action     string    `json:"action"`
	EntityName string    `json:"entityName"`
	EntityID   string    `json:"entityID"`
	OperatorID string    `json:"operatorID"`
	Payload    []byte    `json:"payload,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
