package domain

import "time"

// AuditAction identifies the state-changing operation an audit log records.
type AuditAction string

const (
	CashSessionOpened        AuditAction = "CashSessionOpened"
	CashMovementCreated      AuditAction = "CashMovementCreated"
	CashSessionClosed        AuditAction = "CashSessionClosed"
	PaymentCreated           AuditAction = "PaymentCreated"
	ExpenseCreated           AuditAction = "ExpenseCreated"
	MemberCreated            AuditAction = "MemberCreated"
	MemberUpdated            AuditAction = "MemberUpdated"
	MemberDeactivated        AuditAction = "MemberDeactivated"
	PaymentMethodCreated     AuditAction = "PaymentMethodCreated"
	PaymentMethodDeactivated AuditAction = "PaymentMethodDeactivated"
)

// AuditLog is one best-effort compliance record of a state-changing operation.
// Audit writes never fail the operation they describe.
type AuditLog struct {
	AuditID    string      `json:"auditID"` // Primary Key (UUID)
	Action     AuditAction `json:"action"`
	EntityName string      `json:"entityName"`
	EntityID   string      `json:"entityID"`
	OperatorID string      `json:"operatorID"`
	Payload    []byte      `json:"payload,omitempty"` // JSON details of the change
	CreatedAt  time.Time   `json:"createdAt"`
}
