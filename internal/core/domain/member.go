package domain

import "time"

// Member represents a registered member of the club.
type Member struct {
	MemberID      string     `json:"memberID"` // Primary Key (UUID)
	FullName      string     `json:"fullName"`
	Email         string     `json:"email,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	IsActive      bool       `json:"isActive"`
	DeactivatedAt *time.Time `json:"deactivatedAt,omitempty"`
	AuditFields
}
