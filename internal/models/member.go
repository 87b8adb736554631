package models

import "time"

// Member is the database shape of a club member.
type Member struct {
	MemberID      string     `json:"memberID"`
	FullName      string     `json:"fullName"`
	Email         string     `json:"email,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	IsActive      bool       `json:"isActive"`
	DeactivatedAt *time.Time `json:"deactivatedAt,omitempty"`
	AuditFields
}
