package mapping

import (
	"github.com/clubdesk/club_desk_app/internal/core/domain"
	"github.com/clubdesk/club_desk_app/internal/models"
)

// ToModelOperator converts a domain Operator to a model Operator
func ToModelOperator(d domain.Operator) models.Operator {
	return models.Operator{
		OperatorID:   d.OperatorID,
		Name:         d.Name,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOperator converts a model Operator to a domain Operator
func ToDomainOperator(m models.Operator) domain.Operator {
	return domain.Operator{
		OperatorID:   m.OperatorID,
		Name:         m.Name,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
