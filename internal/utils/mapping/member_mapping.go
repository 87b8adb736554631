package mapping

import (
	"github.com/clubdesk/club_desk_app/internal/core/domain"
	"github.com/clubdesk/club_desk_app/internal/models"
)

// ToModelMember converts a domain Member to a model Member
func ToModelMember(d domain.Member) models.Member {
	return models.Member{
		MemberID:      d.MemberID,
		FullName:      d.FullName,
		Email:         d.Email,
		Phone:         d.Phone,
		IsActive:      d.IsActive,
		DeactivatedAt: d.DeactivatedAt,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMember converts a model Member to a domain Member
func ToDomainMember(m models.Member) domain.Member {
	return domain.Member{
		MemberID:      m.MemberID,
		FullName:      m.FullName,
		Email:         m.Email,
		Phone:         m.Phone,
		IsActive:      m.IsActive,
		DeactivatedAt: m.DeactivatedAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMemberSlice converts a slice of model Members to domain Members
func ToDomainMemberSlice(ms []models.Member) []domain.Member {
	ds := make([]domain.Member, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMember(m)
	}
	return ds
}
