package mapping

import (
	"github.com/clubdesk/club_desk_app/internal/core/domain"
	"github.com/clubdesk/club_desk_app/internal/models"
)

// ToModelPaymentMethod converts a domain PaymentMethod to a model PaymentMethod
func ToModelPaymentMethod(d domain.PaymentMethod) models.PaymentMethod {
	return models.PaymentMethod{
		MethodID:    d.MethodID,
		Name:        d.Name,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPaymentMethod converts a model PaymentMethod to a domain PaymentMethod
func ToDomainPaymentMethod(m models.PaymentMethod) domain.PaymentMethod {
	return domain.PaymentMethod{
		MethodID:    m.MethodID,
		Name:        m.Name,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentMethodSlice converts a slice of model PaymentMethods to domain PaymentMethods
func ToDomainPaymentMethodSlice(ms []models.PaymentMethod) []domain.PaymentMethod {
	ds := make([]domain.PaymentMethod, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPaymentMethod(m)
	}
	return ds
}
