package mapping

import (
	"github.com/clubdesk/club_desk_app/internal/core/domain"
	"github.com/clubdesk/club_desk_app/internal/models"
)

// ToModelCashSession converts a domain CashSession to a model CashSession
func ToModelCashSession(d domain.CashSession) models.CashSession {
	return models.CashSession{
		SessionID:       d.SessionID,
		OpenedBy:        d.OpenedBy,
		OpenedAt:        d.OpenedAt,
		OpeningAmount:   d.OpeningAmount,
		Status:          models.CashSessionStatus(d.Status),
		ClosedBy:        d.ClosedBy,
		ClosedAt:        d.ClosedAt,
		CountedCash:     d.CountedCash,
		CountedCard:     d.CountedCard,
		CountedTransfer: d.CountedTransfer,
		CountedOther:    d.CountedOther,
		ExpectedCash:    d.ExpectedCash,
		CashVariance:    d.CashVariance,
	}
}

// ToDomainCashSession converts a model CashSession to a domain CashSession
func ToDomainCashSession(m models.CashSession) domain.CashSession {
	return domain.CashSession{
		SessionID:       m.SessionID,
		OpenedBy:        m.OpenedBy,
		OpenedAt:        m.OpenedAt,
		OpeningAmount:   m.OpeningAmount,
		Status:          domain.CashSessionStatus(m.Status),
		ClosedBy:        m.ClosedBy,
		ClosedAt:        m.ClosedAt,
		CountedCash:     m.CountedCash,
		CountedCard:     m.CountedCard,
		CountedTransfer: m.CountedTransfer,
		CountedOther:    m.CountedOther,
		ExpectedCash:    m.ExpectedCash,
		CashVariance:    m.CashVariance,
	}
}

// ToModelCashMovement converts a domain CashMovement to a model CashMovement
func ToModelCashMovement(d domain.CashMovement) models.CashMovement {
	return models.CashMovement{
		MovementID: d.MovementID,
		SessionID:  d.SessionID,
		Kind:       models.MovementKind(d.Kind),
		Amount:     d.Amount,
		Notes:      d.Notes,
		CreatedAt:  d.CreatedAt,
		CreatedBy:  d.CreatedBy,
	}
}

// ToDomainCashMovement converts a model CashMovement to a domain CashMovement
func ToDomainCashMovement(m models.CashMovement) domain.CashMovement {
	return domain.CashMovement{
		MovementID: m.MovementID,
		SessionID:  m.SessionID,
		Kind:       domain.MovementKind(m.Kind),
		Amount:     m.Amount,
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
		CreatedBy:  m.CreatedBy,
	}
}

// ToDomainCashSessionSlice converts a slice of model CashSessions to domain CashSessions
func ToDomainCashSessionSlice(ms []models.CashSession) []domain.CashSession {
	ds := make([]domain.CashSession, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashSession(m)
	}
	return ds
}

// ToDomainCashMovementSlice converts a slice of model CashMovements to domain CashMovements
func ToDomainCashMovementSlice(ms []models.CashMovement) []domain.CashMovement {
	ds := make([]domain.CashMovement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashMovement(m)
	}
	return ds
}
