// Package reconciliation holds the pure drawer reconciliation arithmetic. Everything
// here is side-effect free and operates on exact decimals; inputs are expected to have
// been gathered under one consistent read by the caller.
package reconciliation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/clubdesk/club_desk_app/internal/core/domain"
)

// ResolveCashMethod returns the ID of the active payment method designated as the
// physical cash tender: the first active method whose name matches
// domain.CashMethodName case-insensitively. Returns nil when no such method exists,
// in which case cash-specific aggregation contributes zero.
func ResolveCashMethod(methods []domain.PaymentMethod) *string {
	for _, m := range methods {
		if m.IsActive && strings.EqualFold(m.Name, domain.CashMethodName) {
			id := m.MethodID
			return &id
		}
	}
	return nil
}

// BuildSnapshot combines a session, the known payment methods and the session's
// aggregated ledger totals into a full balance snapshot.
//
// Expected cash is:
//
//	opening + cash payments + movements in - movements out - cash expenses
//
// Only the cash tender is reconciled against drawer contents; balances of other
// tenders are their payment totals untouched by expenses. Maps are built fresh per
// call, so snapshots are safe to compute concurrently.
func BuildSnapshot(session domain.CashSession, methods []domain.PaymentMethod, totals domain.SessionLedgerTotals) domain.BalanceSnapshot {
	cashMethodID := ResolveCashMethod(methods)

	cashPayments := decimal.Zero
	cashExpenses := decimal.Zero
	if cashMethodID != nil {
		if v, ok := totals.PaymentTotals[*cashMethodID]; ok {
			cashPayments = v
		}
		if v, ok := totals.ExpenseTotals[*cashMethodID]; ok {
			cashExpenses = v
		}
	}

	expectedCash := session.OpeningAmount.
		Add(cashPayments).
		Add(totals.MovementsIn).
		Sub(totals.MovementsOut).
		Sub(cashExpenses)

	activeMethods := make([]domain.PaymentMethod, 0, len(methods))
	methodBalances := make(map[string]decimal.Decimal, len(methods))
	paymentTotals := make(map[string]decimal.Decimal, len(methods))
	for _, m := range methods {
		if !m.IsActive {
			continue
		}
		activeMethods = append(activeMethods, m)

		total := decimal.Zero
		if v, ok := totals.PaymentTotals[m.MethodID]; ok {
			total = v
		}
		paymentTotals[m.MethodID] = total

		if cashMethodID != nil && m.MethodID == *cashMethodID {
			methodBalances[m.MethodID] = expectedCash
		} else {
			methodBalances[m.MethodID] = total
		}
	}

	return domain.BalanceSnapshot{
		Session:        session,
		Methods:        activeMethods,
		PaymentTotals:  paymentTotals,
		MovementsIn:    totals.MovementsIn,
		MovementsOut:   totals.MovementsOut,
		CashExpenses:   cashExpenses,
		ExpectedCash:   expectedCash,
		MethodBalances: methodBalances,
		CashMethodID:   cashMethodID,
	}
}
