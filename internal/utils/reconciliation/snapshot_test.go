package reconciliation_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubdesk/club_desk_app/internal/core/domain"
	"github.com/clubdesk/club_desk_app/internal/utils/reconciliation"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testMethods() (cash, card, transfer domain.PaymentMethod) {
	cash = domain.PaymentMethod{MethodID: uuid.NewString(), Name: "Cash", IsActive: true}
	card = domain.PaymentMethod{MethodID: uuid.NewString(), Name: "Card", IsActive: true}
	transfer = domain.PaymentMethod{MethodID: uuid.NewString(), Name: "Transfer", IsActive: true}
	return
}

func testSession(opening string) domain.CashSession {
	return domain.CashSession{
		SessionID:     uuid.NewString(),
		OpenedBy:      uuid.NewString(),
		OpenedAt:      time.Now().UTC(),
		OpeningAmount: dec(opening),
		Status:        domain.SessionOpen,
	}
}

func TestResolveCashMethod(t *testing.T) {
	cash, card, _ := testMethods()

	t.Run("case insensitive match", func(t *testing.T) {
		lower := cash
		lower.Name = "cASh"
		got := reconciliation.ResolveCashMethod([]domain.PaymentMethod{card, lower})
		require.NotNil(t, got)
		assert.Equal(t, cash.MethodID, *got)
	})

	t.Run("inactive cash method is skipped", func(t *testing.T) {
		inactive := cash
		inactive.IsActive = false
		got := reconciliation.ResolveCashMethod([]domain.PaymentMethod{inactive, card})
		assert.Nil(t, got)
	})

	t.Run("first match wins on duplicates", func(t *testing.T) {
		second := domain.PaymentMethod{MethodID: uuid.NewString(), Name: "CASH", IsActive: true}
		got := reconciliation.ResolveCashMethod([]domain.PaymentMethod{cash, second})
		require.NotNil(t, got)
		assert.Equal(t, cash.MethodID, *got)
	})

	t.Run("no methods", func(t *testing.T) {
		assert.Nil(t, reconciliation.ResolveCashMethod(nil))
	})
}

func TestBuildSnapshot_ExpectedCash(t *testing.T) {
	cash, card, transfer := testMethods()
	methods := []domain.PaymentMethod{cash, card, transfer}
	session := testSession("100.00")

	totals := domain.SessionLedgerTotals{
		PaymentTotals: map[string]decimal.Decimal{
			cash.MethodID: dec("200.00"),
			card.MethodID: dec("450.50"),
		},
		MovementsIn:  dec("50.00"),
		MovementsOut: dec("20.00"),
		ExpenseTotals: map[string]decimal.Decimal{
			cash.MethodID: dec("30.00"),
			card.MethodID: dec("99.99"),
		},
	}

	snap := reconciliation.BuildSnapshot(session, methods, totals)

	// 100 + 200 + 50 - 20 - 30 = 300
	assert.True(t, snap.ExpectedCash.Equal(dec("300.00")), "expected 300.00, got %s", snap.ExpectedCash)
	require.NotNil(t, snap.CashMethodID)
	assert.Equal(t, cash.MethodID, *snap.CashMethodID)

	// Cash balance is the reconciled figure, not the raw payment total.
	assert.True(t, snap.MethodBalances[cash.MethodID].Equal(dec("300.00")))
	// Card expenses must not reduce the card balance.
	assert.True(t, snap.MethodBalances[card.MethodID].Equal(dec("450.50")))
	// Methods with no payments default to zero.
	assert.True(t, snap.MethodBalances[transfer.MethodID].Equal(decimal.Zero))

	// Intermediate figures are retained.
	assert.True(t, snap.CashExpenses.Equal(dec("30.00")))
	assert.True(t, snap.MovementsIn.Equal(dec("50.00")))
	assert.True(t, snap.MovementsOut.Equal(dec("20.00")))
	assert.True(t, snap.PaymentTotals[cash.MethodID].Equal(dec("200.00")))
}

func TestBuildSnapshot_NoCashMethod(t *testing.T) {
	_, card, _ := testMethods()
	session := testSession("80.00")

	totals := domain.SessionLedgerTotals{
		PaymentTotals: map[string]decimal.Decimal{card.MethodID: dec("500.00")},
		MovementsIn:   dec("10.00"),
		MovementsOut:  dec("5.00"),
		ExpenseTotals: map[string]decimal.Decimal{card.MethodID: dec("100.00")},
	}

	snap := reconciliation.BuildSnapshot(session, []domain.PaymentMethod{card}, totals)

	// Cash contributions and cash expenses both vanish: 80 + 0 + 10 - 5 - 0 = 85.
	assert.True(t, snap.ExpectedCash.Equal(dec("85.00")), "got %s", snap.ExpectedCash)
	assert.Nil(t, snap.CashMethodID)
	assert.True(t, snap.CashExpenses.Equal(decimal.Zero))
	assert.True(t, snap.MethodBalances[card.MethodID].Equal(dec("500.00")))
}

func TestBuildSnapshot_InactiveMethodsExcluded(t *testing.T) {
	cash, card, _ := testMethods()
	card.IsActive = false
	session := testSession("0")

	snap := reconciliation.BuildSnapshot(session, []domain.PaymentMethod{cash, card}, domain.SessionLedgerTotals{})

	assert.Len(t, snap.Methods, 1)
	_, hasCard := snap.MethodBalances[card.MethodID]
	assert.False(t, hasCard)
}

func TestBuildSnapshot_Deterministic(t *testing.T) {
	cash, card, _ := testMethods()
	methods := []domain.PaymentMethod{cash, card}
	session := testSession("33.10")
	totals := domain.SessionLedgerTotals{
		PaymentTotals: map[string]decimal.Decimal{cash.MethodID: dec("0.01"), card.MethodID: dec("7.77")},
		MovementsIn:   dec("0.02"),
		MovementsOut:  dec("0.03"),
		ExpenseTotals: map[string]decimal.Decimal{cash.MethodID: dec("0.04")},
	}

	first := reconciliation.BuildSnapshot(session, methods, totals)
	second := reconciliation.BuildSnapshot(session, methods, totals)

	assert.Equal(t, first, second)
}

func TestBuildSnapshot_NoRoundingDrift(t *testing.T) {
	cash, _, _ := testMethods()
	session := testSession("0.10")

	// 0.1 + 0.2 is the classic float trap; decimals must stay exact.
	totals := domain.SessionLedgerTotals{
		PaymentTotals: map[string]decimal.Decimal{cash.MethodID: dec("0.20")},
	}

	snap := reconciliation.BuildSnapshot(session, []domain.PaymentMethod{cash}, totals)
	assert.Equal(t, "0.3", snap.ExpectedCash.String())
}
