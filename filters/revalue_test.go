package filters

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beachwood619/ledger/expr"
	"github.com/Beachwood619/ledger/journal"
)

// marketValuator prices AAPL in USD: 10 before February 2024, 15 after.
// Everything else is valued at face.
func marketValuator() expr.Valuator {
	price := func(at time.Time) decimal.Decimal {
		if at.Before(day("2024-02-01")) {
			return decimal.NewFromInt(10)
		}

		return decimal.NewFromInt(15)
	}

	return expr.ValuatorFunc(func(at time.Time, holding journal.Balance) (journal.Balance, error) {
		out := journal.NewBalance()
		for _, amount := range holding.Amounts() {
			if amount.Commodity == "AAPL" {
				out.AddAmount(journal.NewAmount(amount.Quantity.Mul(price(at)), "USD"))

				continue
			}

			out.AddAmount(amount)
		}

		return out, nil
	})
}

func TestRevalueEmitsAdjustment(t *testing.T) {
	t.Parallel()

	sink := NewCollector()
	stage := NewRevalue(sink, marketValuator(), false)

	feed(t, stage,
		newEntry("2024-01-15", "Buy", post("Assets:Broker", amt(2, "AAPL"))),
		newEntry("2024-02-15", "Buy more", post("Assets:Broker", amt(1, "AAPL"))),
	)

	// Original purchase, then the +10 USD revaluation (2 AAPL moving
	// from 10 to 15), then the second purchase.
	require.Len(t, sink.Transactions, 3)

	assert.Equal(t, "Buy", sink.Transactions[0].Payee())
	assert.False(t, sink.Transactions[0].Revalued)

	adjustment := sink.Transactions[1]
	assert.True(t, adjustment.Revalued)
	assert.Equal(t, RevaluedAccount, adjustment.Account)
	assert.Equal(t, RevaluedPayee, adjustment.Payee())
	assert.Equal(t, "USD", adjustment.Amount.Commodity)
	assert.True(t, adjustment.Amount.Quantity.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, day("2024-02-15"), adjustment.Date())

	assert.Equal(t, "Buy more", sink.Transactions[2].Payee())
}

func TestRevalueNoAdjustmentWhenValueUnchanged(t *testing.T) {
	t.Parallel()

	sink := NewCollector()
	stage := NewRevalue(sink, marketValuator(), false)

	// Both transactions fall in the same price regime.
	feed(t, stage,
		newEntry("2024-01-10", "Buy", post("Assets:Broker", amt(2, "AAPL"))),
		newEntry("2024-01-20", "Buy more", post("Assets:Broker", amt(1, "AAPL"))),
	)

	require.Len(t, sink.Transactions, 2)
	for _, tx := range sink.Transactions {
		assert.False(t, tx.Revalued)
	}
}

func TestRevalueOnlyMode(t *testing.T) {
	t.Parallel()

	sink := NewCollector()
	stage := NewRevalue(sink, marketValuator(), true)

	feed(t, stage,
		newEntry("2024-01-15", "Buy", post("Assets:Broker", amt(2, "AAPL"))),
		newEntry("2024-02-15", "Buy more", post("Assets:Broker", amt(1, "AAPL"))),
	)

	require.Len(t, sink.Transactions, 1, "only the adjustment passes")
	assert.True(t, sink.Transactions[0].Revalued)
	assert.Equal(t, 1, sink.Flushes)
}
