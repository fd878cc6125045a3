package filters

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Beachwood619/ledger/journal"
)

// Shared helpers for the stage tests.

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}

	return t
}

func usd(quantity int64) journal.Amount {
	return journal.NewAmount(decimal.NewFromInt(quantity), "USD")
}

func amt(quantity int64, commodity string) journal.Amount {
	return journal.NewAmount(decimal.NewFromInt(quantity), commodity)
}

func post(account string, amount journal.Amount) *journal.Transaction {
	return &journal.Transaction{Account: account, Amount: amount}
}

func newEntry(date, payee string, txs ...*journal.Transaction) *journal.Entry {
	entry := &journal.Entry{Date: day(date), Payee: payee}
	for _, tx := range txs {
		entry.AddTransaction(tx)
	}

	return entry
}

// feed pushes every transaction of the given entries through the
// handler, in entry order, then flushes once.
func feed(t *testing.T, h Handler, entries ...*journal.Entry) {
	t.Helper()

	for _, entry := range entries {
		for _, tx := range entry.Transactions {
			require.NoError(t, h.Handle(tx))
		}
	}

	require.NoError(t, h.Flush())
}

// sums folds the collector's output per commodity, for conservation
// checks.
func sums(c *Collector) journal.Balance {
	out := journal.NewBalance()
	for _, tx := range c.Transactions {
		out.AddAmount(tx.Amount)
	}

	return out
}
