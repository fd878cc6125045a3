package filters

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// DayOfWeek
// ---------------------------------------------------------------------------

func TestDayOfWeekBuckets(t *testing.T) {
	t.Parallel()

	sink := NewCollector()
	stage := NewDayOfWeek(sink)

	// 2024-01-01 was a Monday, 2024-01-07 a Sunday.
	feed(t, stage,
		newEntry("2024-01-01", "A", post("Expenses", usd(1))),
		newEntry("2024-01-08", "B", post("Expenses", usd(2))),
		newEntry("2024-01-07", "C", post("Expenses", usd(10))),
	)

	require.Len(t, sink.Transactions, 2)

	// Emission runs Sunday through Saturday.
	sunday := sink.Transactions[0]
	assert.Equal(t, "Sunday", sunday.Payee())
	assert.True(t, sunday.Amount.Quantity.Equal(decimal.NewFromInt(10)))

	monday := sink.Transactions[1]
	assert.Equal(t, "Monday", monday.Payee())
	assert.True(t, monday.Amount.Quantity.Equal(decimal.NewFromInt(3)), "both Mondays subtotal together")
}

// ---------------------------------------------------------------------------
// ByPayee
// ---------------------------------------------------------------------------

func TestByPayeeBucketsFirstSeenOrder(t *testing.T) {
	t.Parallel()

	sink := NewCollector()
	stage := NewByPayee(sink)

	feed(t, stage,
		newEntry("2024-01-01", "Grocer", post("Expenses:Food", usd(10))),
		newEntry("2024-01-02", "Landlord", post("Expenses:Rent", usd(800))),
		newEntry("2024-01-15", "Grocer", post("Expenses:Food", usd(12))),
	)

	require.Len(t, sink.Transactions, 2)

	assert.Equal(t, "Grocer", sink.Transactions[0].Payee())
	assert.True(t, sink.Transactions[0].Amount.Quantity.Equal(decimal.NewFromInt(22)))

	assert.Equal(t, "Landlord", sink.Transactions[1].Payee())
	assert.True(t, sink.Transactions[1].Amount.Quantity.Equal(decimal.NewFromInt(800)))
}

func TestByPayeeConservation(t *testing.T) {
	t.Parallel()

	sink := NewCollector()
	stage := NewByPayee(sink)

	feed(t, stage,
		newEntry("2024-01-01", "A", post("Expenses", usd(5))),
		newEntry("2024-01-02", "B", post("Expenses", usd(-2))),
		newEntry("2024-01-03", "A", post("Expenses", usd(9))),
	)

	assert.True(t, sums(sink).Quantity("USD").Equal(decimal.NewFromInt(12)))
}
