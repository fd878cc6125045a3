package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelatedForwardsSiblings(t *testing.T) {
	t.Parallel()

	entry := newEntry("2024-01-01", "Shop",
		post("Expenses:Food", usd(10)),
		post("Assets:Cash", usd(-10)),
	)

	sink := NewCollector()
	stage := NewRelated(sink, false)

	// Only the expense side reaches the stage, as after a filter.
	require.NoError(t, stage.Handle(entry.Transactions[0]))
	require.NoError(t, stage.Flush())

	require.Len(t, sink.Transactions, 1, "the other side of the entry passes, not the received side")
	assert.Equal(t, "Assets:Cash", sink.Transactions[0].Account)
}

func TestRelatedAllForwardsWholeEntryOnce(t *testing.T) {
	t.Parallel()

	entry := newEntry("2024-01-01", "Shop",
		post("Expenses:Food", usd(6)),
		post("Expenses:Household", usd(4)),
		post("Assets:Cash", usd(-10)),
	)

	sink := NewCollector()
	stage := NewRelated(sink, true)

	// Two members match upstream; the entry still passes exactly once.
	require.NoError(t, stage.Handle(entry.Transactions[0]))
	require.NoError(t, stage.Handle(entry.Transactions[1]))
	require.NoError(t, stage.Flush())

	require.Len(t, sink.Transactions, 3)

	accounts := make([]string, 0, 3)
	for _, tx := range sink.Transactions {
		accounts = append(accounts, tx.Account)
	}

	assert.Equal(t, []string{"Expenses:Food", "Expenses:Household", "Assets:Cash"}, accounts)
}

func TestRelatedNeverDuplicates(t *testing.T) {
	t.Parallel()

	entry := newEntry("2024-01-01", "Shop",
		post("Expenses:Food", usd(10)),
		post("Assets:Cash", usd(-10)),
	)

	sink := NewCollector()
	stage := NewRelated(sink, false)

	// Both sides match upstream; each sibling is forwarded only once.
	require.NoError(t, stage.Handle(entry.Transactions[0]))
	require.NoError(t, stage.Handle(entry.Transactions[1]))
	require.NoError(t, stage.Flush())

	assert.Len(t, sink.Transactions, 2)
}
