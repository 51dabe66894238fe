package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_MarshalCSV(t *testing.T) {
	date := NewDate(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC))
	out, err := date.MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "01/04/2024", out)

	var zero Date
	out, err = zero.MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestDate_UnmarshalCSV(t *testing.T) {
	var date Date
	require.NoError(t, date.UnmarshalCSV("01/04/2024"))
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), date.Time)

	require.NoError(t, date.UnmarshalCSV(""))
	assert.True(t, date.IsZero())

	assert.Error(t, date.UnmarshalCSV("2024-04-01"))
}

func TestSortByDate(t *testing.T) {
	day := func(d int) Date {
		return NewDate(time.Date(2024, time.April, d, 0, 0, 0, 0, time.UTC))
	}
	transactions := []Transaction{
		{Date: day(3), Narration: "third"},
		{Date: day(1), Narration: "first"},
		{Date: day(3), Narration: "fourth", Deposit: decimal.NewFromInt(1)},
		{Date: day(2), Narration: "second"},
	}

	SortByDate(transactions)

	var order []string
	for _, tx := range transactions {
		order = append(order, tx.Narration)
	}
	// Stable: the two day-3 rows keep their original relative order.
	assert.Equal(t, []string{"first", "second", "third", "fourth"}, order)
}
