package bankparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sbiStatement = `Account Name : MR FIRSTNAME LASTNAME
Balance as on 31 Mar 2024 : 10,000.00
Txn Date Value Date Description Ref No./Cheque No. Debit Credit Balance
1 Apr 2024
1 Apr 2024 TO TRANSFER UPI/DR/123456 500.00 9,500.00
2 Apr 2024
2 Apr 2024 BY TRANSFER NEFT/CR 2,000.00 11,500.00
Page 1 of 1
`

func TestParseSBI(t *testing.T) {
	result := parseSBI(sbiStatement)
	require.Len(t, result.Transactions, 2)
	// The flattened stream splits at every date, so each value date opens a
	// half block with no money columns; those are counted, not parsed.
	assert.Equal(t, 2, result.Skipped)

	first := result.Transactions[0]
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), first.Date.Time)
	assert.Equal(t, "TO TRANSFER UPI/DR/123456", first.Narration)
	// Seeded opening balance 10,000 and closing 9,500: withdrawal.
	assert.True(t, first.Withdrawal.Equal(d("500")))
	assert.True(t, first.Deposit.IsZero())
	assert.True(t, first.Balance.Equal(d("9500")))

	second := result.Transactions[1]
	assert.Equal(t, time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC), second.Date.Time)
	assert.Equal(t, "BY TRANSFER NEFT/CR", second.Narration)
	assert.True(t, second.Deposit.Equal(d("2000")))
	assert.True(t, second.Withdrawal.IsZero())
}

func TestParseSBI_SingleDigitDay(t *testing.T) {
	text := "5 Apr 2024\n5 Apr 2024 TO TRANSFER ATM 1,000.00 4,000.00\n"
	result := parseSBI(text)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC), result.Transactions[0].Date.Time)
}

func TestParseSBI_NoDatesYieldsEmpty(t *testing.T) {
	result := parseSBI("No transaction table in this text.\n")
	assert.True(t, result.Empty())
	assert.Equal(t, 0, result.Skipped)
}
