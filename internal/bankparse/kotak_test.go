package bankparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kotakStatement = `1 02 Apr 2024
02 Apr 2024 UPI/JUGANU
UPI-409308686583 -6,000.00 1,13,832.38
2 03 Apr 2024
03 Apr 2024 NEFT/ACME
+68,476.00 1,82,308.38
`

func TestParseKotak(t *testing.T) {
	result := parseKotak(kotakStatement)
	require.Len(t, result.Transactions, 2)
	assert.Equal(t, 0, result.Skipped)

	first := result.Transactions[0]
	assert.Equal(t, time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC), first.Date.Time)
	assert.Equal(t, "UPI/JUGANU UPI-409308686583", first.Narration)
	assert.True(t, first.Withdrawal.Equal(d("6000")))
	assert.True(t, first.Deposit.IsZero())
	assert.True(t, first.Balance.Equal(d("113832.38")))

	second := result.Transactions[1]
	assert.Equal(t, "NEFT/ACME", second.Narration)
	assert.True(t, second.Deposit.Equal(d("68476")))
	assert.True(t, second.Withdrawal.IsZero())
	assert.True(t, second.Balance.Equal(d("182308.38")))
}

func TestParseKotak_UnsignedAmountStaysUnassigned(t *testing.T) {
	// Without a polarity prefix neither side can be chosen; the row is kept
	// with both money columns zero rather than guessed.
	text := "1 02 Apr 2024\n02 Apr 2024 CHEQUE DEPOSIT\n500.00 1,000.00\n"
	result := parseKotak(text)
	require.Len(t, result.Transactions, 1)
	tx := result.Transactions[0]
	assert.True(t, tx.Withdrawal.IsZero())
	assert.True(t, tx.Deposit.IsZero())
	assert.True(t, tx.Balance.Equal(d("1000")))
}

func TestParseKotak_ShortBlockSkipped(t *testing.T) {
	result := parseKotak("1 02 Apr 2024\n")
	assert.True(t, result.Empty())
	assert.Equal(t, 1, result.Skipped)
}
