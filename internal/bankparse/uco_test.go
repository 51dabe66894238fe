package bankparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ucoStatement = `UCO BANK
Date Particulars Withdrawals Deposits Balance Chq. No.
01-04-2024 NEFT INWARD ACME 2,000.00 12,000.00
02-04-2024 CWDR ATM CASH 1,000.00 11,000.00
03-04-2024 CHQ CLEARING 500.00 750.00 11,250.00
`

func TestParseUCO(t *testing.T) {
	result := parseUCO(ucoStatement)
	require.Len(t, result.Transactions, 3)
	assert.Equal(t, 0, result.Skipped)

	// Two money tokens and no withdrawal keyword: deposit.
	first := result.Transactions[0]
	assert.Equal(t, "NEFT INWARD ACME", first.Narration)
	assert.True(t, first.Deposit.Equal(d("2000")))
	assert.True(t, first.Withdrawal.IsZero())
	assert.True(t, first.Balance.Equal(d("12000")))

	// Two money tokens and a cash-withdrawal keyword: withdrawal.
	second := result.Transactions[1]
	assert.True(t, second.Withdrawal.Equal(d("1000")))
	assert.True(t, second.Deposit.IsZero())

	// Three money tokens: both columns present positionally.
	third := result.Transactions[2]
	assert.Equal(t, "CHQ CLEARING", third.Narration)
	assert.True(t, third.Withdrawal.Equal(d("500")))
	assert.True(t, third.Deposit.Equal(d("750")))
	assert.True(t, third.Balance.Equal(d("11250")))
}

func TestParseUCO_NoHeaderYieldsEmpty(t *testing.T) {
	result := parseUCO("01-04-2024 ROW WITHOUT TABLE HEADER 100.00 1,000.00\n")
	assert.True(t, result.Empty())
}

func TestParseUCO_MalformedBlockCounted(t *testing.T) {
	text := "Date Particulars Withdrawals Deposits Balance Chq. No.\n" +
		"01-04-2024 NARRATION ONLY NO MONEY\n"
	result := parseUCO(text)
	assert.True(t, result.Empty())
	assert.Equal(t, 1, result.Skipped)
}
