package bankparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		text     string
		bank     string
		ok       bool
	}{
		{
			name:     "hdfc by filename",
			filename: "HDFC statement march.pdf",
			bank:     "HDFC",
			ok:       true,
		},
		{
			name:     "central bank by text fingerprint",
			filename: "stmt.pdf",
			text:     "CENTRAL BANK OF INDIA\nAccount statement",
			bank:     "Central Bank of India",
			ok:       true,
		},
		{
			name:     "central bank wins over bank of india header",
			filename: "stmt.pdf",
			text:     "CENTRAL BANK OF INDIA\nSrNo Date Remarks Amount\n",
			bank:     "Central Bank of India",
			ok:       true,
		},
		{
			name:     "bank of india by column header",
			filename: "stmt.pdf",
			text:     "SrNo Date Remarks Amount Balance\n",
			bank:     "Bank of India",
			ok:       true,
		},
		{
			name:     "kotak by ifsc code",
			filename: "stmt.pdf",
			text:     "IFSC: KKBK0000958\n",
			bank:     "Kotak",
			ok:       true,
		},
		{
			name:     "sbi by ifsc code",
			filename: "stmt.pdf",
			text:     "IFS Code: SBIN0001234\n",
			bank:     "SBI",
			ok:       true,
		},
		{
			name:     "axis format1 by column header",
			filename: "AXIS statement.pdf",
			text:     "S.NO Transaction Date CHQNO\n",
			bank:     "Axis",
			ok:       true,
		},
		{
			name:     "saraswat recognized but unsupported",
			filename: "SARASWAT BANK.pdf",
			bank:     "Saraswat",
			ok:       false,
		},
		{
			name:     "unknown bank",
			filename: "mystery.pdf",
			text:     "nothing identifiable here",
			bank:     "",
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parse, bank, ok := Route(tt.filename, tt.text)
			assert.Equal(t, tt.bank, bank)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.NotNil(t, parse)
			} else {
				assert.Nil(t, parse)
			}
		})
	}
}

func TestRoute_SaraswatFingerprintBeyondFirstPage(t *testing.T) {
	// The SRCB code sits past the standard fingerprint window.
	text := strings.Repeat("x", 2000) + " IFSC SRCB0000123"
	parse, bank, ok := Route("stmt.pdf", text)
	assert.Nil(t, parse)
	assert.Equal(t, "Saraswat", bank)
	assert.False(t, ok)
}

func TestRoute_FingerprintWindowIsBounded(t *testing.T) {
	// An IFSC code past the fingerprint window must not route.
	text := strings.Repeat("x", 3000) + " IFSC KKBK0000958"
	_, bank, ok := Route("stmt.pdf", text)
	assert.False(t, ok)
	assert.Equal(t, "", bank)
}

func TestParse_MisleadingFilenameYieldsEmptyResult(t *testing.T) {
	// Routing is by name, parsing is by layout: a file named after a bank but
	// holding unrelated text produces zero rows, not an error.
	result, bank := Parse("HDFC statement.pdf", "no transaction table in here at all")
	assert.Equal(t, "HDFC", bank)
	assert.True(t, result.Empty())
	assert.Equal(t, 0, result.Skipped)
}

func TestParse_AxisFallbackChain(t *testing.T) {
	// No format fingerprint in the text: format 1 runs first, comes back
	// empty, and format 2 salvages the rows.
	text := "OPENING BALANCE 10,000.00\n" +
		"01-04-2024 UPI/VENDOR PAYMENT 500.00 9,500.00\n" +
		"02-04-2024 NEFT/CLIENT 2,000.00 11,500.00\n"
	result, bank := Parse("AXIS statement.pdf", text)
	assert.Equal(t, "Axis", bank)
	require.Len(t, result.Transactions, 2)
	assert.True(t, result.Transactions[0].Withdrawal.Equal(d("500")))
	assert.True(t, result.Transactions[1].Deposit.Equal(d("2000")))
}

func TestDescriptors(t *testing.T) {
	descriptors := Descriptors()
	require.Len(t, descriptors, 26)

	seen := make(map[string]struct{})
	for _, desc := range descriptors {
		assert.NotEmpty(t, desc.Bank)
		assert.NotEmpty(t, desc.Variant)
		assert.NotNil(t, desc.Parse)
		key := desc.Bank + "/" + desc.Variant
		_, dup := seen[key]
		assert.False(t, dup, key)
		seen[key] = struct{}{}
	}
}
