package bankparse

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBalanceTracker_Infer(t *testing.T) {
	var tracker balanceTracker
	tracker.seed(d("1000"))

	// Balance rises: the amount is a deposit.
	w, dep := tracker.infer(d("100"), d("1100"), func() bool { return false })
	assert.True(t, w.IsZero())
	assert.True(t, dep.Equal(d("100")))

	// Balance falls: the amount is a withdrawal.
	w, dep = tracker.infer(d("50"), d("1050"), func() bool { return true })
	assert.True(t, w.Equal(d("50")))
	assert.True(t, dep.IsZero())

	// Balance unchanged within tolerance: both sides stay zero.
	w, dep = tracker.infer(d("25"), d("1050"), func() bool { return true })
	assert.True(t, w.IsZero())
	assert.True(t, dep.IsZero())
}

func TestBalanceTracker_BootstrapUsesCreditHint(t *testing.T) {
	var credit balanceTracker
	w, dep := credit.infer(d("200"), d("5000"), func() bool { return true })
	assert.True(t, w.IsZero())
	assert.True(t, dep.Equal(d("200")))

	var debit balanceTracker
	w, dep = debit.infer(d("200"), d("5000"), func() bool { return false })
	assert.True(t, w.Equal(d("200")))
	assert.True(t, dep.IsZero())
}

func TestBalanceTracker_UpdatesToExtractedBalance(t *testing.T) {
	var tracker balanceTracker
	tracker.seed(d("1000"))

	// The tracker follows the extracted balance, not last±amount, so a row
	// with an inconsistent amount does not skew the next inference.
	tracker.infer(d("999"), d("1100"), func() bool { return false })
	w, dep := tracker.infer(d("100"), d("1200"), func() bool { return false })
	assert.True(t, w.IsZero())
	assert.True(t, dep.Equal(d("100")))
}

func TestNarrationContainsAny(t *testing.T) {
	assert.True(t, narrationContainsAny("neft cr-acme", "CR"))
	assert.True(t, narrationContainsAny("BY TRANSFER 123", "BY TRANSFER", "NEFT "))
	assert.False(t, narrationContainsAny("UPI-PAYMENT", "CWDR", "TRTR"))
	assert.False(t, narrationContainsAny("", "CR"))
}
