package bankparse

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// balanceTracker is the fold state for debit/credit inference in formats that
// report a single amount column. It carries the last extracted closing
// balance forward through the transaction sequence; the balance delta decides
// whether an amount is a withdrawal or a deposit.
type balanceTracker struct {
	last decimal.Decimal
	seen bool
}

// seed installs an opening balance read from the statement header, so the
// first transaction can be inferred from the balance delta instead of the
// keyword fallback.
func (t *balanceTracker) seed(balance decimal.Decimal) {
	t.last = balance
	t.seen = true
}

// infer assigns amount to withdrawal or deposit by comparing balance against
// the tracked value within the currency-unit tolerance. A delta inside the
// tolerance yields zero on both sides (a no-op row such as a reversed fee).
// When no prior balance exists, creditHint decides: true means deposit.
//
// The tracker is then updated to the extracted balance, not to last±amount,
// so a bad balance extraction does not compound across rows.
func (t *balanceTracker) infer(amount, balance decimal.Decimal, creditHint func() bool) (withdrawal, deposit decimal.Decimal) {
	withdrawal, deposit = decimal.Zero, decimal.Zero
	if t.seen {
		switch {
		case balance.GreaterThan(t.last.Add(moneyutils.Epsilon)):
			deposit = amount
		case balance.LessThan(t.last.Sub(moneyutils.Epsilon)):
			withdrawal = amount
		}
	} else if creditHint() {
		deposit = amount
	} else {
		withdrawal = amount
	}
	t.last = balance
	t.seen = true
	return withdrawal, deposit
}

// decimalZeroPair is a readability helper for parsers that assign exactly one
// side from an explicit Dr/Cr marker.
func decimalZeroPair() (decimal.Decimal, decimal.Decimal) {
	return decimal.Zero, decimal.Zero
}

// narrationContainsAny is the keyword fallback shared by the bootstrap
// heuristics. The keyword lists are bank specific and deliberately not
// unified; the first row of a statement is a known misclassification risk.
func narrationContainsAny(narration string, keywords ...string) bool {
	upper := strings.ToUpper(narration)
	for _, kw := range keywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	return false
}
