package bankparse

import (
	"regexp"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// HDFC prints one amount column followed by the running balance, so
// withdrawal vs deposit is inferred from the balance delta.
var hdfcDescriptor = Descriptor{Bank: "HDFC", Variant: "default", Parse: parseHDFC}

var (
	hdfcStart = regexp.MustCompile(`^\d{2}/\d{2}/\d{2}`)
	hdfcRow   = regexp.MustCompile(`^(\d{2}/\d{2}/\d{2})\s+(.*?)\s+([\d,.]+)\s+([\d,.]+)($|\s)`)
)

func parseHDFC(text string) Result {
	assembler := lineAssembler{
		start:  hdfcStart,
		noJoin: []string{"Page No .:", "Statement Summary"},
	}

	var result Result
	var tracker balanceTracker
	for _, line := range assembler.assemble(text) {
		if containsAny(line, []string{"Date Narration Chq./Ref.No."}) {
			continue
		}
		m := hdfcRow.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		date, ok := dateutils.Parse(m[1], dateutils.LayoutSlashShortYear)
		if !ok {
			result.skip()
			continue
		}
		narration := collapseSpaces(m[2])
		amount, _ := moneyutils.ParseAmount(m[3])
		balance, ok := moneyutils.ParseBalance(m[4])
		if !ok {
			result.skip()
			continue
		}
		withdrawal, deposit := tracker.infer(amount, balance, func() bool {
			return narrationContainsAny(narration, "CR", "CREDIT")
		})
		result.add(models.Transaction{
			Date:       models.NewDate(date),
			Narration:  narration,
			Withdrawal: withdrawal,
			Deposit:    deposit,
			Balance:    balance,
		})
	}
	return result
}
