package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// Dhanlaxmi: blocks under a "DATE VALUE DATE DESCRIPTION" header, ending in
// withdrawal, deposit and balance. A cheque number may trail the narration
// and is stripped.
var dhanlaxmiDescriptor = Descriptor{Bank: "Dhanlaxmi", Variant: "default", Parse: parseDhanlaxmi}

var (
	dhanlaxmiStart  = regexp.MustCompile(`^(\d{2}-\w{3}-\d{4})`)
	dhanlaxmiCheque = regexp.MustCompile(`\s+([.\d]+)$`)
)

func parseDhanlaxmi(text string) Result {
	assembler := blockAssembler{
		start:  dhanlaxmiStart,
		skip:   []string{"Page No:", "STATEMENT OF ACCOUNT"},
		header: "DATE VALUE DATE DESCRIPTION",
	}

	var result Result
	for _, block := range assembler.assemble(text) {
		full := joinBlock(block)
		dm := dhanlaxmiStart.FindStringSubmatchIndex(full)
		if dm == nil {
			result.skip()
			continue
		}
		mm := moneyTripleEnd.FindStringSubmatchIndex(full)
		if mm == nil {
			result.skip()
			continue
		}
		parts := strings.Fields(full)
		if len(parts) < 6 {
			result.skip()
			continue
		}
		date, ok := dateutils.Parse(full[dm[2]:dm[3]], dateutils.LayoutDashMonth)
		if !ok {
			result.skip()
			continue
		}
		withdrawal, _ := moneyutils.ParseAmount(full[mm[2]:mm[3]])
		deposit, _ := moneyutils.ParseAmount(full[mm[4]:mm[5]])
		balance, _ := moneyutils.ParseAmount(full[mm[6]:mm[7]])

		// Narration sits between the value date and the money columns.
		valueDate := parts[1]
		narrationStart := strings.Index(full, valueDate) + len(valueDate)
		if narrationStart > mm[0] {
			result.skip()
			continue
		}
		narration := strings.TrimSpace(full[narrationStart:mm[0]])
		if cm := dhanlaxmiCheque.FindStringIndex(narration); cm != nil {
			narration = strings.TrimSpace(narration[:cm[0]])
		}
		if strings.Contains(narration, "B/F ...") {
			narration = "B/F"
		}
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
