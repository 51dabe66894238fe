package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// Canara: deposits column precedes withdrawals, the reverse of most banks.
var canaraDescriptor = Descriptor{Bank: "Canara", Variant: "default", Parse: parseCanara}

var canaraStart = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}`)

func parseCanara(text string) Result {
	assembler := lineAssembler{
		start: canaraStart,
		drop:  []string{"page ", "Date Particulars Deposits", "Opening Balance"},
	}

	var result Result
	for _, line := range assembler.assemble(text) {
		if !canaraStart.MatchString(line) {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 4 {
			continue
		}
		date, ok := dateutils.Parse(parts[0], dateutils.LayoutDash)
		if !ok {
			result.skip()
			continue
		}
		balance, _ := moneyutils.ParseAmount(parts[len(parts)-1])
		withdrawal, _ := moneyutils.ParseAmount(parts[len(parts)-2])
		deposit, _ := moneyutils.ParseAmount(parts[len(parts)-3])
		narration := collapseSpaces(strings.Join(parts[1:len(parts)-3], " "))
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
