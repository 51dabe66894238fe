package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// Equitas Small Finance: dash-month dates, dual columns, INR-prefixed money.
var equitasDescriptor = Descriptor{Bank: "Equitas", Variant: "default", Parse: parseEquitas}

var equitasStart = regexp.MustCompile(`^\d{2}-\w{3}-\d{4}`)

func parseEquitas(text string) Result {
	assembler := lineAssembler{
		start: equitasStart,
		drop:  []string{"Page ", "Date Reference No."},
	}

	var result Result
	for _, line := range assembler.assemble(text) {
		if !equitasStart.MatchString(line) {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 4 {
			continue
		}
		date, ok := dateutils.Parse(parts[0], dateutils.LayoutDashMonth)
		if !ok {
			result.skip()
			continue
		}
		balance, _ := moneyutils.ParseAmount(parts[len(parts)-1])
		deposit, _ := moneyutils.ParseAmount(parts[len(parts)-2])
		withdrawal, _ := moneyutils.ParseAmount(parts[len(parts)-3])
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
