package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// Central Bank of India: post date and transaction date lead each row; the
// transaction date (second token) is the one reported.
var centralBankDescriptor = Descriptor{Bank: "Central Bank of India", Variant: "default", Parse: parseCentralBank}

var centralBankStart = regexp.MustCompile(`^\d{2}/\d{2}/\d{2}`)

func parseCentralBank(text string) Result {
	assembler := lineAssembler{
		start: centralBankStart,
		drop:  []string{"Page /", "POST Date TXN Date"},
	}

	var result Result
	for _, line := range assembler.assemble(text) {
		if !centralBankStart.MatchString(line) {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 5 {
			continue
		}
		date, ok := dateutils.Parse(parts[1], dateutils.LayoutSlashShortYear)
		if !ok {
			result.skip()
			continue
		}
		balance, _ := moneyutils.ParseAmount(parts[len(parts)-1])
		credit, _ := moneyutils.ParseAmount(parts[len(parts)-2])
		debit, _ := moneyutils.ParseAmount(parts[len(parts)-3])
		narration := collapseSpaces(strings.Join(parts[2:len(parts)-3], " "))
		result.add(models.Transaction{
			Date:       models.NewDate(date),
			Narration:  narration,
			Withdrawal: debit,
			Deposit:    credit,
			Balance:    balance,
		})
	}
	return result
}
