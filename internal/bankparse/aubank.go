package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// AU Small Finance Bank: dual debit/credit columns, value date repeated
// mid-row, textual month dates.
var auBankDescriptor = Descriptor{Bank: "AU Small Finance", Variant: "default", Parse: parseAUBank}

var auBankStart = regexp.MustCompile(`^\d{2}\s\w{3}\s\d{4}`)

func parseAUBank(text string) Result {
	assembler := lineAssembler{
		start:  auBankStart,
		drop:   []string{"Customer ID", "Account Number", "Statement Period"},
		noJoin: []string{"Description/Narration"},
	}

	var result Result
	for _, line := range assembler.assemble(text) {
		if !auBankStart.MatchString(line) {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 6 {
			continue
		}
		date, ok := dateutils.Parse(strings.Join(parts[0:3], " "), dateutils.LayoutSpaceMonth)
		if !ok {
			result.skip()
			continue
		}
		balance, _ := moneyutils.ParseAmount(parts[len(parts)-1])
		credit, _ := moneyutils.ParseAmount(parts[len(parts)-2])
		debit, _ := moneyutils.ParseAmount(parts[len(parts)-3])
		// Tokens 3..5 repeat the value date; narration starts after them.
		narration := ""
		if len(parts) > 9 {
			narration = collapseSpaces(strings.Join(parts[6:len(parts)-3], " "))
		}
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
