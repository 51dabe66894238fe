package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// Punjab & Sind: dual columns with rupee-prefixed money tokens and a
// reference number between narration and the withdrawal column.
var punjabSindDescriptor = Descriptor{Bank: "Punjab & Sind", Variant: "default", Parse: parsePunjabSind}

var punjabSindStart = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`)

func parsePunjabSind(text string) Result {
	assembler := lineAssembler{
		start:  punjabSindStart,
		noJoin: []string{"Remarks Ref. No."},
	}

	var result Result
	for _, line := range assembler.assemble(text) {
		if !punjabSindStart.MatchString(line) {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 5 {
			continue
		}
		date, ok := dateutils.Parse(parts[0], dateutils.LayoutSlash)
		if !ok {
			result.skip()
			continue
		}
		balance, _ := moneyutils.ParseAmount(parts[len(parts)-1])
		deposit, _ := moneyutils.ParseAmount(parts[len(parts)-2])
		withdrawal, _ := moneyutils.ParseAmount(parts[len(parts)-3])
		narration := collapseSpaces(strings.Join(parts[1:len(parts)-4], " "))
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
