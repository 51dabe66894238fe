package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// IDFC First: debit and credit columns precede the balance; the narration
// boundary is found by walking back from the money columns to the first
// non-numeric token.
var idfcFirstDescriptor = Descriptor{Bank: "IDFC First", Variant: "default", Parse: parseIDFCFirst}

var idfcStart = regexp.MustCompile(`^\d{2}-\w{3}-\d{4}`)

func parseIDFCFirst(text string) Result {
	assembler := lineAssembler{
		start:  idfcStart,
		drop:   []string{"Transaction Date Value Date", "Opening Balance"},
		noJoin: []string{"REGISTERED OFFICE:"},
	}

	var result Result
	for _, line := range assembler.assemble(text) {
		if !idfcStart.MatchString(line) {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 5 {
			continue
		}
		date, ok := dateutils.Parse(parts[0], dateutils.LayoutDashMonth)
		if !ok {
			result.skip()
			continue
		}
		balance, _ := moneyutils.ParseAmount(parts[len(parts)-1])
		credit, _ := moneyutils.ParseAmount(parts[len(parts)-2])
		debit, _ := moneyutils.ParseAmount(parts[len(parts)-3])
		end := -1
		for i := len(parts) - 3; i >= 2; i-- {
			if !isNumericToken(parts[i]) {
				end = i + 1
				break
			}
		}
		var narration string
		if end != -1 {
			narration = collapseSpaces(strings.Join(parts[2:end], " "))
		} else {
			narration = collapseSpaces(strings.Join(parts[2:len(parts)-3], " "))
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
