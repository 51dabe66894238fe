package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// Federal: the balance is the second-to-last token (a Dr/Cr flag trails it),
// and the narration ends at the transfer-type marker.
var federalDescriptor = Descriptor{Bank: "Federal", Variant: "default", Parse: parseFederal}

var federalStart = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`)

func parseFederal(text string) Result {
	assembler := lineAssembler{
		start:  federalStart,
		noJoin: []string{"Particulars Tran"},
	}

	var result Result
	for _, line := range assembler.assemble(text) {
		if !federalStart.MatchString(line) {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 6 {
			continue
		}
		date, ok := dateutils.Parse(parts[0], dateutils.LayoutSlash)
		if !ok {
			result.skip()
			continue
		}
		balance, _ := moneyutils.ParseAmount(parts[len(parts)-2])
		deposit, _ := moneyutils.ParseAmount(parts[len(parts)-3])
		withdrawal, _ := moneyutils.ParseAmount(parts[len(parts)-4])
		// Narration runs from after the value date to the transfer-type
		// marker: either the literal TFR token or the first long reference
		// token.
		end := -1
		for i, part := range parts {
			if part == "TFR" || len(part) > 15 {
				end = i
				break
			}
		}
		var narration string
		if end != -1 && end > 2 {
			narration = collapseSpaces(strings.Join(parts[2:end], " "))
		} else if len(parts) > 8 {
			narration = collapseSpaces(strings.Join(parts[2:len(parts)-6], " "))
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
