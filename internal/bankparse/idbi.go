package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// IDBI format 2: serial-numbered rows with an explicit Cr/Dr marker trailing
// the amount. The statement prints no running balance, so Balance stays zero.
var idbiFormat2Descriptor = Descriptor{Bank: "IDBI", Variant: "format2", Parse: parseIDBIFormat2}

var idbiStart = regexp.MustCompile(`^\d+\.\s+\d{2}-\w{3}-\d{2}`)

func parseIDBIFormat2(text string) Result {
	assembler := lineAssembler{
		start: idbiStart,
		drop:  []string{"Sr Date Description"},
	}

	var result Result
	for _, line := range assembler.assemble(text) {
		if !idbiStart.MatchString(line) {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 4 {
			continue
		}
		date, ok := dateutils.Parse(parts[1], dateutils.LayoutDashMonthShort)
		if !ok {
			result.skip()
			continue
		}
		kind := parts[len(parts)-1]
		amount, _ := moneyutils.ParseAmount(parts[len(parts)-2])
		narration := collapseSpaces(strings.Join(parts[2:len(parts)-2], " "))
		withdrawal, deposit := decimalZeroPair()
		switch kind {
		case "Dr":
			withdrawal = amount
		case "Cr":
			deposit = amount
		}
		result.add(models.Transaction{
			Date:       models.NewDate(date),
			Narration:  narration,
			Withdrawal: withdrawal,
			Deposit:    deposit,
		})
	}
	return result
}
