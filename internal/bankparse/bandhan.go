package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// Bandhan marks polarity with an explicit Dr/Cr token between the amount and
// the balance, and prints dates as "April5, 2024" (month and day fuse during
// text extraction).
var bandhanDescriptor = Descriptor{Bank: "Bandhan", Variant: "default", Parse: parseBandhan}

var bandhanStart = regexp.MustCompile(`^[A-Za-z]+\s?\d{1,2},\s\d{4}`)

func parseBandhan(text string) Result {
	assembler := lineAssembler{
		start:  bandhanStart,
		noJoin: []string{"Amount Dr / Cr"},
		stop:   []string{"Statement Summary", "Disclaimer:"},
	}

	var result Result
	for _, line := range assembler.assemble(text) {
		if !bandhanStart.MatchString(line) {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 5 {
			continue
		}
		typeIndex := lastIndexOf(parts, "Cr")
		if typeIndex == -1 {
			typeIndex = lastIndexOf(parts, "Dr")
		}
		if typeIndex < 2 || typeIndex+1 >= len(parts) {
			result.skip()
			continue
		}
		date, ok := dateutils.Parse(parts[0]+parts[1], dateutils.LayoutLongMonth)
		if !ok {
			result.skip()
			continue
		}
		balance, ok := moneyutils.ParseBalance(parts[typeIndex+1])
		if !ok {
			result.skip()
			continue
		}
		amount, _ := moneyutils.ParseAmount(parts[typeIndex-1])
		narration := collapseSpaces(strings.Join(parts[2:typeIndex-1], " "))
		withdrawal, deposit := decimalZeroPair()
		if parts[typeIndex] == "Dr" {
			withdrawal = amount
		} else {
			deposit = amount
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
