package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// IndusInd ships two extractable layouts. Format 1 is a flat table with
// withdrawal, deposit and balance columns; format 3 wraps rows into blocks
// under a "Date Type Description Debit Credit Balance" header.
var (
	indusindFormat1Descriptor = Descriptor{Bank: "IndusInd", Variant: "format1", Parse: parseIndusindFormat1}
	indusindFormat3Descriptor = Descriptor{Bank: "IndusInd", Variant: "format3", Parse: parseIndusindFormat3}
)

var indusindStart = regexp.MustCompile(`^(\d{2}\s\w{3}\s\d{4})`)

func parseIndusindFormat1(text string) Result {
	assembler := lineAssembler{
		start: indusindStart,
		drop:  []string{"Date Particulars Chq No/Ref No", "Transaction History", "Account Summary"},
	}

	var result Result
	for _, line := range assembler.assemble(text) {
		if !indusindStart.MatchString(line) {
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
		deposit, _ := moneyutils.ParseAmount(parts[len(parts)-2])
		withdrawal, _ := moneyutils.ParseAmount(parts[len(parts)-3])
		narration := collapseSpaces(strings.Join(parts[3:len(parts)-3], " "))
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

func parseIndusindFormat3(text string) Result {
	assembler := blockAssembler{
		start:  indusindStart,
		skip:   []string{"Page ", "This is a computer generated statement"},
		header: "Date Type Description Debit Credit Balance",
	}

	var result Result
	for _, block := range assembler.assemble(text) {
		full := joinBlock(block)
		dm := indusindStart.FindStringSubmatchIndex(full)
		if dm == nil {
			result.skip()
			continue
		}
		mm := moneyTripleEnd.FindStringSubmatchIndex(full)
		if mm == nil {
			result.skip()
			continue
		}
		date, ok := dateutils.Parse(full[dm[2]:dm[3]], dateutils.LayoutSpaceMonth)
		if !ok {
			result.skip()
			continue
		}
		withdrawal, _ := moneyutils.ParseAmount(full[mm[2]:mm[3]])
		deposit, _ := moneyutils.ParseAmount(full[mm[4]:mm[5]])
		balance, _ := moneyutils.ParseAmount(full[mm[6]:mm[7]])
		narration := collapseSpaces(full[dm[1]:mm[0]])
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
