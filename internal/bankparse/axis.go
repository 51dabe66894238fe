package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// Axis ships two incompatible layouts under one brand. Format 1 is a
// serial-numbered table with explicit debit and credit columns; format 2 has
// a single amount column and needs balance inference, with the opening
// balance read from the statement header.
var (
	axisFormat1Descriptor = Descriptor{Bank: "Axis", Variant: "format1", Parse: parseAxisFormat1}
	axisFormat2Descriptor = Descriptor{Bank: "Axis", Variant: "format2", Parse: parseAxisFormat2}
)

var (
	axisFormat1Start = regexp.MustCompile(`^\d+\s+\d{2}/\d{2}/\d{4}`)
	axisFormat2Start = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}`)
	axisPlainNumber  = regexp.MustCompile(`^[\d,.]+$`)
	axisOpeningBal   = regexp.MustCompile(`(?i)OPENING BALANCE\s+([\d,.]+)`)
)

func parseAxisFormat1(text string) Result {
	assembler := lineAssembler{
		start:  axisFormat1Start,
		noJoin: []string{"S.NO Transaction"},
	}

	var result Result
	for _, line := range assembler.assemble(text) {
		if !axisFormat1Start.MatchString(line) {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 6 {
			continue
		}
		date, ok := dateutils.Parse(parts[1], dateutils.LayoutSlash)
		if !ok {
			result.skip()
			continue
		}
		// The balance is the last plain-number token; credit and debit sit
		// immediately before it.
		end := len(parts) - 1
		for end > 3 && !axisPlainNumber.MatchString(parts[end]) {
			end--
		}
		if end <= 3 {
			result.skip()
			continue
		}
		balance, _ := moneyutils.ParseAmount(parts[end])
		credit, _ := moneyutils.ParseAmount(parts[end-1])
		debit, _ := moneyutils.ParseAmount(parts[end-2])
		narration := collapseSpaces(strings.Join(parts[3:end-2], " "))
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

func parseAxisFormat2(text string) Result {
	assembler := lineAssembler{
		start:  axisFormat2Start,
		noJoin: []string{"Tran Date Chq No Particulars"},
	}

	var result Result
	var tracker balanceTracker
	if m := axisOpeningBal.FindStringSubmatch(text); m != nil {
		if opening, ok := moneyutils.ParseBalance(m[1]); ok {
			tracker.seed(opening)
		}
	}

	for _, line := range assembler.assemble(text) {
		if !axisFormat2Start.MatchString(line) {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 3 {
			continue
		}
		date, ok := dateutils.Parse(parts[0], dateutils.LayoutDash)
		if !ok {
			result.skip()
			continue
		}
		balance, ok := moneyutils.ParseBalance(parts[len(parts)-1])
		if !ok {
			result.skip()
			continue
		}
		amount, _ := moneyutils.ParseAmount(parts[len(parts)-2])
		narration := collapseSpaces(strings.Join(parts[1:len(parts)-2], " "))
		// No reliable keyword list exists for this layout; an unanchored
		// first row defaults to withdrawal.
		withdrawal, deposit := tracker.infer(amount, balance, func() bool { return false })
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
