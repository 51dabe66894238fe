package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// Bank of Baroda ships two layouts. Format 1 leads each row with the balance
// fused to the cheque number; format 2 is a conventional
// date/narration/withdrawal/deposit/balance table. The router tries format 1
// first and falls back to format 2 on an empty result.
var (
	barodaFormat1Descriptor = Descriptor{Bank: "Bank of Baroda", Variant: "format1", Parse: parseBarodaFormat1}
	barodaFormat2Descriptor = Descriptor{Bank: "Bank of Baroda", Variant: "format2", Parse: parseBarodaFormat2}
)

var (
	barodaFormat1Start  = regexp.MustCompile(`^([\d,.-]+?)(\d+)\s+(\d{2}-\d{2}-\d{4})`)
	barodaFormat2Start  = regexp.MustCompile(`^(\d{2}-\d{2}-\d{4})`)
	barodaFormat2Header = regexp.MustCompile(`DATE\s+PARTICULARS\s+CHQ\.NO\.\s+WITHDRAWALS\s+DEPOSITS\s+BALANCE`)
	barodaLeadingChqNo  = regexp.MustCompile(`^\d+\s+`)
	moneyTripleEnd      = regexp.MustCompile(`([\d,.-]+)\s+([\d,.-]+)\s+([\d,.]+)$`)
)

func parseBarodaFormat1(text string) Result {
	assembler := lineAssembler{
		start:  barodaFormat1Start,
		drop:   []string{"Opening Balance"},
		noJoin: []string{"Description Cheque"},
	}

	var result Result
	for _, line := range assembler.assemble(text) {
		if !barodaFormat1Start.MatchString(line) {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 6 {
			continue
		}
		date, ok := dateutils.Parse(parts[2], dateutils.LayoutDash)
		if !ok {
			result.skip()
			continue
		}
		balance, _ := moneyutils.ParseAmount(parts[0])
		credit, _ := moneyutils.ParseAmount(parts[len(parts)-1])
		debit, _ := moneyutils.ParseAmount(parts[len(parts)-2])
		narration := collapseSpaces(strings.Join(parts[4:len(parts)-2], " "))
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

func parseBarodaFormat2(text string) Result {
	// Joining is conditional here: a continuation line is only appended when
	// the previous line does not already end in the three money columns.
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || barodaFormat2Header.MatchString(line) || strings.HasPrefix(line, "---") {
			continue
		}
		if containsAny(line, []string{"IFSC CODE:", "A/C Name", "Statement of account"}) {
			continue
		}
		if !barodaFormat2Start.MatchString(line) && len(lines) > 0 {
			prev := lines[len(lines)-1]
			tail := prev
			if len(tail) > 50 {
				tail = tail[len(tail)-50:]
			}
			if moneyTripleEnd.MatchString(tail) {
				lines = append(lines, line)
			} else {
				lines[len(lines)-1] = prev + " " + line
			}
		} else {
			lines = append(lines, line)
		}
	}

	var result Result
	for _, line := range lines {
		dm := barodaFormat2Start.FindStringSubmatchIndex(line)
		if dm == nil {
			continue
		}
		mm := moneyTripleEnd.FindStringSubmatchIndex(line)
		if mm == nil {
			result.skip()
			continue
		}
		date, ok := dateutils.Parse(line[dm[2]:dm[3]], dateutils.LayoutDash)
		if !ok {
			result.skip()
			continue
		}
		withdrawal, _ := moneyutils.ParseAmount(line[mm[2]:mm[3]])
		deposit, _ := moneyutils.ParseAmount(line[mm[4]:mm[5]])
		balance, _ := moneyutils.ParseAmount(line[mm[6]:mm[7]])
		narration := strings.TrimSpace(line[dm[1]:mm[0]])
		narration = collapseSpaces(barodaLeadingChqNo.ReplaceAllString(narration, ""))
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
