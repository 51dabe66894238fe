package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// Kotak: each transaction spans a block of lines opened by a serial-and-date
// line. The amount carries an explicit +/- polarity prefix on the last line,
// next to the balance; no delta inference is needed.
var kotakDescriptor = Descriptor{Bank: "Kotak", Variant: "default", Parse: parseKotak}

var (
	// A block opens on a line holding only the serial number and posting date.
	kotakBlockStart = regexp.MustCompile(`^\d+\s+\d{2}\s\w{3}\s\d{4}$`)
	kotakValueDate  = regexp.MustCompile(`^\d{2}\s\w{3}\s\d{4}`)
)

func parseKotak(text string) Result {
	assembler := blockAssembler{start: kotakBlockStart}

	var result Result
	for _, block := range assembler.assemble(text) {
		if len(block) < 2 {
			result.skip()
			continue
		}
		first := strings.Fields(block[0])
		if len(first) < 4 {
			result.skip()
			continue
		}
		date, ok := dateutils.Parse(strings.Join(first[1:4], " "), dateutils.LayoutSpaceMonth)
		if !ok {
			result.skip()
			continue
		}

		last := strings.Fields(block[len(block)-1])
		if len(last) < 2 {
			result.skip()
			continue
		}
		rawAmount := last[len(last)-2]
		amount, _ := moneyutils.ParseAmount(rawAmount)
		balance, _ := moneyutils.ParseAmount(last[len(last)-1])
		withdrawal, deposit := decimalZeroPair()
		switch {
		case strings.HasPrefix(rawAmount, "-"):
			withdrawal = amount
		case strings.HasPrefix(rawAmount, "+"):
			deposit = amount
		}

		// Narration starts after the value date line and runs through the
		// start of the last line, excluding the two money tokens.
		var narrationParts []string
		valueDateIndex := -1
		for i := 1; i < len(block); i++ {
			if kotakValueDate.MatchString(block[i]) {
				valueDateIndex = i
				break
			}
		}
		if valueDateIndex != -1 {
			vparts := strings.Fields(block[valueDateIndex])
			if len(vparts) > 3 {
				narrationParts = append(narrationParts, strings.Join(vparts[3:], " "))
			}
			if valueDateIndex+1 < len(block) {
				narrationParts = append(narrationParts, block[valueDateIndex+1:len(block)-1]...)
			}
		} else {
			narrationParts = append(narrationParts, block[1:len(block)-1]...)
		}
		if len(last) > 2 {
			narrationParts = append(narrationParts, strings.Join(last[:len(last)-2], " "))
		}

		result.add(models.Transaction{
			Date:       models.NewDate(date),
			Narration:  collapseSpaces(strings.Join(narrationParts, " ")),
			Withdrawal: withdrawal,
			Deposit:    deposit,
			Balance:    balance,
		})
	}
	return result
}
