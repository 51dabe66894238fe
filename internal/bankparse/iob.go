package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/extractor"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// Indian Overseas: rows may wrap, but a row whose previous line already ends
// in a balance must not absorb the next line. The narration ends either at a
// three-letter transaction code or just before the cheque-number column.
var indianOverseasDescriptor = Descriptor{Bank: "Indian Overseas", Variant: "default", Parse: parseIndianOverseas}

var iobStart = regexp.MustCompile(`^\d{2}-\w{3}-\d{4}`)

func parseIndianOverseas(text string) Result {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if strings.Contains(line, "DATE CHQ NO NARRATION") {
			continue
		}
		if !iobStart.MatchString(line) && len(lines) > 0 {
			if strings.Contains(line, extractor.PageBreak) {
				continue
			}
			prev := strings.Fields(lines[len(lines)-1])
			if len(prev) > 3 && isNumericToken(prev[len(prev)-1]) {
				lines = append(lines, line)
			} else {
				lines[len(lines)-1] += " " + line
			}
		} else {
			lines = append(lines, line)
		}
	}

	var result Result
	for _, line := range lines {
		if !iobStart.MatchString(line) {
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
		end := len(parts) - 4
		for i := 3; i < len(parts)-3; i++ {
			if isTransactionCode(parts[i]) {
				end = i
				break
			}
		}
		var narration string
		if end > 2 {
			if allDigits(parts[1]) && len(parts[1]) < 7 {
				narration = collapseSpaces(strings.Join(parts[2:end], " "))
			} else {
				narration = collapseSpaces(strings.Join(parts[1:end], " "))
			}
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

// isTransactionCode matches the three-letter uppercase codes (TFR, CLG, ...)
// that separate narration from the cheque column.
func isTransactionCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
