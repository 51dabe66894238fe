package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/extractor"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// ICICI: dual columns, deposits before withdrawals before balance; brought
// forward rows are discarded.
var iciciDescriptor = Descriptor{Bank: "ICICI", Variant: "default", Parse: parseICICI}

var iciciStart = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}`)

func parseICICI(text string) Result {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if strings.Contains(line, "DATE MODE") || strings.HasPrefix(line, "B/F") {
			continue
		}
		if !iciciStart.MatchString(line) && len(lines) > 0 {
			if !strings.Contains(line, extractor.PageBreak) {
				lines[len(lines)-1] += " " + line
			}
		} else {
			lines = append(lines, line)
		}
	}

	var result Result
	for _, line := range lines {
		if !iciciStart.MatchString(line) {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 4 {
			continue
		}
		date, ok := dateutils.Parse(parts[0], dateutils.LayoutDash)
		if !ok {
			result.skip()
			continue
		}
		balance, _ := moneyutils.ParseAmount(parts[len(parts)-1])
		withdrawal, _ := moneyutils.ParseAmount(parts[len(parts)-2])
		deposit, _ := moneyutils.ParseAmount(parts[len(parts)-3])
		narration := collapseSpaces(strings.Join(parts[1:len(parts)-3], " "))
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
