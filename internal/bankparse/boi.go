package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// Bank of India: serial-numbered rows with a single amount column and a
// rupee-prefixed balance; polarity comes from balance inference.
var bankOfIndiaDescriptor = Descriptor{Bank: "Bank of India", Variant: "default", Parse: parseBankOfIndia}

var (
	boiStart = regexp.MustCompile(`^\d+\s+\d{2}-\d{2}-\d{4}`)
	boiRow   = regexp.MustCompile(`^\d+\s*(\d{2}-\d{2}-\d{4})\s+(.*?)\s+([\d,.]+)\s+₹\s*([\d,.]+)`)
)

func parseBankOfIndia(text string) Result {
	// Wrapped narrations are rejoined by folding every line that does not
	// begin a new serial+date row into its predecessor.
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if boiStart.MatchString(line) || len(lines) == 0 {
			lines = append(lines, line)
		} else {
			lines[len(lines)-1] += " " + line
		}
	}

	var result Result
	var tracker balanceTracker
	for _, line := range lines {
		m := boiRow.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		date, ok := dateutils.Parse(m[1], dateutils.LayoutDash)
		if !ok {
			result.skip()
			continue
		}
		narration := collapseSpaces(m[2])
		amount, _ := moneyutils.ParseAmount(m[3])
		balance, ok := moneyutils.ParseBalance(m[4])
		if !ok {
			result.skip()
			continue
		}
		withdrawal, deposit := tracker.infer(amount, balance, func() bool {
			return !narrationContainsAny(narration, "CWDR", "DEBIT", "DR")
		})
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
