package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/extractor"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// Indian Bank: post date and value date fuse into a single fourteen-digit run
// during extraction, the balance carries a fused Cr/Dr suffix, and the cheque
// column may be a bare dash. One regex pulls the whole row apart; the value
// date is the one reported.
var indianBankDescriptor = Descriptor{Bank: "Indian Bank", Variant: "default", Parse: parseIndianBank}

var (
	indianBankStart = regexp.MustCompile(`^\d{2}/\d{2}/\d{2}\d{2}/\d{2}/\d{2}`)
	indianBankRow   = regexp.MustCompile(`(\d{2}/\d{2}/\d{2})(\d{2}/\d{2}/\d{2})\s+(.*?)(?:\s+(-|[\d-]+))?\s+([\d,.-]+)\s*([\d,.-]+)\s*([\d,.]+)(Cr|Dr)`)
)

var indianBankDrop = []string{
	"Post DateValue Date Details",
	"Brought Forward",
	"Carried Forward",
	"StatementSummary",
	"Page No.",
	"STATEMENT OF ACCOUNT",
}

func parseIndianBank(text string) Result {
	var lines []string
	var current string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.Contains(line, extractor.PageBreak) || containsAny(line, indianBankDrop) {
			continue
		}
		if indianBankStart.MatchString(line) {
			if current != "" {
				lines = append(lines, current)
			}
			current = line
		} else if current != "" {
			current += " " + line
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	var result Result
	for _, line := range lines {
		m := indianBankRow.FindStringSubmatch(line)
		if m == nil {
			result.skip()
			continue
		}
		date, ok := dateutils.Parse(m[2], dateutils.LayoutSlashShortYear)
		if !ok {
			result.skip()
			continue
		}
		withdrawal, _ := moneyutils.ParseAmount(m[5])
		deposit, _ := moneyutils.ParseAmount(m[6])
		balance, _ := moneyutils.ParseAmount(m[7])
		result.add(models.Transaction{
			Date:       models.NewDate(date),
			Narration:  collapseSpaces(m[3]),
			Withdrawal: withdrawal,
			Deposit:    deposit,
			Balance:    balance,
		})
	}
	return result
}
