package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// YES Bank: rows open with a transaction date and a value date side by side
// and wrap freely below. The single amount column is signless; the running
// balance decides debit versus credit.
var yesBankDescriptor = Descriptor{Bank: "YES Bank", Variant: "default", Parse: parseYesBank}

var (
	yesHeader = regexp.MustCompile(`Date\s+Value\s+Date\s+Cheque\s+No/Reference\s+No\s+Description\s+Withdrawals\s+Deposits\s+Running\s+Balance`)
	yesStart  = regexp.MustCompile(`^(\d{2}\s\w{3}\s\d{4})\s+(\d{2}\s\w{3}\s\d{4})`)
)

func parseYesBank(text string) Result {
	lines := strings.Split(text, "\n")
	start := yesFindHeader(lines)
	var result Result
	if start == -1 || start >= len(lines) {
		return result
	}

	var tracker balanceTracker
	var block []string
	var dateStr string
	flush := func() {
		if len(block) == 0 || dateStr == "" {
			return
		}
		if tx, ok := parseYesBlock(block, dateStr, &tracker); ok {
			result.add(tx)
		} else {
			result.skip()
		}
	}
	for _, raw := range lines[start:] {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if dm := yesStart.FindStringSubmatch(line); dm != nil {
			flush()
			dateStr = dm[1]
			block = []string{strings.TrimSpace(line[len(dm[0]):])}
		} else if dateStr != "" {
			if !strings.HasPrefix(line, "Page ") && !strings.HasPrefix(line, "Statement of account:") {
				block = append(block, line)
			}
		}
	}
	flush()
	return result
}

// yesFindHeader locates the column header, either directly or within the few
// lines after the "Transaction details" lead-in some layouts print first.
func yesFindHeader(lines []string) int {
	for i, line := range lines {
		if yesHeader.MatchString(collapseSpaces(line)) {
			return i + 1
		}
	}
	for i, line := range lines {
		if strings.Contains(line, "Transaction details for your account number") {
			for j := i + 1; j < i+10 && j < len(lines); j++ {
				if yesHeader.MatchString(collapseSpaces(lines[j])) {
					return j + 1
				}
			}
		}
	}
	return -1
}

func parseYesBlock(block []string, dateStr string, tracker *balanceTracker) (models.Transaction, bool) {
	date, ok := dateutils.Parse(dateStr, dateutils.LayoutSpaceMonth)
	if !ok {
		return models.Transaction{}, false
	}
	full := joinBlock(block)
	words := strings.Fields(full)
	if len(words) < 2 {
		return models.Transaction{}, false
	}
	if !moneyutils.IsNumberLike(words[len(words)-2]) || !moneyutils.IsNumberLike(words[len(words)-1]) {
		return models.Transaction{}, false
	}
	balance, ok := moneyutils.ParseBalance(words[len(words)-1])
	if !ok {
		return models.Transaction{}, false
	}
	amount, _ := moneyutils.ParseAmount(words[len(words)-2])
	narration := collapseSpaces(strings.Join(words[:len(words)-2], " "))

	withdrawal, deposit := tracker.infer(amount, balance, func() bool {
		return !narrationContainsAny(narration, "ACH DR")
	})
	return models.Transaction{
		Date:       models.NewDate(date),
		Narration:  narration,
		Withdrawal: withdrawal,
		Deposit:    deposit,
		Balance:    balance,
	}, true
}
