package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// Union Bank: the date line and the timestamped remarks line that follows it
// open each transaction. A lone date line without a timestamp underneath is
// column noise and ignored. Debit versus credit is inferred from the running
// balance.
var unionBankDescriptor = Descriptor{Bank: "Union Bank", Variant: "default", Parse: parseUnionBank}

var (
	unionHeader = regexp.MustCompile(`Date\s+Tran Id-1Remarks\s+UTR Number\s+Instr\. ID\s+Withdrawals\s+Deposits\s+Balance`)
	unionStart  = regexp.MustCompile(`^(\d{2}-\d{2}-\d{4})`)
	unionTime   = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\s*`)
)

func parseUnionBank(text string) Result {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if unionHeader.MatchString(strings.TrimSpace(line)) {
			start = i + 1
			break
		}
	}
	var result Result
	if start == -1 {
		return result
	}

	var tracker balanceTracker
	var block []string
	var dateStr string
	flush := func() {
		if len(block) == 0 || dateStr == "" {
			return
		}
		if tx, ok := parseUnionBlock(block, dateStr, &tracker); ok {
			result.add(tx)
		} else {
			result.skip()
		}
	}
	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		dm := unionStart.FindStringSubmatch(line)
		timeNext := i+1 < len(lines) && unionTime.MatchString(strings.TrimSpace(lines[i+1]))
		switch {
		case dm != nil && timeNext:
			flush()
			dateStr = dm[1]
			block = nil
		case dm == nil && dateStr != "":
			if !strings.HasPrefix(line, "Statement Date :") {
				block = append(block, line)
			}
		}
	}
	flush()
	return result
}

func parseUnionBlock(block []string, dateStr string, tracker *balanceTracker) (models.Transaction, bool) {
	date, ok := dateutils.Parse(dateStr, dateutils.LayoutDash)
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

	narration := strings.Join(words[:len(words)-2], " ")
	narration = collapseSpaces(unionTime.ReplaceAllString(narration, ""))

	withdrawal, deposit := tracker.infer(amount, balance, func() bool {
		return !narrationContainsAny(narration, "UPIAR/DR/", "APY-SI-", "CWDR/")
	})
	return models.Transaction{
		Date:       models.NewDate(date),
		Narration:  narration,
		Withdrawal: withdrawal,
		Deposit:    deposit,
		Balance:    balance,
	}, true
}
