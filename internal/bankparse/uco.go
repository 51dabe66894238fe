package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// UCO: withdrawals and deposits are separate columns, but extraction collapses
// empty cells, so a block ends with either three money tokens or two. With
// two there is no way to tell the columns apart positionally; narration
// keywords break the tie.
var ucoDescriptor = Descriptor{Bank: "UCO", Variant: "default", Parse: parseUCO}

var (
	ucoHeader = regexp.MustCompile(`Date\s+Particulars\s+Withdrawals\s+Deposits\s+Balance\s*Chq\.\s+No\.`)
	ucoStart  = regexp.MustCompile(`^(\d{2}-\d{2}-\d{4})`)
)

func parseUCO(text string) Result {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if ucoHeader.MatchString(strings.TrimSpace(line)) {
			start = i + 1
			break
		}
	}
	var result Result
	if start == -1 || start >= len(lines) {
		return result
	}

	var block []string
	flush := func() {
		if len(block) == 0 {
			return
		}
		if tx, ok := parseUCOBlock(block); ok {
			result.add(tx)
		} else {
			result.skip()
		}
		block = nil
	}
	for _, raw := range lines[start:] {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if ucoStart.MatchString(line) {
			flush()
			block = []string{line}
		} else if len(block) > 0 {
			block = append(block, line)
		}
	}
	flush()
	return result
}

func parseUCOBlock(block []string) (models.Transaction, bool) {
	full := joinBlock(block)
	dm := ucoStart.FindStringSubmatchIndex(full)
	if dm == nil {
		return models.Transaction{}, false
	}
	date, ok := dateutils.Parse(full[dm[2]:dm[3]], dateutils.LayoutDash)
	if !ok {
		return models.Transaction{}, false
	}

	words := strings.Fields(full)
	if len(words) < 3 {
		return models.Transaction{}, false
	}
	balance, ok := moneyutils.ParseBalance(words[len(words)-1])
	if !ok || !moneyutils.IsNumberLike(words[len(words)-2]) {
		return models.Transaction{}, false
	}
	amount, _ := moneyutils.ParseAmount(words[len(words)-2])

	withdrawal, deposit := decimalZeroPair()
	narrationEnd := len(words) - 2
	if len(words) >= 4 && isNumericToken(words[len(words)-3]) {
		// All three columns present: withdrawals, deposits, balance.
		withdrawal, _ = moneyutils.ParseAmount(words[len(words)-3])
		deposit = amount
		narrationEnd = len(words) - 3
	} else {
		narration := strings.Join(words[1:narrationEnd], " ")
		if narrationContainsAny(narration, "CWDR", "UPI/TRTR") {
			withdrawal = amount
		} else {
			deposit = amount
		}
	}
	narration := collapseSpaces(strings.Join(words[1:narrationEnd], " "))

	return models.Transaction{
		Date:       models.NewDate(date),
		Narration:  narration,
		Withdrawal: withdrawal,
		Deposit:    deposit,
		Balance:    balance,
	}, true
}
