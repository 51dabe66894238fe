package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/dateutils"
	"github.com/mkpurohitt/bank-statement-audit/internal/extractor"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
	"github.com/mkpurohitt/bank-statement-audit/internal/moneyutils"
)

// SBI: column boundaries do not survive text extraction at all, so the
// statement is flattened into a single token stream and re-split at every
// transaction date. The amount column has no polarity; debit versus credit is
// inferred from the running balance, seeded from the "Balance as on" header.
var sbiDescriptor = Descriptor{Bank: "SBI", Variant: "default", Parse: parseSBI}

var (
	sbiDate        = regexp.MustCompile(`\d{1,2}\s\w{3}\s\d{4}`)
	sbiValueDate   = regexp.MustCompile(`^\d{1,2}\s\w{3}\s\d{4}\s*`)
	sbiOpeningBal  = regexp.MustCompile(`(?i)Balance as on .*?: ([\d,.]+)`)
	sbiMoneyEnd    = regexp.MustCompile(`([\d,.-]+)\s+([\d,.]+)$`)
	sbiPageFooter  = regexp.MustCompile(`^Page \d+ of \d+`)
	sbiTableHeader = regexp.MustCompile(`^Txn Date.*Balance`)
)

// Header and footer lines repeated on every statement page.
var sbiBoilerplate = []string{
	"Account Name", "Address", "Date", "Account Number", "Account Description",
	"Branch", "Drawing Power", "Interest Rate", "MOD Balance", "CIF No",
	"CKYCR Number", "IFS Code", "(Indian Financial System", "MICR Code",
	"(Magnetic Ink Character Recognition", "Nomination Registered",
	"Balance as on", "Account Statement from", "Please check",
	"State Bank of India", "Description",
}

func parseSBI(text string) Result {
	var tracker balanceTracker
	if m := sbiOpeningBal.FindStringSubmatch(text); m != nil {
		if opening, ok := moneyutils.ParseBalance(m[1]); ok {
			tracker.seed(opening)
		}
	}

	var kept []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.Contains(line, extractor.PageBreak) {
			continue
		}
		if sbiHasBoilerplatePrefix(line) || sbiTableHeader.MatchString(line) || sbiPageFooter.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	flat := collapseSpaces(strings.Join(kept, " "))

	dates := sbiDate.FindAllStringIndex(flat, -1)
	var result Result
	for i, loc := range dates {
		end := len(flat)
		if i+1 < len(dates) {
			end = dates[i+1][0]
		}
		block := strings.TrimSpace(flat[loc[0]:end])

		mm := sbiMoneyEnd.FindStringSubmatchIndex(block)
		if mm == nil {
			result.skip()
			continue
		}
		balance, ok := moneyutils.ParseBalance(block[mm[4]:mm[5]])
		if !ok {
			result.skip()
			continue
		}
		date, ok := dateutils.ParseSpaceMonth(flat[loc[0]:loc[1]])
		if !ok {
			result.skip()
			continue
		}
		amount, _ := moneyutils.ParseAmount(block[mm[2]:mm[3]])

		narration := strings.TrimSpace(block[loc[1]-loc[0] : mm[0]])
		narration = sbiValueDate.ReplaceAllString(narration, "")
		narration = collapseSpaces(strings.ReplaceAll(narration, "Ref No./Cheque No.", ""))

		withdrawal, deposit := tracker.infer(amount, balance, func() bool {
			return narrationContainsAny(narration, "BY TRANSFER", "NEFT ", "CR ")
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

func sbiHasBoilerplatePrefix(line string) bool {
	for _, prefix := range sbiBoilerplate {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
