package bankparse

import (
	"strings"
)

// Fingerprint sample sizes. Most banks identify inside the first page header;
// Saraswat prints its IFSC code further down.
const (
	fingerprintLen         = 1500
	saraswatFingerprintLen = 2500
)

// Route identifies the bank behind a statement from the filename and the
// opening stretch of extracted text, and returns the parser for it plus the
// bank's display name. The filename is the primary signal; IFSC codes and
// column-header fingerprints in the text are the secondary one. Checks run
// most specific first: a Central Bank of India statement must not fall into
// the HDFC or Bank of India routes.
//
// The returned bool is false when no parser applies. That covers unknown
// banks, the Bank of India fingerprint matching a Central Bank statement, and
// Saraswat, which is recognized but has no supported layout.
func Route(filename, text string) (ParseFunc, string, bool) {
	upperName := strings.ToUpper(filename)
	upperText := strings.ToUpper(head(text, fingerprintLen))
	cleanText := spaceRun.ReplaceAllString(upperText, "")
	flatText := collapseSpaces(upperText)

	switch {
	case strings.Contains(upperName, "CENTRAL BANK") || strings.Contains(cleanText, "CENTRALBANKOFINDIA"):
		return centralBankDescriptor.Parse, centralBankDescriptor.Bank, true

	case strings.Contains(upperName, "HDFC"):
		return hdfcDescriptor.Parse, hdfcDescriptor.Bank, true

	case strings.Contains(upperName, "AXIS"):
		switch {
		case strings.Contains(cleanText, "S.NOTRANSACTION"):
			return axisFormat1Descriptor.Parse, axisFormat1Descriptor.Bank, true
		case strings.Contains(cleanText, "TRANDATECHQNO"):
			return axisFormat2Descriptor.Parse, axisFormat2Descriptor.Bank, true
		default:
			return fallbackChain(axisFormat1Descriptor.Parse, axisFormat2Descriptor.Parse), axisFormat1Descriptor.Bank, true
		}

	case strings.Contains(upperName, "AU"):
		return auBankDescriptor.Parse, auBankDescriptor.Bank, true

	case strings.Contains(upperName, "BANDHAN"):
		return bandhanDescriptor.Parse, bandhanDescriptor.Bank, true

	case strings.Contains(upperName, "BARODA"):
		return fallbackChain(barodaFormat1Descriptor.Parse, barodaFormat2Descriptor.Parse), barodaFormat1Descriptor.Bank, true

	case (strings.Contains(upperName, "BANK OF INDIA") && !strings.Contains(upperName, "CENTRAL")) ||
		strings.Contains(cleanText, "SRNODATEREMARKS"):
		return bankOfIndiaDescriptor.Parse, bankOfIndiaDescriptor.Bank, true

	case strings.Contains(upperName, "PUNJAB & SIND") || strings.Contains(upperText, "PSIB"):
		return punjabSindDescriptor.Parse, punjabSindDescriptor.Bank, true

	case strings.Contains(upperName, "CANARA BANK") || strings.Contains(upperText, "CNRB"):
		return canaraDescriptor.Parse, canaraDescriptor.Bank, true

	case strings.Contains(upperName, "EQUITAS") || strings.Contains(upperText, "ESFB"):
		return equitasDescriptor.Parse, equitasDescriptor.Bank, true

	case strings.Contains(upperName, "FEDERAL BANK") || strings.Contains(upperText, "FDRL"):
		return federalDescriptor.Parse, federalDescriptor.Bank, true

	case strings.Contains(upperName, "ICICI BANK") || strings.Contains(cleanText, "DATEMODE**PARTICULARS"):
		return iciciDescriptor.Parse, iciciDescriptor.Bank, true

	case strings.Contains(upperName, "IDBI BANK FORMAT 2") ||
		(strings.Contains(cleanText, "SRDATEDESCRIPTIONAMOUNT") && strings.Contains(upperText, "IBKL")):
		return idbiFormat2Descriptor.Parse, idbiFormat2Descriptor.Bank, true

	case strings.Contains(upperName, "IDFCFIRST") ||
		(strings.Contains(cleanText, "TRANSACTIONDATEVALUEDATEPARTICULARS") && strings.Contains(upperText, "IDFB")):
		return idfcFirstDescriptor.Parse, idfcFirstDescriptor.Bank, true

	case strings.Contains(upperName, "INDIAN BANK") || strings.Contains(upperText, "IDIB"):
		return indianBankDescriptor.Parse, indianBankDescriptor.Bank, true

	case strings.Contains(upperName, "INDIAN OVERSEAS") || strings.Contains(cleanText, "IOBA"):
		return indianOverseasDescriptor.Parse, indianOverseasDescriptor.Bank, true

	case strings.Contains(upperName, "SARASWAT") ||
		strings.Contains(strings.ToUpper(head(text, saraswatFingerprintLen)), "SRCB"):
		// Recognized but no supported layout yet.
		return nil, "Saraswat", false

	case strings.Contains(upperName, "INDUSLAND") || strings.Contains(cleanText, "INDB"):
		switch {
		case strings.Contains(flatText, "DATE TYPE DESCRIPTION DEBIT CREDIT BALANCE"):
			return indusindFormat3Descriptor.Parse, indusindFormat3Descriptor.Bank, true
		case strings.Contains(cleanText, "BANKREFERENCE") || strings.Contains(cleanText, "PAYMENTNARRATION"):
			// Format 2 has no extractable text layout; format 1 sometimes
			// salvages these statements.
			return indusindFormat1Descriptor.Parse, indusindFormat1Descriptor.Bank, true
		default:
			return indusindFormat1Descriptor.Parse, indusindFormat1Descriptor.Bank, true
		}

	case strings.Contains(upperName, "KOTAK") || strings.Contains(cleanText, "KKBK"):
		return kotakDescriptor.Parse, kotakDescriptor.Bank, true

	case strings.Contains(upperName, "SBI") || strings.Contains(cleanText, "SBIN"):
		return sbiDescriptor.Parse, sbiDescriptor.Bank, true

	case strings.Contains(upperName, "UCO") || strings.Contains(cleanText, "UCBA"):
		return ucoDescriptor.Parse, ucoDescriptor.Bank, true

	case strings.Contains(upperName, "UNION") || strings.Contains(cleanText, "UBIN"):
		return unionBankDescriptor.Parse, unionBankDescriptor.Bank, true

	case strings.Contains(upperName, "YES BANK") || strings.Contains(cleanText, "YESB"):
		return yesBankDescriptor.Parse, yesBankDescriptor.Bank, true

	case strings.Contains(upperName, "DHANLAXMI") || strings.Contains(upperText, "DLXB"):
		return dhanlaxmiDescriptor.Parse, dhanlaxmiDescriptor.Bank, true
	}
	return nil, "", false
}

// Parse routes and parses in one step. Unroutable statements yield an empty
// result; the bank name (when recognized) is returned for diagnostics.
func Parse(filename, text string) (Result, string) {
	parse, bank, ok := Route(filename, text)
	if !ok {
		return Result{}, bank
	}
	return parse(text), bank
}

// fallbackChain runs parsers in order and returns the first non-empty result.
// When every parser comes back empty, the last result (with its skip count)
// is returned.
func fallbackChain(parsers ...ParseFunc) ParseFunc {
	return func(text string) Result {
		var last Result
		for _, p := range parsers {
			last = p(text)
			if !last.Empty() {
				return last
			}
		}
		return last
	}
}

func head(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
