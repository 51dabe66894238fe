// Package bankparse turns extracted bank-statement text into transaction
// records. Each supported bank/format variant has its own parser built from
// the same three stages: a block assembler that groups raw lines into one
// block per transaction, a field extractor that pulls date, narration and
// money tokens out of a block, and (for single-amount formats) debit/credit
// inference anchored on the running balance.
//
// Parsing is best effort by design: blocks that fail a format's pattern are
// counted and dropped, never escalated. Malformed input costs completeness,
// not the correctness of the rows that do parse.
package bankparse

import (
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
)

// ParseFunc parses the full text of one statement into transactions.
type ParseFunc func(text string) Result

// Result is the outcome of parsing one statement.
type Result struct {
	Transactions []models.Transaction
	// Skipped counts blocks that looked like transactions but failed field
	// extraction or date parsing. It makes the forgiving drop policy
	// observable so completeness can be measured by callers and tests.
	Skipped int
}

// Empty reports whether parsing produced no rows.
func (r Result) Empty() bool {
	return len(r.Transactions) == 0
}

func (r *Result) add(tx models.Transaction) {
	r.Transactions = append(r.Transactions, tx)
}

func (r *Result) skip() {
	r.Skipped++
}

// Descriptor binds a (bank, format variant) pair to its parser. It is the
// unit of dispatch for the router; there is no shared parser interface beyond
// the ParseFunc signature.
type Descriptor struct {
	Bank    string
	Variant string
	Parse   ParseFunc
}

// Descriptors lists every registered bank/format combination in routing
// order.
func Descriptors() []Descriptor {
	return []Descriptor{
		centralBankDescriptor,
		hdfcDescriptor,
		axisFormat1Descriptor,
		axisFormat2Descriptor,
		auBankDescriptor,
		bandhanDescriptor,
		barodaFormat1Descriptor,
		barodaFormat2Descriptor,
		bankOfIndiaDescriptor,
		punjabSindDescriptor,
		canaraDescriptor,
		equitasDescriptor,
		federalDescriptor,
		iciciDescriptor,
		idbiFormat2Descriptor,
		idfcFirstDescriptor,
		indianBankDescriptor,
		indianOverseasDescriptor,
		indusindFormat1Descriptor,
		indusindFormat3Descriptor,
		kotakDescriptor,
		sbiDescriptor,
		ucoDescriptor,
		unionBankDescriptor,
		yesBankDescriptor,
		dhanlaxmiDescriptor,
	}
}
