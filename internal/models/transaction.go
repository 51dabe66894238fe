// Package models defines the transaction record shared by every bank parser
// and by the downstream matching and report stages.
package models

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the display layout for transaction dates in CSV output.
const DateLayout = "02/01/2006"

// Date wraps time.Time so transaction dates marshal consistently across all
// parsers regardless of the source statement's own date convention.
type Date struct {
	time.Time
}

// NewDate creates a Date from a time.Time.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// MarshalCSV renders the date as DD/MM/YYYY for gocsv.
func (d Date) MarshalCSV() (string, error) {
	if d.IsZero() {
		return "", nil
	}
	return d.Format(DateLayout), nil
}

// UnmarshalCSV parses a DD/MM/YYYY value for gocsv.
func (d *Date) UnmarshalCSV(csv string) error {
	if csv == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(DateLayout, csv)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Transaction is one parsed statement row. The column set is fixed across all
// bank parsers so downstream consumers need no per-bank branching.
type Transaction struct {
	Date       Date            `csv:"Date"`
	Narration  string          `csv:"Narration"`
	Withdrawal decimal.Decimal `csv:"Withdrawal Amt."`
	Deposit    decimal.Decimal `csv:"Deposit Amt."`
	Balance    decimal.Decimal `csv:"Closing Balance"`
}

// SortByDate orders transactions chronologically. The sort is stable so rows
// from the same statement keep their original relative order.
func SortByDate(transactions []Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.Before(transactions[j].Date.Time)
	})
}
