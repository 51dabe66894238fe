// Package report writes the audit outputs as CSV files: the combined
// transaction batch, the consolidated client-name list, and the three
// analysis reports.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/mkpurohitt/bank-statement-audit/internal/logging"
	"github.com/mkpurohitt/bank-statement-audit/internal/matching"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
)

var log = logging.GetLogger()

// SetLogger replaces the package logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

type clientNameRow struct {
	Name string `csv:"Client Name"`
}

type clientMatchRow struct {
	models.Transaction
	MatchedParts string `csv:"Matched Client Parts"`
}

type flaggedRow struct {
	models.Transaction
	Keyword string `csv:"Matched Keyword"`
	Broker  string `csv:"Matched Broker"`
}

// WriteTransactions writes the combined transaction batch.
func WriteTransactions(path string, transactions []models.Transaction) error {
	return writeCSV(path, &transactions, len(transactions))
}

// WriteClientNames writes the consolidated client-name list.
func WriteClientNames(path string, names []string) error {
	rows := make([]clientNameRow, 0, len(names))
	for _, name := range names {
		rows = append(rows, clientNameRow{Name: name})
	}
	return writeCSV(path, &rows, len(rows))
}

// WriteClientReport writes transactions that matched client name parts, with
// the matched parts joined into one column.
func WriteClientReport(path string, matches []matching.ClientMatch) error {
	rows := make([]clientMatchRow, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, clientMatchRow{
			Transaction:  m.Transaction,
			MatchedParts: strings.Join(m.Parts, ", "),
		})
	}
	return writeCSV(path, &rows, len(rows))
}

// WriteUnmatchedReport writes high-value transactions with no client match.
func WriteUnmatchedReport(path string, transactions []models.Transaction) error {
	return writeCSV(path, &transactions, len(transactions))
}

// WriteFlaggedReport writes keyword- and broker-flagged transactions.
func WriteFlaggedReport(path string, flags []matching.Flag) error {
	rows := make([]flaggedRow, 0, len(flags))
	for _, f := range flags {
		rows = append(rows, flaggedRow{
			Transaction: f.Transaction,
			Keyword:     f.Keyword,
			Broker:      f.Broker,
		})
	}
	return writeCSV(path, &rows, len(rows))
}

func writeCSV(path string, rows interface{}, count int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("failed to close report file")
		}
	}()

	if err := gocsv.MarshalFile(rows, file); err != nil {
		return fmt.Errorf("writing report %s: %w", filepath.Base(path), err)
	}
	log.Info("wrote report",
		logging.Field{Key: "file", Value: filepath.Base(path)},
		logging.Field{Key: "rows", Value: count})
	return nil
}
