// Package common provides the shared batch-processing steps used by the
// statement and audit commands.
package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/bankparse"
	"github.com/mkpurohitt/bank-statement-audit/internal/clientlist"
	"github.com/mkpurohitt/bank-statement-audit/internal/extractor"
	"github.com/mkpurohitt/bank-statement-audit/internal/logging"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
)

// CollectFiles resolves an input path to the list of files to process. A file
// path yields itself; a directory yields its entries with one of the given
// extensions (lowercase, with dot).
func CollectFiles(input string, extensions ...string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("input path %s: %w", input, err)
	}
	if !info.IsDir() {
		return []string{input}, nil
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", input, err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, want := range extensions {
			if ext == want {
				files = append(files, filepath.Join(input, entry.Name()))
				break
			}
		}
	}
	return files, nil
}

// ProcessStatements runs the extract-route-parse pipeline over a batch of
// statement PDFs. Files that fail extraction or routing contribute zero rows;
// the batch never aborts. The combined result is sorted by date.
func ProcessStatements(paths []string, logger logging.Logger) []models.Transaction {
	ext := extractor.New(logger)

	var combined []models.Transaction
	for _, path := range paths {
		name := filepath.Base(path)
		fileLog := logger.WithField("file", name)

		content, err := os.ReadFile(path)
		if err != nil {
			fileLog.WithError(err).Warn("failed to read statement, skipping")
			continue
		}
		text, err := ext.Extract(name, content)
		if err != nil {
			fileLog.WithError(err).Warn("failed to extract statement text, skipping")
			continue
		}
		result, bank := bankparse.Parse(name, text)
		if bank == "" {
			fileLog.Warn("no parser found for this bank, skipping")
			continue
		}
		fileLog.Info("parsed statement",
			logging.Field{Key: "bank", Value: bank},
			logging.Field{Key: "transactions", Value: len(result.Transactions)},
			logging.Field{Key: "skipped_blocks", Value: result.Skipped})
		combined = append(combined, result.Transactions...)
	}
	models.SortByDate(combined)
	return combined
}

// ProcessClientLists loads every client-list file and merges the names into
// one deduplicated list.
func ProcessClientLists(paths []string, logger logging.Logger) []string {
	var merged []string
	for _, path := range paths {
		name := filepath.Base(path)
		content, err := os.ReadFile(path)
		if err != nil {
			logger.WithField("file", name).WithError(err).Warn("failed to read client list, skipping")
			continue
		}
		names, err := clientlist.Load(name, content)
		if err != nil {
			logger.WithField("file", name).WithError(err).Warn("failed to parse client list, skipping")
			continue
		}
		merged = append(merged, names...)
	}
	return clientlist.Normalize(merged)
}
