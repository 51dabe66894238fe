// Package brokerlist loads the server-local broker-name list used for
// flagging. The list is a simple one-column file: xlsx (first sheet) or csv,
// header row included.
package brokerlist

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mkpurohitt/bank-statement-audit/internal/clientlist"
	"github.com/mkpurohitt/bank-statement-audit/internal/logging"
)

var log = logging.GetLogger()

// SetLogger replaces the package logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Load reads broker names from the file at path. Names are trimmed,
// uppercased and deduplicated.
func Load(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading broker list: %w", err)
	}

	var names []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		names, err = firstCSVColumn(content)
	case ".xlsx":
		names, err = firstSheetColumn(content)
	default:
		return nil, fmt.Errorf("unsupported broker list format: %s", filepath.Base(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parsing broker list %s: %w", filepath.Base(path), err)
	}

	normalized := clientlist.Normalize(names)
	log.Info("loaded broker names",
		logging.Field{Key: "file", Value: filepath.Base(path)},
		logging.Field{Key: "count", Value: len(normalized)})
	return normalized, nil
}

func firstCSVColumn(content []byte) ([]string, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	var names []string
	header := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header {
			header = false
			continue
		}
		if len(record) > 0 {
			names = append(names, record[0])
		}
	}
	return names, nil
}

func firstSheetColumn(content []byte) ([]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("failed to close workbook")
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	var names []string
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		names = append(names, row[0])
	}
	return names, nil
}
