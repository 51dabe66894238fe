// Package clientlist loads client-name lists exported by broker houses. Each
// house ships its own spreadsheet layout, so loading mirrors the statement
// side: a filename router in front of per-house parsers. Names come back
// trimmed, uppercased and deduplicated.
package clientlist

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mkpurohitt/bank-statement-audit/internal/logging"
	"github.com/mkpurohitt/bank-statement-audit/internal/parsererror"
)

var log = logging.GetLogger()

// SetLogger replaces the package logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// ParseFunc extracts raw client names from one list file's content.
type ParseFunc func(content []byte) ([]string, error)

// Route picks the parser for a client-list file from its name. The second
// return is the broker house label for diagnostics.
func Route(filename string) (ParseFunc, string, bool) {
	upper := strings.ToUpper(filename)
	switch {
	case strings.Contains(upper, "ANAND RATHI"):
		return ParseAnandRathi, "Anand Rathi", true
	case strings.Contains(upper, "GEPL"):
		return ParseGEPL, "GEPL", true
	case strings.Contains(upper, "IIFL"):
		return ParseIIFL, "IIFL", true
	case strings.Contains(upper, "MOTILAL") && strings.HasSuffix(strings.ToLower(filename), ".csv"):
		return ParseMotilal, "Motilal", true
	case strings.Contains(upper, "PL CLIENT"):
		return ParsePL, "PL", true
	}
	return nil, "", false
}

// Load routes and parses one client-list file, normalizing the names.
// Unrecognized files yield an empty list, not an error.
func Load(filename string, content []byte) ([]string, error) {
	parse, house, ok := Route(filename)
	if !ok {
		log.Warn("no client list parser for file", logging.Field{Key: "file", Value: filename})
		return nil, nil
	}
	names, err := parse(content)
	if err != nil {
		return nil, &parsererror.ParseError{Parser: house, Field: "client names", Err: err}
	}
	normalized := Normalize(names)
	log.Info("loaded client names",
		logging.Field{Key: "file", Value: filename},
		logging.Field{Key: "house", Value: house},
		logging.Field{Key: "count", Value: len(normalized)})
	return normalized, nil
}

// ParseAnandRathi reads the "LongName" column of Sheet1.
func ParseAnandRathi(content []byte) ([]string, error) {
	return excelColumn(content, "Sheet1", "LongName")
}

// ParseGEPL reads the "CLIENTNAME" column of the "Query Master" sheet.
func ParseGEPL(content []byte) ([]string, error) {
	return excelColumn(content, "Query Master", "CLIENTNAME")
}

// ParseIIFL reads the "NAME" column of the first sheet.
func ParseIIFL(content []byte) ([]string, error) {
	return excelColumn(content, "", "NAME")
}

// ParsePL reads both the "CLIENT NAME" and "LD-CLIENT NAME" columns of the
// "18082025 DETAILS" sheet.
func ParsePL(content []byte) ([]string, error) {
	primary, err := excelColumn(content, "18082025 DETAILS", "CLIENT NAME")
	if err != nil {
		return nil, err
	}
	secondary, err := excelColumn(content, "18082025 DETAILS", "LD-CLIENT NAME")
	if err != nil {
		return nil, err
	}
	return append(primary, secondary...), nil
}

// ParseMotilal reads the third column of a headered CSV export.
func ParseMotilal(content []byte) ([]string, error) {
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
		if len(record) > 2 {
			if name := strings.TrimSpace(record[2]); name != "" {
				names = append(names, name)
			}
		}
	}
	return names, nil
}

// Normalize trims, uppercases and deduplicates names, preserving first-seen
// order.
func Normalize(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	var out []string
	for _, name := range names {
		name = strings.ToUpper(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// excelColumn extracts one named column from a sheet, treating the first row
// as the header. An empty sheet name means the workbook's first sheet.
func excelColumn(content []byte, sheet, column string) ([]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("failed to close workbook")
		}
	}()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	col := -1
	for i, cell := range rows[0] {
		if strings.TrimSpace(cell) == column {
			col = i
			break
		}
	}
	if col == -1 {
		log.Warn("column not found in sheet",
			logging.Field{Key: "sheet", Value: sheet},
			logging.Field{Key: "column", Value: column})
		return nil, nil
	}

	var names []string
	for _, row := range rows[1:] {
		if col < len(row) {
			if name := strings.TrimSpace(row[col]); name != "" {
				names = append(names, name)
			}
		}
	}
	return names, nil
}
