// Package extractor pulls raw page text out of PDF statements held in memory.
package extractor

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/mkpurohitt/bank-statement-audit/internal/logging"
	"github.com/mkpurohitt/bank-statement-audit/internal/parsererror"
)

// PageBreak is the sentinel inserted between pages. The block assemblers rely
// on it to discard page boundaries and repeated page headers.
const PageBreak = "--- PAGE BREAK ---"

// Extractor extracts text from PDF byte buffers.
type Extractor struct {
	logger logging.Logger
}

// New creates an Extractor. A nil logger falls back to the shared default.
func New(logger logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Extractor{logger: logger}
}

// Extract returns the concatenated per-page text of the document with a page
// break sentinel after each page. The filename is advisory and used only for
// diagnostics. Encrypted documents are never opened with a guessed password;
// they fail closed with an ExtractionError marked Encrypted.
func (e *Extractor) Extract(filename string, content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		encrypted := err == pdf.ErrInvalidPassword
		if encrypted {
			e.logger.Warn("Skipping encrypted PDF",
				logging.Field{Key: "file", Value: filename})
		} else {
			e.logger.WithError(err).Warn("Failed to open PDF",
				logging.Field{Key: "file", Value: filename})
		}
		return "", &parsererror.ExtractionError{FileName: filename, Encrypted: encrypted, Err: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page degrades to missing rows, not a
			// failed file.
			e.logger.WithError(err).Warn("Failed to extract page text",
				logging.Field{Key: "file", Value: filename},
				logging.Field{Key: "page", Value: i})
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n" + PageBreak + "\n")
	}

	return sb.String(), nil
}
