package bankparse

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkpurohitt/bank-statement-audit/internal/extractor"
)

func TestLineAssembler_JoinsWrappedNarration(t *testing.T) {
	a := lineAssembler{
		start: regexp.MustCompile(`^\d{2}/\d{2}/\d{2}`),
		drop:  []string{"STATEMENT OF ACCOUNT"},
		stop:  []string{"End of Statement"},
	}

	text := "STATEMENT OF ACCOUNT\n" +
		"01/04/24 UPI-VENDOR 500.00 10,500.00\n" +
		"WRAPPED NARRATION TAIL\n" +
		extractor.PageBreak + "\n" +
		"02/04/24 NEFT-CLIENT 2,000.00 12,500.00\n" +
		"End of Statement\n" +
		"03/04/24 SHOULD NOT APPEAR 1.00 1.00\n"

	lines := a.assemble(text)
	assert.Equal(t, []string{
		"01/04/24 UPI-VENDOR 500.00 10,500.00 WRAPPED NARRATION TAIL",
		"02/04/24 NEFT-CLIENT 2,000.00 12,500.00",
	}, lines)
}

func TestLineAssembler_KeepsPreambleLines(t *testing.T) {
	a := lineAssembler{start: regexp.MustCompile(`^\d{2}-\d{2}-\d{4}`)}
	lines := a.assemble("Account Holder: X\n01-04-2024 UPI 1.00 2.00\n")
	// Preamble before the first start match stays; extractors re-check the
	// start pattern and ignore it.
	assert.Equal(t, []string{"Account Holder: X", "01-04-2024 UPI 1.00 2.00"}, lines)
}

func TestBlockAssembler_HeaderGate(t *testing.T) {
	b := blockAssembler{
		start:  regexp.MustCompile(`^\d{2}-\w{3}-\d{4}`),
		skip:   []string{"Page No:"},
		header: "DATE VALUE DATE DESCRIPTION",
	}

	text := "01-Apr-2024 BEFORE HEADER MUST BE IGNORED\n" +
		"DATE VALUE DATE DESCRIPTION\n" +
		"01-Apr-2024 01-Apr-2024 UPI VENDOR\n" +
		"CONTINUATION LINE\n" +
		"Page No: 1\n" +
		"02-Apr-2024 02-Apr-2024 NEFT CLIENT\n"

	blocks := b.assemble(text)
	assert.Equal(t, [][]string{
		{"01-Apr-2024 01-Apr-2024 UPI VENDOR", "CONTINUATION LINE"},
		{"02-Apr-2024 02-Apr-2024 NEFT CLIENT"},
	}, blocks)
}

func TestIsNumericToken(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"500", true},
		{"500.00", true},
		{"1,500", true},
		{"-", false},
		{"", false},
		{"1,13,832.38", false}, // more than one comma plus a point
		{"2023-24", false},
		{"ABC", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isNumericToken(tt.token), tt.token)
	}
}

func TestJoinBlockAndCollapseSpaces(t *testing.T) {
	assert.Equal(t, "a b c", joinBlock([]string{" a  b", "c "}))
	assert.Equal(t, "x y", collapseSpaces("  x \t y \n"))
}

func TestLastIndexOf(t *testing.T) {
	parts := []string{"Cr", "100", "Dr", "200"}
	assert.Equal(t, 2, lastIndexOf(parts, "Dr"))
	assert.Equal(t, 0, lastIndexOf(parts, "Cr"))
	assert.Equal(t, -1, lastIndexOf(parts, "xx"))
}
