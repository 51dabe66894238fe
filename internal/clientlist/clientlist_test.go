package clientlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mkpurohitt/bank-statement-audit/internal/parsererror"
)

func workbook(t *testing.T, sheet string, cells map[string]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for cell, value := range cells {
		require.NoError(t, f.SetCellValue(sheet, cell, value))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestRoute(t *testing.T) {
	tests := []struct {
		filename string
		house    string
		ok       bool
	}{
		{"ANAND RATHI clients.xlsx", "Anand Rathi", true},
		{"gepl master.xlsx", "GEPL", true},
		{"IIFL list.xlsx", "IIFL", true},
		{"MOTILAL export.csv", "Motilal", true},
		{"MOTILAL export.xlsx", "", false}, // Motilal ships csv only
		{"PL CLIENT details.xlsx", "PL", true},
		{"unknown broker.xlsx", "", false},
	}
	for _, tt := range tests {
		parse, house, ok := Route(tt.filename)
		assert.Equal(t, tt.ok, ok, tt.filename)
		assert.Equal(t, tt.house, house, tt.filename)
		if tt.ok {
			assert.NotNil(t, parse, tt.filename)
		}
	}
}

func TestLoad_AnandRathi(t *testing.T) {
	content := workbook(t, "Sheet1", map[string]string{
		"A1": "Code", "B1": "LongName",
		"A2": "C001", "B2": "John Doe",
		"A3": "C002", "B3": " jane roe ",
		"A4": "C003", "B4": "John Doe",
	})

	names, err := Load("ANAND RATHI clients.xlsx", content)
	require.NoError(t, err)
	assert.Equal(t, []string{"JOHN DOE", "JANE ROE"}, names)
}

func TestLoad_GEPLNamedSheet(t *testing.T) {
	content := workbook(t, "Query Master", map[string]string{
		"A1": "CLIENTNAME",
		"A2": "Ramesh Patel",
		"A3": "Suresh Shah",
	})

	names, err := Load("GEPL query.xlsx", content)
	require.NoError(t, err)
	assert.Equal(t, []string{"RAMESH PATEL", "SURESH SHAH"}, names)
}

func TestLoad_MissingColumnYieldsNoNames(t *testing.T) {
	content := workbook(t, "Sheet1", map[string]string{
		"A1": "SomethingElse",
		"A2": "John Doe",
	})

	names, err := Load("ANAND RATHI clients.xlsx", content)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLoad_UnrecognizedFile(t *testing.T) {
	names, err := Load("random list.xlsx", []byte("irrelevant"))
	require.NoError(t, err)
	assert.Nil(t, names)
}

func TestLoad_CorruptWorkbook(t *testing.T) {
	_, err := Load("IIFL list.xlsx", []byte("not a workbook"))
	require.Error(t, err)
	var parseErr *parsererror.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "IIFL", parseErr.Parser)
}

func TestParseMotilal(t *testing.T) {
	csv := "Code,Branch,Name,City\n" +
		"1,HO,John Doe,Mumbai\n" +
		"2,HO, Jane Roe ,Pune\n" +
		"3,HO,,Pune\n"

	names, err := ParseMotilal([]byte(csv))
	require.NoError(t, err)
	assert.Equal(t, []string{"John Doe", "Jane Roe"}, names)
}

func TestNormalize(t *testing.T) {
	names := Normalize([]string{" John Doe ", "JANE ROE", "john doe", "", "  "})
	assert.Equal(t, []string{"JOHN DOE", "JANE ROE"}, names)
}
