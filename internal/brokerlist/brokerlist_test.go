package brokerlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoad_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brokers.csv")
	content := "Broker Name\nAnand Rathi Broking\n Motilal Oswal \nAnand Rathi Broking\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	names, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ANAND RATHI BROKING", "MOTILAL OSWAL"}, names)
}

func TestLoad_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brokers.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Broker Name"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "Zerodha Broking"))
	require.NoError(t, f.SetCellValue("Sheet1", "A3", "Angel One"))
	require.NoError(t, f.SaveAs(path))

	names, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ZERODHA BROKING", "ANGEL ONE"}, names)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brokers.txt")
	require.NoError(t, os.WriteFile(path, []byte("whatever"), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "unsupported broker list format")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	assert.ErrorContains(t, err, "reading broker list")
}
