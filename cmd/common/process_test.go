package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mkpurohitt/bank-statement-audit/internal/logging"
)

func TestCollectFiles_SingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	files, err := CollectFiles(path, ".pdf")
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestCollectFiles_DirectoryFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.pdf", "b.PDF", "notes.txt", "c.xlsx"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.pdf"), 0o750))

	files, err := CollectFiles(dir, ".pdf")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.pdf"),
		filepath.Join(dir, "b.PDF"),
	}, files)
}

func TestCollectFiles_MissingPath(t *testing.T) {
	_, err := CollectFiles(filepath.Join(t.TempDir(), "absent"), ".pdf")
	assert.Error(t, err)
}

func TestProcessStatements_UnreadableFilesSkipBatchContinues(t *testing.T) {
	dir := t.TempDir()
	// Not a real PDF: extraction fails and the file contributes zero rows.
	corrupt := filepath.Join(dir, "HDFC statement.pdf")
	require.NoError(t, os.WriteFile(corrupt, []byte("not a pdf"), 0o600))

	mock := logging.NewMockLogger()
	transactions := ProcessStatements([]string{corrupt, filepath.Join(dir, "absent.pdf")}, mock)

	assert.Empty(t, transactions)
	assert.True(t, mock.HasMessage("failed to extract statement text, skipping"))
	assert.True(t, mock.HasMessage("failed to read statement, skipping"))
}

func TestProcessClientLists_MergesAndNormalizes(t *testing.T) {
	dir := t.TempDir()

	motilal := filepath.Join(dir, "MOTILAL list.csv")
	require.NoError(t, os.WriteFile(motilal, []byte("Code,Branch,Name\n1,HO,John Doe\n"), 0o600))

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "LongName"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "jane roe"))
	require.NoError(t, f.SetCellValue("Sheet1", "A3", "John Doe"))
	anandRathi := filepath.Join(dir, "ANAND RATHI list.xlsx")
	require.NoError(t, f.SaveAs(anandRathi))

	names := ProcessClientLists([]string{motilal, anandRathi}, logging.NewMockLogger())
	assert.Equal(t, []string{"JOHN DOE", "JANE ROE"}, names)
}
