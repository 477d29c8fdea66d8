package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/seedbatch-dev/seedbatch/internal/export"
	"github.com/seedbatch-dev/seedbatch/internal/model"
)

func exportedFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "*.xlsx"))
	require.NoError(t, err)
	return matches
}

func TestExport_EmptyBatch(t *testing.T) {
	dir := initWorkspace(t)

	out, err := runSeedbatch(t, "export", "--repo", dir)
	require.Error(t, err)
	assert.Contains(t, out, "nothing to export")
	assert.Empty(t, exportedFiles(t, filepath.Join(dir, "exports")))
}

func TestExport_Workbook(t *testing.T) {
	dir := initWorkspace(t)
	_, err := runSeedbatchWithInput(t, pasteRavi, "add", "--repo", dir)
	require.NoError(t, err)
	_, err = runSeedbatchWithInput(t, pasteTwo, "add", "--repo", dir)
	require.NoError(t, err)

	out, err := runSeedbatch(t, "export", "--repo", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Exported 3 entries")

	files := exportedFiles(t, filepath.Join(dir, "exports"))
	require.Len(t, files, 1)

	prefix, _, _, seq, err := export.ParseFileName(filepath.Base(files[0]))
	require.NoError(t, err)
	assert.Equal(t, "SEEDS", prefix)
	assert.Equal(t, 1, seq)

	f, err := excelize.OpenFile(files[0])
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Sheet1"}, f.GetSheetList())
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 4, "header plus one row per entry")
	assert.Equal(t, model.Columns, rows[0])
	assert.Equal(t, "Ravi Kumar", rows[1][0])
	assert.Equal(t, "150000", rows[1][6])
	assert.Equal(t, "Suresh Patel", rows[3][0])

	// The batch survives an export.
	assert.Len(t, loadBatch(t, dir), 3)
}

func TestExport_OutDir(t *testing.T) {
	dir := initWorkspace(t)
	_, err := runSeedbatchWithInput(t, pasteRavi, "add", "--repo", dir)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "payouts")
	_, err = runSeedbatch(t, "export", "--repo", dir, "--out", out)
	require.NoError(t, err)
	assert.Len(t, exportedFiles(t, out), 1)
}

func TestExport_NextSequence(t *testing.T) {
	dir := initWorkspace(t)
	_, err := runSeedbatchWithInput(t, pasteRavi, "add", "--repo", dir)
	require.NoError(t, err)

	_, err = runSeedbatch(t, "export", "--repo", dir)
	require.NoError(t, err)
	out, err := runSeedbatch(t, "export", "--repo", dir, "--seq", "0")
	require.NoError(t, err, out)
	assert.Contains(t, out, "002.xlsx")

	assert.Len(t, exportedFiles(t, filepath.Join(dir, "exports")), 2)
}

func TestExport_RefusesToOverwrite(t *testing.T) {
	dir := initWorkspace(t)
	_, err := runSeedbatchWithInput(t, pasteRavi, "add", "--repo", dir)
	require.NoError(t, err)

	_, err = runSeedbatch(t, "export", "--repo", dir)
	require.NoError(t, err)
	out, err := runSeedbatch(t, "export", "--repo", dir)
	require.Error(t, err)
	assert.Contains(t, out, "already exists")
	assert.Contains(t, out, "--seq 0")

	assert.Len(t, exportedFiles(t, filepath.Join(dir, "exports")), 1)
}

func TestExport_InvalidSequence(t *testing.T) {
	dir := initWorkspace(t)
	_, err := runSeedbatchWithInput(t, pasteRavi, "add", "--repo", dir)
	require.NoError(t, err)

	_, err = runSeedbatch(t, "export", "--repo", dir, "--seq", "1000")
	require.Error(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "exports"))
	require.NoError(t, statErr)
	assert.Empty(t, exportedFiles(t, filepath.Join(dir, "exports")))
}
