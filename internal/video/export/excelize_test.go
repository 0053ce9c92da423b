package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRows(t *testing.T, f *excelize.File) [][]string {
	t.Helper()

	require.Equal(t, []string{SheetName}, f.GetSheetList())
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	return rows
}

func TestExcelizeExporter_WriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "videos.xlsx")
	require.NoError(t, NewExcelizeExporter().WriteFile(path, sampleVideos))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows := readRows(t, f)
	require.Len(t, rows, len(sampleVideos)+1)

	assert.Equal(t, Headers, rows[0])
	assert.Equal(t, []string{
		"Cats compilation",
		"Cat Channel",
		"https://www.youtube.com/watch?v=vid1",
		"2023-05-01T10:00:00Z",
		"1234",
		"5678",
	}, rows[1])

	// sentinel cells are written verbatim
	assert.Equal(t, "N/A", rows[2][4])
	assert.Equal(t, "N/A", rows[2][5])
	assert.Equal(t, Row(sampleVideos[1]), rows[2])
}

func TestExcelizeExporter_WriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewExcelizeExporter().Write(&buf, nil))
	assert.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows := readRows(t, f)
	require.Len(t, rows, 1)
	assert.Equal(t, Headers, rows[0])
}

func TestNewWriter(t *testing.T) {
	w, err := NewWriter("")
	require.NoError(t, err)
	assert.IsType(t, &ExcelizeExporter{}, w)

	// an unlicensed deployment can still produce a download
	path := filepath.Join(t.TempDir(), "videos.xlsx")
	assert.NoError(t, w.WriteFile(path, sampleVideos))
}
