package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lk2023060901/yt-scraper-api/internal/video/types"
	"github.com/unidoc/unioffice/spreadsheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleVideos = []*types.EnrichedVideo{
	{
		VideoTitle:         "Cats compilation",
		ChannelName:        "Cat Channel",
		VideoLink:          "https://www.youtube.com/watch?v=vid1",
		UploadDate:         "2023-05-01T10:00:00Z",
		Views:              "1234",
		ChannelSubscribers: "5678",
	},
	{
		VideoTitle:         "More cats",
		ChannelName:        "Hidden Channel",
		VideoLink:          "https://www.youtube.com/watch?v=vid2",
		UploadDate:         "2023-05-02T10:00:00Z",
		Views:              types.Unavailable,
		ChannelSubscribers: types.Unavailable,
	},
}

func TestRow(t *testing.T) {
	row := Row(sampleVideos[0])
	require.Len(t, row, len(Headers))
	assert.Equal(t, []string{
		"Cats compilation",
		"Cat Channel",
		"https://www.youtube.com/watch?v=vid1",
		"2023-05-01T10:00:00Z",
		"1234",
		"5678",
	}, row)
}

// newLicensedExporter skips unless a unioffice key is available
func newLicensedExporter(t *testing.T) *SpreadsheetExporter {
	t.Helper()

	key := os.Getenv("UNIOFFICE_LICENSE_KEY")
	if key == "" {
		t.Skip("UNIOFFICE_LICENSE_KEY not set")
	}
	exporter, err := NewSpreadsheetExporter(key)
	require.NoError(t, err)
	return exporter
}

func TestSpreadsheetExporter_WriteFile(t *testing.T) {
	exporter := newLicensedExporter(t)

	path := filepath.Join(t.TempDir(), "videos.xlsx")
	require.NoError(t, exporter.WriteFile(path, sampleVideos))

	wb, err := spreadsheet.Open(path)
	require.NoError(t, err)
	defer wb.Close()

	sheets := wb.Sheets()
	require.Len(t, sheets, 1)
	assert.Equal(t, SheetName, sheets[0].Name())

	rows := sheets[0].Rows()
	require.Len(t, rows, len(sampleVideos)+1)

	for i, cell := range rows[0].Cells() {
		assert.Equal(t, Headers[i], cell.GetString())
	}
	for i, cell := range rows[2].Cells() {
		assert.Equal(t, Row(sampleVideos[1])[i], cell.GetString())
	}
}

func TestSpreadsheetExporter_WriteEmpty(t *testing.T) {
	exporter := newLicensedExporter(t)

	var buf bytes.Buffer
	require.NoError(t, exporter.Write(&buf, nil))
	assert.NotZero(t, buf.Len())

	wb, err := spreadsheet.Read(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	defer wb.Close()

	require.Len(t, wb.Sheets(), 1)
	assert.Len(t, wb.Sheets()[0].Rows(), 1)
}
