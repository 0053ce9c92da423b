package export

import (
	"fmt"
	"io"
	"sync"

	"github.com/lk2023060901/yt-scraper-api/internal/video/types"
	"github.com/unidoc/unioffice/common/license"
	"github.com/unidoc/unioffice/spreadsheet"
)

// ContentType is the MIME type of the generated workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Extension is appended to every download filename
const Extension = ".xlsx"

// SheetName names the single worksheet
const SheetName = "Videos"

// Headers is the fixed column order, one per public field
var Headers = []string{
	"Video Title",
	"Channel Name",
	"Video Link",
	"Upload Date",
	"Views",
	"Channel Subscribers",
}

var licenseOnce sync.Once

// SpreadsheetExporter writes enriched videos as an xlsx workbook
type SpreadsheetExporter struct{}

// NewSpreadsheetExporter creates an exporter, registering the unioffice
// metered license key on first use. An empty key leaves unioffice unlicensed.
func NewSpreadsheetExporter(licenseKey string) (*SpreadsheetExporter, error) {
	var err error
	if licenseKey != "" {
		licenseOnce.Do(func() {
			err = license.SetMeteredKey(licenseKey)
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to set unioffice license: %w", err)
	}
	return &SpreadsheetExporter{}, nil
}

// Row returns the cell values for one video in column order
func Row(v *types.EnrichedVideo) []string {
	return []string{
		v.VideoTitle,
		v.ChannelName,
		v.VideoLink,
		v.UploadDate,
		v.Views,
		v.ChannelSubscribers,
	}
}

func (e *SpreadsheetExporter) build(videos []*types.EnrichedVideo) *spreadsheet.Workbook {
	wb := spreadsheet.New()
	sheet := wb.AddSheet()
	sheet.SetName(SheetName)

	header := sheet.AddRow()
	for _, h := range Headers {
		header.AddCell().SetString(h)
	}

	for _, v := range videos {
		row := sheet.AddRow()
		for _, value := range Row(v) {
			row.AddCell().SetString(value)
		}
	}
	return wb
}

// Write encodes the workbook to w
func (e *SpreadsheetExporter) Write(w io.Writer, videos []*types.EnrichedVideo) error {
	wb := e.build(videos)
	defer wb.Close()

	if err := wb.Save(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteFile saves the workbook to path
func (e *SpreadsheetExporter) WriteFile(path string, videos []*types.EnrichedVideo) error {
	wb := e.build(videos)
	defer wb.Close()

	if err := wb.SaveToFile(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
