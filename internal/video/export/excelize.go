package export

import (
	"fmt"
	"io"

	"github.com/lk2023060901/yt-scraper-api/internal/video/types"
	"github.com/xuri/excelize/v2"
)

// Writer serializes enriched videos as an xlsx workbook
type Writer interface {
	Write(w io.Writer, videos []*types.EnrichedVideo) error
	WriteFile(path string, videos []*types.EnrichedVideo) error
}

var (
	_ Writer = (*SpreadsheetExporter)(nil)
	_ Writer = (*ExcelizeExporter)(nil)
)

// NewWriter picks the unioffice exporter when a license key is configured
// and the license-free excelize exporter otherwise.
func NewWriter(licenseKey string) (Writer, error) {
	if licenseKey == "" {
		return NewExcelizeExporter(), nil
	}
	return NewSpreadsheetExporter(licenseKey)
}

// ExcelizeExporter writes the same layout as SpreadsheetExporter without
// needing a license.
type ExcelizeExporter struct{}

func NewExcelizeExporter() *ExcelizeExporter {
	return &ExcelizeExporter{}
}

func (e *ExcelizeExporter) build(videos []*types.EnrichedVideo) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := Headers
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, v := range videos {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		row := Row(v)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	return f, nil
}

// Write encodes the workbook to w
func (e *ExcelizeExporter) Write(w io.Writer, videos []*types.EnrichedVideo) error {
	f, err := e.build(videos)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteFile saves the workbook to path
func (e *ExcelizeExporter) WriteFile(path string, videos []*types.EnrichedVideo) error {
	f, err := e.build(videos)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
