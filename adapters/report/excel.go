package report

import (
	"github.com/xuri/excelize/v2"

	domstats "weightscope/domain/stats"
	"weightscope/internal/errors"
	"weightscope/ports"
)

const statsSheet = "Statistics"

// XLSXExporter writes the per-class statistics table to a spreadsheet, one
// row per class. A thin downstream consumer of the aggregated statistics,
// like the histogram image.
type XLSXExporter struct{}

// NewXLSXExporter creates a spreadsheet exporter
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Export writes the statistics workbook to path
func (XLSXExporter) Export(rep *domstats.Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", statsSheet); err != nil {
		return errors.RenderError("renaming sheet", err)
	}

	headers := []interface{}{
		"Class", "Count", "Min", "Max", "Mean", "StdDev",
		"Unique", "Diversity", "Verdict",
	}
	if err := f.SetSheetRow(statsSheet, "A1", &headers); err != nil {
		return errors.RenderError("writing header row", err)
	}

	for i, class := range rep.Classes {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.RenderError("computing cell name", err)
		}
		row := []interface{}{
			class.Class.String(),
			class.Count,
			class.Min,
			class.Max,
			class.Mean,
			class.StdDev,
			class.UniqueCount,
			class.DiversityRatio,
			string(class.Verdict),
		}
		if err := f.SetSheetRow(statsSheet, cell, &row); err != nil {
			return errors.RenderError("writing statistics row", err)
		}
	}

	summary := summaryStartRow(len(rep.Classes))
	meta := [][]interface{}{
		{"Run", rep.RunID.String()},
		{"File", rep.SourceFile},
		{"Format", string(rep.Format)},
		{"Total connections", rep.TotalConnections},
		{"Status", string(rep.Status)},
	}
	for i, row := range meta {
		cell, err := excelize.CoordinatesToCellName(1, summary+i)
		if err != nil {
			return errors.RenderError("computing cell name", err)
		}
		r := row
		if err := f.SetSheetRow(statsSheet, cell, &r); err != nil {
			return errors.RenderError("writing summary row", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.RenderError("saving spreadsheet", err)
	}
	return nil
}

// summaryStartRow is the first row below the statistics table, leaving one
// blank row.
func summaryStartRow(classCount int) int {
	return classCount + 3
}

var _ ports.StatsExporter = (*XLSXExporter)(nil)
