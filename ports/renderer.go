package ports

import (
	"io"

	"weightscope/domain/stats"
)

// ReportRenderer writes the textual analysis report
type ReportRenderer interface {
	Render(w io.Writer, report *stats.Report) error
}

// HistogramRenderer draws the combined per-class histogram image and
// returns the path of the written file
type HistogramRenderer interface {
	Render(report *stats.Report, outputDir string) (string, error)
}

// StatsExporter persists the per-class statistics table to an external
// format (spreadsheet)
type StatsExporter interface {
	Export(report *stats.Report, path string) error
}
