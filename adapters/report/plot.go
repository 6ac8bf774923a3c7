package report

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	domstats "weightscope/domain/stats"
	"weightscope/internal/errors"
	"weightscope/ports"
)

// HistogramFileName is the combined image written into the output directory.
const HistogramFileName = "weight_distribution.png"

// Histograms beyond the fourth class are dropped from the image; the classes
// remain in the text report.
const maxHistogramPanels = 4

const (
	panelRows = 2
	panelCols = 2
)

var panelColors = []color.Color{
	color.RGBA{B: 255, A: 255},         // blue
	color.RGBA{R: 255, A: 255},         // red
	color.RGBA{G: 170, A: 255},         // green
	color.RGBA{R: 255, G: 165, A: 255}, // orange
}

// HistogramPlotter draws one frequency histogram per class, up to four
// classes, into a single combined PNG with a dashed mean marker per panel.
type HistogramPlotter struct {
	bins int
}

// NewHistogramPlotter creates a plotter with the given bin count per panel
func NewHistogramPlotter(bins int) *HistogramPlotter {
	return &HistogramPlotter{bins: bins}
}

// Render writes the combined histogram image into outputDir, creating the
// directory if absent, and returns the image path. A report with no classes
// produces no image and an empty path.
func (h *HistogramPlotter) Render(rep *domstats.Report, outputDir string) (string, error) {
	if len(rep.Classes) == 0 {
		return "", nil
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", errors.RenderError("creating plot directory", err)
	}

	panels := make([][]*plot.Plot, panelRows)
	for row := range panels {
		panels[row] = make([]*plot.Plot, panelCols)
	}
	for i, class := range rep.Classes {
		if i >= maxHistogramPanels {
			break
		}
		p, err := h.classPanel(class, panelColors[i%len(panelColors)])
		if err != nil {
			return "", err
		}
		panels[i/panelCols][i%panelCols] = p
	}

	img := vgimg.New(30*vg.Centimeter, 25*vg.Centimeter)
	canvases := plot.Align(panels, draw.Tiles{
		Rows: panelRows,
		Cols: panelCols,
		PadX: vg.Millimeter * 5,
		PadY: vg.Millimeter * 5,
	}, draw.New(img))
	for row := range panels {
		for col := range panels[row] {
			if panels[row][col] != nil {
				panels[row][col].Draw(canvases[row][col])
			}
		}
	}

	path := filepath.Join(outputDir, HistogramFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", errors.RenderError("creating histogram image", err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return "", errors.RenderError("encoding histogram image", err)
	}
	return path, nil
}

// classPanel builds the histogram panel for one class.
func (h *HistogramPlotter) classPanel(class domstats.ClassAssessment, fill color.Color) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s weights (%s connections)",
		class.Class, groupDigits(class.Count))
	p.X.Label.Text = "Weight value"
	p.Y.Label.Text = "Frequency"

	hist, err := plotter.NewHist(plotter.Values(class.Values), h.bins)
	if err != nil {
		return nil, errors.RenderError("building histogram", err)
	}
	hist.FillColor = fill
	p.Add(hist)

	// Dashed vertical marker at the class mean.
	_, _, _, ymax := hist.DataRange()
	mean, err := plotter.NewLine(plotter.XYs{
		{X: class.Mean, Y: 0},
		{X: class.Mean, Y: ymax},
	})
	if err != nil {
		return nil, errors.RenderError("building mean marker", err)
	}
	mean.LineStyle.Color = color.RGBA{R: 200, A: 255}
	mean.LineStyle.Width = vg.Points(1.5)
	mean.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(mean)
	p.Legend.Add(fmt.Sprintf("mean %.3f", class.Mean), mean)

	return p, nil
}

var _ ports.HistogramRenderer = (*HistogramPlotter)(nil)
