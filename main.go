package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"weightscope/adapters/report"
	"weightscope/app"
	domstats "weightscope/domain/stats"
	"weightscope/internal"
	"weightscope/internal/config"
	"weightscope/internal/errors"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	rootCmd := &cobra.Command{
		Use:   "weightscope",
		Short: "Diagnose connection weight health in simulation weight dumps",
	}

	rootCmd.AddCommand(newAnalyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var (
		dir      string
		plotsDir string
		xlsxPath string
		all      bool
		noPlots  bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze weight diversity in a weight file",
		Long: `Analyze the diversity of trained connection weights.

With no arguments the most recently modified *_weights.bin / *_weights.txt
file in the scan directory is analyzed. Pass a file path to analyze a
specific file, or --all to analyze every candidate in the directory.

Example: weightscope analyze --dir build/models --xlsx report.xlsx`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if dir != "" {
				cfg.Paths.WeightsDir = dir
			}
			if plotsDir != "" {
				cfg.Paths.PlotsDir = plotsDir
			}
			if xlsxPath != "" {
				cfg.Paths.XLSXFile = xlsxPath
			}
			// A direct file argument needs no scan directory.
			if len(args) == 1 && cfg.Paths.WeightsDir == "" {
				cfg.Paths.WeightsDir = "."
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := internal.NewDefaultLogger()
			service := app.NewAnalyzerService(cfg, logger)

			var reports []*domstats.Report
			switch {
			case len(args) == 1:
				rep, err := service.AnalyzeFile(args[0])
				if err != nil {
					return err
				}
				reports = append(reports, rep)
			case all:
				reps, err := service.AnalyzeAll()
				if err != nil {
					if errors.HasCode(err, errors.CodeNoCandidates) {
						fmt.Println(err.Error())
						return nil
					}
					return err
				}
				reports = reps
			default:
				rep, err := service.AnalyzeLatest()
				if err != nil {
					if errors.HasCode(err, errors.CodeNoCandidates) {
						fmt.Println(err.Error())
						return nil
					}
					return err
				}
				reports = append(reports, rep)
			}

			return renderReports(cfg, logger, reports, !noPlots)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory scanned for weight files (overrides WEIGHTS_DIR)")
	cmd.Flags().StringVar(&plotsDir, "plots-dir", "", "Directory for the histogram image (overrides PLOTS_DIR)")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Write per-class statistics to this spreadsheet")
	cmd.Flags().BoolVar(&all, "all", false, "Analyze every candidate file, not just the newest")
	cmd.Flags().BoolVar(&noPlots, "no-plots", false, "Skip histogram image rendering")

	return cmd
}

func renderReports(cfg *config.Config, logger *internal.Logger, reports []*domstats.Report, plots bool) error {
	text := report.NewTextRenderer()
	hist := report.NewHistogramPlotter(cfg.Report.HistogramBins)
	xlsx := report.NewXLSXExporter()

	for _, rep := range reports {
		if err := text.Render(os.Stdout, rep); err != nil {
			return err
		}
		if plots {
			path, err := hist.Render(rep, cfg.Paths.PlotsDir)
			if err != nil {
				logger.Error("histogram rendering failed: %v", err)
			} else if path != "" {
				fmt.Printf("\nHistogram saved to: %s\n", path)
			}
		}
		if cfg.Paths.XLSXFile != "" {
			path := xlsxPathFor(cfg.Paths.XLSXFile, len(reports), rep)
			if err := xlsx.Export(rep, path); err != nil {
				logger.Error("spreadsheet export failed: %v", err)
			} else {
				fmt.Printf("Statistics exported to: %s\n", path)
			}
		}
	}
	return nil
}

// xlsxPathFor keeps batch exports from overwriting each other by deriving a
// per-source workbook name when more than one report is rendered.
func xlsxPathFor(base string, reportCount int, rep *domstats.Report) string {
	if reportCount <= 1 {
		return base
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	source := strings.TrimSuffix(filepath.Base(rep.SourceFile), filepath.Ext(rep.SourceFile))
	return fmt.Sprintf("%s_%s%s", stem, source, ext)
}
