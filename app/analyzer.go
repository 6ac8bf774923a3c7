package app

import (
	"os"

	"weightscope/adapters/decode"
	"weightscope/domain/core"
	domstats "weightscope/domain/stats"
	"weightscope/domain/weights"
	"weightscope/internal"
	"weightscope/internal/analysis"
	"weightscope/internal/config"
	"weightscope/internal/errors"
)

// AnalyzerService runs the decode -> classify -> aggregate -> diagnose
// pipeline for weight files. Each call opens exactly one file for sequential
// read and releases it on every exit path; nothing is shared between runs.
type AnalyzerService struct {
	cfg *config.Config
	log *internal.Logger
	agg analysis.Aggregator
}

// NewAnalyzerService creates an analyzer with the given configuration
func NewAnalyzerService(cfg *config.Config, logger *internal.Logger) *AnalyzerService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &AnalyzerService{cfg: cfg, log: logger}
}

// AnalyzeFile analyzes one weight file. Fatal decode conditions (missing
// file, text parse error) return an error and no report; tolerant conditions
// surface as warnings on the report.
func (s *AnalyzerService) AnalyzeFile(path string) (*domstats.Report, error) {
	runID := core.NewRunID()
	s.log.Info("run %s: analyzing %s", runID, path)

	decoder, err := decode.ForPath(path, s.cfg.Decode)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.FileNotFound(path)
		}
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	result, err := decoder.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	for _, warning := range result.Warnings {
		s.log.Warn("run %s: %s", runID, warning.Message)
	}

	rules := weights.RulesFor(decoder.Format(), s.cfg.Classify.Policy())
	set := weights.Classify(result.Records, rules)

	classStats := s.agg.Aggregate(set)
	assessments, status := analysis.Diagnose(classStats, s.cfg.Diagnostic.Policy())

	s.log.Debug("run %s: %d connections across %d classes, status %s",
		runID, set.Total(), len(assessments), status)

	return &domstats.Report{
		RunID:            runID,
		SourceFile:       path,
		Format:           decoder.Format(),
		TotalConnections: set.Total(),
		DeclaredCount:    result.DeclaredCount,
		Classes:          assessments,
		Warnings:         result.Warnings,
		Status:           status,
		CreatedAt:        core.Now(),
	}, nil
}

// AnalyzeLatest analyzes the most recently modified candidate file in the
// configured scan directory.
func (s *AnalyzerService) AnalyzeLatest() (*domstats.Report, error) {
	path, err := decode.ScanLatest(s.cfg.Paths.WeightsDir)
	if err != nil {
		return nil, err
	}
	return s.AnalyzeFile(path)
}

// AnalyzeAll analyzes every candidate file, newest first. A failing file is
// logged and skipped; the batch continues. The error is non-nil only when
// the scan itself fails or no file could be analyzed at all.
func (s *AnalyzerService) AnalyzeAll() ([]*domstats.Report, error) {
	paths, err := decode.ScanAll(s.cfg.Paths.WeightsDir)
	if err != nil {
		return nil, err
	}

	var reports []*domstats.Report
	var lastErr error
	for _, path := range paths {
		rep, err := s.AnalyzeFile(path)
		if err != nil {
			s.log.Error("skipping %s: %v", path, err)
			lastErr = err
			continue
		}
		reports = append(reports, rep)
	}
	if len(reports) == 0 && lastErr != nil {
		return nil, errors.Wrap(lastErr, "all candidate files failed to analyze")
	}
	return reports, nil
}
