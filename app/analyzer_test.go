package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weightscope/domain/verdict"
	"weightscope/domain/weights"
	"weightscope/internal"
	"weightscope/internal/config"
	"weightscope/internal/errors"
	"weightscope/internal/testkit"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		Paths: config.PathConfig{WeightsDir: dir, PlotsDir: filepath.Join(dir, "plots")},
		Decode: config.DecodeConfig{
			MaxBinaryRecords: 50000,
			MaxTextLines:     100000,
		},
		Classify: config.ClassifyConfig{
			DopaminergicWeight: 0.6,
			InhibitoryWeight:   -0.25,
			Tolerance:          0.001,
		},
		Diagnostic: config.DiagnosticConfig{LowDiversityMin: 5},
		Report:     config.ReportConfig{HistogramBins: 50},
	}
}

func newTestService(dir string) *AnalyzerService {
	return NewAnalyzerService(testConfig(dir), internal.NewLogger(internal.LogLevelError))
}

func TestAnalyzeFile_UniformBinaryIsProblem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run1_weights.bin")
	require.NoError(t, testkit.WriteBinaryFile(path, testkit.UniformValues(100, 0.6)))

	rep, err := newTestService(dir).AnalyzeFile(path)
	require.NoError(t, err)

	assert.Equal(t, weights.FormatBinary, rep.Format)
	assert.Equal(t, 100, rep.TotalConnections)
	assert.Equal(t, uint64(100), rep.DeclaredCount)
	assert.False(t, rep.RunID.String() == "")
	require.Len(t, rep.Classes, 1)
	assert.Equal(t, weights.ClassDopaminergicLike, rep.Classes[0].Class)
	assert.Equal(t, verdict.VerdictUniform, rep.Classes[0].Verdict)
	assert.Equal(t, verdict.StatusProblem, rep.Status)
}

func TestAnalyzeFile_DiverseTextIsOK(t *testing.T) {
	dir := t.TempDir()
	kit := testkit.New(11)
	records := testkit.LabeledRecords(kit.DiverseValues(200, 0.4, 0.15), "cortical_pyramidal")
	path := filepath.Join(dir, "run1_weights.txt")
	require.NoError(t, testkit.WriteTextFile(path, records))

	rep, err := newTestService(dir).AnalyzeFile(path)
	require.NoError(t, err)

	assert.Equal(t, weights.FormatText, rep.Format)
	assert.Equal(t, 200, rep.TotalConnections)
	require.Len(t, rep.Classes, 1)
	assert.Equal(t, weights.ClassExcitatory, rep.Classes[0].Class)
	assert.Equal(t, verdict.VerdictGood, rep.Classes[0].Verdict)
	assert.Equal(t, verdict.StatusOK, rep.Status)
}

func TestAnalyzeFile_MissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := newTestService(dir).AnalyzeFile(filepath.Join(dir, "absent_weights.bin"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeFileNotFound, errors.GetCode(err))
}

func TestAnalyzeFile_ParseErrorYieldsNoReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad_weights.txt")
	content := "cortical_pyramidal_1,n2,0.45\na,b,not_a_number\n"
	require.NoError(t, testkit.WriteRawFile(path, []byte(content)))

	rep, err := newTestService(dir).AnalyzeFile(path)
	require.Error(t, err)
	assert.Nil(t, rep)
	assert.Equal(t, errors.CodeParseError, errors.GetCode(err))
}

func TestAnalyzeLatest_PicksNewestCandidate(t *testing.T) {
	dir := t.TempDir()
	older := filepath.Join(dir, "old_weights.bin")
	newer := filepath.Join(dir, "new_weights.bin")
	require.NoError(t, testkit.WriteBinaryFile(older, testkit.UniformValues(10, 0.6)))
	require.NoError(t, testkit.WriteBinaryFile(newer, testkit.New(1).DiverseValues(10, 0.4, 0.1)))

	base := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(older, base.Add(time.Minute), base.Add(time.Minute)))
	require.NoError(t, os.Chtimes(newer, base, base))

	// "older" now carries the later mtime; lexical order must not matter.
	rep, err := newTestService(dir).AnalyzeLatest()
	require.NoError(t, err)
	assert.Equal(t, older, rep.SourceFile)
	assert.Equal(t, verdict.StatusProblem, rep.Status)
}

func TestAnalyzeLatest_EmptyDirectory(t *testing.T) {
	_, err := newTestService(t.TempDir()).AnalyzeLatest()
	require.Error(t, err)
	assert.Equal(t, errors.CodeNoCandidates, errors.GetCode(err))
}

func TestAnalyzeAll_ContinuesPastFailingFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good_weights.bin")
	bad := filepath.Join(dir, "bad_weights.txt")
	require.NoError(t, testkit.WriteBinaryFile(good, testkit.New(2).DiverseValues(50, 0.4, 0.1)))
	require.NoError(t, testkit.WriteRawFile(bad, []byte("x,y,oops\n")))

	reports, err := newTestService(dir).AnalyzeAll()
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, good, reports[0].SourceFile)
}

func TestAnalyzeAll_AllFilesFailing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, testkit.WriteRawFile(filepath.Join(dir, "bad_weights.txt"), []byte("x,y,oops\n")))

	_, err := newTestService(dir).AnalyzeAll()
	require.Error(t, err)
	assert.Equal(t, errors.CodeParseError, errors.GetCode(err))
}

func TestAnalyzeFile_TruncationWarningOnReport(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.Decode.MaxBinaryRecords = 20
	path := filepath.Join(dir, "big_weights.bin")
	require.NoError(t, testkit.WriteBinaryFile(path, testkit.New(3).DiverseValues(100, 0.4, 0.1)))

	service := NewAnalyzerService(cfg, internal.NewLogger(internal.LogLevelError))
	rep, err := service.AnalyzeFile(path)
	require.NoError(t, err)

	assert.Equal(t, 20, rep.TotalConnections)
	assert.Equal(t, uint64(100), rep.DeclaredCount)
	require.Len(t, rep.Warnings, 1)
	assert.Equal(t, weights.WarningTruncated, rep.Warnings[0].Code)
}
