package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domstats "weightscope/domain/stats"
	"weightscope/domain/verdict"
	"weightscope/domain/weights"
	"weightscope/internal/testkit"
)

func plottableClass(class weights.ConnectionClass, values []float64) domstats.ClassAssessment {
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	return domstats.ClassAssessment{
		ClassStatistics: domstats.ClassStatistics{
			Class: class, Count: len(values),
			Mean: mean, Values: values,
		},
		Verdict: verdict.VerdictGood,
	}
}

func TestHistogramPlotter_WritesCombinedImage(t *testing.T) {
	kit := testkit.New(3)
	rep := sampleReport(verdict.StatusOK,
		plottableClass(weights.ClassExcitatory, kit.DiverseValues(200, 0.4, 0.1)),
		plottableClass(weights.ClassInhibitory, kit.DiverseValues(150, -0.3, 0.05)),
	)
	outDir := filepath.Join(t.TempDir(), "plots")

	path, err := NewHistogramPlotter(50).Render(rep, outDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, HistogramFileName), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestHistogramPlotter_CapsAtFourPanels(t *testing.T) {
	kit := testkit.New(4)
	classes := []weights.ConnectionClass{
		weights.ClassExcitatory, weights.ClassInhibitory,
		weights.ClassDopaminergicLike, weights.ClassInhibitoryLike,
		weights.ClassOther, // fifth class is silently dropped from the image
	}
	var assessments []domstats.ClassAssessment
	for _, c := range classes {
		assessments = append(assessments, plottableClass(c, kit.DiverseValues(50, 0.5, 0.1)))
	}
	rep := sampleReport(verdict.StatusOK, assessments...)

	path, err := NewHistogramPlotter(20).Render(rep, t.TempDir())
	require.NoError(t, err)
	assert.NotEmpty(t, path)
}

func TestHistogramPlotter_NoClassesNoImage(t *testing.T) {
	rep := sampleReport(verdict.StatusOK)
	outDir := filepath.Join(t.TempDir(), "plots")

	path, err := NewHistogramPlotter(50).Render(rep, outDir)
	require.NoError(t, err)
	assert.Empty(t, path)

	_, statErr := os.Stat(filepath.Join(outDir, HistogramFileName))
	assert.True(t, os.IsNotExist(statErr))
}
