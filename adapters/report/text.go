package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	domstats "weightscope/domain/stats"
	"weightscope/domain/verdict"
	"weightscope/internal/errors"
	"weightscope/ports"
)

// TextRenderer writes the per-class statistics report. Output is
// deterministic for a given report, so tests assert on it directly.
type TextRenderer struct{}

// NewTextRenderer creates a text report renderer
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render writes the complete textual report
func (TextRenderer) Render(w io.Writer, rep *domstats.Report) error {
	var b strings.Builder

	b.WriteString("WEIGHT STATISTICS\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "Run:  %s\n", rep.RunID)
	fmt.Fprintf(&b, "File: %s (%s)\n", rep.SourceFile, rep.Format)
	fmt.Fprintf(&b, "Total connections analyzed: %s\n", groupDigits(rep.TotalConnections))

	for _, warning := range rep.Warnings {
		fmt.Fprintf(&b, "WARNING: %s\n", warning.Message)
	}

	for _, class := range rep.Classes {
		fmt.Fprintf(&b, "\n%s (%s connections)\n",
			strings.ToUpper(class.Class.String()), groupDigits(class.Count))
		fmt.Fprintf(&b, "   Range: [%.4f, %.4f]\n", class.Min, class.Max)
		fmt.Fprintf(&b, "   Mean: %.4f ± %.4f\n", class.Mean, class.StdDev)
		fmt.Fprintf(&b, "   Unique values: %s\n", groupDigits(class.UniqueCount))
		fmt.Fprintf(&b, "   Diversity: %.1f%%\n", class.DiversityRatio*100)
		b.WriteString("   " + verdictLine(class) + "\n")
	}

	b.WriteString("\n")
	switch rep.Status {
	case verdict.StatusProblem:
		b.WriteString("PROBLEM DETECTED: uniform weights found\n")
		b.WriteString("   This indicates training is not working correctly\n")
		b.WriteString("   Recommendation: check plasticity configuration and learning rates\n")
	default:
		b.WriteString("ANALYSIS COMPLETE: weights show good diversity\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.RenderError("writing text report", err)
	}
	return nil
}

// verdictLine formats the per-class verdict with its supporting values.
func verdictLine(class domstats.ClassAssessment) string {
	switch class.Verdict {
	case verdict.VerdictUniform:
		return fmt.Sprintf("PROBLEM: all weights are identical (%.4f)", class.UniqueValues[0])
	case verdict.VerdictLowDiversity:
		return fmt.Sprintf("WARNING: very low weight diversity\n   Values: %s",
			formatValues(class.UniqueValues))
	default:
		return "Good weight diversity"
	}
}

func formatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// groupDigits renders n with thousands separators (1234567 -> "1,234,567").
func groupDigits(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

var _ ports.ReportRenderer = (*TextRenderer)(nil)
