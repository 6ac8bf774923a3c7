package analysis

import (
	domstats "weightscope/domain/stats"
	"weightscope/domain/verdict"
)

// Diagnose applies the diversity policy to aggregated statistics. The
// returned assessments keep the input order; the status is problem iff any
// class is uniform.
func Diagnose(classes []domstats.ClassStatistics, policy verdict.Policy) ([]domstats.ClassAssessment, verdict.ReportStatus) {
	assessments := make([]domstats.ClassAssessment, 0, len(classes))
	verdicts := make([]verdict.ClassVerdict, 0, len(classes))
	for _, cs := range classes {
		v := policy.ForClass(cs.UniqueCount)
		assessments = append(assessments, domstats.ClassAssessment{
			ClassStatistics: cs,
			Verdict:         v,
		})
		verdicts = append(verdicts, v)
	}
	return assessments, verdict.Overall(verdicts)
}
