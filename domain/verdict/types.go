package verdict

// ClassVerdict represents the diversity health of one connection class
type ClassVerdict string

const (
	VerdictUniform      ClassVerdict = "uniform"       // all weights bit-for-bit identical
	VerdictLowDiversity ClassVerdict = "low_diversity" // fewer distinct values than the policy minimum
	VerdictGood         ClassVerdict = "good"
)

// ReportStatus represents the overall outcome of an analysis run
type ReportStatus string

const (
	StatusProblem ReportStatus = "problem"
	StatusOK      ReportStatus = "ok"
)

// Policy holds the thresholds behind the diversity diagnostic. The
// low-diversity bound is an absolute distinct-value count, not a ratio: a
// class with 2 records and 2 distinct values still triggers low_diversity.
type Policy struct {
	LowDiversityMin int // distinct values required for a good verdict
}

// DefaultPolicy returns the standard diagnostic thresholds
func DefaultPolicy() Policy {
	return Policy{LowDiversityMin: 5}
}

// ForClass derives the verdict for a class from its distinct-value count.
func (p Policy) ForClass(uniqueCount int) ClassVerdict {
	switch {
	case uniqueCount == 1:
		return VerdictUniform
	case uniqueCount < p.LowDiversityMin:
		return VerdictLowDiversity
	default:
		return VerdictGood
	}
}

// Overall reduces per-class verdicts to the report status. Any uniform class
// is a problem; low diversity alone never is.
func Overall(verdicts []ClassVerdict) ReportStatus {
	for _, v := range verdicts {
		if v == VerdictUniform {
			return StatusProblem
		}
	}
	return StatusOK
}
