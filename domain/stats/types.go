package stats

import (
	"weightscope/domain/core"
	"weightscope/domain/verdict"
	"weightscope/domain/weights"
)

// ClassStatistics describes the weight distribution of one connection class.
//
// INVARIANTS:
// - Count > 0 (empty classes are omitted from aggregation output)
// - UniqueCount <= Count
// - DiversityRatio in [0.0, 1.0]
// - StdDev is the population standard deviation (divide by Count)
type ClassStatistics struct {
	Class          weights.ConnectionClass `json:"class"`
	Count          int                     `json:"count"`
	Min            float64                 `json:"min"`
	Max            float64                 `json:"max"`
	Mean           float64                 `json:"mean"`
	StdDev         float64                 `json:"std_dev"`
	UniqueCount    int                     `json:"unique_count"`
	DiversityRatio float64                 `json:"diversity_ratio"`

	// UniqueValues holds the distinct values sorted ascending. Distinctness
	// is exact floating-point equality, no tolerance or bucketing.
	UniqueValues []float64 `json:"unique_values,omitempty"`

	// Values backs the statistics in decode order, kept for histogram
	// rendering. Never mutated after aggregation.
	Values []float64 `json:"-"`
}

// ClassAssessment pairs a class's statistics with its diversity verdict
type ClassAssessment struct {
	ClassStatistics
	Verdict verdict.ClassVerdict `json:"verdict"`
}

// Report is the complete outcome of one analysis run. Built fresh per run
// from a single input file and discarded after rendering.
type Report struct {
	RunID            core.RunID           `json:"run_id"`
	SourceFile       string               `json:"source_file"`
	Format           weights.Format       `json:"format"`
	TotalConnections int                  `json:"total_connections"`
	DeclaredCount    uint64               `json:"declared_count,omitempty"`
	Classes          []ClassAssessment    `json:"classes"`
	Warnings         []weights.Warning    `json:"warnings,omitempty"`
	Status           verdict.ReportStatus `json:"status"`
	CreatedAt        core.Timestamp       `json:"created_at"`
}
