package analysis

import (
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	domstats "weightscope/domain/stats"
	"weightscope/domain/weights"
)

// Aggregator computes per-class descriptive statistics from a classified
// weight set. Pure computation: no I/O, deterministic given its input.
type Aggregator struct{}

// Aggregate returns statistics for every non-empty class, in the order the
// classes were first seen during decode. Classes with zero values are
// omitted entirely.
func (Aggregator) Aggregate(set *weights.ClassifiedSet) []domstats.ClassStatistics {
	var out []domstats.ClassStatistics
	for _, class := range set.Classes() {
		values := set.Values(class)
		if len(values) == 0 {
			continue
		}

		mean, _ := stats.Mean(values)
		stdDev, _ := stats.StandardDeviationPopulation(values)
		unique := distinctValues(values)

		out = append(out, domstats.ClassStatistics{
			Class:          class,
			Count:          len(values),
			Min:            floats.Min(values),
			Max:            floats.Max(values),
			Mean:           mean,
			StdDev:         stdDev,
			UniqueCount:    len(unique),
			DiversityRatio: float64(len(unique)) / float64(len(values)),
			UniqueValues:   unique,
			Values:         values,
		})
	}
	return out
}

// distinctValues collects the distinct elements of values under exact
// floating-point equality, sorted ascending.
func distinctValues(values []float64) []float64 {
	seen := make(map[float64]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	out := make([]float64, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}
