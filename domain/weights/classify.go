package weights

import (
	"math"
	"strings"
)

// Rule pairs a predicate with the class assigned on match. Rules are
// evaluated in order, first match wins, so callers can swap or re-tune a
// policy without touching the classifier itself.
type Rule struct {
	Class ConnectionClass
	Match func(WeightRecord) bool
}

// ClassifyPolicy holds the tunable constants behind the built-in value rules.
type ClassifyPolicy struct {
	DopaminergicWeight float64 // canonical dopaminergic connection weight
	InhibitoryWeight   float64 // canonical inhibitory connection weight
	Tolerance          float64 // absolute distance treated as "equal" to a canonical weight
}

// DefaultClassifyPolicy returns the canonical weight constants used by the
// simulation engine's plasticity model.
func DefaultClassifyPolicy() ClassifyPolicy {
	return ClassifyPolicy{
		DopaminergicWeight: 0.6,
		InhibitoryWeight:   -0.25,
		Tolerance:          0.001,
	}
}

// ValueRules classifies records by numeric value alone, for formats that
// carry no connection identity.
func ValueRules(p ClassifyPolicy) []Rule {
	return []Rule{
		{Class: ClassDopaminergicLike, Match: func(r WeightRecord) bool {
			return math.Abs(r.Value-p.DopaminergicWeight) < p.Tolerance
		}},
		{Class: ClassInhibitoryLike, Match: func(r WeightRecord) bool {
			return math.Abs(r.Value-p.InhibitoryWeight) < p.Tolerance
		}},
		{Class: ClassExcitatory, Match: func(r WeightRecord) bool {
			return r.Value > 0
		}},
		{Class: ClassInhibitory, Match: func(r WeightRecord) bool {
			return true
		}},
	}
}

// LabelRules classifies records by substrings of the source label. Weight
// sign is irrelevant here.
func LabelRules() []Rule {
	bySource := func(substr string) func(WeightRecord) bool {
		return func(r WeightRecord) bool {
			return strings.Contains(r.Source, substr)
		}
	}
	return []Rule{
		{Class: ClassDopaminergic, Match: bySource("dopaminergic")},
		{Class: ClassInhibitory, Match: bySource("cortical_interneuron")},
		{Class: ClassExcitatory, Match: bySource("cortical_pyramidal")},
		{Class: ClassOther, Match: func(WeightRecord) bool { return true }},
	}
}

// RulesFor returns the built-in rule set for a decode format.
func RulesFor(format Format, p ClassifyPolicy) []Rule {
	if format == FormatBinary {
		return ValueRules(p)
	}
	return LabelRules()
}

// Classify assigns every record to the class of the first matching rule.
// Records matching no rule fall through to ClassOther.
func Classify(records []WeightRecord, rules []Rule) *ClassifiedSet {
	set := NewClassifiedSet()
	for _, rec := range records {
		class := ClassOther
		for _, rule := range rules {
			if rule.Match(rec) {
				class = rule.Class
				break
			}
		}
		set.Add(class, rec.Value)
	}
	return set
}
