package testkit

import (
	"fmt"
	"math/rand"
	"os"

	"weightscope/adapters/decode"
	"weightscope/domain/weights"
)

// Kit builds synthetic weight fixtures for tests and the genweights tool.
// All randomness is seeded so fixtures are reproducible.
type Kit struct {
	rng *rand.Rand
}

// New creates a kit with a seeded generator
func New(seed int64) *Kit {
	return &Kit{rng: rand.New(rand.NewSource(seed))}
}

// DiverseValues returns n values drawn from a normal distribution around
// mean. With n > 1 and spread > 0 the values are effectively all distinct.
func (k *Kit) DiverseValues(n int, mean, spread float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = mean + k.rng.NormFloat64()*spread
	}
	return values
}

// UniformValues returns n copies of v, the degenerate distribution a broken
// plasticity run produces.
func UniformValues(n int, v float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = v
	}
	return values
}

// LabeledRecords wraps values into text records cycling through the given
// source prefixes.
func LabeledRecords(values []float64, sources ...string) []weights.WeightRecord {
	records := make([]weights.WeightRecord, len(values))
	for i, v := range values {
		source := "unlabeled"
		if len(sources) > 0 {
			source = sources[i%len(sources)]
		}
		records[i] = weights.WeightRecord{
			Value:  v,
			Source: fmt.Sprintf("%s_%d", source, i),
			Target: fmt.Sprintf("n%d", i+1),
		}
	}
	return records
}

// WriteBinaryFile writes values as a packed binary weight file
func WriteBinaryFile(path string, values []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return decode.EncodeBinary(f, values)
}

// WriteTextFile writes records as a delimited text weight file
func WriteTextFile(path string, records []weights.WeightRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return decode.EncodeText(f, records)
}

// WriteRawFile writes literal bytes, for malformed-input fixtures
func WriteRawFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
