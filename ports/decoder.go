package ports

import (
	"io"

	"weightscope/domain/weights"
)

// Decoder turns a serialized weight stream into a decode result.
//
// Tolerant conditions (truncation, line caps) are absorbed into the result's
// warnings; fatal conditions (malformed data) return an error with no
// partial result. The stream is consumed sequentially and never rewound.
type Decoder interface {
	// Format identifies the layout this decoder reads
	Format() weights.Format

	// Decode reads records until the stream ends, a cap is hit, or a fatal
	// condition occurs
	Decode(r io.Reader) (*weights.DecodeResult, error)
}
