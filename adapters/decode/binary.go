package decode

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"weightscope/domain/weights"
	"weightscope/internal/errors"
	"weightscope/ports"
)

const wordSize = 8

// BinaryDecoder reads the packed binary weight layout: an 8-byte unsigned
// little-endian connection count followed by that many little-endian IEEE-754
// doubles. The layout carries no labels, magic or checksum.
type BinaryDecoder struct {
	maxRecords int
}

// NewBinaryDecoder creates a decoder that reads at most maxRecords weights
// regardless of the declared count.
func NewBinaryDecoder(maxRecords int) *BinaryDecoder {
	return &BinaryDecoder{maxRecords: maxRecords}
}

// Format identifies the layout this decoder reads
func (d *BinaryDecoder) Format() weights.Format { return weights.FormatBinary }

// Decode reads the header and up to min(declaredCount, maxRecords) weights.
// A stream shorter than the header is treated as empty. A short read
// mid-stream stops decoding and returns the records gathered so far with the
// truncation flag set; it is never an error.
func (d *BinaryDecoder) Decode(r io.Reader) (*weights.DecodeResult, error) {
	result := &weights.DecodeResult{}

	var buf [wordSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return result, nil
		}
		return nil, errors.Wrap(err, "reading connection count header")
	}

	declared := binary.LittleEndian.Uint64(buf[:])
	result.DeclaredCount = declared

	limit := declared
	if uint64(d.maxRecords) < limit {
		limit = uint64(d.maxRecords)
	}

	result.Records = make([]weights.WeightRecord, 0, limit)
	for i := uint64(0); i < limit; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				result.Truncated = true
				result.Warnings = append(result.Warnings, weights.Warning{
					Code: weights.WarningTruncated,
					Message: fmt.Sprintf("file truncated: read %d of %d declared weights",
						len(result.Records), declared),
				})
				return result, nil
			}
			return nil, errors.Wrap(err, "reading weight value")
		}
		value := math.Float64frombits(binary.LittleEndian.Uint64(buf[:]))
		result.Records = append(result.Records, weights.WeightRecord{Value: value})
	}

	if declared > limit {
		result.Truncated = true
		result.Warnings = append(result.Warnings, weights.Warning{
			Code: weights.WarningTruncated,
			Message: fmt.Sprintf("analysis limited to first %d of %d declared weights",
				limit, declared),
		})
	}

	return result, nil
}

// EncodeBinary writes values in the packed layout BinaryDecoder reads. Used
// by the fixture generator and round-trip tests.
func EncodeBinary(w io.Writer, values []float64) error {
	var buf [wordSize]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(values)))
	if _, err := w.Write(buf[:]); err != nil {
		return errors.Wrap(err, "writing connection count header")
	}
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		if _, err := w.Write(buf[:]); err != nil {
			return errors.Wrap(err, "writing weight value")
		}
	}
	return nil
}

var _ ports.Decoder = (*BinaryDecoder)(nil)
