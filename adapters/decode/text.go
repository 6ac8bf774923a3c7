package decode

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"weightscope/domain/weights"
	"weightscope/internal/errors"
	"weightscope/ports"
)

// TextDecoder reads the delimited text weight layout: one connection per
// line, comma-separated source,target,weight. Blank lines and lines starting
// with '#' are skipped, as are lines with fewer than three fields. Extra
// fields beyond the third are ignored; commas inside fields are not
// supported.
type TextDecoder struct {
	maxLines int
}

// NewTextDecoder creates a decoder that inspects at most maxLines candidate
// (non-blank, non-comment) lines before truncating.
func NewTextDecoder(maxLines int) *TextDecoder {
	return &TextDecoder{maxLines: maxLines}
}

// Format identifies the layout this decoder reads
func (d *TextDecoder) Format() weights.Format { return weights.FormatText }

// Decode reads records line by line. A malformed weight field aborts the
// whole decode with a parse error and discards everything gathered so far;
// hitting the line cap merely truncates with a warning. The asymmetry with
// the binary decoder's tolerant truncation is deliberate.
func (d *TextDecoder) Decode(r io.Reader) (*weights.DecodeResult, error) {
	result := &weights.DecodeResult{}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	inspected := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		inspected++
		if inspected > d.maxLines {
			result.Truncated = true
			result.Warnings = append(result.Warnings, weights.Warning{
				Code:    weights.WarningLineLimitExceeded,
				Message: fmt.Sprintf("analysis limited to first %d lines", d.maxLines),
			})
			break
		}

		fields := strings.Split(line, ",")
		if len(fields) < 3 {
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			return nil, errors.ParseError(fmt.Sprintf(
				"line %d: invalid weight value %q", lineNum, fields[2]))
		}

		result.Records = append(result.Records, weights.WeightRecord{
			Value:  value,
			Source: strings.TrimSpace(fields[0]),
			Target: strings.TrimSpace(fields[1]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading weight file")
	}

	return result, nil
}

// EncodeText writes records one CSV line each, in the layout TextDecoder
// reads.
func EncodeText(w io.Writer, records []weights.WeightRecord) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		if _, err := fmt.Fprintf(bw, "%s,%s,%g\n", rec.Source, rec.Target, rec.Value); err != nil {
			return errors.Wrap(err, "writing weight line")
		}
	}
	return bw.Flush()
}

var _ ports.Decoder = (*TextDecoder)(nil)
