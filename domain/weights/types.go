package weights

// Format identifies the serialization layout of a weight file.
type Format string

const (
	FormatBinary Format = "binary"
	FormatText   Format = "text"
)

// ConnectionClass is the semantic category assigned to a decoded connection.
//
// Binary files carry no source/target identity, so their records can only
// receive the value-inferred classes (dopaminergic_like, inhibitory_like,
// excitatory, inhibitory). Text records are classified from their source
// label and receive dopaminergic, inhibitory, excitatory or other.
type ConnectionClass string

const (
	ClassExcitatory       ConnectionClass = "excitatory"
	ClassInhibitory       ConnectionClass = "inhibitory"
	ClassDopaminergic     ConnectionClass = "dopaminergic"
	ClassDopaminergicLike ConnectionClass = "dopaminergic_like"
	ClassInhibitoryLike   ConnectionClass = "inhibitory_like"
	ClassOther            ConnectionClass = "other"
)

// String returns the string representation
func (c ConnectionClass) String() string { return string(c) }

// WeightRecord is one decoded connection weight. Source and Target are empty
// for binary-decoded records.
type WeightRecord struct {
	Value  float64
	Source string
	Target string
}

// WarningCode represents structured decode warning types
type WarningCode string

const (
	WarningTruncated         WarningCode = "TRUNCATED"           // binary stream ended or hit the record cap
	WarningLineLimitExceeded WarningCode = "LINE_LIMIT_EXCEEDED" // text line cap reached
)

// Warning is a tolerant decode condition. Warnings annotate a partial result;
// they never abort a decode.
type Warning struct {
	Code    WarningCode
	Message string
}

// DecodeResult is the unified outcome shared by both decoders. Tolerant
// conditions land in Warnings with Truncated set; fatal conditions are
// returned as errors by the decoder and never produce a partial result.
type DecodeResult struct {
	Records   []WeightRecord
	Warnings  []Warning
	Truncated bool

	// DeclaredCount is the connection count from the binary header.
	// Zero for text decodes.
	DeclaredCount uint64
}
