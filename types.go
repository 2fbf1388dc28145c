package fieldschema

// NumberMode dictates how JSON numbers are decoded before validation.
type NumberMode int

const (
	NumberJSONNumber NumberMode = iota // Preserve json.Number (default; no precision loss).
	NumberFloat64                      // Decode into float64.
)

// DecodeOpt bundles options for the byte/reader input sources.
type DecodeOpt struct {
	// MaxBytes rejects inputs larger than this many bytes (0 = unlimited).
	MaxBytes   int64
	NumberMode NumberMode
	// RejectDuplicateKeys fails JSON input in which an object repeats a key,
	// instead of silently keeping the last value.
	RejectDuplicateKeys bool
}

func lastOpt(opts []DecodeOpt) DecodeOpt {
	if len(opts) == 0 {
		return DecodeOpt{}
	}
	return opts[len(opts)-1]
}
