package decode

import "io"

// Body is the closed set of raw stubbed body values. Adjust dispatches on
// the concrete variant, never on reflection.
type Body interface {
	body()
}

// String is a textual raw body.
type String string

// Bytes is a raw body held as a byte sequence.
type Bytes []byte

// Stream is a raw body backed by a reader. It is consumed at most once;
// adjusting the same Stream twice yields undefined content for the second
// attempt, which is the caller's responsibility to avoid.
type Stream struct {
	Reader io.Reader
}

// Value is the opaque variant for raw bodies that are neither text, bytes,
// nor a stream.
type Value struct {
	V any
}

func (String) body() {}
func (Bytes) body()  {}
func (Stream) body() {}
func (Value) body()  {}

// Wrap converts an arbitrary raw value into its Body variant. Existing Body
// values pass through; anything that is not text, bytes, or a reader becomes
// an opaque Value.
func Wrap(v any) Body {
	switch b := v.(type) {
	case nil:
		return Bytes(nil)
	case Body:
		return b
	case string:
		return String(b)
	case []byte:
		return Bytes(b)
	case io.Reader:
		return Stream{Reader: b}
	default:
		return Value{V: b}
	}
}
