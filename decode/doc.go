/*
Package decode converts raw stubbed body values into the shape a request
asked for.

Raw values are a closed union (String, Bytes, Stream, Value); the requested
shape is an As tree built from Ignore, Text, and Mapped, nested arbitrarily.
Adjust walks the tree and either yields the coerced value, reports a
recoverable mismatch, or propagates a transform failure. Incompatible types
are never coerced implicitly: a numeric raw value does not decode as text.
*/
package decode
