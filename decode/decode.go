package decode

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/ianaindex"
)

var (
	// ErrMismatch signals that a raw stubbed value is not convertible to the
	// requested shape. It is recoverable: sends report it on the response
	// instead of failing.
	ErrMismatch = errors.New("stubbed body cannot be decoded as requested")

	// ErrUnknownCharset is returned when a Text charset name is not
	// IANA-registered.
	ErrUnknownCharset = errors.New("unknown charset")
)

// As describes how a response body should be decoded. Values are built with
// Ignore, Text, and Mapped and form a tree through Mapped nesting.
type As interface {
	as()
}

type ignoreAs struct{}

type textAs struct {
	charset string
}

type mappedAs struct {
	inner     As
	transform func(any) (any, error)
}

func (ignoreAs) as() {}
func (textAs) as()   {}
func (mappedAs) as() {}

// Ignore discards the response body and decodes to nil.
func Ignore() As {
	return ignoreAs{}
}

// Text decodes the response body to a string using the named charset. An
// empty name means UTF-8.
func Text(charset string) As {
	return textAs{charset: charset}
}

// Mapped decodes with inner, then applies transform to the result. A failed
// inner adjustment fails the mapped adjustment; a transform error propagates
// to the caller of Adjust.
func Mapped(inner As, transform func(any) (any, error)) As {
	return mappedAs{inner: inner, transform: transform}
}

// Adjust coerces a raw body into the shape described by as. ok reports
// whether the coercion applied; a false ok with a nil err is a recoverable
// mismatch. A non-nil err is a transform or charset failure and makes ok
// meaningless.
func Adjust(as As, raw Body) (value any, ok bool, err error) {
	switch a := as.(type) {
	case ignoreAs:
		return nil, true, nil

	case textAs:
		switch b := raw.(type) {
		case String:
			return string(b), true, nil
		case Bytes:
			return decodeText(a.charset, []byte(b))
		case Stream:
			data, readErr := io.ReadAll(b.Reader)
			if readErr != nil {
				return nil, false, readErr
			}
			return decodeText(a.charset, data)
		default:
			return nil, false, nil
		}

	case mappedAs:
		inner, ok, err := Adjust(a.inner, raw)
		if err != nil || !ok {
			return nil, ok, err
		}
		out, err := a.transform(inner)
		if err != nil {
			return nil, false, err
		}
		return out, true, nil

	default:
		return nil, false, nil
	}
}

func decodeText(charset string, data []byte) (any, bool, error) {
	if charset == "" {
		return string(data), true, nil
	}

	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrUnknownCharset, charset)
	}

	// UTF-8 and ASCII resolve without a transform; treat as identity.
	if enc == nil {
		return string(data), true, nil
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, false, err
	}
	return string(out), true, nil
}
