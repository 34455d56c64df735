package sttp

import "net/http"

// Response is the result of a stubbed exchange.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Status is the HTTP status text.
	Status string

	// Header holds response headers.
	Header http.Header

	// Body is the decoded response body. Its concrete type depends on the
	// Request.ResponseAs declaration that produced it.
	Body any

	// BodyErr reports a body that could not be coerced into the requested
	// shape. The send itself still succeeds; callers inspect BodyErr with
	// errors.Is against decode.ErrMismatch.
	BodyErr error
}

// NewResponse builds an empty-bodied Response with standard status text.
func NewResponse(statusCode int) *Response {
	return &Response{
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
		Header:     make(http.Header),
	}
}

// Clone returns a copy of the response with its own header map.
func (r *Response) Clone() *Response {
	out := *r
	out.Header = make(http.Header, len(r.Header))
	for name, values := range r.Header {
		for _, v := range values {
			out.Header.Add(name, v)
		}
	}
	return &out
}
