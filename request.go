package sttp

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/xknat/sttp/decode"
)

// Request describes a single outgoing HTTP exchange. Backends only read the
// method and URL; the struct is never mutated during a send.
type Request struct {
	// Method is the HTTP method, e.g. http.MethodGet.
	Method string

	// URL is the request target.
	URL *url.URL

	// Header holds request headers supplied by the caller.
	Header http.Header

	// Body contains the raw request payload, if any. It is only inspected
	// by body-based matchers, never by the engine itself.
	Body []byte

	// ResponseAs declares how the caller wants the response body decoded.
	// A nil value behaves like decode.Ignore().
	ResponseAs decode.As
}

// NewRequest builds a Request for the given method and URL string.
func NewRequest(method, rawURL string) (*Request, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	return &Request{
		Method: method,
		URL:    u,
		Header: make(http.Header),
	}, nil
}

// PathSegments returns the ordered, non-empty segments of the request path.
func (r *Request) PathSegments() []string {
	if r.URL == nil {
		return nil
	}

	trimmed := strings.Trim(r.URL.Path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// QueryParams returns the query parameters flattened to their first value.
func (r *Request) QueryParams() map[string]string {
	params := make(map[string]string)
	if r.URL == nil {
		return params
	}

	for name, values := range r.URL.Query() {
		if len(values) > 0 {
			params[name] = values[0]
		}
	}
	return params
}
