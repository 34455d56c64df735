package match

import (
	"strings"

	sttp "github.com/xknat/sttp"
)

// Predicate reports whether a rule applies to a request. Predicates must be
// pure and side-effect free; the engine may evaluate them for every send.
type Predicate func(req *sttp.Request) bool

// Any matches every request.
func Any() Predicate {
	return func(*sttp.Request) bool { return true }
}

// Method matches requests with the given HTTP method, case-insensitively.
func Method(method string) Predicate {
	return func(req *sttp.Request) bool {
		return strings.EqualFold(req.Method, method)
	}
}

// Path matches requests whose path segments equal the given segments.
func Path(segments ...string) Predicate {
	return func(req *sttp.Request) bool {
		got := req.PathSegments()
		if len(got) != len(segments) {
			return false
		}
		return hasPrefix(got, segments)
	}
}

// PathPrefix matches requests whose path starts with the given segments.
func PathPrefix(segments ...string) Predicate {
	return func(req *sttp.Request) bool {
		return hasPrefix(req.PathSegments(), segments)
	}
}

// QueryParam matches requests carrying the query parameter with the value.
func QueryParam(name, value string) Predicate {
	return func(req *sttp.Request) bool {
		got, found := req.QueryParams()[name]
		return found && got == value
	}
}

// Header matches requests carrying the header with the value.
func Header(name, value string) Predicate {
	return func(req *sttp.Request) bool {
		return req.Header.Get(name) == value
	}
}

// All matches when every predicate matches.
func All(preds ...Predicate) Predicate {
	return func(req *sttp.Request) bool {
		for _, p := range preds {
			if !p(req) {
				return false
			}
		}
		return true
	}
}

// AnyOf matches when at least one predicate matches.
func AnyOf(preds ...Predicate) Predicate {
	return func(req *sttp.Request) bool {
		for _, p := range preds {
			if p(req) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate.
func Not(p Predicate) Predicate {
	return func(req *sttp.Request) bool {
		return !p(req)
	}
}

func hasPrefix(got, want []string) bool {
	if len(got) < len(want) {
		return false
	}
	for i, segment := range want {
		if got[i] != segment {
			return false
		}
	}
	return true
}
