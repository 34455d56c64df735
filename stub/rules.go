package stub

import (
	sttp "github.com/xknat/sttp"
)

// Responder produces the raw outcome for a matched request. A non-nil error
// simulates a transport-level failure and surfaces through Do and Send.
type Responder func(req *sttp.Request) (*sttp.Response, error)

// PartialFunc is a self-contained rule: it inspects a request and either
// declines it (matched false) or produces the outcome directly. A matched
// result with a non-nil error is a producer failure, not a miss, and does
// not trigger fallback delegation. The engine calls a PartialFunc at most
// once per request.
type PartialFunc func(req *sttp.Request) (resp *sttp.Response, matched bool, err error)

// rule is the unified form both total and partial rules reduce to, so the
// matching loop has a single dispatch and partial rules are evaluated
// exactly once.
type rule struct {
	name  string
	apply PartialFunc
}

func totalRule(name string, pred func(*sttp.Request) bool, respond Responder) rule {
	return rule{
		name: name,
		apply: func(req *sttp.Request) (*sttp.Response, bool, error) {
			if !pred(req) {
				return nil, false, nil
			}
			resp, err := respond(req)
			return resp, true, err
		},
	}
}

// matchRules evaluates rules in declaration order and returns the outcome
// of the first that matches.
func matchRules(rules []rule, req *sttp.Request) (resp *sttp.Response, name string, matched bool, err error) {
	for i := range rules {
		resp, ok, err := rules[i].apply(req)
		if !ok {
			continue
		}
		return resp, rules[i].name, true, err
	}
	return nil, "", false, nil
}
