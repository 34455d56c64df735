package stub

import (
	"fmt"
	"net/http"
	"sync/atomic"

	sttp "github.com/xknat/sttp"
	"github.com/xknat/sttp/decode"
	"github.com/xknat/sttp/match"
)

// PendingRule is a rule awaiting its responder. It is completed by one of
// the ThenRespond methods, each of which yields a new Stub with the rule
// appended.
type PendingRule struct {
	stub *Stub
	pred match.Predicate
}

// WhenRequest begins a rule for requests matching the predicate.
func (s *Stub) WhenRequest(pred match.Predicate) *PendingRule {
	return &PendingRule{stub: s, pred: pred}
}

// WhenAnyRequest begins a rule that matches every request.
func (s *Stub) WhenAnyRequest() *PendingRule {
	return s.WhenRequest(match.Any())
}

// WhenRequestPartial appends a self-contained rule. The partial occupies
// one slot in the same ordered list as total rules and is evaluated exactly
// once per request.
func (s *Stub) WhenRequestPartial(fn PartialFunc) *Stub {
	out := s.clone()
	out.rules = append(out.rules, rule{name: out.nextRuleName(), apply: fn})
	return out
}

// WithFallback returns a new Stub that delegates unmatched requests to
// parent. The parent resolves them with its own rules, fallback chain, and
// default.
func (s *Stub) WithFallback(parent sttp.Backend) *Stub {
	out := s.clone()
	out.fallback = parent
	return out
}

// ThenRespond completes the rule with a fixed response. The response value
// is treated as a template and never mutated by sends.
func (p *PendingRule) ThenRespond(resp *sttp.Response) *Stub {
	return p.ThenRespondF(func(*sttp.Request) (*sttp.Response, error) {
		return resp, nil
	})
}

// ThenRespondWith completes the rule with the given status and raw body.
func (p *PendingRule) ThenRespondWith(statusCode int, body decode.Body) *Stub {
	resp := sttp.NewResponse(statusCode)
	resp.Body = body
	return p.ThenRespond(resp)
}

// ThenRespondOk completes the rule with 200 and an empty body.
func (p *PendingRule) ThenRespondOk() *Stub {
	return p.ThenRespond(sttp.NewResponse(http.StatusOK))
}

// ThenRespondNotFound completes the rule with 404 and an empty body.
func (p *PendingRule) ThenRespondNotFound() *Stub {
	return p.ThenRespond(sttp.NewResponse(http.StatusNotFound))
}

// ThenRespondServerError completes the rule with 500 and an empty body.
func (p *PendingRule) ThenRespondServerError() *Stub {
	return p.ThenRespond(sttp.NewResponse(http.StatusInternalServerError))
}

// ThenRespondError completes the rule with a failure. The error is not
// raised here: it surfaces when a matching request is sent, exactly as a
// transport failure would.
func (p *PendingRule) ThenRespondError(err error) *Stub {
	return p.ThenRespondF(func(*sttp.Request) (*sttp.Response, error) {
		return nil, err
	})
}

// ThenRespondF completes the rule with a responder computed per request.
func (p *PendingRule) ThenRespondF(respond Responder) *Stub {
	pred := p.pred
	if pred == nil {
		pred = match.Any()
	}

	out := p.stub.clone()
	out.rules = append(out.rules, totalRule(out.nextRuleName(), pred, respond))
	return out
}

// ThenRespondCyclic completes the rule with 200 responses whose bodies
// rotate through the given values, one per matching request.
func (p *PendingRule) ThenRespondCyclic(bodies ...decode.Body) *Stub {
	var cursor atomic.Uint64
	return p.ThenRespondF(func(*sttp.Request) (*sttp.Response, error) {
		n := cursor.Add(1) - 1
		resp := sttp.NewResponse(http.StatusOK)
		resp.Body = bodies[n%uint64(len(bodies))]
		return resp, nil
	})
}

func (s *Stub) nextRuleName() string {
	return fmt.Sprintf("rule-%d", len(s.rules)+1)
}
