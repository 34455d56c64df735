package stub

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	sttp "github.com/xknat/sttp"
	"github.com/xknat/sttp/decode"
)

// Config controls construction of a Stub. The zero value is a stub with no
// rules that answers every request with the default 404.
type Config struct {
	// Fallback receives, through its own Do, every request no local rule
	// matches. It is shared, not owned: delegation is read-only.
	Fallback sttp.Backend

	// Default is the response template used when nothing matches and no
	// fallback is configured. Nil means 404 with an empty body.
	Default *sttp.Response

	// Wrapper controls how Send delivers results. Nil means sttp.Immediate().
	Wrapper sttp.Wrapper

	// Logger, when set, emits debug records of rule evaluation.
	Logger *zerolog.Logger
}

// Stub is an in-memory sttp.Backend driven by an ordered rule list. All
// builder methods return a new Stub; a built Stub is read-only and safe for
// concurrent use.
type Stub struct {
	rules    []rule
	fallback sttp.Backend
	def      *sttp.Response
	wrapper  sttp.Wrapper
	log      zerolog.Logger
	rec      *recorder
}

var _ sttp.Backend = (*Stub)(nil)

// New creates a Stub from the given configuration.
func New(config Config) *Stub {
	wrapper := config.Wrapper
	if wrapper == nil {
		wrapper = sttp.Immediate()
	}

	log := zerolog.Nop()
	if config.Logger != nil {
		log = *config.Logger
	}

	def := config.Default
	if def == nil {
		def = sttp.NewResponse(http.StatusNotFound)
	}

	return &Stub{
		fallback: config.Fallback,
		def:      def,
		wrapper:  wrapper,
		log:      log,
		rec:      &recorder{},
	}
}

// Do resolves a request synchronously. Producer and transform failures are
// returned as errors; a body that cannot be coerced into the requested
// shape is reported on Response.BodyErr instead.
func (s *Stub) Do(req *sttp.Request) (*sttp.Response, error) {
	if req == nil {
		return nil, sttp.ErrNilRequest
	}

	id := uuid.New()

	resp, name, matched, err := matchRules(s.rules, req)
	switch {
	case matched && err != nil:
		s.rec.add(Exchange{ID: id, Request: req, Rule: name, Err: err})
		s.log.Debug().Str("exchange", id.String()).Str("rule", name).Err(err).
			Msg("stubbed rule failed")
		return nil, err

	case matched:
		out, err := s.adjusted(req, resp)
		s.rec.add(Exchange{ID: id, Request: req, Rule: name, Err: err})
		s.log.Debug().Str("exchange", id.String()).Str("rule", name).
			Msg("stubbed rule matched")
		return out, err

	case s.fallback != nil:
		s.rec.add(Exchange{ID: id, Request: req, Delegated: true})
		s.log.Debug().Str("exchange", id.String()).Msg("delegating to fallback")
		return s.fallback.Do(req)

	default:
		out, err := s.adjusted(req, s.def)
		s.rec.add(Exchange{ID: id, Request: req, Err: err})
		s.log.Debug().Str("exchange", id.String()).Int("status", s.def.StatusCode).
			Msg("no rule matched")
		return out, err
	}
}

// Send resolves a request through the configured delivery wrapper. With
// sttp.Deferred the returned Completion is fulfilled asynchronously,
// carrying a failure value identical to what Do would return.
func (s *Stub) Send(req *sttp.Request) *sttp.Completion {
	return s.wrapper.Wrap(func() (*sttp.Response, error) {
		return s.Do(req)
	})
}

// Received returns a snapshot of every exchange observed so far, across the
// stub and all stubs derived from it by builder calls.
func (s *Stub) Received() []Exchange {
	return s.rec.snapshot()
}

// adjusted coerces the raw stubbed body into the shape the request
// declared. Mismatches land on BodyErr; transform failures abort the send.
func (s *Stub) adjusted(req *sttp.Request, resp *sttp.Response) (*sttp.Response, error) {
	as := req.ResponseAs
	if as == nil {
		as = decode.Ignore()
	}

	out := resp.Clone()

	value, ok, err := decode.Adjust(as, decode.Wrap(resp.Body))
	if err != nil {
		return nil, err
	}
	if !ok {
		out.Body = nil
		out.BodyErr = fmt.Errorf("%w: raw value %T", decode.ErrMismatch, resp.Body)
		return out, nil
	}

	out.Body = value
	out.BodyErr = nil
	return out, nil
}

func (s *Stub) clone() *Stub {
	out := *s
	out.rules = make([]rule, len(s.rules), len(s.rules)+1)
	copy(out.rules, s.rules)
	return &out
}
