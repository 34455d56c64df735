package stub

import (
	"sync"

	"github.com/google/uuid"

	sttp "github.com/xknat/sttp"
)

// Exchange records a single request observed by a stub.
type Exchange struct {
	// ID identifies the exchange in logs and recordings.
	ID uuid.UUID

	// Request is the request as received. It is not copied.
	Request *sttp.Request

	// Rule names the rule that fired, empty when none did.
	Rule string

	// Delegated reports that the fallback backend handled the request.
	Delegated bool

	// Err is the producer or transform failure, if any.
	Err error
}

// recorder collects exchanges behind a mutex. It is shared by pointer
// across builder-derived stubs so recordings survive chaining.
type recorder struct {
	mu        sync.Mutex
	exchanges []Exchange
}

func (r *recorder) add(e Exchange) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exchanges = append(r.exchanges, e)
}

func (r *recorder) snapshot() []Exchange {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Exchange, len(r.exchanges))
	copy(out, r.exchanges)
	return out
}
