package sttp

// Completion is a one-shot handle for the result of a stubbed send. It is
// fulfilled exactly once, with either a response or the original failure.
type Completion struct {
	done chan struct{}
	resp *Response
	err  error
}

func newCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

func (c *Completion) complete(resp *Response, err error) {
	c.resp = resp
	c.err = err
	close(c.done)
}

// Done returns a channel that is closed once the completion is fulfilled.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Result blocks until the completion is fulfilled and returns its outcome.
// The error value is the producer's failure, unwrapped and unmodified.
func (c *Completion) Result() (*Response, error) {
	<-c.done
	return c.resp, c.err
}

// Wrapper controls how the result of a send is delivered to the caller.
type Wrapper interface {
	// Wrap runs the producer and returns a Completion carrying its outcome.
	Wrap(run func() (*Response, error)) *Completion
}

type immediateWrapper struct{}

// Immediate returns a Wrapper that runs the producer on the calling
// goroutine; the returned Completion is already fulfilled.
func Immediate() Wrapper {
	return immediateWrapper{}
}

func (immediateWrapper) Wrap(run func() (*Response, error)) *Completion {
	c := newCompletion()
	c.complete(run())
	return c
}

type deferredWrapper struct{}

// Deferred returns a Wrapper that runs the producer on its own goroutine
// and fulfills the Completion when it finishes.
func Deferred() Wrapper {
	return deferredWrapper{}
}

func (deferredWrapper) Wrap(run func() (*Response, error)) *Completion {
	c := newCompletion()
	go func() {
		c.complete(run())
	}()
	return c
}
