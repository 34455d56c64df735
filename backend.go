package sttp

// Backend abstracts the transport used to resolve HTTP exchanges. The stub
// subpackage provides the standard in-memory implementation; any fake that
// can answer a request synchronously satisfies the contract.
type Backend interface {
	// Do resolves a request into a response or a transport-level failure.
	Do(req *Request) (*Response, error)
}
