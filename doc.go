/*
Package sttp defines the request/response model and backend contract for a
programmable, in-memory HTTP client backend.

A Backend is the narrow dependency-injection point that replaces a real
transport: code under test issues Requests through it and receives Responses
without any network I/O. The stub subpackage provides the standard
implementation, driven by an ordered list of request-matching rules; the
decode subpackage converts raw stubbed values into the shape each request
asks for; the match subpackage supplies predicate building blocks.

Delivery is pluggable: Immediate resolves a send on the calling goroutine,
Deferred hands back a Completion that is fulfilled asynchronously with
either the response or the original failure.
*/
package sttp
