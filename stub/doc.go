/*
Package stub provides the standard in-memory sttp.Backend.

A Stub resolves each request against its rules in declaration order: the
first rule whose predicate matches wins, and later rules are never
consulted. When no rule matches, the request is delegated wholesale to an
optional fallback backend; without one, the stub answers 404 with an empty
body. Matched value outcomes are coerced through the decode package into
the shape the request declared.

Stubs are built with an immutable builder: every WhenRequest/ThenRespond
pair, WhenRequestPartial, and WithFallback call returns a new Stub, so a
stub already handed to code under test never observes later additions.
Built stubs are safe for concurrent sends.

	backend := stub.New(stub.Config{}).
		WhenRequest(match.PathPrefix("a", "b")).ThenRespondOk().
		WhenRequest(match.QueryParam("p", "v")).ThenRespondWith(200, decode.String("10"))
*/
package stub
