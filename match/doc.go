/*
Package match provides request predicates for stub rules.

Predicates are pure functions over a request and compose with All, AnyOf,
and Not. Beyond the basic method/path/query/header matchers, Template
matches gorilla/mux path patterns, Expr compiles a CEL expression over the
request attributes, and BodyJSON compares a JSON path inside the raw
request body.
*/
package match
