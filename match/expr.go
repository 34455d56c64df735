package match

import (
	"fmt"
	"net/http"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/checker/decls"

	sttp "github.com/xknat/sttp"
)

// Expr compiles a CEL expression into a predicate. The expression sees the
// variables method (string), path (list of segments), params and headers
// (string maps), e.g. `method == 'GET' && params['p'] == 'v'`.
//
// Compilation errors surface at construction; evaluation errors and
// non-boolean results count as a non-match.
func Expr(expression string) (Predicate, error) {
	env, err := cel.NewEnv(
		cel.Declarations(
			decls.NewVar("method", decls.String),
			decls.NewVar("path", decls.NewListType(decls.String)),
			decls.NewVar("params", decls.NewMapType(decls.String, decls.String)),
			decls.NewVar("headers", decls.NewMapType(decls.String, decls.String)),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile expression %q: %w", expression, issues.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program expression %q: %w", expression, err)
	}

	return func(req *sttp.Request) bool {
		out, _, err := prg.Eval(map[string]any{
			"method":  req.Method,
			"path":    req.PathSegments(),
			"params":  req.QueryParams(),
			"headers": flattenHeader(req.Header),
		})
		if err != nil {
			return false
		}

		matched, ok := out.Value().(bool)
		return ok && matched
	}, nil
}

func flattenHeader(h http.Header) map[string]string {
	flat := make(map[string]string, len(h))
	for name, values := range h {
		if len(values) > 0 {
			flat[name] = values[0]
		}
	}
	return flat
}
