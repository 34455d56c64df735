package match

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	sttp "github.com/xknat/sttp"
)

// Template matches request paths against a gorilla/mux pattern such as
// "/users/{id}". The pattern is validated at construction time.
func Template(pattern string) (Predicate, error) {
	route := mux.NewRouter().NewRoute().Path(pattern)
	if err := route.GetError(); err != nil {
		return nil, fmt.Errorf("invalid path template %q: %w", pattern, err)
	}

	return func(req *sttp.Request) bool {
		if req.URL == nil {
			return false
		}
		var m mux.RouteMatch
		return route.Match(&http.Request{Method: req.Method, URL: req.URL}, &m)
	}, nil
}
