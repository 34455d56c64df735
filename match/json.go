package match

import (
	"github.com/tidwall/gjson"

	sttp "github.com/xknat/sttp"
)

// BodyJSON matches requests whose raw JSON body holds want at the given
// gjson path, e.g. BodyJSON("user.name", "ada"). Type matters: a JSON
// number never matches a string want.
func BodyJSON(path string, want any) Predicate {
	return func(req *sttp.Request) bool {
		if len(req.Body) == 0 {
			return false
		}

		result := gjson.GetBytes(req.Body, path)
		if !result.Exists() {
			return false
		}

		switch w := want.(type) {
		case string:
			return result.Type == gjson.String && result.Str == w
		case bool:
			return (result.Type == gjson.True || result.Type == gjson.False) && result.Bool() == w
		case int:
			return result.Type == gjson.Number && result.Int() == int64(w)
		case int64:
			return result.Type == gjson.Number && result.Int() == w
		case float64:
			return result.Type == gjson.Number && result.Num == w
		case nil:
			return result.Type == gjson.Null
		default:
			return false
		}
	}
}
