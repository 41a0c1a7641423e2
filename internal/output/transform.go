package output

import (
	"context"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	clierrors "github.com/salmonumbrella/tablefmt/internal/errors"
)

const jsonPathExample = "Example: --jsonpath '$.rows[0][1]'"

func applyJSONPathFromContext(ctx context.Context, data interface{}) (interface{}, error) {
	raw := strings.TrimSpace(JSONPathFromContext(ctx))
	if raw == "" {
		return data, nil
	}
	return applyJSONPath(data, raw)
}

func applyJSONPath(data interface{}, raw string) (interface{}, error) {
	normalized := normalizeJSONPath(raw)
	if normalized == "" {
		return nil, clierrors.NewUserError("invalid --jsonpath value", jsonPathExample)
	}
	normalizedData, err := normalizeToInterface(data)
	if err != nil {
		return nil, err
	}
	value, err := jsonpath.Get(normalized, normalizedData)
	if err != nil {
		return nil, clierrors.WrapUserError(err, "invalid --jsonpath value", jsonPathExample)
	}
	return value, nil
}

// normalizeJSONPath accepts "$.x", "@.x", ".x" and bare "x".
func normalizeJSONPath(path string) string {
	trimmed := strings.TrimSpace(path)
	switch {
	case trimmed == "":
		return ""
	case strings.HasPrefix(trimmed, "$"), strings.HasPrefix(trimmed, "@"):
		return trimmed
	case strings.HasPrefix(trimmed, "."), strings.HasPrefix(trimmed, "["):
		return "$" + trimmed
	default:
		return "$." + trimmed
	}
}
