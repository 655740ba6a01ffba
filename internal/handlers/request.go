package handlers

import "encoding/json"

// parseObjectBody decodes a JSON object body. A false result means the
// body must be answered with ErrBadJSON.
func parseObjectBody(body []byte) (map[string]any, bool) {
	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, false
	}
	return data, true
}

// fieldPresent reports whether a decoded field counts as supplied. Empty
// strings and numeric zero count as missing, matching the original
// contract's truthiness semantics.
func fieldPresent(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case float64:
		return t != 0
	case bool:
		return t
	default:
		return true
	}
}
