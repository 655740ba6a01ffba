package repositories

import (
	"encoding/json"
	"fmt"
	"strconv"

	"webshop-api/internal/store"
)

func stringAttr(item store.Item, key string) string {
	s, _ := item[key].(string)
	return s
}

// numericAttr coerces a stored numeric attribute back to float64. Backends
// return float64 (DynamoDB, memory), json.Number (SQLite JSON), or a plain
// decimal string.
func numericAttr(item store.Item, key string) (float64, error) {
	switch v := item[key].(type) {
	case float64:
		return v, nil
	case json.Number:
		return v.Float64()
	case string:
		return strconv.ParseFloat(v, 64)
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("attribute %s is not numeric (got %T)", key, v)
	}
}
