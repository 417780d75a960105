// Package config holds helpers shared by the configuration store adapters.
package config

// AsString converts a stored value to a string.
// Returns empty string for missing or non-string values.
func AsString(val any) string {
	if str, ok := val.(string); ok {
		return str
	}
	return ""
}

// AsInt converts a stored value to an int.
// TOML decodes integers as int64 and JSON-ish sources as float64.
func AsInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// AsBool converts a stored value to a bool.
func AsBool(val any) bool {
	b, _ := val.(bool)
	return b
}

// AsStringSlice converts a stored value to a string slice.
// TOML arrays decode as []any; non-string items are skipped.
func AsStringSlice(val any) []string {
	switch v := val.(type) {
	case []string:
		return v
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	default:
		return nil
	}
}
