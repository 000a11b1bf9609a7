// Package payload cleans decoded request bodies before they reach a handler.
package payload

// StripBlanks removes every key whose value is the empty string, descending
// into nested objects and into objects held in arrays. The map is modified
// in place and returned. Applying it twice has the same effect as once.
func StripBlanks(fields map[string]any) map[string]any {
	for key, value := range fields {
		switch v := value.(type) {
		case string:
			if v == "" {
				delete(fields, key)
			}
		case map[string]any:
			StripBlanks(v)
		case []any:
			stripSlice(v)
		}
	}
	return fields
}

func stripSlice(items []any) {
	for _, item := range items {
		switch v := item.(type) {
		case map[string]any:
			StripBlanks(v)
		case []any:
			stripSlice(v)
		}
	}
}
