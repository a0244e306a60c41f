package core

import (
	"encoding/json"
	"fmt"
)

// AssertStringList fails unless value is a sequence whose every element is
// a string. The error names the field and the type that was observed.
func AssertStringList(field string, value any) error {
	switch typed := value.(type) {
	case []string:
		return nil
	case []any:
		for _, item := range typed {
			if _, ok := item.(string); !ok {
				return conversionErrorf("%q value must be an array of strings, not: array containing %s", field, describeType(item))
			}
		}
		return nil
	default:
		return conversionErrorf("%q value must be an array of strings, not: %s", field, describeType(value))
	}
}

// AssertList fails unless value is a sequence. Element types are left to
// the caller.
func AssertList(field string, value any) error {
	switch value.(type) {
	case []any, []string, []map[string]any:
		return nil
	default:
		return conversionErrorf("%q value must be an array, not: %s", field, describeType(value))
	}
}

func describeType(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, float32, int, int64, int32, uint, uint64, uint32:
		return "number"
	case map[string]any:
		return "object"
	case []any, []string, []map[string]any:
		return "array"
	default:
		return fmt.Sprintf("%T", value)
	}
}
