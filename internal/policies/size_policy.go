package policies

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParseByteSize coerces a DCAT byteSize into an integer. Values that are
// not integral numbers, are negative or do not fit an int64 report false
// and the size is omitted; zero and empty values are treated as unset.
func ParseByteSize(value any) (int64, bool) {
	switch typed := value.(type) {
	case nil:
		return 0, false
	case int:
		return intSize(int64(typed))
	case int64:
		return intSize(typed)
	case float64:
		return floatSize(typed)
	case json.Number:
		if size, err := typed.Int64(); err == nil {
			return intSize(size)
		}
		parsed, err := typed.Float64()
		if err != nil {
			return 0, false
		}
		return floatSize(parsed)
	case string:
		trimmed := strings.TrimSpace(typed)
		if trimmed == "" {
			return 0, false
		}
		size, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil || size < 0 {
			return 0, false
		}
		return size, true
	default:
		return 0, false
	}
}

func intSize(value int64) (int64, bool) {
	if value <= 0 {
		return 0, false
	}
	return value, true
}

// maxFloatSize is 2^63, the first float64 that no longer converts to an
// int64.
const maxFloatSize = float64(math.MaxInt64)

func floatSize(value float64) (int64, bool) {
	if math.IsNaN(value) || value < 1 || value >= maxFloatSize {
		return 0, false
	}
	return int64(value), true
}
