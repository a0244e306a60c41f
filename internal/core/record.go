package core

import (
	"encoding/json"
	"fmt"

	"dcat-packages/internal/types"
)

// scalarString renders a JSON scalar as a string. Objects, arrays and null
// report false.
func scalarString(value any) (string, bool) {
	switch typed := value.(type) {
	case nil:
		return "", false
	case string:
		return typed, true
	case json.Number:
		return typed.String(), true
	case bool, float64, float32, int, int64, int32, uint, uint64, uint32:
		return fmt.Sprint(typed), true
	default:
		return "", false
	}
}

func recordString(record types.DcatRecord, key string) string {
	value, _ := scalarString(record[key])
	return value
}

// recordOptional keeps the distinction between an absent field and an
// empty one, for extras that are always emitted.
func recordOptional(record types.DcatRecord, key string) *string {
	value, ok := scalarString(record[key])
	if !ok {
		return nil
	}
	return &value
}

func stringItems(value any) []string {
	switch typed := value.(type) {
	case []string:
		return typed
	case []any:
		items := make([]string, 0, len(typed))
		for _, item := range typed {
			if text, ok := item.(string); ok {
				items = append(items, text)
			}
		}
		return items
	default:
		return nil
	}
}

func listItems(value any) []any {
	switch typed := value.(type) {
	case []any:
		return typed
	case []string:
		items := make([]any, 0, len(typed))
		for _, item := range typed {
			items = append(items, item)
		}
		return items
	case []map[string]any:
		items := make([]any, 0, len(typed))
		for _, item := range typed {
			items = append(items, item)
		}
		return items
	default:
		return nil
	}
}

// parsePublisher normalizes the polymorphic publisher field on ingress so
// the mapper never branches on its source type again.
func parsePublisher(value any) types.Publisher {
	switch typed := value.(type) {
	case string:
		return types.Publisher{Kind: types.PublisherKindName, Name: typed}
	case map[string]any:
		publisher := types.Publisher{Kind: types.PublisherKindAgent}
		publisher.Name, _ = scalarString(typed["name"])
		publisher.URI, _ = scalarString(typed["uri"])
		publisher.Mbox, _ = scalarString(typed["mbox"])
		return publisher
	default:
		return types.Publisher{}
	}
}

func parseDistribution(index int, value any) (types.Distribution, error) {
	entry, ok := value.(map[string]any)
	if !ok {
		return types.Distribution{}, conversionErrorf("distribution %d must be an object, not: %s", index, describeType(value))
	}
	field := func(key string) string {
		text, _ := scalarString(entry[key])
		return text
	}
	return types.Distribution{
		Title:       field("title"),
		Description: field("description"),
		Format:      field("format"),
		MediaType:   field("mediaType"),
		DownloadURL: field("downloadURL"),
		AccessURL:   field("accessURL"),
		Temporal:    field("temporal"),
		ByteSize:    entry["byteSize"],
	}, nil
}
