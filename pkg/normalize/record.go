package normalize

import (
	"encoding/json"
	"math"

	"github.com/google/uuid"
)

// Record is one raw entity as decoded from the catalog service. Values may be missing,
// null or of the wrong type; every accessor reports such values as absent.
type Record map[string]any

func (r Record) String(key string) (string, bool) {
	value, found := r[key].(string)

	return value, found
}

func (r Record) Int(key string) (int, bool) {
	switch value := r[key].(type) {
	case json.Number:
		if parsed, err := value.Int64(); err == nil {
			return int(parsed), true
		}

		parsed, err := value.Float64()
		if err != nil || parsed != math.Trunc(parsed) {
			return 0, false
		}

		return int(parsed), true
	case float64:
		if value != math.Trunc(value) || math.IsInf(value, 0) {
			return 0, false
		}

		return int(value), true
	case int:
		return value, true
	case int64:
		return int(value), true
	default:
		return 0, false
	}
}

func (r Record) Float(key string) (float64, bool) {
	switch value := r[key].(type) {
	case json.Number:
		parsed, err := value.Float64()
		if err != nil {
			return 0, false
		}

		return parsed, true
	case float64:
		return value, true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	default:
		return 0, false
	}
}

// Strings returns the string members of a list, dropping anything that is not a string.
func (r Record) Strings(key string) ([]string, bool) {
	switch values := r[key].(type) {
	case []string:
		return append([]string{}, values...), true
	case []any:
		result := make([]string, 0, len(values))

		for _, value := range values {
			if text, isString := value.(string); isString {
				result = append(result, text)
			}
		}

		return result, true
	default:
		return nil, false
	}
}

func (r Record) UUID(key string) (uuid.UUID, bool) {
	text, found := r.String(key)
	if !found {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(text)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func (r Record) Record(key string) (Record, bool) {
	switch value := r[key].(type) {
	case map[string]any:
		return value, true
	case Record:
		return value, true
	default:
		return nil, false
	}
}
