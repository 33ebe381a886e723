package outlier

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
)

// Extractor maps a record to the number it is classified by.
type Extractor[R any, T Number] func(record R) (T, error)

// Identity classifies numeric records by their own value.
func Identity[T Number]() Extractor[T, T] {
	return func(record T) (T, error) {
		return record, nil
	}
}

// Field extracts the numeric field key of a string keyed record, such as a
// decoded JSON object. Strings are never parsed into numbers.
func Field(key string) Extractor[map[string]any, float64] {
	return func(record map[string]any) (float64, error) {
		raw, ok := record[key]
		if !ok {
			return 0, errors.Wrapf(ErrMissingField, "field %q", key)
		}

		switch v := raw.(type) {
		case float64:
			return v, nil
		case float32:
			return float64(v), nil
		case int:
			return float64(v), nil
		case int8:
			return float64(v), nil
		case int16:
			return float64(v), nil
		case int32:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case uint:
			return float64(v), nil
		case uint8:
			return float64(v), nil
		case uint16:
			return float64(v), nil
		case uint32:
			return float64(v), nil
		case uint64:
			return float64(v), nil
		case json.Number:
			f, err := v.Float64()
			if err != nil {
				return 0, errors.Wrapf(ErrTypeMismatch, "field %q: %v", key, err)
			}
			return f, nil
		}

		return 0, errors.Wrapf(ErrTypeMismatch, "field %q holds %T", key, raw)
	}
}

// JSONField extracts the numeric field key of a JSON object record.
func JSONField(key string) Extractor[*fastjson.Value, float64] {
	return func(record *fastjson.Value) (float64, error) {
		if record == nil || record.Type() != fastjson.TypeObject {
			return 0, errors.Wrapf(ErrTypeMismatch, "record is not an object, cannot read field %q", key)
		}

		field := record.Get(key)
		if field == nil {
			return 0, errors.Wrapf(ErrMissingField, "field %q", key)
		}

		if field.Type() != fastjson.TypeNumber {
			return 0, errors.Wrapf(ErrTypeMismatch, "field %q is a JSON %s", key, field.Type())
		}

		return field.Float64()
	}
}

// JSONNumber classifies JSON number records by their value.
func JSONNumber() Extractor[*fastjson.Value, float64] {
	return func(record *fastjson.Value) (float64, error) {
		if record == nil || record.Type() != fastjson.TypeNumber {
			var t fastjson.Type = fastjson.TypeNull
			if record != nil {
				t = record.Type()
			}
			return 0, errors.Wrapf(ErrTypeMismatch, "record is a JSON %s", t)
		}

		return record.Float64()
	}
}
