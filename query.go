package querydsl

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Query is implemented by every clause builder.
type Query interface {
	// Source returns the raw structure of the clause, ready for json.Marshal.
	Source() any
}

// AsQuery converts a dynamically typed value into a Query.
// Query implementations are returned unchanged; raw mappings and
// json.RawMessage are wrapped in a RawQuery. Anything else fails with
// ErrTypeMismatch.
func AsQuery(v any) (Query, error) {
	switch t := v.(type) {
	case nil:
		return nil, fmt.Errorf("nil value: %w", ErrTypeMismatch)
	case Query:
		if isNilQuery(t) {
			return nil, fmt.Errorf("nil %T: %w", t, ErrTypeMismatch)
		}
		return t, nil
	case map[string]any:
		return NewRawQuery(t), nil
	case json.RawMessage:
		if !json.Valid(t) {
			return nil, fmt.Errorf("invalid raw json: %w", ErrTypeMismatch)
		}
		return NewRawQuery(t), nil
	default:
		return nil, fmt.Errorf("%T: %w", v, ErrTypeMismatch)
	}
}

// isNilQuery catches typed nil pointers hidden behind a non-nil interface.
func isNilQuery(q Query) bool {
	if q == nil {
		return true
	}
	rv := reflect.ValueOf(q)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
