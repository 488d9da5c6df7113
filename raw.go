package querydsl

import (
	"encoding/json"
	"fmt"
)

// RawQuery wraps an already built query structure.
type RawQuery struct {
	source any
}

var _ Query = (*RawQuery)(nil)

// NewRawQuery wraps source without copying it.
func NewRawQuery(source any) *RawQuery {
	return &RawQuery{source: source}
}

// NewRawQueryJSON decodes a JSON object into a RawQuery.
func NewRawQueryJSON(s string) (*RawQuery, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, fmt.Errorf("decode raw query: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("decode raw query: expected object, got %q", s)
	}
	return &RawQuery{source: m}, nil
}

// Source returns the wrapped structure.
func (q *RawQuery) Source() any { return q.source }
