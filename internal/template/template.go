// Package template decodes declarative boosting query templates.
//
// A template is a YAML (or JSON) document of the form
//
//	boosting:
//	  positive: {term: {status: active}}
//	  negative: {term: {flag: spam}}
//	  negative_boost: 0.2
//	  boost: 1.5
//
// where positive and negative hold raw query structures.
package template

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/querydsl"
)

// ErrInvalidTemplate signals a template missing required fields.
var ErrInvalidTemplate = errors.New("invalid template")

type document struct {
	Boosting *boostingDoc `yaml:"boosting"`
}

type boostingDoc struct {
	Positive      any      `yaml:"positive"`
	Negative      any      `yaml:"negative"`
	NegativeBoost *float64 `yaml:"negative_boost"`
	Boost         *float64 `yaml:"boost"`
}

// Parse builds a boosting query from template bytes.
func Parse(data []byte) (*querydsl.BoostingQuery, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode template: %w", err)
	}
	b := doc.Boosting
	if b == nil {
		return nil, fmt.Errorf("missing boosting section: %w", ErrInvalidTemplate)
	}
	if b.Positive == nil {
		return nil, fmt.Errorf("missing boosting.positive: %w", ErrInvalidTemplate)
	}
	if b.Negative == nil {
		return nil, fmt.Errorf("missing boosting.negative: %w", ErrInvalidTemplate)
	}
	if b.NegativeBoost == nil {
		return nil, fmt.Errorf("missing boosting.negative_boost: %w", ErrInvalidTemplate)
	}

	positive, err := querydsl.AsQuery(normalize(b.Positive))
	if err != nil {
		return nil, fmt.Errorf("boosting.positive: %w", err)
	}
	negative, err := querydsl.AsQuery(normalize(b.Negative))
	if err != nil {
		return nil, fmt.Errorf("boosting.negative: %w", err)
	}

	q, err := querydsl.NewBoostingQuery(positive, negative, *b.NegativeBoost)
	if err != nil {
		return nil, fmt.Errorf("build boosting query: %w", err)
	}
	if b.Boost != nil {
		q.SetBoost(*b.Boost)
	}
	return q, nil
}

// ParseFile reads and parses a template file.
func ParseFile(path string) (*querydsl.BoostingQuery, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	q, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return q, nil
}

// normalize converts YAML mappings with non-string keys into
// map[string]any so the result is JSON-encodable.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}
