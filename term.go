package querydsl

// TermQuery matches documents whose field contains the exact value.
type TermQuery struct {
	field string
	value any
	boost *float64
}

var _ Query = (*TermQuery)(nil)

// NewTermQuery creates a term query.
func NewTermQuery(field string, value any) *TermQuery {
	return &TermQuery{field: field, value: value}
}

// SetBoost sets the clause boost.
func (q *TermQuery) SetBoost(v float64) *TermQuery {
	q.boost = &v
	return q
}

// Source returns {"term": {field: value}}, expanded to
// {"term": {field: {"value": ..., "boost": ...}}} when a boost is set.
func (q *TermQuery) Source() any {
	leaf := q.value
	if q.boost != nil {
		leaf = &struct {
			Value any      `json:"value"`
			Boost *float64 `json:"boost,omitempty"`
		}{q.value, q.boost}
	}
	return map[string]any{
		"term": map[string]any{q.field: leaf},
	}
}
