package querydsl

// MatchAllQuery matches every document.
type MatchAllQuery struct {
	boost *float64
}

var _ Query = (*MatchAllQuery)(nil)

// NewMatchAllQuery creates a match_all query.
func NewMatchAllQuery() *MatchAllQuery {
	return &MatchAllQuery{}
}

// SetBoost sets the constant score given to every document.
func (q *MatchAllQuery) SetBoost(v float64) *MatchAllQuery {
	q.boost = &v
	return q
}

// Source returns {"match_all": {}} with an optional boost.
func (q *MatchAllQuery) Source() any {
	body := map[string]any{}
	if q.boost != nil {
		body["boost"] = *q.boost
	}
	return map[string]any{"match_all": body}
}
