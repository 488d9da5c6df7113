package querydsl

import (
	"encoding/json"
	"fmt"
)

// BoostingClause is the body of a boosting query.
// Boost is nil until explicitly set and is then omitted from the output.
type BoostingClause struct {
	Positive      any      `json:"positive"`
	Negative      any      `json:"negative"`
	NegativeBoost float64  `json:"negative_boost"`
	Boost         *float64 `json:"boost,omitempty"`
}

// BoostingQuery is a fluent builder for the boosting compound query.
// It is not safe for concurrent mutation.
type BoostingQuery struct {
	clause BoostingClause
}

var _ Query = (*BoostingQuery)(nil)

// NewBoostingQuery creates a boosting query from the positive and negative
// sub-queries and the factor applied to documents matching negative.
// negativeBoost is expected in (0, 1) but not checked; see ValidateNegativeBoost.
func NewBoostingQuery(positive, negative Query, negativeBoost float64) (*BoostingQuery, error) {
	if isNilQuery(positive) {
		return nil, fmt.Errorf("positive: %w", ErrTypeMismatch)
	}
	if isNilQuery(negative) {
		return nil, fmt.Errorf("negative: %w", ErrTypeMismatch)
	}
	return &BoostingQuery{
		clause: BoostingClause{
			Positive:      positive.Source(),
			Negative:      negative.Source(),
			NegativeBoost: negativeBoost,
		},
	}, nil
}

// MustBoostingQuery calls NewBoostingQuery and panics on error.
func MustBoostingQuery(positive, negative Query, negativeBoost float64) *BoostingQuery {
	q, err := NewBoostingQuery(positive, negative, negativeBoost)
	if err != nil {
		panic(err)
	}
	return q
}

// Positive returns the stored source of the positive query.
func (q *BoostingQuery) Positive() any { return q.clause.Positive }

// SetPositive replaces the query that selects the returned documents.
// A nil query leaves the current value in place.
func (q *BoostingQuery) SetPositive(query Query) *BoostingQuery {
	if isNilQuery(query) {
		return q
	}
	q.clause.Positive = query.Source()
	return q
}

// Negative returns the stored source of the negative query.
func (q *BoostingQuery) Negative() any { return q.clause.Negative }

// SetNegative replaces the query whose matches get demoted.
// A nil query leaves the current value in place.
func (q *BoostingQuery) SetNegative(query Query) *BoostingQuery {
	if isNilQuery(query) {
		return q
	}
	q.clause.Negative = query.Source()
	return q
}

// NegativeBoost returns the demotion factor.
func (q *BoostingQuery) NegativeBoost() float64 { return q.clause.NegativeBoost }

// SetNegativeBoost sets the demotion factor.
func (q *BoostingQuery) SetNegativeBoost(v float64) *BoostingQuery {
	q.clause.NegativeBoost = v
	return q
}

// Boost returns the overall query boost and whether it was set.
func (q *BoostingQuery) Boost() (float64, bool) {
	if q.clause.Boost == nil {
		return 0, false
	}
	return *q.clause.Boost, true
}

// SetBoost sets the overall query boost.
func (q *BoostingQuery) SetBoost(v float64) *BoostingQuery {
	q.clause.Boost = &v
	return q
}

// ValidateNegativeBoost reports whether negative_boost lies in (0, 1).
// The builder never calls it itself.
func (q *BoostingQuery) ValidateNegativeBoost() error {
	nb := q.clause.NegativeBoost
	if !(nb > 0 && nb < 1) {
		return fmt.Errorf("negative_boost must be in (0, 1), got %g: %w", nb, ErrNegativeBoostOutOfRange)
	}
	return nil
}

// Source returns {"boosting": clause}. The clause is the builder's own
// record: changes made through it are visible to the builder and vice versa.
func (q *BoostingQuery) Source() any {
	return map[string]any{"boosting": &q.clause}
}

// MarshalJSON implements json.Marshaler.
func (q *BoostingQuery) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(q.Source())
	if err != nil {
		return nil, fmt.Errorf("marshal boosting query: %w", err)
	}
	return data, nil
}

// String returns the JSON encoding of the query.
func (q *BoostingQuery) String() string {
	data, err := q.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("boosting(%v)", err)
	}
	return string(data)
}
