// Package querydsl provides fluent builders for search-engine query DSL
// clauses.
//
// Every clause implements Query: Source returns the raw, JSON-compatible
// structure that a parent clause or request body embeds as-is.
//
// # Boosting query
//
// A boosting query keeps every document matched by the positive query and
// multiplies the score of those that also match the negative query by
// negative_boost.
//
//	q := querydsl.MustBoostingQuery(
//	    querydsl.NewTermQuery("status", "active"),
//	    querydsl.NewTermQuery("flag", "spam"),
//	    0.2,
//	).SetBoost(1.5)
//
//	body, _ := json.Marshal(q)
//	// {"boosting":{"positive":{"term":{"status":"active"}},
//	//   "negative":{"term":{"flag":"spam"}},"negative_boost":0.2,"boost":1.5}}
package querydsl
