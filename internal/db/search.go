package db

import "encoding/json"

// SearchRequest is a search body:
// {track_total_hits, size, from, sort, query: {bool: {must, filter}}, aggregations}.
type SearchRequest struct {
	TrackTotalHits bool                   `json:"track_total_hits"`
	Size           int                    `json:"size"`
	From           int                    `json:"from"`
	Sort           []map[string]string    `json:"sort,omitempty"`
	Query          Query                  `json:"query"`
	Aggregations   map[string]Aggregation `json:"aggregations,omitempty"`
}

// Query wraps the boolean query.
type Query struct {
	Bool BoolQuery `json:"bool"`
}

// BoolQuery combines scoring clauses (must) with non-scoring clauses (filter).
// Every clause must match.
type BoolQuery struct {
	Must   []Clause `json:"must"`
	Filter []Clause `json:"filter,omitempty"`
}

// Clause is a single leaf query.
type Clause map[string]any

// MatchAll matches every document.
func MatchAll() Clause {
	return Clause{"match_all": struct{}{}}
}

// SimpleQueryString matches free text over fields, requiring every term.
func SimpleQueryString(query string, fields ...string) Clause {
	body := map[string]any{
		"query":            query,
		"default_operator": "and",
	}
	if len(fields) > 0 {
		body["fields"] = fields
	}
	return Clause{"simple_query_string": body}
}

// Term matches documents whose field holds exactly value.
func Term(field, value string) Clause {
	return Clause{"term": map[string]string{field: value}}
}

// Aggregation is a bucket aggregation.
type Aggregation struct {
	Terms TermsAggregation `json:"terms"`
}

// TermsAggregation counts documents per distinct field value.
type TermsAggregation struct {
	Field string `json:"field"`
	Size  int    `json:"size"`
}

// SearchResponse is the subset of a search response the layer reads.
type SearchResponse struct {
	Hits         Hits                         `json:"hits"`
	Aggregations map[string]AggregationResult `json:"aggregations"`
}

// Hits holds the total count and the requested page.
type Hits struct {
	Total TotalHits `json:"total"`
	Hits  []Hit     `json:"hits"`
}

// TotalHits is the number of matching documents.
type TotalHits struct {
	Value int `json:"value"`
}

// Hit is a single matching document.
type Hit struct {
	ID     string          `json:"_id"`
	Source json.RawMessage `json:"_source"`
}

// AggregationResult holds the buckets of a terms aggregation.
type AggregationResult struct {
	Buckets []Bucket `json:"buckets"`
}

// Bucket is one distinct value and its document count.
type Bucket struct {
	Key      string `json:"key"`
	DocCount int    `json:"doc_count"`
}
