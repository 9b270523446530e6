package model

// SearchRequest is the body of POST /search.
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// SearchResponse echoes the query, the extracted filters, the matched
// property cards and a generated summary.
type SearchResponse struct {
	Query      string         `json:"query"`
	Filters    *Filters       `json:"filters"`
	Properties []PropertyCard `json:"properties"`
	Summary    string         `json:"summary"`
	Took       int64          `json:"took_ms"`
}

// HealthResponse reports readiness of the data layer and of the
// language-understanding capability as independent booleans.
type HealthResponse struct {
	Status    string `json:"status"`
	DataReady bool   `json:"data_ready"`
	NLUReady  bool   `json:"nlu_ready"`
	Listings  int    `json:"listings"`
	Version   string `json:"version"`
}
