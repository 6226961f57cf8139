package models

// SearchJobsResponse represents the API response for a 104 job search
// @Description Aggregated job search results
type SearchJobsResponse struct {
	Results      []JobRecord `json:"results"`
	TotalResults int         `json:"total_results" example:"10"`
	PagesFetched int         `json:"pages_fetched" example:"2"`
	Warning      string      `json:"warning,omitempty" example:"stopped after 1 of 3 pages: upstream returned status 503"`
}

// DocumentMatchResponse represents the result of a document keyword lookup
// @Description Keyword match result with surrounding context
type DocumentMatchResponse struct {
	Query   string `json:"query" example:"golang"`
	Found   bool   `json:"found" example:"true"`
	Answer  string `json:"answer" example:"query \"golang\" found in document"`
	Context string `json:"context"`
}

// VectorStoreResponse represents the placeholder vector search result
// @Description Matched corpus entries for a query
type VectorStoreResponse struct {
	Query          string   `json:"query" example:"langchain"`
	Answer         string   `json:"answer" example:"found 2 related results"`
	MatchedSources []string `json:"matched_sources"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"keyword is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// RootResponse represents the root status block with the endpoint directory
// @Description API status and endpoint directory
type RootResponse struct {
	Status     string            `json:"status" example:"online"`
	APIVersion string            `json:"api_version" example:"1.0.0"`
	Endpoints  map[string]string `json:"endpoints"`
}
