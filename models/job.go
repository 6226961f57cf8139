package models

// JobRecord represents one aggregated job listing: the search-page summary
// merged with the detail description when the detail fetch succeeded.
type JobRecord struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Link        string `json:"link"`
	Description string `json:"description"`

	// DetailError carries the reason the detail fetch failed, if it did.
	// The record is still included in the result set.
	DetailError string `json:"detail_error,omitempty"`
}

// JobDetail holds the extended fields fetched per listing from the detail API
type JobDetail struct {
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
}
