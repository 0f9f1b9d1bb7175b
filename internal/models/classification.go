package models

import "github.com/google/uuid"

// ClassifyResponse is the wire shape returned by the form endpoint, consumed
// directly by the page script.
type ClassifyResponse struct {
	Codes     []string          `json:"codes"`
	Reasoning map[string]string `json:"reasoning"`
}

// ClassificationAPIResponse is the JSON API variant, with a per-request id
// so clients can correlate results with their logs.
type ClassificationAPIResponse struct {
	ID         uuid.UUID         `json:"id"`
	Codes      []string          `json:"codes"`
	Reasoning  map[string]string `json:"reasoning"`
	TextLength int               `json:"text_length"`
}

// TaxonomyEntryResponse describes one taxonomy entry for the API.
type TaxonomyEntryResponse struct {
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}
