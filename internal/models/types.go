package models

import "encoding/json"

// Listing is one job posting as a service returned it. The aggregation
// pipeline never looks inside a listing; each service adapter owns its
// field names and pulls the salary range out itself.
type Listing = json.RawMessage

// SalaryRange represents the compensation bounds a listing states.
// Either bound may be nil when the listing leaves it out.
type SalaryRange struct {
	Lower    *int
	Upper    *int
	Currency string
}

// Page represents one batch of listings from a paginated search query.
type Page struct {
	Listings []Listing
	// HasMore reports whether the service has pages past this one,
	// per that service's own exhaustion signal.
	HasMore bool
	// Found is the service's total match count for the whole query,
	// as reported on this page's response.
	Found int
}

// LanguageStats represents the salary statistics for one language.
type LanguageStats struct {
	Found     int `json:"vacancies_found"`
	Processed int `json:"vacancies_processed"`
	Average   int `json:"average_salary"`
}

// Report collects per-language statistics for one service, preserving
// the order languages were requested in.
type Report struct {
	Languages []string
	Stats     map[string]LanguageStats
}

func NewReport() *Report {
	return &Report{Stats: make(map[string]LanguageStats)}
}

// Add records the statistics for a language. Re-adding a language
// overwrites its stats without disturbing the order.
func (r *Report) Add(language string, stats LanguageStats) {
	if _, seen := r.Stats[language]; !seen {
		r.Languages = append(r.Languages, language)
	}
	r.Stats[language] = stats
}
