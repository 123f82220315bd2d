package service

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"vacancystats/internal/models"
)

const requestTimeout = 30 * time.Second

// Adapter is implemented once per external job-listing service.
//
// FetchPage issues exactly one HTTP request for the given zero-based
// page of a language query. ExtractSalary pulls the salary range out of
// a single listing using that service's field names, returning nil when
// the listing's currency is not the one the statistics accept or when
// the listing does not parse as one of that service's records.
type Adapter interface {
	Name() string
	FetchPage(ctx context.Context, language string, page int) (models.Page, error)
	ExtractSalary(listing models.Listing) *models.SalaryRange
}

func newClient(baseURL string) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetHeader("Accept", "application/json")
}
