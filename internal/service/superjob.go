package service

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/go-resty/resty/v2"

	"vacancystats/internal/models"
)

const (
	sjBaseURL = "https://api.superjob.ru/2.0/vacancies/"

	// sjCurrency is the only currency code the statistics accept.
	sjCurrency = "rub"

	sjAppIDHeader = "X-Api-App-Id"
)

// SJConfig carries the fixed superjob.ru query filters: a town id
// (4 = Moscow) and the application credential sent with every request.
type SJConfig struct {
	Town  int
	Token string

	// BaseURL overrides the production API endpoint, for tests.
	BaseURL string
}

// SuperJob queries the superjob.ru vacancies API. The credential is
// attached as a header on every request; a missing or rejected token
// surfaces as a TransportError on the first fetch, not here.
type SuperJob struct {
	client *resty.Client
	cfg    SJConfig
}

func NewSuperJob(cfg SJConfig) *SuperJob {
	base := cfg.BaseURL
	if base == "" {
		base = sjBaseURL
	}
	client := newClient(base).SetHeader(sjAppIDHeader, cfg.Token)
	return &SuperJob{client: client, cfg: cfg}
}

func (s *SuperJob) Name() string { return "superjob" }

// sjSearchResponse mirrors the fields of a superjob search page this
// tool depends on.
type sjSearchResponse struct {
	Objects *[]models.Listing `json:"objects"`
	More    *bool             `json:"more"`
	Total   *int              `json:"total"`
}

type sjListing struct {
	PaymentFrom *int   `json:"payment_from"`
	PaymentTo   *int   `json:"payment_to"`
	Currency    string `json:"currency"`
}

// FetchPage requests one page of vacancies for a language. superjob
// flags exhaustion explicitly: the page whose "more" is false is the
// last one, its listings included. Total repeats the same query-wide
// match count on every page.
func (s *SuperJob) FetchPage(ctx context.Context, language string, page int) (models.Page, error) {
	res, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"keyword": language,
			"town":    strconv.Itoa(s.cfg.Town),
			"page":    strconv.Itoa(page),
		}).
		Get("")
	if err != nil {
		return models.Page{}, &TransportError{Service: s.Name(), URL: s.client.BaseURL, Err: err}
	}
	if res.IsError() {
		return models.Page{}, &TransportError{Service: s.Name(), URL: res.Request.URL, Status: res.StatusCode()}
	}

	var body sjSearchResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return models.Page{}, &SchemaError{Service: s.Name(), Err: err}
	}
	switch {
	case body.Objects == nil:
		return models.Page{}, &SchemaError{Service: s.Name(), Field: "objects"}
	case body.More == nil:
		return models.Page{}, &SchemaError{Service: s.Name(), Field: "more"}
	case body.Total == nil:
		return models.Page{}, &SchemaError{Service: s.Name(), Field: "total"}
	}

	return models.Page{
		Listings: *body.Objects,
		HasMore:  *body.More,
		Found:    *body.Total,
	}, nil
}

// ExtractSalary reads the payment fields of one superjob vacancy.
// superjob reports an absent bound as 0 rather than null; both are
// normalized to a nil bound. Foreign-currency listings yield nil.
func (s *SuperJob) ExtractSalary(listing models.Listing) *models.SalaryRange {
	var v sjListing
	if err := json.Unmarshal(listing, &v); err != nil {
		return nil
	}
	if v.Currency != sjCurrency {
		return nil
	}
	return &models.SalaryRange{
		Lower:    sjBound(v.PaymentFrom),
		Upper:    sjBound(v.PaymentTo),
		Currency: v.Currency,
	}
}

func sjBound(v *int) *int {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}
