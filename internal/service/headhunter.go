package service

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/go-resty/resty/v2"

	"vacancystats/internal/models"
)

const (
	hhBaseURL = "https://api.hh.ru/vacancies"

	// hhCurrency is the only currency code the statistics accept;
	// listings priced in anything else are filtered out.
	hhCurrency = "RUR"
)

// HHConfig carries the fixed hh.ru query filters applied to every
// search: a geography id (1 = Moscow), a professional role id
// (96 = developer), a recency window in days and the page size.
type HHConfig struct {
	Area    int
	Role    int
	Period  int
	PerPage int

	// BaseURL overrides the production API endpoint, for tests.
	BaseURL string
}

// HeadHunter queries the hh.ru vacancies API. The API is anonymous; no
// credential is attached.
type HeadHunter struct {
	client *resty.Client
	cfg    HHConfig
}

func NewHeadHunter(cfg HHConfig) *HeadHunter {
	base := cfg.BaseURL
	if base == "" {
		base = hhBaseURL
	}
	return &HeadHunter{client: newClient(base), cfg: cfg}
}

func (h *HeadHunter) Name() string { return "hh" }

// hhSearchResponse mirrors the fields of an hh.ru search page this tool
// depends on. Pointer fields distinguish an absent field from a zero.
type hhSearchResponse struct {
	Items *[]models.Listing `json:"items"`
	Pages *int              `json:"pages"`
	Found *int              `json:"found"`
}

type hhSalary struct {
	From     *int   `json:"from"`
	To       *int   `json:"to"`
	Currency string `json:"currency"`
}

type hhListing struct {
	Salary *hhSalary `json:"salary"`
}

// FetchPage requests one page of vacancies for a language. hh reports
// its total page count on every response and the latest value wins:
// the returned page claims more pages exactly while the next page index
// does not exceed that count. Found is the query-wide match count the
// service reported alongside this page.
func (h *HeadHunter) FetchPage(ctx context.Context, language string, page int) (models.Page, error) {
	res, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"text":              language,
			"page":              strconv.Itoa(page),
			"per_page":          strconv.Itoa(h.cfg.PerPage),
			"area":              strconv.Itoa(h.cfg.Area),
			"period":            strconv.Itoa(h.cfg.Period),
			"professional_role": strconv.Itoa(h.cfg.Role),
			"only_with_salary":  "true",
		}).
		Get("")
	if err != nil {
		return models.Page{}, &TransportError{Service: h.Name(), URL: h.client.BaseURL, Err: err}
	}
	if res.IsError() {
		return models.Page{}, &TransportError{Service: h.Name(), URL: res.Request.URL, Status: res.StatusCode()}
	}

	var body hhSearchResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return models.Page{}, &SchemaError{Service: h.Name(), Err: err}
	}
	switch {
	case body.Items == nil:
		return models.Page{}, &SchemaError{Service: h.Name(), Field: "items"}
	case body.Pages == nil:
		return models.Page{}, &SchemaError{Service: h.Name(), Field: "pages"}
	case body.Found == nil:
		return models.Page{}, &SchemaError{Service: h.Name(), Field: "found"}
	}

	return models.Page{
		Listings: *body.Items,
		HasMore:  page+1 <= *body.Pages,
		Found:    *body.Found,
	}, nil
}

// ExtractSalary reads the salary block of one hh vacancy. Listings with
// no salary block, or one priced in a foreign currency, yield nil.
func (h *HeadHunter) ExtractSalary(listing models.Listing) *models.SalaryRange {
	var v hhListing
	if err := json.Unmarshal(listing, &v); err != nil {
		return nil
	}
	if v.Salary == nil || v.Salary.Currency != hhCurrency {
		return nil
	}
	return &models.SalaryRange{
		Lower:    v.Salary.From,
		Upper:    v.Salary.To,
		Currency: v.Salary.Currency,
	}
}
