package stats

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"vacancystats/internal/models"
	"vacancystats/internal/service"
)

func newHHCollector(t *testing.T, handler http.HandlerFunc) Collector {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return Collector{Adapter: service.NewHeadHunter(service.HHConfig{
		Area:    1,
		Role:    96,
		Period:  30,
		PerPage: 100,
		BaseURL: srv.URL,
	})}
}

func newSJCollector(t *testing.T, handler http.HandlerFunc) Collector {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return Collector{Adapter: service.NewSuperJob(service.SJConfig{
		Town:    4,
		Token:   "test-app-id",
		BaseURL: srv.URL,
	})}
}

// One hh page with a rouble listing (estimate 110000) and a dollar
// listing (filtered out): 5 found, 1 processed.
func TestCollectorHeadHunterLanguage(t *testing.T) {
	collector := newHHCollector(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"items": [
				{"salary": {"from": 100000, "to": 120000, "currency": "RUR"}},
				{"salary": {"from": 100000, "to": 120000, "currency": "USD"}}
			],
			"pages": 0,
			"found": 5
		}`)
	})

	stats, err := collector.Language(context.Background(), "python")
	require.NoError(t, err)
	require.Equal(t, models.LanguageStats{Found: 5, Processed: 1, Average: 110000}, stats)
}

// Two superjob pages: one estimable listing on the first (50000 lower
// bound, estimate 40000), an empty-range listing on the second.
func TestCollectorSuperJobLanguage(t *testing.T) {
	collector := newSJCollector(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "0":
			fmt.Fprint(w, `{
				"objects": [{"payment_from": 50000, "payment_to": 0, "currency": "rub"}],
				"more": true,
				"total": 10
			}`)
		default:
			fmt.Fprint(w, `{
				"objects": [{"payment_from": 0, "payment_to": 0, "currency": "rub"}],
				"more": false,
				"total": 10
			}`)
		}
	})

	stats, err := collector.Language(context.Background(), "go")
	require.NoError(t, err)
	require.Equal(t, models.LanguageStats{Found: 10, Processed: 1, Average: 40000}, stats)
}

func TestCollectorNothingEstimable(t *testing.T) {
	collector := newHHCollector(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"items": [{"salary": {"from": 100000, "to": null, "currency": "USD"}}],
			"pages": 0,
			"found": 3
		}`)
	})

	stats, err := collector.Language(context.Background(), "cobol")
	require.NoError(t, err)
	require.Equal(t, models.LanguageStats{Found: 3, Processed: 0, Average: 0}, stats)
}

// A failure on the second page aborts the language: no stats come back,
// just the transport error.
func TestCollectorErrorMidPagination(t *testing.T) {
	collector := newHHCollector(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "0" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{
			"items": [{"salary": {"from": 100000, "to": 120000, "currency": "RUR"}}],
			"pages": 1,
			"found": 200
		}`)
	})

	_, err := collector.Language(context.Background(), "python")

	var transportErr *service.TransportError
	require.ErrorAs(t, err, &transportErr)
	require.Equal(t, http.StatusInternalServerError, transportErr.Status)
}

// failingAdapter errors for one specific language and serves a fixed
// single page for every other.
type failingAdapter struct {
	badLanguage string
}

func (a failingAdapter) Name() string { return "flaky" }

func (a failingAdapter) FetchPage(ctx context.Context, language string, page int) (models.Page, error) {
	if language == a.badLanguage {
		return models.Page{}, &service.TransportError{Service: a.Name(), Status: http.StatusBadGateway}
	}
	return models.Page{
		Listings: []models.Listing{models.Listing(`{"from": 60000, "to": 80000}`)},
		HasMore:  false,
		Found:    1,
	}, nil
}

func (a failingAdapter) ExtractSalary(listing models.Listing) *models.SalaryRange {
	return &models.SalaryRange{Lower: intp(60000), Upper: intp(80000), Currency: "RUR"}
}

func intp(v int) *int { return &v }

func TestReportStopsAtFirstFailure(t *testing.T) {
	collector := Collector{Adapter: failingAdapter{badLanguage: "java"}}

	report, err := collector.Report(context.Background(), []string{"python", "java", "go"})
	require.Error(t, err)

	var transportErr *service.TransportError
	require.ErrorAs(t, err, &transportErr)

	// the languages completed before the failure survive untouched
	require.Equal(t, []string{"python"}, report.Languages)
	require.Equal(t, models.LanguageStats{Found: 1, Processed: 1, Average: 70000}, report.Stats["python"])
}

// The caller can skip a failed language and keep going; later languages
// are unaffected.
func TestPerLanguageCollectionContinues(t *testing.T) {
	collector := Collector{Adapter: failingAdapter{badLanguage: "java"}}
	report := models.NewReport()

	for _, language := range []string{"python", "java", "go"} {
		stats, err := collector.Language(context.Background(), language)
		if err != nil {
			continue
		}
		report.Add(language, stats)
	}

	require.Equal(t, []string{"python", "go"}, report.Languages)
	require.Equal(t, models.LanguageStats{Found: 1, Processed: 1, Average: 70000}, report.Stats["go"])
}

func TestReportPreservesLanguageOrder(t *testing.T) {
	collector := Collector{Adapter: failingAdapter{}}

	languages := []string{"python", "go", "java"}
	report, err := collector.Report(context.Background(), languages)
	require.NoError(t, err)
	require.Equal(t, languages, report.Languages)
}
