package stats

import (
	"context"
	"fmt"

	"vacancystats/internal/models"
	"vacancystats/internal/paginate"
	"vacancystats/internal/salary"
	"vacancystats/internal/service"
)

// Collector folds a service's listings into per-language salary
// statistics. It holds no state of its own; every language is an
// independent pass over that language's page sequence.
type Collector struct {
	Adapter service.Adapter
}

// Language drains every result page for one language and folds the
// salary estimates into a LanguageStats. Found takes the latest fetched
// page's reported total: hh recomputes the figure per page while
// superjob repeats one value, and in both cases the last-seen value is
// the one kept. Listings in a foreign currency or without any salary
// bounds contribute nothing. Any fetch error aborts the language with
// no LanguageStats produced.
func (c Collector) Language(ctx context.Context, language string) (models.LanguageStats, error) {
	var result models.LanguageStats
	var sum int

	pager := paginate.New(c.Adapter, language)
	for {
		page, ok, err := pager.Next(ctx)
		if err != nil {
			return models.LanguageStats{}, err
		}
		if !ok {
			break
		}

		result.Found = page.Found
		for _, listing := range page.Listings {
			r := c.Adapter.ExtractSalary(listing)
			if r == nil {
				continue
			}
			estimate, ok := salary.Estimate(*r)
			if !ok {
				continue
			}
			sum += estimate
			result.Processed++
		}
	}

	if result.Processed > 0 {
		result.Average = sum / result.Processed
	}
	return result, nil
}

// Report runs Language over each language in the given order, strictly
// sequentially. The first failure stops the run; the partially built
// report is returned alongside the error so the caller can choose
// between aborting and reporting what completed.
func (c Collector) Report(ctx context.Context, languages []string) (*models.Report, error) {
	report := models.NewReport()
	for _, language := range languages {
		stats, err := c.Language(ctx, language)
		if err != nil {
			return report, fmt.Errorf("collect %q from %s: %w", language, c.Adapter.Name(), err)
		}
		report.Add(language, stats)
	}
	return report, nil
}
