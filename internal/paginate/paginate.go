package paginate

import (
	"context"

	"vacancystats/internal/models"
	"vacancystats/internal/service"
)

// Pager walks a service's result pages for one language, issuing one
// request per Next call so the consumer controls pacing and no page is
// buffered beyond the one in hand. A Pager is forward-only: the page
// counter starts at zero and cannot be rewound or reused.
type Pager struct {
	adapter  service.Adapter
	language string
	page     int
	done     bool
}

func New(adapter service.Adapter, language string) *Pager {
	return &Pager{adapter: adapter, language: language}
}

// Next fetches the next page. The second return is false once the
// sequence is exhausted. An adapter error ends the sequence for good;
// later calls report exhaustion without issuing further requests.
func (p *Pager) Next(ctx context.Context) (models.Page, bool, error) {
	if p.done {
		return models.Page{}, false, nil
	}

	page, err := p.adapter.FetchPage(ctx, p.language, p.page)
	if err != nil {
		p.done = true
		return models.Page{}, false, err
	}
	p.page++

	if !page.HasMore {
		p.done = true
	}
	return page, true, nil
}
