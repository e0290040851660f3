package mock

import (
	"context"

	"github.com/fwojciec/wikiquiz"
)

var _ wikiquiz.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of wikiquiz.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*wikiquiz.Article, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*wikiquiz.Article, error) {
	return s.ScrapeFn(ctx, url)
}
