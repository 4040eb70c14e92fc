package rates

import (
	"context"
	"fmt"

	"cbr-rates/internal/models"
)

// Storage is the persistence port the resolver writes through to.
type Storage interface {
	FindRatesByDate(ctx context.Context, date models.Date) ([]models.Rate, error)
	UpsertRates(ctx context.Context, rates []models.Rate, date models.Date) error
	ListCurrencyCodes(ctx context.Context) ([]string, error)
	DeleteRatesForCurrency(ctx context.Context, charCode string) (int64, error)
	CountRates(ctx context.Context) (int, error)
	ListAllRates(ctx context.Context, limit, offset int) ([]models.CurrencyRate, error)
}

// Fetcher is the upstream port, one call per cache miss.
type Fetcher interface {
	FetchRates(ctx context.Context, date models.Date) ([]models.Rate, error)
}

type Service struct {
	storage Storage
	fetcher Fetcher
}

func New(storage Storage, fetcher Fetcher) *Service {
	return &Service{storage: storage, fetcher: fetcher}
}

// GetRatesForDate serves a day's rates from storage, fetching and persisting
// them first if the day has never been seen. An empty upstream document is
// returned as-is and never persisted, so the next request for that day
// re-fetches instead of trusting a possibly-late feed.
//
// Concurrent misses for the same day may both fetch and both write; the
// storage's duplicate suppression keeps exactly one row per currency, so no
// locking happens here.
func (s *Service) GetRatesForDate(ctx context.Context, date models.Date) ([]models.Rate, error) {
	stored, err := s.storage.FindRatesByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("find rates for %s: %w", date, err)
	}
	if len(stored) > 0 {
		return stored, nil
	}

	fetched, err := s.fetcher.FetchRates(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("fetch rates for %s: %w", date, err)
	}
	if len(fetched) == 0 {
		return []models.Rate{}, nil
	}

	if err := s.storage.UpsertRates(ctx, fetched, date); err != nil {
		return nil, fmt.Errorf("save rates for %s: %w", date, err)
	}
	return fetched, nil
}

// ListAllRates pages through every stored rate row, oldest day first. A
// non-positive limit disables windowing. The offset is a zero-based page
// number clamped to the last valid page, so an out-of-range page returns the
// final window rather than nothing.
func (s *Service) ListAllRates(ctx context.Context, limit, offset int) ([]models.CurrencyRate, error) {
	if limit <= 0 {
		return s.storage.ListAllRates(ctx, 0, 0)
	}

	total, err := s.storage.CountRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("count rates: %w", err)
	}

	start := pageStart(total, limit, offset)
	return s.storage.ListAllRates(ctx, limit, start)
}

// pageStart clamps a zero-based page number to the last page and converts it
// to a row offset. The last page is total/limit rounded down, including when
// total is an exact multiple of limit.
func pageStart(total, limit, page int) int {
	if page < 0 {
		page = 0
	}
	maxPage := total / limit
	if page > maxPage {
		page = maxPage
	}
	return page * limit
}

func (s *Service) ListCurrencyCodes(ctx context.Context) ([]string, error) {
	return s.storage.ListCurrencyCodes(ctx)
}

func (s *Service) DeleteRatesForCurrency(ctx context.Context, charCode string) (int64, error) {
	return s.storage.DeleteRatesForCurrency(ctx, charCode)
}
