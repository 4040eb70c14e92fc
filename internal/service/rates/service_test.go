package rates_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cbr-rates/internal/models"
	"cbr-rates/internal/service/rates"
	"cbr-rates/internal/service/rates/mock"
)

func sampleDate() models.Date {
	return models.NewDate(2002, time.April, 22)
}

func sampleRates() []models.Rate {
	return []models.Rate{
		{CharCode: "USD", Name: "US Dollar", Nominal: 1, Value: decimal.RequireFromString("31.1192")},
		{CharCode: "JPY", Name: "Japanese Yen", Nominal: 100, Value: decimal.RequireFromString("23.8416")},
	}
}

func TestService_GetRatesForDate_CacheHit(t *testing.T) {
	mockStorage := mock.NewMockStorage(t)
	mockFetcher := mock.NewMockFetcher(t)

	stored := sampleRates()
	mockStorage.EXPECT().
		FindRatesByDate(testifymock.Anything, sampleDate()).
		Return(stored, nil).
		Once()

	svc := rates.New(mockStorage, mockFetcher)
	result, err := svc.GetRatesForDate(context.Background(), sampleDate())

	require.NoError(t, err)
	assert.Equal(t, stored, result)
	// no expectations were set on the fetcher: any call would fail the test
	mockFetcher.AssertNotCalled(t, "FetchRates")
}

func TestService_GetRatesForDate_MissFetchesAndPersists(t *testing.T) {
	mockStorage := mock.NewMockStorage(t)
	mockFetcher := mock.NewMockFetcher(t)

	fetched := sampleRates()
	mockStorage.EXPECT().
		FindRatesByDate(testifymock.Anything, sampleDate()).
		Return(nil, nil).
		Once()
	mockFetcher.EXPECT().
		FetchRates(testifymock.Anything, sampleDate()).
		Return(fetched, nil).
		Once()
	mockStorage.EXPECT().
		UpsertRates(testifymock.Anything, fetched, sampleDate()).
		Return(nil).
		Once()

	svc := rates.New(mockStorage, mockFetcher)
	result, err := svc.GetRatesForDate(context.Background(), sampleDate())

	require.NoError(t, err)
	assert.Equal(t, fetched, result)
}

func TestService_GetRatesForDate_SecondCallSkipsFetcher(t *testing.T) {
	mockStorage := mock.NewMockStorage(t)
	mockFetcher := mock.NewMockFetcher(t)

	fetched := sampleRates()

	// first call misses, second sees what the first one wrote
	mockStorage.EXPECT().
		FindRatesByDate(testifymock.Anything, sampleDate()).
		Return(nil, nil).
		Once()
	mockFetcher.EXPECT().
		FetchRates(testifymock.Anything, sampleDate()).
		Return(fetched, nil).
		Once()
	mockStorage.EXPECT().
		UpsertRates(testifymock.Anything, fetched, sampleDate()).
		Return(nil).
		Once()
	mockStorage.EXPECT().
		FindRatesByDate(testifymock.Anything, sampleDate()).
		Return(fetched, nil).
		Once()

	svc := rates.New(mockStorage, mockFetcher)

	first, err := svc.GetRatesForDate(context.Background(), sampleDate())
	require.NoError(t, err)
	second, err := svc.GetRatesForDate(context.Background(), sampleDate())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	mockFetcher.AssertNumberOfCalls(t, "FetchRates", 1)
}

func TestService_GetRatesForDate_EmptyFetchNotPersisted(t *testing.T) {
	mockStorage := mock.NewMockStorage(t)
	mockFetcher := mock.NewMockFetcher(t)

	mockStorage.EXPECT().
		FindRatesByDate(testifymock.Anything, sampleDate()).
		Return(nil, nil).
		Once()
	mockFetcher.EXPECT().
		FetchRates(testifymock.Anything, sampleDate()).
		Return([]models.Rate{}, nil).
		Once()

	svc := rates.New(mockStorage, mockFetcher)
	result, err := svc.GetRatesForDate(context.Background(), sampleDate())

	require.NoError(t, err)
	assert.Empty(t, result)
	mockStorage.AssertNotCalled(t, "UpsertRates")
}

func TestService_GetRatesForDate_UpstreamError(t *testing.T) {
	mockStorage := mock.NewMockStorage(t)
	mockFetcher := mock.NewMockFetcher(t)

	mockStorage.EXPECT().
		FindRatesByDate(testifymock.Anything, sampleDate()).
		Return(nil, nil).
		Once()
	mockFetcher.EXPECT().
		FetchRates(testifymock.Anything, sampleDate()).
		Return(nil, models.ErrUpstreamUnavailable).
		Once()

	svc := rates.New(mockStorage, mockFetcher)
	result, err := svc.GetRatesForDate(context.Background(), sampleDate())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrUpstreamUnavailable)
}

func TestService_ListAllRates_NoLimitReturnsEverything(t *testing.T) {
	mockStorage := mock.NewMockStorage(t)
	mockFetcher := mock.NewMockFetcher(t)

	all := []models.CurrencyRate{
		{Date: sampleDate(), CharCode: "USD", Name: "US Dollar", Nominal: 1, Value: decimal.NewFromInt(31)},
	}
	mockStorage.EXPECT().
		ListAllRates(testifymock.Anything, 0, 0).
		Return(all, nil).
		Once()

	svc := rates.New(mockStorage, mockFetcher)
	result, err := svc.ListAllRates(context.Background(), 0, 0)

	require.NoError(t, err)
	assert.Equal(t, all, result)
	mockStorage.AssertNotCalled(t, "CountRates")
}

func TestService_ListAllRates_WindowStartsAtPageBoundary(t *testing.T) {
	mockStorage := mock.NewMockStorage(t)
	mockFetcher := mock.NewMockFetcher(t)

	page := make([]models.CurrencyRate, 20)
	mockStorage.EXPECT().
		CountRates(testifymock.Anything).
		Return(60, nil).
		Once()
	mockStorage.EXPECT().
		ListAllRates(testifymock.Anything, 20, 20).
		Return(page, nil).
		Once()

	svc := rates.New(mockStorage, mockFetcher)
	result, err := svc.ListAllRates(context.Background(), 20, 1)

	require.NoError(t, err)
	assert.Len(t, result, 20)
}

func TestService_ListAllRates_OffsetBeyondLastPageClamps(t *testing.T) {
	mockStorage := mock.NewMockStorage(t)
	mockFetcher := mock.NewMockFetcher(t)

	mockStorage.EXPECT().
		CountRates(testifymock.Anything).
		Return(61, nil).
		Once()
	// 61/20 floors to page 3, so page 9 snaps to row offset 60
	mockStorage.EXPECT().
		ListAllRates(testifymock.Anything, 20, 60).
		Return([]models.CurrencyRate{{CharCode: "USD"}}, nil).
		Once()

	svc := rates.New(mockStorage, mockFetcher)
	result, err := svc.ListAllRates(context.Background(), 20, 9)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestService_DeleteRatesForCurrency_PassesThrough(t *testing.T) {
	mockStorage := mock.NewMockStorage(t)
	mockFetcher := mock.NewMockFetcher(t)

	mockStorage.EXPECT().
		DeleteRatesForCurrency(testifymock.Anything, "USD").
		Return(int64(2), nil).
		Once()

	svc := rates.New(mockStorage, mockFetcher)
	n, err := svc.DeleteRatesForCurrency(context.Background(), "USD")

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
