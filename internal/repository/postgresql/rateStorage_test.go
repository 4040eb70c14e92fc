package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cbr-rates/internal/models"
	"cbr-rates/internal/repository/migrations"
	"cbr-rates/internal/repository/postgresql"
)

// newTestStorage connects to the database named by TEST_DATABASE_URL and
// starts from empty tables. Tests are skipped when the variable is unset.
func newTestStorage(t *testing.T) *postgresql.RateStorage {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, migrations.New(pool).Setup(ctx))

	_, err = pool.Exec(ctx, `truncate currency_rate, currency;`)
	require.NoError(t, err)

	return postgresql.NewRateStorage(pool)
}

func date(y int, m time.Month, d int) models.Date { return models.NewDate(y, m, d) }

func usdJpy() []models.Rate {
	return []models.Rate{
		{CharCode: "USD", Name: "US Dollar", Nominal: 1, Value: decimal.RequireFromString("31.1192")},
		{CharCode: "JPY", Name: "Japanese Yen", Nominal: 100, Value: decimal.RequireFromString("23.8416")},
	}
}

func TestRateStorage_UpsertThenFind(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()
	day := date(2002, time.April, 22)

	require.NoError(t, storage.UpsertRates(ctx, usdJpy(), day))

	found, err := storage.FindRatesByDate(ctx, day)
	require.NoError(t, err)
	require.Len(t, found, 2)

	byCode := map[string]models.Rate{}
	for _, r := range found {
		byCode[r.CharCode] = r
	}
	assert.Equal(t, "US Dollar", byCode["USD"].Name)
	assert.True(t, byCode["USD"].Value.Equal(decimal.RequireFromString("31.1192")))
	assert.Equal(t, 100, byCode["JPY"].Nominal)
}

func TestRateStorage_UpsertIsIdempotent(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()
	day := date(2002, time.April, 22)

	require.NoError(t, storage.UpsertRates(ctx, usdJpy(), day))
	// re-running the same day must neither duplicate rows nor fail
	require.NoError(t, storage.UpsertRates(ctx, usdJpy(), day))

	total, err := storage.CountRates(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestRateStorage_UpsertKeepsExistingCurrencyName(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.UpsertRates(ctx, usdJpy(), date(2002, time.April, 22)))

	renamed := []models.Rate{
		{CharCode: "USD", Name: "Dollar, renamed", Nominal: 1, Value: decimal.RequireFromString("31.5")},
	}
	require.NoError(t, storage.UpsertRates(ctx, renamed, date(2002, time.April, 23)))

	found, err := storage.FindRatesByDate(ctx, date(2002, time.April, 23))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "US Dollar", found[0].Name)
}

func TestRateStorage_DeleteThenRedelete(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.UpsertRates(ctx, usdJpy(), date(2002, time.April, 22)))
	require.NoError(t, storage.UpsertRates(ctx, usdJpy(), date(2002, time.April, 23)))

	n, err := storage.DeleteRatesForCurrency(ctx, "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = storage.DeleteRatesForCurrency(ctx, "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	// the currency row stays behind for future rates
	codes, err := storage.ListCurrencyCodes(ctx)
	require.NoError(t, err)
	assert.Contains(t, codes, "USD")
}

func TestRateStorage_ListAllRatesOrderedAndWindowed(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	for d := 1; d <= 3; d++ {
		require.NoError(t, storage.UpsertRates(ctx, usdJpy(), date(2002, time.April, d)))
	}

	all, err := storage.ListAllRates(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 6)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].Date.Before(all[i-1].Date.Time), "rows must be in ascending date order")
	}

	window, err := storage.ListAllRates(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, all[2:4], window)
}
