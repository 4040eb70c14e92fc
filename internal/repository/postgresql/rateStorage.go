package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cbr-rates/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type RateStorage struct {
	pgpool *pgxpool.Pool
}

func NewRateStorage(pgpool *pgxpool.Pool) *RateStorage {
	return &RateStorage{pgpool: pgpool}
}

func (s *RateStorage) FindRatesByDate(ctx context.Context, date models.Date) ([]models.Rate, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("date is empty")
	}

	rows, err := s.pgpool.Query(ctx, `
select c.char_code, c.name, r.nominal, r.value::text
from currency_rate r
join currency c on c.char_code = r.currency_id
where r.date = $1;
`, date.Time)
	if err != nil {
		return nil, fmt.Errorf("query rates for %s: %w", date, err)
	}
	defer rows.Close()

	var out []models.Rate
	for rows.Next() {
		r, err := scanRate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// UpsertRates writes one day's records in a single transaction. Both inserts
// swallow duplicate-key conflicts: a currency seen before keeps its name, and
// a (currency, date) pair written by a concurrent racer stays as written.
func (s *RateStorage) UpsertRates(ctx context.Context, rates []models.Rate, date models.Date) error {
	if date.IsZero() {
		return fmt.Errorf("date is empty")
	}

	tx, err := s.pgpool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, r := range rates {
		charCode := strings.ToUpper(strings.TrimSpace(r.CharCode))
		if charCode == "" {
			continue
		}

		_, err := tx.Exec(ctx, `
insert into currency (char_code, name)
values ($1, $2)
on conflict (char_code) do nothing;
`, charCode, r.Name)
		if err != nil {
			return fmt.Errorf("insert currency %s: %w", charCode, err)
		}

		_, err = tx.Exec(ctx, `
insert into currency_rate (date, currency_id, nominal, value)
values ($1, $2, $3, $4::numeric)
on conflict (currency_id, date) do nothing;
`, date.Time, charCode, r.Nominal, r.Value.String())
		if err != nil {
			return fmt.Errorf("insert rate %s@%s: %w", charCode, date, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *RateStorage) ListCurrencyCodes(ctx context.Context) ([]string, error) {
	rows, err := s.pgpool.Query(ctx, `
select char_code from currency order by char_code;
`)
	if err != nil {
		return nil, fmt.Errorf("query currency codes: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, strings.TrimSpace(code))
	}
	return out, rows.Err()
}

// DeleteRatesForCurrency removes every dated rate row for one currency and
// returns how many went away. The currency row itself stays, so a later
// fetch can re-attach history to it. Running it again returns 0.
func (s *RateStorage) DeleteRatesForCurrency(ctx context.Context, charCode string) (int64, error) {
	charCode = strings.ToUpper(strings.TrimSpace(charCode))
	if charCode == "" {
		return 0, fmt.Errorf("char_code is empty")
	}

	tag, err := s.pgpool.Exec(ctx, `
delete from currency_rate where currency_id = $1;
`, charCode)
	if err != nil {
		return 0, fmt.Errorf("delete rates for %s: %w", charCode, err)
	}
	return tag.RowsAffected(), nil
}

func (s *RateStorage) CountRates(ctx context.Context) (int, error) {
	var total int
	if err := s.pgpool.QueryRow(ctx, `select count(*) from currency_rate;`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count rates: %w", err)
	}
	return total, nil
}

// ListAllRates returns dated rows across all currencies, oldest day first.
// limit <= 0 means no window; offset is a row offset, already clamped by the
// caller.
func (s *RateStorage) ListAllRates(ctx context.Context, limit, offset int) ([]models.CurrencyRate, error) {
	query := `
select r.date, c.char_code, c.name, r.nominal, r.value::text
from currency_rate r
join currency c on c.char_code = r.currency_id
order by r.date, r.id`
	args := []any{}
	if limit > 0 {
		query += `
limit $1 offset $2`
		args = append(args, limit, offset)
	}
	query += ";"

	rows, err := s.pgpool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query all rates: %w", err)
	}
	defer rows.Close()

	var out []models.CurrencyRate
	for rows.Next() {
		var r models.CurrencyRate
		var day time.Time
		var rateText string
		if err := rows.Scan(&day, &r.CharCode, &r.Name, &r.Nominal, &rateText); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		value, err := decimal.NewFromString(strings.TrimSpace(rateText))
		if err != nil {
			return nil, fmt.Errorf("parse rate %s=%q: %w", r.CharCode, rateText, err)
		}
		r.Value = value
		r.Date = models.NewDate(day.Year(), day.Month(), day.Day())
		out = append(out, r)
	}
	return out, rows.Err()
}

func scanRate(rows pgx.Rows) (models.Rate, error) {
	var r models.Rate
	var rateText string
	if err := rows.Scan(&r.CharCode, &r.Name, &r.Nominal, &rateText); err != nil {
		return models.Rate{}, fmt.Errorf("scan: %w", err)
	}
	r.CharCode = strings.TrimSpace(r.CharCode)

	value, err := decimal.NewFromString(strings.TrimSpace(rateText))
	if err != nil {
		return models.Rate{}, fmt.Errorf("parse rate %s=%q: %w", r.CharCode, rateText, err)
	}
	r.Value = value
	return r, nil
}
