package migrations

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Migrations struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Migrations {
	return &Migrations{pool: pool}
}

func (m *Migrations) Setup(ctx context.Context) error {
	if err := m.setupRateTables(ctx); err != nil {
		return fmt.Errorf("setup rate tables: %w", err)
	}
	if err := m.setupRequestLogTable(ctx); err != nil {
		return fmt.Errorf("setup request_log: %w", err)
	}
	return nil
}

// setupRateTables ensures the currency and currency_rate tables. The unique
// (currency_id, date) pair is what makes concurrent write-through safe, and
// the FK cascade is what ties a currency's history to the currency itself.
func (m *Migrations) setupRateTables(ctx context.Context) error {
	_, err := m.pool.Exec(ctx, `
create table if not exists currency (
  char_code varchar(10) primary key,
  name      varchar(100) not null
);

create table if not exists currency_rate (
  id          bigserial primary key,
  date        date not null,
  currency_id varchar(10) not null references currency (char_code) on delete cascade,
  nominal     integer not null,
  value       numeric(20, 6) not null,
  unique (currency_id, date)
);

create index if not exists idx_currency_rate_date
  on currency_rate (date);
`)
	if err != nil {
		return fmt.Errorf("ensure currency tables: %w", err)
	}
	return nil
}

func (m *Migrations) setupRequestLogTable(ctx context.Context) error {
	_, err := m.pool.Exec(ctx, `
create table if not exists request_log (
  id          bigserial primary key,
  path        text not null,
  status      integer,
  date_as_of  date,
  created_at  timestamptz not null default now()
);

create index if not exists idx_request_log_created_at
  on request_log (created_at desc);
`)
	if err != nil {
		return fmt.Errorf("ensure table request_log: %w", err)
	}
	return nil
}
