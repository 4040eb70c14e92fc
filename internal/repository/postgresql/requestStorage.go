package postgresql

import (
	"context"
	"fmt"
	"strings"

	"cbr-rates/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestLogStorage struct {
	pgpool *pgxpool.Pool
}

func NewRequestLogStorage(pgpool *pgxpool.Pool) *RequestLogStorage {
	return &RequestLogStorage{pgpool: pgpool}
}

func (s *RequestLogStorage) Insert(ctx context.Context, path string, status *int, dateAsOf *models.Date) error {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "unknown"
	}

	var asOf any
	if dateAsOf != nil && !dateAsOf.IsZero() {
		asOf = dateAsOf.Time
	}

	_, err := s.pgpool.Exec(ctx, `
insert into request_log (path, status, date_as_of)
values ($1, $2, $3);
`, path, status, asOf)
	if err != nil {
		return fmt.Errorf("insert request_log: %w", err)
	}
	return nil
}
