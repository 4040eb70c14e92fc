package logger

import (
	"context"

	"cbr-rates/internal/models"
)

type RequestLogger interface {
	LogRequest(ctx context.Context, path string, status *int, dateAsOf *models.Date) error
}

type LoggerStorage interface {
	Insert(ctx context.Context, path string, status *int, dateAsOf *models.Date) error
}
