package logger

import (
	"context"
	"fmt"
	"strings"

	"cbr-rates/internal/models"
)

type DBRequestLogger struct {
	storage LoggerStorage
}

func New(storage LoggerStorage) *DBRequestLogger {
	return &DBRequestLogger{storage: storage}
}

func (l *DBRequestLogger) LogRequest(ctx context.Context, endpoint string, status *int, dateAsOf *models.Date) error {
	p := strings.TrimSpace(endpoint)
	p = strings.Trim(p, "/")
	if p == "" {
		p = "root"
	}

	if err := l.storage.Insert(ctx, p, status, dateAsOf); err != nil {
		return fmt.Errorf("log request %s: %w", p, err)
	}
	return nil
}
