package main

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultRateSource = "http://www.cbr.ru/scripts/XML_daily.asp"

type Config struct {
	DatabaseURL        string
	CurrencyRateSource string

	HTTPPort string

	CronSpec string
	Location string

	Testing bool
}

func LoadConfig() (Config, error) {
	if err := godotenv.Overload(); err != nil {
		log.Println(errors.New("Error loading .env file"))
	}

	cfg := Config{
		CurrencyRateSource: defaultRateSource,
		HTTPPort:           "8080",
		CronSpec:           "0 12 * * *",
		Location:           "Europe/Moscow",
	}

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is empty")
	}

	if src := strings.TrimSpace(os.Getenv("CURRENCY_RATE_SOURCE")); src != "" {
		cfg.CurrencyRateSource = src
	}
	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		cfg.HTTPPort = p
	}
	if spec := strings.TrimSpace(os.Getenv("CRON_SPEC")); spec != "" {
		cfg.CronSpec = spec
	}
	if loc := strings.TrimSpace(os.Getenv("LOCATION")); loc != "" {
		cfg.Location = loc
	}

	cfg.Testing = strings.EqualFold(strings.TrimSpace(os.Getenv("TESTING")), "true")
	if cfg.Testing {
		prefixed, err := prefixDatabaseName(cfg.DatabaseURL, "test_")
		if err != nil {
			return Config{}, fmt.Errorf("apply testing database prefix: %w", err)
		}
		cfg.DatabaseURL = prefixed
	}

	return cfg, nil
}

// prefixDatabaseName rewrites the database name in a connection URL so test
// runs work against an isolated namespace.
func prefixDatabaseName(dbURL, prefix string) (string, error) {
	u, err := url.Parse(dbURL)
	if err != nil {
		return "", fmt.Errorf("parse DATABASE_URL: %w", err)
	}

	name := strings.TrimPrefix(u.Path, "/")
	if name == "" {
		return "", fmt.Errorf("DATABASE_URL has no database name")
	}
	u.Path = "/" + prefix + name
	return u.String(), nil
}
