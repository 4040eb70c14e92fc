package cbr

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cbr-rates/internal/metrics"
	"cbr-rates/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
)

const maxBodyBytes = 1 << 20

// dateReqLayout is the day/month/year format the CBR endpoint expects.
const dateReqLayout = "02/01/2006"

type Fetcher interface {
	FetchRates(ctx context.Context, date models.Date) ([]models.Rate, error)
}

type Client struct {
	BaseURL    string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

// New builds a client for the daily XML feed. m may be nil, e.g. in tests.
func New(sourceURL string, m *metrics.Metrics) *Client {
	return &Client{
		BaseURL: sourceURL,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
		metrics: m,
	}
}

// valCurs mirrors the upstream daily document. NumCode is deliberately not
// mapped: char_code is the stable key downstream.
type valCurs struct {
	XMLName xml.Name `xml:"ValCurs"`
	Valutes []valute `xml:"Valute"`
}

type valute struct {
	CharCode string `xml:"CharCode"`
	Nominal  string `xml:"Nominal"`
	Name     string `xml:"Name"`
	Value    string `xml:"Value"`
}

// FetchRates requests the official quotes for one calendar day and returns
// them normalized. A malformed or empty document is "no data for this date":
// an empty list and a nil error, never a partial write signal.
func (c *Client) FetchRates(ctx context.Context, date models.Date) ([]models.Rate, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("date is empty")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse source url: %w", err)
	}
	q := u.Query()
	q.Set("date_req", date.Format(dateReqLayout))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	if c.metrics != nil {
		c.metrics.UpstreamFetchTotal.Inc()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.metrics != nil {
			c.metrics.UpstreamFetchFailures.Inc()
		}
		return nil, fmt.Errorf("%w: %v", models.ErrUpstreamUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if c.metrics != nil {
			c.metrics.UpstreamFetchFailures.Inc()
		}
		return nil, fmt.Errorf("%w: cbr http %d: %s", models.ErrUpstreamUnavailable, resp.StatusCode, string(body))
	}

	return parseRates(body), nil
}

func parseRates(body []byte) []models.Rate {
	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.CharsetReader = charsetReader

	var doc valCurs
	if err := dec.Decode(&doc); err != nil {
		return []models.Rate{}
	}

	out := make([]models.Rate, 0, len(doc.Valutes))
	for _, v := range doc.Valutes {
		rate, ok := normalize(v)
		if !ok {
			continue
		}
		out = append(out, rate)
	}
	return out
}

// normalize renames upstream tags to snake_case keys and fixes the comma
// decimal separator the upstream locale uses.
func normalize(v valute) (models.Rate, bool) {
	charCode := strings.TrimSpace(v.CharCode)
	if charCode == "" {
		return models.Rate{}, false
	}

	nominal, err := strconv.Atoi(strings.TrimSpace(v.Nominal))
	if err != nil {
		return models.Rate{}, false
	}

	value, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(v.Value), ",", "."))
	if err != nil {
		return models.Rate{}, false
	}

	return models.Rate{
		CharCode: charCode,
		Name:     strings.TrimSpace(v.Name),
		Nominal:  nominal,
		Value:    value,
	}, true
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "windows-1251":
		return charmap.Windows1251.NewDecoder().Reader(input), nil
	case "utf-8", "":
		return input, nil
	default:
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}
}
