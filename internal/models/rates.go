package models

import "github.com/shopspring/decimal"

// Rate is one currency's quote on a single, already-known day: the shape
// returned both by the upstream parser and by the by-date read path.
type Rate struct {
	CharCode string          `json:"char_code"`
	Name     string          `json:"name"`
	Nominal  int             `json:"nominal"`
	Value    decimal.Decimal `json:"value"`
}

// CurrencyRate is a dated rate row, used when listing across days.
type CurrencyRate struct {
	Date     Date            `json:"date"`
	CharCode string          `json:"char_code"`
	Name     string          `json:"name"`
	Nominal  int             `json:"nominal"`
	Value    decimal.Decimal `json:"value"`
}
